// internal/repository/history_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/carbonwise/carbonwise-backend/internal/models"
	"github.com/carbonwise/carbonwise-backend/internal/utils"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) EnsureHistory(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserHistory{UserID: userID}).Error
}

func (r *HistoryRepository) AppendEntry(ctx context.Context, entry *models.HistoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *HistoryRepository) RemoveEntry(ctx context.Context, userID, scanID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND scan_id = ?", userID, scanID).
		Delete(&models.HistoryEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *HistoryRepository) RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HistoryRepository) ListEntries(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]models.HistoryEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.HistoryEntry{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	allowedSortFields := []string{"timestamp", "product_id"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var entries []models.HistoryEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *HistoryRepository) SetAverage(ctx context.Context, userID uuid.UUID, average float64) error {
	return r.db.WithContext(ctx).
		Model(&models.UserHistory{}).
		Where("user_id = ?", userID).
		Update("ecoscore_average", average).Error
}

func (r *HistoryRepository) GetHistory(ctx context.Context, userID uuid.UUID) (*models.UserHistory, error) {
	var history models.UserHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&history).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &history, nil
}
