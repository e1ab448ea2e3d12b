// internal/models/friend.go
package models

import (
	"github.com/google/uuid"
)

// FriendRequest doubles as the friendship edge once accepted.
type FriendRequest struct {
	BaseModel
	RequesterID uuid.UUID    `json:"requester_id" gorm:"type:uuid;not null;index"`
	AddresseeID uuid.UUID    `json:"addressee_id" gorm:"type:uuid;not null;index"`
	Status      FriendStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	// Relationships
	Requester User `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`
	Addressee User `json:"addressee,omitempty" gorm:"foreignKey:AddresseeID"`
}
