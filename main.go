// Project Structure Overview
/*
carbonwise-backend/
├── cmd/
│   └── server/
│       └── main.go
├── internal/
│   ├── config/
│   │   ├── config.go
│   │   └── database.go
│   ├── models/
│   │   ├── user.go
│   │   ├── product.go
│   │   ├── history.go
│   │   ├── friend.go
│   │   └── common.go
│   ├── handlers/
│   │   ├── auth.go
│   │   ├── product.go
│   │   ├── history.go
│   │   ├── user.go
│   │   └── friend.go
│   ├── services/
│   │   ├── auth_service.go
│   │   ├── product_store.go
│   │   ├── image_service.go
│   │   ├── recommendation_service.go
│   │   ├── history_service.go
│   │   ├── friend_service.go
│   │   ├── notification_service.go
│   │   └── errors.go
│   ├── repository/
│   │   ├── product_repository.go
│   │   └── history_repository.go
│   ├── openfoodfacts/
│   │   ├── client.go
│   │   └── images.go
│   ├── storage/
│   │   └── s3.go
│   ├── middleware/
│   │   ├── auth.go
│   │   ├── cors.go
│   │   ├── rate_limit.go
│   │   ├── i18n.go
│   │   └── logging.go
│   ├── database/
│   │   └── connection.go
│   ├── i18n/
│   │   ├── i18n.go
│   │   ├── locales/
│   │   │   ├── en.json
│   │   │   └── fr.json
│   │   └── keys.go
│   ├── utils/
│   │   ├── jwt.go
│   │   ├── validator.go
│   │   ├── pagination.go
│   │   └── response.go
│   └── router/
│       └── router.go
├── go.mod
└── README.md
*/

package carbonwise

// This file shows the project structure and main entry point
// The actual implementation will be in separate files as shown in the structure above
