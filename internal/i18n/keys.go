// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// Users
	KeyUserNotFound = "user.not_found"

	// Products
	KeyProductNotFound = "product.not_found"

	// Scan history
	KeyHistoryAdded       = "history.added"
	KeyHistoryAddFailed   = "history.add_failed"
	KeyHistoryRemoved     = "history.removed"
	KeyHistoryScanMissing = "history.scan_not_found"

	// Friends
	KeyFriendRequestSent     = "friend.request_sent"
	KeyFriendRequestAccepted = "friend.request_accepted"
	KeyFriendRemoved         = "friend.removed"
	KeyFriendNotFound        = "friend.not_found"
	KeyFriendAlreadyLinked   = "friend.already_linked"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
