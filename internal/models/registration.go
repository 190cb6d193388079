package models

// RegistrationRequest represents the JSON body for mock registration.
// Both fields are optional; absent or null keys stay nil.
// swagger:model RegistrationRequest
type RegistrationRequest struct {
	// Email
	// example: a@b.com
	Email *string `json:"email"`

	// Nickname
	// example: Al
	Nickname *string `json:"nickname"`
}

// RegisteredUser is the user object echoed back after registration.
// swagger:model RegisteredUser
type RegisteredUser struct {
	// User identifier
	// example: test_user_id
	ID string `json:"id"`

	// Email echoed from the request, null when absent
	// example: a@b.com
	Email *string `json:"email"`

	// Nickname echoed from the request, null when absent
	// example: Al
	Nickname *string `json:"nickname"`
}

// RegistrationResponse represents a successful registration response
// swagger:model RegistrationResponse
type RegistrationResponse struct {
	// Success message
	// example: 註冊成功 (Python測試服務器)
	Message string `json:"message"`

	// Placeholder token
	// example: test_token_12345
	Token string `json:"token"`

	User RegisteredUser `json:"user"`
}
