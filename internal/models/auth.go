package models

// LoginRequest carries login credentials. Admin logins use the configured
// username; customer logins use the numeric user id as username and the phone
// number as password.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult is the response body for a successful login.
type LoginResult struct {
	Success  bool   `json:"success"`
	IsAdmin  bool   `json:"isAdmin"`
	Token    string `json:"token,omitempty"`
	UserID   int64  `json:"userId,omitempty"`
	Language string `json:"language,omitempty"`
}
