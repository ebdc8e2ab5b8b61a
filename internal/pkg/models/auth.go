package models

// LoginRequest carries the admin credentials posted to the Kaviar API
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"senha" form:"senha"`
}

// LoginResponse is the token pair returned by a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
