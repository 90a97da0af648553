package models

import "time"

// AdminUser is the single class of administrative identity
type AdminUser struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// LoginRequest holds admin credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// HealthCheckResponse is the body of the health check
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// MessageResponse is the body of operations that return no entity
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse names a stored upload and where it is served from
type UploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
