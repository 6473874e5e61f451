package models

import "time"

// User is the authenticated profile returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// StoredValue is one row of the console's durable key-value storage.
type StoredValue struct {
	Key       string `gorm:"primaryKey;column:storage_key;size:100"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
