package dto

import "meetsync/modules/user/entity"

// ===================== Request DTOs =====================

// LoginRequest for the name-based login-or-register endpoint
type LoginRequest struct {
	Name string `json:"name"`
}

// ===================== Response DTOs =====================

// LoginStatus tells the client whether the name was already taken
type LoginStatus string

const (
	LoginStatusExists  LoginStatus = "Exists"
	LoginStatusCreated LoginStatus = "Created"
)

// LoginResponse for a successful login
type LoginResponse struct {
	Status LoginStatus `json:"status"`
	User   entity.User `json:"user"`
}
