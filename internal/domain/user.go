package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleMarketing UserRole = "marketing"
	UserRoleAgent     UserRole = "agent"
)

type User struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user"`
}

type Claims struct {
	UserName  string   `json:"name"`
	UserEmail string   `json:"email"`
	UserRole  UserRole `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) User() *User {
	return &User{
		Name:  c.UserName,
		Email: c.UserEmail,
		Role:  c.UserRole,
	}
}
