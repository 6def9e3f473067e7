package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos nos tokens da API
const (
	RoleAdmin  = 1
	RoleReader = 2
)

type Claims struct {
	Role int `json:"role"`
	jwt.RegisteredClaims
}
