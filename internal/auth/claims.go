package auth

import "github.com/golang-jwt/jwt/v5"

// OperatorClaims are the JWT claims issued at login.
type OperatorClaims struct {
	OperatorID int64  `json:"operator_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}
