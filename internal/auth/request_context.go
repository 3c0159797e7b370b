package auth

import "context"

type contextKey string

const claimsKey contextKey = "operator_claims"

// SetOperatorClaims stores validated claims on the request context.
func SetOperatorClaims(ctx context.Context, claims *OperatorClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetOperatorClaims returns claims set by the auth middleware, or nil.
func GetOperatorClaims(ctx context.Context) *OperatorClaims {
	if claims, ok := ctx.Value(claimsKey).(*OperatorClaims); ok {
		return claims
	}
	return nil
}
