package auth

import (
	"context"
	"errors"
)

type contextKey string

const claimsKey contextKey = "user_claims"

var ErrNoClaims = errors.New("no user claims in context")

func WithUserClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}
