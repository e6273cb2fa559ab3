package erpapi

import "context"

type tokenKey struct{}

// WithToken attaches the caller's bearer token to ctx. The client forwards it
// to the backend on every request made with that context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
