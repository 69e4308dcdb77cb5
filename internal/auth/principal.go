// Package auth models the caller identity handed over by the identity
// provider. The principal is an immutable value carried on the request
// context; nothing here keeps process-wide state.
package auth

import "context"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type Principal struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// ActorID is the acting user for log attribution, or 0 when unauthenticated.
func ActorID(ctx context.Context) uint {
	p, _ := FromContext(ctx)
	return p.UserID
}
