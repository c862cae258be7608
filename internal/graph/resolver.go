package graph

import (
	"context"
	"math/rand/v2"

	"github.com/hmans/usergraph/internal/user"
)

// Resolver is the root resolver for the GraphQL schema.
// It holds a reference to the user store for data access.
type Resolver struct {
	Store *user.Store

	// Rand returns a float in [0, 1).
	Rand func() float64
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(store *user.Store) *Resolver {
	return &Resolver{Store: store, Rand: rand.Float64}
}

// QueryResolver resolves the fields of the Query type.
type QueryResolver interface {
	Hello(ctx context.Context) (string, error)
	RandomNumber(ctx context.Context) (int, error)
	QueryUsers(ctx context.Context) ([]*user.User, error)
}

// MutationResolver resolves the fields of the Mutation type.
type MutationResolver interface {
	AddUser(ctx context.Context, firstName string, lastName string, email string) (*user.User, error)
}
