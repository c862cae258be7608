package graph

import (
	"context"
	"math"

	"github.com/hmans/usergraph/internal/user"
)

// Greeting is the value returned by the hello query.
const Greeting = "Hello world!"

// Hello is the resolver for the hello field.
func (r *queryResolver) Hello(ctx context.Context) (string, error) {
	return Greeting, nil
}

// RandomNumber is the resolver for the randomNumber field.
// The draw is scaled to [0, 10) and rounded to the nearest integer, so 0 and
// 10 are each half as likely as the values between them.
func (r *queryResolver) RandomNumber(ctx context.Context) (int, error) {
	return int(math.Round(r.Rand() * 10)), nil
}

// QueryUsers is the resolver for the queryUsers field.
func (r *queryResolver) QueryUsers(ctx context.Context) ([]*user.User, error) {
	return r.Store.All(), nil
}

// AddUser is the resolver for the addUser field.
func (r *mutationResolver) AddUser(ctx context.Context, firstName string, lastName string, email string) (*user.User, error) {
	return r.Store.Add(firstName, lastName, email), nil
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
