package graph

import (
	"context"
	"fmt"
	"testing"

	"github.com/hmans/usergraph/internal/user"
)

func setupTestResolver(t *testing.T) (*Resolver, *user.Store) {
	t.Helper()
	store := user.NewStore(nil)
	return NewResolver(store), store
}

func TestQueryHello(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := resolver.Query().Hello(ctx)
		if err != nil {
			t.Fatalf("Hello() error = %v", err)
		}
		if got != "Hello world!" {
			t.Errorf("Hello() = %q, want %q", got, "Hello world!")
		}
	}
}

func TestQueryRandomNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("rounding at bucket edges", func(t *testing.T) {
		tests := []struct {
			draw float64
			want int
		}{
			{0, 0},
			{0.049, 0},
			{0.051, 1},
			{0.5, 5},
			{0.949, 9},
			{0.951, 10},
			{0.9999999, 10},
		}
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%v", tt.draw), func(t *testing.T) {
				resolver, _ := setupTestResolver(t)
				resolver.Rand = func() float64 { return tt.draw }

				got, err := resolver.Query().RandomNumber(ctx)
				if err != nil {
					t.Fatalf("RandomNumber() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("RandomNumber() with draw %v = %d, want %d", tt.draw, got, tt.want)
				}
			})
		}
	})

	t.Run("range and coverage", func(t *testing.T) {
		resolver, _ := setupTestResolver(t)
		seen := make(map[int]int)

		for i := 0; i < 5000; i++ {
			got, err := resolver.Query().RandomNumber(ctx)
			if err != nil {
				t.Fatalf("RandomNumber() error = %v", err)
			}
			if got < 0 || got > 10 {
				t.Fatalf("RandomNumber() = %d, want value in [0, 10]", got)
			}
			seen[got]++
		}

		for n := 0; n <= 10; n++ {
			if seen[n] == 0 {
				t.Errorf("RandomNumber() never returned %d in 5000 draws", n)
			}
		}
	})

	t.Run("NewResolver draws from math/rand", func(t *testing.T) {
		resolver := NewResolver(user.NewStore(nil))
		if resolver.Rand == nil {
			t.Fatal("NewResolver() left Rand unset")
		}
		got, err := resolver.Query().RandomNumber(ctx)
		if err != nil {
			t.Fatalf("RandomNumber() error = %v", err)
		}
		if got < 0 || got > 10 {
			t.Errorf("RandomNumber() = %d, want value in [0, 10]", got)
		}
	})
}

func TestQueryUsers(t *testing.T) {
	resolver, _ := setupTestResolver(t)
	ctx := context.Background()

	t.Run("seed only", func(t *testing.T) {
		got, err := resolver.Query().QueryUsers(ctx)
		if err != nil {
			t.Fatalf("QueryUsers() error = %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("QueryUsers() count = %d, want 1", len(got))
		}
		if got[0].Email != "GraphQL@isCool.com" {
			t.Errorf("QueryUsers()[0].Email = %q, want %q", got[0].Email, "GraphQL@isCool.com")
		}
	})

	t.Run("seed followed by added users in call order", func(t *testing.T) {
		mr := resolver.Mutation()
		names := []string{"one", "two", "three"}
		for _, n := range names {
			if _, err := mr.AddUser(ctx, n, "last", n+"@example.com"); err != nil {
				t.Fatalf("AddUser() error = %v", err)
			}
		}

		got, err := resolver.Query().QueryUsers(ctx)
		if err != nil {
			t.Fatalf("QueryUsers() error = %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("QueryUsers() count = %d, want 4", len(got))
		}
		if got[0].FirstName != "GraphQL" {
			t.Errorf("QueryUsers()[0].FirstName = %q, want seed record", got[0].FirstName)
		}
		for i, n := range names {
			if got[i+1].FirstName != n {
				t.Errorf("QueryUsers()[%d].FirstName = %q, want %q", i+1, got[i+1].FirstName, n)
			}
		}
	})
}

func TestMutationAddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns arguments unchanged", func(t *testing.T) {
		resolver, _ := setupTestResolver(t)

		got, err := resolver.Mutation().AddUser(ctx, "Ada", "Lovelace", "ADA@Example.COM")
		if err != nil {
			t.Fatalf("AddUser() error = %v", err)
		}
		if got.FirstName != "Ada" || got.LastName != "Lovelace" || got.Email != "ADA@Example.COM" {
			t.Errorf("AddUser() = %+v, want fields unchanged", got)
		}
	})

	t.Run("empty string is stored verbatim", func(t *testing.T) {
		resolver, store := setupTestResolver(t)

		got, err := resolver.Mutation().AddUser(ctx, "A", "B", "")
		if err != nil {
			t.Fatalf("AddUser() error = %v", err)
		}
		if got.Email != "" {
			t.Errorf("AddUser().Email = %q, want empty", got.Email)
		}
		if store.Len() != 2 {
			t.Errorf("store length = %d, want 2", store.Len())
		}
	})

	t.Run("not idempotent", func(t *testing.T) {
		resolver, store := setupTestResolver(t)

		for i := 1; i <= 2; i++ {
			if _, err := resolver.Mutation().AddUser(ctx, "A", "B", "c@d.e"); err != nil {
				t.Fatalf("AddUser() error = %v", err)
			}
			if store.Len() != 1+i {
				t.Errorf("after %d calls store length = %d, want %d", i, store.Len(), 1+i)
			}
		}
	})
}
