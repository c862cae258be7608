// Package user defines the User record and the in-memory store that holds them.
package user

// User is a single user record. There is no identifier; a record is only
// addressable by its position in the Store.
type User struct {
	FirstName string `json:"firstName" toml:"first_name" yaml:"first_name"`
	LastName  string `json:"lastName" toml:"last_name" yaml:"last_name"`
	Email     string `json:"email" toml:"email" yaml:"email"`
}

// DefaultSeed is the record every new store starts with unless told otherwise.
var DefaultSeed = []User{
	{FirstName: "GraphQL", LastName: "isCool", Email: "GraphQL@isCool.com"},
}
