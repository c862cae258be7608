package graph

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"sync/atomic"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hmans/usergraph/internal/user"
)

// ResolverRoot hands out the resolvers for the schema's root types.
type ResolverRoot interface {
	Query() QueryResolver
	Mutation() MutationResolver
}

// Config configures NewExecutableSchema.
type Config struct {
	Resolvers ResolverRoot
}

// NewExecutableSchema returns the schema in the shape gqlgen's executor and
// HTTP handler run. Requests are parsed, validated and have their variables
// coerced by the executor before Exec is called, so no resolver ever sees an
// invalid operation.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{resolvers: cfg.Resolvers}
}

type executableSchema struct {
	resolvers ResolverRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	return parsedSchema
}

// Complexity reports no custom costs.
func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := &executionContext{OperationContext: opCtx, executableSchema: e}

	var root func(context.Context, ast.SelectionSet) graphql.Marshaler
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = ec.query
	case ast.Mutation:
		root = ec.mutation
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		var buf bytes.Buffer
		root(ctx, opCtx.Operation.SelectionSet).MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

type executionContext struct {
	*graphql.OperationContext
	*executableSchema
}

var (
	queryImplementors    = []string{"Query"}
	mutationImplementors = []string{"Mutation"}
	userImplementors     = []string{"User"}
)

// query resolves the root fields of a query operation concurrently.
func (ec *executionContext) query(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, queryImplementors)
	ctx = graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{Object: "Query"})

	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		var resolve graphql.RootResolver
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Query")
			continue
		case "hello":
			resolve = func(ctx context.Context) graphql.Marshaler { return ec.queryHello(ctx, field) }
		case "randomNumber":
			resolve = func(ctx context.Context) graphql.Marshaler { return ec.queryRandomNumber(ctx, field) }
		case "queryUsers":
			resolve = func(ctx context.Context) graphql.Marshaler { return ec.queryUsers(ctx, field) }
		case "__schema":
			resolve = func(ctx context.Context) graphql.Marshaler { return ec.querySchema(ctx, field) }
		case "__type":
			resolve = func(ctx context.Context) graphql.Marshaler { return ec.queryType(ctx, field) }
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}

		rootField := ec.rootField(out, field, resolve)
		out.Concurrently(i, func(context.Context) graphql.Marshaler { return rootField(innerCtx) })
	}
	out.Dispatch(ctx)

	if out.Invalids > 0 {
		return graphql.Null
	}
	return out
}

// mutation resolves the root fields of a mutation operation one after the
// other, in document order.
func (ec *executionContext) mutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mutationImplementors)
	ctx = graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{Object: "Mutation"})

	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Mutation")
		case "addUser":
			out.Values[i] = ec.rootField(out, field, func(ctx context.Context) graphql.Marshaler {
				return ec.mutationAddUser(ctx, field)
			})(innerCtx)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)

	if out.Invalids > 0 {
		return graphql.Null
	}
	return out
}

// rootField runs resolve through the root field middleware. A panic becomes a
// field error, and a null in a non-null field invalidates the whole of out.
func (ec *executionContext) rootField(out *graphql.FieldSet, field graphql.CollectedField, resolve graphql.RootResolver) graphql.RootResolver {
	return func(ctx context.Context) graphql.Marshaler {
		return ec.RootResolverMiddleware(ctx, func(ctx context.Context) (res graphql.Marshaler) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					res = graphql.Null
				}
				if res == graphql.Null && field.Definition.Type.NonNull {
					atomic.AddUint32(&out.Invalids, 1)
				}
			}()
			return resolve(ctx)
		})
	}
}

func (ec *executionContext) queryHello(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	return graphql.ResolveField(ctx, ec.OperationContext, field,
		fieldContext("Query", true),
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().Hello(ctx)
		},
		nil,
		marshalString,
		true,
		true,
	)
}

func (ec *executionContext) queryRandomNumber(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	return graphql.ResolveField(ctx, ec.OperationContext, field,
		fieldContext("Query", true),
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().RandomNumber(ctx)
		},
		nil,
		marshalInt,
		true,
		true,
	)
}

func (ec *executionContext) queryUsers(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	return graphql.ResolveField(ctx, ec.OperationContext, field,
		fieldContext("Query", true),
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().QueryUsers(ctx)
		},
		nil,
		ec.marshalUserList,
		true,
		true,
	)
}

func (ec *executionContext) querySchema(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	return graphql.ResolveField(ctx, ec.OperationContext, field,
		fieldContext("Query", false),
		func(ctx context.Context) (any, error) {
			return ec.introspectSchema()
		},
		nil,
		ec.marshalSchema,
		true,
		true,
	)
}

func (ec *executionContext) queryType(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	return graphql.ResolveField(ctx, ec.OperationContext, field,
		ec.withArgs("Query", false, ec.typeArgs),
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.introspectType(fc.Args["name"].(string))
		},
		nil,
		ec.marshalRootType,
		true,
		false,
	)
}

func (ec *executionContext) mutationAddUser(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	return graphql.ResolveField(ctx, ec.OperationContext, field,
		ec.withArgs("Mutation", true, ec.addUserArgs),
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().AddUser(ctx,
				fc.Args["firstName"].(string),
				fc.Args["lastName"].(string),
				fc.Args["email"].(string),
			)
		},
		nil,
		ec.marshalNonNullUser,
		true,
		true,
	)
}

// userObject resolves the selected fields of a single User.
func (ec *executionContext) userObject(ctx context.Context, sel ast.SelectionSet, obj *user.User) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, userImplementors)

	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("User")
		case "firstName":
			out.Values[i] = ec.userField(ctx, field, obj.FirstName)
		case "lastName":
			out.Values[i] = ec.userField(ctx, field, obj.LastName)
		case "email":
			out.Values[i] = ec.userField(ctx, field, obj.Email)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
		if out.Values[i] == graphql.Null {
			out.Invalids++
		}
	}
	out.Dispatch(ctx)

	if out.Invalids > 0 {
		return graphql.Null
	}
	return out
}

func (ec *executionContext) userField(ctx context.Context, field graphql.CollectedField, value string) graphql.Marshaler {
	return graphql.ResolveField(ctx, ec.OperationContext, field,
		fieldContext("User", false),
		func(context.Context) (any, error) {
			return value, nil
		},
		nil,
		marshalString,
		true,
		true,
	)
}

func (ec *executionContext) introspectSchema() (*introspection.Schema, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapSchema(ec.Schema()), nil
}

func (ec *executionContext) introspectType(name string) (*introspection.Type, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapTypeFromDef(ec.Schema(), ec.Schema().Types[name]), nil
}

// fieldContext returns the FieldContext initializer for a field without
// arguments.
func fieldContext(object string, isResolver bool) func(context.Context, graphql.CollectedField) (*graphql.FieldContext, error) {
	return func(_ context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
		return &graphql.FieldContext{
			Object:     object,
			Field:      field,
			IsMethod:   isResolver,
			IsResolver: isResolver,
		}, nil
	}
}

// withArgs returns a FieldContext initializer that also unmarshals the
// field's arguments. Argument errors are reported on the field's path.
func (ec *executionContext) withArgs(object string, isResolver bool, args func(context.Context, map[string]any) (map[string]any, error)) func(context.Context, graphql.CollectedField) (*graphql.FieldContext, error) {
	return func(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
		fc = &graphql.FieldContext{
			Object:     object,
			Field:      field,
			IsMethod:   isResolver,
			IsResolver: isResolver,
		}
		ctx = graphql.WithFieldContext(ctx, fc)
		if fc.Args, err = args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
			ec.Error(ctx, err)
			return fc, err
		}
		return fc, nil
	}
}

func (ec *executionContext) addUserArgs(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	return stringArgs(ctx, rawArgs, "firstName", "lastName", "email")
}

func (ec *executionContext) typeArgs(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	return stringArgs(ctx, rawArgs, "name")
}

func stringArgs(ctx context.Context, rawArgs map[string]any, names ...string) (map[string]any, error) {
	args := make(map[string]any, len(names))
	for _, name := range names {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField(name))
		v, err := graphql.UnmarshalString(rawArgs[name])
		if err != nil {
			return nil, graphql.ErrorOnPath(ctx, err)
		}
		args[name] = v
	}
	return args, nil
}

func marshalString(_ context.Context, _ ast.SelectionSet, v string) graphql.Marshaler {
	return graphql.MarshalString(v)
}

func marshalInt(_ context.Context, _ ast.SelectionSet, v int) graphql.Marshaler {
	return graphql.MarshalInt(v)
}

// marshalUserList marshals [User]. Items are nullable, so a nil entry stays
// null without touching its siblings.
func (ec *executionContext) marshalUserList(ctx context.Context, sel ast.SelectionSet, v []*user.User) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i := range v {
		ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		})
		if v[i] == nil {
			ret[i] = graphql.Null
			continue
		}
		ret[i] = ec.userObject(ctx, sel, v[i])
	}
	return ret
}

func (ec *executionContext) marshalNonNullUser(ctx context.Context, sel ast.SelectionSet, v *user.User) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.userObject(ctx, sel, v)
}
