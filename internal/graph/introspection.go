package graph

import (
	"context"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2/ast"
)

// introspectObject resolves the selected fields of one introspection object.
// Everything here is read straight from the parsed schema, so no field can
// fail and there is nothing to propagate.
func (ec *executionContext) introspectObject(sel ast.SelectionSet, typeName string, resolve func(field graphql.CollectedField) graphql.Marshaler) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{typeName})

	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		if field.Name == "__typename" {
			out.Values[i] = graphql.MarshalString(typeName)
			continue
		}
		out.Values[i] = resolve(field)
	}
	return out
}

func (ec *executionContext) marshalSchema(_ context.Context, sel ast.SelectionSet, obj *introspection.Schema) graphql.Marshaler {
	if obj == nil {
		return graphql.Null
	}
	return ec.introspectObject(sel, "__Schema", func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "description":
			return marshalOptionalString(obj.Description())
		case "types":
			return marshalEach(obj.Types(), func(t *introspection.Type) graphql.Marshaler {
				return ec.marshalType(field.Selections, t)
			})
		case "queryType":
			return ec.marshalType(field.Selections, obj.QueryType())
		case "mutationType":
			return ec.marshalType(field.Selections, obj.MutationType())
		case "subscriptionType":
			return ec.marshalType(field.Selections, obj.SubscriptionType())
		case "directives":
			return marshalEach(obj.Directives(), func(d *introspection.Directive) graphql.Marshaler {
				return ec.marshalDirective(field.Selections, d)
			})
		}
		panic("unknown field " + strconv.Quote(field.Name))
	})
}

func (ec *executionContext) marshalRootType(_ context.Context, sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	return ec.marshalType(sel, obj)
}

func (ec *executionContext) marshalType(sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	if obj == nil {
		return graphql.Null
	}
	return ec.introspectObject(sel, "__Type", func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "kind":
			return graphql.MarshalString(obj.Kind())
		case "name":
			return marshalOptionalString(obj.Name())
		case "description":
			return marshalOptionalString(obj.Description())
		case "specifiedByURL":
			return marshalOptionalString(obj.SpecifiedByURL())
		case "fields":
			return marshalEach(obj.Fields(ec.includeDeprecated(field)), func(f *introspection.Field) graphql.Marshaler {
				return ec.marshalField(field.Selections, f)
			})
		case "interfaces":
			return marshalEach(obj.Interfaces(), func(t *introspection.Type) graphql.Marshaler {
				return ec.marshalType(field.Selections, t)
			})
		case "possibleTypes":
			return marshalEach(obj.PossibleTypes(), func(t *introspection.Type) graphql.Marshaler {
				return ec.marshalType(field.Selections, t)
			})
		case "enumValues":
			return marshalEach(obj.EnumValues(ec.includeDeprecated(field)), func(v *introspection.EnumValue) graphql.Marshaler {
				return ec.marshalEnumValue(field.Selections, v)
			})
		case "inputFields":
			return marshalEach(obj.InputFields(), func(v *introspection.InputValue) graphql.Marshaler {
				return ec.marshalInputValue(field.Selections, v)
			})
		case "ofType":
			return ec.marshalType(field.Selections, obj.OfType())
		case "isOneOf":
			return graphql.MarshalBoolean(obj.IsOneOf())
		}
		panic("unknown field " + strconv.Quote(field.Name))
	})
}

func (ec *executionContext) marshalField(sel ast.SelectionSet, obj *introspection.Field) graphql.Marshaler {
	return ec.introspectObject(sel, "__Field", func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "name":
			return graphql.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(obj.Description())
		case "args":
			return marshalEach(obj.Args, func(v *introspection.InputValue) graphql.Marshaler {
				return ec.marshalInputValue(field.Selections, v)
			})
		case "type":
			return ec.marshalType(field.Selections, obj.Type)
		case "isDeprecated":
			return graphql.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			return marshalOptionalString(obj.DeprecationReason())
		}
		panic("unknown field " + strconv.Quote(field.Name))
	})
}

func (ec *executionContext) marshalInputValue(sel ast.SelectionSet, obj *introspection.InputValue) graphql.Marshaler {
	return ec.introspectObject(sel, "__InputValue", func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "name":
			return graphql.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(obj.Description())
		case "type":
			return ec.marshalType(field.Selections, obj.Type)
		case "defaultValue":
			return marshalOptionalString(obj.DefaultValue)
		case "isDeprecated":
			return graphql.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			return marshalOptionalString(obj.DeprecationReason())
		}
		panic("unknown field " + strconv.Quote(field.Name))
	})
}

func (ec *executionContext) marshalEnumValue(sel ast.SelectionSet, obj *introspection.EnumValue) graphql.Marshaler {
	return ec.introspectObject(sel, "__EnumValue", func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "name":
			return graphql.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(obj.Description())
		case "isDeprecated":
			return graphql.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			return marshalOptionalString(obj.DeprecationReason())
		}
		panic("unknown field " + strconv.Quote(field.Name))
	})
}

func (ec *executionContext) marshalDirective(sel ast.SelectionSet, obj *introspection.Directive) graphql.Marshaler {
	return ec.introspectObject(sel, "__Directive", func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "name":
			return graphql.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(obj.Description())
		case "isRepeatable":
			return graphql.MarshalBoolean(obj.IsRepeatable)
		case "locations":
			return marshalEach(obj.Locations, func(loc *string) graphql.Marshaler {
				return graphql.MarshalString(*loc)
			})
		case "args":
			return marshalEach(obj.Args, func(v *introspection.InputValue) graphql.Marshaler {
				return ec.marshalInputValue(field.Selections, v)
			})
		}
		panic("unknown field " + strconv.Quote(field.Name))
	})
}

func (ec *executionContext) includeDeprecated(field graphql.CollectedField) bool {
	v, _ := field.ArgumentMap(ec.Variables)["includeDeprecated"].(bool)
	return v
}

func marshalEach[T any](items []T, marshal func(*T) graphql.Marshaler) graphql.Marshaler {
	ret := make(graphql.Array, len(items))
	for i := range items {
		ret[i] = marshal(&items[i])
	}
	return ret
}

func marshalOptionalString(v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return graphql.MarshalString(*v)
}
