package graph

import (
	"bytes"
	_ "embed"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

//go:embed schema.graphqls
var schemaSource string

// parsedSchema is loaded once; the SDL is compiled into the binary, so a
// failure here is a programming error.
var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{
	Name:  "schema.graphqls",
	Input: schemaSource,
})

// FormatSchema renders the schema as SDL.
func FormatSchema() string {
	var buf bytes.Buffer
	f := formatter.NewFormatter(&buf, formatter.WithIndent("  "))
	f.FormatSchema(parsedSchema)
	return buf.String()
}
