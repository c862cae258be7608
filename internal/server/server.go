// Package server exposes the GraphQL schema over HTTP.
package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

const (
	// RequestIDHeader carries the request ID on requests and responses.
	RequestIDHeader = "X-Request-ID"

	// PlaygroundTitle is the page title of the in-browser query editor.
	PlaygroundTitle = "Usergraph"

	requestIDKey = "requestID"
)

// Options configures the router.
type Options struct {
	// LogOutput receives one access log line per request. Nil means gin.DefaultWriter.
	LogOutput io.Writer
}

// New returns a gin engine serving:
//   - POST /graphql for queries and mutations
//   - GET /graphql for queries, or the playground when no query is given
//   - GET /healthz
func New(es graphql.ExecutableSchema, opts Options) *gin.Engine {
	out := opts.LogOutput
	if out == nil {
		out = gin.DefaultWriter
	}

	r := gin.New()
	r.Use(
		requestID(),
		gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormat, Output: out}),
		gin.Recovery(),
	)

	gql := gin.WrapH(newGraphQLHandler(es))
	play := gin.WrapH(playground.Handler(PlaygroundTitle, "/graphql"))

	r.POST("/graphql", gql)
	r.OPTIONS("/graphql", gql)
	r.GET("/graphql", func(c *gin.Context) {
		if c.Query("query") == "" {
			play(c)
			return
		}
		gql(c)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// newGraphQLHandler validates every document before dispatching, so a
// rejected request never reaches a resolver. GET only carries queries.
func newGraphQLHandler(es graphql.ExecutableSchema) *handler.Server {
	srv := handler.New(es)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	srv.Use(extension.Introspection{})

	return srv
}

// requestID reuses the caller's request ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			var err error
			id, err = gonanoid.New()
			if err != nil {
				c.AbortWithError(http.StatusInternalServerError, fmt.Errorf("generating request ID: %w", err))
				return
			}
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func logFormat(p gin.LogFormatterParams) string {
	id, _ := p.Keys[requestIDKey].(string)
	return fmt.Sprintf("[%s] %s %s %s %d %s\n",
		p.TimeStamp.Format(time.RFC3339),
		id,
		p.Method,
		p.Path,
		p.StatusCode,
		p.Latency,
	)
}
