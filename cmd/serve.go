package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hmans/usergraph/internal/graph"
	"github.com/hmans/usergraph/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST for queries and mutations, GET for queries)
  - GraphQL Playground at /graphql when opened in a browser
  - Health check at /healthz

The port is taken from --port, then the PORT environment variable, then the
config file, and defaults to 8080. Run "usergraph init" to write a config file.

Examples:
  # Start server on the configured port
  usergraph serve

  # Start server on a custom port
  usergraph serve --port 3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx)
	},
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context) error {
	port, err := cfg.ResolvePort(servePort)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	es := graph.NewExecutableSchema(graph.Config{
		Resolvers: graph.NewResolver(store),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      server.New(es, server.Options{}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fmt.Printf("GraphQL server running at http://localhost:%d/graphql\n", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Stops the server on cancellation, or after ListenAndServe failed.
	g.Go(func() error {
		<-gctx.Done()
		fmt.Printf("\nShutting down...\n")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		fmt.Println("Server stopped")
		return nil
	})

	return g.Wait()
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from PORT or config, else 8080)")
	rootCmd.AddCommand(serveCmd)
}
