package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pokerlog/internal/api"
	"github.com/balkashynov/pokerlog/internal/config"
	"github.com/balkashynov/pokerlog/internal/db"
	"github.com/balkashynov/pokerlog/internal/sessions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the session API over HTTP",
	Long: `Serve the /poker-sessions JSON API on POKERLOG_HTTP_ADDR (default :3001).

With --memory sessions live only as long as the server runs, nothing touches the database.`,
	Run: func(cmd *cobra.Command, args []string) {
		memory, _ := cmd.Flags().GetBool("memory")
		addr, _ := cmd.Flags().GetString("addr")

		var service *sessions.Service
		if memory {
			loaded, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			loc, _ := loaded.Location()
			cfg = loaded
			service = sessions.NewService(sessions.NewMemoryStore(), sessions.WithLocation(loc))
			log.Println("Using in-memory session store")
		} else {
			initDB()
			defer db.Close()
			service = svc
			log.Printf("Using database %s", cfg.DBPath)
		}

		if addr == "" {
			addr = cfg.HTTPAddr
		}

		if err := serve(commandContext(cmd), addr, api.NewRouter(service)); err != nil {
			log.Printf("Server error: %v", err)
		}
	},
}

// serve runs the HTTP server until ctx is done or SIGINT/SIGTERM arrives
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", addr)
		log.Println("Endpoints:")
		log.Println("  POST/GET   /poker-sessions")
		log.Println("  GET        /poker-sessions/active")
		log.Println("  GET        /poker-sessions/stats")
		log.Println("  GET/PUT    /poker-sessions/{id}")
		log.Println("  PUT        /poker-sessions/{id}/end")
		log.Println("  DELETE     /poker-sessions/{id}")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Println("Server exited")
	return nil
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default POKERLOG_HTTP_ADDR or :3001)")
	serveCmd.Flags().Bool("memory", false, "Keep sessions in memory instead of the database")
}
