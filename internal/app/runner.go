package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
)

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(server *http.Server, ops OpsServer, ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
		startServer(server, logger)
		startOpsServer(ops, logger)
		waitForShutdown(ctx, logger)
		gracefulShutdown(server, ops, logger, 15*time.Second)
		closeResources(pool, server, ops, logger)
		return nil
	})
}

func startServer(server *http.Server, logger *log.Logger) {
	go func() {
		logger.Printf("rosterbid listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func startOpsServer(ops OpsServer, logger *log.Logger) {
	if ops.Server == nil {
		return
	}
	go func() {
		logger.Printf("rosterbid ops listening on %s", ops.Addr)
		if err := ops.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Printf("ops listen error: %v", err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger *log.Logger) {
	<-ctx.Done()
	logger.Println("shutting down rosterbid...")
}

func gracefulShutdown(srv *http.Server, ops OpsServer, logger *log.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	if ops.Server != nil {
		if err := ops.Shutdown(shCtx); err != nil {
			logger.Printf("ops graceful shutdown error: %v", err)
		}
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, ops OpsServer, logger *log.Logger) {
	if err := server.Close(); err != nil {
		logger.Printf("server close error: %v", err)
	}
	if ops.Server != nil {
		if err := ops.Close(); err != nil {
			logger.Printf("ops server close error: %v", err)
		}
	}
	if pool != nil {
		pool.Close()
	}
}
