// Command server runs the UV assembly tracking API server.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and
// environment variables. The process shuts down gracefully on SIGINT
// or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/amteixeira/uvtrack-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
