package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"results_feed/internal/app"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp().Run(ctx); err != nil {
		log.Fatalf("app stopped with error: %v", err)
	}
}
