package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"nicspectra/internal/config"
	"nicspectra/internal/logging"
	"nicspectra/internal/refdata"
	"nicspectra/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	closer := logging.Setup(cfg.Log)
	defer closer.Close()

	tables, err := refdata.Load(cfg.DataDir)
	if err != nil {
		log.Fatalf("loading reference tables: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.Run(ctx, cfg, tables); err != nil {
		log.Printf("Server error: %v", err)
	}
}
