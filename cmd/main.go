package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhanush-r-m/TradeWiz/api"
	"github.com/dhanush-r-m/TradeWiz/internal/config"
	core2 "github.com/dhanush-r-m/TradeWiz/internal/core"
	"github.com/dhanush-r-m/TradeWiz/internal/data"
	"github.com/dhanush-r-m/TradeWiz/internal/mock"
	"github.com/dhanush-r-m/TradeWiz/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (defaults apply when empty)")
	flag.Parse()

	// Load configuration (compiled-in defaults when no file is given)
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived shutdown signal, stopping services...")
		cancel() // Cancel the context to stop the engine
	}()

	// 1. Create the statistics store (the engine's observable state)
	statsStore := data.NewStatsStoreWithConfig(data.StoreConfig{
		HistoryCapacity:   cfg.Engine.HistoryCapacity,
		SortedWindowSize:  cfg.Engine.SortedWindowSize,
		EncodedSampleSize: cfg.Engine.EncodedSampleSize,
	})

	// 2. Create the transaction generator
	generator := mock.NewTransactionGeneratorWithConfig(mock.GeneratorConfig{
		Symbols:        cfg.Generator.Symbols,
		PriceMin:       cfg.Generator.PriceMin,
		PriceMax:       cfg.Generator.PriceMax,
		JitterMaxNanos: 1_000_000,
	})

	// 3. Create the batch scheduler engine (idle until /control/start)
	engine := core2.NewEngineWithConfig(generator, statsStore, core2.SchedulerConfig{
		TickInterval:   cfg.Engine.TickInterval.Std(),
		FlushThreshold: cfg.Engine.FlushThreshold,
		RateMin:        cfg.Engine.RateMin,
		RateMax:        cfg.Engine.RateMax,
		DefaultRate:    cfg.Engine.DefaultRate,
	}, slog.Default())

	// 4. Create the benchmark service facade for the API
	benchService := service.NewBenchService(ctx, engine, statsStore)

	// Create API handler with the new architecture
	apiHandler := api.NewAPIHandler(benchService, slog.Default())

	// Start server
	fmt.Printf("Trade sort benchmark starting on port %d\n", cfg.Server.Port)
	fmt.Printf("Endpoints:\n")
	fmt.Printf("  GET  /stats | /history | /sorted?limit=50 | /encoded | /status | /health\n")
	fmt.Printf("  POST /control/start | /control/stop | /control/reset\n")
	fmt.Printf("  PUT  /config {\"sort_field\":..,\"algorithm\":..,\"rate\":..}\n")
	fmt.Printf("Press Ctrl+C to gracefully shutdown\n")

	log.Fatal(apiHandler.StartServer(cfg.Server.Port))
}
