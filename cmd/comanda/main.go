package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comanda/internal/api"
	"comanda/internal/audit"
	"comanda/internal/catalog"
	"comanda/internal/completion"
	"comanda/internal/config"
	"comanda/internal/inventory"
	"comanda/internal/orders"
	"comanda/internal/simulator"
	"comanda/internal/suggest"
	"comanda/internal/tables"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "", "Path to configuration file")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	// Catalog and opening stock
	cat := catalog.NewStore()
	if err := catalog.Seed(cat); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	ledger := inventory.NewLedger(cat.Ingredients(), inventory.StockPolicy(cfg.Policies.Stock))
	registry := tables.NewRegistry(cfg.Tables.Count)
	book := orders.NewBook(cat)

	// Audit trail
	var auditStore *audit.Store
	if cfg.Audit.Path != "" {
		auditStore, err = audit.Open(cfg.Audit.Path)
		if err != nil {
			log.Fatalf("Failed to open audit store: %v", err)
		}
		defer auditStore.Close()
	}

	var recorder completion.Recorder
	if auditStore != nil {
		recorder = auditStore
	}
	coordinator := completion.NewCoordinator(book, cat, ledger, recorder, completion.Policy(cfg.Policies.Completion))

	// Recipe suggestions are optional; the rest of the system does not
	// depend on them.
	var suggester *suggest.Suggester
	if cfg.Suggestions.OpenAIKey != "" {
		suggester, err = suggest.New(cfg.Suggestions.OpenAIKey, cfg.Suggestions.Model)
		if err != nil {
			log.Fatalf("Failed to initialize suggestion service: %v", err)
		}
	} else {
		log.Println("OPENAI_API_KEY not set, recipe suggestions disabled")
	}

	if cfg.Simulator.Enabled {
		sim := simulator.New(book, cat, time.Duration(cfg.Simulator.Interval), cfg.Tables.Count)
		go sim.Run(ctx)
	}

	go startMetricsServer(cfg.Server.MetricsPort)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.NewServer(book, cat, ledger, registry, coordinator, suggester, auditStore).Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}

		cancel()
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func startMetricsServer(port int) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
