package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strconv"

	core2 "github.com/dhanush-r-m/TradeWiz/internal/core"
	"github.com/dhanush-r-m/TradeWiz/internal/data"
	"github.com/dhanush-r-m/TradeWiz/internal/mock"
	"github.com/dhanush-r-m/TradeWiz/internal/service"
	"github.com/gorilla/mux"
)

// Legacy single-binary variant kept for quick local runs: same engine,
// plain net/http handlers over gorilla/mux instead of the gin API in
// cmd/. The engine starts immediately rather than waiting for a start
// command.

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func main() {
	ctx := context.Background()

	statsStore := data.NewStatsStore()
	generator := mock.NewTransactionGenerator()
	engine := core2.NewEngine(generator, statsStore, slog.Default())
	benchService := service.NewBenchService(ctx, engine, statsStore)

	engine.Start(ctx)

	r := mux.NewRouter()

	r.HandleFunc("/stats", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, benchService.Stats(req.Context()))
	}).Methods("GET")

	r.HandleFunc("/history", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, benchService.History(req.Context()))
	}).Methods("GET")

	r.HandleFunc("/sorted", func(w http.ResponseWriter, req *http.Request) {
		limit := 0
		if raw := req.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				http.Error(w, "limit must be a non-negative number", http.StatusBadRequest)
				return
			}
			limit = parsed
		}
		writeJSON(w, benchService.SortedOutput(req.Context(), limit))
	}).Methods("GET")

	r.HandleFunc("/encoded", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, benchService.EncodedSample(req.Context()))
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	port := 8080
	fmt.Printf("Trade sort benchmark (legacy) starting on port %d\n", port)
	fmt.Printf("Endpoints:\n")
	fmt.Printf("  GET /stats\n")
	fmt.Printf("  GET /history\n")
	fmt.Printf("  GET /sorted?limit=50\n")
	fmt.Printf("  GET /encoded\n")
	fmt.Printf("  GET /health\n")

	log.Fatal(http.ListenAndServe(":"+strconv.Itoa(port), r))
}
