package data

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/dhanush-r-m/TradeWiz/internal/model"
)

const floatDelta = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatDelta
}

func makeSortedBatch(n int) []model.Transaction {
	batch := make([]model.Transaction, n)
	for i := range batch {
		batch[i] = model.Transaction{
			ID:        fmt.Sprintf("tx_%d", i),
			Symbol:    "AAPL",
			Price:     50.0 + float64(i),
			Timestamp: int64(i),
		}
	}
	return batch
}

func makeEncodedBatch(n int) []model.EncodedTransaction {
	encoded := make([]model.EncodedTransaction, n)
	for i := range encoded {
		encoded[i] = model.EncodedTransaction{
			Transaction: model.Transaction{ID: fmt.Sprintf("tx_%d", i)},
			SortKey:     uint64(i),
		}
	}
	return encoded
}

func TestDefaultStoreConfig(t *testing.T) {
	config := DefaultStoreConfig()

	if config.HistoryCapacity != 20 {
		t.Errorf("Expected HistoryCapacity to be 20, got %d", config.HistoryCapacity)
	}
	if config.SortedWindowSize != 500 {
		t.Errorf("Expected SortedWindowSize to be 500, got %d", config.SortedWindowSize)
	}
	if config.EncodedSampleSize != 20 {
		t.Errorf("Expected EncodedSampleSize to be 20, got %d", config.EncodedSampleSize)
	}
}

func TestAddGenerated(t *testing.T) {
	store := NewStatsStore()

	store.AddGenerated(100)
	store.AddGenerated(50)

	stats := store.Snapshot()
	if stats.TotalTransactions != 150 {
		t.Errorf("TotalTransactions = %d, want 150", stats.TotalTransactions)
	}
	if stats.LastRadixDurationMs != 0 || stats.LastMergeDurationMs != 0 {
		t.Error("generation alone must not touch pass durations")
	}
	if len(store.History()) != 0 {
		t.Error("generation alone must not append history samples")
	}
}

func TestRecordPass(t *testing.T) {
	store := NewStatsStore()
	store.AddGenerated(500)

	store.RecordPass(4*time.Millisecond, 6*time.Millisecond, 500)

	stats := store.Snapshot()
	if !floatEquals(stats.LastRadixDurationMs, 4.0) {
		t.Errorf("LastRadixDurationMs = %v, want 4.0", stats.LastRadixDurationMs)
	}
	if !floatEquals(stats.LastMergeDurationMs, 6.0) {
		t.Errorf("LastMergeDurationMs = %v, want 6.0", stats.LastMergeDurationMs)
	}
	if !floatEquals(stats.AverageSortDurationMs, 5.0) {
		t.Errorf("AverageSortDurationMs = %v, want 5.0", stats.AverageSortDurationMs)
	}
	if stats.TotalTransactions != 500 {
		t.Errorf("RecordPass must not re-count generated transactions, total = %d", stats.TotalTransactions)
	}

	history := store.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 history sample, got %d", len(history))
	}
	if history[0].BatchSize != 500 {
		t.Errorf("sample BatchSize = %d, want 500", history[0].BatchSize)
	}
	if history[0].RunningTotal != 500 {
		t.Errorf("sample RunningTotal = %d, want 500", history[0].RunningTotal)
	}
	if history[0].CapturedAt == "" {
		t.Error("sample CapturedAt should be populated")
	}
}

func TestRecordPassOverwritesLatestTimings(t *testing.T) {
	store := NewStatsStore()

	store.RecordPass(2*time.Millisecond, 8*time.Millisecond, 500)
	store.RecordPass(3*time.Millisecond, 5*time.Millisecond, 600)

	stats := store.Snapshot()
	if !floatEquals(stats.LastRadixDurationMs, 3.0) {
		t.Errorf("LastRadixDurationMs = %v, want latest value 3.0", stats.LastRadixDurationMs)
	}
	if !floatEquals(stats.AverageSortDurationMs, 4.0) {
		t.Errorf("AverageSortDurationMs = %v, want mean of latest pass 4.0", stats.AverageSortDurationMs)
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	store := NewStatsStoreWithConfig(StoreConfig{
		HistoryCapacity:   3,
		SortedWindowSize:  500,
		EncodedSampleSize: 20,
	})

	for i := 1; i <= 5; i++ {
		store.RecordPass(time.Duration(i)*time.Millisecond, time.Duration(i)*time.Millisecond, i*100)
	}

	history := store.History()
	if len(history) != 3 {
		t.Fatalf("expected history capped at 3, got %d", len(history))
	}

	// Oldest two samples evicted; remaining are passes 3, 4, 5.
	wantSizes := []int{300, 400, 500}
	for i, want := range wantSizes {
		if history[i].BatchSize != want {
			t.Errorf("history[%d].BatchSize = %d, want %d", i, history[i].BatchSize, want)
		}
	}
}

func TestSetLatestPassBoundsWindows(t *testing.T) {
	store := NewStatsStoreWithConfig(StoreConfig{
		HistoryCapacity:   20,
		SortedWindowSize:  10,
		EncodedSampleSize: 5,
	})

	store.SetLatestPass(makeSortedBatch(25), makeEncodedBatch(25))

	sorted := store.LatestSorted(0)
	if len(sorted) != 10 {
		t.Fatalf("expected sorted window of 10, got %d", len(sorted))
	}
	// Trailing window keeps the last items.
	if sorted[0].ID != "tx_15" || sorted[9].ID != "tx_24" {
		t.Errorf("sorted window should hold the tail, got %s..%s", sorted[0].ID, sorted[9].ID)
	}

	encoded := store.EncodedSample()
	if len(encoded) != 5 {
		t.Fatalf("expected encoded sample of 5, got %d", len(encoded))
	}
	// Leading sample keeps the first items.
	if encoded[0].ID != "tx_0" || encoded[4].ID != "tx_4" {
		t.Errorf("encoded sample should hold the head, got %s..%s", encoded[0].ID, encoded[4].ID)
	}
}

func TestLatestSortedLimit(t *testing.T) {
	store := NewStatsStore()
	store.SetLatestPass(makeSortedBatch(100), nil)

	got := store.LatestSorted(10)
	if len(got) != 10 {
		t.Fatalf("expected 10 transactions, got %d", len(got))
	}
	if got[0].ID != "tx_90" {
		t.Errorf("limit should return the tail, first id = %s", got[0].ID)
	}

	if len(store.LatestSorted(0)) != 100 {
		t.Error("limit 0 should return the whole retained window")
	}
}

func TestReadsCopyOut(t *testing.T) {
	store := NewStatsStore()
	store.SetLatestPass(makeSortedBatch(5), makeEncodedBatch(5))
	store.RecordPass(time.Millisecond, time.Millisecond, 5)

	sorted := store.LatestSorted(0)
	sorted[0].ID = "mutated"
	if store.LatestSorted(0)[0].ID == "mutated" {
		t.Error("LatestSorted must return a copy")
	}

	history := store.History()
	history[0].BatchSize = -1
	if store.History()[0].BatchSize == -1 {
		t.Error("History must return a copy")
	}
}

func TestResetCompleteness(t *testing.T) {
	store := NewStatsStore()
	store.AddGenerated(1000)
	store.RecordPass(4*time.Millisecond, 6*time.Millisecond, 500)
	store.SetLatestPass(makeSortedBatch(50), makeEncodedBatch(50))

	store.Reset()

	stats := store.Snapshot()
	if stats.TotalTransactions != 0 {
		t.Errorf("TotalTransactions = %d after reset, want 0", stats.TotalTransactions)
	}
	if stats.LastRadixDurationMs != 0 || stats.LastMergeDurationMs != 0 || stats.AverageSortDurationMs != 0 {
		t.Error("durations not zeroed after reset")
	}
	if len(store.History()) != 0 {
		t.Error("history not emptied after reset")
	}
	if len(store.LatestSorted(0)) != 0 {
		t.Error("sorted window not emptied after reset")
	}
	if len(store.EncodedSample()) != 0 {
		t.Error("encoded sample not emptied after reset")
	}
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStatsStore()
	done := make(chan struct{})

	go func() {
		for i := 0; i < 500; i++ {
			store.AddGenerated(10)
			store.RecordPass(time.Millisecond, time.Millisecond, 10)
		}
		close(done)
	}()

	for i := 0; i < 500; i++ {
		store.Snapshot()
		store.History()
		store.LatestSorted(5)
	}
	<-done

	if store.Snapshot().TotalTransactions != 5000 {
		t.Errorf("TotalTransactions = %d, want 5000", store.Snapshot().TotalTransactions)
	}
}
