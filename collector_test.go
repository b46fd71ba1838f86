package signpost

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestCollectorSyncMode(t *testing.T) {
	collector := NewCollector("sync", 10)
	defer collector.Close()
	collector.SetSyncMode(true)

	collector.Emit("Points", "hello")

	if collector.Count() != 1 {
		t.Errorf("Expected 1 record immediately in sync mode, got %d", collector.Count())
	}
}

func TestCollectorAsyncCollection(t *testing.T) {
	collector := NewCollector("async", 10)
	defer collector.Close()

	collector.Emit("Points", "hello")

	// Give the collector goroutine time to process.
	time.Sleep(10 * time.Millisecond)

	if collector.Count() != 1 {
		t.Errorf("Expected 1 record, got %d", collector.Count())
	}
}

func TestCollectorExportClearsBuffer(t *testing.T) {
	collector := NewCollector("export", 10)
	defer collector.Close()
	collector.SetSyncMode(true)

	collector.Emit("Points", "one")
	collector.Begin("Work", "id-1", "two")
	collector.End("Work", "id-1")

	records := collector.Export()
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	if collector.Count() != 0 {
		t.Errorf("Expected empty buffer after export, got %d", collector.Count())
	}

	if collector.Export() != nil {
		t.Error("Expected nil export from empty collector")
	}

	// Mutating the export must not affect the collector.
	records[0].Message = "mutated"
	collector.Emit("Points", "three")
	fresh := collector.Export()
	if fresh[0].Message != "three" {
		t.Errorf("Expected 'three', got %s", fresh[0].Message)
	}
}

func TestCollectorRecordFields(t *testing.T) {
	collector := NewCollector("fields", 10)
	defer collector.Close()
	collector.SetSyncMode(true)

	collector.Begin("Work", "abc123", "begin message")
	collector.End("Work", "abc123")

	records := collector.Export()
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	begin := records[0]
	if begin.Phase != PhaseBegin || begin.ID != "abc123" || begin.Message != "begin message" {
		t.Errorf("Unexpected begin record %+v", begin)
	}

	end := records[1]
	if end.Phase != PhaseEnd || end.ID != "abc123" || end.Message != "" {
		t.Errorf("Unexpected end record %+v", end)
	}
}

func TestCollectorClockStamping(t *testing.T) {
	clock := clockz.NewFakeClock()
	collector := NewCollectorWithClock("clock", 10, clock)
	defer collector.Close()
	collector.SetSyncMode(true)

	collector.Emit("Points", "first")
	clock.Advance(250 * time.Millisecond)
	collector.Emit("Points", "second")

	records := collector.Export()
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	elapsed := records[1].Time.Sub(records[0].Time)
	if elapsed != 250*time.Millisecond {
		t.Errorf("Expected 250ms between records, got %v", elapsed)
	}
}

func TestCollectorBackpressureDrops(t *testing.T) {
	// Buffer of one with a stopped consumer: records beyond capacity drop.
	collector := NewCollectorWithClock("drops", 1, clockz.RealClock)
	collector.Close()

	for i := 0; i < 10; i++ {
		collector.Emit("Points", "overflow")
	}

	if collector.DroppedCount() == 0 {
		t.Error("Expected drops when channel is saturated")
	}
}

func TestCollectorReset(t *testing.T) {
	collector := NewCollector("reset", 10)
	defer collector.Close()
	collector.SetSyncMode(true)

	collector.Emit("Points", "one")
	collector.Reset()

	if collector.Count() != 0 {
		t.Errorf("Expected empty buffer after reset, got %d", collector.Count())
	}

	if collector.DroppedCount() != 0 {
		t.Errorf("Expected zero dropped count after reset, got %d", collector.DroppedCount())
	}
}

func TestCollectorCloseDrains(t *testing.T) {
	collector := NewCollector("drain", 100)

	for i := 0; i < 50; i++ {
		collector.Emit("Points", fmt.Sprintf("record %d", i))
	}

	collector.Close()

	if collector.Count() != 50 {
		t.Errorf("Expected 50 records after drain, got %d", collector.Count())
	}

	// Repeated Close is safe.
	collector.Close()
}

func TestCollectorConcurrentCollect(t *testing.T) {
	collector := NewCollector("concurrent", 1000)
	defer collector.Close()
	collector.SetSyncMode(true)

	var wg sync.WaitGroup
	numGoroutines := 10
	recordsPer := 100

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < recordsPer; j++ {
				collector.Emit("Points", fmt.Sprintf("g%d-r%d", n, j))
			}
		}(i)
	}

	wg.Wait()

	if collector.Count() != numGoroutines*recordsPer {
		t.Errorf("Expected %d records, got %d", numGoroutines*recordsPer, collector.Count())
	}
}

func TestCollectorName(t *testing.T) {
	collector := NewCollector("named", 10)
	defer collector.Close()

	if collector.Name() != "named" {
		t.Errorf("Expected name 'named', got %s", collector.Name())
	}
}
