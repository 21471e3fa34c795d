package observability

import (
	"testing"
	"time"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/equipment", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/equipment", "GET", 200, 30*time.Millisecond)
	m.RecordRequest("/api/stats", "GET", 403, time.Millisecond)
	m.RecordError("/api/stats", "GET", "FORBIDDEN")

	snap := m.Snapshot()
	if got := snap.Requests["/api/equipment|GET|200"]; got != 2 {
		t.Fatalf("expected 2 equipment requests, got %d", got)
	}
	if got := snap.AvgLatencyMilli["/api/equipment|GET|200"]; got != 20 {
		t.Fatalf("expected 20ms average, got %d", got)
	}
	if got := snap.Errors["/api/stats|GET|FORBIDDEN"]; got != 1 {
		t.Fatalf("expected 1 forbidden error, got %d", got)
	}

	m.RecordRequest("/api/stats", "GET", 403, time.Millisecond)
	if snap.Requests["/api/stats|GET|403"] != 1 {
		t.Fatalf("snapshot must not change after later writes")
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	if snap := m.Snapshot(); len(snap.Requests) != 0 {
		t.Fatalf("expected empty snapshot")
	}
}
