package stats

import (
	"sync"
	"testing"

	"github.com/relloyd/tdch/logger"
)

func TestRequestStatsManager(t *testing.T) {
	log := logger.NewLogger("tdch", "error", false)
	mgr := NewRequestStats(log, SetStatsDumpFrequency(0))
	args := mgr.AddRouteWatcher("/args")
	health := mgr.AddRouteWatcher("/health")
	// Test 1 - the same watcher is returned for a route.
	if mgr.AddRouteWatcher("/args") != args {
		t.Fatal("test 1 failed, expected the existing watcher to be returned")
	}
	// Test 2 - concurrent records are all counted.
	wg := sync.WaitGroup{}
	for idx := 0; idx < 50; idx++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			args.Record(idx%5 != 0)
		}(idx)
	}
	wg.Wait()
	health.Record(true)
	s := mgr.GetStats()
	if len(s) != 2 || s[0].Route != "/args" || s[1].Route != "/health" {
		t.Fatalf("test 2 failed, expected stats for /args then /health; got: %v", s)
	}
	if s[0].TotalRequests != 50 || s[0].Succeeded != 40 || s[0].Failed != 10 {
		t.Fatalf("test 2 failed, expected: 50 total, 40 succeeded, 10 failed; got: %v", s[0])
	}
	if s[0].RequestsPerMinuteAvg <= 0 {
		t.Fatalf("test 2 failed, expected a positive request rate; got: %v", s[0].RequestsPerMinuteAvg)
	}
	// Test 3 - dumping disabled is a no-op.
	mgr.StartDumping()
	mgr.StopDumping()
}

func TestRequestStatsManagerDumping(t *testing.T) {
	log := logger.NewLogger("tdch", "error", false)
	mgr := NewRequestStats(log, SetStatsDumpFrequency(1))
	mgr.AddRouteWatcher("/args").Record(false)
	mgr.StartDumping()
	mgr.StartDumping() // already running
	mgr.StopDumping()
	mgr.StopDumping() // already stopped
	if got := mgr.GetStats()[0].Failed; got != 1 {
		t.Fatalf("expected: 1; got: %v", got)
	}
}
