package stats

import (
	"sync"
	"time"

	"github.com/cevaris/ordered_map"
	"github.com/relloyd/tdch/logger"
)

type StatsFetcher interface {
	GetStats() []Stats
}

const DefaultStatsDumpFrequencySeconds = 60

// RequestStatsManager holds a RouteWatcher per route added via AddRouteWatcher
// and periodically logs their stats.
type RequestStatsManager struct {
	ticker          *time.Ticker
	tickerDone      chan struct{}
	tickerIsRunning bool
	tickerFrequency int
	mu              sync.Mutex
	log             logger.Logger
	mapRouteStats   *ordered_map.OrderedMap // route => *RouteWatcher in the order they were added
}

// SetStatsDumpFrequency returns a function that can be supplied as an option to constructor NewRequestStats().
// Use 0 to disable dumping.
func SetStatsDumpFrequency(seconds int) func(t *RequestStatsManager) {
	return func(t *RequestStatsManager) {
		t.tickerFrequency = seconds
	}
}

func NewRequestStats(log logger.Logger, options ...func(t *RequestStatsManager)) *RequestStatsManager {
	t := &RequestStatsManager{log: log, tickerFrequency: DefaultStatsDumpFrequencySeconds}
	for _, option := range options {
		option(t)
	}
	t.tickerDone = make(chan struct{})
	t.mapRouteStats = ordered_map.NewOrderedMap()
	return t
}

// AddRouteWatcher returns the RouteWatcher for route, creating it on first use.
func (t *RequestStatsManager) AddRouteWatcher(route string) *RouteWatcher {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rw, ok := t.mapRouteStats.Get(route); ok {
		return rw.(*RouteWatcher)
	}
	rw := NewRouteWatcher(route)
	t.mapRouteStats.Set(route, rw)
	return rw
}

func (t *RequestStatsManager) StartDumping() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tickerIsRunning {
		t.log.Debug("stats dumper ticker already running")
		return
	}
	if t.tickerFrequency <= 0 {
		t.log.Debug("stats dumper disabled")
		return
	}
	t.ticker = time.NewTicker(time.Second * time.Duration(t.tickerFrequency))
	t.tickerIsRunning = true
	go func() {
		t.log.Debug("stats dumper ticker started")
		for {
			select {
			case <-t.tickerDone:
				t.log.Debug("stats dumper ticker stopped")
				return
			case <-t.ticker.C:
				t.logStats()
			}
		}
	}()
}

// StopDumping will stop the ticker and dump the current stats,
// only if the ticker was already running via a call to StartDumping().
func (t *RequestStatsManager) StopDumping() {
	t.mu.Lock()
	running := t.tickerIsRunning
	if running {
		t.tickerIsRunning = false
		t.ticker.Stop()
		t.tickerDone <- struct{}{} // cause the goroutine to exit (we can't close ticker.C)
	}
	t.mu.Unlock()
	if running {
		t.logStats()
	}
}

func (t *RequestStatsManager) logStats() {
	for _, s := range t.GetStats() {
		t.log.Info(s.String())
	}
}

// GetStats implements interface StatsFetcher{}.
func (t *RequestStatsManager) GetStats() []Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	statsList := make([]Stats, 0, t.mapRouteStats.Len())
	iter := t.mapRouteStats.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() { // for each route...
		statsList = append(statsList, kv.Value.(*RouteWatcher).RenderStats())
	}
	return statsList
}
