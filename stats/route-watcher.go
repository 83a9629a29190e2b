package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// RouteWatcher counts the outcome of requests served by one route.
type RouteWatcher struct {
	route     string
	startTime time.Time
	total     int64
	succeeded int64
	failed    int64
}

type Stats struct {
	Route                string `json:"route"`
	ElapsedTimeSec       int    `json:"elapsedTimeSec"`
	TotalRequests        int    `json:"totalRequests"`
	Succeeded            int    `json:"succeeded"`
	Failed               int    `json:"failed"`
	RequestsPerMinuteAvg int    `json:"requestsPerMinuteAvg"`
}

func NewRouteWatcher(route string) *RouteWatcher {
	return &RouteWatcher{route: route, startTime: time.Now()}
}

// Record counts a request. It is safe for concurrent use.
func (r *RouteWatcher) Record(ok bool) {
	atomic.AddInt64(&r.total, 1)
	if ok {
		atomic.AddInt64(&r.succeeded, 1)
	} else {
		atomic.AddInt64(&r.failed, 1)
	}
}

// RenderStats gets a struct filled with stats at the point of time it is called.
func (r *RouteWatcher) RenderStats() Stats {
	total := atomic.LoadInt64(&r.total)
	return Stats{
		Route:                r.route,
		ElapsedTimeSec:       int(time.Since(r.startTime).Seconds()),
		TotalRequests:        int(total),
		Succeeded:            int(atomic.LoadInt64(&r.succeeded)),
		Failed:               int(atomic.LoadInt64(&r.failed)),
		RequestsPerMinuteAvg: int(total * 60 / getNumSecondsSinceTimeOrOne(r.startTime)),
	}
}

// String will format the stats for general logging.
func (s Stats) String() string {
	return fmt.Sprintf(
		"Stats for %v "+
			"elapsedTimeSec=%v "+
			"totalRequests=%v "+
			"succeeded=%v "+
			"failed=%v "+
			"requestsPerMinuteAvg=%v",
		s.Route,
		s.ElapsedTimeSec,
		s.TotalRequests,
		s.Succeeded,
		s.Failed,
		s.RequestsPerMinuteAvg,
	)
}

func getNumSecondsSinceTimeOrOne(t time.Time) (seconds int64) {
	seconds = int64(time.Since(t).Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return
}
