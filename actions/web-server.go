package actions

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/relloyd/tdch/constants"
	"github.com/relloyd/tdch/helper"
	"github.com/relloyd/tdch/logger"
	"github.com/relloyd/tdch/stats"
	"golang.org/x/net/context"
)

const (
	urlContextArgs   = "/args"
	urlContextHealth = "/health"
	urlContextStats  = "/stats"
)

type WebServerConfig struct {
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	Scheme           string `errorTxt:"scheme" mandatory:"no"`
	Addr             net.IP `errorTxt:"address" mandatory:"no"`
	Port             int    `errorTxt:"port" mandatory:"yes"`
	WorkDir          string // root for relative library specs
	StackDumpOnPanic bool
	// StatsDumpFrequencySeconds is the interval between logging request stats (0 to disable).
	StatsDumpFrequencySeconds int
}

func RunWebServer(web *WebServerConfig) error {
	if web == nil {
		return errors.New("nil pointer to web server config supplied")
	}
	if err := helper.ValidateStructIsPopulated(web); err != nil {
		return err
	}
	log := logger.NewJSONLogger(constants.ServiceName, web.LogLevel, web.StackDumpOnPanic)
	reqStats := stats.NewRequestStats(log, stats.SetStatsDumpFrequency(web.StatsDumpFrequencySeconds))
	reqStats.StartDumping()
	defer reqStats.StopDumping()
	srv, chanStopServer := runServer(log, web, reqStats)
	return waitForServer(log, srv, chanStopServer)
}

// newRouter returns the routes served by the web service.
// Stats are kept for /args, /health and /stats in that order.
func newRouter(log *logger.LoggerImpl, workDir string, chanStopServer chan string, reqStats *stats.RequestStatsManager) *mux.Router {
	argsWatcher := reqStats.AddRouteWatcher(urlContextArgs)
	healthWatcher := reqStats.AddRouteWatcher(urlContextHealth)
	statsWatcher := reqStats.AddRouteWatcher(urlContextStats)
	r := mux.NewRouter()
	r.HandleFunc("/stop", GetHandlerStopServer(log, chanStopServer))
	r.Path(urlContextHealth).HandlerFunc(GetHandlerHealth(log, healthWatcher))
	r.Path(urlContextStats).Methods(http.MethodGet).HandlerFunc(GetHandlerStats(log, reqStats, statsWatcher))
	r.Path(urlContextArgs).Methods(http.MethodPost).HandlerFunc(GetHandlerArgs(log, workDir, argsWatcher))
	return r
}

// runServer starts a web server and returns:
// 1) the server; and
// 2) a channel that can be used to stop the web server
func runServer(log *logger.LoggerImpl, web *WebServerConfig, reqStats *stats.RequestStatsManager) (*http.Server, chan string) {
	chanStopServer := make(chan string, 1)
	srv := &http.Server{
		Addr:         fmt.Sprintf("%v:%v", web.Addr, web.Port),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      newRouter(log, web.WorkDir, chanStopServer, reqStats),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			if err == http.ErrServerClosed {
				log.Info(err)
			} else {
				log.Panic(err)
			}
		}
	}()
	scheme := web.Scheme
	if scheme == "" {
		scheme = "http"
	}
	log.Info(fmt.Sprintf("Listening on %v://%v:%v", strings.ToLower(scheme), web.Addr, web.Port))
	return srv, chanStopServer
}

func waitForServer(log logger.Logger, srv *http.Server, chanStopServer chan string) error {
	// Accept graceful shutdowns when quit via SIGINT (Ctrl+C) or a request to /stop.
	chanOS := make(chan os.Signal, 1)
	signal.Notify(chanOS, os.Interrupt)
	select {
	case <-chanStopServer:
	case <-chanOS:
	}
	log.Info("Shutting down web server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	return srv.Shutdown(ctx) // waits for open connections until the deadline
}
