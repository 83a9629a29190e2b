package actions

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
	"github.com/relloyd/tdch/config"
	"github.com/relloyd/tdch/file"
	"github.com/relloyd/tdch/logger"
	"github.com/relloyd/tdch/stats"
	"github.com/relloyd/tdch/tdch"
	"github.com/rs/xid"
)

const maxRequestBytes = 1 << 20

type WebServerResponse uint32

const (
	Okay WebServerResponse = iota + 1
	Error
)

func (w WebServerResponse) MarshalJSON() ([]byte, error) {
	var retval string
	switch w {
	case Okay:
		retval = "ok"
	case Error:
		retval = "error"
	default:
		return nil, fmt.Errorf("unhandled WebServerResponse value in MarshalJSON() conversion")
	}
	return json.Marshal(retval)
}

func (w *WebServerResponse) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "ok":
		*w = Okay
	case "error":
		*w = Error
	default:
		return fmt.Errorf("unhandled WebServerResponse value %q", s)
	}
	return nil
}

type ResponseSimple struct {
	ServerStatus WebServerResponse `json:"status"`
}

type ResponseArgs struct {
	Status    WebServerResponse `json:"status"`
	Message   string            `json:"message,omitempty"`
	RequestId string            `json:"requestId"`
	ToolClass string            `json:"toolClass,omitempty"`
	Args      []string          `json:"args,omitempty"`
}

func GetHandlerHealth(log logger.Logger, watcher *stats.RouteWatcher) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer watcher.Record(true)
		w.WriteHeader(http.StatusOK)
		respond(log, w, ResponseSimple{ServerStatus: Okay})
	}
}

func GetHandlerStopServer(log logger.Logger, chanStop chan string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		select {
		case chanStop <- "stop":
			log.Info("Stop signal sent")
		default: // a stop is already pending
		}
		respond(log, w, ResponseSimple{ServerStatus: Okay})
	}
}

// GetHandlerArgs returns a handler that builds TDCH arguments from job properties in the request body (JSON).
// Library paths must be relative to workDir and stay inside it.
// Outcomes are counted by watcher.
func GetHandlerArgs(log *logger.LoggerImpl, workDir string, watcher *stats.RouteWatcher) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ok := false
		defer func() { watcher.Record(ok) }()
		id := xid.New().String()
		rlog := log.WithRequestId(id)
		b, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
		if err != nil {
			logAndRespond(rlog, err, w, http.StatusBadRequest,
				ResponseArgs{Status: Error, RequestId: id, Message: fmt.Sprintf("error reading request: %v", err)})
			return
		}
		props, unused, err := config.ParseJobProperties(b)
		if err != nil {
			logAndRespond(rlog, err, w, http.StatusBadRequest,
				ResponseArgs{Status: Error, RequestId: id, Message: fmt.Sprintf("error unmarshalling JSON: %v", err)})
			return
		}
		if len(unused) > 0 {
			rlog.Debug("ignoring job keys: ", unused)
		}
		if err = file.CheckSpecsWithinRoot(workDir, props.LibJars); err != nil { // if the client wants to look outside workDir...
			logAndRespond(rlog, err, w, http.StatusBadRequest, ResponseArgs{Status: Error, RequestId: id, Message: err.Error()})
			return
		}
		resp, err := BuildArgs(rlog, *props, workDir, true)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, tdch.ErrInternal) {
				status = http.StatusInternalServerError
			}
			logAndRespond(rlog, err, w, status, ResponseArgs{Status: Error, RequestId: id, Message: err.Error()})
			return
		}
		ok = true
		rlog.Info("built ", len(resp.Args), " TDCH arguments")
		w.WriteHeader(http.StatusOK)
		respond(rlog, w, ResponseArgs{Status: Okay, RequestId: id, ToolClass: resp.ToolClass, Args: resp.Args})
	}
}

// GetHandlerStats returns a handler that responds with request stats per route.
// The request is counted by watcher after the stats are rendered.
func GetHandlerStats(log logger.Logger, s stats.StatsFetcher, watcher *stats.RouteWatcher) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer watcher.Record(true)
		w.WriteHeader(http.StatusOK)
		respond(log, w, s.GetStats())
	}
}

func logAndRespond(log logger.Logger, err error, w http.ResponseWriter, status int, r interface{}) {
	log.Warn(err)
	w.WriteHeader(status)
	respond(log, w, r)
}

// respond will marshal i to a string and write it to w.
func respond(log logger.Logger, w http.ResponseWriter, i interface{}) {
	j, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		log.Error(err)
		return
	}
	if _, err = fmt.Fprint(w, string(j)); err != nil {
		log.Error(err)
	}
}
