// Package server serves the search visualizer: a single page, JSON endpoints
// to step a search, and a websocket that streams steps at a fixed rate.
package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"github.com/pdrpinto/tilepath"
	"github.com/pdrpinto/tilepath/grid"
	"github.com/pdrpinto/tilepath/internal/config"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 1 * time.Second
	// Time to wait before force close on connection.
	closeGracePeriod = 500 * time.Millisecond
	shutdownTimeout  = 5 * time.Second
)

//go:embed static/index.html
var indexHTML []byte

var upgrader = websocket.Upgrader{}

// Server owns the current session; every handler goes through mu.
type Server struct {
	cfg     *config.Config
	baseMap *grid.Map
	logger  *log.Logger
	router  *mux.Router

	mu      sync.Mutex
	session *session
}

// New builds a server. A non-nil baseMap is served by /init unless the
// request asks for a random layout.
func New(cfg *config.Config, baseMap *grid.Map, logger *log.Logger) (*Server, error) {
	srv := &Server{
		cfg:     cfg,
		baseMap: baseMap,
		logger:  logger,
	}
	sess, err := srv.defaultSession()
	if err != nil {
		return nil, err
	}
	srv.session = sess

	r := mux.NewRouter()
	r.HandleFunc("/", srv.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/init", srv.handleInit).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/next", srv.handleNext).Methods(http.MethodGet)
	r.HandleFunc("/path", srv.handlePath).Methods(http.MethodGet)
	r.HandleFunc("/ws", srv.handleWebsocket)
	srv.router = r
	return srv, nil
}

// Handler exposes the router, for tests and embedding.
func (srv *Server) Handler() http.Handler { return srv.router }

func (srv *Server) defaultSession() (*session, error) {
	if srv.baseMap != nil {
		return fileSession(srv.baseMap)
	}
	return randomSession(srv.cfg.Map.Random())
}

// Serve listens on the configured address until ctx is done. If the address
// is taken it falls back to a random local port.
func (srv *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", srv.cfg.Server.Addr)
	if err != nil {
		srv.logger.Printf("listen %s: %v, falling back to a random port", srv.cfg.Server.Addr, err)
		if ln, err = net.Listen("tcp", "127.0.0.1:0"); err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}
	srv.logger.Printf("visualizer: http://%s", ln.Addr())

	httpServer := &http.Server{
		Handler:     srv.router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func (srv *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleInit starts a new session. Any layout parameter in the query selects
// a random map; otherwise the configured map is reused.
func (srv *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	layout := srv.cfg.Map.Random()
	random := srv.baseMap == nil
	if v, err := strconv.Atoi(q.Get("w")); err == nil && v > 1 {
		layout.Width, random = v, true
	}
	if v, err := strconv.Atoi(q.Get("h")); err == nil && v > 1 {
		layout.Height, random = v, true
	}
	if v, err := strconv.Atoi(q.Get("clusters")); err == nil && v >= 0 {
		layout.Clusters, random = v, true
	}
	if v, err := strconv.Atoi(q.Get("steps")); err == nil && v >= 0 {
		layout.Steps, random = v, true
	}
	if v, err := strconv.ParseFloat(q.Get("density"), 64); err == nil && v >= 0 && v <= 1 {
		layout.Density, random = v, true
	}
	if v, err := strconv.ParseInt(q.Get("seed"), 10, 64); err == nil {
		layout.Seed, random = v, true
	}

	if random && !config.FitsCells(layout.Width, layout.Height, srv.cfg.Server.MaxCells) {
		http.Error(w, fmt.Sprintf("map %dx%d exceeds %d cells", layout.Width, layout.Height, srv.cfg.Server.MaxCells),
			http.StatusBadRequest)
		return
	}

	var (
		sess *session
		err  error
	)
	if random {
		sess, err = randomSession(layout)
	} else {
		sess, err = fileSession(srv.baseMap)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	srv.mu.Lock()
	srv.session = sess
	srv.mu.Unlock()

	srv.logger.Printf("init: %dx%d start %v goal %v", sess.tiles.Width(), sess.tiles.Height(), sess.start, sess.goal)
	writeJSON(w, map[string]any{
		"ok":    true,
		"w":     sess.tiles.Width(),
		"h":     sess.tiles.Height(),
		"start": pair(sess.start),
		"goal":  pair(sess.goal),
	})
}

func (srv *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	srv.mu.Lock()
	sess := srv.session
	out := sess.snapshotOf(sess.stepper.Step())
	srv.mu.Unlock()
	writeJSON(w, out)
}

// handlePath answers a full search on the current map. Missing coordinates
// default to the session's start and goal.
func (srv *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	srv.mu.Lock()
	sess := srv.session
	srv.mu.Unlock()

	q := r.URL.Query()
	start, goal := sess.start, sess.goal
	for _, c := range []struct {
		key string
		dst *int
	}{{"sx", &start.X}, {"sy", &start.Y}, {"gx", &goal.X}, {"gy", &goal.Y}} {
		raw := q.Get(c.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("bad %s: %v", c.key, err), http.StatusBadRequest)
			return
		}
		*c.dst = v
	}

	result, err := tilepath.NewPathFinder(sess.tiles).Search(r.Context(), start, goal)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, pathResponse{
		Found:    result.Found(),
		State:    result.State.String(),
		Cost:     result.TotalCost,
		Expanded: result.ExpandedNodes,
		Path:     pointsToList(result.Path),
	})
}

// handleWebsocket streams a fresh search over the current map, one snapshot
// per step interval, until it is done or the client leaves.
func (srv *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		srv.logger.Println("upgrade:", err)
		return
	}
	defer srv.closeWebsocket(ws)

	srv.mu.Lock()
	sess := newSession(srv.session.tiles, srv.session.start, srv.session.goal)
	srv.mu.Unlock()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		// Reads surface the client's close frame.
		defer cancel()
		for {
			if _, _, err := ws.NextReader(); err != nil {
				return
			}
		}
	}()

	if err := srv.publishSteps(ctx, ws, sess); err != nil {
		srv.logger.Println("publish:", err)
	}
}

func (srv *Server) publishSteps(ctx context.Context, ws *websocket.Conn, sess *session) error {
	ticker := channerics.NewTicker(ctx.Done(), srv.cfg.Server.StepInterval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker:
		}
		if ctx.Err() != nil {
			return nil
		}
		step := sess.stepper.Step()
		if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		if err := ws.WriteJSON(sess.snapshotOf(step)); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		if step.Done {
			return nil
		}
	}
}

func (srv *Server) closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	ws.Close()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
