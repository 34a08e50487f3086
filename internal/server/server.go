package server

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/buswatch/buslights/internal/engine"
	"github.com/buswatch/buslights/internal/metrics"
	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ServerConfig interface {
	Port() uint
}

// server fans engine snapshots out to websocket listeners and serves the
// observational HTTP surface. It never feeds commands back into the engine;
// the serial protocol stays the only command path.
type server struct {
	cfg          ServerConfig
	engine       engine.Engine
	logger       *zap.Logger
	listeners    map[*listener]struct{}
	listenersMtx sync.Mutex
	lastOutput   atomic.Pointer[[]byte]
}

type listener struct {
	msgs chan []byte
}

func NewServer(cfg ServerConfig, eng engine.Engine, logger *zap.Logger) *http.Server {
	s := &server{
		cfg:       cfg,
		engine:    eng,
		logger:    logger,
		listeners: make(map[*listener]struct{}),
	}

	go func() {
		for o := range eng.Output() {
			s.lastOutput.Store(&o)

			s.listenersMtx.Lock()
			for l := range s.listeners {
				select {
				case l.msgs <- o:
				default:
					s.logger.Warn("mirror listener too slow, dropping snapshot")
				}
			}
			s.listenersMtx.Unlock()
		}
	}()

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port()),
		Handler:           s.registerRoutes(),
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (s *server) addListener(l *listener) {
	s.listenersMtx.Lock()
	defer s.listenersMtx.Unlock()
	s.listeners[l] = struct{}{}
	if lo := s.lastOutput.Load(); lo != nil {
		l.msgs <- *lo
	}
}

func (s *server) removeListener(l *listener) {
	s.listenersMtx.Lock()
	defer s.listenersMtx.Unlock()
	delete(s.listeners, l)
}

func (s *server) registerRoutes() http.Handler {
	r := gin.Default()

	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewEngineCollector(s.engine))

	r.GET("/status", s.statusHandler)
	r.GET("/strand", s.strandHandler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

func (s *server) statusHandler(c *gin.Context) {
	stats := s.engine.Stats()

	var event any
	if ev, active := s.engine.ActiveEvent(); active {
		event = ev.String()
	}

	c.JSON(http.StatusOK, gin.H{
		"shift":             s.engine.Shift().String(),
		"event":             event,
		"idle_type":         s.engine.IdleType().String(),
		"commands_applied":  stats.CommandsApplied,
		"commands_invalid":  stats.InvalidCommands,
		"events_started":    stats.EventsStarted,
		"frames_rendered":   stats.FramesRendered,
		"show_errors":       stats.ShowErrors,
		"snapshots_dropped": stats.SnapshotsDropped,
	})
}

func (s *server) strandHandler(c *gin.Context) {
	l := &listener{msgs: make(chan []byte, 4)}
	s.addListener(l)
	defer s.removeListener(l)

	w := c.Writer
	r := c.Request
	socket, err := websocket.Accept(w, r, nil)

	if err != nil {
		s.logger.Error("could not open websocket", zap.Error(err))
		_, _ = w.Write([]byte("could not open websocket"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer socket.CloseNow()

	readerErrChan := make(chan error, 1)
	reader := func() {
		// The mirror is write-only; reading just drains whatever the
		// client sends and surfaces the close.
		for {
			_, _, err := socket.Read(c)
			if err != nil {
				readerErrChan <- err
				return
			}
		}
	}

	go reader()

	for {
		select {
		case <-c.Done():
			return
		case payload := <-l.msgs:
			err := socket.Write(c, websocket.MessageBinary, payload)
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			if err != nil {
				s.logger.Error("could not write to websocket", zap.Error(err))
				return
			}
		case err := <-readerErrChan:
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			s.logger.Warn("could not read from websocket", zap.Error(err))
			return
		}
	}
}
