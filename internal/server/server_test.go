package server_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/buswatch/buslights/internal/engine"
	"github.com/buswatch/buslights/internal/palette"
	"github.com/buswatch/buslights/internal/protocol"
	"github.com/buswatch/buslights/internal/server"
	"github.com/buswatch/buslights/internal/strand"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type ServerTestSuite struct {
	suite.Suite
	server     *http.Server
	engine     engine.Engine
	src        *testSource
	cancel     context.CancelFunc
	engineDone chan error
}

type testConfig struct {
	port   uint
	length uint
	fps    uint
}

func (c *testConfig) Port() uint         { return c.port }
func (c *testConfig) StrandLength() uint { return c.length }
func (c *testConfig) FrameRate() uint    { return c.fps }

// testSource scripts the serial side of the engine.
type testSource struct {
	mu   sync.Mutex
	data []byte
}

func (s *testSource) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data) > 0
}

func (s *testSource) ReadByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data) == 0 {
		return 0, io.EOF
	}
	b := s.data[0]
	s.data = s.data[1:]
	return b, nil
}

func (s *testSource) push(b ...byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, b...)
}

func (suite *ServerTestSuite) SetupTest() {
	cfg := &testConfig{port: 8090, length: 4, fps: 100}
	ctx, cancel := context.WithCancel(context.Background())

	suite.src = &testSource{}
	suite.engine = engine.NewEngine(cfg, suite.src, strand.NewBuffer(4), ctx)
	suite.server = server.NewServer(cfg, suite.engine, zap.NewNop())
	suite.cancel = cancel

	suite.engineDone = make(chan error, 1)
	go func() { suite.engineDone <- suite.engine.Start() }()
}

func (suite *ServerTestSuite) TearDownTest() {
	suite.cancel()
	suite.NoError(<-suite.engineDone)
	suite.server.Close()
}

func (suite *ServerTestSuite) TestStatus() {
	req := httptest.NewRequest("GET", "/status", nil)
	w := httptest.NewRecorder()
	suite.server.Handler.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.Contains(body, "\"shift\":\"Invalid\"")
	suite.Contains(body, "\"idle_type\":\"Static\"")
	suite.Contains(body, "\"event\":null")
}

func (suite *ServerTestSuite) TestStatusReflectsCommands() {
	suite.src.push('I', '2', 'E', '1')

	suite.Eventually(func() bool {
		_, active := suite.engine.ActiveEvent()
		return suite.engine.Shift() == protocol.ShiftNightWatch && active
	}, 2*time.Second, 5*time.Millisecond)

	req := httptest.NewRequest("GET", "/status", nil)
	w := httptest.NewRecorder()
	suite.server.Handler.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.Contains(body, "\"shift\":\"NightWatch\"")
	suite.Contains(body, "\"event\":\"Crash\"")
}

func (suite *ServerTestSuite) TestMetrics() {
	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	suite.server.Handler.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.Contains(body, "buslights_engine_frames_rendered_total")
	suite.Contains(body, "buslights_engine_state_info")
}

func (suite *ServerTestSuite) TestStrandWebSocket() {
	ts := httptest.NewServer(suite.server.Handler)
	defer ts.Close()

	u, err := url.Parse(ts.URL)
	suite.NoError(err)
	u.Scheme = "ws"
	u.Path = "/strand"

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	suite.NoError(err)
	defer c.Close()

	_, msg, err := c.ReadMessage()
	suite.NoError(err)

	var snap protocol.Snapshot
	suite.NoError(snap.Decode(msg))
	suite.Len(snap.Pixels, 4)
}

func (suite *ServerTestSuite) TestStrandStreamsCommandedState() {
	ts := httptest.NewServer(suite.server.Handler)
	defer ts.Close()

	u, err := url.Parse(ts.URL)
	suite.NoError(err)
	u.Scheme = "ws"
	u.Path = "/strand"

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	suite.NoError(err)
	defer c.Close()

	suite.src.push('I', '4')

	deadline := time.Now().Add(2 * time.Second)
	var snap protocol.Snapshot
	for {
		suite.NoError(c.SetReadDeadline(deadline))
		_, msg, err := c.ReadMessage()
		suite.Require().NoError(err)
		suite.Require().NoError(snap.Decode(msg))
		if snap.Shift == protocol.ShiftOmegaShift {
			break
		}
		suite.Require().True(time.Now().Before(deadline), "no omega snapshot before deadline")
	}

	want := []strand.Color{palette.DawnGuard, palette.AlphaFlight, palette.NightWatch, palette.ZetaShift}
	suite.Equal(want, snap.Pixels)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
