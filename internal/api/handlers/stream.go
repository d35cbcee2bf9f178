package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"baseball-replay/internal/api/models"
	"baseball-replay/internal/config"
	"baseball-replay/internal/data"
	"baseball-replay/internal/sim"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	// Buffer size for outbound play messages
	streamBufferSize = 64

	// Ceiling on the client-requested delay between plays
	maxPace = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamHandler streams games over a websocket, one game per connection
type StreamHandler struct {
	league   *data.League
	defaults config.GameConfig
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(league *data.League, defaults config.GameConfig) *StreamHandler {
	return &StreamHandler{league: league, defaults: defaults}
}

// streamSink forwards engine events into the outbound channel. Sends are
// dropped once the connection is gone so the engine can finish unattended.
type streamSink struct {
	out  chan models.StreamMessage
	done chan struct{}
}

func (s *streamSink) send(msg models.StreamMessage) {
	select {
	case s.out <- msg:
	case <-s.done:
	}
}

func (s *streamSink) OnPlay(ev sim.PlayEvent) {
	s.send(models.StreamMessage{
		Type:      models.StreamTypePlay,
		Payload:   convertPlay(ev),
		Timestamp: time.Now(),
	})
}

func (s *streamSink) OnHalfInning(ev sim.HalfInningEvent) {
	s.send(models.StreamMessage{
		Type: models.StreamTypeHalfInning,
		Payload: models.HalfInningRow{
			Inning:    ev.Inning,
			Half:      string(ev.Half),
			Pitcher:   ev.Pitcher,
			Fatigue:   ev.Fatigue,
			AwayScore: ev.AwayScore,
			HomeScore: ev.HomeScore,
		},
		Timestamp: time.Now(),
	})
}

// StreamGame handles GET /api/v1/stream
func (h *StreamHandler) StreamGame(c *gin.Context) {
	var req models.StreamRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	away, home, err := h.league.Matchup(req.Away, req.Home)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "TEAM_NOT_FOUND",
				Message: err.Error(),
			},
		})
		return
	}

	gameCfg, err := buildGame(h.defaults, away, home, req.Seed, req.ScoringRule, req.MaxInnings, models.ParamsOverride{})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("stream: upgrade error: %v", err)
		return
	}

	gameID := uuid.New().String()
	log.Printf("stream %s: %s at %s", gameID, away.Code, home.Code)

	sink := &streamSink{
		out:  make(chan models.StreamMessage, streamBufferSize),
		done: make(chan struct{}),
	}
	gameCfg.Sink = sink

	sink.out <- models.StreamMessage{
		Type: models.StreamTypeStart,
		Payload: models.StreamHeader{
			ID:          gameID,
			Away:        away.Code,
			Home:        home.Code,
			ScoringRule: string(gameCfg.Rule),
			Seed:        req.Seed,
		},
		Timestamp: time.Now(),
	}

	go runStreamedGame(gameCfg, sink)
	go readLoop(conn)
	writeLoop(conn, sink, clampPace(req.PaceMS))
}

func runStreamedGame(cfg sim.GameConfig, sink *streamSink) {
	defer close(sink.out)

	engine, err := sim.NewEngine(cfg)
	if err != nil {
		sink.send(streamError(err))
		return
	}
	res, err := engine.Run()
	if err != nil {
		sink.send(streamError(err))
		return
	}
	sink.send(models.StreamMessage{
		Type:      models.StreamTypeFinal,
		Payload:   buildGameSummary(res),
		Timestamp: time.Now(),
	})
}

func streamError(err error) models.StreamMessage {
	code := "SIMULATION_ERROR"
	var div *sim.DivergenceError
	if errors.As(err, &div) {
		code = "GAME_DIVERGED"
	}
	return models.StreamMessage{
		Type: models.StreamTypeError,
		Payload: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
		Timestamp: time.Now(),
	}
}

// readLoop discards inbound messages but keeps the pong handler serviced.
func readLoop(conn *websocket.Conn) {
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeLoop(conn *websocket.Conn, sink *streamSink, pace time.Duration) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(sink.done)
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sink.out:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"))
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
			if pace > 0 && msg.Type == models.StreamTypePlay {
				time.Sleep(pace)
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func clampPace(ms int) time.Duration {
	pace := time.Duration(ms) * time.Millisecond
	if pace < 0 {
		return 0
	}
	if pace > maxPace {
		return maxPace
	}
	return pace
}
