package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Mitri45/estimator/internal/app"
	"github.com/Mitri45/estimator/internal/config"
	"github.com/Mitri45/estimator/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

// Controller owns the websocket side of the protocol: it upgrades
// connections, runs the pumps and translates wire envelopes into
// coordinator intents.
type Controller struct {
	Coord *app.Coordinator
	Cfg   *config.Config

	createLimiter *RateLimiter
}

func NewController(coord *app.Coordinator, cfg *config.Config) *Controller {
	return &Controller{
		Coord:         coord,
		Cfg:           cfg,
		createLimiter: NewRateLimiter(createRoomLimit, createRoomWindow),
	}
}

// wsConn wraps one gorilla connection with a buffered outbound channel so
// broadcasts never block an intent handler.
type wsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and assigns the connection its identity.
// The id lives exactly as long as the socket: two tabs are two
// participants, and there is no session resumption.
func (ctl *Controller) HandleWS(ctx context.Context, c *gin.Context) {
	id := core.ConnectionID(uuid.NewString())

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}
	log.Info().Str("module", "signal").Str("conn_id", string(id)).Msg("new WS connection")

	if ctl.Cfg.ReadLimit > 0 {
		ws.SetReadLimit(ctl.Cfg.ReadLimit)
	}

	conn := &wsConn{
		conn: ws,
		send: make(chan core.Frame, ctl.Cfg.SendBuffer),
	}

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go func() {
		defer cancel()
		ctl.readPump(ctx, id, conn)
	}()
}

const (
	writeWait = 5 * time.Second

	createRoomLimit  = 10
	createRoomWindow = time.Minute
)
