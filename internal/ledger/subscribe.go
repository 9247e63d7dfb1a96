package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Messages may carry a "<length>|" prefix when the server tracks message length.
var lengthPrefix = regexp.MustCompile(`^\d+\|`)

// Subscribe delivers balance updates of node to handler until ctx is canceled.
// The first connection is established synchronously; later drops are redialed in the background.
func (c *Client) Subscribe(ctx context.Context, node *hdnode.Node, handler func(Update)) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("subscribe", err, started)
	}()

	xpub := node.XPub()
	target := c.wsURL(xpub)
	logger := c.logger.With(zap.String("xpub", xpub))

	conn, err := c.dial(ctx, target)
	if err != nil {
		return fmt.Errorf("subscribe: %w: %w", ErrGateway, err)
	}
	logger.Debug("subscribed to balance updates")

	go c.readLoop(ctx, conn, target, handler, logger)
	return nil
}

func (c *Client) dial(ctx context.Context, target string) (*websocket.Conn, error) {
	conn, resp, err := c.dialer.DialContext(ctx, target, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}
	return conn, nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn, target string, handler func(Update), logger *zap.Logger) {
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer func() {
		stop()
		_ = conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("push channel dropped, reconnecting", zap.Error(err), zap.Duration("delay", c.cfg.ReconnectDelay))
			conn = c.redial(ctx, target, logger)
			if conn == nil {
				return
			}
			stop()
			stop = context.AfterFunc(ctx, func() {
				_ = conn.Close()
			})
			continue
		}

		update, err := decodeUpdate(msg)
		if err != nil {
			logger.Error("error parsing push message", zap.Error(err), zap.ByteString("message", msg))
			continue
		}
		handler(update)
	}
}

func (c *Client) redial(ctx context.Context, target string, logger *zap.Logger) *websocket.Conn {
	for {
		if err := clock.SleepWithContext(ctx, c.cfg.ReconnectDelay); err != nil {
			return nil
		}
		conn, err := c.dial(ctx, target)
		if err == nil {
			return conn
		}
		if ctx.Err() != nil {
			return nil
		}
		logger.Warn("push channel redial failed", zap.Error(err))
	}
}

func decodeUpdate(msg []byte) (Update, error) {
	msg = lengthPrefix.ReplaceAll(msg, nil)
	var update Update
	if err := json.Unmarshal(msg, &update); err != nil {
		return Update{}, err
	}
	return update, nil
}
