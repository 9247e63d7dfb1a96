package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/gorilla/websocket"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultRegisterAfter  = "2013-12-01"
	defaultLookAhead      = 10
	defaultRequestsPerSec = 20
	defaultReconnectDelay = 5 * time.Second
	maxErrorBody          = 512
)

// Config tunes the ledger client.
type Config struct {
	Endpoint       string
	RegisterAfter  string
	LookAhead      int
	RequestsPerSec int
	HTTPTimeout    time.Duration
	ReconnectDelay time.Duration
}

// Client implements the ledger REST API and its websocket push channel.
type Client struct {
	endpoint *url.URL
	cfg      Config
	http     *http.Client
	dialer   *websocket.Dialer
	limiter  ratelimit.Limiter
	breaker  *gobreaker.CircuitBreaker
	metrics  Metrics
	logger   *zap.Logger
}

// NewClient builds a ledger client for cfg.Endpoint.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("ledger endpoint is required")
	}
	endpoint, err := url.Parse(strings.TrimRight(cfg.Endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse ledger endpoint: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("ledger endpoint scheme %q not supported", endpoint.Scheme)
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if cfg.RegisterAfter == "" {
		cfg.RegisterAfter = defaultRegisterAfter
	}
	if cfg.LookAhead <= 0 {
		cfg.LookAhead = defaultLookAhead
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = defaultRequestsPerSec
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}

	return &Client{
		endpoint: endpoint,
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.HTTPTimeout},
		dialer:   websocket.DefaultDialer,
		limiter:  ratelimit.New(cfg.RequestsPerSec),
		breaker:  newCircuitBreaker("ledger"),
		metrics:  metrics,
		logger:   logger.Named("ledger"),
	}, nil
}

// Register starts tracking node at the ledger.
func (c *Client) Register(ctx context.Context, node *hdnode.Node) error {
	xpub := node.XPub()
	c.logger.Debug("registering public key", zap.String("xpub", xpub))
	req := registerRequest{
		After:        c.cfg.RegisterAfter,
		PublicMaster: xpub,
		LookAhead:    c.cfg.LookAhead,
		FirstIndex:   0,
	}
	return c.call(ctx, "register", http.MethodPost, "register", req, nil)
}

// Deregister stops tracking node.
func (c *Client) Deregister(ctx context.Context, node *hdnode.Node) error {
	xpub := node.XPub()
	c.logger.Debug("deregistering public key", zap.String("xpub", xpub))
	return c.call(ctx, "deregister", http.MethodDelete, url.PathEscape(xpub), nil, nil)
}

// Balance fetches the balance snapshot of node.
func (c *Client) Balance(ctx context.Context, node *hdnode.Node) (BalanceDetails, error) {
	var out BalanceDetails
	err := c.call(ctx, "balance", http.MethodGet, url.PathEscape(node.XPub())+"?details", nil, &out)
	return out, err
}

// Transactions fetches the transaction history of node.
func (c *Client) Transactions(ctx context.Context, node *hdnode.Node) ([]Transaction, error) {
	var out []Transaction
	err := c.call(ctx, "transactions", http.MethodGet, url.PathEscape(node.XPub())+"/transactions", nil, &out)
	return out, err
}

// LookupTransaction fetches one transaction of node by hash.
func (c *Client) LookupTransaction(ctx context.Context, node *hdnode.Node, hash string) (Transaction, error) {
	var out Transaction
	path := url.PathEscape(node.XPub()) + "/transactions/" + url.PathEscape(hash)
	err := c.call(ctx, "lookup_transaction", http.MethodGet, path, nil, &out)
	return out, err
}

// Send submits a signed serialized transaction.
func (c *Client) Send(ctx context.Context, rawTx []byte) error {
	req := sendRequest{
		Transaction:     rawTx,
		TransactionHash: chainhash.DoubleHashB(rawTx),
	}
	c.logger.Debug("sending transaction", zap.Int("bytes", len(rawTx)))
	return c.call(ctx, "send", http.MethodPost, "send", req, nil)
}

func (c *Client) call(ctx context.Context, operation, method, path string, body, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, method, c.apiURL(path), body, out)
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", operation, ErrGateway, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, target string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) apiURL(path string) string {
	return c.endpoint.String() + "/trezor/" + path
}

func (c *Client) wsURL(xpub string) string {
	u := *c.endpoint
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	return u.String() + "/ws/" + url.PathEscape(xpub)
}
