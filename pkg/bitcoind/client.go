// Package bitcoind is a minimal JSON-RPC client for the bitcoind calls the simulators rely on.
package bitcoind

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/4chain-ag/go-hit-simulator/pkg/logging"
	"github.com/go-resty/resty/v2"
)

// ErrEmptyResult is returned when bitcoind answers a call with neither a result nor an error.
var ErrEmptyResult = errors.New("empty rpc result")

// Config holds the RPC connection settings.
type Config struct {
	// URL of the RPC endpoint, e.g. http://127.0.0.1:8332.
	URL string `mapstructure:"url"`

	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// Timeout bounds a single call.
	Timeout time.Duration `mapstructure:"timeout"`

	// RetryCount is the number of retries after a transport failure or a busy node.
	RetryCount int `mapstructure:"retry_count"`

	// DecodeLocally parses raw transactions in process instead of calling decoderawtransaction.
	DecodeLocally bool `mapstructure:"decode_locally"`
}

// DefaultConfig points at a local mainnet node.
var DefaultConfig = Config{
	URL:        "http://127.0.0.1:8332",
	Username:   "",
	Password:   "",
	Timeout:    30 * time.Second,
	RetryCount: 2,
}

// RPCError is an error reported by bitcoind.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
	ID     uint64          `json:"id"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the client send calls through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger receiving call diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client calls the bitcoind RPC interface. It implements wallet.NodeService.
// It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	rest       *resty.Client
	logger     logging.Logger
	nextID     atomic.Uint64
}

// New creates a Client for the given configuration.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{cfg: cfg, logger: logging.Discard()}
	for _, o := range opts {
		o(c)
	}

	rest := resty.New()
	if c.httpClient != nil {
		rest = resty.NewWithClient(c.httpClient)
	}

	c.rest = rest.
		SetBaseURL(c.cfg.URL).
		SetTimeout(c.cfg.Timeout).
		SetRetryCount(c.cfg.RetryCount).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == http.StatusServiceUnavailable
		}).
		SetHeader("Content-Type", "application/json")

	if c.cfg.Username != "" {
		c.rest.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}
	return c
}

// call invokes method and decodes its result into result.
func (c *Client) call(ctx context.Context, method string, result any, params ...any) error {
	if params == nil {
		params = []any{}
	}
	req := rpcRequest{JSONRPC: "1.0", ID: c.nextID.Add(1), Method: method, Params: params}

	c.logger.Debugf("Calling %s %v", method, params)

	var envelope rpcResponse
	res, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&envelope).
		SetError(&envelope).
		ForceContentType("application/json").
		Post("/")
	if err != nil {
		return fmt.Errorf("%s call failed: %w", method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%s call failed: %w", method, envelope.Error)
	}
	if res.IsError() {
		return fmt.Errorf("%s call failed: unexpected status %d", method, res.StatusCode())
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return fmt.Errorf("%s call failed: %w", method, ErrEmptyResult)
	}

	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}
	return nil
}
