// Package cwumee lets a contract talk to the native modules of the umee chain:
// it encodes custom queries and messages, hands them to the host and turns the
// host's answer into a typed response or a typed error.
package cwumee

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/umee-network/umee-cosmwasm/types"
)

// QueryRequest is the CosmWasm query handed to the host.
type QueryRequest = types.QueryRequest

// QuerierResult is the three-tier answer of the host.
type QuerierResult = types.QuerierResult

// Querier is the one capability the bridge needs from the host: raw bytes in,
// a classified result out. It is called at most once per request.
type Querier interface {
	RawQuery(request []byte) types.QuerierResult
}

// QuerierFunc adapts a plain function to Querier.
type QuerierFunc func(request []byte) types.QuerierResult

func (f QuerierFunc) RawQuery(request []byte) types.QuerierResult {
	return f(request)
}

// WireQuerier adapts a host that answers with a serialized SystemResult, as the
// wasm import does. Transport errors and unparsable answers become system
// errors.
type WireQuerier func(request []byte) ([]byte, error)

func (f WireQuerier) RawQuery(request []byte) types.QuerierResult {
	bz, err := f(request)
	if err != nil {
		if sys := types.ToSystemError(err); sys != nil {
			return types.SystemFailure(*sys)
		}
		return types.SystemFailure(types.SystemError{InvalidResponse: &types.InvalidResponse{Err: err.Error()}})
	}
	res, err := types.ParseQuerierResult(bz)
	if err != nil {
		return types.SystemFailure(types.SystemError{InvalidResponse: &types.InvalidResponse{Err: err.Error(), Response: bz}})
	}
	return res
}

// Client is the host bridge. It holds only immutable configuration.
type Client struct {
	querier Querier
	cfg     Config
	logger  zerolog.Logger
	metrics *Metrics
}

type Option func(*Client)

func WithConfig(cfg Config) Option {
	return func(c *Client) { c.cfg = cfg }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(q Querier, opts ...Option) (*Client, error) {
	if q == nil {
		return nil, errors.New("nil querier")
	}
	c := &Client{
		querier: q,
		cfg:     DefaultConfig(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Config() Config {
	return c.cfg
}
