package cwumee

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umee-network/umee-cosmwasm/mock"
	"github.com/umee-network/umee-cosmwasm/types"
	"github.com/umee-network/umee-cosmwasm/umee"
)

type suppliedResponse struct {
	Supplied types.Coins `json:"supplied"`
}

func newTestClient(t *testing.T, q Querier, opts ...Option) *Client {
	t.Helper()
	c, err := NewClient(q, opts...)
	require.NoError(t, err)
	return c
}

func TestSupplyEcho(t *testing.T) {
	q := mock.DefaultQuerier(mock.MockContractAddr, nil).
		Handle("supply", mock.RespondRaw([]byte(`{"supplied":[{"denom":"uumee","amount":"100"}]}`)))
	c := newTestClient(t, q)

	req := umee.SupplyMsg(umee.SupplyParams{Supplier: "addr1", Asset: types.Coin{Denom: "uumee", Amount: "100"}})
	res, err := Query[suppliedResponse](c, req)
	require.NoError(t, err)
	require.Equal(t, suppliedResponse{Supplied: types.Coins{{Denom: "uumee", Amount: "100"}}}, res)

	require.Len(t, q.Requests, 1)
	require.JSONEq(t,
		`{"custom":{"assigned_msg":1,"supply":{"supplier":"addr1","asset":{"denom":"uumee","amount":"100"}}}}`,
		string(q.Requests[0]))
}

func TestHostResultClassification(t *testing.T) {
	summary := umee.MarketSummaryResponse{SymbolDenom: "UMEE", Exponent: 6, OraclePrice: "0.004"}
	summaryBz, err := json.Marshal(summary)
	require.NoError(t, err)
	emptyRejection, err := types.ParseQuerierResult([]byte(`{"ok":{"error":""}}`))
	require.NoError(t, err)

	specs := map[string]struct {
		result  types.QuerierResult
		expKind error
		check   func(t *testing.T, err error)
	}{
		"success": {
			result: types.ToQuerierResult(summaryBz),
		},
		"remote rejection": {
			result:  types.RemoteRejection("denom uatom: not a registered token"),
			expKind: ErrRemote,
			check: func(t *testing.T, err error) {
				var bridgeErr *BridgeError
				require.True(t, errors.As(err, &bridgeErr))
				assert.Equal(t, "denom uatom: not a registered token", bridgeErr.Detail)
				assert.Equal(t, "market_summary", bridgeErr.Variant)
			},
		},
		"remote rejection without message": {
			result:  emptyRejection,
			expKind: ErrRemote,
			check: func(t *testing.T, err error) {
				var bridgeErr *BridgeError
				require.True(t, errors.As(err, &bridgeErr))
				assert.Empty(t, bridgeErr.Detail)
			},
		},
		"system failure": {
			result:  types.SystemFailure(types.SystemError{UnsupportedRequest: &types.UnsupportedRequest{Kind: "custom"}}),
			expKind: ErrSystem,
			check: func(t *testing.T, err error) {
				var sysErr types.SystemError
				require.True(t, errors.As(err, &sysErr))
				require.NotNil(t, sysErr.UnsupportedRequest)
				assert.Equal(t, "custom", sysErr.UnsupportedRequest.Kind)
			},
		},
		"no tier at all": {
			result:  types.QuerierResult{},
			expKind: ErrSystem,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			calls := 0
			c := newTestClient(t, QuerierFunc(func([]byte) types.QuerierResult {
				calls++
				return spec.result
			}))

			got, err := c.MarketSummary(umee.MarketSummaryParams{Denom: "uumee"})
			require.Equal(t, 1, calls)
			if spec.expKind == nil {
				require.NoError(t, err)
				require.Equal(t, summary, got)
				return
			}
			require.Error(t, err)
			require.ErrorIs(t, err, spec.expKind)
			for _, other := range []error{ErrInvalidEnvelope, ErrEncode, ErrDecode, ErrSystem, ErrRemote} {
				if other != spec.expKind {
					require.NotErrorIs(t, err, other)
				}
			}
			require.Equal(t, umee.MarketSummaryResponse{}, got)
			if spec.check != nil {
				spec.check(t, err)
			}
		})
	}
}

func TestInvalidEnvelopeIsNeverSent(t *testing.T) {
	q := mock.DefaultQuerier(mock.MockContractAddr, nil)
	c := newTestClient(t, q)

	var unknown umee.StructQuery
	require.NoError(t, json.Unmarshal([]byte(`{"assigned_query":999,"novel":{}}`), &unknown))

	specs := map[string]any{
		"unknown code":       unknown,
		"zero value":         umee.StructQuery{},
		"nil pointer":        (*umee.StructQuery)(nil),
		"zero msg":           umee.StructMsg{},
		"pointer to unknown": &unknown,
	}
	for name, req := range specs {
		t.Run(name, func(t *testing.T) {
			_, err := QueryRaw(c, req)
			require.ErrorIs(t, err, ErrInvalidEnvelope)
			var bridgeErr *BridgeError
			require.True(t, errors.As(err, &bridgeErr))
			assert.Equal(t, umee.Unrecognized, bridgeErr.Variant)
		})
	}
	require.Empty(t, q.Requests)
}

func TestEncodeFailuresAreNeverSent(t *testing.T) {
	q := mock.DefaultQuerier(mock.MockContractAddr, nil)
	c := newTestClient(t, q)

	for name, req := range map[string]any{
		"unsupported type":    42,
		"nil":                 nil,
		"empty group query":   umee.UmeeQuery{},
		"empty group msg":     umee.UmeeMsg{},
		"nil group query":     (*umee.UmeeQuery)(nil),
		"nil group msg":       (*umee.UmeeMsg)(nil),
		"empty query request": types.QueryRequest{},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := QueryRaw(c, req)
			require.ErrorIs(t, err, ErrEncode)
		})
	}
	require.Empty(t, q.Requests)
}

func TestResponseTypeMustMatchVariant(t *testing.T) {
	q := mock.DefaultQuerier(mock.MockContractAddr, nil).Handle("market_summary", mock.RespondRaw([]byte(`{}`)))
	c := newTestClient(t, q)

	_, err := Query[umee.ExchangeRatesResponse](c, umee.MarketSummaryParams{Denom: "uumee"})
	require.ErrorIs(t, err, ErrDecode)
	require.Empty(t, q.Requests)

	raw, err := QueryRaw(c, umee.MarketSummaryParams{Denom: "uumee"})
	require.NoError(t, err)
	require.Equal(t, json.RawMessage(`{}`), raw)
}

func TestDecodeFailures(t *testing.T) {
	specs := map[string]struct {
		response string
		cfg      func(*Config)
	}{
		"malformed":     {response: `{"symbol_denom":`},
		"wrong shape":   {response: `{"exponent":"six"}`},
		"empty":         {response: ``},
		"trailing data": {response: `{"symbol_denom":"UMEE"} {}`},
		"too large": {
			response: `{"symbol_denom":"UMEE"}`,
			cfg:      func(c *Config) { c.MaxResponseBytes = types.NewSize(8) },
		},
		"unknown field when strict": {
			response: `{"symbol_denom":"UMEE","market_cap":"1"}`,
			cfg:      func(c *Config) { c.DisallowUnknownFields = true },
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			if spec.cfg != nil {
				spec.cfg(&cfg)
			}
			q := mock.DefaultQuerier(mock.MockContractAddr, nil).
				Handle("market_summary", mock.RespondRaw([]byte(spec.response)))
			c := newTestClient(t, q, WithConfig(cfg))

			_, err := c.MarketSummary(umee.MarketSummaryParams{Denom: "uumee"})
			require.ErrorIs(t, err, ErrDecode)
			require.Len(t, q.Requests, 1)
		})
	}

	// unknown fields are fine by default
	q := mock.DefaultQuerier(mock.MockContractAddr, nil).
		Handle("market_summary", mock.RespondRaw([]byte(`{"symbol_denom":"UMEE","market_cap":"1"}`)))
	res, err := newTestClient(t, q).MarketSummary(umee.MarketSummaryParams{Denom: "uumee"})
	require.NoError(t, err)
	require.Equal(t, "UMEE", res.SymbolDenom)
}

func TestRoutes(t *testing.T) {
	specs := map[string]struct {
		route Route
		req   any
		exp   string
	}{
		"payload as envelope": {
			route: RouteEnvelope,
			req:   umee.MarketSummaryParams{Denom: "uumee"},
			exp:   `{"custom":{"assigned_query":17,"market_summary":{"denom":"uumee"}}}`,
		},
		"payload as group": {
			route: RouteGroup,
			req:   umee.MarketSummaryParams{Denom: "uumee"},
			exp:   `{"custom":{"leverage":{"market_summary":{"denom":"uumee"}}}}`,
		},
		"explicit envelope ignores route": {
			route: RouteGroup,
			req:   umee.MarketSummaryQuery(umee.MarketSummaryParams{Denom: "uumee"}),
			exp:   `{"custom":{"assigned_query":17,"market_summary":{"denom":"uumee"}}}`,
		},
		"explicit group ignores route": {
			route: RouteEnvelope,
			req:   umee.NewLeverageQuery(umee.MarketSummaryParams{Denom: "uumee"}),
			exp:   `{"custom":{"leverage":{"market_summary":{"denom":"uumee"}}}}`,
		},
		"group query by pointer": {
			route: RouteEnvelope,
			req: func() *umee.UmeeQuery {
				g := umee.NewOracleQuery(umee.ExchangeRatesParams{Denom: "uumee"})
				return &g
			}(),
			exp: `{"custom":{"oracle":{"exchange_rates":{"denom":"uumee"}}}}`,
		},
		"group msg by pointer": {
			route: RouteEnvelope,
			req: func() *umee.UmeeMsg {
				g := umee.NewOracleMsg(umee.DelegateFeedConsentParams{Operator: "op", Delegate: "del"})
				return &g
			}(),
			exp: `{"custom":{"oracle":{"delegate_feed_consent":{"operator":"op","delegate":"del"}}}}`,
		},
		"msg payload as group": {
			route: RouteGroup,
			req:   umee.DelegateFeedConsentParams{Operator: "op", Delegate: "del"},
			exp:   `{"custom":{"oracle":{"delegate_feed_consent":{"operator":"op","delegate":"del"}}}}`,
		},
		"chain request": {
			route: RouteEnvelope,
			req:   types.QueryRequest{Bank: &types.BankQuery{AllBalances: &types.AllBalancesQuery{Address: "addr1"}}},
			exp:   `{"bank":{"all_balances":{"address":"addr1"}}}`,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			var sent []byte
			q := QuerierFunc(func(request []byte) types.QuerierResult {
				sent = request
				return types.ToQuerierResult([]byte(`{}`))
			})
			cfg := DefaultConfig()
			cfg.Route = spec.route
			c := newTestClient(t, q, WithConfig(cfg))

			_, err := QueryRaw(c, spec.req)
			require.NoError(t, err)
			require.JSONEq(t, spec.exp, string(sent))
		})
	}
}

func TestChainPassthrough(t *testing.T) {
	q := mock.DefaultQuerier(mock.MockContractAddr, types.Coins{types.NewCoin(1234, "uumee")})
	c := newTestClient(t, q)

	coin, err := c.Balance(mock.MockContractAddr, "uumee")
	require.NoError(t, err)
	require.Equal(t, types.NewCoin(1234, "uumee"), coin)

	all, err := c.AllBalances(mock.MockContractAddr)
	require.NoError(t, err)
	require.Equal(t, types.Coins{types.NewCoin(1234, "uumee")}, all)

	_, err = QueryRaw(c, types.QueryRequest{Wasm: &types.WasmQuery{Raw: &types.RawQuery{ContractAddr: "x", Key: []byte("k")}}})
	require.ErrorIs(t, err, ErrSystem)
}

func TestTypedMethods(t *testing.T) {
	q := mock.DefaultQuerier(mock.MockContractAddr, nil).
		Handle("exchange_rates", mock.Respond(umee.ExchangeRatesResponse{ExchangeRates: []types.DecCoin{{Denom: "uumee", Amount: "0.004"}}})).
		Handle("pending_rewards", mock.Respond(umee.PendingRewardsResponse{Rewards: types.Coins{types.NewCoin(5, "uumee")}})).
		Handle("metoken_indexprice", mock.Respond(umee.MetokenIndexPriceResponse{Price: []umee.Price{{Denom: "me/USD", Price: "1", Exponent: 6}}})).
		Handle("max_withdraw_params", mock.RespondRaw([]byte(`{"uTokens":{"denom":"u/uumee","amount":"9"},"tokens":{"denom":"uumee","amount":"10"}}`)))
	c := newTestClient(t, q)

	rates, err := c.ExchangeRates(umee.ExchangeRatesParams{Denom: "uumee"})
	require.NoError(t, err)
	require.Equal(t, []types.DecCoin{{Denom: "uumee", Amount: "0.004"}}, rates.ExchangeRates)

	rewards, err := c.PendingRewards(umee.PendingRewardsParams{Address: "addr1"})
	require.NoError(t, err)
	require.Equal(t, types.Coins{types.NewCoin(5, "uumee")}, rewards.Rewards)

	price, err := c.MetokenIndexPrice(umee.MetokenIndexPriceParams{MetokenDenom: "me/USD"})
	require.NoError(t, err)
	require.Len(t, price.Price, 1)

	maxWithdraw, err := c.MaxWithdraw(umee.MaxWithdrawParams{Address: "addr1", Denom: "uumee"})
	require.NoError(t, err)
	require.Equal(t, types.NewCoin(9, "u/uumee"), maxWithdraw.UTokens)
	require.Equal(t, types.NewCoin(10, "uumee"), maxWithdraw.Tokens)

	_, err = c.RegisteredTokens(umee.RegisteredTokensParams{})
	require.ErrorIs(t, err, ErrSystem)
}

func TestQueryLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	q := mock.DefaultQuerier(mock.MockContractAddr, nil).Handle("slash_window", mock.Respond(umee.SlashWindowResponse{WindowProgress: 3}))
	c := newTestClient(t, q, WithLogger(logger))

	res, err := c.SlashWindow(umee.SlashWindowParams{})
	require.NoError(t, err)
	require.Equal(t, uint64(3), res.WindowProgress)
	assert.Contains(t, buf.String(), `"variant":"slash_window"`)
	assert.Contains(t, buf.String(), `"outcome":"ok"`)

	buf.Reset()
	_, err = c.MissCounter(umee.MissCounterParams{ValidatorAddr: "val"})
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"outcome":"system"`)
}

func TestBridgeErrorMessage(t *testing.T) {
	err := newBridgeError(ErrRemote, "market_summary", "denom not found", nil)
	assert.Equal(t, "remote error (market_summary): denom not found", err.Error())

	cause := types.SystemError{NoSuchContract: &types.NoSuchContract{Addr: "umee1x"}}
	err = newBridgeError(ErrSystem, "", "", cause)
	assert.Equal(t, "system error: no such contract: umee1x", err.Error())
	assert.ErrorIs(t, err, ErrSystem)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(nil)
	require.Error(t, err)

	cfg := DefaultConfig()
	cfg.Route = "carrier-pigeon"
	_, err = NewClient(mock.DefaultQuerier(mock.MockContractAddr, nil), WithConfig(cfg))
	require.Error(t, err)

	c := newTestClient(t, mock.DefaultQuerier(mock.MockContractAddr, nil))
	require.Equal(t, DefaultConfig(), c.Config())
}
