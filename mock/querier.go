package mock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"

	"github.com/umee-network/umee-cosmwasm/types"
	"github.com/umee-network/umee-cosmwasm/umee"
)

const MockContractAddr = "umee1contract"

// Handler answers a custom request. It gets the raw payload of the variant,
// whatever form the request was written in.
type Handler func(payload json.RawMessage) types.QuerierResult

// MockQuerier is a host that serves bank queries from memory and custom
// requests from handlers keyed by canonical variant name.
type MockQuerier struct {
	Bank     BankQuerier
	Handlers map[string]Handler
	// Requests records every request received, in order.
	Requests [][]byte
}

func DefaultQuerier(contractAddr string, coins types.Coins) *MockQuerier {
	balances := map[string]types.Coins{
		contractAddr: coins,
	}
	return &MockQuerier{
		Bank:     NewBankQuerier(balances),
		Handlers: map[string]Handler{},
	}
}

// Handle registers h for the variant with the given canonical name.
func (q *MockQuerier) Handle(name string, h Handler) *MockQuerier {
	if q.Handlers == nil {
		q.Handlers = map[string]Handler{}
	}
	q.Handlers[name] = h
	return q
}

func (q *MockQuerier) RawQuery(request []byte) types.QuerierResult {
	q.Requests = append(q.Requests, append([]byte(nil), request...))

	var req types.QueryRequest
	if err := json.Unmarshal(request, &req); err != nil {
		return types.SystemFailure(types.SystemError{InvalidRequest: &types.InvalidRequest{Err: err.Error(), Request: request}})
	}
	switch req.Kind() {
	case "bank":
		return q.Bank.Query(req.Bank)
	case "custom":
		return q.custom(req.Custom)
	default:
		kind := req.Kind()
		if kind == "" {
			kind = "empty"
		}
		return types.SystemFailure(types.SystemError{UnsupportedRequest: &types.UnsupportedRequest{Kind: kind}})
	}
}

func (q *MockQuerier) custom(raw json.RawMessage) types.QuerierResult {
	var (
		peeked     []umee.Peeked
		candidates []umee.Peeked
	)
	// a group tag may exist in both catalogs, so both are consulted
	for _, kind := range []umee.Kind{umee.KindQuery, umee.KindMsg} {
		p, ok := umee.Peek(kind, raw)
		if !ok {
			continue
		}
		peeked = append(peeked, p)
		if _, ok := q.Handlers[p.Name]; ok {
			candidates = append(candidates, p)
		}
	}
	if len(peeked) == 0 {
		return types.SystemFailure(types.SystemError{InvalidRequest: &types.InvalidRequest{Err: "unknown custom request", Request: raw}})
	}
	if len(candidates) > 1 {
		candidates = fitting(candidates, raw)
	}
	switch len(candidates) {
	case 0:
		return types.SystemFailure(types.SystemError{UnsupportedRequest: &types.UnsupportedRequest{Kind: peeked[0].Name}})
	case 1:
		p := candidates[0]
		return q.Handlers[p.Name](payloadOf(p, raw))
	default:
		return types.SystemFailure(types.SystemError{InvalidRequest: &types.InvalidRequest{Err: "ambiguous custom request", Request: raw}})
	}
}

// fitting keeps the candidates whose payload type decodes the payload
// without unknown fields.
func fitting(candidates []umee.Peeked, raw []byte) []umee.Peeked {
	var out []umee.Peeked
	for _, p := range candidates {
		v, ok := variantOf(p)
		if !ok {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(payloadOf(p, raw)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(reflect.New(v.Payload).Interface()); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func variantOf(p umee.Peeked) (umee.Variant, bool) {
	reg := umee.Queries()
	if p.Kind == umee.KindMsg {
		reg = umee.Msgs()
	}
	return reg.ByCode(p.Code)
}

// payloadOf extracts the variant payload out of the envelope or group form.
func payloadOf(p umee.Peeked, raw []byte) json.RawMessage {
	path := p.Name
	if !p.Envelope {
		v, _ := variantOf(p)
		path = p.Group.String() + "." + v.Tag
	}
	res := gjson.GetBytes(raw, path)
	if !res.Exists() {
		return nil
	}
	return json.RawMessage(res.Raw)
}

// Respond answers with the JSON encoding of v.
func Respond(v any) Handler {
	return func(json.RawMessage) types.QuerierResult {
		bz, err := json.Marshal(v)
		if err != nil {
			return types.SystemFailure(types.SystemError{InvalidResponse: &types.InvalidResponse{Err: err.Error()}})
		}
		return types.ToQuerierResult(bz)
	}
}

// RespondRaw answers with bz as is.
func RespondRaw(bz []byte) Handler {
	return func(json.RawMessage) types.QuerierResult {
		return types.ToQuerierResult(bz)
	}
}

// Echo answers with the request payload.
func Echo() Handler {
	return func(payload json.RawMessage) types.QuerierResult {
		return types.ToQuerierResult(payload)
	}
}

// Reject answers the way a native module refusing the request does.
func Reject(format string, args ...any) Handler {
	msg := fmt.Sprintf(format, args...)
	return func(json.RawMessage) types.QuerierResult {
		return types.RemoteRejection(msg)
	}
}

// Fail answers with a host-level failure.
func Fail(err types.SystemError) Handler {
	return func(json.RawMessage) types.QuerierResult {
		return types.SystemFailure(err)
	}
}

type BankQuerier struct {
	Balances map[string]types.Coins
}

func NewBankQuerier(balances map[string]types.Coins) BankQuerier {
	bal := make(map[string]types.Coins, len(balances))
	for k, v := range balances {
		dst := make([]types.Coin, len(v))
		copy(dst, v)
		bal[k] = dst
	}
	return BankQuerier{
		Balances: bal,
	}
}

func (q BankQuerier) Query(request *types.BankQuery) types.QuerierResult {
	var resp any
	switch {
	case request.Balance != nil:
		denom := request.Balance.Denom
		coin := types.NewCoin(0, denom)
		for _, c := range q.Balances[request.Balance.Address] {
			if c.Denom == denom {
				coin = c
			}
		}
		resp = types.BalanceResponse{Amount: coin}
	case request.AllBalances != nil:
		resp = types.AllBalancesResponse{Amount: q.Balances[request.AllBalances.Address]}
	default:
		return types.SystemFailure(types.SystemError{UnsupportedRequest: &types.UnsupportedRequest{Kind: "Empty BankQuery"}})
	}
	bz, err := json.Marshal(resp)
	if err != nil {
		return types.SystemFailure(types.SystemError{InvalidResponse: &types.InvalidResponse{Err: err.Error()}})
	}
	return types.ToQuerierResult(bz)
}
