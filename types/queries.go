package types

import (
	"encoding/json"
	"fmt"
)

//-------- Queries --------

// QuerierResult is the three-tier outcome of a query crossing the host boundary.
// This mirrors Rust's SystemResult<ContractResult<Binary>>.
//
// Exactly one of Ok and Err should be set:
//   - Err: the host itself failed (unknown module, unsupported request, ...)
//   - Ok.Err: the native module understood the request and rejected it
//   - Ok.Ok: the serialized response
type QuerierResult struct {
	Ok  *QueryResult `json:"ok,omitempty"`
	Err *SystemError `json:"error,omitempty"`
}

// QueryResult is the contract-level result of a query. This mirrors Rust's ContractResult<Binary>.
// Err is set whenever the "error" key is present, even with an empty message.
type QueryResult struct {
	Ok  []byte  `json:"ok,omitempty"`
	Err *string `json:"error,omitempty"`
}

// MarshalJSON always writes the "ok" key on success, even for an empty payload.
func (q QueryResult) MarshalJSON() ([]byte, error) {
	if q.Err != nil {
		return json.Marshal(struct {
			Err string `json:"error"`
		}{*q.Err})
	}
	ok := q.Ok
	if ok == nil {
		ok = []byte{}
	}
	return json.Marshal(struct {
		Ok []byte `json:"ok"`
	}{ok})
}

// ToQuerierResult builds the success tier for bz.
func ToQuerierResult(bz []byte) QuerierResult {
	return QuerierResult{Ok: &QueryResult{Ok: bz}}
}

// RemoteRejection builds the tier used when a native module rejects a request.
func RemoteRejection(msg string) QuerierResult {
	return QuerierResult{Ok: &QueryResult{Err: &msg}}
}

// SystemFailure builds the tier used when the host cannot serve a request at all.
func SystemFailure(err SystemError) QuerierResult {
	return QuerierResult{Err: &err}
}

// ParseQuerierResult decodes a serialized SystemResult. Anything that does not hold
// exactly one tier is reported as an error.
func ParseQuerierResult(bz []byte) (QuerierResult, error) {
	var res QuerierResult
	if err := json.Unmarshal(bz, &res); err != nil {
		return QuerierResult{}, err
	}
	if (res.Ok == nil) == (res.Err == nil) {
		return QuerierResult{}, fmt.Errorf("invalid querier result: exactly one of 'ok' and 'error' must be set")
	}
	return res, nil
}

// QueryRequest is the CosmWasm query envelope handed to the host.
// Umee requests travel in Custom; Bank and Wasm cover the chain queries a contract
// may pass through unchanged.
type QueryRequest struct {
	Bank   *BankQuery      `json:"bank,omitempty"`
	Custom json.RawMessage `json:"custom,omitempty"`
	Wasm   *WasmQuery      `json:"wasm,omitempty"`
}

// CustomQuery wraps an already encoded custom query.
func CustomQuery(bz []byte) QueryRequest {
	return QueryRequest{Custom: bz}
}

// Kind returns the name of the populated arm, or "" if none is.
func (q QueryRequest) Kind() string {
	switch {
	case q.Bank != nil:
		return "bank"
	case len(q.Custom) != 0:
		return "custom"
	case q.Wasm != nil:
		return "wasm"
	default:
		return ""
	}
}

type BankQuery struct {
	Balance     *BalanceQuery     `json:"balance,omitempty"`
	AllBalances *AllBalancesQuery `json:"all_balances,omitempty"`
}

// BalanceQuery is the request for a single denom balance
type BalanceQuery struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
}

// BalanceResponse is the expected response to BalanceQuery
type BalanceResponse struct {
	Amount Coin `json:"amount"`
}

type AllBalancesQuery struct {
	Address string `json:"address"`
}

// AllBalancesResponse is the expected response to AllBalancesQuery
type AllBalancesResponse struct {
	Amount Array[Coin] `json:"amount"`
}

type WasmQuery struct {
	Smart *SmartQuery `json:"smart,omitempty"`
	Raw   *RawQuery   `json:"raw,omitempty"`
}

// SmartQuery response is raw bytes ([]byte)
type SmartQuery struct {
	// Bech32 encoded sdk.AccAddress of the contract
	ContractAddr string `json:"contract_addr"`
	Msg          []byte `json:"msg"`
}

// RawQuery response is raw bytes ([]byte)
type RawQuery struct {
	// Bech32 encoded sdk.AccAddress of the contract
	ContractAddr string `json:"contract_addr"`
	Key          []byte `json:"key"`
}
