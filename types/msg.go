package types

import (
	"encoding/json"
	"fmt"
)

//------- Results / Msgs -------------

// Response defines the return value on a successful instantiate/execute.
// This is the counterpart of [Response](https://github.com/CosmWasm/cosmwasm/blob/v1.5.0/packages/std/src/results/response.rs)
type Response struct {
	// Messages comes directly from the contract and is its request for action.
	Messages []SubMsg `json:"messages"`
	// base64-encoded bytes to return as ABCI.Data field
	Data []byte `json:"data"`
	// attributes for a log event to return over abci interface
	Attributes Array[EventAttribute] `json:"attributes"`
}

// NewResponse returns an empty response, ready for chaining.
func NewResponse() *Response {
	return &Response{}
}

// AddAttribute appends a key/value pair to the wasm event.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, EventAttribute{Key: key, Value: value})
	return r
}

// AddMessage appends a fire-and-forget message.
func (r *Response) AddMessage(msg CosmosMsg) *Response {
	r.Messages = append(r.Messages, SubMsg{Msg: msg, ReplyOn: ReplyNever})
	return r
}

// EventAttribute represents an attribute of an event.
type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CosmosMsg is the message a contract hands back to the host for dispatch.
// Exactly one of the fields should be set.
type CosmosMsg struct {
	Bank   *BankMsg        `json:"bank,omitempty"`
	Custom json.RawMessage `json:"custom,omitempty"`
}

// UnmarshalJSON rejects messages that populate more than one arm.
func (m *CosmosMsg) UnmarshalJSON(data []byte) error {
	type internalCosmosMsg CosmosMsg
	var tmp internalCosmosMsg
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	set := 0
	if tmp.Bank != nil {
		set++
	}
	if len(tmp.Custom) != 0 && string(tmp.Custom) != "null" {
		set++
	} else {
		tmp.Custom = nil
	}
	if set > 1 {
		return fmt.Errorf("invalid CosmosMsg: %d variants set, expected one", set)
	}
	*m = CosmosMsg(tmp)
	return nil
}

// BankMsg represents a message to the bank module.
type BankMsg struct {
	Send *SendMsg `json:"send,omitempty"`
}

// SendMsg represents a message to send tokens.
type SendMsg struct {
	ToAddress string      `json:"to_address"`
	Amount    Array[Coin] `json:"amount"`
}
