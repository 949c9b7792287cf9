package types

import (
	"encoding/json"
	"fmt"
)

// replyOn only knows "never": the contract has no reply entry point, so every
// message it emits is fire and forget.
type replyOn int

const (
	UnsetReplyOn replyOn = iota // The default value. We never return this in any valid instance (see toReplyOn).
	ReplyNever
)

var fromReplyOn = map[replyOn]string{
	ReplyNever: "never",
}

var toReplyOn = map[string]replyOn{
	"never": ReplyNever,
}

func (r replyOn) String() string {
	return fromReplyOn[r]
}

func (r replyOn) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *replyOn) UnmarshalJSON(b []byte) error {
	var j string
	err := json.Unmarshal(b, &j)
	if err != nil {
		return err
	}

	v, ok := toReplyOn[j]
	if !ok {
		return fmt.Errorf("invalid reply_on value '%v'", j)
	}
	*r = v
	return nil
}

// SubMsg wraps a CosmosMsg with some metadata for handling replies (ID) and optionally
// limiting the gas usage (GasLimit)
type SubMsg struct {
	// An arbitrary ID chosen by the contract.
	// This is typically used to match `Reply`s in the `reply` entry point to the submessage.
	ID  uint64    `json:"id"`
	Msg CosmosMsg `json:"msg"`
	// Setting this to `None` means unlimited. Then the submessage execution can consume all gas of
	// the current execution context.
	GasLimit *uint64 `json:"gas_limit,omitempty"`
	ReplyOn  replyOn `json:"reply_on"`
}
