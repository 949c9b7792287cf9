// Package contract is a small owner-managed contract built on the umee
// bindings. Its owner is the only state it keeps.
package contract

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	cwumee "github.com/umee-network/umee-cosmwasm"
	"github.com/umee-network/umee-cosmwasm/types"
	"github.com/umee-network/umee-cosmwasm/umee"
)

const (
	Name    = "umee-cosmwasm"
	Version = "0.1.0"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidMsg   = errors.New("invalid message")
)

// Contract executes one call at a time against store.
type Contract struct {
	store  KVStore
	client *cwumee.Client
	logger zerolog.Logger
}

func New(store KVStore, client *cwumee.Client, logger zerolog.Logger) *Contract {
	return &Contract{
		store:  store,
		client: client,
		logger: logger.With().Str("contract", Name).Logger(),
	}
}

// Instantiate makes the sender the owner.
func (c *Contract) Instantiate(info types.MessageInfo, _ InstantiateMsg) (*types.Response, error) {
	if info.Sender == "" {
		return nil, fmt.Errorf("%w: empty sender", ErrInvalidMsg)
	}
	if err := save(c.store, contractInfoKey, ContractInfo{Contract: Name, Version: Version}); err != nil {
		return nil, err
	}
	if err := save(c.store, stateKey, OwnerState{Owner: info.Sender}); err != nil {
		return nil, err
	}
	c.logger.Info().Str("owner", info.Sender).Msg("instantiated")
	return types.NewResponse().
		AddAttribute("method", "instantiate").
		AddAttribute("owner", info.Sender), nil
}

func (c *Contract) Execute(info types.MessageInfo, msg ExecuteMsg) (*types.Response, error) {
	switch {
	case msg.ChangeOwner != nil && msg.Umee == nil && msg.Supply == nil:
		return c.ChangeOwner(info, msg.ChangeOwner.NewOwner)
	case msg.Umee != nil && msg.ChangeOwner == nil && msg.Supply == nil:
		return c.dispatch("umee", *msg.Umee)
	case msg.Supply != nil && msg.ChangeOwner == nil && msg.Umee == nil:
		return c.dispatch("supply", umee.SupplyMsg(*msg.Supply))
	default:
		return nil, fmt.Errorf("%w: expected exactly one execute variant", ErrInvalidMsg)
	}
}

// ChangeOwner hands the contract to newOwner. Only the current owner may call it.
func (c *Contract) ChangeOwner(info types.MessageInfo, newOwner types.HumanAddress) (*types.Response, error) {
	st, err := LoadState(c.store)
	if err != nil {
		return nil, err
	}
	if info.Sender != st.Owner {
		c.logger.Debug().Str("sender", info.Sender).Msg("owner change refused")
		return nil, ErrUnauthorized
	}
	if newOwner == "" {
		return nil, fmt.Errorf("%w: empty new owner", ErrInvalidMsg)
	}
	if err := save(c.store, stateKey, OwnerState{Owner: newOwner}); err != nil {
		return nil, err
	}
	c.logger.Info().Str("from", st.Owner).Str("to", newOwner).Msg("owner changed")
	return types.NewResponse().
		AddAttribute("method", "change_owner").
		AddAttribute("owner", newOwner), nil
}

func (c *Contract) dispatch(method string, req any) (*types.Response, error) {
	msg, err := c.client.Msg(req)
	if err != nil {
		return nil, err
	}
	return types.NewResponse().
		AddAttribute("method", method).
		AddMessage(msg), nil
}

// Query answers with the JSON encoding of the response.
func (c *Contract) Query(msg QueryMsg) ([]byte, error) {
	set := 0
	for _, isSet := range []bool{
		msg.GetOwner != nil, msg.Chain != nil, msg.Umee != nil,
		msg.ExchangeRates != nil, msg.RegisteredTokens != nil, msg.LeverageParameters != nil,
	} {
		if isSet {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: %d query variants set, expected one", ErrInvalidMsg, set)
	}

	switch {
	case msg.GetOwner != nil:
		return marshal(c.Owner())
	case msg.Chain != nil:
		return cwumee.QueryRaw(c.client, *msg.Chain)
	case msg.Umee != nil:
		return cwumee.QueryRaw(c.client, *msg.Umee)
	case msg.ExchangeRates != nil:
		return marshal(c.client.ExchangeRates(*msg.ExchangeRates))
	case msg.RegisteredTokens != nil:
		return marshal(c.client.RegisteredTokens(*msg.RegisteredTokens))
	default:
		return marshal(c.client.LeverageParameters(*msg.LeverageParameters))
	}
}

func (c *Contract) Owner() (OwnerResponse, error) {
	st, err := LoadState(c.store)
	if err != nil {
		return OwnerResponse{}, err
	}
	return OwnerResponse{Owner: st.Owner}, nil
}

func marshal(v any, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
