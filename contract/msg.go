package contract

import (
	"github.com/umee-network/umee-cosmwasm/types"
	"github.com/umee-network/umee-cosmwasm/umee"
)

type InstantiateMsg struct{}

// ExecuteMsg is the execute entry point. Exactly one field should be set.
type ExecuteMsg struct {
	ChangeOwner *ChangeOwnerMsg `json:"change_owner,omitempty"`
	// Umee forwards any group message to the chain.
	Umee   *umee.UmeeMsg      `json:"umee,omitempty"`
	Supply *umee.SupplyParams `json:"supply,omitempty"`
}

type ChangeOwnerMsg struct {
	NewOwner types.HumanAddress `json:"new_owner"`
}

// QueryMsg is the query entry point. Exactly one field should be set.
type QueryMsg struct {
	GetOwner *struct{} `json:"get_owner,omitempty"`
	// Chain passes a query through to the host unchanged.
	Chain              *types.QueryRequest            `json:"chain,omitempty"`
	Umee               *umee.UmeeQuery                `json:"umee,omitempty"`
	ExchangeRates      *umee.ExchangeRatesParams      `json:"exchange_rates,omitempty"`
	RegisteredTokens   *umee.RegisteredTokensParams   `json:"registered_tokens,omitempty"`
	LeverageParameters *umee.LeverageParametersParams `json:"leverage_parameters,omitempty"`
}

type OwnerResponse struct {
	Owner types.HumanAddress `json:"owner"`
}
