package umee

import "github.com/umee-network/umee-cosmwasm/types"

const (
	MsgAggregateExchangeRatePrevote Code = 11
	MsgAggregateExchangeRateVote    Code = 12
	MsgDelegateFeedConsent          Code = 13
)

var oracleMsgs = []Variant{
	msgVariant[AggregateExchangeRatePrevoteParams](MsgAggregateExchangeRatePrevote, "aggregate_exchange_rate_prevote", GroupOracle, "aggregate_exchange_rate_prevote"),
	msgVariant[AggregateExchangeRateVoteParams](MsgAggregateExchangeRateVote, "aggregate_exchange_rate_vote", GroupOracle, "aggregate_exchange_rate_vote"),
	msgVariant[DelegateFeedConsentParams](MsgDelegateFeedConsent, "delegate_feed_consent", GroupOracle, "delegate_feed_consent"),
}

// AggregateExchangeRatePrevoteParams commits to the hash of a future vote.
type AggregateExchangeRatePrevoteParams struct {
	Hash      string             `json:"hash"`
	Feeder    types.HumanAddress `json:"feeder"`
	Validator types.HumanAddress `json:"validator"`
}

// AggregateExchangeRateVoteParams reveals the rates committed by the previous prevote.
// ExchangeRates uses the "denom:rate,denom:rate" form of the oracle module.
type AggregateExchangeRateVoteParams struct {
	Salt          string             `json:"salt"`
	ExchangeRates string             `json:"exchange_rates"`
	Feeder        types.HumanAddress `json:"feeder"`
	Validator     types.HumanAddress `json:"validator"`
}

// DelegateFeedConsentParams lets operator hand its feeder rights to delegate.
type DelegateFeedConsentParams struct {
	Operator types.HumanAddress `json:"operator"`
	Delegate types.HumanAddress `json:"delegate"`
}

func AggregateExchangeRatePrevoteMsg(p AggregateExchangeRatePrevoteParams) StructMsg {
	return NewStructMsg(p)
}

func AggregateExchangeRateVoteMsg(p AggregateExchangeRateVoteParams) StructMsg {
	return NewStructMsg(p)
}

func DelegateFeedConsentMsg(p DelegateFeedConsentParams) StructMsg { return NewStructMsg(p) }

func (AggregateExchangeRatePrevoteParams) umeeMsg() {}
func (AggregateExchangeRateVoteParams) umeeMsg()    {}
func (DelegateFeedConsentParams) umeeMsg()          {}

func (AggregateExchangeRatePrevoteParams) oracleMsg() {}
func (AggregateExchangeRateVoteParams) oracleMsg()    {}
func (DelegateFeedConsentParams) oracleMsg()          {}
