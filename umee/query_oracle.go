package umee

import "github.com/umee-network/umee-cosmwasm/types"

const (
	QueryExchangeRates       Code = 2
	QueryActiveExchangeRates Code = 24
	QueryFeederDelegation    Code = 25
	QueryMissCounter         Code = 26
	QuerySlashWindow         Code = 27
	QueryAggregatePrevote    Code = 28
	QueryAggregatePrevotes   Code = 29
	QueryAggregateVote       Code = 30
	QueryAggregateVotes      Code = 31
	QueryOracleParams        Code = 32
	QueryMedians             Code = 33
	QueryMedianDeviations    Code = 34
)

var oracleQueries = []Variant{
	variant[ExchangeRatesParams, ExchangeRatesResponse](KindQuery, QueryExchangeRates, "exchange_rates", GroupOracle, "exchange_rates"),
	variant[ActiveExchangeRatesParams, ActiveExchangeRatesResponse](KindQuery, QueryActiveExchangeRates, "active_exchange_rates", GroupOracle, "active_exchange_rates"),
	variant[FeederDelegationParams, FeederDelegationResponse](KindQuery, QueryFeederDelegation, "feeder_delegation", GroupOracle, "feeder_delegation"),
	variant[MissCounterParams, MissCounterResponse](KindQuery, QueryMissCounter, "miss_counter", GroupOracle, "miss_counter"),
	variant[SlashWindowParams, SlashWindowResponse](KindQuery, QuerySlashWindow, "slash_window", GroupOracle, "slash_window"),
	variant[AggregatePrevoteParams, AggregatePrevoteResponse](KindQuery, QueryAggregatePrevote, "aggregate_prevote", GroupOracle, "aggregate_prevote"),
	variant[AggregatePrevotesParams, AggregatePrevotesResponse](KindQuery, QueryAggregatePrevotes, "aggregate_prevotes", GroupOracle, "aggregate_prevotes"),
	variant[AggregateVoteParams, AggregateVoteResponse](KindQuery, QueryAggregateVote, "aggregate_vote", GroupOracle, "aggregate_vote"),
	variant[AggregateVotesParams, AggregateVotesResponse](KindQuery, QueryAggregateVotes, "aggregate_votes", GroupOracle, "aggregate_votes"),
	variant[OracleParametersParams, OracleParametersResponse](KindQuery, QueryOracleParams, "oracle_params", GroupOracle, "oracle_parameters"),
	variant[MediansParams, MediansResponse](KindQuery, QueryMedians, "medians_params", GroupOracle, "medians"),
	variant[MedianDeviationsParams, MedianDeviationsResponse](KindQuery, QueryMedianDeviations, "median_deviations_params", GroupOracle, "median_deviations"),
}

// OracleParameters defines the parameters for the oracle module.
type OracleParameters struct {
	VotePeriod               uint64           `json:"vote_period"`
	VoteThreshold            types.Decimal256 `json:"vote_threshold"`
	RewardBand               types.Decimal256 `json:"reward_band"`
	RewardDistributionWindow uint64           `json:"reward_distribution_window"`
	AcceptList               []Denom          `json:"accept_list"`
	SlashFraction            types.Decimal256 `json:"slash_fraction"`
	SlashWindow              uint64           `json:"slash_window"`
	MinValidPerWindow        types.Decimal256 `json:"min_valid_per_window"`
	StampPeriod              uint64           `json:"stamp_period"`
	PrunePeriod              uint64           `json:"prune_period"`
	MedianPeriod             uint64           `json:"median_period"`
	HistoricAcceptList       []Denom          `json:"historic_accept_list"`
}

// Denom is an asset accepted by the oracle.
type Denom struct {
	BaseDenom   string `json:"base_denom"`
	SymbolDenom string `json:"symbol_denom"`
	Exponent    uint32 `json:"exponent"`
}

// AggregateExchangeRatePrevote is the hash a validator commits before voting.
type AggregateExchangeRatePrevote struct {
	Hash        string `json:"hash"`
	Voter       string `json:"voter"`
	SubmitBlock uint64 `json:"submit_block"`
}

// AggregateExchangeRateVote is the set of rates a validator voted for.
type AggregateExchangeRateVote struct {
	ExchangeRateTuples []ExchangeRateTuple `json:"exchange_rate_tuples"`
	Voter              string              `json:"voter"`
}

type ExchangeRateTuple struct {
	Denom        string           `json:"denom"`
	ExchangeRate types.Decimal256 `json:"exchange_rate"`
}

// ExchangeRatesParams selects the denom to price. An empty denom returns every rate.
type ExchangeRatesParams struct {
	Denom string `json:"denom"`
}

type ExchangeRatesResponse struct {
	ExchangeRates []types.DecCoin `json:"exchange_rates"`
}

type ActiveExchangeRatesParams struct{}

// ActiveExchangeRatesResponse lists the denoms with an active rate.
type ActiveExchangeRatesResponse struct {
	ActiveRates []string `json:"active_rates"`
}

type FeederDelegationParams struct {
	ValidatorAddr types.HumanAddress `json:"validator_addr"`
}

type FeederDelegationResponse struct {
	FeederAddr string `json:"feeder_addr"`
}

type MissCounterParams struct {
	ValidatorAddr types.HumanAddress `json:"validator_addr"`
}

type MissCounterResponse struct {
	MissCounter uint64 `json:"miss_counter"`
}

type SlashWindowParams struct{}

type SlashWindowResponse struct {
	WindowProgress uint64 `json:"window_progress"`
}

type AggregatePrevoteParams struct {
	ValidatorAddr types.HumanAddress `json:"validator_addr"`
}

type AggregatePrevoteResponse struct {
	AggregatePrevote AggregateExchangeRatePrevote `json:"aggregate_prevote"`
}

type AggregatePrevotesParams struct{}

type AggregatePrevotesResponse struct {
	AggregatePrevotes []AggregateExchangeRatePrevote `json:"aggregate_prevotes"`
}

type AggregateVoteParams struct {
	ValidatorAddr types.HumanAddress `json:"validator_addr"`
}

type AggregateVoteResponse struct {
	AggregateVote AggregateExchangeRateVote `json:"aggregate_vote"`
}

type AggregateVotesParams struct{}

type AggregateVotesResponse struct {
	AggregateVotes []AggregateExchangeRateVote `json:"aggregate_votes"`
}

type OracleParametersParams struct{}

type OracleParametersResponse struct {
	Params OracleParameters `json:"params"`
}

type MediansParams struct {
	Denom string `json:"denom"`
}

type MediansResponse struct {
	Medians []types.DecCoin `json:"medians"`
}

type MedianDeviationsParams struct {
	Denom string `json:"denom"`
}

type MedianDeviationsResponse struct {
	MedianDeviations []types.DecCoin `json:"median_deviations"`
}

func ExchangeRatesQuery(p ExchangeRatesParams) StructQuery             { return NewStructQuery(p) }
func ActiveExchangeRatesQuery(p ActiveExchangeRatesParams) StructQuery { return NewStructQuery(p) }
func FeederDelegationQuery(p FeederDelegationParams) StructQuery       { return NewStructQuery(p) }
func MissCounterQuery(p MissCounterParams) StructQuery                 { return NewStructQuery(p) }
func SlashWindowQuery(p SlashWindowParams) StructQuery                 { return NewStructQuery(p) }
func AggregatePrevoteQuery(p AggregatePrevoteParams) StructQuery       { return NewStructQuery(p) }
func AggregatePrevotesQuery(p AggregatePrevotesParams) StructQuery     { return NewStructQuery(p) }
func AggregateVoteQuery(p AggregateVoteParams) StructQuery             { return NewStructQuery(p) }
func AggregateVotesQuery(p AggregateVotesParams) StructQuery           { return NewStructQuery(p) }
func OracleParametersQuery(p OracleParametersParams) StructQuery       { return NewStructQuery(p) }
func MediansQuery(p MediansParams) StructQuery                         { return NewStructQuery(p) }
func MedianDeviationsQuery(p MedianDeviationsParams) StructQuery       { return NewStructQuery(p) }

func (ExchangeRatesParams) umeeQuery()       {}
func (ActiveExchangeRatesParams) umeeQuery() {}
func (FeederDelegationParams) umeeQuery()    {}
func (MissCounterParams) umeeQuery()         {}
func (SlashWindowParams) umeeQuery()         {}
func (AggregatePrevoteParams) umeeQuery()    {}
func (AggregatePrevotesParams) umeeQuery()   {}
func (AggregateVoteParams) umeeQuery()       {}
func (AggregateVotesParams) umeeQuery()      {}
func (OracleParametersParams) umeeQuery()    {}
func (MediansParams) umeeQuery()             {}
func (MedianDeviationsParams) umeeQuery()    {}

func (ExchangeRatesParams) oracleQuery()       {}
func (ActiveExchangeRatesParams) oracleQuery() {}
func (FeederDelegationParams) oracleQuery()    {}
func (MissCounterParams) oracleQuery()         {}
func (SlashWindowParams) oracleQuery()         {}
func (AggregatePrevoteParams) oracleQuery()    {}
func (AggregatePrevotesParams) oracleQuery()   {}
func (AggregateVoteParams) oracleQuery()       {}
func (AggregateVotesParams) oracleQuery()      {}
func (OracleParametersParams) oracleQuery()    {}
func (MediansParams) oracleQuery()             {}
func (MedianDeviationsParams) oracleQuery()    {}
