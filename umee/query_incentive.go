package umee

import "github.com/umee-network/umee-cosmwasm/types"

const (
	QueryIncentiveParameters        Code = 35
	QueryTotalBonded                Code = 36
	QueryTotalUnbonding             Code = 37
	QueryAccountBonds               Code = 38
	QueryPendingRewards             Code = 39
	QueryCompletedIncentivePrograms Code = 40
	QueryOngoingIncentivePrograms   Code = 41
	QueryUpcomingIncentivePrograms  Code = 42
	QueryIncentiveProgram           Code = 43
	QueryCurrentRates               Code = 44
	QueryActualRates                Code = 45
	QueryLastRewardTime             Code = 46
)

var incentiveQueries = []Variant{
	variant[IncentiveParametersParams, IncentiveParametersResponse](KindQuery, QueryIncentiveParameters, "incentive_parameters", GroupIncentive, "incentive_parameters"),
	variant[TotalBondedParams, TotalBondedResponse](KindQuery, QueryTotalBonded, "total_bonded", GroupIncentive, "total_bonded"),
	variant[TotalUnbondingParams, TotalUnbondingResponse](KindQuery, QueryTotalUnbonding, "total_unbonding", GroupIncentive, "total_unbonding"),
	variant[AccountBondsParams, AccountBondsResponse](KindQuery, QueryAccountBonds, "account_bonds", GroupIncentive, "account_bonds"),
	variant[PendingRewardsParams, PendingRewardsResponse](KindQuery, QueryPendingRewards, "pending_rewards", GroupIncentive, "pending_rewards"),
	variant[CompletedIncentiveProgramsParams, CompletedIncentiveProgramsResponse](KindQuery, QueryCompletedIncentivePrograms, "completed_incentive_programs", GroupIncentive, "completed_incentive_programs"),
	variant[OngoingIncentiveProgramsParams, OngoingIncentiveProgramsResponse](KindQuery, QueryOngoingIncentivePrograms, "ongoing_incentive_programs", GroupIncentive, "ongoing_incentive_programs"),
	variant[UpcomingIncentiveProgramsParams, UpcomingIncentiveProgramsResponse](KindQuery, QueryUpcomingIncentivePrograms, "upcoming_incentive_programs", GroupIncentive, "upcoming_incentive_programs"),
	variant[IncentiveProgramParams, IncentiveProgramResponse](KindQuery, QueryIncentiveProgram, "incentive_program", GroupIncentive, "incentive_program"),
	variant[CurrentRatesParams, CurrentRatesResponse](KindQuery, QueryCurrentRates, "current_rates", GroupIncentive, "current_rates"),
	variant[ActualRatesParams, ActualRatesResponse](KindQuery, QueryActualRates, "actual_rates", GroupIncentive, "actual_rates"),
	variant[LastRewardTimeParams, LastRewardTimeResponse](KindQuery, QueryLastRewardTime, "last_reward_time", GroupIncentive, "last_reward_time"),
}

// IncentiveParameters defines the parameters for the incentive module.
type IncentiveParameters struct {
	MaxUnbondings uint32 `json:"max_unbondings"`
	// UnbondingDuration is in seconds.
	UnbondingDuration  int64            `json:"unbonding_duration"`
	EmergencyUnbondFee types.Decimal256 `json:"emergency_unbond_fee"`
}

// Unbonding is a uToken amount on its way out of a bond.
type Unbonding struct {
	Start  int64      `json:"start"`
	End    int64      `json:"end"`
	UToken types.Coin `json:"u_token"`
}

// IncentiveProgram distributes rewards to the bonders of a single uToken.
type IncentiveProgram struct {
	ID               uint32     `json:"ID"`
	StartTime        int64      `json:"start_time"`
	Duration         int64      `json:"duration"`
	UToken           string     `json:"u_token"`
	Funded           bool       `json:"funded"`
	TotalRewards     types.Coin `json:"total_rewards"`
	RemainingRewards types.Coin `json:"remaining_rewards"`
}

type IncentiveParametersParams struct{}

type IncentiveParametersResponse struct {
	Params IncentiveParameters `json:"params"`
}

type TotalBondedParams struct {
	Denom string `json:"denom"`
}

type TotalBondedResponse struct {
	Bonded types.Coins `json:"bonded"`
}

type TotalUnbondingParams struct {
	Denom string `json:"denom"`
}

type TotalUnbondingResponse struct {
	Unbonding types.Coins `json:"unbonding"`
}

type AccountBondsParams struct {
	Address types.HumanAddress `json:"address"`
}

type AccountBondsResponse struct {
	Bonded     types.Coins `json:"bonded"`
	Unbonding  types.Coins `json:"unbonding"`
	Unbondings []Unbonding `json:"unbondings"`
}

type PendingRewardsParams struct {
	Address types.HumanAddress `json:"address"`
}

type PendingRewardsResponse struct {
	Rewards types.Coins `json:"rewards"`
}

type CompletedIncentiveProgramsParams struct{}

type CompletedIncentiveProgramsResponse struct {
	Programs []IncentiveProgram `json:"programs"`
}

type OngoingIncentiveProgramsParams struct{}

type OngoingIncentiveProgramsResponse struct {
	Programs []IncentiveProgram `json:"programs"`
}

type UpcomingIncentiveProgramsParams struct{}

type UpcomingIncentiveProgramsResponse struct {
	Programs []IncentiveProgram `json:"programs"`
}

type IncentiveProgramParams struct {
	ID uint32 `json:"id"`
}

type IncentiveProgramResponse struct {
	Program IncentiveProgram `json:"program"`
}

type CurrentRatesParams struct {
	UToken string `json:"u_token"`
}

// CurrentRatesResponse holds the rewards currently paid per ReferenceBond per year.
type CurrentRatesResponse struct {
	ReferenceBond types.Coin  `json:"reference_bond"`
	Rewards       types.Coins `json:"rewards"`
}

type ActualRatesParams struct {
	UToken string `json:"u_token"`
}

type ActualRatesResponse struct {
	APY types.Decimal `json:"APY"`
}

type LastRewardTimeParams struct{}

type LastRewardTimeResponse struct {
	Time int64 `json:"time"`
}

func IncentiveParametersQuery(p IncentiveParametersParams) StructQuery { return NewStructQuery(p) }
func TotalBondedQuery(p TotalBondedParams) StructQuery                 { return NewStructQuery(p) }
func TotalUnbondingQuery(p TotalUnbondingParams) StructQuery           { return NewStructQuery(p) }
func AccountBondsQuery(p AccountBondsParams) StructQuery               { return NewStructQuery(p) }
func PendingRewardsQuery(p PendingRewardsParams) StructQuery           { return NewStructQuery(p) }
func CompletedIncentiveProgramsQuery(p CompletedIncentiveProgramsParams) StructQuery {
	return NewStructQuery(p)
}
func OngoingIncentiveProgramsQuery(p OngoingIncentiveProgramsParams) StructQuery {
	return NewStructQuery(p)
}
func UpcomingIncentiveProgramsQuery(p UpcomingIncentiveProgramsParams) StructQuery {
	return NewStructQuery(p)
}
func IncentiveProgramQuery(p IncentiveProgramParams) StructQuery { return NewStructQuery(p) }
func CurrentRatesQuery(p CurrentRatesParams) StructQuery         { return NewStructQuery(p) }
func ActualRatesQuery(p ActualRatesParams) StructQuery           { return NewStructQuery(p) }
func LastRewardTimeQuery(p LastRewardTimeParams) StructQuery     { return NewStructQuery(p) }

func (IncentiveParametersParams) umeeQuery()        {}
func (TotalBondedParams) umeeQuery()                {}
func (TotalUnbondingParams) umeeQuery()             {}
func (AccountBondsParams) umeeQuery()               {}
func (PendingRewardsParams) umeeQuery()             {}
func (CompletedIncentiveProgramsParams) umeeQuery() {}
func (OngoingIncentiveProgramsParams) umeeQuery()   {}
func (UpcomingIncentiveProgramsParams) umeeQuery()  {}
func (IncentiveProgramParams) umeeQuery()           {}
func (CurrentRatesParams) umeeQuery()               {}
func (ActualRatesParams) umeeQuery()                {}
func (LastRewardTimeParams) umeeQuery()             {}

func (IncentiveParametersParams) incentiveQuery()        {}
func (TotalBondedParams) incentiveQuery()                {}
func (TotalUnbondingParams) incentiveQuery()             {}
func (AccountBondsParams) incentiveQuery()               {}
func (PendingRewardsParams) incentiveQuery()             {}
func (CompletedIncentiveProgramsParams) incentiveQuery() {}
func (OngoingIncentiveProgramsParams) incentiveQuery()   {}
func (UpcomingIncentiveProgramsParams) incentiveQuery()  {}
func (IncentiveProgramParams) incentiveQuery()           {}
func (CurrentRatesParams) incentiveQuery()               {}
func (ActualRatesParams) incentiveQuery()                {}
func (LastRewardTimeParams) incentiveQuery()             {}
