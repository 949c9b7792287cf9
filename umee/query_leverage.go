package umee

import "github.com/umee-network/umee-cosmwasm/types"

const (
	QueryRegisteredTokens   Code = 3
	QueryLeverageParameters Code = 4
	QueryMarketSummary      Code = 17
	QueryAccountBalances    Code = 18
	QueryAccountSummary     Code = 19
	QueryLiquidationTargets Code = 20
	QueryBadDebts           Code = 21
	QueryMaxWithdraw        Code = 22
	QueryMaxBorrow          Code = 23
)

var leverageQueries = []Variant{
	variant[RegisteredTokensParams, RegisteredTokensResponse](KindQuery, QueryRegisteredTokens, "registered_tokens", GroupLeverage, "registered_tokens"),
	variant[LeverageParametersParams, LeverageParametersResponse](KindQuery, QueryLeverageParameters, "leverage_parameters", GroupLeverage, "leverage_parameters"),
	variant[MarketSummaryParams, MarketSummaryResponse](KindQuery, QueryMarketSummary, "market_summary", GroupLeverage, "market_summary"),
	variant[AccountBalancesParams, AccountBalancesResponse](KindQuery, QueryAccountBalances, "account_balances", GroupLeverage, "account_balances"),
	variant[AccountSummaryParams, AccountSummaryResponse](KindQuery, QueryAccountSummary, "account_summary", GroupLeverage, "account_summary"),
	variant[LiquidationTargetsParams, LiquidationTargetsResponse](KindQuery, QueryLiquidationTargets, "liquidation_targets", GroupLeverage, "liquidation_targets"),
	variant[BadDebtsParams, BadDebtsResponse](KindQuery, QueryBadDebts, "bad_debts_params", GroupLeverage, "bad_debts"),
	variant[MaxWithdrawParams, MaxWithdrawResponse](KindQuery, QueryMaxWithdraw, "max_withdraw_params", GroupLeverage, "max_withdraw"),
	variant[MaxBorrowParams, MaxBorrowResponse](KindQuery, QueryMaxBorrow, "max_borrow_params", GroupLeverage, "max_borrow"),
}

// LeverageParameters defines the parameters for the leverage module.
type LeverageParameters struct {
	// CompleteLiquidationThreshold determines how far over their borrow limit a
	// borrower must be in order for their positions to be liquidated fully in a
	// single event.
	CompleteLiquidationThreshold types.Decimal256 `json:"complete_liquidation_threshold"`
	MinimumCloseFactor           types.Decimal256 `json:"minimum_close_factor"`
	OracleRewardFactor           types.Decimal256 `json:"oracle_reward_factor"`
	SmallLiquidationSize         types.Decimal256 `json:"small_liquidation_size"`
	// DirectLiquidationFee is the reduction of the liquidation incentive for
	// liquidators receiving base assets instead of uTokens. Valid values: 0-1.
	DirectLiquidationFee types.Decimal256 `json:"direct_liquidation_fee"`
}

// Token is a registered asset of the capital facility, along with its
// capital metadata.
type Token struct {
	BaseDenom            string        `json:"base_denom,omitempty"`
	ReserveFactor        types.Decimal `json:"reserve_factor"`
	CollateralWeight     types.Decimal `json:"collateral_weight"`
	LiquidationThreshold types.Decimal `json:"liquidation_threshold"`
	BaseBorrowRate       types.Decimal `json:"base_borrow_rate"`
	KinkBorrowRate       types.Decimal `json:"kink_borrow_rate"`
	MaxBorrowRate        types.Decimal `json:"max_borrow_rate"`
	KinkUtilization      types.Decimal `json:"kink_utilization"`
	LiquidationIncentive types.Decimal `json:"liquidation_incentive"`
	SymbolDenom          string        `json:"symbol_denom,omitempty"`
	// Exponent is the power of ten converting an amount in symbol denom to an
	// amount in base denom.
	Exponent        uint32 `json:"exponent"`
	EnableMsgSupply *bool  `json:"enable_msg_supply,omitempty"`
	EnableMsgBorrow *bool  `json:"enable_msg_borrow,omitempty"`
	// Blacklist marks an asset whose oracle price is treated as zero.
	Blacklist              *bool         `json:"blacklist,omitempty"`
	MaxCollateralShare     types.Decimal `json:"max_collateral_share"`
	MaxSupplyUtilization   types.Decimal `json:"max_supply_utilization"`
	MinCollateralLiquidity types.Decimal `json:"min_collateral_liquidity"`
	// MaxSupply of 0 means no limit.
	MaxSupply       types.Decimal `json:"max_supply"`
	HistoricMedians uint32        `json:"historic_medians"`
}

// BadDebt is a borrow position marked for bad debt repayment.
type BadDebt struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
}

type LeverageParametersParams struct{}

type LeverageParametersResponse struct {
	Params LeverageParameters `json:"params"`
}

type RegisteredTokensParams struct{}

type RegisteredTokensResponse struct {
	Registry []Token `json:"registry"`
}

// MarketSummaryParams selects the base asset to summarize.
type MarketSummaryParams struct {
	Denom string `json:"denom"`
}

// MarketSummaryResponse holds a base asset's current borrowing and supplying conditions.
type MarketSummaryResponse struct {
	SymbolDenom            string           `json:"symbol_denom"`
	Exponent               uint32           `json:"exponent"`
	OraclePrice            types.Decimal256 `json:"oracle_price"`
	UTokenExchangeRate     types.Decimal256 `json:"utoken_exchange_rate"`
	SupplyAPY              types.Decimal256 `json:"supply_apy"`
	BorrowAPY              types.Decimal256 `json:"borrow_apy"`
	Supplied               types.Decimal256 `json:"supplied"`
	Reserved               types.Decimal256 `json:"reserved"`
	Collateral             types.Decimal256 `json:"collateral"`
	Borrowed               types.Decimal256 `json:"borrowed"`
	Liquidity              types.Decimal256 `json:"liquidity"`
	MaximumBorrow          types.Decimal256 `json:"maximum_borrow"`
	MaximumCollateral      types.Decimal256 `json:"maximum_collateral"`
	MinimumLiquidity       types.Decimal256 `json:"minimum_liquidity"`
	UTokenSupply           types.Decimal256 `json:"utoken_supply"`
	AvailableBorrow        types.Decimal256 `json:"available_borrow"`
	AvailableWithdraw      types.Decimal256 `json:"available_withdraw"`
	AvailableCollateralize types.Decimal256 `json:"available_collateralize"`
}

type AccountBalancesParams struct {
	Address types.HumanAddress `json:"address"`
}

// AccountBalancesResponse holds an account's supply, collateral and borrow positions.
type AccountBalancesResponse struct {
	Supplied   types.Coins `json:"supplied"`
	Collateral types.Coins `json:"collateral"`
	Borrowed   types.Coins `json:"borrowed"`
}

type AccountSummaryParams struct {
	Address types.HumanAddress `json:"address"`
}

// AccountSummaryResponse holds the USD values of an account's positions.
type AccountSummaryResponse struct {
	SuppliedValue        types.Decimal256 `json:"supplied_value"`
	CollateralValue      types.Decimal256 `json:"collateral_value"`
	BorrowedValue        types.Decimal256 `json:"borrowed_value"`
	BorrowLimit          types.Decimal256 `json:"borrow_limit"`
	LiquidationThreshold types.Decimal256 `json:"liquidation_threshold"`
}

type LiquidationTargetsParams struct{}

// LiquidationTargetsResponse lists the borrowers eligible for liquidation.
type LiquidationTargetsResponse struct {
	Targets []string `json:"targets"`
}

type BadDebtsParams struct{}

type BadDebtsResponse struct {
	Targets []BadDebt `json:"targets"`
}

// MaxWithdrawParams asks for the largest amount of denom address can withdraw.
// An empty denom covers every asset the account supplied.
type MaxWithdrawParams struct {
	Address types.HumanAddress `json:"address,omitempty"`
	Denom   string             `json:"denom,omitempty"`
}

type MaxWithdrawResponse struct {
	UTokens types.Coin `json:"uTokens"`
	Tokens  types.Coin `json:"tokens"`
}

// MaxBorrowParams asks for the largest amount of denom address can borrow.
type MaxBorrowParams struct {
	Address types.HumanAddress `json:"address,omitempty"`
	Denom   string             `json:"denom,omitempty"`
}

type MaxBorrowResponse struct {
	Tokens types.Coin `json:"tokens"`
}

func LeverageParametersQuery(p LeverageParametersParams) StructQuery { return NewStructQuery(p) }
func RegisteredTokensQuery(p RegisteredTokensParams) StructQuery     { return NewStructQuery(p) }
func MarketSummaryQuery(p MarketSummaryParams) StructQuery           { return NewStructQuery(p) }
func AccountBalancesQuery(p AccountBalancesParams) StructQuery       { return NewStructQuery(p) }
func AccountSummaryQuery(p AccountSummaryParams) StructQuery         { return NewStructQuery(p) }
func LiquidationTargetsQuery(p LiquidationTargetsParams) StructQuery { return NewStructQuery(p) }
func BadDebtsQuery(p BadDebtsParams) StructQuery                     { return NewStructQuery(p) }
func MaxWithdrawQuery(p MaxWithdrawParams) StructQuery               { return NewStructQuery(p) }
func MaxBorrowQuery(p MaxBorrowParams) StructQuery                   { return NewStructQuery(p) }

func (LeverageParametersParams) umeeQuery() {}
func (RegisteredTokensParams) umeeQuery()   {}
func (MarketSummaryParams) umeeQuery()      {}
func (AccountBalancesParams) umeeQuery()    {}
func (AccountSummaryParams) umeeQuery()     {}
func (LiquidationTargetsParams) umeeQuery() {}
func (BadDebtsParams) umeeQuery()           {}
func (MaxWithdrawParams) umeeQuery()        {}
func (MaxBorrowParams) umeeQuery()          {}

func (LeverageParametersParams) leverageQuery() {}
func (RegisteredTokensParams) leverageQuery()   {}
func (MarketSummaryParams) leverageQuery()      {}
func (AccountBalancesParams) leverageQuery()    {}
func (AccountSummaryParams) leverageQuery()     {}
func (LiquidationTargetsParams) leverageQuery() {}
func (BadDebtsParams) leverageQuery()           {}
func (MaxWithdrawParams) leverageQuery()        {}
func (MaxBorrowParams) leverageQuery()          {}
