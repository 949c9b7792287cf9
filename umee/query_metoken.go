package umee

import "github.com/umee-network/umee-cosmwasm/types"

const (
	QueryMetokenParameters    Code = 47
	QueryMetokenIndexes       Code = 48
	QueryMetokenSwapfee       Code = 49
	QueryMetokenRedeemfee     Code = 50
	QueryMetokenIndexbalances Code = 51
	QueryMetokenIndexPrice    Code = 52
)

var metokenQueries = []Variant{
	variant[MetokenParametersParams, MetokenParametersResponse](KindQuery, QueryMetokenParameters, "metoken_parameters", GroupMetoken, "metoken_parameters"),
	variant[MetokenIndexesParams, MetokenIndexesResponse](KindQuery, QueryMetokenIndexes, "metoken_indexes", GroupMetoken, "metoken_indexes"),
	variant[MetokenSwapfeeParams, MetokenSwapfeeResponse](KindQuery, QueryMetokenSwapfee, "metoken_swapfee", GroupMetoken, "metoken_swapfee"),
	variant[MetokenRedeemfeeParams, MetokenRedeemfeeResponse](KindQuery, QueryMetokenRedeemfee, "metoken_redeemfee", GroupMetoken, "metoken_redeemfee"),
	variant[MetokenIndexbalancesParams, MetokenIndexbalancesResponse](KindQuery, QueryMetokenIndexbalances, "metoken_indexbalances", GroupMetoken, "metoken_indexbalances"),
	variant[MetokenIndexPriceParams, MetokenIndexPriceResponse](KindQuery, QueryMetokenIndexPrice, "metoken_indexprice", GroupMetoken, "metoken_index_price"),
}

// MetokenParameters defines the parameters for the metoken module.
type MetokenParameters struct {
	// RebalancingFrequency is in seconds.
	RebalancingFrequency int64 `json:"rebalancing_frequency"`
	ClaimingFrequency    int64 `json:"claiming_frequency"`
}

// Index is a meToken and the assets backing it.
type Index struct {
	Denom          string          `json:"denom"`
	MaxSupply      int64           `json:"max_supply"`
	Exponent       uint32          `json:"exponent"`
	Fee            Fee             `json:"fee"`
	AcceptedAssets []AcceptedAsset `json:"accepted_assets"`
}

type Fee struct {
	MinFee      types.Decimal `json:"min_fee"`
	BalancedFee types.Decimal `json:"balanced_fee"`
	MaxFee      types.Decimal `json:"max_fee"`
}

type AcceptedAsset struct {
	Denom            string        `json:"denom"`
	ReservePortion   types.Decimal `json:"reserve_portion"`
	TargetAllocation types.Decimal `json:"target_allocation"`
}

// IndexBalances is the supply of a meToken and where its assets sit.
type IndexBalances struct {
	MetokenSupply types.Coin     `json:"metoken_supply"`
	AssetBalances []AssetBalance `json:"asset_balances"`
}

type AssetBalance struct {
	Denom     string        `json:"denom"`
	Leveraged types.Decimal `json:"leveraged"`
	Reserved  types.Decimal `json:"reserved"`
	Fees      types.Decimal `json:"fees"`
	Interest  types.Decimal `json:"interest"`
}

type Price struct {
	Denom    string        `json:"denom"`
	Price    types.Decimal `json:"price"`
	Exponent uint32        `json:"exponent"`
}

type MetokenParametersParams struct{}

type MetokenParametersResponse struct {
	Params MetokenParameters `json:"params"`
}

// MetokenIndexesParams selects one index. An empty denom lists all of them.
type MetokenIndexesParams struct {
	MetokenDenom string `json:"metoken_denom"`
}

type MetokenIndexesResponse struct {
	Registry []Index `json:"registry"`
}

// MetokenSwapfeeParams prices the fee for swapping asset into metoken_denom.
type MetokenSwapfeeParams struct {
	MetokenDenom string     `json:"metoken_denom"`
	Asset        types.Coin `json:"asset"`
}

type MetokenSwapfeeResponse struct {
	Asset types.Coin `json:"asset"`
}

// MetokenRedeemfeeParams prices the fee for redeeming metoken into asset_denom.
type MetokenRedeemfeeParams struct {
	Metoken    types.Coin `json:"metoken"`
	AssetDenom string     `json:"asset_denom"`
}

type MetokenRedeemfeeResponse struct {
	Asset types.Coin `json:"asset"`
}

type MetokenIndexbalancesParams struct {
	MetokenDenom string `json:"metoken_denom"`
}

type MetokenIndexbalancesResponse struct {
	IndexBalances []IndexBalances `json:"index_balances"`
}

type MetokenIndexPriceParams struct {
	MetokenDenom string `json:"metoken_denom"`
}

type MetokenIndexPriceResponse struct {
	Price []Price `json:"price"`
}

func MetokenParametersQuery(p MetokenParametersParams) StructQuery       { return NewStructQuery(p) }
func MetokenIndexesQuery(p MetokenIndexesParams) StructQuery             { return NewStructQuery(p) }
func MetokenSwapfeeQuery(p MetokenSwapfeeParams) StructQuery             { return NewStructQuery(p) }
func MetokenRedeemfeeQuery(p MetokenRedeemfeeParams) StructQuery         { return NewStructQuery(p) }
func MetokenIndexbalancesQuery(p MetokenIndexbalancesParams) StructQuery { return NewStructQuery(p) }
func MetokenIndexPriceQuery(p MetokenIndexPriceParams) StructQuery       { return NewStructQuery(p) }

func (MetokenParametersParams) umeeQuery()    {}
func (MetokenIndexesParams) umeeQuery()       {}
func (MetokenSwapfeeParams) umeeQuery()       {}
func (MetokenRedeemfeeParams) umeeQuery()     {}
func (MetokenIndexbalancesParams) umeeQuery() {}
func (MetokenIndexPriceParams) umeeQuery()    {}

func (MetokenParametersParams) metokenQuery()    {}
func (MetokenIndexesParams) metokenQuery()       {}
func (MetokenSwapfeeParams) metokenQuery()       {}
func (MetokenRedeemfeeParams) metokenQuery()     {}
func (MetokenIndexbalancesParams) metokenQuery() {}
func (MetokenIndexPriceParams) metokenQuery()    {}
