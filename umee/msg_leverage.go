package umee

import "github.com/umee-network/umee-cosmwasm/types"

const (
	MsgSupply           Code = 1
	MsgWithdraw         Code = 2
	MsgCollateralize    Code = 3
	MsgDecollateralize  Code = 4
	MsgBorrow           Code = 5
	MsgRepay            Code = 6
	MsgLiquidate        Code = 7
	MsgSupplyCollateral Code = 8
	MsgMaxWithdraw      Code = 9
	MsgMaxBorrow        Code = 10
)

var leverageMsgs = []Variant{
	msgVariant[SupplyParams](MsgSupply, "supply", GroupLeverage, "supply"),
	msgVariant[WithdrawParams](MsgWithdraw, "withdraw", GroupLeverage, "withdraw"),
	msgVariant[CollateralizeParams](MsgCollateralize, "collateralize", GroupLeverage, "collateralize"),
	msgVariant[DecollateralizeParams](MsgDecollateralize, "decollateralize", GroupLeverage, "decollateralize"),
	msgVariant[BorrowParams](MsgBorrow, "borrow", GroupLeverage, "borrow"),
	msgVariant[RepayParams](MsgRepay, "repay", GroupLeverage, "repay"),
	msgVariant[LiquidateParams](MsgLiquidate, "liquidate", GroupLeverage, "liquidate"),
	msgVariant[SupplyCollateralParams](MsgSupplyCollateral, "supply_collateral", GroupLeverage, "supply_collateral"),
	msgVariant[MsgMaxWithdrawParams](MsgMaxWithdraw, "max_withdraw", GroupLeverage, "max_with_draw"),
	msgVariant[MsgMaxBorrowParams](MsgMaxBorrow, "max_borrow", GroupLeverage, "max_borrow"),
}

// SupplyParams lends asset to the facility in exchange for uTokens.
type SupplyParams struct {
	Supplier types.HumanAddress `json:"supplier"`
	Asset    types.Coin         `json:"asset"`
}

// WithdrawParams redeems uTokens for the underlying asset.
type WithdrawParams struct {
	Supplier types.HumanAddress `json:"supplier"`
	Asset    types.Coin         `json:"asset"`
}

// MsgMaxWithdrawParams withdraws as much of denom as the position allows.
type MsgMaxWithdrawParams struct {
	Supplier types.HumanAddress `json:"supplier"`
	Denom    string             `json:"denom"`
}

type CollateralizeParams struct {
	Borrower types.HumanAddress `json:"borrower"`
	Asset    types.Coin         `json:"asset"`
}

type DecollateralizeParams struct {
	Borrower types.HumanAddress `json:"borrower"`
	Asset    types.Coin         `json:"asset"`
}

type BorrowParams struct {
	Borrower types.HumanAddress `json:"borrower"`
	Asset    types.Coin         `json:"asset"`
}

// MsgMaxBorrowParams borrows as much of denom as the position allows.
type MsgMaxBorrowParams struct {
	Borrower types.HumanAddress `json:"borrower"`
	Denom    string             `json:"denom"`
}

type RepayParams struct {
	Borrower types.HumanAddress `json:"borrower"`
	Asset    types.Coin         `json:"asset"`
}

// LiquidateParams repays part of an unhealthy borrow in exchange for a reward
// out of the borrower's collateral.
type LiquidateParams struct {
	Liquidator types.HumanAddress `json:"liquidator"`
	Borrower   types.HumanAddress `json:"borrower"`
	Repayment  types.Coin         `json:"repayment"`
	Reward     types.Coin         `json:"reward"`
}

// SupplyCollateralParams supplies asset and collateralizes the received uTokens.
type SupplyCollateralParams struct {
	Supplier types.HumanAddress `json:"supplier"`
	Asset    types.Coin         `json:"asset"`
}

func SupplyMsg(p SupplyParams) StructMsg                     { return NewStructMsg(p) }
func WithdrawMsg(p WithdrawParams) StructMsg                 { return NewStructMsg(p) }
func CollateralizeMsg(p CollateralizeParams) StructMsg       { return NewStructMsg(p) }
func DecollateralizeMsg(p DecollateralizeParams) StructMsg   { return NewStructMsg(p) }
func BorrowMsg(p BorrowParams) StructMsg                     { return NewStructMsg(p) }
func RepayMsg(p RepayParams) StructMsg                       { return NewStructMsg(p) }
func LiquidateMsg(p LiquidateParams) StructMsg               { return NewStructMsg(p) }
func SupplyCollateralMsg(p SupplyCollateralParams) StructMsg { return NewStructMsg(p) }
func MaxWithdrawMsg(p MsgMaxWithdrawParams) StructMsg        { return NewStructMsg(p) }
func MaxBorrowMsg(p MsgMaxBorrowParams) StructMsg            { return NewStructMsg(p) }

func (SupplyParams) umeeMsg()           {}
func (WithdrawParams) umeeMsg()         {}
func (CollateralizeParams) umeeMsg()    {}
func (DecollateralizeParams) umeeMsg()  {}
func (BorrowParams) umeeMsg()           {}
func (RepayParams) umeeMsg()            {}
func (LiquidateParams) umeeMsg()        {}
func (SupplyCollateralParams) umeeMsg() {}
func (MsgMaxWithdrawParams) umeeMsg()   {}
func (MsgMaxBorrowParams) umeeMsg()     {}

func (SupplyParams) leverageMsg()           {}
func (WithdrawParams) leverageMsg()         {}
func (CollateralizeParams) leverageMsg()    {}
func (DecollateralizeParams) leverageMsg()  {}
func (BorrowParams) leverageMsg()           {}
func (RepayParams) leverageMsg()            {}
func (LiquidateParams) leverageMsg()        {}
func (SupplyCollateralParams) leverageMsg() {}
func (MsgMaxWithdrawParams) leverageMsg()   {}
func (MsgMaxBorrowParams) leverageMsg()     {}
