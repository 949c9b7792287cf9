package cwumee

import "github.com/umee-network/umee-cosmwasm/umee"

func (c *Client) LeverageParameters(p umee.LeverageParametersParams) (umee.LeverageParametersResponse, error) {
	return Query[umee.LeverageParametersResponse](c, p)
}

func (c *Client) RegisteredTokens(p umee.RegisteredTokensParams) (umee.RegisteredTokensResponse, error) {
	return Query[umee.RegisteredTokensResponse](c, p)
}

// MarketSummary returns the borrowing and supplying conditions of a base asset.
func (c *Client) MarketSummary(p umee.MarketSummaryParams) (umee.MarketSummaryResponse, error) {
	return Query[umee.MarketSummaryResponse](c, p)
}

// AccountBalances returns the supply, collateral and borrow positions of an account.
func (c *Client) AccountBalances(p umee.AccountBalancesParams) (umee.AccountBalancesResponse, error) {
	return Query[umee.AccountBalancesResponse](c, p)
}

func (c *Client) AccountSummary(p umee.AccountSummaryParams) (umee.AccountSummaryResponse, error) {
	return Query[umee.AccountSummaryResponse](c, p)
}

// LiquidationTargets lists the borrowers eligible for liquidation.
func (c *Client) LiquidationTargets(p umee.LiquidationTargetsParams) (umee.LiquidationTargetsResponse, error) {
	return Query[umee.LiquidationTargetsResponse](c, p)
}

func (c *Client) BadDebts(p umee.BadDebtsParams) (umee.BadDebtsResponse, error) {
	return Query[umee.BadDebtsResponse](c, p)
}

// MaxWithdraw returns the most an account can withdraw without becoming unhealthy.
func (c *Client) MaxWithdraw(p umee.MaxWithdrawParams) (umee.MaxWithdrawResponse, error) {
	return Query[umee.MaxWithdrawResponse](c, p)
}

func (c *Client) MaxBorrow(p umee.MaxBorrowParams) (umee.MaxBorrowResponse, error) {
	return Query[umee.MaxBorrowResponse](c, p)
}
