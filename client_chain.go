package cwumee

import "github.com/umee-network/umee-cosmwasm/types"

// Balance is a bank query forwarded as is.
func (c *Client) Balance(address, denom string) (types.Coin, error) {
	res, err := Query[types.BalanceResponse](c, types.QueryRequest{
		Bank: &types.BankQuery{Balance: &types.BalanceQuery{Address: address, Denom: denom}},
	})
	if err != nil {
		return types.Coin{}, err
	}
	return res.Amount, nil
}

// AllBalances is a bank query forwarded as is.
func (c *Client) AllBalances(address string) (types.Coins, error) {
	res, err := Query[types.AllBalancesResponse](c, types.QueryRequest{
		Bank: &types.BankQuery{AllBalances: &types.AllBalancesQuery{Address: address}},
	})
	if err != nil {
		return nil, err
	}
	return res.Amount, nil
}
