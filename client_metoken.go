package cwumee

import "github.com/umee-network/umee-cosmwasm/umee"

func (c *Client) MetokenParameters(p umee.MetokenParametersParams) (umee.MetokenParametersResponse, error) {
	return Query[umee.MetokenParametersResponse](c, p)
}

func (c *Client) MetokenIndexes(p umee.MetokenIndexesParams) (umee.MetokenIndexesResponse, error) {
	return Query[umee.MetokenIndexesResponse](c, p)
}

func (c *Client) MetokenSwapfee(p umee.MetokenSwapfeeParams) (umee.MetokenSwapfeeResponse, error) {
	return Query[umee.MetokenSwapfeeResponse](c, p)
}

func (c *Client) MetokenRedeemfee(p umee.MetokenRedeemfeeParams) (umee.MetokenRedeemfeeResponse, error) {
	return Query[umee.MetokenRedeemfeeResponse](c, p)
}

func (c *Client) MetokenIndexbalances(p umee.MetokenIndexbalancesParams) (umee.MetokenIndexbalancesResponse, error) {
	return Query[umee.MetokenIndexbalancesResponse](c, p)
}

// MetokenIndexPrice returns the price of a meToken and of its accepted assets.
func (c *Client) MetokenIndexPrice(p umee.MetokenIndexPriceParams) (umee.MetokenIndexPriceResponse, error) {
	return Query[umee.MetokenIndexPriceResponse](c, p)
}
