package cwumee

import "github.com/umee-network/umee-cosmwasm/umee"

// ExchangeRates returns the oracle price of a denom, or of every denom when it is empty.
func (c *Client) ExchangeRates(p umee.ExchangeRatesParams) (umee.ExchangeRatesResponse, error) {
	return Query[umee.ExchangeRatesResponse](c, p)
}

func (c *Client) ActiveExchangeRates(p umee.ActiveExchangeRatesParams) (umee.ActiveExchangeRatesResponse, error) {
	return Query[umee.ActiveExchangeRatesResponse](c, p)
}

func (c *Client) FeederDelegation(p umee.FeederDelegationParams) (umee.FeederDelegationResponse, error) {
	return Query[umee.FeederDelegationResponse](c, p)
}

func (c *Client) MissCounter(p umee.MissCounterParams) (umee.MissCounterResponse, error) {
	return Query[umee.MissCounterResponse](c, p)
}

func (c *Client) SlashWindow(p umee.SlashWindowParams) (umee.SlashWindowResponse, error) {
	return Query[umee.SlashWindowResponse](c, p)
}

func (c *Client) AggregatePrevote(p umee.AggregatePrevoteParams) (umee.AggregatePrevoteResponse, error) {
	return Query[umee.AggregatePrevoteResponse](c, p)
}

func (c *Client) AggregatePrevotes(p umee.AggregatePrevotesParams) (umee.AggregatePrevotesResponse, error) {
	return Query[umee.AggregatePrevotesResponse](c, p)
}

func (c *Client) AggregateVote(p umee.AggregateVoteParams) (umee.AggregateVoteResponse, error) {
	return Query[umee.AggregateVoteResponse](c, p)
}

func (c *Client) AggregateVotes(p umee.AggregateVotesParams) (umee.AggregateVotesResponse, error) {
	return Query[umee.AggregateVotesResponse](c, p)
}

func (c *Client) OracleParameters(p umee.OracleParametersParams) (umee.OracleParametersResponse, error) {
	return Query[umee.OracleParametersResponse](c, p)
}

func (c *Client) Medians(p umee.MediansParams) (umee.MediansResponse, error) {
	return Query[umee.MediansResponse](c, p)
}

func (c *Client) MedianDeviations(p umee.MedianDeviationsParams) (umee.MedianDeviationsResponse, error) {
	return Query[umee.MedianDeviationsResponse](c, p)
}
