package cwumee

import "github.com/umee-network/umee-cosmwasm/umee"

func (c *Client) IncentiveParameters(p umee.IncentiveParametersParams) (umee.IncentiveParametersResponse, error) {
	return Query[umee.IncentiveParametersResponse](c, p)
}

func (c *Client) TotalBonded(p umee.TotalBondedParams) (umee.TotalBondedResponse, error) {
	return Query[umee.TotalBondedResponse](c, p)
}

func (c *Client) TotalUnbonding(p umee.TotalUnbondingParams) (umee.TotalUnbondingResponse, error) {
	return Query[umee.TotalUnbondingResponse](c, p)
}

func (c *Client) AccountBonds(p umee.AccountBondsParams) (umee.AccountBondsResponse, error) {
	return Query[umee.AccountBondsResponse](c, p)
}

// PendingRewards returns the incentive rewards an account can claim.
func (c *Client) PendingRewards(p umee.PendingRewardsParams) (umee.PendingRewardsResponse, error) {
	return Query[umee.PendingRewardsResponse](c, p)
}

func (c *Client) CompletedIncentivePrograms(p umee.CompletedIncentiveProgramsParams) (umee.CompletedIncentiveProgramsResponse, error) {
	return Query[umee.CompletedIncentiveProgramsResponse](c, p)
}

func (c *Client) OngoingIncentivePrograms(p umee.OngoingIncentiveProgramsParams) (umee.OngoingIncentiveProgramsResponse, error) {
	return Query[umee.OngoingIncentiveProgramsResponse](c, p)
}

func (c *Client) UpcomingIncentivePrograms(p umee.UpcomingIncentiveProgramsParams) (umee.UpcomingIncentiveProgramsResponse, error) {
	return Query[umee.UpcomingIncentiveProgramsResponse](c, p)
}

func (c *Client) IncentiveProgram(p umee.IncentiveProgramParams) (umee.IncentiveProgramResponse, error) {
	return Query[umee.IncentiveProgramResponse](c, p)
}

func (c *Client) CurrentRates(p umee.CurrentRatesParams) (umee.CurrentRatesResponse, error) {
	return Query[umee.CurrentRatesResponse](c, p)
}

func (c *Client) ActualRates(p umee.ActualRatesParams) (umee.ActualRatesResponse, error) {
	return Query[umee.ActualRatesResponse](c, p)
}

func (c *Client) LastRewardTime(p umee.LastRewardTimeParams) (umee.LastRewardTimeResponse, error) {
	return Query[umee.LastRewardTimeResponse](c, p)
}
