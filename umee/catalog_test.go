package umee

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Codes already deployed on chain. Entries may be added, never changed.
var frozenQueries = map[Code]string{
	2:  "exchange_rates",
	3:  "registered_tokens",
	4:  "leverage_parameters",
	17: "market_summary",
	18: "account_balances",
	19: "account_summary",
	20: "liquidation_targets",
	21: "bad_debts_params",
	22: "max_withdraw_params",
	23: "max_borrow_params",
	24: "active_exchange_rates",
	25: "feeder_delegation",
	26: "miss_counter",
	27: "slash_window",
	28: "aggregate_prevote",
	29: "aggregate_prevotes",
	30: "aggregate_vote",
	31: "aggregate_votes",
	32: "oracle_params",
	33: "medians_params",
	34: "median_deviations_params",
	35: "incentive_parameters",
	36: "total_bonded",
	37: "total_unbonding",
	38: "account_bonds",
	39: "pending_rewards",
	40: "completed_incentive_programs",
	41: "ongoing_incentive_programs",
	42: "upcoming_incentive_programs",
	43: "incentive_program",
	44: "current_rates",
	45: "actual_rates",
	46: "last_reward_time",
	47: "metoken_parameters",
	48: "metoken_indexes",
	49: "metoken_swapfee",
	50: "metoken_redeemfee",
	51: "metoken_indexbalances",
	52: "metoken_indexprice",
}

var frozenMsgs = map[Code]string{
	1:  "supply",
	2:  "withdraw",
	3:  "collateralize",
	4:  "decollateralize",
	5:  "borrow",
	6:  "repay",
	7:  "liquidate",
	8:  "supply_collateral",
	9:  "max_withdraw",
	10: "max_borrow",
	11: "aggregate_exchange_rate_prevote",
	12: "aggregate_exchange_rate_vote",
	13: "delegate_feed_consent",
}

func TestFrozenQueryCodes(t *testing.T) {
	for code, name := range frozenQueries {
		assert.Equal(t, name, Queries().CanonicalName(code), "code %d", code)
	}
	require.GreaterOrEqual(t, len(Queries().All()), len(frozenQueries))

	for _, code := range []Code{1, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16} {
		_, retired := Queries().Retired(code)
		assert.True(t, retired, "code %d", code)
		assert.Equal(t, Unrecognized, Queries().CanonicalName(code), "code %d", code)
	}
}

func TestFrozenMsgCodes(t *testing.T) {
	for code, name := range frozenMsgs {
		assert.Equal(t, name, Msgs().CanonicalName(code), "code %d", code)
	}
	require.GreaterOrEqual(t, len(Msgs().All()), len(frozenMsgs))
}

func TestCanonicalNameIsTotal(t *testing.T) {
	for _, code := range []Code{0, 53, 999, 0xffff} {
		assert.Equal(t, Unrecognized, Queries().CanonicalName(code))
		assert.Equal(t, Unrecognized, Msgs().CanonicalName(code))
	}
}

func TestRegistryLookups(t *testing.T) {
	for _, reg := range []*Registry{Queries(), Msgs()} {
		all := reg.All()
		seen := 0
		for _, g := range []Group{GroupLeverage, GroupOracle, GroupIncentive, GroupMetoken} {
			seen += len(reg.Groups(g))
		}
		require.Equal(t, len(all), seen, "every %s belongs to a group", reg.Kind())

		for i, v := range all {
			if i > 0 {
				require.Less(t, uint16(all[i-1].Code), uint16(v.Code))
			}
			got, ok := reg.ByCode(v.Code)
			require.True(t, ok)
			require.Equal(t, v, got)

			got, ok = reg.ByName(v.Name)
			require.True(t, ok)
			require.Equal(t, v, got)

			got, ok = reg.ByTag(v.Group, v.Tag)
			require.True(t, ok, v.String())
			require.Equal(t, v, got)

			got, ok = reg.ByPayload(reflect.Zero(v.Payload).Interface())
			require.True(t, ok, v.String())
			require.Equal(t, v, got)

			got, ok = reg.ByPayload(reflect.New(v.Payload).Interface())
			require.True(t, ok, v.String())
			require.Equal(t, v, got)

			if reg.Kind() == KindQuery {
				require.NotNil(t, v.Response, v.String())
			} else {
				require.Nil(t, v.Response, v.String())
			}
		}
	}
}

func TestPayloadsImplementTheirGroup(t *testing.T) {
	groups := map[Group]reflect.Type{
		GroupLeverage:  reflect.TypeOf((*LeverageQuery)(nil)).Elem(),
		GroupOracle:    reflect.TypeOf((*OracleQuery)(nil)).Elem(),
		GroupIncentive: reflect.TypeOf((*IncentiveQuery)(nil)).Elem(),
		GroupMetoken:   reflect.TypeOf((*MetokenQuery)(nil)).Elem(),
	}
	for _, v := range Queries().All() {
		for g, iface := range groups {
			assert.Equal(t, g == v.Group, v.Payload.Implements(iface), "%s / %s", v, g)
		}
	}

	msgGroups := map[Group]reflect.Type{
		GroupLeverage: reflect.TypeOf((*LeverageMsg)(nil)).Elem(),
		GroupOracle:   reflect.TypeOf((*OracleMsg)(nil)).Elem(),
	}
	for _, v := range Msgs().All() {
		for g, iface := range msgGroups {
			assert.Equal(t, g == v.Group, v.Payload.Implements(iface), "%s / %s", v, g)
		}
	}
}

func TestRegistryRejectsCollisions(t *testing.T) {
	supply := msgVariant[SupplyParams](1, "supply", GroupLeverage, "supply")
	withdraw := msgVariant[WithdrawParams](2, "withdraw", GroupLeverage, "withdraw")

	specs := map[string]struct {
		variants []Variant
		retired  map[Code]string
	}{
		"duplicate code": {
			variants: []Variant{supply, msgVariant[WithdrawParams](1, "withdraw", GroupLeverage, "withdraw")},
		},
		"duplicate name": {
			variants: []Variant{supply, msgVariant[WithdrawParams](2, "supply", GroupLeverage, "withdraw")},
		},
		"duplicate tag": {
			variants: []Variant{supply, msgVariant[WithdrawParams](2, "withdraw", GroupLeverage, "supply")},
		},
		"duplicate payload": {
			variants: []Variant{supply, msgVariant[SupplyParams](2, "withdraw", GroupLeverage, "withdraw")},
		},
		"reserved code": {
			variants: []Variant{msgVariant[SupplyParams](0, "supply", GroupLeverage, "supply")},
		},
		"retired code": {
			variants: []Variant{supply, withdraw},
			retired:  map[Code]string{2: "redeem"},
		},
		"sentinel name": {
			variants: []Variant{msgVariant[SupplyParams](1, Unrecognized, GroupLeverage, "supply")},
		},
		"discriminant name": {
			variants: []Variant{msgVariant[SupplyParams](1, "assigned_msg", GroupLeverage, "supply")},
		},
		"no group": {
			variants: []Variant{msgVariant[SupplyParams](1, "supply", UnsetGroup, "supply")},
		},
		"wrong kind": {
			variants: []Variant{variant[MarketSummaryParams, MarketSummaryResponse](KindQuery, 1, "market_summary", GroupLeverage, "market_summary")},
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			require.Panics(t, func() { newRegistry(KindMsg, spec.variants, spec.retired) })
		})
	}

	require.NotPanics(t, func() { newRegistry(KindMsg, []Variant{withdraw, supply}, map[Code]string{3: "redeem"}) })
}

func TestGroupNames(t *testing.T) {
	for g, name := range fromGroup {
		parsed, ok := ParseGroup(name)
		require.True(t, ok)
		require.Equal(t, g, parsed)
		require.Equal(t, name, g.String())
	}
	_, ok := ParseGroup("staking")
	require.False(t, ok)
	require.Equal(t, "", UnsetGroup.String())
}
