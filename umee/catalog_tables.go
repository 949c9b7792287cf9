package umee

// retiredQueries holds the codes of queries removed from the host. They stay
// reserved and resolve to Unrecognized.
var retiredQueries = map[Code]string{
	1:  "borrowed",
	5:  "borrowed_value",
	6:  "supplied",
	7:  "supplied_value",
	8:  "available_borrow",
	9:  "borrow_apy",
	10: "supply_apy",
	11: "market_size",
	12: "token_market_size",
	13: "reserve_amount",
	14: "collateral",
	15: "collateral_value",
	16: "exchange_rate",
}

var queryVariants = concat(leverageQueries, oracleQueries, incentiveQueries, metokenQueries)

var msgVariants = concat(leverageMsgs, oracleMsgs)

func concat(groups ...[]Variant) []Variant {
	var out []Variant
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
