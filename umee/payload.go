package umee

// QueryPayload is implemented by the params type of every query in the catalog.
// The set is closed: only this package can add members.
type QueryPayload interface {
	umeeQuery()
}

// MsgPayload is implemented by the params type of every message in the catalog.
type MsgPayload interface {
	umeeMsg()
}

// LeverageQuery is a query answered by the x/leverage module.
type LeverageQuery interface {
	QueryPayload
	leverageQuery()
}

// OracleQuery is a query answered by the x/oracle module.
type OracleQuery interface {
	QueryPayload
	oracleQuery()
}

// IncentiveQuery is a query answered by the x/incentive module.
type IncentiveQuery interface {
	QueryPayload
	incentiveQuery()
}

// MetokenQuery is a query answered by the x/metoken module.
type MetokenQuery interface {
	QueryPayload
	metokenQuery()
}

// LeverageMsg is a message executed by the x/leverage module.
type LeverageMsg interface {
	MsgPayload
	leverageMsg()
}

// OracleMsg is a message executed by the x/oracle module.
type OracleMsg interface {
	MsgPayload
	oracleMsg()
}
