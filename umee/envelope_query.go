package umee

import (
	"encoding/json"
	"fmt"
)

// StructQuery is the envelope form of a custom query:
//
//	{"assigned_query": 17, "market_summary": {"denom": "uumee"}}
//
// It carries a single payload, so only the slot named by the discriminant can
// ever be populated.
type StructQuery struct {
	assigned Code
	payload  QueryPayload
}

var (
	_ json.Marshaler   = StructQuery{}
	_ json.Unmarshaler = (*StructQuery)(nil)
)

// NewStructQuery tags p with the code of its variant.
func NewStructQuery(p QueryPayload) StructQuery {
	payload, _ := normalize(p).(QueryPayload)
	v, ok := queryRegistry.ByPayload(payload)
	if !ok {
		return StructQuery{}
	}
	return StructQuery{assigned: v.Code, payload: payload}
}

// Assigned returns the discriminant, which may be outside the catalog for a
// decoded envelope.
func (q StructQuery) Assigned() Code {
	return q.assigned
}

// AssignedName returns the canonical name of the discriminant, or Unrecognized.
func (q StructQuery) AssignedName() string {
	return queryRegistry.CanonicalName(q.assigned)
}

// Valid reports whether the discriminant names a query of the catalog.
func (q StructQuery) Valid() bool {
	return q.AssignedName() != Unrecognized
}

// Payload returns the populated slot, nil for an invalid envelope.
func (q StructQuery) Payload() QueryPayload {
	return q.payload
}

// Variant returns the catalog entry of the envelope.
func (q StructQuery) Variant() (Variant, bool) {
	return queryRegistry.ByCode(q.assigned)
}

// Group converts the envelope to the group form of the same query.
func (q StructQuery) Group() (UmeeQuery, error) {
	if !q.Valid() {
		return UmeeQuery{}, fmt.Errorf("query envelope %d is %s", q.assigned, Unrecognized)
	}
	return newUmeeQuery(q.payload), nil
}

func (q StructQuery) MarshalJSON() ([]byte, error) {
	return encodeEnvelope(queryRegistry, q.assigned, q.payload)
}

func (q *StructQuery) UnmarshalJSON(data []byte) error {
	code, payload, err := decodeEnvelope(queryRegistry, data)
	if err != nil {
		return err
	}
	p, _ := payload.(QueryPayload)
	*q = StructQuery{assigned: code, payload: p}
	return nil
}

func (q StructQuery) String() string {
	return fmt.Sprintf("StructQuery{%s(%d)}", q.AssignedName(), q.assigned)
}
