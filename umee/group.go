package umee

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// encodeGroup writes {"<group>": {"<tag>": payload}}.
func encodeGroup(reg *Registry, group Group, payload any) ([]byte, error) {
	name := group.String()
	if name == "" {
		return nil, fmt.Errorf("empty %s group request", reg.kind)
	}
	v, ok := reg.ByPayload(payload)
	if !ok {
		return nil, fmt.Errorf("%T is not a %s of the catalog", payload, reg.kind)
	}
	if v.Group != group {
		return nil, fmt.Errorf("%s belongs to %s, not %s", v.Name, v.Group, group)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", v.Name, err)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{%q:{%q:`, name, v.Tag)
	buf.Write(body)
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// singleKey returns the only non-null member of a JSON object.
func singleKey(data []byte, what string) (string, json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", nil, err
	}
	var (
		key string
		raw json.RawMessage
		n   int
	)
	for k, v := range fields {
		if isNull(v) {
			continue
		}
		key, raw = k, v
		n++
	}
	if n != 1 {
		return "", nil, fmt.Errorf("%s must hold exactly one variant, got %d", what, n)
	}
	return key, raw, nil
}

// decodeGroup resolves both levels of a group request and decodes the payload.
func decodeGroup(reg *Registry, data []byte) (Group, any, error) {
	groupName, inner, err := singleKey(data, "umee "+reg.kind.String())
	if err != nil {
		return UnsetGroup, nil, err
	}
	group, ok := ParseGroup(groupName)
	if !ok || len(reg.Groups(group)) == 0 {
		return UnsetGroup, nil, fmt.Errorf("unknown %s group %q", reg.kind, groupName)
	}
	tag, raw, err := singleKey(inner, groupName+" "+reg.kind.String())
	if err != nil {
		return UnsetGroup, nil, err
	}
	v, ok := reg.ByTag(group, tag)
	if !ok {
		return UnsetGroup, nil, fmt.Errorf("unknown variant %q of %s %s", tag, groupName, reg.kind)
	}
	payload, err := v.decodePayload(raw)
	if err != nil {
		return UnsetGroup, nil, err
	}
	return group, payload, nil
}

// UmeeQuery is the group form of a custom query:
//
//	{"leverage": {"market_summary": {"denom": "uumee"}}}
//
// The first level selects the module, the second the variant inside it.
type UmeeQuery struct {
	group   Group
	payload QueryPayload
}

var (
	_ json.Marshaler   = UmeeQuery{}
	_ json.Unmarshaler = (*UmeeQuery)(nil)
)

func NewLeverageQuery(q LeverageQuery) UmeeQuery {
	return UmeeQuery{group: GroupLeverage, payload: normalizeQuery(q)}
}

func NewOracleQuery(q OracleQuery) UmeeQuery {
	return UmeeQuery{group: GroupOracle, payload: normalizeQuery(q)}
}

func NewIncentiveQuery(q IncentiveQuery) UmeeQuery {
	return UmeeQuery{group: GroupIncentive, payload: normalizeQuery(q)}
}

func NewMetokenQuery(q MetokenQuery) UmeeQuery {
	return UmeeQuery{group: GroupMetoken, payload: normalizeQuery(q)}
}

// newUmeeQuery picks the group of an arbitrary payload.
func newUmeeQuery(p QueryPayload) UmeeQuery {
	switch q := p.(type) {
	case LeverageQuery:
		return NewLeverageQuery(q)
	case OracleQuery:
		return NewOracleQuery(q)
	case IncentiveQuery:
		return NewIncentiveQuery(q)
	case MetokenQuery:
		return NewMetokenQuery(q)
	default:
		return UmeeQuery{}
	}
}

func normalizeQuery(p QueryPayload) QueryPayload {
	q, _ := normalize(p).(QueryPayload)
	return q
}

func (q UmeeQuery) Group() Group {
	return q.group
}

func (q UmeeQuery) Payload() QueryPayload {
	return q.payload
}

func (q UmeeQuery) Variant() (Variant, bool) {
	return queryRegistry.ByPayload(q.payload)
}

// Envelope converts the group request to the envelope form of the same query.
func (q UmeeQuery) Envelope() StructQuery {
	return NewStructQuery(q.payload)
}

func (q UmeeQuery) MarshalJSON() ([]byte, error) {
	return encodeGroup(queryRegistry, q.group, q.payload)
}

func (q *UmeeQuery) UnmarshalJSON(data []byte) error {
	group, payload, err := decodeGroup(queryRegistry, data)
	if err != nil {
		return err
	}
	p, _ := payload.(QueryPayload)
	*q = UmeeQuery{group: group, payload: p}
	return nil
}

// UmeeMsg is the group form of a custom message:
//
//	{"leverage": {"supply": {"supplier": "umee1...", "asset": {...}}}}
type UmeeMsg struct {
	group   Group
	payload MsgPayload
}

var (
	_ json.Marshaler   = UmeeMsg{}
	_ json.Unmarshaler = (*UmeeMsg)(nil)
)

func NewLeverageMsg(m LeverageMsg) UmeeMsg {
	return UmeeMsg{group: GroupLeverage, payload: normalizeMsg(m)}
}

func NewOracleMsg(m OracleMsg) UmeeMsg {
	return UmeeMsg{group: GroupOracle, payload: normalizeMsg(m)}
}

func newUmeeMsg(p MsgPayload) UmeeMsg {
	switch m := p.(type) {
	case LeverageMsg:
		return NewLeverageMsg(m)
	case OracleMsg:
		return NewOracleMsg(m)
	default:
		return UmeeMsg{}
	}
}

func normalizeMsg(p MsgPayload) MsgPayload {
	m, _ := normalize(p).(MsgPayload)
	return m
}

func (m UmeeMsg) Group() Group {
	return m.group
}

func (m UmeeMsg) Payload() MsgPayload {
	return m.payload
}

func (m UmeeMsg) Variant() (Variant, bool) {
	return msgRegistry.ByPayload(m.payload)
}

func (m UmeeMsg) Envelope() StructMsg {
	return NewStructMsg(m.payload)
}

func (m UmeeMsg) MarshalJSON() ([]byte, error) {
	return encodeGroup(msgRegistry, m.group, m.payload)
}

func (m *UmeeMsg) UnmarshalJSON(data []byte) error {
	group, payload, err := decodeGroup(msgRegistry, data)
	if err != nil {
		return err
	}
	p, _ := payload.(MsgPayload)
	*m = UmeeMsg{group: group, payload: p}
	return nil
}
