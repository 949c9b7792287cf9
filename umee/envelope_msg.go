package umee

import (
	"encoding/json"
	"fmt"
)

// StructMsg is the envelope form of a custom message:
//
//	{"assigned_msg": 1, "supply": {"supplier": "umee1...", "asset": {...}}}
type StructMsg struct {
	assigned Code
	payload  MsgPayload
}

var (
	_ json.Marshaler   = StructMsg{}
	_ json.Unmarshaler = (*StructMsg)(nil)
)

// NewStructMsg tags p with the code of its variant.
func NewStructMsg(p MsgPayload) StructMsg {
	payload, _ := normalize(p).(MsgPayload)
	v, ok := msgRegistry.ByPayload(payload)
	if !ok {
		return StructMsg{}
	}
	return StructMsg{assigned: v.Code, payload: payload}
}

func (m StructMsg) Assigned() Code {
	return m.assigned
}

// AssignedName returns the canonical name of the discriminant, or Unrecognized.
func (m StructMsg) AssignedName() string {
	return msgRegistry.CanonicalName(m.assigned)
}

func (m StructMsg) Valid() bool {
	return m.AssignedName() != Unrecognized
}

func (m StructMsg) Payload() MsgPayload {
	return m.payload
}

func (m StructMsg) Variant() (Variant, bool) {
	return msgRegistry.ByCode(m.assigned)
}

// Group converts the envelope to the group form of the same message.
func (m StructMsg) Group() (UmeeMsg, error) {
	if !m.Valid() {
		return UmeeMsg{}, fmt.Errorf("msg envelope %d is %s", m.assigned, Unrecognized)
	}
	return newUmeeMsg(m.payload), nil
}

func (m StructMsg) MarshalJSON() ([]byte, error) {
	return encodeEnvelope(msgRegistry, m.assigned, m.payload)
}

func (m *StructMsg) UnmarshalJSON(data []byte) error {
	code, payload, err := decodeEnvelope(msgRegistry, data)
	if err != nil {
		return err
	}
	p, _ := payload.(MsgPayload)
	*m = StructMsg{assigned: code, payload: p}
	return nil
}

func (m StructMsg) String() string {
	return fmt.Sprintf("StructMsg{%s(%d)}", m.AssignedName(), m.assigned)
}
