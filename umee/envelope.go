package umee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

// encodeEnvelope writes the wide record holding only the populated slot.
func encodeEnvelope(reg *Registry, code Code, payload any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"`)
	buf.WriteString(reg.kind.DiscriminantKey())
	buf.WriteString(`":`)
	buf.WriteString(strconv.FormatUint(uint64(code), 10))
	if v, ok := reg.ByCode(code); ok && payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", v.Name, err)
		}
		buf.WriteString(`,"`)
		buf.WriteString(v.Name)
		buf.WriteString(`":`)
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeEnvelope reads a wide record. Null slots count as empty and unknown keys
// are ignored. Without a discriminant the code is inferred from the single
// populated slot. An unknown discriminant yields its code and no payload.
func decodeEnvelope(reg *Registry, data []byte) (Code, any, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return 0, nil, err
	}
	if fields == nil {
		return 0, nil, fmt.Errorf("%s envelope is null", reg.kind)
	}

	key := reg.kind.DiscriminantKey()
	var code Code
	hasCode := false
	if raw, ok := fields[key]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &code); err != nil {
			return 0, nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		hasCode = true
	}

	var populated []string
	for name, raw := range fields {
		if name == key || isNull(raw) {
			continue
		}
		if _, ok := reg.ByName(name); ok {
			populated = append(populated, name)
		}
	}
	sort.Strings(populated)

	if hasCode && reg.CanonicalName(code) == Unrecognized {
		return code, nil, nil
	}
	switch len(populated) {
	case 0:
		if hasCode {
			return 0, nil, fmt.Errorf("%s envelope %q has no payload", reg.kind, reg.CanonicalName(code))
		}
		return 0, nil, fmt.Errorf("%s envelope has neither %s nor a payload", reg.kind, key)
	case 1:
	default:
		return 0, nil, fmt.Errorf("%s envelope populates %d slots %v, expected one", reg.kind, len(populated), populated)
	}

	v, _ := reg.ByName(populated[0])
	if hasCode && code != v.Code {
		return 0, nil, fmt.Errorf("%s %d (%s) does not match populated slot %q", key, code, reg.CanonicalName(code), v.Name)
	}
	payload, err := v.decodePayload(fields[v.Name])
	if err != nil {
		return 0, nil, err
	}
	return v.Code, payload, nil
}
