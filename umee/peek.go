package umee

import (
	"github.com/tidwall/gjson"
)

// Peeked is what can be learned about a raw custom request without decoding it.
type Peeked struct {
	Kind Kind
	// Envelope is true for the wide record form, false for the group form.
	Envelope bool
	Code     Code
	Group    Group
	// Name is the canonical name, or Unrecognized.
	Name string
}

// Peek identifies a raw custom query or message. It reads only the
// discriminant or the two group keys and never decodes the payload.
func Peek(kind Kind, raw []byte) (Peeked, bool) {
	reg := registryOf(kind)
	if reg == nil || !gjson.ValidBytes(raw) {
		return Peeked{}, false
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return Peeked{}, false
	}
	if d := root.Get(kind.DiscriminantKey()); d.Exists() && d.Type == gjson.Number {
		n := d.Uint()
		if n > 0xffff {
			return Peeked{}, false
		}
		code := Code(n)
		p := Peeked{Kind: kind, Envelope: true, Code: code, Name: reg.CanonicalName(code)}
		if v, ok := reg.ByCode(code); ok {
			p.Group = v.Group
		}
		return p, true
	}

	var (
		p     Peeked
		found bool
	)
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Null {
			return true
		}
		if v, ok := reg.ByName(key.String()); ok {
			p = Peeked{Kind: kind, Envelope: true, Code: v.Code, Group: v.Group, Name: v.Name}
			found = true
			return false
		}
		group, ok := ParseGroup(key.String())
		if !ok || !value.IsObject() {
			return true
		}
		value.ForEach(func(tag, _ gjson.Result) bool {
			if v, ok := reg.ByTag(group, tag.String()); ok {
				p = Peeked{Kind: kind, Code: v.Code, Group: group, Name: v.Name}
				found = true
			}
			return false
		})
		return !found
	})
	return p, found
}

// PeekQuery is Peek for queries.
func PeekQuery(raw []byte) (Peeked, bool) {
	return Peek(KindQuery, raw)
}

// PeekMsg is Peek for messages.
func PeekMsg(raw []byte) (Peeked, bool) {
	return Peek(KindMsg, raw)
}

func registryOf(kind Kind) *Registry {
	switch kind {
	case KindQuery:
		return queryRegistry
	case KindMsg:
		return msgRegistry
	default:
		return nil
	}
}
