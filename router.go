package cwumee

import (
	"encoding/json"
	"fmt"

	"github.com/umee-network/umee-cosmwasm/types"
	"github.com/umee-network/umee-cosmwasm/umee"
)

// routed is a request ready to be sent.
type routed struct {
	route   Route
	variant umee.Variant
	known   bool
	// custom is the envelope or group form, nil for passthrough requests.
	custom  json.RawMessage
	request []byte
}

func (r routed) name() string {
	if !r.known {
		return ""
	}
	return r.variant.Name
}

// route resolves the variant of req and encodes it. Accepted requests are the
// envelopes and group forms of queries and messages, bare payloads (written
// with the configured route) and types.QueryRequest, which is forwarded as is.
func (c *Client) route(req any) (routed, error) {
	switch r := req.(type) {
	case umee.StructQuery:
		if !r.Valid() {
			return routed{route: RouteEnvelope}, invalidEnvelope(umee.KindQuery, uint16(r.Assigned()))
		}
		v, _ := r.Variant()
		return encodeCustom(RouteEnvelope, v, r)
	case *umee.StructQuery:
		if r == nil {
			return routed{route: RouteEnvelope}, invalidEnvelope(umee.KindQuery, 0)
		}
		return c.route(*r)
	case umee.StructMsg:
		if !r.Valid() {
			return routed{route: RouteEnvelope}, invalidEnvelope(umee.KindMsg, uint16(r.Assigned()))
		}
		v, _ := r.Variant()
		return encodeCustom(RouteEnvelope, v, r)
	case *umee.StructMsg:
		if r == nil {
			return routed{route: RouteEnvelope}, invalidEnvelope(umee.KindMsg, 0)
		}
		return c.route(*r)
	case umee.UmeeQuery:
		v, ok := r.Variant()
		if !ok {
			return routed{route: RouteGroup}, newBridgeError(ErrEncode, "", "empty umee query", nil)
		}
		return encodeCustom(RouteGroup, v, r)
	case *umee.UmeeQuery:
		if r == nil {
			return routed{route: RouteGroup}, newBridgeError(ErrEncode, "", "nil umee query", nil)
		}
		return c.route(*r)
	case umee.UmeeMsg:
		v, ok := r.Variant()
		if !ok {
			return routed{route: RouteGroup}, newBridgeError(ErrEncode, "", "empty umee msg", nil)
		}
		return encodeCustom(RouteGroup, v, r)
	case *umee.UmeeMsg:
		if r == nil {
			return routed{route: RouteGroup}, newBridgeError(ErrEncode, "", "nil umee msg", nil)
		}
		return c.route(*r)
	case umee.QueryPayload:
		env := umee.NewStructQuery(r)
		if c.cfg.Route == RouteGroup {
			grp, err := env.Group()
			if err != nil {
				return routed{route: RouteGroup}, newBridgeError(ErrEncode, "", "", err)
			}
			return c.route(grp)
		}
		return c.route(env)
	case umee.MsgPayload:
		env := umee.NewStructMsg(r)
		if c.cfg.Route == RouteGroup {
			grp, err := env.Group()
			if err != nil {
				return routed{route: RouteGroup}, newBridgeError(ErrEncode, "", "", err)
			}
			return c.route(grp)
		}
		return c.route(env)
	case types.QueryRequest:
		if r.Kind() == "" {
			return routed{route: RouteChain}, newBridgeError(ErrEncode, "", "empty query request", nil)
		}
		bz, err := json.Marshal(r)
		if err != nil {
			return routed{route: RouteChain}, newBridgeError(ErrEncode, "", "", err)
		}
		return routed{route: RouteChain, request: bz}, nil
	default:
		return routed{}, newBridgeError(ErrEncode, "", fmt.Sprintf("unsupported request type %T", req), nil)
	}
}

func invalidEnvelope(kind umee.Kind, code uint16) error {
	return newBridgeError(ErrInvalidEnvelope, umee.Unrecognized, fmt.Sprintf("%s %d", kind.DiscriminantKey(), code), nil)
}

// encodeCustom wraps body in the custom arm of a QueryRequest.
func encodeCustom(route Route, v umee.Variant, body json.Marshaler) (routed, error) {
	r := routed{route: route, variant: v, known: true}
	custom, err := json.Marshal(body)
	if err != nil {
		return r, newBridgeError(ErrEncode, v.Name, "", err)
	}
	bz, err := json.Marshal(types.CustomQuery(custom))
	if err != nil {
		return r, newBridgeError(ErrEncode, v.Name, "", err)
	}
	r.custom = custom
	r.request = bz
	return r, nil
}
