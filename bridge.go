package cwumee

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/umee-network/umee-cosmwasm/types"
)

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

// Query sends req to the host and decodes the answer into R.
//
// R must be the response type registered for the variant of req, or
// json.RawMessage to get the undecoded bytes. Messages have no registered
// response, so any R is accepted for them. The host is called exactly once
// and never for a request that fails to encode.
func Query[R any](c *Client, req any) (R, error) {
	var out R
	r, err := c.route(req)
	if err == nil {
		err = checkResponseType[R](r)
	}
	if err != nil {
		c.logger.Debug().Err(err).Str("route", string(r.route)).Str("variant", r.name()).Msg("rejected request")
		c.metrics.observe(r.route, r.name(), err, 0)
		return out, err
	}

	c.logger.Debug().
		Str("route", string(r.route)).
		Str("variant", r.name()).
		Int("request_bytes", len(r.request)).
		Msg("dispatching query")

	bz, err := c.classify(r, c.querier.RawQuery(r.request))
	if err == nil {
		err = c.decode(r, bz, &out)
	}

	c.logger.Debug().
		Err(err).
		Str("route", string(r.route)).
		Str("variant", r.name()).
		Str("outcome", outcome(err)).
		Int("response_bytes", len(bz)).
		Msg("query finished")
	c.metrics.observe(r.route, r.name(), err, len(bz))
	if err != nil {
		var zero R
		return zero, err
	}
	return out, nil
}

// QueryRaw is Query returning the undecoded response.
func QueryRaw(c *Client, req any) (json.RawMessage, error) {
	return Query[json.RawMessage](c, req)
}

func checkResponseType[R any](r routed) error {
	if !r.known || r.variant.Response == nil {
		return nil
	}
	got := reflect.TypeOf((*R)(nil)).Elem()
	if got == rawMessageType || got == r.variant.Response {
		return nil
	}
	return newBridgeError(ErrDecode, r.variant.Name, fmt.Sprintf("%s answers with %s, not %s", r.variant.Name, r.variant.Response, got), nil)
}

// classify is the single place the three tiers of a host result are told apart.
func (c *Client) classify(r routed, res types.QuerierResult) ([]byte, error) {
	switch {
	case res.Err != nil:
		return nil, newBridgeError(ErrSystem, r.name(), "", *res.Err)
	case res.Ok == nil:
		return nil, newBridgeError(ErrSystem, r.name(), "empty querier result", types.SystemError{Unknown: &types.Unknown{}})
	case res.Ok.Err != nil:
		return nil, newBridgeError(ErrRemote, r.name(), *res.Ok.Err, nil)
	default:
		return res.Ok.Ok, nil
	}
}

func (c *Client) decode(r routed, bz []byte, out any) error {
	if limit := c.cfg.MaxResponseBytes.Bytes(); limit != 0 && uint64(len(bz)) > uint64(limit) {
		return newBridgeError(ErrDecode, r.name(), fmt.Sprintf("response of %d bytes exceeds limit of %d", len(bz), limit), nil)
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append(json.RawMessage(nil), bz...)
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(bz))
	if c.cfg.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(out); err != nil {
		return newBridgeError(ErrDecode, r.name(), "", err)
	}
	if dec.More() {
		return newBridgeError(ErrDecode, r.name(), "trailing data after response", nil)
	}
	return nil
}
