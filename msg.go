package cwumee

import (
	"fmt"

	"github.com/umee-network/umee-cosmwasm/types"
	"github.com/umee-network/umee-cosmwasm/umee"
)

// Msg encodes a custom message for the response of an execute call. It accepts
// a umee.StructMsg, a umee.UmeeMsg, or a bare payload written with the
// configured route, and applies the same validation as Query.
func (c *Client) Msg(req any) (types.CosmosMsg, error) {
	switch req.(type) {
	case umee.StructMsg, *umee.StructMsg, umee.UmeeMsg, *umee.UmeeMsg, umee.MsgPayload:
	default:
		return types.CosmosMsg{}, newBridgeError(ErrEncode, "", fmt.Sprintf("%T is not a umee message", req), nil)
	}
	r, err := c.route(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("route", string(r.route)).Msg("rejected msg")
		return types.CosmosMsg{}, err
	}
	c.logger.Debug().Str("route", string(r.route)).Str("variant", r.name()).Msg("encoded msg")
	return types.CosmosMsg{Custom: r.custom}, nil
}
