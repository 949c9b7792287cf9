package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	cwumee "github.com/umee-network/umee-cosmwasm"
	"github.com/umee-network/umee-cosmwasm/umee"
)

func newEncodeCmd(a *app) *cobra.Command {
	var route string
	cmd := &cobra.Command{
		Use:   "encode <name> [payload]",
		Short: "Encode a payload as a custom request",
		Long: `Encode a payload as a custom request.

The payload is the JSON of the variant's params and defaults to {}. It is
decoded into the variant's type first, so unknown variants and malformed
payloads are rejected.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := a.registryKind()
			if err != nil {
				return err
			}
			r := cwumee.Route(route)
			if r == "" {
				r = a.cfg.Route
			}
			payload := json.RawMessage("{}")
			if len(args) == 2 {
				payload = json.RawMessage(args[1])
			}
			bz, err := encode(kind, r, args[0], payload)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("variant", args[0]).Str("route", string(r)).Int("bytes", len(bz)).Msg("encoded")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}
	cmd.Flags().StringVar(&route, "route", "", "envelope|group, defaults to the config")
	return cmd
}

func encode(kind umee.Kind, route cwumee.Route, name string, payload json.RawMessage) ([]byte, error) {
	if _, ok := registry(kind).ByName(name); !ok {
		return nil, fmt.Errorf("unknown %s %q", kind, name)
	}
	// an envelope without discriminant takes it from its single slot
	wide, err := json.Marshal(map[string]json.RawMessage{name: payload})
	if err != nil {
		return nil, err
	}

	var env, grp json.Marshaler
	switch kind {
	case umee.KindMsg:
		var m umee.StructMsg
		if err := json.Unmarshal(wide, &m); err != nil {
			return nil, err
		}
		env = m
		if route == cwumee.RouteGroup {
			g, err := m.Group()
			if err != nil {
				return nil, err
			}
			grp = g
		}
	default:
		var q umee.StructQuery
		if err := json.Unmarshal(wide, &q); err != nil {
			return nil, err
		}
		env = q
		if route == cwumee.RouteGroup {
			g, err := q.Group()
			if err != nil {
				return nil, err
			}
			grp = g
		}
	}

	switch route {
	case cwumee.RouteEnvelope:
		return json.Marshal(env)
	case cwumee.RouteGroup:
		return json.Marshal(grp)
	default:
		return nil, fmt.Errorf("invalid route %q", route)
	}
}
