package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/umee-network/umee-cosmwasm/umee"
)

type inspection struct {
	Kind  string `json:"kind"`
	Form  string `json:"form"`
	Code  uint16 `json:"code"`
	Group string `json:"group,omitempty"`
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [request]",
		Short: "Identify a raw custom request, read from stdin if not given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			if len(args) == 1 {
				raw = []byte(args[0])
			} else {
				bz, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				raw = bz
			}
			res, err := inspect(raw)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("variant", res.Name).Bool("valid", res.Valid).Msg("inspected")
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}

func inspect(raw []byte) (inspection, error) {
	p, ok := umee.PeekQuery(raw)
	if !ok {
		p, ok = umee.PeekMsg(raw)
	}
	if !ok {
		return inspection{}, errors.New("not a umee query or message")
	}

	res := inspection{
		Kind:  p.Kind.String(),
		Form:  "group",
		Code:  uint16(p.Code),
		Group: p.Group.String(),
		Name:  p.Name,
	}
	if p.Envelope {
		res.Form = "envelope"
	}

	// full decode reports what the peek cannot see
	var target json.Unmarshaler
	switch {
	case p.Kind == umee.KindQuery && p.Envelope:
		target = &umee.StructQuery{}
	case p.Kind == umee.KindQuery:
		target = &umee.UmeeQuery{}
	case p.Envelope:
		target = &umee.StructMsg{}
	default:
		target = &umee.UmeeMsg{}
	}
	if err := json.Unmarshal(raw, target); err != nil {
		res.Error = err.Error()
		return res, nil
	}
	res.Valid = p.Name != umee.Unrecognized
	if !res.Valid {
		res.Error = fmt.Sprintf("%s %d is not assigned", p.Kind.DiscriminantKey(), p.Code)
	}
	return res, nil
}
