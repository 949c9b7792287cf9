package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/umee-network/umee-cosmwasm/umee"
)

func newVariantsCmd(a *app) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the variants of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := a.registryKind()
			if err != nil {
				return err
			}
			reg := registry(kind)
			variants := reg.All()
			if group != "" {
				g, ok := umee.ParseGroup(group)
				if !ok {
					return fmt.Errorf("unknown group %q", group)
				}
				variants = reg.Groups(g)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tGROUP\tNAME\tTAG\tRESPONSE")
			for _, v := range variants {
				resp := "-"
				if v.Response != nil {
					resp = v.Response.Name()
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", v.Code, v.Group, v.Name, v.Tag, resp)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "only list the variants of this group")
	return cmd
}
