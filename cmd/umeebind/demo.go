package main

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	cwumee "github.com/umee-network/umee-cosmwasm"
	"github.com/umee-network/umee-cosmwasm/contract"
	"github.com/umee-network/umee-cosmwasm/mock"
	"github.com/umee-network/umee-cosmwasm/types"
	"github.com/umee-network/umee-cosmwasm/umee"
)

// demo runs the example contract against an in-memory host.
func newDemoCmd(a *app) *cobra.Command {
	var owner, newOwner string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the example contract against an in-memory host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host := mock.DefaultQuerier(mock.MockContractAddr, types.Coins{types.NewCoin(1000, "uumee")}).
				Handle("exchange_rates", mock.Respond(umee.ExchangeRatesResponse{
					ExchangeRates: []types.DecCoin{{Denom: "uumee", Amount: "0.004"}},
				}))
			metrics, err := cwumee.NewMetrics(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			client, err := cwumee.NewClient(host,
				cwumee.WithConfig(a.cfg),
				cwumee.WithLogger(a.logger),
				cwumee.WithMetrics(metrics),
			)
			if err != nil {
				return err
			}
			c := contract.New(mock.NewLookup(), client, a.logger)

			steps := []struct {
				name string
				run  func() (any, error)
			}{
				{"instantiate", func() (any, error) {
					return c.Instantiate(types.MessageInfo{Sender: owner}, contract.InstantiateMsg{})
				}},
				{"exchange_rates", func() (any, error) {
					return rawJSON(c.Query(contract.QueryMsg{ExchangeRates: &umee.ExchangeRatesParams{Denom: "uumee"}}))
				}},
				{"balance", func() (any, error) {
					return client.Balance(mock.MockContractAddr, "uumee")
				}},
				{"supply", func() (any, error) {
					return c.Execute(types.MessageInfo{Sender: owner}, contract.ExecuteMsg{
						Supply: &umee.SupplyParams{Supplier: owner, Asset: types.NewCoin(100, "uumee")},
					})
				}},
				{"change_owner", func() (any, error) {
					return c.Execute(types.MessageInfo{Sender: owner}, contract.ExecuteMsg{
						ChangeOwner: &contract.ChangeOwnerMsg{NewOwner: newOwner},
					})
				}},
				{"get_owner", func() (any, error) {
					return c.Owner()
				}},
			}

			out := make(map[string]any, len(steps))
			for _, s := range steps {
				res, err := s.run()
				if err != nil {
					return fmt.Errorf("%s: %w", s.name, err)
				}
				out[s.name] = res
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "umee1owner", "address instantiating the contract")
	cmd.Flags().StringVar(&newOwner, "new-owner", "umee1successor", "address the contract is handed to")
	return cmd
}

func rawJSON(bz []byte, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return json.RawMessage(bz), nil
}
