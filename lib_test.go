package cwumee

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umee-network/umee-cosmwasm/types"
	"github.com/umee-network/umee-cosmwasm/umee"
)

func TestWireQuerier(t *testing.T) {
	success, err := json.Marshal(types.ToQuerierResult([]byte(`{"active_rates":["uumee"]}`)))
	require.NoError(t, err)
	rejection, err := json.Marshal(types.RemoteRejection("oracle disabled"))
	require.NoError(t, err)

	specs := map[string]struct {
		host    WireQuerier
		expKind error
	}{
		"success": {
			host: func([]byte) ([]byte, error) { return success, nil },
		},
		"remote rejection": {
			host:    func([]byte) ([]byte, error) { return rejection, nil },
			expKind: ErrRemote,
		},
		"unparsable answer": {
			host:    func([]byte) ([]byte, error) { return []byte(`{"ok":`), nil },
			expKind: ErrSystem,
		},
		"answer with both tiers": {
			host:    func([]byte) ([]byte, error) { return []byte(`{"ok":{"ok":""},"error":{"unknown":{}}}`), nil },
			expKind: ErrSystem,
		},
		"transport error": {
			host:    func([]byte) ([]byte, error) { return nil, errors.New("connection reset") },
			expKind: ErrSystem,
		},
		"classified transport error": {
			host:    func([]byte) ([]byte, error) { return nil, types.NoSuchContract{Addr: "umee1x"} },
			expKind: ErrSystem,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, spec.host)
			res, err := c.ActiveExchangeRates(umee.ActiveExchangeRatesParams{})
			if spec.expKind == nil {
				require.NoError(t, err)
				require.Equal(t, []string{"uumee"}, res.ActiveRates)
				return
			}
			require.ErrorIs(t, err, spec.expKind)
		})
	}

	c := newTestClient(t, WireQuerier(func([]byte) ([]byte, error) { return nil, types.NoSuchContract{Addr: "umee1x"} }))
	_, err = c.ActiveExchangeRates(umee.ActiveExchangeRatesParams{})
	var sysErr types.SystemError
	require.True(t, errors.As(err, &sysErr))
	require.Equal(t, &types.NoSuchContract{Addr: "umee1x"}, sysErr.NoSuchContract)
}
