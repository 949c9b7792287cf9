package cwumee

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/umee-network/umee-cosmwasm/mock"
	"github.com/umee-network/umee-cosmwasm/umee"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	q := mock.DefaultQuerier(mock.MockContractAddr, nil).
		Handle("market_summary", mock.RespondRaw([]byte(`{"symbol_denom":"UMEE"}`))).
		Handle("exchange_rates", mock.Reject("no price"))
	c := newTestClient(t, q, WithMetrics(m))

	_, err = c.MarketSummary(umee.MarketSummaryParams{Denom: "uumee"})
	require.NoError(t, err)
	_, err = c.MarketSummary(umee.MarketSummaryParams{Denom: "uumee"})
	require.NoError(t, err)
	_, err = c.ExchangeRates(umee.ExchangeRatesParams{Denom: "uumee"})
	require.Error(t, err)
	_, err = QueryRaw(c, umee.StructQuery{})
	require.Error(t, err)

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("envelope", "market_summary", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("envelope", "exchange_rates", "remote")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("envelope", "chain", "invalid_envelope")))
	require.Equal(t, 1, testutil.CollectAndCount(m.responseBytes))

	// collectors can only be registered once
	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() { m.observe(RouteEnvelope, "market_summary", nil, 10) })
}
