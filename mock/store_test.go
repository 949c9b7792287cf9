package mock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	store := NewLookup()
	require.Nil(t, store.Get([]byte("state")))

	store.Set([]byte("state"), []byte(`{"owner":"A"}`))
	store.Set([]byte("contract_info"), []byte(`{}`))
	require.Equal(t, []byte(`{"owner":"A"}`), store.Get([]byte("state")))
	require.Equal(t, []string{"contract_info", "state"}, store.Keys())

	store.Delete([]byte("state"))
	require.Nil(t, store.Get([]byte("state")))
	require.Equal(t, []string{"contract_info"}, store.Keys())
}
