package contract

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/umee-network/umee-cosmwasm/types"
)

// KVStore is the storage the host hands to the contract.
type KVStore interface {
	// Get returns nil if the key does not exist.
	Get(key []byte) []byte
	Set(key, value []byte)
}

var (
	stateKey        = []byte("state")
	contractInfoKey = []byte("contract_info")
)

var ErrNotFound = errors.New("not found")

// OwnerState is the only durable record of the contract.
type OwnerState struct {
	Owner types.HumanAddress `json:"owner"`
}

// ContractInfo records which code wrote the state, for migrations.
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

func load(store KVStore, key []byte, out any) error {
	bz := store.Get(key)
	if bz == nil {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err := json.Unmarshal(bz, out); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func save(store KVStore, key []byte, v any) error {
	bz, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	store.Set(key, bz)
	return nil
}

func LoadState(store KVStore) (OwnerState, error) {
	var st OwnerState
	err := load(store, stateKey, &st)
	return st, err
}

func LoadContractInfo(store KVStore) (ContractInfo, error) {
	var info ContractInfo
	err := load(store, contractInfoKey, &info)
	return info, err
}
