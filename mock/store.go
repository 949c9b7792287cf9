package mock

import (
	dbm "github.com/cometbft/cometbft-db"
)

/*** Mock KVStore ****/

// Lookup is an in-memory contract store backed by a cometbft-db MemDB.
type Lookup struct {
	db *dbm.MemDB
}

func NewLookup() Lookup {
	return Lookup{
		db: dbm.NewMemDB(),
	}
}

// Get wraps the underlying DB's Get method panicing on error.
func (l Lookup) Get(key []byte) []byte {
	v, err := l.db.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Set wraps the underlying DB's Set method panicing on error.
func (l Lookup) Set(key, value []byte) {
	if err := l.db.Set(key, value); err != nil {
		panic(err)
	}
}

// Delete wraps the underlying DB's Delete method panicing on error.
func (l Lookup) Delete(key []byte) {
	if err := l.db.Delete(key); err != nil {
		panic(err)
	}
}

// Keys returns every key in ascending order.
func (l Lookup) Keys() []string {
	iter, err := l.db.Iterator(nil, nil)
	if err != nil {
		panic(err)
	}
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	return keys
}
