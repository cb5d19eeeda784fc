package triesnap

import (
	"bytes"
	"sort"

	xxhash "github.com/cespare/xxhash/v2"
	cbor "github.com/fxamacker/cbor/v2"

	"github.com/cmu-db-labs/kernel/trie"
)

// Snapshot serializes the values reachable at keys into a canonical
// (sorted by key) CBOR-encoded byte slice. Keys that are absent from t, or
// whose value isn't one of the supported kinds, are silently skipped.
func Snapshot(t trie.Trie, keys [][]byte) ([]byte, error) {
	entries := make([]entry, 0, len(keys))
	for _, k := range keys {
		if e, ok := encodeEntry(t, k); ok {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].Key, entries[j].Key) < 0
	})
	return cbor.Marshal(entries)
}

// Restore rebuilds a Trie from bytes produced by Snapshot.
func Restore(data []byte) (trie.Trie, error) {
	var entries []entry
	if err := cbor.Unmarshal(data, &entries); err != nil {
		return trie.Trie{}, err
	}

	var t trie.Trie
	for _, e := range entries {
		var err error
		t, err = decodeInto(t, e)
		if err != nil {
			return trie.Trie{}, err
		}
	}
	return t, nil
}

// Checksum returns an xxhash64 digest of snapshot bytes produced by
// Snapshot. Two snapshots of observationally-equal tries (same key/value
// set, any internal sharing) hash equal, since Snapshot's entry order is
// canonical regardless of trie internal structure.
func Checksum(snapshot []byte) uint64 {
	return xxhash.Sum64(snapshot)
}
