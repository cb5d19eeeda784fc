// Package triesnap serializes a trie.Trie's key/value pairs to and from a
// compact CBOR wire format, and computes an xxhash checksum over such a
// snapshot (Checksum); the snapshot bytes themselves carry no checksum.
//
// The trie itself stores heterogeneously typed values behind Go's type
// assertions (see package trie); a snapshot needs an explicit, closed set
// of supported value kinds to round-trip through bytes, so each entry
// carries a one-byte type tag alongside its CBOR-encoded payload. This is
// the tagged-union strategy spec.md §9 describes as the language-neutral
// alternative to runtime downcasting, made concrete on the wire.
//
// The supported kinds mirror the explicit template instantiations in the
// original trie.cpp: uint32, uint64, string, a raw byte string, and
// IntegerBox (standing in for the move-only unique_ptr<uint32_t> value).
package triesnap

import (
	"fmt"

	cbor "github.com/fxamacker/cbor/v2"

	"github.com/cmu-db-labs/kernel/trie"
)

// typeTag identifies which Go type a snapshot entry's body decodes into.
type typeTag uint8

const (
	tagUint32 typeTag = iota + 1
	tagUint64
	tagString
	tagBytes
	tagIntegerBox
)

// IntegerBox is an owned integer holder standing in for the original's
// unique_ptr<uint32_t> value type. It is an ordinary Go struct and is
// copyable like any other.
type IntegerBox struct {
	N uint32
}

// entry is the wire format for a single key/value pair: a short tagged
// struct over CBOR, matching cluster/wire.go's Base{T,ID}-prefixed message
// convention and cluster/codec.go's Codec[V] shape.
type entry struct {
	Key  []byte  `cbor:"k"`
	Tag  typeTag `cbor:"t"`
	Body []byte  `cbor:"v"`
}

// encodeEntry tries each supported type in turn and returns the first hit.
// A key with no entry, or whose value's type isn't in the supported set,
// reports ok=false; Snapshot skips such keys rather than failing the whole
// export (extensibility is expected — see spec.md §6).
func encodeEntry(t trie.Trie, key []byte) (entry, bool) {
	if v, ok := trie.Get[uint32](t, key); ok {
		body, err := cbor.Marshal(*v)
		if err == nil {
			return entry{Key: key, Tag: tagUint32, Body: body}, true
		}
	}
	if v, ok := trie.Get[uint64](t, key); ok {
		body, err := cbor.Marshal(*v)
		if err == nil {
			return entry{Key: key, Tag: tagUint64, Body: body}, true
		}
	}
	if v, ok := trie.Get[string](t, key); ok {
		body, err := cbor.Marshal(*v)
		if err == nil {
			return entry{Key: key, Tag: tagString, Body: body}, true
		}
	}
	if v, ok := trie.Get[[]byte](t, key); ok {
		body, err := cbor.Marshal(*v)
		if err == nil {
			return entry{Key: key, Tag: tagBytes, Body: body}, true
		}
	}
	if v, ok := trie.Get[IntegerBox](t, key); ok {
		body, err := cbor.Marshal(*v)
		if err == nil {
			return entry{Key: key, Tag: tagIntegerBox, Body: body}, true
		}
	}
	return entry{}, false
}

// decodeInto puts e's value into t at e.Key, dispatching on e.Tag.
func decodeInto(t trie.Trie, e entry) (trie.Trie, error) {
	switch e.Tag {
	case tagUint32:
		var v uint32
		if err := cbor.Unmarshal(e.Body, &v); err != nil {
			return t, err
		}
		return trie.Put(t, e.Key, v), nil
	case tagUint64:
		var v uint64
		if err := cbor.Unmarshal(e.Body, &v); err != nil {
			return t, err
		}
		return trie.Put(t, e.Key, v), nil
	case tagString:
		var v string
		if err := cbor.Unmarshal(e.Body, &v); err != nil {
			return t, err
		}
		return trie.Put(t, e.Key, v), nil
	case tagBytes:
		var v []byte
		if err := cbor.Unmarshal(e.Body, &v); err != nil {
			return t, err
		}
		return trie.Put(t, e.Key, v), nil
	case tagIntegerBox:
		var v IntegerBox
		if err := cbor.Unmarshal(e.Body, &v); err != nil {
			return t, err
		}
		return trie.Put(t, e.Key, v), nil
	default:
		return t, fmt.Errorf("triesnap: unknown type tag %d for key %q", e.Tag, e.Key)
	}
}
