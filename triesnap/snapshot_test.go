package triesnap

import (
	"testing"

	"github.com/cmu-db-labs/kernel/trie"
)

func TestSnapshotRoundTrip(t *testing.T) {
	var tr trie.Trie
	tr = trie.Put(tr, []byte("a"), uint32(1))
	tr = trie.Put(tr, []byte("ab"), "two")
	tr = trie.Put(tr, []byte("abc"), []byte("three"))
	tr = trie.Put(tr, []byte("b"), IntegerBox{N: 4})

	keys := [][]byte{[]byte("a"), []byte("ab"), []byte("abc"), []byte("b")}
	data, err := Snapshot(tr, keys)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if v, ok := trie.Get[uint32](restored, []byte("a")); !ok || *v != 1 {
		t.Fatalf("restored a = %v, %v; want 1, true", v, ok)
	}
	if v, ok := trie.Get[string](restored, []byte("ab")); !ok || *v != "two" {
		t.Fatalf("restored ab = %v, %v; want two, true", v, ok)
	}
	if v, ok := trie.Get[[]byte](restored, []byte("abc")); !ok || string(*v) != "three" {
		t.Fatalf("restored abc = %v, %v; want three, true", v, ok)
	}
	if v, ok := trie.Get[IntegerBox](restored, []byte("b")); !ok || v.N != 4 {
		t.Fatalf("restored b = %v, %v; want {4}, true", v, ok)
	}
}

func TestSnapshotSkipsUnsupportedAndAbsentKeys(t *testing.T) {
	var tr trie.Trie
	tr = trie.Put(tr, []byte("present"), uint32(9))

	type unsupported struct{ X int }
	tr = trie.Put(tr, []byte("weird"), unsupported{X: 1})

	keys := [][]byte{[]byte("present"), []byte("weird"), []byte("missing")}
	data, err := Snapshot(tr, keys)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if v, ok := trie.Get[uint32](restored, []byte("present")); !ok || *v != 9 {
		t.Fatalf("restored present = %v, %v; want 9, true", v, ok)
	}
	if _, ok := trie.Get[unsupported](restored, []byte("weird")); ok {
		t.Fatal("expected unsupported-type key to be skipped")
	}
}

func TestChecksumStableAcrossKeyOrder(t *testing.T) {
	var tr trie.Trie
	tr = trie.Put(tr, []byte("a"), uint32(1))
	tr = trie.Put(tr, []byte("b"), uint32(2))

	data1, err := Snapshot(tr, [][]byte{[]byte("a"), []byte("b")})
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	data2, err := Snapshot(tr, [][]byte{[]byte("b"), []byte("a")})
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if Checksum(data1) != Checksum(data2) {
		t.Fatal("expected checksum to be independent of requested key order")
	}
}
