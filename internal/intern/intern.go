// Package intern implements the compiler's string arena: every identifier,
// keyword, and source file path is deduplicated into a single canonical
// handle so that equality of content becomes equality of a small integer
// rather than a byte comparison.
package intern

// String is a handle into the string arena. The zero value never refers to
// an interned string; valid handles start at 1.
type String int32

// info is the per-string side table entry: the byte offset at which the
// string's content begins in the shared byte buffer, and the next string in
// its hash bucket's chain. infos[0] is unused (mirrors the rest of the
// compiler's handle convention); infos always carries one extra trailing
// entry past the last real string, so that Length can compute
// offset(s+1) - offset(s) - 1 uniformly, including for the most recently
// interned string.
type info struct {
	offset int
	next   String
}

const defaultBucketCount = 256

// Table is the compiler-wide string arena: a monotonically growing byte
// buffer plus a side table of (offset, next) pairs and a hash-bucket index
// for O(1) average-case interning.
type Table struct {
	buf     []byte
	infos   []info // infos[0] unused; infos[1..n] real strings; infos[n+1] trailing sentinel
	buckets []String
}

// NewTable creates an empty string table.
func NewTable() *Table {
	return &Table{
		buf:     make([]byte, 0, 4096),
		infos:   []info{{}, {offset: 0}}, // index 0 unused, index 1 is the sentinel for zero strings
		buckets: make([]String, defaultBucketCount),
	}
}

// count returns the number of strings currently interned.
func (t *Table) count() int { return len(t.infos) - 2 }

// Intern deduplicates b, returning the canonical handle for its content.
// Equal byte sequences always return the same handle: Intern(a) == Intern(b)
// iff bytes(a) == bytes(b).
func (t *Table) Intern(b []byte) String {
	h := hashBytes(b) % uint32(len(t.buckets))
	for s := t.buckets[h]; s != 0; s = t.infos[s].next {
		if t.bytesEqual(s, b) {
			return s
		}
	}
	return t.insert(h, b)
}

// InternString is a convenience wrapper around Intern for Go strings.
func (t *Table) InternString(s string) String {
	return t.Intern([]byte(s))
}

func (t *Table) insert(bucket uint32, b []byte) String {
	offset := len(t.buf)
	t.buf = append(t.buf, b...)
	t.buf = append(t.buf, 0) // NUL terminator, consistent with the original byte layout

	s := String(t.count() + 1) // the current trailing sentinel slot becomes this string
	t.infos[s] = info{offset: offset, next: t.buckets[bucket]}
	t.infos = append(t.infos, info{offset: len(t.buf)}) // new trailing sentinel
	t.buckets[bucket] = s
	return s
}

func (t *Table) bytesEqual(s String, b []byte) bool {
	if t.Length(s) != len(b) {
		return false
	}
	off := t.infos[s].offset
	for i, c := range b {
		if t.buf[off+i] != c {
			return false
		}
	}
	return true
}

// Bytes returns the interned byte range for s, excluding the NUL terminator.
func (t *Table) Bytes(s String) []byte {
	off := t.infos[s].offset
	return t.buf[off : off+t.Length(s)]
}

// String returns the interned content of s as a Go string.
func (t *Table) String(s String) string {
	return string(t.Bytes(s))
}

// Length returns the byte length of s's content (excluding the terminator),
// computed from the sentinel invariant: offset(s+1) - offset(s) - 1.
func (t *Table) Length(s String) int {
	return t.infos[s+1].offset - t.infos[s].offset - 1
}

// Len reports how many distinct strings have been interned.
func (t *Table) Len() int { return t.count() }

// ByteSize reports the total bytes held by the backing buffer, for
// debug-trace size reporting.
func (t *Table) ByteSize() int { return cap(t.buf) }

func hashBytes(b []byte) uint32 {
	// FNV-1a
	var h uint32 = 2166136261
	for _, c := range b {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}
