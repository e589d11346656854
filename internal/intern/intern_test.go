package intern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternDeterminism(t *testing.T) {
	tbl := NewTable()

	cases := []string{"x", "foo", "", "a_long_identifier_123", "x"}
	handles := make(map[string]String)
	for _, s := range cases {
		h := tbl.InternString(s)
		if prev, ok := handles[s]; ok {
			require.Equal(t, prev, h, "interning %q twice must return the same handle", s)
		}
		handles[s] = h
		require.Equal(t, s, tbl.String(h))
		require.Equal(t, len(s), tbl.Length(h))
	}

	a := tbl.InternString("alpha")
	b := tbl.InternString("beta")
	require.NotEqual(t, a, b)
}

func TestInternDistinctContentDistinctHandles(t *testing.T) {
	tbl := NewTable()
	x := tbl.InternString("x")
	y := tbl.InternString("y")
	require.NotEqual(t, x, y)
	require.Equal(t, x, tbl.InternString("x"))
}

func TestKeywordsRoundTrip(t *testing.T) {
	tbl := NewTable()
	kw := NewKeywords(tbl)

	ifHandle := kw.Handle(ConstStrIf)
	require.Equal(t, "if", tbl.String(ifHandle))

	sameIf := tbl.InternString("if")
	require.Equal(t, ifHandle, sameIf, "keyword interning must produce the same handle as lexing the identical text")

	kind, ok := kw.Lookup(sameIf)
	require.True(t, ok)
	require.Equal(t, ConstStrIf, kind)

	_, ok = kw.Lookup(tbl.InternString("notakeyword"))
	require.False(t, ok)
}
