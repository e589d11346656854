package lexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sourcecc/internal/intern"
	"sourcecc/internal/source"
	"sourcecc/internal/token"
)

func scanString(t *testing.T, src string) (*token.Tokens, []token.Token, *intern.Table) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "a.src")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	strs := intern.NewTable()
	kw := intern.NewKeywords(strs)
	files := source.NewFiles(strs)
	f, err := files.Read(path)
	require.NoError(t, err)

	tokens := token.NewTokens()
	s := NewScanner(files, f, strs, kw, tokens)
	stream := s.ScanAll()
	return tokens, stream, strs
}

func kindsOf(tokens *token.Tokens, stream []token.Token) []token.Kind {
	out := make([]token.Kind, len(stream))
	for i, h := range stream {
		out[i] = tokens.Kind(h)
	}
	return out
}

func TestScanPunctuationAndDoubling(t *testing.T) {
	tokens, stream, _ := scanString(t, "++ -- + - * / = == ( ) { } [ ] . , ; : & | ^ ~ !")
	kinds := kindsOf(tokens, stream)
	require.Equal(t, []token.Kind{
		token.KindPlusPlus, token.KindMinusMinus, token.KindPlus, token.KindMinus,
		token.KindStar, token.KindSlash, token.KindAssign, token.KindEquals,
		token.KindLParen, token.KindRParen, token.KindLBrace, token.KindRBrace,
		token.KindLBracket, token.KindRBracket, token.KindDot, token.KindComma,
		token.KindSemicolon, token.KindColon, token.KindAmpersand, token.KindPipe,
		token.KindCaret, token.KindTilde, token.KindBang, token.KindEOF,
	}, kinds)
}

func TestScanIdentifierAndInteger(t *testing.T) {
	tokens, stream, strs := scanString(t, "x123 9223372036854775807")
	require.Len(t, stream, 3)
	require.Equal(t, token.KindWord, tokens.Kind(stream[0]))
	require.Equal(t, "x123", strs.String(tokens.Word(stream[0])))
	require.Equal(t, token.KindInteger, tokens.Kind(stream[1]))
	require.Equal(t, int64(9223372036854775807), tokens.Int(stream[1]))
}

func TestScanIntegerOverflowIsFatal(t *testing.T) {
	require.Panics(t, func() {
		scanString(t, "9223372036854775808")
	})
}

func TestScanEmptyFile(t *testing.T) {
	tokens, stream, _ := scanString(t, "")
	require.Len(t, stream, 1)
	require.Equal(t, token.KindEOF, tokens.Kind(stream[0]))
}

func TestScanUnrecognizedByteIsFatal(t *testing.T) {
	require.Panics(t, func() {
		scanString(t, "@")
	})
}
