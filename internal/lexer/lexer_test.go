package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenizeAll(t *testing.T, src string) []Token {
	t.Helper()
	s, err := Tokenize(src)
	require.NoError(t, err)
	var toks []Token
	for {
		tok := s.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks
}

func TestTokenizeIdentifiersAndPunct(t *testing.T) {
	toks := tokenizeAll(t, "void Foo(int x);")
	var texts []string
	for _, tok := range toks {
		if tok.IsTrivia() || tok.Kind == EOF {
			continue
		}
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"void", "Foo", "(", "int", "x", ")", ";"}, texts)
}

func TestTokenizeNumbers(t *testing.T) {
	toks := tokenizeAll(t, "123 1.5f 0xFF 3.0e10")
	var got []Kind
	for _, tok := range toks {
		if tok.Kind == Int || tok.Kind == Float {
			got = append(got, tok.Kind)
		}
	}
	assert.Equal(t, []Kind{Int, Float, Int, Float}, got)
}

func TestTokenizeStringAndChar(t *testing.T) {
	toks := tokenizeAll(t, `"hello\n" 'a'`)
	require.Len(t, toks, 4) // string, ws, char, EOF
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, `"hello\n"`, toks[0].Text)
	assert.Equal(t, Char, toks[2].Kind)
	assert.Equal(t, `'a'`, toks[2].Text)
}

func TestTokenizePreprocessorDirective(t *testing.T) {
	toks := tokenizeAll(t, "#define FOO 1\nvoid F();")
	assert.Equal(t, Preprocessor, toks[0].Kind)
	assert.Equal(t, "#define FOO 1", toks[0].Text)
}

func TestTokenizeComments(t *testing.T) {
	toks := tokenizeAll(t, "// line\n/* block */ int x;")
	assert.Equal(t, LineComment, toks[0].Kind)
	foundBlock := false
	for _, tok := range toks {
		if tok.Kind == BlockComment {
			foundBlock = true
			assert.Equal(t, "/* block */", tok.Text)
		}
	}
	assert.True(t, foundBlock)
}

func TestTokenizeMultiCharPuncts(t *testing.T) {
	toks := tokenizeAll(t, "a::b->c << 1 <<= 2")
	var texts []string
	for _, tok := range toks {
		if tok.Kind == Punct {
			texts = append(texts, tok.Text)
		}
	}
	assert.Equal(t, []string{"::", "->", "<<", "<<="}, texts)
}

func TestStreamPeekAndRewind(t *testing.T) {
	s, err := Tokenize("void Foo();")
	require.NoError(t, err)

	first := s.Next()
	assert.Equal(t, "void", first.Text)

	cp := s.Checkpoint()
	next := s.Next()
	assert.Equal(t, Whitespace, next.Kind)

	s.Rewind(cp)
	again := s.Next()
	assert.Equal(t, Whitespace, again.Kind)
	assert.Equal(t, next.Pos, again.Pos)
}

func TestUnterminatedStringIsLexerError(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.Error(t, err)
	var lexErr *Error
	assert.ErrorAs(t, err, &lexErr)
}

func TestUnterminatedBlockCommentIsLexerError(t *testing.T) {
	_, err := Tokenize("/* oops")
	require.Error(t, err)
}

func TestIllegalCharacterIsLexerError(t *testing.T) {
	_, err := Tokenize("int x = `;")
	require.Error(t, err)
}
