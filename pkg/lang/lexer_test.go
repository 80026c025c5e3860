package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zov-lang/zov/pkg/errors"
)

func lexTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	tokens, err := Lex(src)
	require.NoError(t, err)
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexSimpleItem(t *testing.T) {
	types := lexTypes(t, `server { port = 8080; }`)
	assert.Equal(t, []TokenType{
		TokenID, TokenLBrace, TokenID, TokenEquals, TokenNumber, TokenSemicolon, TokenRBrace,
	}, types)
}

func TestLexCommentsAndWhitespaceSkipped(t *testing.T) {
	tokens, err := Lex("# header\nname = 1; # trailing\n")
	require.NoError(t, err)
	assert.Len(t, tokens, 4)
}

func TestLexLiteralValues(t *testing.T) {
	tests := []struct {
		src  string
		tt   TokenType
		want interface{}
	}{
		{`42`, TokenNumber, int64(42)},
		{`-7`, TokenNumber, int64(-7)},
		{`3.14`, TokenNumber, 3.14},
		{`true`, TokenBool, true},
		{`false`, TokenBool, false},
		{`null`, TokenNull, nil},
		{`none`, TokenNull, nil},
		{`"hi"`, TokenString, "hi"},
		{`500ms`, TokenDuration, Duration{Value: 500, Unit: "ms"}},
		{`1.5h`, TokenDuration, Duration{Value: 1.5, Unit: "h"}},
		{`10MB`, TokenSize, Size{Value: 10, Unit: "MB"}},
		{`2GiB`, TokenSize, Size{Value: 2, Unit: "GiB"}},
		{`2024-01-15`, TokenDate, Date("2024-01-15")},
		{`2024-01-15T10:30:00`, TokenDateTime, DateTime("2024-01-15T10:30:00")},
		{`12:30`, TokenTime, Time("12:30")},
		{`12:30:45`, TokenTime, Time("12:30:45")},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, err := Lex(tt.src)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.tt, tokens[0].Type)
			assert.Equal(t, tt.want, tokens[0].Value)
		})
	}
}

func TestLexStringEscapes(t *testing.T) {
	tokens, err := Lex(`"a\nb\tc\"d\\e"`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\tc\"d\\e", tokens[0].Value)
}

func TestLexInterpolatedString(t *testing.T) {
	tokens, err := Lex(`"host: $name on ${port + 1}"`)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenInterpString, tokens[0].Type)

	parts := tokens[0].Value.([]StringPart)
	require.Len(t, parts, 4)
	assert.Equal(t, StringPart{Kind: PartText, Text: "host: "}, parts[0])
	assert.Equal(t, StringPart{Kind: PartVar, Text: "$name"}, parts[1])
	assert.Equal(t, StringPart{Kind: PartText, Text: " on "}, parts[2])
	assert.Equal(t, StringPart{Kind: PartExpr, Text: "port + 1"}, parts[3])
}

func TestLexLoneDollarIsText(t *testing.T) {
	tokens, err := Lex(`"cost: 5$"`)
	require.NoError(t, err)
	assert.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, "cost: 5$", tokens[0].Value)
}

func TestLexUnclosedInterpolation(t *testing.T) {
	_, err := Lex(`"x ${port"`)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := Lex(`"never ends`)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))
}

func TestLexVariableAndFunction(t *testing.T) {
	tokens, err := Lex(`$base = concat("a", "b");`)
	require.NoError(t, err)
	assert.Equal(t, TokenVariable, tokens[0].Type)
	assert.Equal(t, "$base", tokens[0].Text)
	assert.Equal(t, TokenFunction, tokens[2].Type)
	assert.Equal(t, "concat", tokens[2].Text)
}

func TestLexUnicodeIdentifiers(t *testing.T) {
	tokens, err := Lex(`сервер { порт = 1; }`)
	require.NoError(t, err)
	assert.Equal(t, TokenID, tokens[0].Type)
	assert.Equal(t, "сервер", tokens[0].Text)
}

func TestLexPositions(t *testing.T) {
	tokens, err := Lex("a {\n  b = 1;\n}")
	require.NoError(t, err)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 0, tokens[0].Column)
	// "b" sits on line 2, two columns in.
	assert.Equal(t, 2, tokens[2].Line)
	assert.Equal(t, 2, tokens[2].Column)
}

func TestLexMismatchReportsPosition(t *testing.T) {
	_, err := Lex("a = ^;")
	require.Error(t, err)
	details := errors.GetErrorDetails(err)
	assert.Equal(t, 1, details["line"])
	assert.Equal(t, 4, details["column"])
}

func TestLexDurationBeforeSize(t *testing.T) {
	// "5m" is minutes, "5MB" is megabytes: unit case decides.
	tokens, err := Lex("5m 5MB")
	require.NoError(t, err)
	assert.Equal(t, TokenDuration, tokens[0].Type)
	assert.Equal(t, TokenSize, tokens[1].Type)
}
