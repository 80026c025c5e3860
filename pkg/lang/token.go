package lang

import "fmt"

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenID
	TokenVariable
	TokenFunction
	TokenString
	TokenInterpString
	TokenNumber
	TokenBool
	TokenNull
	TokenDate
	TokenTime
	TokenDateTime
	TokenDuration
	TokenSize
	TokenInclude
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen
	TokenSemicolon
	TokenComma
	TokenEquals
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
)

var tokenNames = map[TokenType]string{
	TokenEOF:          "end of file",
	TokenID:           "identifier",
	TokenVariable:     "variable",
	TokenFunction:     "function",
	TokenString:       "string",
	TokenInterpString: "interpolated string",
	TokenNumber:       "number",
	TokenBool:         "boolean",
	TokenNull:         "null",
	TokenDate:         "date",
	TokenTime:         "time",
	TokenDateTime:     "datetime",
	TokenDuration:     "duration",
	TokenSize:         "size",
	TokenInclude:      "include",
	TokenLBrace:       "'{'",
	TokenRBrace:       "'}'",
	TokenLParen:       "'('",
	TokenRParen:       "')'",
	TokenSemicolon:    "';'",
	TokenComma:        "','",
	TokenEquals:       "'='",
	TokenPlus:         "'+'",
	TokenMinus:        "'-'",
	TokenStar:         "'*'",
	TokenSlash:        "'/'",
	TokenPercent:      "'%'",
}

// String returns a human-readable name for diagnostics.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// PartKind classifies one piece of an interpolated string.
type PartKind int

const (
	PartText PartKind = iota
	PartVar
	PartExpr
)

// StringPart is one piece of an interpolated string: literal text, a $name
// variable reference, or a ${...} expression to re-parse at evaluation time.
type StringPart struct {
	Kind PartKind
	Text string
}

// Token is a single lexeme with its source position. Value holds the decoded
// literal for literal tokens: string, int64, float64, bool, nil, Duration,
// Size, Date, Time, DateTime, or []StringPart for interpolated strings.
type Token struct {
	Type   TokenType
	Text   string
	Value  interface{}
	Line   int
	Column int
}
