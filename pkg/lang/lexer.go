package lang

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/zov-lang/zov/pkg/errors"
)

// Literal patterns that begin with a digit, tried in precedence order so that
// "5m" lexes as a duration and "2024-01-15" as a date rather than as numbers.
var (
	reDuration = regexp.MustCompile(`^\d+(\.\d+)?(ms|s|m|h|d|w)`)
	reSize     = regexp.MustCompile(`^\d+(\.\d+)?(B|KB|MB|GB|TB|KiB|MiB|GiB|TiB)`)
	reDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)
	reDate     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	reTime     = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?`)
	reNumber   = regexp.MustCompile(`^-?\d+(\.\d+)?`)

	reUnitSplit = regexp.MustCompile(`^(\d+(?:\.\d+)?)([A-Za-z]+)$`)
)

type lexer struct {
	src       []rune
	pos       int
	line      int
	lineStart int
}

// Lex tokenizes zov source. Positions are 1-based lines and 0-based columns.
func Lex(src string) ([]Token, error) {
	lx := &lexer{src: []rune(src), line: 1}
	var tokens []Token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (lx *lexer) column() int {
	return lx.pos - lx.lineStart
}

func (lx *lexer) peek() rune {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *lexer) peekAt(offset int) rune {
	if lx.pos+offset >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+offset]
}

func (lx *lexer) rest() string {
	return string(lx.src[lx.pos:])
}

func (lx *lexer) errorf(line, col int, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrSyntax, format, args...).
		WithDetail("line", line).
		WithDetail("column", col)
}

func (lx *lexer) next() (Token, error) {
	for lx.pos < len(lx.src) {
		r := lx.src[lx.pos]
		switch {
		case r == ' ' || r == '\t' || r == '\r':
			lx.pos++
		case r == '\n':
			lx.pos++
			lx.line++
			lx.lineStart = lx.pos
		case r == '#':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.pos++
			}
		default:
			return lx.scanToken()
		}
	}
	return Token{Type: TokenEOF, Line: lx.line, Column: lx.column()}, nil
}

func (lx *lexer) scanToken() (Token, error) {
	line, col := lx.line, lx.column()
	r := lx.peek()

	switch {
	case r == '"':
		return lx.scanString(line, col)
	case unicode.IsDigit(r):
		return lx.scanNumeric(line, col)
	case r == '-' && unicode.IsDigit(lx.peekAt(1)):
		return lx.scanNumeric(line, col)
	case r == '$':
		return lx.scanVariable(line, col)
	case isIdentStart(r):
		return lx.scanWord(line, col), nil
	}

	punct := map[rune]TokenType{
		'{': TokenLBrace, '}': TokenRBrace,
		'(': TokenLParen, ')': TokenRParen,
		';': TokenSemicolon, ',': TokenComma, '=': TokenEquals,
		'+': TokenPlus, '-': TokenMinus,
		'*': TokenStar, '/': TokenSlash, '%': TokenPercent,
	}
	if tt, ok := punct[r]; ok {
		lx.pos++
		return Token{Type: tt, Text: string(r), Line: line, Column: col}, nil
	}

	return Token{}, lx.errorf(line, col, "unexpected character %q at line %d, column %d", string(r), line, col)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (lx *lexer) scanIdent() string {
	start := lx.pos
	for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
		lx.pos++
	}
	return string(lx.src[start:lx.pos])
}

func (lx *lexer) scanWord(line, col int) Token {
	word := lx.scanIdent()
	switch word {
	case "null", "none":
		return Token{Type: TokenNull, Text: word, Line: line, Column: col}
	case "true", "false":
		return Token{Type: TokenBool, Text: word, Value: word == "true", Line: line, Column: col}
	case "include":
		return Token{Type: TokenInclude, Text: word, Line: line, Column: col}
	}
	// A call head is an identifier glued to an opening paren.
	if lx.peek() == '(' {
		return Token{Type: TokenFunction, Text: word, Value: word, Line: line, Column: col}
	}
	return Token{Type: TokenID, Text: word, Value: word, Line: line, Column: col}
}

func (lx *lexer) scanVariable(line, col int) (Token, error) {
	if !isIdentStart(lx.peekAt(1)) {
		return Token{}, lx.errorf(line, col, "unexpected character %q at line %d, column %d", "$", line, col)
	}
	lx.pos++ // consume '$'
	name := "$" + lx.scanIdent()
	return Token{Type: TokenVariable, Text: name, Value: name, Line: line, Column: col}, nil
}

func (lx *lexer) scanNumeric(line, col int) (Token, error) {
	rest := lx.rest()

	if m := reDuration.FindString(rest); m != "" {
		lx.pos += len([]rune(m))
		value, unit := splitUnit(m)
		return Token{Type: TokenDuration, Text: m, Value: Duration{Value: value, Unit: unit}, Line: line, Column: col}, nil
	}
	if m := reSize.FindString(rest); m != "" {
		lx.pos += len([]rune(m))
		value, unit := splitUnit(m)
		return Token{Type: TokenSize, Text: m, Value: Size{Value: value, Unit: unit}, Line: line, Column: col}, nil
	}
	if m := reDateTime.FindString(rest); m != "" {
		lx.pos += len([]rune(m))
		return Token{Type: TokenDateTime, Text: m, Value: DateTime(m), Line: line, Column: col}, nil
	}
	if m := reDate.FindString(rest); m != "" {
		lx.pos += len([]rune(m))
		return Token{Type: TokenDate, Text: m, Value: Date(m), Line: line, Column: col}, nil
	}
	if m := reTime.FindString(rest); m != "" {
		lx.pos += len([]rune(m))
		return Token{Type: TokenTime, Text: m, Value: Time(m), Line: line, Column: col}, nil
	}

	m := reNumber.FindString(rest)
	if m == "" {
		return Token{}, lx.errorf(line, col, "invalid number at line %d, column %d", line, col)
	}
	lx.pos += len([]rune(m))
	if strings.Contains(m, ".") {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return Token{}, lx.errorf(line, col, "invalid number format %q at line %d, column %d", m, line, col)
		}
		return Token{Type: TokenNumber, Text: m, Value: f, Line: line, Column: col}, nil
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return Token{}, lx.errorf(line, col, "invalid number format %q at line %d, column %d", m, line, col)
	}
	return Token{Type: TokenNumber, Text: m, Value: n, Line: line, Column: col}, nil
}

func splitUnit(lit string) (float64, string) {
	m := reUnitSplit.FindStringSubmatch(lit)
	value, _ := strconv.ParseFloat(m[1], 64)
	return value, m[2]
}

// scanString reads a quoted string, decoding escapes and splitting out
// interpolation parts. A string without $name or ${expr} pieces yields a
// plain string token.
func (lx *lexer) scanString(line, col int) (Token, error) {
	lx.pos++ // consume opening quote
	var parts []StringPart
	var text strings.Builder
	interpolated := false

	flushText := func() {
		if text.Len() > 0 {
			parts = append(parts, StringPart{Kind: PartText, Text: text.String()})
			text.Reset()
		}
	}

	for {
		if lx.pos >= len(lx.src) || lx.src[lx.pos] == '\n' {
			return Token{}, lx.errorf(line, col, "unterminated string at line %d, column %d", line, col)
		}
		r := lx.src[lx.pos]

		switch r {
		case '"':
			lx.pos++
			if !interpolated {
				return Token{Type: TokenString, Text: text.String(), Value: text.String(), Line: line, Column: col}, nil
			}
			flushText()
			return Token{Type: TokenInterpString, Value: parts, Line: line, Column: col}, nil

		case '\\':
			if lx.pos+1 >= len(lx.src) {
				return Token{}, lx.errorf(line, col, "unterminated string at line %d, column %d", line, col)
			}
			next := lx.src[lx.pos+1]
			switch next {
			case 'n':
				text.WriteRune('\n')
			case 't':
				text.WriteRune('\t')
			default:
				text.WriteRune(next)
			}
			lx.pos += 2

		case '$':
			if lx.peekAt(1) == '{' {
				end := lx.pos + 2
				for end < len(lx.src) && lx.src[end] != '}' && lx.src[end] != '\n' {
					end++
				}
				if end >= len(lx.src) || lx.src[end] != '}' {
					return Token{}, lx.errorf(line, col, "unclosed interpolation at line %d, column %d", line, lx.column())
				}
				flushText()
				parts = append(parts, StringPart{Kind: PartExpr, Text: string(lx.src[lx.pos+2 : end])})
				interpolated = true
				lx.pos = end + 1
			} else if isIdentStart(lx.peekAt(1)) {
				lx.pos++ // consume '$'
				name := "$" + lx.scanIdent()
				flushText()
				parts = append(parts, StringPart{Kind: PartVar, Text: name})
				interpolated = true
			} else {
				text.WriteRune('$')
				lx.pos++
			}

		default:
			text.WriteRune(r)
			lx.pos++
		}
	}
}
