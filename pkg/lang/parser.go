package lang

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zov-lang/zov/pkg/errors"
)

type parser struct {
	tokens  []Token
	pos     int
	baseDir string
	seen    map[string]bool
}

// ParseFile reads and parses a zov document. Includes are resolved relative
// to the file's directory and spliced into the result.
func ParseFile(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "resolve %s", path)
	}
	src, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "read %s", path)
	}
	return parseSource(string(src), filepath.Dir(abs), map[string]bool{abs: true})
}

// Parse parses zov source with includes resolved against baseDir.
func Parse(src, baseDir string) (*Document, error) {
	return parseSource(src, baseDir, map[string]bool{})
}

func parseSource(src, baseDir string, seen map[string]bool) (*Document, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, baseDir: baseDir, seen: seen}
	return p.parseDocument()
}

// ParseExpr parses a standalone expression, as used by ${...} interpolation.
func ParseExpr(src string) (Expr, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) peek() *Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

func (p *parser) peekNext() *Token {
	if p.pos+1 < len(p.tokens) {
		return &p.tokens[p.pos+1]
	}
	return nil
}

func (p *parser) advance() {
	p.pos++
}

func (p *parser) expect(tt TokenType) (*Token, error) {
	tok := p.peek()
	if tok != nil && tok.Type == tt {
		p.advance()
		return tok, nil
	}
	if tok != nil {
		return nil, p.errorf(tok.Line, tok.Column, "expected %s, got %s at line %d, column %d",
			tt, tok.Type, tok.Line, tok.Column)
	}
	return nil, errors.Newf(errors.ErrSyntax, "expected %s, got end of file", tt)
}

func (p *parser) errorf(line, col int, format string, args ...interface{}) *errors.ZovError {
	return errors.Newf(errors.ErrSyntax, format, args...).
		WithDetail("line", line).
		WithDetail("column", col)
}

func (p *parser) parseDocument() (*Document, error) {
	var members []Member
	for p.peek() != nil {
		tok := p.peek()
		switch tok.Type {
		case TokenVariable:
			assign, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			members = append(members, assign)
		case TokenInclude:
			included, err := p.parseInclude()
			if err != nil {
				return nil, err
			}
			members = append(members, included...)
		default:
			cat, err := p.parseCategory()
			if err != nil {
				return nil, err
			}
			members = append(members, cat)
		}
	}
	return &Document{Members: members}, nil
}

// parseInclude consumes an `include "file";` directive and returns the
// included document's members. The included path must stay inside the base
// directory, and a file may not include itself transitively.
func (p *parser) parseInclude() ([]Member, error) {
	p.advance() // consume 'include'
	nameTok, err := p.expect(TokenString)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}

	name := nameTok.Text
	abs, err := p.safeIncludePath(name, nameTok.Line, nameTok.Column)
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(abs); statErr != nil {
		return nil, errors.Newf(errors.ErrIncludeNotFound,
			"include file not found: %s at line %d, column %d", name, nameTok.Line, nameTok.Column).
			WithDetail("line", nameTok.Line).WithDetail("column", nameTok.Column)
	}
	if p.seen[abs] {
		return nil, errors.Newf(errors.ErrIncludeCycle,
			"circular include detected: %s at line %d, column %d", name, nameTok.Line, nameTok.Column).
			WithDetail("line", nameTok.Line).WithDetail("column", nameTok.Column)
	}

	src, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIncludeNotFound, "read include %s", name)
	}

	seen := make(map[string]bool, len(p.seen)+1)
	for k := range p.seen {
		seen[k] = true
	}
	seen[abs] = true

	doc, err := parseSource(string(src), filepath.Dir(abs), seen)
	if err != nil {
		return nil, err
	}
	return doc.Members, nil
}

func (p *parser) safeIncludePath(name string, line, col int) (string, error) {
	baseAbs, err := filepath.Abs(p.baseDir)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "resolve include base directory")
	}
	abs, err := filepath.Abs(filepath.Join(baseAbs, name))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "resolve include %s", name)
	}
	if abs != baseAbs && !strings.HasPrefix(abs, baseAbs+string(os.PathSeparator)) {
		return "", errors.Newf(errors.ErrIncludeEscape,
			"path traversal detected: include path %q resolves outside base directory at line %d, column %d",
			name, line, col).
			WithDetail("line", line).WithDetail("column", col)
	}
	return abs, nil
}

func (p *parser) parseCategory() (*Category, error) {
	nameTok, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}

	var members []Member
	for p.peek() != nil && p.peek().Type != TokenRBrace {
		tok := p.peek()
		switch tok.Type {
		case TokenID:
			if next := p.peekNext(); next != nil && next.Type == TokenLBrace {
				nested, err := p.parseCategory()
				if err != nil {
					return nil, err
				}
				members = append(members, nested)
			} else {
				item, err := p.parseItem()
				if err != nil {
					return nil, err
				}
				members = append(members, item)
			}
		case TokenInclude:
			included, err := p.parseInclude()
			if err != nil {
				return nil, err
			}
			members = append(members, included...)
		case TokenVariable:
			assign, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			members = append(members, assign)
		default:
			return nil, p.errorf(tok.Line, tok.Column,
				"expected identifier, variable or include, got %s at line %d, column %d",
				tok.Type, tok.Line, tok.Column)
		}
	}

	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return &Category{
		position: position{Line: nameTok.Line, Column: nameTok.Column},
		Name:     nameTok.Text,
		Members:  members,
	}, nil
}

func (p *parser) parseItem() (*Item, error) {
	nameTok, err := p.expect(TokenID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEquals); err != nil {
		return nil, err
	}

	var values []Expr
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	values = append(values, first)

	for p.peek() != nil && p.peek().Type == TokenComma {
		p.advance()
		// Trailing comma before the terminator is allowed.
		if tok := p.peek(); tok != nil && tok.Type == TokenSemicolon {
			break
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return &Item{
		position: position{Line: nameTok.Line, Column: nameTok.Column},
		Name:     nameTok.Text,
		Values:   values,
	}, nil
}

func (p *parser) parseAssign() (*Assign, error) {
	varTok, err := p.expect(TokenVariable)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEquals); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return &Assign{
		position: position{Line: varTok.Line, Column: varTok.Column},
		Name:     varTok.Text,
		Value:    value,
	}, nil
}

func (p *parser) parseExpression() (Expr, error) {
	return p.parseAdditive()
}

func (p *parser) parseAdditive() (Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek() != nil && (p.peek().Type == TokenPlus || p.peek().Type == TokenMinus) {
		op := p.peek()
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{
			position: position{Line: op.Line, Column: op.Column},
			Op:       op.Type,
			Left:     left,
			Right:    right,
		}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek() != nil &&
		(p.peek().Type == TokenStar || p.peek().Type == TokenSlash || p.peek().Type == TokenPercent) {
		op := p.peek()
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &Binary{
			position: position{Line: op.Line, Column: op.Column},
			Op:       op.Type,
			Left:     left,
			Right:    right,
		}
	}
	return left, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	if tok == nil {
		return nil, errors.New(errors.ErrSyntax, "expected value, got end of file")
	}

	switch tok.Type {
	case TokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	case TokenFunction:
		name := tok.Text
		pos := position{Line: tok.Line, Column: tok.Column}
		p.advance()
		if _, err := p.expect(TokenLParen); err != nil {
			return nil, err
		}
		var args []Expr
		for p.peek() != nil && p.peek().Type != TokenRParen {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if next := p.peek(); next != nil && next.Type == TokenComma {
				p.advance()
			} else if next != nil && next.Type != TokenRParen {
				return nil, p.errorf(next.Line, next.Column,
					"expected ',' or ')' in call to %s at line %d, column %d", name, next.Line, next.Column)
			}
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return &Call{position: pos, Name: name, Args: args}, nil

	case TokenInterpString:
		p.advance()
		return &Interp{
			position: position{Line: tok.Line, Column: tok.Column},
			Parts:    tok.Value.([]StringPart),
		}, nil

	case TokenNumber, TokenString, TokenBool, TokenNull,
		TokenDate, TokenDateTime, TokenTime, TokenDuration, TokenSize:
		p.advance()
		return &Literal{
			position: position{Line: tok.Line, Column: tok.Column},
			Value:    tok.Value,
		}, nil

	case TokenVariable:
		p.advance()
		return &VarRef{
			position: position{Line: tok.Line, Column: tok.Column},
			Name:     tok.Text,
		}, nil

	case TokenID:
		p.advance()
		return &IdentRef{
			position: position{Line: tok.Line, Column: tok.Column},
			Name:     tok.Text,
		}, nil
	}

	return nil, p.errorf(tok.Line, tok.Column,
		"expected value, got %s at line %d, column %d", tok.Type, tok.Line, tok.Column)
}
