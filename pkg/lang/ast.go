package lang

// Expr is an unevaluated value expression.
type Expr interface {
	exprNode()
	Pos() (line, column int)
}

type position struct {
	Line   int
	Column int
}

func (p position) Pos() (int, int) { return p.Line, p.Column }

// Literal is a decoded literal value: string, int64, float64, bool, nil,
// Duration, Size, Date, Time or DateTime.
type Literal struct {
	position
	Value interface{}
}

// VarRef is a $name reference resolved at evaluation time.
type VarRef struct {
	position
	Name string
}

// IdentRef is a bare identifier used in value position.
type IdentRef struct {
	position
	Name string
}

// Binary is an arithmetic expression. Op is one of TokenPlus, TokenMinus,
// TokenStar, TokenSlash, TokenPercent.
type Binary struct {
	position
	Op    TokenType
	Left  Expr
	Right Expr
}

// Call invokes a builtin function such as env() or concat().
type Call struct {
	position
	Name string
	Args []Expr
}

// Interp is an interpolated string; expression parts are re-parsed when the
// string is evaluated.
type Interp struct {
	position
	Parts []StringPart
}

func (*Literal) exprNode()  {}
func (*VarRef) exprNode()   {}
func (*IdentRef) exprNode() {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*Interp) exprNode()   {}

// Member is anything that can appear inside a category body or at the top
// level of a document: a nested category, an item, or a variable assignment.
type Member interface {
	memberNode()
}

// Item is a named list of values: `name = v1, v2;`.
type Item struct {
	position
	Name   string
	Values []Expr
}

// Category is a named block of members; categories nest.
type Category struct {
	position
	Name    string
	Members []Member
}

// Assign binds a $variable to a value: `$name = expr;`.
type Assign struct {
	position
	Name  string
	Value Expr
}

func (*Item) memberNode()     {}
func (*Category) memberNode() {}
func (*Assign) memberNode()   {}

// Document is a parsed zov file with any includes already spliced in.
type Document struct {
	Members []Member
}
