package lang

import (
	"math"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zov-lang/zov/pkg/errors"
)

// Interpreter evaluates a parsed document into a dotted-path data model.
type Interpreter struct {
	vars    map[string]interface{}
	data    map[string]*categoryData
	order   []string
	decimal bool
}

type categoryData struct {
	items      map[string][]interface{}
	itemOrder  []string
	categories map[string]bool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithDecimal makes arithmetic use arbitrary-precision decimals instead of
// floats, for documents where rounding drift matters.
func WithDecimal() Option {
	return func(in *Interpreter) { in.decimal = true }
}

// NewInterpreter creates an empty interpreter.
func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		vars: make(map[string]interface{}),
		data: make(map[string]*categoryData),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func evalErrorf(line, col int, format string, args ...interface{}) *errors.ZovError {
	return errors.Newf(errors.ErrEval, format, args...).
		WithDetail("line", line).
		WithDetail("column", col)
}

// Eval walks a document, binding variables and recording category items.
// It may be called with several documents in sequence; later items land in
// the same data model.
func (in *Interpreter) Eval(doc *Document) error {
	for _, member := range doc.Members {
		switch m := member.(type) {
		case *Assign:
			if err := in.evalAssign(m); err != nil {
				return err
			}
		case *Category:
			if err := in.evalCategory(m, ""); err != nil {
				return err
			}
		case *Item:
			line, col := m.Pos()
			return evalErrorf(line, col, "item %q outside any category at line %d, column %d", m.Name, line, col)
		}
	}
	return nil
}

func (in *Interpreter) category(path string) *categoryData {
	if cat, ok := in.data[path]; ok {
		return cat
	}
	cat := &categoryData{
		items:      make(map[string][]interface{}),
		categories: make(map[string]bool),
	}
	in.data[path] = cat
	in.order = append(in.order, path)
	return cat
}

func (in *Interpreter) evalCategory(node *Category, parent string) error {
	path := node.Name
	if parent != "" {
		path = parent + "." + node.Name
	}
	cat := in.category(path)

	for _, member := range node.Members {
		switch m := member.(type) {
		case *Assign:
			if err := in.evalAssign(m); err != nil {
				return err
			}
		case *Category:
			cat.categories[m.Name] = true
			if err := in.evalCategory(m, path); err != nil {
				return err
			}
		case *Item:
			line, col := m.Pos()
			if _, exists := cat.items[m.Name]; exists {
				return evalErrorf(line, col,
					"duplicate item %q in category %q at line %d, column %d", m.Name, path, line, col)
			}
			if cat.categories[m.Name] {
				return evalErrorf(line, col,
					"name collision: %q is both a category and an item in %q at line %d, column %d",
					m.Name, path, line, col)
			}
			values := make([]interface{}, 0, len(m.Values))
			for _, expr := range m.Values {
				v, err := in.evalExpr(expr)
				if err != nil {
					return err
				}
				values = append(values, v)
			}
			cat.items[m.Name] = values
			cat.itemOrder = append(cat.itemOrder, m.Name)
		}
	}
	return nil
}

func (in *Interpreter) evalAssign(node *Assign) error {
	value, err := in.evalExpr(node.Value)
	if err != nil {
		return err
	}
	in.vars[node.Name] = value
	return nil
}

func (in *Interpreter) evalExpr(expr Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *Literal:
		return e.Value, nil
	case *IdentRef:
		return Identifier(e.Name), nil
	case *VarRef:
		value, ok := in.vars[e.Name]
		if !ok {
			line, col := e.Pos()
			return nil, evalErrorf(line, col, "undefined variable: %s at line %d, column %d", e.Name, line, col)
		}
		return value, nil
	case *Call:
		return in.evalCall(e)
	case *Interp:
		return in.evalInterp(e)
	case *Binary:
		return in.evalBinary(e)
	}
	return nil, errors.Newf(errors.ErrInternal, "unknown expression node %T", expr)
}

func (in *Interpreter) evalCall(call *Call) (interface{}, error) {
	line, col := call.Pos()
	args := make([]interface{}, 0, len(call.Args))
	for _, arg := range call.Args {
		v, err := in.evalExpr(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch call.Name {
	case "env":
		if len(args) < 1 || len(args) > 2 {
			return nil, evalErrorf(line, col,
				"env() expects 1 or 2 arguments, got %d at line %d, column %d", len(args), line, col)
		}
		name := Stringify(args[0])
		if value, ok := os.LookupEnv(name); ok {
			return value, nil
		}
		if len(args) == 2 && args[1] != nil {
			return args[1], nil
		}
		return nil, evalErrorf(line, col,
			"environment variable %q not found and no default provided at line %d, column %d", name, line, col)

	case "concat":
		var sb strings.Builder
		for _, arg := range args {
			sb.WriteString(Stringify(arg))
		}
		return sb.String(), nil

	case "join":
		if len(args) < 2 {
			return nil, evalErrorf(line, col,
				"join() expects at least 2 arguments (separator, ...items), got %d at line %d, column %d",
				len(args), line, col)
		}
		separator := Stringify(args[0])
		parts := make([]string, 0, len(args)-1)
		for _, arg := range args[1:] {
			parts = append(parts, Stringify(arg))
		}
		return strings.Join(parts, separator), nil

	case "upper":
		if len(args) != 1 {
			return nil, evalErrorf(line, col,
				"upper() expects 1 argument, got %d at line %d, column %d", len(args), line, col)
		}
		return strings.ToUpper(Stringify(args[0])), nil

	case "lower":
		if len(args) != 1 {
			return nil, evalErrorf(line, col,
				"lower() expects 1 argument, got %d at line %d, column %d", len(args), line, col)
		}
		return strings.ToLower(Stringify(args[0])), nil
	}

	return nil, evalErrorf(line, col, "unknown function: %s at line %d, column %d", call.Name, line, col)
}

func (in *Interpreter) evalInterp(interp *Interp) (interface{}, error) {
	line, col := interp.Pos()
	var sb strings.Builder

	for _, part := range interp.Parts {
		switch part.Kind {
		case PartText:
			sb.WriteString(part.Text)

		case PartVar:
			value, ok := in.vars[part.Text]
			if !ok {
				return nil, evalErrorf(line, col,
					"undefined variable: %s in interpolated string at line %d, column %d", part.Text, line, col)
			}
			sb.WriteString(Stringify(value))

		case PartExpr:
			expr, err := ParseExpr(part.Text)
			if err != nil {
				return nil, err
			}
			value, err := in.evalExpr(expr)
			if err != nil {
				return nil, err
			}
			// A bare word inside ${...} falls back to the variable of the
			// same name, then to its own spelling.
			if ident, ok := value.(Identifier); ok {
				if v, found := in.vars["$"+string(ident)]; found {
					sb.WriteString(Stringify(v))
				} else {
					sb.WriteString(string(ident))
				}
				continue
			}
			sb.WriteString(Stringify(value))
		}
	}
	return sb.String(), nil
}

func (in *Interpreter) evalBinary(expr *Binary) (interface{}, error) {
	line, col := expr.Pos()
	left, err := in.evalExpr(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(expr.Right)
	if err != nil {
		return nil, err
	}

	// '+' concatenates as soon as either side is a string.
	if expr.Op == TokenPlus {
		_, ls := left.(string)
		_, rs := right.(string)
		if ls || rs {
			return Stringify(left) + Stringify(right), nil
		}
	}

	if ident, ok := left.(Identifier); ok {
		return nil, evalErrorf(line, col,
			"cannot perform arithmetic on identifier %q at line %d, column %d", string(ident), line, col)
	}
	if ident, ok := right.(Identifier); ok {
		return nil, evalErrorf(line, col,
			"cannot perform arithmetic on identifier %q at line %d, column %d", string(ident), line, col)
	}

	if in.decimal {
		return in.evalDecimal(expr.Op, left, right, line, col)
	}

	// Two integers stay in int64 so large values are exact.
	if li, lok := left.(int64); lok {
		if ri, rok := right.(int64); rok {
			return evalIntBinary(expr.Op, li, ri, line, col)
		}
	}

	lf, ok := asNumber(left)
	if !ok {
		return nil, evalErrorf(line, col, "cannot perform arithmetic on non-numeric values at line %d, column %d", line, col)
	}
	rf, ok := asNumber(right)
	if !ok {
		return nil, evalErrorf(line, col, "cannot perform arithmetic on non-numeric values at line %d, column %d", line, col)
	}

	switch expr.Op {
	case TokenPlus:
		return lf + rf, nil
	case TokenMinus:
		return lf - rf, nil
	case TokenStar:
		return lf * rf, nil
	case TokenSlash:
		if rf == 0 {
			return nil, evalErrorf(line, col, "division by zero at line %d, column %d", line, col)
		}
		result := lf / rf
		// Integral quotients collapse back to integers.
		if result == float64(int64(result)) {
			return int64(result), nil
		}
		return result, nil
	case TokenPercent:
		if rf == 0 {
			return nil, evalErrorf(line, col, "modulo by zero at line %d, column %d", line, col)
		}
		// Floored modulo: the result takes the sign of the divisor.
		m := math.Mod(lf, rf)
		if m != 0 && (m < 0) != (rf < 0) {
			m += rf
		}
		return m, nil
	}
	return nil, errors.Newf(errors.ErrInternal, "unknown operator %s", expr.Op)
}

func evalIntBinary(op TokenType, li, ri int64, line, col int) (interface{}, error) {
	switch op {
	case TokenPlus:
		return li + ri, nil
	case TokenMinus:
		return li - ri, nil
	case TokenStar:
		return li * ri, nil
	case TokenSlash:
		if ri == 0 {
			return nil, evalErrorf(line, col, "division by zero at line %d, column %d", line, col)
		}
		// Integral quotients collapse back to integers.
		if li%ri == 0 {
			return li / ri, nil
		}
		return float64(li) / float64(ri), nil
	case TokenPercent:
		if ri == 0 {
			return nil, evalErrorf(line, col, "modulo by zero at line %d, column %d", line, col)
		}
		// Floored modulo: the result takes the sign of the divisor.
		m := li % ri
		if m != 0 && (m < 0) != (ri < 0) {
			m += ri
		}
		return m, nil
	}
	return nil, errors.Newf(errors.ErrInternal, "unknown operator %s", op)
}

func (in *Interpreter) evalDecimal(op TokenType, left, right interface{}, line, col int) (interface{}, error) {
	ld, ok := asDecimal(left)
	if !ok {
		return nil, evalErrorf(line, col, "cannot perform arithmetic on non-numeric values at line %d, column %d", line, col)
	}
	rd, ok := asDecimal(right)
	if !ok {
		return nil, evalErrorf(line, col, "cannot perform arithmetic on non-numeric values at line %d, column %d", line, col)
	}

	switch op {
	case TokenPlus:
		return ld.Add(rd), nil
	case TokenMinus:
		return ld.Sub(rd), nil
	case TokenStar:
		return ld.Mul(rd), nil
	case TokenSlash:
		if rd.IsZero() {
			return nil, evalErrorf(line, col, "division by zero at line %d, column %d", line, col)
		}
		return ld.Div(rd), nil
	case TokenPercent:
		if rd.IsZero() {
			return nil, evalErrorf(line, col, "modulo by zero at line %d, column %d", line, col)
		}
		return ld.Mod(rd), nil
	}
	return nil, errors.Newf(errors.ErrInternal, "unknown operator %s", op)
}

func asNumber(v interface{}) (value float64, ok bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case decimal.Decimal:
		f, _ := n.Float64()
		return f, true
	}
	return 0, false
}

func asDecimal(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int64:
		return decimal.NewFromInt(n), true
	case float64:
		return decimal.NewFromFloat(n), true
	case decimal.Decimal:
		return n, true
	}
	return decimal.Decimal{}, false
}

// Lookup returns the values of one item by category path and item name.
func (in *Interpreter) Lookup(category, item string) ([]interface{}, bool) {
	cat, ok := in.data[category]
	if !ok {
		return nil, false
	}
	values, ok := cat.items[item]
	if !ok {
		return nil, false
	}
	return values, true
}

// Document flattens the evaluated data into a nested map. Leaf values are
// always lists, one entry per comma-separated value, simplified for
// encoding. Category paths that collide with item names are reported.
func (in *Interpreter) Document() (map[string]interface{}, error) {
	result := make(map[string]interface{})

	paths := make([]string, len(in.order))
	copy(paths, in.order)
	sort.Strings(paths)

	for _, path := range paths {
		cat := in.data[path]
		parts := strings.Split(path, ".")
		current := result

		for _, part := range parts[:len(parts)-1] {
			child, exists := current[part]
			if !exists {
				next := make(map[string]interface{})
				current[part] = next
				current = next
				continue
			}
			next, ok := child.(map[string]interface{})
			if !ok {
				return nil, errors.Newf(errors.ErrEval,
					"cannot create nested structure: %q is already a value, not a category", part)
			}
			current = next
		}

		final := parts[len(parts)-1]
		child, exists := current[final]
		if !exists {
			child = make(map[string]interface{})
			current[final] = child
		}
		target, ok := child.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrEval,
				"cannot create category %q: name already used as an item", final)
		}

		for _, name := range cat.itemOrder {
			simplified := make([]interface{}, 0, len(cat.items[name]))
			for _, v := range cat.items[name] {
				simplified = append(simplified, Simplify(v))
			}
			target[name] = simplified
		}
	}

	return result, nil
}
