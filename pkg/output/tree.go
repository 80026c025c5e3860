package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/zov-lang/zov/pkg/lang"
)

var (
	categoryStyle = lipgloss.NewStyle().Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// RenderAST formats a parsed document as an indented tree for `zov ast`.
func RenderAST(doc *lang.Document, color bool) string {
	root := tree.Root("document")
	if color {
		root = root.RootStyle(categoryStyle).ItemStyle(itemStyle)
	}
	for _, member := range doc.Members {
		root.Child(memberNode(member, color))
	}
	return root.String()
}

func memberNode(member lang.Member, color bool) interface{} {
	switch m := member.(type) {
	case *lang.Category:
		node := tree.Root(m.Name + " {}")
		if color {
			node = node.RootStyle(categoryStyle).ItemStyle(itemStyle)
		}
		for _, child := range m.Members {
			node.Child(memberNode(child, color))
		}
		return node
	case *lang.Item:
		values := make([]string, 0, len(m.Values))
		for _, v := range m.Values {
			values = append(values, formatExpr(v))
		}
		return fmt.Sprintf("%s = %s;", m.Name, strings.Join(values, ", "))
	case *lang.Assign:
		return fmt.Sprintf("%s = %s;", m.Name, formatExpr(m.Value))
	}
	return fmt.Sprintf("%v", member)
}

func formatExpr(expr lang.Expr) string {
	switch e := expr.(type) {
	case *lang.Literal:
		switch v := e.Value.(type) {
		case nil:
			return "null"
		case string:
			return fmt.Sprintf("%q", v)
		default:
			return fmt.Sprint(v)
		}
	case *lang.IdentRef:
		return e.Name
	case *lang.VarRef:
		return e.Name
	case *lang.Binary:
		return fmt.Sprintf("(%s %s %s)", formatExpr(e.Left), opSymbol(e.Op), formatExpr(e.Right))
	case *lang.Call:
		args := make([]string, 0, len(e.Args))
		for _, arg := range e.Args {
			args = append(args, formatExpr(arg))
		}
		return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
	case *lang.Interp:
		var sb strings.Builder
		sb.WriteByte('"')
		for _, part := range e.Parts {
			switch part.Kind {
			case lang.PartText:
				sb.WriteString(part.Text)
			case lang.PartVar:
				sb.WriteString(part.Text)
			case lang.PartExpr:
				sb.WriteString("${" + part.Text + "}")
			}
		}
		sb.WriteByte('"')
		return sb.String()
	}
	return fmt.Sprintf("%v", expr)
}

func opSymbol(op lang.TokenType) string {
	switch op {
	case lang.TokenPlus:
		return "+"
	case lang.TokenMinus:
		return "-"
	case lang.TokenStar:
		return "*"
	case lang.TokenSlash:
		return "/"
	case lang.TokenPercent:
		return "%"
	}
	return "?"
}
