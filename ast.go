package gocalc

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Expression is a node of the expression tree. Every node owns its
// children; subtrees are never shared.
type Expression interface {
	fmt.Stringer
	expression()
}

type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpExponentiate
)

var binaryOpNames = [...]string{
	OpAdd:          "Add",
	OpSubtract:     "Subtract",
	OpMultiply:     "Multiply",
	OpDivide:       "Divide",
	OpExponentiate: "Exponentiate",
}

var binaryOpSymbols = [...]string{
	OpAdd:          "+",
	OpSubtract:     "-",
	OpMultiply:     "*",
	OpDivide:       "/",
	OpExponentiate: "^",
}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpNames) {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return binaryOpNames[op]
}

// Symbol returns the operator as written in source.
func (op BinaryOp) Symbol() string {
	if op < 0 || int(op) >= len(binaryOpSymbols) {
		return "?"
	}
	return binaryOpSymbols[op]
}

type Literal struct {
	Value float64
}

type VariableRef struct {
	Name string
}

// FunctionCall is reserved; evaluating it is an internal error.
type FunctionCall struct {
	Name string
	Args []Expression
}

// ArgPlaceholder stands for a function parameter. Reserved like FunctionCall.
type ArgPlaceholder struct {
	Index uint
}

type Negate struct {
	Operand Expression
}

type Binary struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (*Literal) expression()        {}
func (*VariableRef) expression()    {}
func (*FunctionCall) expression()   {}
func (*ArgPlaceholder) expression() {}
func (*Negate) expression()         {}
func (*Binary) expression()         {}

func NewBinary(op BinaryOp, left, right Expression) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

func (n *Literal) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *VariableRef) String() string {
	return n.Name
}

func (n *FunctionCall) String() string {
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = arg.String()
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func (n *ArgPlaceholder) String() string {
	return "$" + strconv.FormatUint(uint64(n.Index), 10)
}

func (n *Negate) String() string {
	return "(-" + n.Operand.String() + ")"
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op.Symbol() + " " + n.Right.String() + ")"
}

// Statement is the result of parsing one line of input.
type Statement interface {
	fmt.Stringer
	statement()
}

type ExpressionStatement struct {
	Expr Expression
}

type VarDefinition struct {
	Name  string
	Value Expression
}

// FuncDefinition is reserved; executing it is an internal error.
type FuncDefinition struct {
	Name  string
	Arity uint
	Body  Expression
}

func (*ExpressionStatement) statement() {}
func (*VarDefinition) statement()       {}
func (*FuncDefinition) statement()      {}

func (s *ExpressionStatement) String() string {
	return s.Expr.String()
}

func (s *VarDefinition) String() string {
	return "define " + s.Name + " = " + s.Value.String()
}

func (s *FuncDefinition) String() string {
	return fmt.Sprintf("define %s/%d = %v", s.Name, s.Arity, s.Body)
}

// Dump writes stmt as an indented tree, one node per line.
func Dump(w io.Writer, stmt Statement) error {
	var buf bytes.Buffer
	switch s := stmt.(type) {
	case *ExpressionStatement:
		fmt.Fprintln(&buf, "Expression:")
		dumpExpression(&buf, s.Expr, 1)
	case *VarDefinition:
		fmt.Fprintf(&buf, "Variable %q definition:\n", s.Name)
		dumpExpression(&buf, s.Value, 1)
	case *FuncDefinition:
		fmt.Fprintf(&buf, "Function %q definition (arity %d):\n", s.Name, s.Arity)
		dumpExpression(&buf, s.Body, 1)
	default:
		return fmt.Errorf("unknown statement %T", stmt)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func dumpExpression(buf *bytes.Buffer, expr Expression, depth int) {
	buf.WriteString(strings.Repeat(" ", depth))
	switch n := expr.(type) {
	case *Literal:
		fmt.Fprintln(buf, n)
	case *VariableRef:
		fmt.Fprintln(buf, "Variable", n.Name)
	case *FunctionCall:
		fmt.Fprintln(buf, "Function", n.Name)
		for _, arg := range n.Args {
			dumpExpression(buf, arg, depth+1)
		}
	case *ArgPlaceholder:
		fmt.Fprintln(buf, "Argument", n.Index)
	case *Negate:
		fmt.Fprintln(buf, "Negate")
		dumpExpression(buf, n.Operand, depth+1)
	case *Binary:
		fmt.Fprintln(buf, n.Op)
		dumpExpression(buf, n.Left, depth+1)
		dumpExpression(buf, n.Right, depth+1)
	default:
		fmt.Fprintf(buf, "%T\n", expr)
	}
}
