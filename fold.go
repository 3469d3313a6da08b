package gocalc

import "fmt"

// Visitor is a transform over expression trees. Each method receives the
// slot holding the node so the transform can replace the node in place.
// Adding a variant to Expression breaks every Visitor at compile time.
type Visitor[T any] interface {
	Literal(slot *Expression, n *Literal) T
	VariableRef(slot *Expression, n *VariableRef) T
	FunctionCall(slot *Expression, n *FunctionCall) T
	ArgPlaceholder(slot *Expression, n *ArgPlaceholder) T
	Negate(slot *Expression, n *Negate) T
	Binary(slot *Expression, n *Binary) T
}

// Walk dispatches the node in slot to the matching method of v. An empty
// slot yields the zero T without calling v.
func Walk[T any](v Visitor[T], slot *Expression) T {
	switch n := (*slot).(type) {
	case nil:
		var zero T
		return zero
	case *Literal:
		return v.Literal(slot, n)
	case *VariableRef:
		return v.VariableRef(slot, n)
	case *FunctionCall:
		return v.FunctionCall(slot, n)
	case *ArgPlaceholder:
		return v.ArgPlaceholder(slot, n)
	case *Negate:
		return v.Negate(slot, n)
	case *Binary:
		return v.Binary(slot, n)
	}
	panic(fmt.Sprintf("gocalc: unknown expression %T", *slot))
}

type folded struct {
	value float64
	ok    bool
}

type folder struct{}

func (folder) Literal(slot *Expression, n *Literal) folded {
	return folded{value: n.Value, ok: true}
}

func (folder) VariableRef(slot *Expression, n *VariableRef) folded {
	return folded{}
}

func (f folder) FunctionCall(slot *Expression, n *FunctionCall) folded {
	for i := range n.Args {
		Walk[folded](f, &n.Args[i])
	}
	return folded{}
}

func (folder) ArgPlaceholder(slot *Expression, n *ArgPlaceholder) folded {
	return folded{}
}

func (f folder) Negate(slot *Expression, n *Negate) folded {
	r := Walk[folded](f, &n.Operand)
	if !r.ok {
		return folded{}
	}
	v := -r.value
	*slot = &Literal{Value: v}
	return folded{value: v, ok: true}
}

func (f folder) Binary(slot *Expression, n *Binary) folded {
	lhs := Walk[folded](f, &n.Left)
	rhs := Walk[folded](f, &n.Right)
	if !lhs.ok || !rhs.ok {
		return folded{}
	}
	v, err := apply(n.Op, lhs.value, rhs.value)
	if err != nil {
		return folded{}
	}
	*slot = &Literal{Value: v}
	return folded{value: v, ok: true}
}

// Fold collapses every subtree of *slot whose leaves are all literals into
// a single Literal. It reports the value of the whole tree when it folded
// completely.
func Fold(slot *Expression) (float64, bool) {
	r := Walk[folded](folder{}, slot)
	return r.value, r.ok
}

// FoldStatement folds the expression carried by stmt.
func FoldStatement(stmt Statement) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		Fold(&s.Expr)
	case *VarDefinition:
		Fold(&s.Value)
	case *FuncDefinition:
		Fold(&s.Body)
	}
}
