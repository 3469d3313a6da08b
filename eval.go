package gocalc

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/log"
)

var (
	// ErrUnimplemented is wrapped by every InternalError.
	ErrUnimplemented = errors.New("not implemented")
)

// EvalError reports a user mistake found during evaluation, such as a
// reference to an unbound variable.
type EvalError struct {
	Msg  string
	Name string
}

func (e *EvalError) Error() string {
	if e.Name == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Msg, e.Name)
}

// InternalError reports evaluation of a construct that has no semantics
// yet. It indicates a missing feature rather than bad input.
type InternalError struct {
	What string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s: %v", e.What, ErrUnimplemented)
}

func (e *InternalError) Unwrap() error {
	return ErrUnimplemented
}

// Eval computes the value of expr. env is only read.
func Eval(env *Env, expr Expression) (float64, error) {
	switch n := expr.(type) {
	case *Literal:
		return n.Value, nil
	case *VariableRef:
		v, ok := env.Get(n.Name)
		if !ok {
			return 0, &EvalError{Msg: "undefined variable", Name: n.Name}
		}
		log.LogVf("eval %s -> %v", n.Name, v)
		return v, nil
	case *FunctionCall:
		return 0, &InternalError{What: "function call " + n.Name}
	case *ArgPlaceholder:
		return 0, &InternalError{What: "argument placeholder encountered while evaluating expression"}
	case *Negate:
		v, err := Eval(env, n.Operand)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *Binary:
		lhs, err := Eval(env, n.Left)
		if err != nil {
			return 0, err
		}
		rhs, err := Eval(env, n.Right)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, lhs, rhs)
	case nil:
		return 0, &InternalError{What: "nil expression"}
	}
	return 0, &InternalError{What: fmt.Sprintf("expression %T", expr)}
}

func apply(op BinaryOp, lhs, rhs float64) (float64, error) {
	switch op {
	case OpAdd:
		return lhs + rhs, nil
	case OpSubtract:
		return lhs - rhs, nil
	case OpMultiply:
		return lhs * rhs, nil
	case OpDivide:
		return lhs / rhs, nil
	case OpExponentiate:
		return math.Pow(lhs, rhs), nil
	}
	return 0, &InternalError{What: "operator " + op.String()}
}

// DefineVariable evaluates expr and binds the result to name. env is left
// untouched when evaluation fails.
func DefineVariable(env *Env, name string, expr Expression) error {
	v, err := Eval(env, expr)
	if err != nil {
		return err
	}
	log.LogVf("define %s = %v", name, v)
	env.Set(name, v)
	return nil
}

// Exec runs one statement. ok reports whether the statement produced a
// value; definitions only change env.
func Exec(env *Env, stmt Statement) (value float64, ok bool, err error) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		v, err := Eval(env, s.Expr)
		if err != nil {
			return 0, false, err
		}
		return v, true, nil
	case *VarDefinition:
		return 0, false, DefineVariable(env, s.Name, s.Value)
	case *FuncDefinition:
		return 0, false, &InternalError{What: "function definition " + s.Name}
	}
	return 0, false, &InternalError{What: fmt.Sprintf("statement %T", stmt)}
}
