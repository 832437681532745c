package eval

import (
	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/env"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
)

// evalStatements walks stmts in order in scope, stopping at the first
// error or the first ExecFlow other than FlowNone (spec.md 4.5).
func (interp *Interpreter) evalStatements(stmts []ast.Stmt, scope *env.Environment) (ExecFlow, error) {
	for _, stmt := range stmts {
		flow, err := interp.evalStatement(stmt, scope)
		if err != nil {
			return flowNone, err
		}
		if flow.Kind != FlowNone {
			return flow, nil
		}
	}
	return flowNone, nil
}

func (interp *Interpreter) evalStatement(stmt ast.Stmt, scope *env.Environment) (ExecFlow, error) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return interp.evalVarDecl(s, scope)
	case *ast.Assignment:
		return interp.evalAssignment(s, scope)
	case *ast.ExpressionStmt:
		_, err := interp.evalExpr(s.Expr, scope)
		return flowNone, err
	case *ast.If:
		return interp.evalIf(s, scope)
	case *ast.While:
		return interp.evalWhile(s, scope)
	case *ast.Return:
		v, err := interp.evalExpr(s.Value, scope)
		if err != nil {
			return flowNone, err
		}
		return ExecFlow{Kind: FlowReturn, Value: v, Span: s.SpanValue}, nil
	case *ast.Break:
		return ExecFlow{Kind: FlowBreak, Span: s.SpanValue}, nil
	case *ast.Continue:
		return ExecFlow{Kind: FlowContinue, Span: s.SpanValue}, nil
	case *ast.FunctionDef:
		interp.functions[s.Name] = s
		return flowNone, nil
	default:
		return flowNone, errs.Unspannedf(errs.Runtime, "eval: unhandled statement type %T", stmt)
	}
}

func (interp *Interpreter) evalVarDecl(s *ast.VarDecl, scope *env.Environment) (ExecFlow, error) {
	value := object.Null
	if s.Initializer != nil {
		v, err := interp.evalExpr(s.Initializer, scope)
		if err != nil {
			return flowNone, err
		}
		value = v
	}
	declared := s.Type.ToObjectType()
	if !object.MatchesType(value, declared) {
		return flowNone, errs.Newf(errs.Type, s.SpanValue,
			"cannot bind value of type %s to declared type %s", value.Kind, declared)
	}
	if value.Kind == object.KindList {
		value.ElemType = declared.Elem
	}
	scope.Set(s.Name, value)
	return flowNone, nil
}

// evalAssignment always stores into the current scope, never searching
// outer scopes first. See DESIGN.md for why this literal reading of
// spec.md 3/9 is the chosen semantics.
func (interp *Interpreter) evalAssignment(s *ast.Assignment, scope *env.Environment) (ExecFlow, error) {
	value, err := interp.evalExpr(s.Value, scope)
	if err != nil {
		return flowNone, err
	}
	scope.Set(s.Name, value)
	return flowNone, nil
}

func (interp *Interpreter) evalIf(s *ast.If, scope *env.Environment) (ExecFlow, error) {
	cond, err := interp.evalExpr(s.Cond, scope)
	if err != nil {
		return flowNone, err
	}
	if cond.IsTruthy() {
		return interp.evalStatements(s.Body, env.NewEnclosed(scope))
	}
	for _, elif := range s.Elifs {
		c, err := interp.evalExpr(elif.Cond, scope)
		if err != nil {
			return flowNone, err
		}
		if c.IsTruthy() {
			return interp.evalStatements(elif.Body, env.NewEnclosed(scope))
		}
	}
	if s.Else != nil {
		return interp.evalStatements(s.Else, env.NewEnclosed(scope))
	}
	return flowNone, nil
}

func (interp *Interpreter) evalWhile(s *ast.While, scope *env.Environment) (ExecFlow, error) {
	for {
		cond, err := interp.evalExpr(s.Cond, scope)
		if err != nil {
			return flowNone, err
		}
		if !cond.IsTruthy() {
			return flowNone, nil
		}
		flow, err := interp.evalStatements(s.Body, env.NewEnclosed(scope))
		if err != nil {
			return flowNone, err
		}
		switch flow.Kind {
		case FlowReturn:
			return flow, nil
		case FlowBreak:
			return flowNone, nil
		case FlowContinue:
			continue
		}
	}
}
