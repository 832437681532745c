package eval

import (
	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/env"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// evalFunctionCall resolves a call by name in the precedence order of
// spec.md 4.5: reserved names, then effect builtins, then user functions.
func (interp *Interpreter) evalFunctionCall(call *ast.FunctionCall, scope *env.Environment) (object.Value, error) {
	args := make([]object.Value, len(call.Arguments))
	for i, a := range call.Arguments {
		v, err := interp.evalExpr(a, scope)
		if err != nil {
			return object.Null, err
		}
		args[i] = v
	}

	switch call.Name {
	case "exit":
		return object.Null, errs.New(errs.Exit, "program terminated", call.SpanValue)
	case "fstring":
		return evalFstring(args, call.SpanValue)
	}

	if isEffectBuiltin(call.Name) {
		return interp.callEffectBuiltin(call.Name, args, call.SpanValue)
	}

	fn, ok := interp.functions[call.Name]
	if !ok {
		return object.Null, errs.Newf(errs.Runtime, call.SpanValue, "unknown function `%s`", call.Name)
	}
	return interp.callUserFunction(fn, args, call.SpanValue)
}

// callUserFunction implements the user-function call contract of spec.md
// 4.5: arity and per-parameter type checks, a fresh scope parented to the
// root scope (functions are not closures), then interpretation of the
// body's ExecFlow against the declared return type.
func (interp *Interpreter) callUserFunction(fn *ast.FunctionDef, args []object.Value, span token.Span) (object.Value, error) {
	if len(args) != len(fn.Params) {
		return object.Null, errs.Newf(errs.Arity, span,
			"function `%s` expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	callScope := env.NewEnclosed(interp.root)
	for i, param := range fn.Params {
		paramType := param.Type.ToObjectType()
		if !object.MatchesType(args[i], paramType) {
			return object.Null, errs.Newf(errs.Type, span,
				"function `%s` parameter `%s` expects %s, got %s", fn.Name, param.Name, paramType, args[i].Kind)
		}
		callScope.Set(param.Name, args[i])
	}

	flow, err := interp.evalStatements(fn.Body, callScope)
	if err != nil {
		return object.Null, err
	}

	returnType := fn.ReturnType.ToObjectType()
	switch flow.Kind {
	case FlowReturn:
		if returnType != nil && !object.MatchesType(flow.Value, returnType) {
			return object.Null, errs.Newf(errs.Type, span,
				"function `%s` declared return type %s but returned %s", fn.Name, returnType, flow.Value.Kind)
		}
		return flow.Value, nil
	case FlowNone:
		if returnType != nil {
			return object.Null, errs.Newf(errs.Type, span,
				"function `%s` did not return a value", fn.Name)
		}
		return object.Null, nil
	default: // FlowBreak, FlowContinue
		return object.Null, errs.New(errs.Runtime, "unexpected control flow in function body", span)
	}
}
