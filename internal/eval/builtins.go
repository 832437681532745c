package eval

import (
	"strconv"
	"strings"

	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

var effectBuiltinNames = map[string]bool{
	"print":                true,
	"setLog":               true,
	"log":                  true,
	"clipboard_isText":     true,
	"clipboard_read":       true,
	"clipboard_write":      true,
	"showAlertOK":          true,
	"showAlert":            true,
	"showAlertYesNoCancel": true,
}

func isEffectBuiltin(name string) bool {
	return effectBuiltinNames[name]
}

// callEffectBuiltin dispatches to the interpreter's effect handlers per
// the table in spec.md 6.
func (interp *Interpreter) callEffectBuiltin(name string, args []object.Value, span token.Span) (object.Value, error) {
	switch name {
	case "print":
		if err := checkArity(name, args, 1, span); err != nil {
			return object.Null, err
		}
		interp.handlers.Console.Print(args[0].ToDisplayString())
		return object.Null, nil

	case "setLog":
		if err := checkArity(name, args, 1, span); err != nil {
			return object.Null, err
		}
		path, err := requireStringArg(name, args, 0, span)
		if err != nil {
			return object.Null, err
		}
		return object.Bool(interp.handlers.Logger.SetLog(path)), nil

	case "log":
		if err := checkArity(name, args, 1, span); err != nil {
			return object.Null, err
		}
		if err := interp.handlers.Logger.Log(args[0].ToDisplayString()); err != nil {
			return object.Null, attachSpan(err, span)
		}
		return object.Null, nil

	case "clipboard_isText":
		if err := checkArity(name, args, 0, span); err != nil {
			return object.Null, err
		}
		return object.Bool(interp.handlers.Clipboard.IsText()), nil

	case "clipboard_read":
		if err := checkArity(name, args, 0, span); err != nil {
			return object.Null, err
		}
		return object.String(interp.handlers.Clipboard.Read()), nil

	case "clipboard_write":
		if err := checkArity(name, args, 1, span); err != nil {
			return object.Null, err
		}
		text, err := requireStringArg(name, args, 0, span)
		if err != nil {
			return object.Null, err
		}
		return object.Bool(interp.handlers.Clipboard.Write(text)), nil

	case "showAlertOK":
		title, message, err := requireTwoStringArgs(name, args, span)
		if err != nil {
			return object.Null, err
		}
		interp.handlers.Alert.ShowOK(title, message)
		return object.Null, nil

	case "showAlert":
		title, message, err := requireTwoStringArgs(name, args, span)
		if err != nil {
			return object.Null, err
		}
		return object.Bool(interp.handlers.Alert.ShowOKCancel(title, message)), nil

	case "showAlertYesNoCancel":
		title, message, err := requireTwoStringArgs(name, args, span)
		if err != nil {
			return object.Null, err
		}
		return object.Int(int64(interp.handlers.Alert.ShowYesNoCancel(title, message))), nil

	default:
		return object.Null, errs.Newf(errs.Runtime, span, "unknown function `%s`", name)
	}
}

func checkArity(name string, args []object.Value, n int, span token.Span) error {
	if len(args) != n {
		return errs.Newf(errs.Arity, span, "%s() expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func requireStringArg(name string, args []object.Value, i int, span token.Span) (string, error) {
	if args[i].Kind != object.KindString {
		return "", errs.Newf(errs.Type, span, "%s() expects a string argument", name)
	}
	return args[i].Str, nil
}

func requireTwoStringArgs(name string, args []object.Value, span token.Span) (string, string, error) {
	if err := checkArity(name, args, 2, span); err != nil {
		return "", "", err
	}
	title, err := requireStringArg(name, args, 0, span)
	if err != nil {
		return "", "", err
	}
	message, err := requireStringArg(name, args, 1, span)
	if err != nil {
		return "", "", err
	}
	return title, message, nil
}

// attachSpan gives an unspanned *errs.Error a span, so effect-handler
// failures still point at the call site that triggered them.
func attachSpan(err error, span token.Span) error {
	if e, ok := err.(*errs.Error); ok && e.Span == nil {
		return errs.New(e.Kind, e.Message, span)
	}
	return err
}

// evalFstring implements the fstring(template, ...) builtin of spec.md
// 4.5: %N names a 1-based index into the arguments following the
// template; any other use of '%' passes through literally.
func evalFstring(args []object.Value, span token.Span) (object.Value, error) {
	if len(args) < 1 {
		return object.Null, errs.New(errs.Arity, "fstring() expects at least 1 argument", span)
	}
	if args[0].Kind != object.KindString {
		return object.Null, errs.New(errs.Type, "fstring() expects a string template", span)
	}
	template := []rune(args[0].Str)
	rest := args[1:]

	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 >= len(template) || !isASCIIDigit(template[i+1]) {
			b.WriteRune(c)
			continue
		}
		j := i + 1
		for j < len(template) && isASCIIDigit(template[j]) {
			j++
		}
		idx, _ := strconv.Atoi(string(template[i+1 : j]))
		if idx < 1 || idx > len(rest) {
			return object.Null, errs.Newf(errs.Runtime, span, "fstring: index %%%d out of range", idx)
		}
		b.WriteString(rest[idx-1].ToDisplayString())
		i = j - 1
	}
	return object.String(b.String()), nil
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
