package main

import (
	"os"
	"time"

	"github.com/clipscript/clipscript/internal/effects"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/eval"
	"github.com/clipscript/clipscript/internal/lexer"
	"github.com/clipscript/clipscript/internal/parser"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/rs/zerolog"
)

// Exit codes per spec.md 6.
const (
	exitOK = iota
	exitUsage
	exitParse
	exitRuntime
)

// traceLogger returns a zerolog logger that writes phase-transition traces
// to stderr when --verbose is set, and discards everything otherwise. This
// is internal diagnostic tracing, separate from the script-level log()
// builtin and its fixed wire format.
func traceLogger(ctx *cli.Context) zerolog.Logger {
	level := zerolog.Disabled
	if ctx.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func runHandler(ctx *cli.Context) error {
	log := traceLogger(ctx)

	path := ctx.Arg(0)
	if path == "" {
		printError("usage: clipscript <script-file>")
		os.Exit(exitUsage)
	}
	log.Debug().Str("path", path).Msg("reading script")

	src, err := os.ReadFile(path)
	if err != nil {
		printError(err.Error())
		os.Exit(exitUsage)
	}

	log.Debug().Int("bytes", len(src)).Msg("lexing and parsing")
	program, err := parser.New(lexer.New(string(src))).Parse()
	if err != nil {
		printError(friendlyMessage(err))
		os.Exit(exitParse)
	}
	log.Debug().Int("statements", len(program)).Msg("parsed program")

	handlers := effects.Handlers{
		Console:   effects.NewStdConsole(os.Stdout),
		Logger:    effects.NewFileLogger(),
		Clipboard: effects.NewSystemClipboard(),
		Alert:     effects.NewSystemAlerter(),
	}
	if logPath := ctx.String("log"); logPath != "" {
		handlers.Logger.SetLog(logPath)
	}

	closeLog := func() {
		if err := handlers.Logger.Close(); err != nil {
			log.Debug().Err(err).Msg("failed to close log file")
		}
	}

	log.Debug().Msg("evaluating program")
	interp := eval.New(handlers)
	if _, err := interp.Run(program); err != nil {
		if e, ok := err.(*errs.Error); ok && e.IsExit() {
			log.Debug().Msg("exit() called")
			closeLog()
			os.Exit(exitOK)
		}
		printError(friendlyMessage(err))
		closeLog()
		os.Exit(exitRuntime)
	}
	log.Debug().Msg("program finished")
	closeLog()

	return nil
}

func friendlyMessage(err error) string {
	if e, ok := err.(*errs.Error); ok {
		return e.FriendlyErrorMessage()
	}
	return err.Error()
}
