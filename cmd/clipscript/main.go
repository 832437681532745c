package main

import (
	"os"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
)

var version = "dev"

func main() {
	app := cli.New("clipscript").
		Description("A statically-typed scripting language for text and clipboard manipulation").
		Version(version)

	app.Main().
		Args("file").
		Flags(
			cli.String("log", "").Env("CLIPSCRIPT_LOG").
				Help("Path to a log file, as if the script called setLog() before running"),
			cli.Bool("no-color", "").Env("NO_COLOR").Help("Disable colored error output"),
			cli.Bool("verbose", "v").Help("Trace lexer/parser/evaluator phase transitions to stderr"),
		).
		Run(runHandler)

	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			return
		}
		printError(err.Error())
		os.Exit(exitUsage)
	}
}

func printError(msg string) {
	if color.ShouldColorize(os.Stderr) {
		msg = color.Red.Apply(msg)
	}
	os.Stderr.WriteString(msg + "\n")
}
