// Package effects defines the pluggable external collaborators the
// evaluator calls through for everything the core language spec treats as
// out of scope: console output, a timestamped log file, the platform
// clipboard, and modal alert dialogs (spec.md 1, 6). The evaluator only
// ever sees these four interfaces; concrete implementations are wired up
// once, in cmd/clipscript.
package effects

// Console writes program output.
type Console interface {
	Print(line string)
}

// Logger appends timestamped lines to a file nominated at runtime via
// SetLog. Grounded on original_source/cpp/src/builtins/logger.cpp:
// SetLog returns false (not an error) when the file cannot be opened, and
// Log fails with a Runtime error whenever no log file is open: before the
// first successful SetLog, after a SetLog that failed, and after Close.
// Close releases the open file handle, if any; the CLI entrypoint calls it
// on every exit path so the handle is never leaked (spec.md 5).
type Logger interface {
	SetLog(path string) bool
	Log(message string) error
	HasLogFile() bool
	Close() error
}

// Clipboard is the platform clipboard.
type Clipboard interface {
	IsText() bool
	Read() string
	Write(text string) bool
}

// Alerter shows modal dialogs. Button-type semantics mirror
// original_source/cpp/src/builtins/alert.cpp: OK-only, OK/Cancel, and
// Yes/No/Cancel.
type Alerter interface {
	ShowOK(title, message string)
	ShowOKCancel(title, message string) bool
	ShowYesNoCancel(title, message string) int
}

// Handlers bundles one instance of each effect interface, held by the
// evaluator for the lifetime of a single program run (spec.md 5).
type Handlers struct {
	Console   Console
	Logger    Logger
	Clipboard Clipboard
	Alert     Alerter
}
