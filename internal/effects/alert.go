package effects

import "github.com/sqweek/dialog"

// SystemAlerter wraps github.com/sqweek/dialog to show native modal
// dialogs. Button semantics mirror original_source/cpp/src/builtins/
// alert.cpp's show_dialog: OK-only, OK/Cancel, and Yes/No/Cancel.
type SystemAlerter struct{}

// NewSystemAlerter creates an Alerter backed by native OS dialogs.
func NewSystemAlerter() *SystemAlerter {
	return &SystemAlerter{}
}

func (SystemAlerter) ShowOK(title, message string) {
	dialog.Message("%s", message).Title(title).Info()
}

func (SystemAlerter) ShowOKCancel(title, message string) bool {
	return dialog.Message("%s", message).Title(title).YesNo()
}

// ShowYesNoCancel maps onto 0 (yes), 1 (no), 2 (cancel). dialog's
// MsgBuilder only exposes a two-button YesNo prompt, so cancel (2) is
// unreachable through this default handler; a host embedding clipscript
// with a richer dialog toolkit can supply its own Alerter to recover the
// third button, same as original_source's own Linux build of show_dialog
// falls back to a reduced button set.
func (SystemAlerter) ShowYesNoCancel(title, message string) int {
	if dialog.Message("%s", message).Title(title).YesNo() {
		return 0
	}
	return 1
}
