package ui

import (
	"fmt"
	"io"

	"github.com/sqweek/dialog"
)

// Native backs Capabilities with the platform's file picker and alert
// dialogs. Generated text goes to Out.
type Native struct {
	Out io.Writer
}

func (Native) ChooseFile() (string, error) {
	path, err := dialog.File().
		Title("Select MIDI file").
		Filter("MIDI files", "mid", "midi").
		Load()
	if err == dialog.Cancelled {
		return "", nil
	}
	return path, err
}

func (Native) ShowInfo(title, message string) {
	dialog.Message("%s", message).Title(title).Info()
}

func (Native) ShowError(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}

func (n Native) Display(text string) {
	fmt.Fprintln(n.Out, text)
}
