// Package ui hosts the interactive front-end behind a small capability set,
// keeping the parser and the feature-to-text logic independent of any
// particular presentation toolkit.
package ui

import (
	"math/rand"

	"github.com/pkosyakov/midinspo/pkg/inspo"
	"github.com/pkosyakov/midinspo/pkg/midi"
)

// Capabilities is everything the app needs from a presentation layer.
type Capabilities interface {
	// ChooseFile asks for a midi file. An empty path means the user
	// cancelled; that is not an error.
	ChooseFile() (string, error)
	ShowInfo(title, message string)
	ShowError(title, message string)
	Display(text string)
}

// App drives one choose-analyze-display round trip over the capabilities.
type App struct {
	caps Capabilities
	rng  *rand.Rand

	ShowFeatures bool
	ShowJSON     bool
}

func NewApp(caps Capabilities) *App {
	return &App{caps: caps}
}

// WithRand sets the phrasing-selection source, mainly for tests.
func (a *App) WithRand(rng *rand.Rand) *App {
	a.rng = rng
	return a
}

// Generate extracts features from path and displays the generated ideas.
// Presentation-level feedback goes through the capabilities; nothing is
// logged or printed directly.
func (a *App) Generate(path string) {
	if path == "" {
		a.caps.ShowInfo("No file selected", "Choose a MIDI file to analyze.")
		return
	}

	features, err := midi.ExtractFeatures(path)
	if err != nil {
		a.caps.ShowError("Feature extraction failed", err.Error())
		return
	}

	generator := inspo.New(features, a.rng)
	ideas, err := generator.Ideas(inspo.Options{
		ShowFeatures: a.ShowFeatures,
		ShowJSON:     a.ShowJSON,
	})
	if err != nil {
		a.caps.ShowError("Feature extraction failed", err.Error())
		return
	}

	a.caps.Display(ideas)
}

// Run performs one file-dialog round trip.
func (a *App) Run() error {
	path, err := a.caps.ChooseFile()
	if err != nil {
		return err
	}
	a.Generate(path)
	return nil
}
