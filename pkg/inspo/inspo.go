// Package inspo turns a midi feature record into natural-language
// inspiration prompts.
package inspo

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pkosyakov/midinspo/pkg/midi"
)

var creativeDirections = []string{
	"Transform the harmonic rhythm by extending progressions over multiple bars.",
	"Use call-and-response motifs between melodic voices for dialogue.",
	"Swap a track's instrumentation with an unexpected timbre to spark a new vibe.",
}

// Options select the optional sections of the generated outline. ShowFeatures
// takes precedence when both are set.
type Options struct {
	ShowFeatures bool
	ShowJSON     bool
}

// Generator converts one feature record into inspiration text. The random
// source only picks among fixed phrasings and is never mutated elsewhere.
type Generator struct {
	features *midi.Features
	rng      *rand.Rand
}

// New returns a generator over features. A nil rng gets a self-seeded source.
func New(features *midi.Features, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{features: features, rng: rng}
}

// DescribeStructure summarizes the file's shape in one line.
func (g *Generator) DescribeStructure() string {
	f := g.features

	plural := "s"
	if f.TracksObserved == 1 {
		plural = ""
	}

	segments := []string{
		fmt.Sprintf("Format %d with %d track%s", f.FormatType, f.TracksObserved, plural),
		fmt.Sprintf("Timing division: %d", f.Division),
		fmt.Sprintf("Average note density: %.2f", f.Density),
	}
	if !f.TrackConsistency {
		segments = append(segments, "Declared track count does not match observed data")
	}

	return strings.Join(segments, "; ")
}

// SuggestedFocus proposes an arrangement direction from the note density.
func (g *Generator) SuggestedFocus() string {
	switch {
	case g.features.Density < 4:
		return "Consider adding rhythmic ostinatos to increase energy."
	case g.features.Density > 16:
		return "Try introducing sparse breakdowns for contrast."
	default:
		return "Balance momentum with space by alternating busy and calm sections."
	}
}

// GrooveTip points at the percussion channel when note-ons were seen there.
func (g *Generator) GrooveTip() string {
	for _, status := range g.features.DistinctStatusBytes {
		if status&0xF0 == 0x90 && status&0x0F == 9 {
			return "Highlight the percussion on channel 9 with subtle dynamics."
		}
	}
	return "Experiment with layering tuned percussion or found sounds for unique grooves."
}

// Ideas assembles the full inspiration outline.
func (g *Generator) Ideas(opts Options) (string, error) {
	outline := []string{
		"🎼 MIDI Snapshot",
		g.DescribeStructure(),
		"",
		"✨ Creative Directions",
		creativeDirections[g.rng.Intn(len(creativeDirections))],
		g.SuggestedFocus(),
		g.GrooveTip(),
	}

	if opts.ShowFeatures || opts.ShowJSON {
		title := "📊 Feature JSON"
		if opts.ShowFeatures {
			title = "📊 Feature Summary"
		}
		dump, err := g.features.JSON()
		if err != nil {
			return "", err
		}
		outline = append(outline, "", title, dump)
	}

	return strings.TrimSpace(strings.Join(outline, "\n")), nil
}
