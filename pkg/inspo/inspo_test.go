package inspo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkosyakov/midinspo/pkg/midi"
)

func testFeatures() *midi.Features {
	return &midi.Features{
		FormatType:          1,
		TracksDeclared:      2,
		Division:            480,
		TrackLengths:        []int{8, 4},
		NoteOnEvents:        []int{3, 1},
		DistinctStatusBytes: []int{0x80, 0x90},
		FileSize:            42,
		TracksObserved:      2,
		TrackConsistency:    true,
		Density:             2,
	}
}

func TestDescribeStructure(t *testing.T) {
	g := New(testFeatures(), nil)
	assert.Equal(t, "Format 1 with 2 tracks; Timing division: 480; Average note density: 2.00", g.DescribeStructure())
}

func TestDescribeStructureSingularInconsistent(t *testing.T) {
	f := testFeatures()
	f.TracksObserved = 1
	f.TrackConsistency = false

	g := New(f, nil)
	out := g.DescribeStructure()
	assert.Contains(t, out, "Format 1 with 1 track;")
	assert.Contains(t, out, "Declared track count does not match observed data")
}

func TestSuggestedFocus(t *testing.T) {
	tests := []struct {
		density float64
		want    string
	}{
		{1, "Consider adding rhythmic ostinatos to increase energy."},
		{20, "Try introducing sparse breakdowns for contrast."},
		{8, "Balance momentum with space by alternating busy and calm sections."},
	}

	for _, tt := range tests {
		f := testFeatures()
		f.Density = tt.density
		assert.Equal(t, tt.want, New(f, nil).SuggestedFocus())
	}
}

func TestGrooveTip(t *testing.T) {
	g := New(testFeatures(), nil)
	assert.Equal(t, "Experiment with layering tuned percussion or found sounds for unique grooves.", g.GrooveTip())

	f := testFeatures()
	f.DistinctStatusBytes = []int{0x80, 0x90, 0x99}
	g = New(f, nil)
	assert.Equal(t, "Highlight the percussion on channel 9 with subtle dynamics.", g.GrooveTip())
}

func TestIdeasDeterministic(t *testing.T) {
	a, err := New(testFeatures(), rand.New(rand.NewSource(7))).Ideas(Options{})
	require.NoError(t, err)
	b, err := New(testFeatures(), rand.New(rand.NewSource(7))).Ideas(Options{})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Contains(t, a, "🎼 MIDI Snapshot")
	assert.Contains(t, a, "✨ Creative Directions")
}

func TestIdeasOptionalSections(t *testing.T) {
	g := New(testFeatures(), rand.New(rand.NewSource(1)))

	plain, err := g.Ideas(Options{})
	require.NoError(t, err)
	assert.NotContains(t, plain, "📊")

	withJSON, err := g.Ideas(Options{ShowJSON: true})
	require.NoError(t, err)
	assert.Contains(t, withJSON, "📊 Feature JSON")
	assert.Contains(t, withJSON, `"format_type"`)

	// ShowFeatures wins over ShowJSON
	withBoth, err := g.Ideas(Options{ShowFeatures: true, ShowJSON: true})
	require.NoError(t, err)
	assert.Contains(t, withBoth, "📊 Feature Summary")
	assert.NotContains(t, withBoth, "📊 Feature JSON")
}
