package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkosyakov/midinspo/pkg/midi"
)

func TestCorpusSummary(t *testing.T) {
	s := new(corpusSummary)
	assert.Zero(t, s.meanDensity())

	s.add(&result{name: "a.mid", features: &midi.Features{
		TracksObserved: 2,
		NoteOnEvents:   []int{3, 1},
		FileSize:       30,
		Density:        2,
	}})
	s.add(&result{name: "b.mid", features: &midi.Features{
		TracksObserved: 1,
		NoteOnEvents:   []int{4},
		FileSize:       22,
		Density:        4,
	}})

	assert.Equal(t, 2, s.files)
	assert.Equal(t, 3, s.tracks)
	assert.Equal(t, 8, s.noteOns)
	assert.Equal(t, int64(52), s.bytes)
	assert.Equal(t, 3.0, s.meanDensity())
}
