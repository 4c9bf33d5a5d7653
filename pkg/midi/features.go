package midi

import (
	"encoding/json"
	"sort"
)

// Features is the immutable record ExtractFeatures produces: the header
// fields, per-track statistics in chunk order, and the derived metrics.
type Features struct {
	FormatType          uint16
	TracksDeclared      uint16
	Division            uint16
	TrackLengths        []int
	NoteOnEvents        []int
	DistinctStatusBytes []int
	FileSize            int64
	TracksObserved      int
	TrackConsistency    bool
	Density             float64
}

func newFeatures(h Header, tracks []trackStats, fileSize int64) *Features {
	f := &Features{
		FormatType:          h.Format,
		TracksDeclared:      h.TracksDeclared,
		Division:            h.Division,
		TrackLengths:        make([]int, 0, len(tracks)),
		NoteOnEvents:        make([]int, 0, len(tracks)),
		DistinctStatusBytes: []int{},
		FileSize:            fileSize,
		TracksObserved:      len(tracks),
	}

	distinct := make(map[byte]struct{})
	noteOns := 0
	for _, t := range tracks {
		f.TrackLengths = append(f.TrackLengths, t.byteLength)
		f.NoteOnEvents = append(f.NoteOnEvents, t.noteOns)
		noteOns += t.noteOns
		for s := range t.statuses {
			distinct[s] = struct{}{}
		}
	}

	for s := range distinct {
		f.DistinctStatusBytes = append(f.DistinctStatusBytes, int(s))
	}
	sort.Ints(f.DistinctStatusBytes)

	f.TrackConsistency = f.TracksObserved == int(f.TracksDeclared)
	if f.TracksObserved > 0 {
		f.Density = float64(noteOns) / float64(f.TracksObserved)
	}

	return f
}

// JSON renders the record with keys in lexicographic order, for display and
// debug collaborators that expect a stable layout.
func (f *Features) JSON() (string, error) {
	m := map[string]interface{}{
		"format_type":           f.FormatType,
		"tracks_declared":       f.TracksDeclared,
		"division":              f.Division,
		"track_lengths":         f.TrackLengths,
		"note_on_events":        f.NoteOnEvents,
		"distinct_status_bytes": f.DistinctStatusBytes,
		"file_size":             f.FileSize,
		"tracks_observed":       f.TracksObserved,
		"track_consistency":     f.TrackConsistency,
		"density":               f.Density,
	}

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
