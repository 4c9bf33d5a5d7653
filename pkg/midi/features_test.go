package midi

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistinctStatusBytesSorted(t *testing.T) {
	// repeated and out-of-order statuses across two tracks
	f, err := extract(smfBytes(1, 2, 480,
		[]byte{
			0x00, 0x99, 0x24, 0x7F,
			0x00, 0x90, 0x3C, 0x40,
			0x00, 0x90, 0x3E, 0x40,
		},
		[]byte{
			0x00, 0x90, 0x3C, 0x40,
			0x00, 0x80, 0x3C, 0x00,
		},
	))
	require.NoError(t, err)

	assert.Equal(t, []int{0x80, 0x90, 0x99}, f.DistinctStatusBytes)
}

func TestFeaturesJSONKeyOrder(t *testing.T) {
	f, err := extract(smfBytes(1, 1, 480, []byte{0x00, 0x90, 0x3C, 0x40}))
	require.NoError(t, err)

	out, err := f.JSON()
	require.NoError(t, err)

	keys := []string{
		"density",
		"distinct_status_bytes",
		"division",
		"file_size",
		"format_type",
		"note_on_events",
		"track_consistency",
		"track_lengths",
		"tracks_declared",
		"tracks_observed",
	}

	last := -1
	for _, key := range keys {
		idx := strings.Index(out, `"`+key+`"`)
		require.NotEqual(t, -1, idx, "missing key %q", key)
		assert.Greater(t, idx, last, "key %q out of order", key)
		last = idx
	}
}

func TestFeaturesJSONRoundTrip(t *testing.T) {
	f, err := extract(smfBytes(0, 1, 96, []byte{0x00, 0x90, 0x3C, 0x40}))
	require.NoError(t, err)

	out, err := f.JSON()
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &m))

	assert.Equal(t, float64(0), m["format_type"])
	assert.Equal(t, float64(96), m["division"])
	assert.Equal(t, true, m["track_consistency"])
	assert.Equal(t, float64(1), m["density"])
	assert.Equal(t, []interface{}{float64(4)}, m["track_lengths"])
}

func TestFeaturesJSONEmptyLists(t *testing.T) {
	f, err := extract(headerBytes(2, 0, 480))
	require.NoError(t, err)

	out, err := f.JSON()
	require.NoError(t, err)

	assert.Contains(t, out, `"track_lengths": []`)
	assert.Contains(t, out, `"note_on_events": []`)
	assert.Contains(t, out, `"distinct_status_bytes": []`)
	assert.NotContains(t, out, "null")
}
