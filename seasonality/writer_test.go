package seasonality

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestBuildRecord_Nested(t *testing.T) {
	payload := decodePayload(t, `{
		"fresh": {"peak": [2, 1, 1, 0], "available": [3, "4"], "limited": [], "off": [13]},
		"iqf": {"year_round": false, "months": [8, 7]}
	}`)

	record, nested := BuildRecord(payload)

	assert.True(t, nested)
	assert.Equal(t, []int{1, 2}, record.Fresh.Peak)
	assert.Equal(t, []int{3}, record.Fresh.Available)
	assert.Empty(t, record.Fresh.Limited)
	assert.Empty(t, record.Fresh.Off)
	assert.Equal(t, []int{7, 8}, record.Fresh.IQF)
	assert.Equal(t, IQF{Months: []int{7, 8}}, record.IQF)
}

func TestBuildRecord_Flat(t *testing.T) {
	payload := decodePayload(t, `{"peak": [6], "off": [1, 2], "iqf": [9, 9, 10]}`)

	record, nested := BuildRecord(payload)

	assert.False(t, nested)
	assert.Equal(t, []int{6}, record.Fresh.Peak)
	assert.Equal(t, []int{1, 2}, record.Fresh.Off)
	assert.Equal(t, []int{9, 10}, record.Fresh.IQF)
	assert.Equal(t, []int{9, 10}, record.IQF.Months)
	assert.False(t, record.IQF.YearRound)
}

func TestBuildRecord_FreshIQFWithoutTopLevel(t *testing.T) {
	payload := decodePayload(t, `{"fresh": {"peak": [1], "iqf": [5]}}`)

	record, nested := BuildRecord(payload)

	assert.True(t, nested)
	assert.Equal(t, []int{5}, record.Fresh.IQF)
	assert.Equal(t, []int{5}, record.IQF.Months)
}

func TestBuildRecord_YearRoundReadsBackAsAllMonths(t *testing.T) {
	payload := decodePayload(t, `{"fresh": {"peak": [1]}, "iqf": {"year_round": true, "months": [3]}}`)

	record, _ := BuildRecord(payload)
	assert.True(t, record.IQF.YearRound)
	assert.Empty(t, record.IQF.Months)

	encoded, err := record.JSON()
	require.NoError(t, err)

	result := NormalizeString(encoded, "en")
	assert.Equal(t, AllMonths(), result.Bucket.IQF)

	states := result.DisplayStates()
	assert.Equal(t, StatePeak, states[0])
	for month := 2; month <= MonthsInYear; month++ {
		assert.Equal(t, StateIQF, states[month-1], "month %d", month)
	}
}

func TestBuildRecord_EmptyPayload(t *testing.T) {
	record, nested := BuildRecord(map[string]any{})

	assert.False(t, nested)
	assert.Equal(t, EmptyBucket(), record.Fresh)
	assert.Equal(t, IQF{Months: []int{}}, record.IQF)

	encoded, err := record.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"fresh":{"peak":[],"available":[],"limited":[],"off":[],"iqf":[]},"iqf":{"year_round":false,"months":[]}}`, encoded)
}

func TestBuildRecord_RoundTripsThroughNormalize(t *testing.T) {
	payloads := []string{
		`{"fresh": {"peak": [12, 1, 2], "available": [3, 11], "off": [4, 5, 6, 7, 8, 9, 10]}, "iqf": {"months": [6, 7, 8]}}`,
		`{"peak": [1, 2], "available": [3], "iqf": [4]}`,
		`{"iqf": {"year_round": true}}`,
	}

	for _, raw := range payloads {
		record, _ := BuildRecord(decodePayload(t, raw))
		encoded, err := record.JSON()
		require.NoError(t, err)

		result := NormalizeString(encoded, "ar")
		assert.Equal(t, ShapeNested, result.Shape, raw)
		assert.Equal(t, record.Fresh, result.Bucket, raw)
		assert.Equal(t, record.IQF, result.IQF, raw)
	}
}
