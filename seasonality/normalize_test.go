package seasonality

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func allOff() [12]State {
	var states [12]State
	for i := range states {
		states[i] = StateOff
	}
	return states
}

func TestNormalize_EmptyInputs(t *testing.T) {
	cases := map[string]*string{
		"nil":          nil,
		"empty string": strPtr(""),
		"whitespace":   strPtr("   "),
		"empty object": strPtr("{}"),
		"json null":    strPtr("null"),
		"broken json":  strPtr(`{"peak": [1,2`),
		"json array":   strPtr(`[1,2,3]`),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			result := Normalize(raw, "en")

			assert.Empty(t, result.Bucket.Peak)
			assert.Empty(t, result.Bucket.Available)
			assert.Empty(t, result.Bucket.Limited)
			assert.Empty(t, result.Bucket.Off)
			assert.Empty(t, result.Bucket.IQF)
			assert.NotNil(t, result.Bucket.Peak)
			assert.Equal(t, allOff(), result.DisplayStates())
		})
	}
}

func TestNormalize_DefaultedReasons(t *testing.T) {
	assert.Equal(t, ReasonAbsent, Normalize(nil, "en").Reason)
	assert.Equal(t, ReasonEmpty, Normalize(strPtr(""), "en").Reason)
	assert.Equal(t, ReasonUnparseable, Normalize(strPtr("{oops"), "en").Reason)
	assert.Equal(t, ReasonNotObject, Normalize(strPtr(`"peak"`), "en").Reason)

	parsed := Normalize(strPtr(`{"peak":[1]}`), "en")
	assert.False(t, parsed.Defaulted)
	assert.Empty(t, parsed.Reason)
	assert.Equal(t, ShapeFlat, parsed.Shape)
}

func TestNormalize_DedupAndSort(t *testing.T) {
	result := NormalizeString(`{"peak":[5,3,5,1,12,3]}`, "en")
	assert.Equal(t, []int{1, 3, 5, 12}, result.Bucket.Peak)
}

func TestNormalize_DropsOutOfRange(t *testing.T) {
	result := NormalizeString(`{"available":[0,13,"x",5, 2.5, true, null, -1]}`, "en")
	assert.Equal(t, []int{5}, result.Bucket.Available)
}

func TestNormalize_ShapeEquivalence(t *testing.T) {
	flat := NormalizeString(`{"peak":[1,2],"available":[3],"limited":[],"off":[4,5,6,7,8,9,10,11,12],"iqf":[]}`, "en")
	nested := NormalizeString(`{"fresh":{"peak":[1,2],"available":[3],"limited":[],"off":[4,5,6,7,8,9,10,11,12],"iqf":[]},"iqf":{"year_round":false,"months":[]}}`, "en")

	assert.Equal(t, ShapeFlat, flat.Shape)
	assert.Equal(t, ShapeNested, nested.Shape)
	assert.Equal(t, flat.DisplayStates(), nested.DisplayStates())
	assert.Equal(t, flat.Bucket, nested.Bucket)
}

func TestNormalize_PrecedenceLaw(t *testing.T) {
	result := NormalizeString(`{"peak":[1,2,3,4,5,6,7,8,9,10,11,12],"limited":[1,2,3,4,5,6,7,8,9,10,11,12]}`, "en")
	for month, state := range result.DisplayStates() {
		assert.Equal(t, StatePeak, state, "month %d", month+1)
	}

	mixed := NormalizeString(`{"fresh":{"available":[4],"limited":[4,5],"off":[5,6]},"iqf":[5,6]}`, "en")
	states := mixed.DisplayStates()
	assert.Equal(t, StateAvailable, states[3])
	assert.Equal(t, StateLimited, states[4])
	assert.Equal(t, StateIQF, states[5])
	assert.Equal(t, StateOff, states[6])
}

func TestNormalize_IQFResolution(t *testing.T) {
	t.Run("year round object expands to all months", func(t *testing.T) {
		result := NormalizeString(`{"fresh":{"peak":[1]},"iqf":{"year_round":true,"months":[3]}}`, "en")
		assert.Equal(t, AllMonths(), result.Bucket.IQF)
		assert.True(t, result.IQF.YearRound)
		assert.Empty(t, result.IQF.Months)
	})

	t.Run("object months", func(t *testing.T) {
		result := NormalizeString(`{"iqf":{"months":[8,7,7,13]}}`, "en")
		assert.Equal(t, ShapeNested, result.Shape)
		assert.Equal(t, []int{7, 8}, result.Bucket.IQF)
		assert.False(t, result.IQF.YearRound)
	})

	t.Run("fresh iqf list is preferred", func(t *testing.T) {
		result := NormalizeString(`{"fresh":{"iqf":[2]},"iqf":{"months":[9]}}`, "en")
		assert.Equal(t, []int{2}, result.Bucket.IQF)
		assert.Equal(t, []int{9}, result.IQF.Months)
	})

	t.Run("empty fresh iqf falls through to top level", func(t *testing.T) {
		result := NormalizeString(`{"fresh":{"iqf":[]},"iqf":[10,11]}`, "en")
		assert.Equal(t, []int{10, 11}, result.Bucket.IQF)
	})

	t.Run("flat list", func(t *testing.T) {
		result := NormalizeString(`{"peak":[1],"iqf":[4,4,3]}`, "en")
		assert.Equal(t, ShapeFlat, result.Shape)
		assert.Equal(t, []int{3, 4}, result.Bucket.IQF)
		assert.Equal(t, []int{1}, result.Bucket.Peak)
	})
}

func TestNormalize_LanguageWrapped(t *testing.T) {
	raw := `{"en":{"peak":[1,2],"iqf":[7]},"ar":{"peak":[3]}}`

	en := NormalizeString(raw, "en")
	ar := NormalizeString(raw, "ar")

	assert.Equal(t, ShapeLanguage, en.Shape)
	assert.Equal(t, []int{1, 2}, en.Bucket.Peak)
	assert.Equal(t, []int{7}, en.Bucket.IQF)
	assert.Equal(t, []int{3}, ar.Bucket.Peak)
}

func TestNormalize_LanguageFallback(t *testing.T) {
	t.Run("ar falls back to en", func(t *testing.T) {
		result := NormalizeString(`{"en":{"peak":[6],"available":[7]}}`, "ar")
		assert.False(t, result.Defaulted)
		assert.Equal(t, []int{6}, result.Bucket.Peak)
		assert.Equal(t, []int{7}, result.Bucket.Available)
	})

	t.Run("en falls back to ar", func(t *testing.T) {
		result := NormalizeString(`{"ar":{"limited":[2]}}`, "en")
		assert.Equal(t, []int{2}, result.Bucket.Limited)
	})

	t.Run("null value counts as absent", func(t *testing.T) {
		result := NormalizeString(`{"ar":null,"en":{"off":[1]}}`, "ar")
		assert.Equal(t, []int{1}, result.Bucket.Off)
	})

	t.Run("text note is an empty bucket", func(t *testing.T) {
		result := NormalizeString(`{"ar":"متوفر طوال العام","en":{"peak":[1]}}`, "ar")
		assert.True(t, result.Defaulted)
		assert.Equal(t, ReasonTextNote, result.Reason)
		assert.Equal(t, allOff(), result.DisplayStates())
	})
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		`{"peak":[1,2],"available":[3],"off":[4,5],"iqf":[6]}`,
		`{"fresh":{"peak":[12,1,2],"available":[3,11]},"iqf":{"year_round":true}}`,
		`{"fresh":{"iqf":[2]},"iqf":{"months":[9]}}`,
		`{"en":{"limited":[5,5,4]}}`,
		`garbage`,
	}

	for _, raw := range inputs {
		first := NormalizeString(raw, "en")
		encoded, err := first.Record().JSON()
		require.NoError(t, err)

		second := NormalizeString(encoded, "en")
		assert.Equal(t, first.Bucket, second.Bucket, raw)
		assert.Equal(t, first.IQF, second.IQF, raw)
		assert.Equal(t, ShapeNested, second.Shape)
	}
}

func TestNormalize_EndToEndScenario(t *testing.T) {
	raw := `{"fresh":{"peak":[12,1,2],"available":[3,11],"limited":[],"off":[4,5,6,7,8,9,10]},"iqf":{"year_round":false,"months":[6,7,8]}}`
	states := NormalizeString(raw, "en").DisplayStates()

	expected := [12]State{
		StatePeak, StatePeak, StateAvailable, StateOff, StateOff, StateIQF,
		StateIQF, StateIQF, StateOff, StateOff, StateAvailable, StatePeak,
	}
	assert.Equal(t, expected, states)
}

func TestCurrentState(t *testing.T) {
	result := NormalizeString(`{"peak":[3],"iqf":[4]}`, "en")

	march := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	may := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, StatePeak, result.CurrentState(march))
	assert.Equal(t, StateIQF, result.CurrentState(april))
	assert.Equal(t, StateOff, result.CurrentState(may))
	assert.Equal(t, StateOff, StateForMonth(result.DisplayStates(), 13))
	assert.Equal(t, StateOff, StateForMonth(result.DisplayStates(), 0))
}
