package seasonality

import (
	"encoding/json"
	"strings"
)

// Normalize reads a product's stored seasonality value in any of its
// historical layouts and returns the language-scoped bucket. It never fails:
// absent, malformed or unexpected data comes back as the empty bucket with
// Defaulted set.
func Normalize(raw *string, lang string) Result {
	if raw == nil {
		return defaulted(ShapeNone, ReasonAbsent)
	}
	return NormalizeString(*raw, lang)
}

// NormalizeString is Normalize for a non-nullable value.
func NormalizeString(raw string, lang string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaulted(ShapeNone, ReasonEmpty)
	}

	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return defaulted(ShapeNone, ReasonUnparseable)
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return defaulted(ShapeNone, ReasonNotObject)
	}
	return normalizeObject(obj, lang, true)
}

func normalizeObject(obj map[string]any, lang string, unwrapLanguage bool) Result {
	if isNested(obj) {
		return fromNested(obj)
	}
	if unwrapLanguage && hasLanguageKeys(obj) {
		return fromLanguageWrapped(obj, lang)
	}
	return fromFlat(obj)
}

// isNested reports whether obj uses the fresh/iqf layout. A list-valued iqf on
// its own is part of the flat layout.
func isNested(obj map[string]any) bool {
	if _, ok := obj["fresh"]; ok {
		return true
	}
	_, iqfObject := obj["iqf"].(map[string]any)
	return iqfObject
}

func hasLanguageKeys(obj map[string]any) bool {
	_, en := obj["en"]
	_, ar := obj["ar"]
	return en || ar
}

func fromNested(obj map[string]any) Result {
	fresh, _ := obj["fresh"].(map[string]any)

	overlay := readIQF(obj["iqf"])
	iqfMonths := SanitizeMonths(fresh["iqf"])
	if len(iqfMonths) == 0 {
		iqfMonths = overlay.EffectiveMonths()
	}
	if _, hasTop := obj["iqf"]; !hasTop {
		overlay = IQF{Months: iqfMonths}
	}

	return Result{
		Bucket: Bucket{
			Peak:      SanitizeMonths(fresh["peak"]),
			Available: SanitizeMonths(fresh["available"]),
			Limited:   SanitizeMonths(fresh["limited"]),
			Off:       SanitizeMonths(fresh["off"]),
			IQF:       iqfMonths,
		},
		IQF:   overlay,
		Shape: ShapeNested,
	}
}

func fromLanguageWrapped(obj map[string]any, lang string) Result {
	selected, ok := pickLanguage(obj, lang)
	if !ok {
		return defaulted(ShapeLanguage, ReasonNoLanguage)
	}

	inner, ok := selected.(map[string]any)
	if !ok {
		// free-text notes were stored per language by some import tooling
		return defaulted(ShapeLanguage, ReasonTextNote)
	}

	result := normalizeObject(inner, lang, false)
	result.Shape = ShapeLanguage
	return result
}

// pickLanguage selects the requested language, then en, then ar.
func pickLanguage(obj map[string]any, lang string) (any, bool) {
	for _, key := range []string{lang, "en", "ar"} {
		if key == "" {
			continue
		}
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func fromFlat(obj map[string]any) Result {
	iqfMonths := SanitizeMonths(obj["iqf"])
	return Result{
		Bucket: Bucket{
			Peak:      SanitizeMonths(obj["peak"]),
			Available: SanitizeMonths(obj["available"]),
			Limited:   SanitizeMonths(obj["limited"]),
			Off:       SanitizeMonths(obj["off"]),
			IQF:       iqfMonths,
		},
		IQF:   IQF{Months: iqfMonths},
		Shape: ShapeFlat,
	}
}

// readIQF interprets the top-level iqf value: a month list, or an object with
// year_round and/or months. Months are dropped when year_round is set.
func readIQF(v any) IQF {
	switch iqf := v.(type) {
	case []any:
		return IQF{Months: SanitizeMonths(iqf)}
	case map[string]any:
		yearRound, _ := iqf["year_round"].(bool)
		if yearRound {
			return IQF{YearRound: true, Months: []int{}}
		}
		return IQF{Months: SanitizeMonths(iqf["months"])}
	default:
		return IQF{Months: []int{}}
	}
}

func defaulted(shape Shape, reason string) Result {
	return Result{
		Bucket:    EmptyBucket(),
		IQF:       IQF{Months: []int{}},
		Shape:     shape,
		Defaulted: true,
		Reason:    reason,
	}
}
