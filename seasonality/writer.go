package seasonality

// BuildRecord sanitizes an admin-submitted payload into the canonical record.
// The payload is nested when it has a fresh key or an object-valued iqf key;
// otherwise the whole payload is read as the flat layout. The second return
// value reports which of the two was recognized.
//
// Out-of-range, duplicate and non-integer months are dropped silently.
func BuildRecord(payload map[string]any) (Record, bool) {
	nested := isNested(payload)

	fresh := payload
	iqfValue := payload["iqf"]
	if nested {
		fresh, _ = payload["fresh"].(map[string]any)
		if _, ok := payload["iqf"]; !ok && fresh != nil {
			iqfValue = fresh["iqf"]
		}
	}

	overlay := readIQF(iqfValue)
	return Record{
		Fresh: Bucket{
			Peak:      SanitizeMonths(fresh["peak"]),
			Available: SanitizeMonths(fresh["available"]),
			Limited:   SanitizeMonths(fresh["limited"]),
			Off:       SanitizeMonths(fresh["off"]),
			IQF:       overlay.EffectiveMonths(),
		},
		IQF: overlay,
	}, nested
}
