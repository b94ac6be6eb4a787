package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"en", English, true},
		{"AR", Arabic, true},
		{" ar-EG ", Arabic, true},
		{"en_US", English, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Arabic, Resolve("", "de", "ar"))
	assert.Equal(t, English, Resolve("en", "ar"))
	assert.Equal(t, Default, Resolve())
	assert.Equal(t, Default, Resolve("xx"))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "rtl", Arabic.Dir())
	assert.Equal(t, "ltr", English.Dir())
	assert.True(t, Arabic.IsRTL())
	assert.False(t, English.IsRTL())
	assert.Equal(t, "ltr", Lang("zz").Dir())
}

func TestPick(t *testing.T) {
	assert.Equal(t, "Dates", English.Pick("Dates", "تمور"))
	assert.Equal(t, "تمور", Arabic.Pick("Dates", "تمور"))
	assert.Equal(t, "Dates", Arabic.Pick("Dates", "  "))
	assert.Equal(t, "تمور", English.Pick("", "تمور"))
}

func TestLocaleTables(t *testing.T) {
	for _, lang := range Supported {
		assert.Len(t, lang.MonthNames(), 12)
		assert.Len(t, lang.MonthShortNames(), 12)
		for _, state := range []string{"peak", "available", "limited", "iqf", "off"} {
			assert.NotEqual(t, state, lang.StateLabel(state), "%s/%s", lang, state)
		}
	}
	assert.Equal(t, "January", English.MonthNames()[0])
	assert.Equal(t, "ديسمبر", Arabic.MonthNames()[11])
	assert.Equal(t, "unknown", English.StateLabel("unknown"))
}

func TestMonthNamesReturnsCopy(t *testing.T) {
	names := English.MonthNames()
	names[0] = "changed"
	assert.Equal(t, "January", English.MonthNames()[0])
}

func TestT(t *testing.T) {
	assert.Equal(t, "We received your request RFQ-1234", English.T("rfq_ack_subject", "ref", "RFQ-1234"))
	assert.Equal(t, "تم استلام طلبك RFQ-1234", Arabic.T("rfq_ack_subject", "ref", "RFQ-1234"))
	assert.Equal(t, "missing_key", Arabic.T("missing_key"))
}
