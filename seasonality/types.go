// Package seasonality owns the per-product monthly availability model: reading
// every historical storage shape, sanitizing admin input into the canonical
// nested record, and collapsing a record into one display state per month.
package seasonality

import "encoding/json"

// State is the single label shown for a month.
type State string

const (
	StatePeak      State = "peak"
	StateAvailable State = "available"
	StateLimited   State = "limited"
	StateIQF       State = "iqf"
	StateOff       State = "off"
)

// States lists every display state in precedence order.
var States = []State{StatePeak, StateAvailable, StateLimited, StateIQF, StateOff}

// Shape identifies which stored layout a record was read from.
type Shape string

const (
	ShapeNone     Shape = "none"
	ShapeFlat     Shape = "flat"
	ShapeNested   Shape = "nested"
	ShapeLanguage Shape = "language"
)

// Bucket holds the four fresh lists plus the iqf overlay list.
type Bucket struct {
	Peak      []int `json:"peak"`
	Available []int `json:"available"`
	Limited   []int `json:"limited"`
	Off       []int `json:"off"`
	IQF       []int `json:"iqf"`
}

// EmptyBucket returns a bucket whose lists are empty rather than nil, so it
// serializes as [] everywhere.
func EmptyBucket() Bucket {
	return Bucket{
		Peak:      []int{},
		Available: []int{},
		Limited:   []int{},
		Off:       []int{},
		IQF:       []int{},
	}
}

// IQF is the frozen-form overlay as stored: either year-round or a month list.
type IQF struct {
	YearRound bool  `json:"year_round"`
	Months    []int `json:"months"`
}

// EffectiveMonths expands a year-round overlay to all twelve months.
func (i IQF) EffectiveMonths() []int {
	if i.YearRound {
		return AllMonths()
	}
	if i.Months == nil {
		return []int{}
	}
	return i.Months
}

// Record is the canonical persisted layout. Writers only ever emit this.
type Record struct {
	Fresh Bucket `json:"fresh"`
	IQF   IQF    `json:"iqf"`
}

// JSON serializes the record for the product's seasonality column.
func (r Record) JSON() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Fallback reasons reported when normalization could not read structured months.
const (
	ReasonAbsent      = "absent"
	ReasonEmpty       = "empty"
	ReasonUnparseable = "unparseable"
	ReasonNotObject   = "not_object"
	ReasonNoLanguage  = "no_language_content"
	ReasonTextNote    = "text_note"
)

// Result is the outcome of normalizing a stored value. Defaulted is set when the
// value could not be read and the empty bucket was substituted; Reason says why.
type Result struct {
	Bucket    Bucket `json:"bucket"`
	IQF       IQF    `json:"iqf"`
	Shape     Shape  `json:"shape"`
	Defaulted bool   `json:"defaulted"`
	Reason    string `json:"reason,omitempty"`
}

// DisplayStates collapses the result into one label per month, January first.
func (r Result) DisplayStates() [12]State {
	return r.Bucket.DisplayStates()
}

// Record re-expresses the normalized result in the canonical nested layout.
func (r Result) Record() Record {
	months := r.IQF.Months
	if r.IQF.YearRound || months == nil {
		months = []int{}
	}
	return Record{
		Fresh: r.Bucket,
		IQF:   IQF{YearRound: r.IQF.YearRound, Months: months},
	}
}
