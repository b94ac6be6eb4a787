package seasonality

import "time"

// DisplayStates picks one label per month, January first. When a month sits in
// several lists the first of peak, available, limited, iqf wins; a month in no
// list is off.
func (b Bucket) DisplayStates() [12]State {
	var states [12]State
	for month := 1; month <= MonthsInYear; month++ {
		states[month-1] = b.stateOf(month)
	}
	return states
}

func (b Bucket) stateOf(month int) State {
	switch {
	case contains(b.Peak, month):
		return StatePeak
	case contains(b.Available, month):
		return StateAvailable
	case contains(b.Limited, month):
		return StateLimited
	case contains(b.IQF, month):
		return StateIQF
	default:
		return StateOff
	}
}

// StateForMonth looks up a month (1-12) in an already collapsed calendar.
func StateForMonth(states [12]State, month int) State {
	if month < 1 || month > MonthsInYear {
		return StateOff
	}
	return states[month-1]
}

// CurrentState is the badge for the month containing now.
func (r Result) CurrentState(now time.Time) State {
	return StateForMonth(r.DisplayStates(), int(now.Month()))
}
