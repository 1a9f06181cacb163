package domain

import "time"

// SelectionPhase is the phase of a date range selection session
type SelectionPhase string

const (
	PhaseEmpty     SelectionPhase = "empty"      // ни одна дата не выбрана
	PhaseAnchorSet SelectionPhase = "anchor_set" // выбран только заезд
	PhaseRangeSet  SelectionPhase = "range_set"  // выбраны заезд и выезд
)

// DayStateLookup resolves the availability state of a calendar day.
// The selection machine consults it instead of reading any ambient state,
// which keeps the machine a pure function of its inputs.
type DayStateLookup func(day time.Time) DayState

// Selection is the ephemeral state of one date-range selection session.
// It carries no hidden state beyond the two dates and is re-derivable from
// the click history.
type Selection struct {
	CheckIn  *time.Time
	CheckOut *time.Time
}

// NewSelection returns an empty selection
func NewSelection() Selection {
	return Selection{}
}

// Phase returns the current phase of the selection
func (s Selection) Phase() SelectionPhase {
	switch {
	case s.CheckIn == nil:
		return PhaseEmpty
	case s.CheckOut == nil:
		return PhaseAnchorSet
	default:
		return PhaseRangeSet
	}
}

// IsComplete returns true if both dates are selected
func (s Selection) IsComplete() bool {
	return s.Phase() == PhaseRangeSet
}

// Reset returns the selection to the empty state (e.g. on dialog close)
func (s Selection) Reset() Selection {
	return Selection{}
}

// ClickDay applies one day click to the selection and returns the next state.
//
// Transition table:
//   - клик по past/booked дню игнорируется в любой фазе;
//   - Empty -> AnchorSet (клик становится датой заезда);
//   - AnchorSet, клик не позже якоря -> AnchorSet с новым якорем;
//   - AnchorSet, клик позже якоря и все дни [заезд, клик] свободны -> RangeSet;
//   - AnchorSet, в диапазоне есть занятый день -> AnchorSet с новым якорем
//     (попытка диапазона отклоняется молча, это не ошибка);
//   - RangeSet, любой клик -> AnchorSet с новым якорем (новый выбор).
func (s Selection) ClickDay(clicked time.Time, lookup DayStateLookup) Selection {
	day := DateOnly(clicked)

	if state := lookup(day); state == DayPast || state == DayBooked {
		return s
	}

	switch s.Phase() {
	case PhaseEmpty:
		return Selection{CheckIn: &day}

	case PhaseAnchorSet:
		anchor := DateOnly(*s.CheckIn)
		if !day.After(anchor) {
			return Selection{CheckIn: &day}
		}
		if !rangeIsFree(anchor, day, lookup) {
			return Selection{CheckIn: &day}
		}
		return Selection{CheckIn: s.CheckIn, CheckOut: &day}

	default: // PhaseRangeSet
		return Selection{CheckIn: &day}
	}
}

// rangeIsFree проверяет, что все дни [from, to] включительно свободны.
// Прошедших дней внутри диапазона быть не может: якорь уже прошёл проверку
// на кликабельность, а все дни между ним и кликом не раньше якоря.
func rangeIsFree(from, to time.Time, lookup DayStateLookup) bool {
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if lookup(d) == DayBooked {
			return false
		}
	}
	return true
}
