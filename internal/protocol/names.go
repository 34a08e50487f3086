package protocol

import "strings"

// ParseShift resolves a shift by its display name, case-insensitively.
func ParseShift(name string) (Shift, bool) {
	for s := ShiftDawnGuard; s < ShiftInvalid; s++ {
		if strings.EqualFold(name, s.String()) {
			return s, true
		}
	}
	return ShiftInvalid, false
}

func ParseEvent(name string) (Event, bool) {
	for e := EventPoint; e < EventInvalid; e++ {
		if strings.EqualFold(name, e.String()) {
			return e, true
		}
	}
	return EventInvalid, false
}

func ParseIdleType(name string) (IdleType, bool) {
	for t := IdleOff; t < IdleInvalid; t++ {
		if strings.EqualFold(name, t.String()) {
			return t, true
		}
	}
	return IdleInvalid, false
}
