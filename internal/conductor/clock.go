package conductor

import (
	"time"

	"github.com/buswatch/buslights/internal/protocol"
)

// The run is scheduled on Pacific time regardless of where the strand
// hangs. Fall back to a fixed offset if the zone database is missing.
var pacific *time.Location

func init() {
	var err error
	pacific, err = time.LoadLocation("America/Los_Angeles")
	if err != nil {
		pacific = time.FixedZone("PST", -8*60*60)
	}
}

// WallClockShift maps an instant to the shift on duty at that time.
func WallClockShift(now time.Time) protocol.Shift {
	switch h := now.In(pacific).Hour(); {
	case h < 6:
		return protocol.ShiftZetaShift
	case h < 12:
		return protocol.ShiftDawnGuard
	case h < 18:
		return protocol.ShiftAlphaFlight
	default:
		return protocol.ShiftNightWatch
	}
}

// ResolveShift combines the omega flag with the wall clock. An unknown
// flag keeps a running omega shift alive rather than bouncing back to the
// schedule on a single bad fetch.
func ResolveShift(flag OmegaFlag, prev protocol.Shift, now time.Time) protocol.Shift {
	if flag == OmegaOn {
		return protocol.ShiftOmegaShift
	}
	if flag == OmegaUnknown && prev == protocol.ShiftOmegaShift {
		return protocol.ShiftOmegaShift
	}
	return WallClockShift(now)
}
