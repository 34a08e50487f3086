package conductor

import "github.com/buswatch/buslights/internal/protocol"

// Diff returns the events implied by the stat movement between two
// consecutive samples. Totals only ever grow during a run, so a higher
// counter means at least one occurrence since the previous poll.
func Diff(prev, curr RunStats) []protocol.Event {
	var events []protocol.Event
	if curr.Points > prev.Points {
		events = append(events, protocol.EventPoint)
	}
	if curr.Crashes > prev.Crashes {
		events = append(events, protocol.EventCrash)
	}
	if curr.BusStops > prev.BusStops {
		events = append(events, protocol.EventBusStop)
	}
	if curr.BugSplats > prev.BugSplats {
		events = append(events, protocol.EventBugSplat)
	}
	return events
}
