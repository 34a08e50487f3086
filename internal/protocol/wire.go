package protocol

// Opcode bytes of the serial command protocol. Every command is one opcode
// byte followed by that opcode's fixed operand bytes.
const (
	OpStartEvent   byte = 'E'
	OpStopEvent    byte = 'X'
	OpSetIdle      byte = 'I'
	OpUpdateConfig byte = 'U'
)

// Shift selects the idle color identity of the strand.
type Shift uint8

const (
	ShiftDawnGuard Shift = iota
	ShiftAlphaFlight
	ShiftNightWatch
	ShiftZetaShift
	ShiftOmegaShift
	ShiftInvalid
)

func ShiftFromWire(b byte) Shift {
	switch b {
	case '0':
		return ShiftDawnGuard
	case '1':
		return ShiftAlphaFlight
	case '2':
		return ShiftNightWatch
	case '3':
		return ShiftZetaShift
	case '4':
		return ShiftOmegaShift
	}
	return ShiftInvalid
}

func (s Shift) Wire() byte {
	if s >= ShiftInvalid {
		return 0
	}
	return byte('0' + s)
}

func (s Shift) String() string {
	switch s {
	case ShiftDawnGuard:
		return "DawnGuard"
	case ShiftAlphaFlight:
		return "AlphaFlight"
	case ShiftNightWatch:
		return "NightWatch"
	case ShiftZetaShift:
		return "ZetaShift"
	case ShiftOmegaShift:
		return "OmegaShift"
	}
	return "Invalid"
}

// Event identifies a short animation triggered by the host.
type Event uint8

const (
	EventPoint Event = iota
	EventCrash
	EventBusStop
	EventBugSplat
	EventInvalid
)

func EventFromWire(b byte) Event {
	switch b {
	case '0':
		return EventPoint
	case '1':
		return EventCrash
	case '2':
		return EventBusStop
	case '3':
		return EventBugSplat
	}
	return EventInvalid
}

func (e Event) Wire() byte {
	if e >= EventInvalid {
		return 0
	}
	return byte('0' + e)
}

func (e Event) String() string {
	switch e {
	case EventPoint:
		return "Point"
	case EventCrash:
		return "Crash"
	case EventBusStop:
		return "BusStop"
	case EventBugSplat:
		return "BugSplat"
	}
	return "Invalid"
}

// ConfigKey names a runtime-tunable setting.
type ConfigKey uint8

const (
	KeyIdleType ConfigKey = iota
	KeyInvalid
)

func ConfigKeyFromWire(b byte) ConfigKey {
	if b == 't' {
		return KeyIdleType
	}
	return KeyInvalid
}

func (k ConfigKey) Wire() byte {
	if k == KeyIdleType {
		return 't'
	}
	return 0
}

// IdleType controls how the idle pattern moves along the strand.
type IdleType uint8

const (
	IdleOff IdleType = iota
	IdleStatic
	IdleSlow
	IdleFast
	IdleInvalid
)

func IdleTypeFromWire(b byte) IdleType {
	switch b {
	case '0':
		return IdleOff
	case '1':
		return IdleStatic
	case '2':
		return IdleSlow
	case '3':
		return IdleFast
	}
	return IdleInvalid
}

func (t IdleType) Wire() byte {
	if t >= IdleInvalid {
		return 0
	}
	return byte('0' + t)
}

func (t IdleType) String() string {
	switch t {
	case IdleOff:
		return "Off"
	case IdleStatic:
		return "Static"
	case IdleSlow:
		return "Slow"
	case IdleFast:
		return "Fast"
	}
	return "Invalid"
}
