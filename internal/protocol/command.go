package protocol

type CommandKind uint8

const (
	CmdInvalid CommandKind = iota
	CmdStartEvent
	CmdStopEvent
	CmdSetIdle
	CmdUpdateConfig
)

// Command is one fully parsed protocol command. Only the fields belonging to
// Kind are meaningful.
type Command struct {
	Kind  CommandKind
	Event Event
	Shift Shift
	Key   ConfigKey
	Value IdleType
}

// Encode renders the command back to its wire bytes. Invalid commands have no
// wire form and encode to nil.
func (c Command) Encode() []byte {
	switch c.Kind {
	case CmdStartEvent:
		return []byte{OpStartEvent, c.Event.Wire()}
	case CmdStopEvent:
		return []byte{OpStopEvent}
	case CmdSetIdle:
		return []byte{OpSetIdle, c.Shift.Wire()}
	case CmdUpdateConfig:
		return []byte{OpUpdateConfig, c.Key.Wire(), c.Value.Wire()}
	}
	return nil
}

// ByteSource yields the command stream one byte at a time. ReadByte blocks
// until a byte is ready; it returns an error only when the transport has
// failed, never on a merely empty stream.
type ByteSource interface {
	ReadByte() (byte, error)
}

// Decoder parses commands off a ByteSource. Each Next call consumes exactly
// one opcode byte plus that opcode's operand bytes. Once an opcode has been
// read its operands are awaited unconditionally, so a host that sends an
// opcode must follow through with the operands.
type Decoder struct {
	src ByteSource
}

func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// Next decodes one command. An unrecognized opcode consumes no further bytes
// and yields an Invalid command; a recognized opcode with an unmapped operand
// consumes all of its operand bytes and likewise yields Invalid. The error is
// non-nil only on transport failure.
func (d *Decoder) Next() (Command, error) {
	op, err := d.src.ReadByte()
	if err != nil {
		return Command{}, err
	}

	switch op {
	case OpStartEvent:
		b, err := d.src.ReadByte()
		if err != nil {
			return Command{}, err
		}
		ev := EventFromWire(b)
		if ev == EventInvalid {
			return Command{}, nil
		}
		return Command{Kind: CmdStartEvent, Event: ev}, nil

	case OpStopEvent:
		return Command{Kind: CmdStopEvent}, nil

	case OpSetIdle:
		b, err := d.src.ReadByte()
		if err != nil {
			return Command{}, err
		}
		s := ShiftFromWire(b)
		if s == ShiftInvalid {
			return Command{}, nil
		}
		return Command{Kind: CmdSetIdle, Shift: s}, nil

	case OpUpdateConfig:
		kb, err := d.src.ReadByte()
		if err != nil {
			return Command{}, err
		}
		vb, err := d.src.ReadByte()
		if err != nil {
			return Command{}, err
		}
		key := ConfigKeyFromWire(kb)
		val := IdleTypeFromWire(vb)
		if key == KeyInvalid || val == IdleInvalid {
			return Command{}, nil
		}
		return Command{Kind: CmdUpdateConfig, Key: key, Value: val}, nil
	}

	return Command{}, nil
}
