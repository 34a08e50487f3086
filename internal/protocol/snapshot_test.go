package protocol

import (
	"testing"

	"github.com/buswatch/buslights/internal/strand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	snap := Snapshot{
		Shift:       ShiftNightWatch,
		Event:       EventCrash,
		EventActive: true,
		IdleType:    IdleSlow,
		Pixels: []strand.Color{
			strand.NewColor(21, 115, 182),
			strand.NewColor(255, 255, 255),
			strand.NewColor(21, 115, 182),
		},
	}

	b := make([]byte, snap.EncodeSize())
	snap.Encode(b)

	var got Snapshot
	require.NoError(t, got.Decode(b))
	assert.Equal(t, snap, got)
}

func TestSnapshotRoundTripIdle(t *testing.T) {
	snap := Snapshot{
		Shift:    ShiftInvalid,
		Event:    EventPoint,
		IdleType: IdleStatic,
		Pixels:   []strand.Color{0, 0},
	}

	b := make([]byte, snap.EncodeSize())
	snap.Encode(b)

	var got Snapshot
	require.NoError(t, got.Decode(b))
	assert.False(t, got.EventActive)
	assert.Equal(t, ShiftInvalid, got.Shift)
	assert.Equal(t, []strand.Color{0, 0}, got.Pixels)
}

func TestSnapshotDecodeTooShort(t *testing.T) {
	var s Snapshot
	assert.Error(t, s.Decode([]byte{0, 0, 0}))
}

func TestSnapshotDecodeTruncatedPixels(t *testing.T) {
	snap := Snapshot{IdleType: IdleStatic, Pixels: []strand.Color{0xff0000, 0x00ff00}}
	b := make([]byte, snap.EncodeSize())
	snap.Encode(b)

	var got Snapshot
	assert.Error(t, got.Decode(b[:len(b)-2]))
}
