// Package strip describes the ten physical LED strips of the cabinet.
//
// Each strip has a fixed LED count, a configuration section name and a fixed
// place in the shared output region. Buffers are RGB-packed, three bytes per
// LED.
//
//	Index  Section               LEDs  Bytes
//	0      title                 74    222
//	1      upper_left_speaker    12    36
//	2      upper_right_speaker   12    36
//	3      left_wing             56    168
//	4      right_wing            56    168
//	5      ctrl_panel            94    282
//	6      lower_left_speaker    12    36
//	7      lower_right_speaker   12    36
//	8      woofer                14    42
//	9      v_unit                86    258
package strip

import "fmt"

// ID identifies one strip. Valid values are 0 through Count-1.
type ID uint32

const (
	Title ID = iota
	UpperLeftSpeaker
	UpperRightSpeaker
	LeftWing
	RightWing
	CtrlPanel
	LowerLeftSpeaker
	LowerRightSpeaker
	Woofer
	VUnit
)

const (
	// Count is the number of strips.
	Count = 10
	// BytesPerLED is the packed RGB triplet size.
	BytesPerLED = 3
	// TotalLEDs is the sum of every strip's LED count.
	TotalLEDs = 428
	// RegionSize is the size of the shared output region in bytes.
	RegionSize = TotalLEDs * BytesPerLED
	// MaxBytes is the buffer size of the largest strip (ctrl_panel).
	MaxBytes = 94 * BytesPerLED
)

type info struct {
	name   string
	leds   int
	offset int // in LEDs, within the shared region
}

var strips = [Count]info{
	Title:             {"title", 74, 0},
	UpperLeftSpeaker:  {"upper_left_speaker", 12, 74},
	UpperRightSpeaker: {"upper_right_speaker", 12, 86},
	LeftWing:          {"left_wing", 56, 98},
	RightWing:         {"right_wing", 56, 154},
	CtrlPanel:         {"ctrl_panel", 94, 210},
	LowerLeftSpeaker:  {"lower_left_speaker", 12, 304},
	LowerRightSpeaker: {"lower_right_speaker", 12, 316},
	Woofer:            {"woofer", 14, 328},
	VUnit:             {"v_unit", 86, 342},
}

// All returns every strip ID in index order.
func All() [Count]ID {
	var ids [Count]ID
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Valid reports whether id names a strip.
func (id ID) Valid() bool {
	return id < Count
}

// Name returns the configuration section name for the strip.
func (id ID) Name() string {
	if !id.Valid() {
		return fmt.Sprintf("strip(%d)", uint32(id))
	}
	return strips[id].name
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return id.Name()
}

// LEDs returns the strip's LED count, or 0 for an invalid ID.
func (id ID) LEDs() int {
	if !id.Valid() {
		return 0
	}
	return strips[id].leds
}

// ByteLen returns the expected buffer length for the strip.
func (id ID) ByteLen() int {
	return id.LEDs() * BytesPerLED
}

// Offset returns the strip's byte offset within the shared region.
func (id ID) Offset() int {
	if !id.Valid() {
		return 0
	}
	return strips[id].offset * BytesPerLED
}

// ByName looks up a strip by its case-sensitive section name.
func ByName(name string) (ID, bool) {
	for i, s := range strips {
		if s.name == name {
			return ID(i), true
		}
	}
	return 0, false
}
