package input

// Motion identifies a fixed-step relative move of the rectangle
type Motion uint8

const (
	MotionNone Motion = iota
	MotionUp
	MotionDown
	MotionLeft
	MotionRight
)

// Directional key codes (evdev), the only bound keys
const (
	KeyCodeUp    uint32 = 103
	KeyCodeDown  uint32 = 108
	KeyCodeLeft  uint32 = 105
	KeyCodeRight uint32 = 106
)

// Pointer button codes (evdev)
const (
	BtnLeft   uint32 = 272
	BtnRight  uint32 = 273
	BtnMiddle uint32 = 274
)

// KeyTable maps raw key codes to motions. Codes absent from the table
// are no-ops.
type KeyTable map[uint32]Motion

// DefaultKeyTable returns the default directional bindings
func DefaultKeyTable() KeyTable {
	return KeyTable{
		KeyCodeUp:    MotionUp,
		KeyCodeDown:  MotionDown,
		KeyCodeLeft:  MotionLeft,
		KeyCodeRight: MotionRight,
	}
}

// Clone returns an independent copy of the table
func (kt KeyTable) Clone() KeyTable {
	c := make(KeyTable, len(kt))
	for k, v := range kt {
		c[k] = v
	}
	return c
}

// ButtonName returns a human-readable pointer button name for diagnostics
func ButtonName(code uint32) string {
	switch code {
	case BtnLeft:
		return "Left"
	case BtnRight:
		return "Right"
	case BtnMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}
