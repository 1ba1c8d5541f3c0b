package dictionary

// Element describes one standard attribute.
type Element struct {
	Tag         Tag
	VR          VR
	Keyword     string
	Description string
	Retired     bool

	// VMMin and VMMax bound the Value Multiplicity. VMMax is Unbounded for
	// open ranges.
	VMMin uint32
	VMMax uint32

	vrKey uint16
}

// Group returns the tag's group number.
func (e Element) Group() uint16 { return e.Tag.Group() }

// ElementNumber returns the tag's element number.
func (e Element) ElementNumber() uint16 { return e.Tag.Element() }

// VRKey returns the packed VR code, see VR.Key.
func (e Element) VRKey() uint16 { return e.vrKey }

// VM returns the multiplicity in compact notation, "1-n" for open ranges.
func (e Element) VM() string { return formatVM(e.VMMin, e.VMMax) }

// AllowsVM reports whether n values fit the element's multiplicity.
func (e Element) AllowsVM(n uint32) bool {
	return n >= e.VMMin && n <= e.VMMax
}

func (e Element) String() string {
	s := e.Tag.String() + " " + string(e.VR) + " " + e.Keyword
	if e.Retired {
		s += " (retired)"
	}
	return s
}

// Definition is one row of the authoring table, in the notation the standard
// publishes.
type Definition struct {
	Group       uint16
	Element     uint16
	VR          VR
	VM          string
	Keyword     string
	Description string
	Retired     bool
}
