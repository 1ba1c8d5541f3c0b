package dictionary

// VR is a two-character Value Representation code.
type VR string

// VR (Value Representation) constants for DICOM data elements
const (
	AE VR = "AE" // Application Entity
	AS VR = "AS" // Age String
	AT VR = "AT" // Attribute Tag
	CS VR = "CS" // Code String
	DA VR = "DA" // Date
	DS VR = "DS" // Decimal String
	DT VR = "DT" // Date Time
	FL VR = "FL" // Floating Point Single
	FD VR = "FD" // Floating Point Double
	IS VR = "IS" // Integer String
	LO VR = "LO" // Long String
	LT VR = "LT" // Long Text
	OB VR = "OB" // Other Byte
	OD VR = "OD" // Other Double
	OF VR = "OF" // Other Float
	OL VR = "OL" // Other Long
	OV VR = "OV" // Other Very Long
	OW VR = "OW" // Other Word
	PN VR = "PN" // Person Name
	SH VR = "SH" // Short String
	SL VR = "SL" // Signed Long
	SQ VR = "SQ" // Sequence of Items
	SS VR = "SS" // Signed Short
	ST VR = "ST" // Short Text
	SV VR = "SV" // Signed Very Long
	TM VR = "TM" // Time
	UC VR = "UC" // Unlimited Characters
	UI VR = "UI" // Unique Identifier
	UL VR = "UL" // Unsigned Long
	UN VR = "UN" // Unknown
	UR VR = "UR" // Universal Resource
	US VR = "US" // Unsigned Short
	UT VR = "UT" // Unlimited Text
	UV VR = "UV" // Unsigned Very Long

	// NoVR marks delimitation items, which carry no VR.
	NoVR VR = ""
)

// Key packs the code into 16 bits exactly as the two bytes appear in an
// explicit VR little endian stream, so a VR read off the wire can be compared
// with a single integer equality. Codes shorter than two characters are left
// padded with '?'.
func (vr VR) Key() uint16 {
	s := string(vr)
	for len(s) < 2 {
		s = "?" + s
	}
	return uint16(s[0]) | uint16(s[1])<<8
}

// KeyFromBytes packs two VR bytes read off the wire.
func KeyFromBytes(b0, b1 byte) uint16 {
	return uint16(b0) | uint16(b1)<<8
}
