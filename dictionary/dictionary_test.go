package dictionary

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseVM(t *testing.T) {
	tests := []struct {
		vm      string
		wantMin uint32
		wantMax uint32
		wantErr bool
	}{
		{"", 1, 1, false},
		{"1", 1, 1, false},
		{"6", 6, 6, false},
		{"1-3", 1, 3, false},
		{"1-n", 1, Unbounded, false},
		{"2-2n", 2, Unbounded, false},
		{"3-3n", 3, Unbounded, false},
		{"1-2-3", 1, 1, true},
		{"x", 1, 1, true},
		{"3-1", 1, 1, true},
		{"1-m", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.vm, func(t *testing.T) {
			gotMin, gotMax, err := ParseVM(tt.vm)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVM(%q) error = %v, wantErr %v", tt.vm, err, tt.wantErr)
			}
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("ParseVM(%q) = (%d,%d), want (%d,%d)", tt.vm, gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestTag(t *testing.T) {
	tag := NewTag(0x0010, 0x0010)
	if tag != 0x00100010 {
		t.Errorf("NewTag(0x0010, 0x0010) = 0x%08x, want 0x00100010", uint32(tag))
	}
	if got := tag.String(); got != "(0010,0010)" {
		t.Errorf("String() = %s, want (0010,0010)", got)
	}
	if tag.Group() != 0x0010 || tag.Element() != 0x0010 {
		t.Errorf("Group/Element = %04x,%04x", tag.Group(), tag.Element())
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in      string
		want    Tag
		wantErr bool
	}{
		{"(0010,0010)", 0x00100010, false},
		{"7FE0,0010", 0x7FE00010, false},
		{"0020000d", 0x0020000D, false},
		{"0010", 0, true},
		{"zzzz,0010", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTag(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTag(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestVRKey(t *testing.T) {
	if got, want := PN.Key(), uint16('P')|uint16('N')<<8; got != want {
		t.Errorf("PN.Key() = 0x%04x, want 0x%04x", got, want)
	}
	if got := PN.Key(); got != KeyFromBytes('P', 'N') {
		t.Errorf("PN.Key() = 0x%04x, want KeyFromBytes('P','N') = 0x%04x", got, KeyFromBytes('P', 'N'))
	}
	if got, want := NoVR.Key(), uint16('?')|uint16('?')<<8; got != want {
		t.Errorf("NoVR.Key() = 0x%04x, want 0x%04x", got, want)
	}
}

func TestLookup(t *testing.T) {
	d := New()

	tests := []struct {
		name    string
		tag     Tag
		vr      VR
		keyword string
		vmMin   uint32
		vmMax   uint32
		retired bool
	}{
		{"Patient Name", NewTag(0x0010, 0x0010), PN, "PatientName", 1, 1, false},
		{"Image Type", NewTag(0x0008, 0x0008), CS, "ImageType", 2, Unbounded, false},
		{"Image Orientation", NewTag(0x0020, 0x0037), DS, "ImageOrientationPatient", 6, 6, false},
		{"Collimator vertices", NewTag(0x0018, 0x1620), IS, "VerticesOfThePolygonalCollimator", 2, Unbounded, false},
		{"Contour Data", NewTag(0x3006, 0x0050), DS, "ContourData", 3, Unbounded, false},
		{"Retired", NewTag(0x0008, 0x0001), UL, "LengthToEnd", 1, 1, true},
		{"Pixel Data", NewTag(0x7FE0, 0x0010), OW, "PixelData", 1, 1, false},
		{"Item", NewTag(0xFFFE, 0xE000), NoVR, "Item", 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := d.Lookup(tt.tag)
			if !ok {
				t.Fatalf("Lookup(%s) not found", tt.tag)
			}
			if e.VR != tt.vr {
				t.Errorf("VR = %q, want %q", e.VR, tt.vr)
			}
			if e.VRKey() != tt.vr.Key() {
				t.Errorf("VRKey() = 0x%04x, want 0x%04x", e.VRKey(), tt.vr.Key())
			}
			if e.Keyword != tt.keyword {
				t.Errorf("Keyword = %s, want %s", e.Keyword, tt.keyword)
			}
			if e.VMMin != tt.vmMin || e.VMMax != tt.vmMax {
				t.Errorf("VM = (%d,%d), want (%d,%d)", e.VMMin, e.VMMax, tt.vmMin, tt.vmMax)
			}
			if e.Retired != tt.retired {
				t.Errorf("Retired = %v, want %v", e.Retired, tt.retired)
			}
			if e.Group() != tt.tag.Group() || e.ElementNumber() != tt.tag.Element() {
				t.Errorf("Group/ElementNumber = %04x,%04x", e.Group(), e.ElementNumber())
			}
		})
	}

	if _, ok := d.Lookup(NewTag(0x0009, 0x0010)); ok {
		t.Error("Lookup of a private tag should miss")
	}
	if _, ok := d.LookupGroupElement(0x0020, 0x000D); !ok {
		t.Error("LookupGroupElement(0020,000D) not found")
	}
}

func TestLookupKeyword(t *testing.T) {
	d := Default()

	e, ok := d.LookupKeyword("StudyInstanceUID")
	if !ok {
		t.Fatal("LookupKeyword(StudyInstanceUID) not found")
	}
	if e.Tag != NewTag(0x0020, 0x000D) {
		t.Errorf("Tag = %s, want (0020,000d)", e.Tag)
	}
	if _, ok := d.LookupKeyword("NoSuchKeyword"); ok {
		t.Error("LookupKeyword(NoSuchKeyword) should miss")
	}
}

func TestAllowsVM(t *testing.T) {
	d := New()
	pixelSpacing, _ := d.LookupKeyword("PixelSpacing")
	windowCenter, _ := d.LookupKeyword("WindowCenter")

	tests := []struct {
		name string
		e    Element
		n    uint32
		want bool
	}{
		{"spacing 2", pixelSpacing, 2, true},
		{"spacing 1", pixelSpacing, 1, false},
		{"spacing 3", pixelSpacing, 3, false},
		{"window 0", windowCenter, 0, false},
		{"window 1", windowCenter, 1, true},
		{"window many", windowCenter, 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.AllowsVM(tt.n); got != tt.want {
				t.Errorf("AllowsVM(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestElement_VM(t *testing.T) {
	d := New()
	for keyword, want := range map[string]string{
		"PatientName":             "1",
		"ImageType":               "2-n",
		"ImageOrientationPatient": "6",
	} {
		e, _ := d.LookupKeyword(keyword)
		if got := e.VM(); got != want {
			t.Errorf("%s VM() = %s, want %s", keyword, got, want)
		}
	}
}

func TestWithDefinitions_MalformedVM(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d := New(
		WithLogger(logger),
		WithDefinitions(Definition{0x0009, 0x0010, LO, "1-2-3", "PrivateCreator", "Private Creator", false}),
	)

	e, ok := d.Lookup(NewTag(0x0009, 0x0010))
	if !ok {
		t.Fatal("extra definition not found")
	}
	if e.VMMin != 1 || e.VMMax != 1 {
		t.Errorf("VM = (%d,%d), want (1,1)", e.VMMin, e.VMMax)
	}
	if !strings.Contains(buf.String(), "Malformed value multiplicity") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestWithDefinitions_Override(t *testing.T) {
	d := New(WithDefinitions(Definition{0x0010, 0x0010, PN, "1", "PatientsName", "Patient Name", false}))

	if _, ok := d.LookupKeyword("PatientName"); ok {
		t.Error("replaced keyword should no longer resolve")
	}
	e, ok := d.LookupKeyword("PatientsName")
	if !ok || e.Tag != NewTag(0x0010, 0x0010) {
		t.Errorf("LookupKeyword(PatientsName) = %v, %v", e, ok)
	}
	if d.Len() != New().Len() {
		t.Errorf("Len() = %d, want %d", d.Len(), New().Len())
	}
}

func TestStandardTable(t *testing.T) {
	var buf bytes.Buffer
	d := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	if buf.Len() != 0 {
		t.Errorf("standard table logged warnings: %s", buf.String())
	}
	if d.Len() != len(standard) {
		t.Errorf("Len() = %d, want %d (duplicate tags in table?)", d.Len(), len(standard))
	}

	elements := d.Elements()
	for i := 1; i < len(elements); i++ {
		if elements[i-1].Tag >= elements[i].Tag {
			t.Fatalf("Elements() not sorted at %d: %s >= %s", i, elements[i-1].Tag, elements[i].Tag)
		}
	}
}
