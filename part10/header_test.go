package part10

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/caio-sobreiro/dicomcatalog/abstract"
	"github.com/caio-sobreiro/dicomcatalog/dictionary"
	"github.com/caio-sobreiro/dicomcatalog/transfer"
)

func shortElement(group, element uint16, vr string, value []byte) []byte {
	b := binary.LittleEndian.AppendUint16(nil, group)
	b = binary.LittleEndian.AppendUint16(b, element)
	b = append(b, vr...)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(value)))
	return append(b, value...)
}

func longElement(group, element uint16, vr string, value []byte) []byte {
	b := binary.LittleEndian.AppendUint16(nil, group)
	b = binary.LittleEndian.AppendUint16(b, element)
	b = append(b, vr...)
	b = append(b, 0x00, 0x00)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(value)))
	return append(b, value...)
}

// createPart10File builds a minimal Part 10 file with a full meta header and
// one dataset element.
func createPart10File(transferSyntax string) []byte {
	var meta []byte
	meta = append(meta, longElement(0x0002, 0x0001, "OB", []byte{0x00, 0x01})...)
	meta = append(meta, shortElement(0x0002, 0x0002, "UI", []byte(abstract.CTImageStorage+"\x00"))...)
	meta = append(meta, shortElement(0x0002, 0x0003, "UI", []byte("1.2.3.4.5.6"))...)
	if transferSyntax != "" {
		meta = append(meta, shortElement(0x0002, 0x0010, "UI", []byte(transferSyntax+"\x00"))...)
	}

	data := make([]byte, 128)
	data = append(data, "DICM"...)
	data = append(data, shortElement(0x0002, 0x0000, "UL", binary.LittleEndian.AppendUint32(nil, uint32(len(meta))))...)
	data = append(data, meta...)
	data = append(data, shortElement(0x0010, 0x0010, "PN", []byte("TEST^PATIENT"))...)
	return data
}

func TestReadHeader(t *testing.T) {
	data := createPart10File(transfer.ExplicitVRLittleEndian)

	h, err := NewReader(nil, nil).ReadHeader(data)
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}

	if len(h.Elements) != 5 {
		t.Fatalf("len(Elements) = %d, want 5", len(h.Elements))
	}
	if h.TransferSyntax.Value != transfer.ExplicitVRLittleEndian || !h.TransferSyntax.ExplicitVR {
		t.Errorf("TransferSyntax = %+v", h.TransferSyntax)
	}
	if h.MediaStorageSOPClass.UID() != abstract.CTImageStorage || !h.MediaStorageSOPClass.IsStorage() {
		t.Errorf("MediaStorageSOPClass = %+v", h.MediaStorageSOPClass)
	}
	if h.MediaStorageSOPInstanceUID != "1.2.3.4.5.6" {
		t.Errorf("MediaStorageSOPInstanceUID = %q", h.MediaStorageSOPInstanceUID)
	}

	wantTag := []byte{0x10, 0x00, 0x10, 0x00}
	if !bytes.Equal(data[h.DatasetOffset:h.DatasetOffset+4], wantTag) {
		t.Errorf("dataset starts with % x, want % x", data[h.DatasetOffset:h.DatasetOffset+4], wantTag)
	}
}

func TestElementText(t *testing.T) {
	h, err := NewReader(nil, nil).ReadHeader(createPart10File(transfer.JPEG2000))
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}

	tests := []struct {
		tag  dictionary.Tag
		want string
	}{
		{dictionary.NewTag(0x0002, 0x0001), "0001"},
		{dictionary.NewTag(0x0002, 0x0002), abstract.CTImageStorage},
		{dictionary.NewTag(0x0002, 0x0010), transfer.JPEG2000},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			for _, e := range h.Elements {
				if e.Tag == tt.tag {
					if got := e.Text(); got != tt.want {
						t.Errorf("Text() = %q, want %q", got, tt.want)
					}
					return
				}
			}
			t.Errorf("element %s not found", tt.tag)
		})
	}
}

func TestStripHeader(t *testing.T) {
	dataset, err := NewReader(nil, nil).StripHeader(createPart10File(transfer.ImplicitVRLittleEndian))
	if err != nil {
		t.Fatalf("StripHeader() error = %v", err)
	}
	want := shortElement(0x0010, 0x0010, "PN", []byte("TEST^PATIENT"))
	if !bytes.Equal(dataset, want) {
		t.Errorf("StripHeader() = % x, want % x", dataset, want)
	}
}

func TestReadHeader_Errors(t *testing.T) {
	truncated := createPart10File(transfer.ExplicitVRLittleEndian)
	truncated = truncated[:128+4+12+10]

	tests := []struct {
		name    string
		data    []byte
		notDICM bool
	}{
		{"too short", []byte{0x01, 0x02, 0x03}, true},
		{"missing DICM", make([]byte, 200), true},
		{"no transfer syntax", createPart10File(""), false},
		{"truncated element", truncated, false},
	}

	r := NewReader(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.ReadHeader(tt.data)
			if err == nil {
				t.Fatal("ReadHeader() error = nil, want error")
			}
			if got := errors.Is(err, ErrNotPart10); got != tt.notDICM {
				t.Errorf("errors.Is(err, ErrNotPart10) = %v, want %v", got, tt.notDICM)
			}
		})
	}
}

func TestHasHeader(t *testing.T) {
	if !HasHeader(createPart10File(transfer.ExplicitVRLittleEndian)) {
		t.Error("HasHeader() = false for a valid file")
	}
	if HasHeader(make([]byte, 131)) {
		t.Error("HasHeader() = true for short data")
	}
}
