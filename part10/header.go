// Package part10 reads the File Meta Information header of a DICOM Part 10
// file and resolves what it declares against the catalogs.
//
// DICOM Part 10 files contain:
//   - 128 byte preamble
//   - 4 byte "DICM" prefix
//   - File Meta Information elements (group 0x0002), explicit VR little endian
//   - Dataset, in the transfer syntax named by (0002,0010)
package part10

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/caio-sobreiro/dicomcatalog/abstract"
	"github.com/caio-sobreiro/dicomcatalog/dictionary"
	"github.com/caio-sobreiro/dicomcatalog/transfer"
	"github.com/caio-sobreiro/dicomcatalog/uid"
)

const (
	preambleLength = 128
	prefix         = "DICM"
	metaGroup      = 0x0002
)

// ErrNotPart10 is returned for data without the preamble and DICM prefix.
var ErrNotPart10 = errors.New("not a DICOM Part 10 file")

var (
	tagMediaStorageSOPClassUID    = dictionary.NewTag(0x0002, 0x0002)
	tagMediaStorageSOPInstanceUID = dictionary.NewTag(0x0002, 0x0003)
	tagTransferSyntaxUID          = dictionary.NewTag(0x0002, 0x0010)
)

// longLength holds the packed keys of VRs encoded with a reserved field and a
// 32-bit length in explicit VR streams.
var longLength = func() map[uint16]struct{} {
	m := make(map[uint16]struct{})
	for _, vr := range []dictionary.VR{
		dictionary.OB, dictionary.OD, dictionary.OF, dictionary.OL, dictionary.OV,
		dictionary.OW, dictionary.SQ, dictionary.SV, dictionary.UC, dictionary.UN,
		dictionary.UR, dictionary.UT, dictionary.UV,
	} {
		m[vr.Key()] = struct{}{}
	}
	return m
}()

// Element is one File Meta Information element as read off the file.
type Element struct {
	Tag   dictionary.Tag
	VR    dictionary.VR
	Value []byte
}

// Text renders the value for display according to its VR.
func (e Element) Text() string {
	switch e.VR {
	case dictionary.UI:
		return uid.RawToString(e.Value)
	case dictionary.UL:
		if len(e.Value) == 4 {
			return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(e.Value)), 10)
		}
	case dictionary.US:
		if len(e.Value) == 2 {
			return strconv.FormatUint(uint64(binary.LittleEndian.Uint16(e.Value)), 10)
		}
	case dictionary.OB, dictionary.OW, dictionary.UN:
		return hex.EncodeToString(e.Value)
	}
	return strings.TrimRight(string(e.Value), "\x00 ")
}

// Header is the decoded File Meta Information.
type Header struct {
	Elements []Element

	TransferSyntax             transfer.TransferSyntax
	MediaStorageSOPClass       abstract.AbstractSyntax
	MediaStorageSOPInstanceUID string

	// DatasetOffset is where the dataset starts in the file.
	DatasetOffset int
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger overrides the logger used by the reader.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// Reader decodes File Meta Information headers.
type Reader struct {
	transfers *transfer.Catalog
	abstracts *abstract.Catalog
	logger    *slog.Logger
}

// NewReader creates a reader. Nil catalogs fall back to the defaults.
func NewReader(ts *transfer.Catalog, as *abstract.Catalog, opts ...Option) *Reader {
	r := &Reader{transfers: ts, abstracts: as}
	for _, opt := range opts {
		opt(r)
	}
	if r.transfers == nil {
		r.transfers = transfer.Default()
	}
	if r.abstracts == nil {
		r.abstracts = abstract.Default()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// HasHeader reports whether data starts with the preamble and DICM prefix.
func HasHeader(data []byte) bool {
	return len(data) >= preambleLength+len(prefix) &&
		string(data[preambleLength:preambleLength+len(prefix)]) == prefix
}

// ReadHeader decodes the group 0002 elements following the DICM prefix.
func (r *Reader) ReadHeader(data []byte) (*Header, error) {
	if !HasHeader(data) {
		return nil, ErrNotPart10
	}

	h := &Header{}
	offset := preambleLength + len(prefix)
	for offset+8 <= len(data) {
		group := binary.LittleEndian.Uint16(data[offset:])
		if group != metaGroup {
			break
		}
		tag := dictionary.NewTag(group, binary.LittleEndian.Uint16(data[offset+2:]))
		vr := dictionary.VR(data[offset+4 : offset+6])

		var length int
		if _, long := longLength[dictionary.KeyFromBytes(data[offset+4], data[offset+5])]; long {
			if offset+12 > len(data) {
				return nil, fmt.Errorf("element %s: header truncated at offset %d", tag, offset)
			}
			length = int(binary.LittleEndian.Uint32(data[offset+8:]))
			offset += 12
		} else {
			length = int(binary.LittleEndian.Uint16(data[offset+6:]))
			offset += 8
		}

		if length < 0 || offset+length > len(data) {
			return nil, fmt.Errorf("element %s: length %d exceeds file at offset %d", tag, length, offset)
		}
		e := Element{Tag: tag, VR: vr, Value: data[offset : offset+length]}
		h.Elements = append(h.Elements, e)
		offset += length

		switch tag {
		case tagTransferSyntaxUID:
			h.TransferSyntax = r.transfers.Lookup(e.Text())
		case tagMediaStorageSOPClassUID:
			h.MediaStorageSOPClass = r.abstracts.Lookup(e.Text())
		case tagMediaStorageSOPInstanceUID:
			h.MediaStorageSOPInstanceUID = e.Text()
		}
	}

	if h.TransferSyntax.Value == "" {
		return nil, fmt.Errorf("file meta information has no transfer syntax %s", tagTransferSyntaxUID)
	}
	h.DatasetOffset = offset

	r.logger.Debug("Found Transfer Syntax UID in File Meta Information",
		"transfer_syntax", h.TransferSyntax.Value,
		"known", h.TransferSyntax.Known(),
		"dataset_start_offset", offset)

	return h, nil
}

// StripHeader returns the dataset that follows the File Meta Information.
func (r *Reader) StripHeader(data []byte) ([]byte, error) {
	h, err := r.ReadHeader(data)
	if err != nil {
		return nil, err
	}
	return data[h.DatasetOffset:], nil
}
