// Package transfer is the catalog of DICOM Transfer Syntaxes: the encoding
// rules each one implies, its compression family, the preference order used
// during negotiation and the syntaxes that are recognized but never accepted.
//
// Transfer Syntax UIDs are defined in DICOM Part 5, Section 8 and Part 6, Annex A.4
// https://dicom.nema.org/medical/dicom/current/output/chtml/part05/chapter_8.html
package transfer

import "github.com/caio-sobreiro/dicomcatalog/uid"

// Uncompressed Transfer Syntaxes
const (
	// ImplicitVRLittleEndian - Default Transfer Syntax for DICOM
	ImplicitVRLittleEndian = "1.2.840.10008.1.2"

	// ExplicitVRLittleEndian - Explicit VR with little endian byte ordering
	ExplicitVRLittleEndian = "1.2.840.10008.1.2.1"

	// DeflatedExplicitVRLittleEndian - zlib/deflate over explicit VR little endian
	DeflatedExplicitVRLittleEndian = "1.2.840.10008.1.2.1.99"

	// ExplicitVRBigEndian - Explicit VR with big endian byte ordering (retired)
	ExplicitVRBigEndian = "1.2.840.10008.1.2.2"
)

// JPEG Transfer Syntaxes (Processes 1 through 29)
const (
	JPEGBaseline8Bit                       = "1.2.840.10008.1.2.4.50"
	JPEGExtended12Bit                      = "1.2.840.10008.1.2.4.51"
	JPEGExtendedProcess35                  = "1.2.840.10008.1.2.4.52"
	JPEGSpectralSelectionNonHierarchical68 = "1.2.840.10008.1.2.4.53"
	JPEGSpectralSelectionNonHierarchical79 = "1.2.840.10008.1.2.4.54"
	JPEGFullProgressionNonHierarchical1012 = "1.2.840.10008.1.2.4.55"
	JPEGFullProgressionNonHierarchical1113 = "1.2.840.10008.1.2.4.56"
	JPEGLossless                           = "1.2.840.10008.1.2.4.57"
	JPEGLosslessNonHierarchical15          = "1.2.840.10008.1.2.4.58"
	JPEGExtendedHierarchical1618           = "1.2.840.10008.1.2.4.59"
	JPEGExtendedHierarchical1719           = "1.2.840.10008.1.2.4.60"
	JPEGSpectralSelectionHierarchical2022  = "1.2.840.10008.1.2.4.61"
	JPEGSpectralSelectionHierarchical2123  = "1.2.840.10008.1.2.4.62"
	JPEGFullProgressionHierarchical2426    = "1.2.840.10008.1.2.4.63"
	JPEGFullProgressionHierarchical2527    = "1.2.840.10008.1.2.4.64"
	JPEGLosslessHierarchical28             = "1.2.840.10008.1.2.4.65"
	JPEGLosslessHierarchical29             = "1.2.840.10008.1.2.4.66"

	// JPEGLosslessSV1 - JPEG Lossless (Process 14, Selection Value 1)
	// Most commonly used lossless JPEG variant
	JPEGLosslessSV1 = "1.2.840.10008.1.2.4.70"
)

// JPEG-LS Transfer Syntaxes
const (
	JPEGLSLossless     = "1.2.840.10008.1.2.4.80"
	JPEGLSNearLossless = "1.2.840.10008.1.2.4.81"
)

// JPEG 2000 Transfer Syntaxes
const (
	JPEG2000Lossless                    = "1.2.840.10008.1.2.4.90"
	JPEG2000                            = "1.2.840.10008.1.2.4.91"
	JPEG2000Part2MultiComponentLossless = "1.2.840.10008.1.2.4.92"
	JPEG2000Part2MultiComponent         = "1.2.840.10008.1.2.4.93"
)

// JPIP Transfer Syntaxes
const (
	JPIPReferenced        = "1.2.840.10008.1.2.4.94"
	JPIPReferencedDeflate = "1.2.840.10008.1.2.4.95"
)

// MPEG Video Transfer Syntaxes
const (
	MPEG2MainProfile                    = "1.2.840.10008.1.2.4.100"
	MPEG2MainProfileHighLevel           = "1.2.840.10008.1.2.4.101"
	MPEG4AVCH264HighProfile             = "1.2.840.10008.1.2.4.102"
	MPEG4AVCH264BDCompatibleHighProfile = "1.2.840.10008.1.2.4.103"
	HEVCH265MainProfileLevel51          = "1.2.840.10008.1.2.4.107"
	HEVCH265Main10ProfileLevel51        = "1.2.840.10008.1.2.4.108"
)

// High-Throughput JPEG 2000 Transfer Syntaxes
const (
	HTJ2KLossless     = "1.2.840.10008.1.2.4.201"
	HTJ2KLosslessRPCL = "1.2.840.10008.1.2.4.202"
	HTJ2K             = "1.2.840.10008.1.2.4.203"
)

// RLE Transfer Syntax
const (
	RLELossless = "1.2.840.10008.1.2.5"
)

// Non-pixel encodings. Recognized, but nothing downstream implements them.
const (
	RFC2557MIMEEncapsulation = "1.2.840.10008.1.2.6.1"
	XMLEncoding              = "1.2.840.10008.1.2.6.2"
)

// Compression classifies the pixel codec family of a Transfer Syntax. The
// value is opaque here; only the compression subsystem interprets it.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionJPEGLossless
	CompressionJPEGLossy
	CompressionJPEG2000
	CompressionJPEGLSLossless
	CompressionJPEGLSLossy
	CompressionJPIP
	CompressionMPEG2
	CompressionMPEG4
	CompressionHEVC
	CompressionHTJ2K
	CompressionRLE
)

var compressionNames = [...]string{
	CompressionNone:           "none",
	CompressionJPEGLossless:   "jpeg-lossless",
	CompressionJPEGLossy:      "jpeg-lossy",
	CompressionJPEG2000:       "jpeg2000",
	CompressionJPEGLSLossless: "jpeg-ls-lossless",
	CompressionJPEGLSLossy:    "jpeg-ls-lossy",
	CompressionJPIP:           "jpip",
	CompressionMPEG2:          "mpeg2",
	CompressionMPEG4:          "mpeg4",
	CompressionHEVC:           "hevc",
	CompressionHTJ2K:          "htj2k",
	CompressionRLE:            "rle",
}

func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return "unknown"
}

// TransferSyntax describes the encoding rules of one Transfer Syntax UID.
type TransferSyntax struct {
	uid.Entry
	ExplicitVR  bool
	BigEndian   bool
	Compression Compression
	Lossy       bool
	Retired     bool
	Deflated    bool
}

// IsCompressed reports whether the data set is compressed, either by a pixel
// codec or by deflating the whole stream.
func (ts TransferSyntax) IsCompressed() bool {
	return ts.Compression != CompressionNone || ts.Deflated
}

// IsEncapsulated reports whether pixel data is carried in encapsulated
// fragments.
func (ts TransferSyntax) IsEncapsulated() bool {
	return ts.Compression != CompressionNone
}

// IsLossless returns true unless the codec may discard information.
// Uncompressed transfer syntaxes are considered lossless.
func (ts TransferSyntax) IsLossless() bool {
	return !ts.Lossy
}

// IsRetired returns true if the transfer syntax is retired from the standard.
func (ts TransferSyntax) IsRetired() bool {
	return ts.Retired
}

// String returns the UID and description tagged as a transfer syntax.
func (ts TransferSyntax) String() string {
	return ts.Value + " (TransferSyntax: " + ts.Desc + ")"
}

// unknown builds the placeholder returned for an unrecognized UID: implicit
// VR, little endian, uncompressed.
func unknown(value string) TransferSyntax {
	return TransferSyntax{Entry: uid.Placeholder(value)}
}
