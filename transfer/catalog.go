package transfer

import (
	"fmt"
	"sync"

	"github.com/caio-sobreiro/dicomcatalog/uid"
)

func explicitLE(value, desc string, compression Compression, lossy, retired bool) TransferSyntax {
	return TransferSyntax{
		Entry:       uid.Entry{Value: value, Desc: desc},
		ExplicitVR:  true,
		Compression: compression,
		Lossy:       lossy,
		Retired:     retired,
	}
}

// builtins lists every known Transfer Syntax in preferred negotiation order:
// uncompressed first, then compressed families by codec generation, explicit
// VR big endian last.
var builtins = []TransferSyntax{
	{Entry: uid.Entry{Value: ImplicitVRLittleEndian, Desc: "Implicit VR Little Endian: Default Transfer Syntax for DICOM"}},
	explicitLE(ExplicitVRLittleEndian, "Explicit VR Little Endian", CompressionNone, false, false),
	{
		Entry:      uid.Entry{Value: DeflatedExplicitVRLittleEndian, Desc: "Deflated Explicit VR Little Endian"},
		ExplicitVR: true,
		Deflated:   true,
	},

	explicitLE(JPEGBaseline8Bit, "JPEG Baseline (Process 1): Default Transfer Syntax for Lossy JPEG 8 Bit Image Compression", CompressionJPEGLossy, true, false),
	explicitLE(JPEGExtended12Bit, "JPEG Extended (Process 2 & 4): Default Transfer Syntax for Lossy JPEG 12 Bit Image Compression (Process 4 only)", CompressionJPEGLossy, true, false),
	explicitLE(JPEGExtendedProcess35, "JPEG Extended (Process 3 & 5) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGSpectralSelectionNonHierarchical68, "JPEG Spectral Selection, Non-Hierarchical (Process 6 & 8) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGSpectralSelectionNonHierarchical79, "JPEG Spectral Selection, Non-Hierarchical (Process 7 & 9) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGFullProgressionNonHierarchical1012, "JPEG Full Progression, Non-Hierarchical (Process 10 & 12) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGFullProgressionNonHierarchical1113, "JPEG Full Progression, Non-Hierarchical (Process 11 & 13) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGLossless, "JPEG Lossless, Non-Hierarchical (Process 14)", CompressionJPEGLossless, false, false),
	explicitLE(JPEGLosslessNonHierarchical15, "JPEG Lossless, Non-Hierarchical (Process 15) (Retired)", CompressionJPEGLossless, false, true),
	explicitLE(JPEGExtendedHierarchical1618, "JPEG Extended, Hierarchical (Process 16 & 18) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGExtendedHierarchical1719, "JPEG Extended, Hierarchical (Process 17 & 19) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGSpectralSelectionHierarchical2022, "JPEG Spectral Selection, Hierarchical (Process 20 & 22) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGSpectralSelectionHierarchical2123, "JPEG Spectral Selection, Hierarchical (Process 21 & 23) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGFullProgressionHierarchical2426, "JPEG Full Progression, Hierarchical (Process 24 & 26) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGFullProgressionHierarchical2527, "JPEG Full Progression, Hierarchical (Process 25 & 27) (Retired)", CompressionJPEGLossy, true, true),
	explicitLE(JPEGLosslessHierarchical28, "JPEG Lossless, Hierarchical (Process 28) (Retired)", CompressionJPEGLossless, false, true),
	explicitLE(JPEGLosslessHierarchical29, "JPEG Lossless, Hierarchical (Process 29) (Retired)", CompressionJPEGLossless, false, true),
	explicitLE(JPEGLosslessSV1, "JPEG Lossless, Non-Hierarchical, First-Order Prediction (Process 14 [Selection Value 1]): Default Transfer Syntax for Lossless JPEG Image Compression", CompressionJPEGLossless, false, false),

	explicitLE(JPEGLSLossless, "JPEG-LS Lossless Image Compression", CompressionJPEGLSLossless, false, false),
	explicitLE(JPEGLSNearLossless, "JPEG-LS Lossy (Near-Lossless) Image Compression", CompressionJPEGLSLossy, true, false),

	explicitLE(JPEG2000Lossless, "JPEG 2000 Image Compression (Lossless Only)", CompressionJPEG2000, false, false),
	explicitLE(JPEG2000, "JPEG 2000 Image Compression", CompressionJPEG2000, true, false),
	explicitLE(JPEG2000Part2MultiComponentLossless, "JPEG 2000 Part 2 Multi-component Image Compression (Lossless Only)", CompressionJPEG2000, false, false),
	explicitLE(JPEG2000Part2MultiComponent, "JPEG 2000 Part 2 Multi-component Image Compression", CompressionJPEG2000, true, false),

	explicitLE(JPIPReferenced, "JPIP Referenced", CompressionJPIP, true, false),
	explicitLE(JPIPReferencedDeflate, "JPIP Referenced Deflate", CompressionJPIP, true, false),

	explicitLE(MPEG2MainProfile, "MPEG2 Main Profile @ Main Level", CompressionMPEG2, true, false),
	explicitLE(MPEG2MainProfileHighLevel, "MPEG2 Main Profile @ High Level", CompressionMPEG2, true, false),

	explicitLE(RLELossless, "RLE Lossless", CompressionRLE, false, false),

	explicitLE(MPEG4AVCH264HighProfile, "MPEG-4 AVC/H.264 High Profile / Level 4.1", CompressionMPEG4, true, false),
	explicitLE(MPEG4AVCH264BDCompatibleHighProfile, "MPEG-4 AVC/H.264 BD-compatible High Profile / Level 4.1", CompressionMPEG4, true, false),
	explicitLE(HEVCH265MainProfileLevel51, "HEVC/H.265 Main Profile / Level 5.1", CompressionHEVC, true, false),
	explicitLE(HEVCH265Main10ProfileLevel51, "HEVC/H.265 Main 10 Profile / Level 5.1", CompressionHEVC, true, false),
	explicitLE(HTJ2KLossless, "High-Throughput JPEG 2000 Image Compression (Lossless Only)", CompressionHTJ2K, false, false),
	explicitLE(HTJ2KLosslessRPCL, "High-Throughput JPEG 2000 with RPCL Options Image Compression (Lossless Only)", CompressionHTJ2K, false, false),
	explicitLE(HTJ2K, "High-Throughput JPEG 2000 Image Compression", CompressionHTJ2K, true, false),

	explicitLE(RFC2557MIMEEncapsulation, "RFC 2557 MIME encapsulation (Retired)", CompressionNone, false, true),
	explicitLE(XMLEncoding, "XML Encoding (Retired)", CompressionNone, false, true),

	{
		Entry:      uid.Entry{Value: ExplicitVRBigEndian, Desc: "Explicit VR Big Endian (Retired)"},
		ExplicitVR: true,
		BigEndian:  true,
		Retired:    true,
	},
}

// unsupported lists syntaxes that are recognized but must always be rejected:
// they only change non-pixel encoding in ways nothing downstream implements.
var unsupported = []string{
	RFC2557MIMEEncapsulation,
	XMLEncoding,
}

// Catalog is the immutable set of known Transfer Syntaxes. Once built it is
// safe for concurrent use without locking.
type Catalog struct {
	syntaxes    map[string]TransferSyntax
	preferred   []TransferSyntax
	rank        map[string]int
	unsupported map[string]struct{}
}

// NewCatalog builds the catalog and registers every built-in entry in reg so
// generic UID lookups agree with Transfer Syntax lookups.
func NewCatalog(reg *uid.Registry) (*Catalog, error) {
	c := &Catalog{
		syntaxes:    make(map[string]TransferSyntax, len(builtins)),
		preferred:   make([]TransferSyntax, 0, len(builtins)),
		rank:        make(map[string]int, len(builtins)),
		unsupported: make(map[string]struct{}, len(unsupported)),
	}

	for _, syntax := range builtins {
		if _, dup := c.syntaxes[syntax.Value]; dup {
			return nil, fmt.Errorf("transfer syntax %s listed twice", syntax.Value)
		}
		c.syntaxes[syntax.Value] = syntax
		c.rank[syntax.Value] = len(c.preferred)
		c.preferred = append(c.preferred, syntax)

		if reg != nil {
			if err := reg.Register(syntax); err != nil {
				return nil, fmt.Errorf("register transfer syntax %s: %w", syntax.Value, err)
			}
		}
	}

	for _, value := range unsupported {
		if _, ok := c.syntaxes[value]; !ok {
			return nil, fmt.Errorf("unsupported transfer syntax %s is not a built-in", value)
		}
		c.unsupported[value] = struct{}{}
	}

	return c, nil
}

// MustNewCatalog is like NewCatalog but panics on error.
func MustNewCatalog(reg *uid.Registry) *Catalog {
	c, err := NewCatalog(reg)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog registered in uid.Default().
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNewCatalog(uid.Default())
	})
	return defaultCatalog
}

// Lookup returns the Transfer Syntax for value. Unrecognized UIDs yield a
// fresh placeholder with implicit VR, little endian and no compression.
func (c *Catalog) Lookup(value string) TransferSyntax {
	if syntax, ok := c.syntaxes[value]; ok {
		return syntax
	}
	return unknown(value)
}

// Get returns the built-in Transfer Syntax for value, if there is one.
func (c *Catalog) Get(value string) (TransferSyntax, bool) {
	syntax, ok := c.syntaxes[value]
	return syntax, ok
}

// Known reports whether value is a built-in Transfer Syntax.
func (c *Catalog) Known(value string) bool {
	_, ok := c.syntaxes[value]
	return ok
}

// PreferredOrder returns every built-in entry in negotiation preference
// order. An acceptor picking among mutually acceptable proposals takes the
// first match in this order.
func (c *Catalog) PreferredOrder() []TransferSyntax {
	out := make([]TransferSyntax, len(c.preferred))
	copy(out, c.preferred)
	return out
}

// Rank returns the position of value in PreferredOrder, or -1 when value is
// not a built-in.
func (c *Catalog) Rank(value string) int {
	if r, ok := c.rank[value]; ok {
		return r
	}
	return -1
}

// Unsupported returns the recognized syntaxes an acceptor must always
// reject, in preferred order.
func (c *Catalog) Unsupported() []TransferSyntax {
	out := make([]TransferSyntax, 0, len(c.unsupported))
	for _, syntax := range c.preferred {
		if _, ok := c.unsupported[syntax.Value]; ok {
			out = append(out, syntax)
		}
	}
	return out
}

// IsUnsupported reports whether value is in the explicitly unsupported set.
func (c *Catalog) IsUnsupported(value string) bool {
	_, ok := c.unsupported[value]
	return ok
}

// Len returns the number of built-in entries.
func (c *Catalog) Len() int {
	return len(c.preferred)
}
