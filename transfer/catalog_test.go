package transfer

import (
	"errors"
	"strings"
	"sync"
	"testing"

	dicomerr "github.com/caio-sobreiro/dicomcatalog/errors"
	"github.com/caio-sobreiro/dicomcatalog/uid"
)

func newTestCatalog(t *testing.T) (*Catalog, *uid.Registry) {
	t.Helper()
	reg := uid.NewRegistry()
	c, err := NewCatalog(reg)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c, reg
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name            string
		uid             string
		wantExplicitVR  bool
		wantBigEndian   bool
		wantCompression Compression
		wantCompressed  bool
		wantLossless    bool
		wantRetired     bool
	}{
		{
			name:         "Implicit VR Little Endian",
			uid:          ImplicitVRLittleEndian,
			wantLossless: true,
		},
		{
			name:           "Explicit VR Little Endian",
			uid:            ExplicitVRLittleEndian,
			wantExplicitVR: true,
			wantLossless:   true,
		},
		{
			name:           "Explicit VR Big Endian (retired)",
			uid:            ExplicitVRBigEndian,
			wantExplicitVR: true,
			wantBigEndian:  true,
			wantLossless:   true,
			wantRetired:    true,
		},
		{
			name:           "Deflated Explicit VR Little Endian",
			uid:            DeflatedExplicitVRLittleEndian,
			wantExplicitVR: true,
			wantCompressed: true,
			wantLossless:   true,
		},
		{
			name:            "JPEG Baseline",
			uid:             JPEGBaseline8Bit,
			wantExplicitVR:  true,
			wantCompression: CompressionJPEGLossy,
			wantCompressed:  true,
		},
		{
			name:            "JPEG Lossless SV1",
			uid:             JPEGLosslessSV1,
			wantExplicitVR:  true,
			wantCompression: CompressionJPEGLossless,
			wantCompressed:  true,
			wantLossless:    true,
		},
		{
			name:            "JPEG 2000 Lossless",
			uid:             JPEG2000Lossless,
			wantExplicitVR:  true,
			wantCompression: CompressionJPEG2000,
			wantCompressed:  true,
			wantLossless:    true,
		},
		{
			name:            "JPEG-LS Near Lossless",
			uid:             JPEGLSNearLossless,
			wantExplicitVR:  true,
			wantCompression: CompressionJPEGLSLossy,
			wantCompressed:  true,
		},
		{
			name:            "RLE Lossless",
			uid:             RLELossless,
			wantExplicitVR:  true,
			wantCompression: CompressionRLE,
			wantCompressed:  true,
			wantLossless:    true,
		},
		{
			name:         "Unknown Transfer Syntax",
			uid:          "1.2.3.4.5.6.7.8.9",
			wantLossless: true,
		},
	}

	c, _ := newTestCatalog(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Lookup(tt.uid)

			if got.UID() != tt.uid {
				t.Errorf("Lookup(%s).UID() = %s, want %s", tt.uid, got.UID(), tt.uid)
			}
			if got.ExplicitVR != tt.wantExplicitVR {
				t.Errorf("Lookup(%s).ExplicitVR = %v, want %v", tt.uid, got.ExplicitVR, tt.wantExplicitVR)
			}
			if got.BigEndian != tt.wantBigEndian {
				t.Errorf("Lookup(%s).BigEndian = %v, want %v", tt.uid, got.BigEndian, tt.wantBigEndian)
			}
			if got.Compression != tt.wantCompression {
				t.Errorf("Lookup(%s).Compression = %v, want %v", tt.uid, got.Compression, tt.wantCompression)
			}
			if got.IsCompressed() != tt.wantCompressed {
				t.Errorf("Lookup(%s).IsCompressed() = %v, want %v", tt.uid, got.IsCompressed(), tt.wantCompressed)
			}
			if got.IsLossless() != tt.wantLossless {
				t.Errorf("Lookup(%s).IsLossless() = %v, want %v", tt.uid, got.IsLossless(), tt.wantLossless)
			}
			if got.IsRetired() != tt.wantRetired {
				t.Errorf("Lookup(%s).IsRetired() = %v, want %v", tt.uid, got.IsRetired(), tt.wantRetired)
			}
		})
	}
}

func TestLookup_UnknownPlaceholder(t *testing.T) {
	c, _ := newTestCatalog(t)
	const value = "1.2.826.0.1.3680043.2.1143.1"

	got := c.Lookup(value)
	if got.Description() != "Unknown: "+value {
		t.Errorf("Lookup(%s).Description() = %q", value, got.Description())
	}
	if got.Known() {
		t.Errorf("Lookup(%s).Known() = true, want false", value)
	}
	if got.ExplicitVR || got.BigEndian || got.Compression != CompressionNone {
		t.Errorf("Lookup(%s) placeholder has capability flags set: %+v", value, got)
	}
	if c.Known(value) {
		t.Errorf("Known(%s) = true after lookup, placeholders must not be cached", value)
	}
}

func TestPreferredOrder_NoDuplicates(t *testing.T) {
	c, _ := newTestCatalog(t)
	order := c.PreferredOrder()

	if len(order) != c.Len() {
		t.Fatalf("len(PreferredOrder()) = %d, want %d", len(order), c.Len())
	}

	seen := make(map[string]bool)
	for i, syntax := range order {
		if seen[syntax.UID()] {
			t.Errorf("PreferredOrder()[%d] = %s is a duplicate", i, syntax.UID())
		}
		seen[syntax.UID()] = true

		if r := c.Rank(syntax.UID()); r != i {
			t.Errorf("Rank(%s) = %d, want %d", syntax.UID(), r, i)
		}
	}
}

func TestPreferredOrder_Shape(t *testing.T) {
	c, _ := newTestCatalog(t)
	order := c.PreferredOrder()

	if order[0].UID() != ImplicitVRLittleEndian {
		t.Errorf("PreferredOrder()[0] = %s, want %s", order[0].UID(), ImplicitVRLittleEndian)
	}
	if last := order[len(order)-1]; last.UID() != ExplicitVRBigEndian {
		t.Errorf("last preferred syntax = %s, want %s", last.UID(), ExplicitVRBigEndian)
	}

	// Uncompressed little endian syntaxes lead the list.
	for i := 0; i < 3; i++ {
		if order[i].IsEncapsulated() || order[i].BigEndian {
			t.Errorf("PreferredOrder()[%d] = %s, want an uncompressed little endian syntax", i, order[i].UID())
		}
	}

	if c.Rank(JPEGBaseline8Bit) > c.Rank(JPEG2000) {
		t.Error("JPEG baseline should be preferred over JPEG 2000")
	}
	if c.Rank("1.2.3.4") != -1 {
		t.Errorf("Rank(unknown) = %d, want -1", c.Rank("1.2.3.4"))
	}
}

func TestPreferredOrder_ReturnsCopy(t *testing.T) {
	c, _ := newTestCatalog(t)
	order := c.PreferredOrder()
	order[0] = TransferSyntax{}

	if c.PreferredOrder()[0].UID() != ImplicitVRLittleEndian {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestUnsupported(t *testing.T) {
	c, _ := newTestCatalog(t)

	preferred := make(map[string]bool)
	for _, syntax := range c.PreferredOrder() {
		preferred[syntax.UID()] = true
	}

	set := c.Unsupported()
	if len(set) != 2 {
		t.Fatalf("len(Unsupported()) = %d, want 2", len(set))
	}
	for _, syntax := range set {
		if !preferred[syntax.UID()] {
			t.Errorf("unsupported syntax %s missing from PreferredOrder()", syntax.UID())
		}
		if !c.IsUnsupported(syntax.UID()) {
			t.Errorf("IsUnsupported(%s) = false, want true", syntax.UID())
		}
	}

	if c.IsUnsupported(ExplicitVRLittleEndian) {
		t.Error("Explicit VR Little Endian must not be unsupported")
	}
	if !c.IsUnsupported(XMLEncoding) || !c.IsUnsupported(RFC2557MIMEEncapsulation) {
		t.Error("XML and RFC 2557 encodings must be unsupported")
	}
}

func TestNewCatalog_RegistersInRegistry(t *testing.T) {
	c, reg := newTestCatalog(t)

	if reg.Len() != c.Len() {
		t.Errorf("registry holds %d entries, catalog %d", reg.Len(), c.Len())
	}

	for _, syntax := range c.PreferredOrder() {
		got := reg.Lookup(syntax.UID())
		if got != uid.Identified(syntax) {
			t.Errorf("registry Lookup(%s) = %v, want %v", syntax.UID(), got, syntax)
		}
		if got.Description() != c.Lookup(syntax.UID()).Description() {
			t.Errorf("registry and catalog disagree on %s", syntax.UID())
		}
	}
}

func TestNewCatalog_SealedRegistry(t *testing.T) {
	reg := uid.NewRegistry()
	reg.Seal()

	_, err := NewCatalog(reg)
	if !errors.Is(err, dicomerr.ErrSealed) {
		t.Errorf("NewCatalog(sealed) error = %v, want ErrSealed", err)
	}
}

func TestNewCatalog_NilRegistry(t *testing.T) {
	c, err := NewCatalog(nil)
	if err != nil {
		t.Fatalf("NewCatalog(nil): %v", err)
	}
	if !c.Known(ExplicitVRLittleEndian) {
		t.Error("catalog without registry should still hold the built-ins")
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c != Default() {
		t.Error("Default() should return the same catalog every call")
	}
	if got := uid.Default().Lookup(JPEGLosslessSV1); got.Description() != c.Lookup(JPEGLosslessSV1).Description() {
		t.Errorf("uid.Default() Lookup = %q, want the catalog entry", got.Description())
	}
}

func TestTransferSyntax_String(t *testing.T) {
	c, _ := newTestCatalog(t)
	got := c.Lookup(ExplicitVRLittleEndian).String()
	if !strings.HasPrefix(got, ExplicitVRLittleEndian) || !strings.Contains(got, "Explicit VR Little Endian") {
		t.Errorf("String() = %q", got)
	}
}

func TestCompression_String(t *testing.T) {
	tests := []struct {
		c    Compression
		want string
	}{
		{CompressionNone, "none"},
		{CompressionJPEG2000, "jpeg2000"},
		{CompressionRLE, "rle"},
		{Compression(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Compression(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestCatalog_ConcurrentLookup(t *testing.T) {
	c, _ := newTestCatalog(t)
	order := c.PreferredOrder()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, syntax := range order {
				if got := c.Lookup(syntax.UID()); got != syntax {
					t.Errorf("Lookup(%s) = %v, want %v", syntax.UID(), got, syntax)
				}
				_ = c.Lookup("1.2.3." + syntax.UID())
			}
		}()
	}
	wg.Wait()
}
