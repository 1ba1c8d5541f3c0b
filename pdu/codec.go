// Package pdu encodes and decodes the Presentation Context items carried by
// A-ASSOCIATE-RQ and A-ASSOCIATE-AC PDUs (PS3.8 Sections 9.3.2.2 and 9.3.3.2).
package pdu

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caio-sobreiro/dicomcatalog/abstract"
	dicomerr "github.com/caio-sobreiro/dicomcatalog/errors"
	"github.com/caio-sobreiro/dicomcatalog/transfer"
	"github.com/caio-sobreiro/dicomcatalog/uid"
)

// Sub-item types inside a presentation context item
const (
	SubItemAbstractSyntax byte = 0x30
	SubItemTransferSyntax byte = 0x40
)

const (
	contextHeaderLength = 4
	subItemHeaderLength = 4
	maxItemBody         = 0xFFFF
)

// TransferSyntaxResolver resolves transfer syntax UIDs found on the wire.
// Lookup must never fail; unknown UIDs resolve to placeholders.
type TransferSyntaxResolver interface {
	Lookup(value string) transfer.TransferSyntax
}

// AbstractSyntaxResolver resolves abstract syntax UIDs found on the wire.
type AbstractSyntaxResolver interface {
	Lookup(value string) abstract.AbstractSyntax
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger overrides the logger used by the codec.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

// Codec parses and writes presentation context items. It holds no per-item
// state and is safe for concurrent use.
type Codec struct {
	transferSyntaxes TransferSyntaxResolver
	abstractSyntaxes AbstractSyntaxResolver
	logger           *slog.Logger
}

// NewCodec creates a codec. Nil resolvers fall back to transfer.Default()
// and abstract.Default().
func NewCodec(ts TransferSyntaxResolver, as AbstractSyntaxResolver, opts ...Option) *Codec {
	c := &Codec{
		transferSyntaxes: ts,
		abstractSyntaxes: as,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transferSyntaxes == nil {
		c.transferSyntaxes = transfer.Default()
	}
	if c.abstractSyntaxes == nil {
		c.abstractSyntaxes = abstract.Default()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Parse reads exactly itemLength bytes of a presentation context item body
// from r and decodes them. The reader is never advanced past the item. Any
// inconsistency between declared and available lengths, and any result byte
// outside 0..4, is reported as an error matching errors.ErrMalformedItem.
func (c *Codec) Parse(r io.Reader, itemLength int) (*PresentationContext, error) {
	if itemLength < contextHeaderLength {
		return nil, dicomerr.NewItemError(0, 0, fmt.Sprintf("item length %d shorter than header", itemLength))
	}

	data := make([]byte, itemLength)
	if n, err := io.ReadFull(r, data); err != nil {
		return nil, dicomerr.NewItemError(0, n, fmt.Sprintf("item body truncated: %v", err))
	}

	ctxID := data[0]
	result, err := ParseResult(data[2])
	if err != nil {
		return nil, fmt.Errorf("presentation context %d: %w", ctxID, err)
	}

	pc := &PresentationContext{ID: ctxID, Result: result}

	offset := contextHeaderLength
	for offset < len(data) {
		if offset+subItemHeaderLength > len(data) {
			return nil, dicomerr.NewItemError(ctxID, offset, "sub-item header exceeds item length")
		}

		subItemType := data[offset]
		subItemLength := binary.BigEndian.Uint16(data[offset+2 : offset+4])
		valueStart := offset + subItemHeaderLength
		valueEnd := valueStart + int(subItemLength)
		if valueEnd > len(data) {
			return nil, dicomerr.NewItemError(ctxID, offset,
				fmt.Sprintf("sub-item 0x%02X length %d exceeds item length", subItemType, subItemLength))
		}

		value := data[valueStart:valueEnd]
		switch subItemType {
		case SubItemAbstractSyntax:
			as := c.abstractSyntaxes.Lookup(uid.RawToString(value))
			pc.AbstractSyntax = as
		case SubItemTransferSyntax:
			ts := c.transferSyntaxes.Lookup(uid.RawToString(value))
			if !ts.Known() {
				c.logger.Warn("Unknown transfer syntax proposed",
					"context_id", ctxID,
					"transfer_syntax", ts.Value)
			}
			pc.ProposedTransferSyntaxes = append(pc.ProposedTransferSyntaxes, ts)
		default:
			c.logger.Debug("Skipping unrecognized sub-item",
				"context_id", ctxID,
				"type", fmt.Sprintf("0x%02x", subItemType),
				"length", subItemLength)
		}

		offset = valueEnd
	}

	c.logger.Debug("Parsed presentation context",
		"context_id", ctxID,
		"result", result.String(),
		"abstract_syntax", identifiedUID(pc.AbstractSyntax),
		"proposed_transfer_syntaxes", transferUIDs(pc.ProposedTransferSyntaxes),
		"num_proposed", len(pc.ProposedTransferSyntaxes))

	return pc, nil
}

// Write encodes the item body of pc. A reply carries at most its accepted
// transfer syntax; anything else is written as a request, with its abstract
// syntax followed by every proposed transfer syntax in order, whatever its
// result byte.
func (c *Codec) Write(pc *PresentationContext) ([]byte, error) {
	if pc == nil {
		return nil, dicomerr.NewItemError(0, 0, "nil presentation context")
	}
	if _, err := ParseResult(byte(pc.Result)); err != nil {
		return nil, fmt.Errorf("presentation context %d: %w", pc.ID, err)
	}

	data := []byte{pc.ID, 0x00, byte(pc.Result), 0x00}

	var err error
	if pc.IsResponse() {
		if pc.AcceptedTransferSyntax != nil {
			data, err = appendSubItem(data, pc.ID, SubItemTransferSyntax, pc.AcceptedTransferSyntax.Value)
			if err != nil {
				return nil, err
			}
		}
	} else {
		if pc.AbstractSyntax != nil {
			data, err = appendSubItem(data, pc.ID, SubItemAbstractSyntax, pc.AbstractSyntax.UID())
			if err != nil {
				return nil, err
			}
		}
		for _, ts := range pc.ProposedTransferSyntaxes {
			data, err = appendSubItem(data, pc.ID, SubItemTransferSyntax, ts.Value)
			if err != nil {
				return nil, err
			}
		}
	}

	if len(data) > maxItemBody {
		return nil, dicomerr.NewItemError(pc.ID, len(data), "item body exceeds 65535 bytes")
	}

	c.logger.Debug("Wrote presentation context",
		"context_id", pc.ID,
		"response", pc.IsResponse(),
		"length", len(data))

	return data, nil
}

func appendSubItem(dst []byte, ctxID, subItemType byte, value string) ([]byte, error) {
	if len(strings.TrimSpace(value)) > uid.MaxLength {
		return nil, dicomerr.NewItemError(ctxID, len(dst),
			fmt.Sprintf("UID %q longer than %d bytes", value, uid.MaxLength))
	}
	raw := uid.ToBytes(value)
	dst = append(dst, subItemType, 0x00)
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(raw)))
	return append(dst, raw...), nil
}

func identifiedUID(id uid.Identified) string {
	if id == nil {
		return ""
	}
	return id.UID()
}

func transferUIDs(syntaxes []transfer.TransferSyntax) []string {
	out := make([]string, len(syntaxes))
	for i, ts := range syntaxes {
		out[i] = ts.Value
	}
	return out
}
