package pdu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	dicomerr "github.com/caio-sobreiro/dicomcatalog/errors"
)

// Variable item types of A-ASSOCIATE-RQ/AC PDUs
const (
	ItemTypeApplicationContext byte = 0x10
	ItemTypePresentationRQ     byte = 0x20
	ItemTypePresentationAC     byte = 0x21
	ItemTypeUserInformation    byte = 0x50
)

const itemHeaderLength = 4

// Item is one variable item of an association PDU: type and body, header
// stripped.
type Item struct {
	Type byte
	Data []byte
}

// ReadItem reads one variable item (type, reserved byte, 2-byte big-endian
// length, body) from r.
func ReadItem(r io.Reader) (Item, error) {
	header := make([]byte, itemHeaderLength)
	if _, err := io.ReadFull(r, header); err != nil {
		return Item{}, err
	}

	length := binary.BigEndian.Uint16(header[2:4])
	data := make([]byte, length)
	if n, err := io.ReadFull(r, data); err != nil {
		return Item{}, dicomerr.NewItemError(0, itemHeaderLength+n,
			fmt.Sprintf("item 0x%02x declares %d bytes: %v", header[0], length, err))
	}
	return Item{Type: header[0], Data: data}, nil
}

// ReadItems splits the variable-item field of an association PDU.
func ReadItems(data []byte) ([]Item, error) {
	r := bytes.NewReader(data)
	var items []Item
	for r.Len() > 0 {
		item, err := ReadItem(r)
		if err != nil {
			if err == io.ErrUnexpectedEOF {
				return nil, dicomerr.NewItemError(0, len(data)-r.Len(), "item header truncated")
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ParseItem decodes a presentation context item. A 0x21 (AC) item yields a
// reply whose transfer syntax, on Acceptance, becomes the accepted one.
func (c *Codec) ParseItem(item Item) (*PresentationContext, error) {
	switch item.Type {
	case ItemTypePresentationRQ, ItemTypePresentationAC:
	default:
		return nil, fmt.Errorf("item type 0x%02x is not a presentation context", item.Type)
	}

	pc, err := c.Parse(bytes.NewReader(item.Data), len(item.Data))
	if err != nil {
		return nil, err
	}
	if item.Type == ItemTypePresentationAC {
		proposed := pc.ProposedTransferSyntaxes
		pc.ProposedTransferSyntaxes = nil
		pc.Reply = true
		if pc.Result == Acceptance && len(proposed) > 0 {
			pc.setAccepted(proposed[0])
		}
	}
	return pc, nil
}

// AppendItem writes pc as a full item onto dst, typed 0x21 for a reply and
// 0x20 otherwise.
func (c *Codec) AppendItem(dst []byte, pc *PresentationContext) ([]byte, error) {
	data, err := c.Write(pc)
	if err != nil {
		return nil, err
	}

	itemType := ItemTypePresentationRQ
	if pc.Reply {
		itemType = ItemTypePresentationAC
	}
	dst = append(dst, itemType, 0x00)
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(data)))
	return append(dst, data...), nil
}
