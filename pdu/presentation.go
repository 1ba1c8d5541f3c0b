package pdu

import (
	"fmt"

	dicomerr "github.com/caio-sobreiro/dicomcatalog/errors"
	"github.com/caio-sobreiro/dicomcatalog/transfer"
	"github.com/caio-sobreiro/dicomcatalog/uid"
)

// PresentationResult is the result/reason field of a presentation context
// reply (PS3.8 Table 9-18).
type PresentationResult byte

const (
	Acceptance                   PresentationResult = 0x00
	UserRejection                PresentationResult = 0x01
	NoReasonGiven                PresentationResult = 0x02
	AbstractSyntaxNotSupported   PresentationResult = 0x03
	TransferSyntaxesNotSupported PresentationResult = 0x04
)

// ParseResult decodes a result byte. Values outside 0..4 are a malformed item.
func ParseResult(b byte) (PresentationResult, error) {
	switch PresentationResult(b) {
	case Acceptance, UserRejection, NoReasonGiven, AbstractSyntaxNotSupported, TransferSyntaxesNotSupported:
		return PresentationResult(b), nil
	default:
		return 0, dicomerr.NewResultError(b)
	}
}

func (r PresentationResult) String() string {
	switch r {
	case Acceptance:
		return "acceptance"
	case UserRejection:
		return "user-rejection"
	case NoReasonGiven:
		return "no-reason"
	case AbstractSyntaxNotSupported:
		return "abstract-syntax-not-supported"
	case TransferSyntaxesNotSupported:
		return "transfer-syntaxes-not-supported"
	default:
		return fmt.Sprintf("invalid(0x%02X)", byte(r))
	}
}

// PresentationContext is one negotiation record: an abstract syntax with the
// transfer syntaxes proposed for it, or the accepted transfer syntax and
// result sent back.
type PresentationContext struct {
	ID byte

	// AbstractSyntax is nil when the item carried none (replies never do).
	AbstractSyntax uid.Identified

	// ProposedTransferSyntaxes keeps wire order, duplicates included.
	ProposedTransferSyntaxes []transfer.TransferSyntax

	AcceptedTransferSyntax *transfer.TransferSyntax
	Result                 PresentationResult

	// Reply marks the acceptor's answer, carried in an 0x21 item. It is set
	// by Accept, Reject and by parsing an 0x21 item, never by the result byte.
	Reply bool
}

// IsResponse reports whether the context is reply-shaped.
func (pc *PresentationContext) IsResponse() bool {
	return pc.Reply
}

// Accept turns the context into a reply accepting ts.
func (pc *PresentationContext) Accept(ts transfer.TransferSyntax) {
	pc.setAccepted(ts)
	pc.Reply = true
}

// Reject turns the context into a reply refusing it for reason and clears
// any accepted transfer syntax.
func (pc *PresentationContext) Reject(reason PresentationResult) {
	pc.setRejected(reason)
	pc.Reply = true
}

func (pc *PresentationContext) setAccepted(ts transfer.TransferSyntax) {
	pc.AcceptedTransferSyntax = &ts
	pc.Result = Acceptance
}

func (pc *PresentationContext) setRejected(reason PresentationResult) {
	pc.AcceptedTransferSyntax = nil
	pc.Result = reason
}

// ApplyReply merges the peer's reply into the proposing context. On
// Acceptance the reply's accepted transfer syntax, or failing that the first
// one it lists, becomes the accepted one. The context keeps its request shape.
func (pc *PresentationContext) ApplyReply(reply *PresentationContext) error {
	if reply == nil {
		return fmt.Errorf("presentation context %d: nil reply", pc.ID)
	}
	if reply.ID != pc.ID {
		return fmt.Errorf("presentation context %d: reply is for context %d", pc.ID, reply.ID)
	}
	if reply.Result != Acceptance {
		pc.setRejected(reply.Result)
		return nil
	}

	switch {
	case reply.AcceptedTransferSyntax != nil:
		pc.setAccepted(*reply.AcceptedTransferSyntax)
	case len(reply.ProposedTransferSyntaxes) > 0:
		pc.setAccepted(reply.ProposedTransferSyntaxes[0])
	default:
		return dicomerr.NewItemError(pc.ID, 0, "accepted reply carries no transfer syntax")
	}
	return nil
}

// Proposes reports whether value is among the proposed transfer syntaxes.
func (pc *PresentationContext) Proposes(value string) bool {
	for _, ts := range pc.ProposedTransferSyntaxes {
		if ts.Value == value {
			return true
		}
	}
	return false
}
