package pdu

import (
	"log/slog"

	"github.com/caio-sobreiro/dicomcatalog/abstract"
	"github.com/caio-sobreiro/dicomcatalog/transfer"
	"github.com/caio-sobreiro/dicomcatalog/uid"
)

// Acceptor answers proposed presentation contexts. Among the proposed
// transfer syntaxes it picks the one ranked first in the catalog's preferred
// order, skipping unknown and explicitly unsupported syntaxes.
type Acceptor struct {
	Catalog *transfer.Catalog

	// SupportsAbstractSyntax decides which abstract syntaxes are served. Nil
	// serves every cataloged abstract syntax and every storage class.
	SupportsAbstractSyntax func(uid.Identified) bool

	// TransferSyntaxes restricts the acceptable transfer syntaxes. Empty
	// allows every supported one.
	TransferSyntaxes []string

	Logger *slog.Logger
}

// Answer builds the reply for one proposed context. The request is left
// untouched.
func (a *Acceptor) Answer(request *PresentationContext) *PresentationContext {
	reply := &PresentationContext{ID: request.ID, AbstractSyntax: request.AbstractSyntax}

	if request.AbstractSyntax == nil || !a.supportsAbstractSyntax(request.AbstractSyntax) {
		reply.Reject(AbstractSyntaxNotSupported)
		a.logger().Debug("Presentation context negotiation result",
			"context_id", request.ID,
			"abstract_syntax", identifiedUID(request.AbstractSyntax),
			"result", reply.Result.String())
		return reply
	}

	catalog := a.catalog()
	best := -1
	for i, ts := range request.ProposedTransferSyntaxes {
		if !a.allows(catalog, ts.Value) {
			continue
		}
		if best == -1 || catalog.Rank(ts.Value) < catalog.Rank(request.ProposedTransferSyntaxes[best].Value) {
			best = i
		}
	}

	if best == -1 {
		reply.Reject(TransferSyntaxesNotSupported)
	} else {
		reply.Accept(request.ProposedTransferSyntaxes[best])
	}

	a.logger().Debug("Presentation context negotiation result",
		"context_id", request.ID,
		"abstract_syntax", identifiedUID(request.AbstractSyntax),
		"selected_transfer_syntax", acceptedUID(reply),
		"result", reply.Result.String())

	return reply
}

func (a *Acceptor) allows(catalog *transfer.Catalog, value string) bool {
	if !catalog.Known(value) || catalog.IsUnsupported(value) {
		return false
	}
	if len(a.TransferSyntaxes) == 0 {
		return true
	}
	for _, allowed := range a.TransferSyntaxes {
		if allowed == value {
			return true
		}
	}
	return false
}

func (a *Acceptor) supportsAbstractSyntax(id uid.Identified) bool {
	if a.SupportsAbstractSyntax != nil {
		return a.SupportsAbstractSyntax(id)
	}
	if as, ok := id.(abstract.AbstractSyntax); ok {
		return as.Known() || as.IsStorage()
	}
	return false
}

func (a *Acceptor) catalog() *transfer.Catalog {
	if a.Catalog != nil {
		return a.Catalog
	}
	return transfer.Default()
}

func (a *Acceptor) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

func acceptedUID(pc *PresentationContext) string {
	if pc.AcceptedTransferSyntax == nil {
		return ""
	}
	return pc.AcceptedTransferSyntax.Value
}
