package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/caio-sobreiro/dicomcatalog/pdu"
	"github.com/spf13/cobra"
)

type contextRecord struct {
	ID             int            `yaml:"id"`
	Result         string         `yaml:"result"`
	AbstractSyntax string         `yaml:"abstract_syntax,omitempty"`
	Proposed       []string       `yaml:"proposed,omitempty"`
	Accepted       string         `yaml:"accepted,omitempty"`
	Reply          *contextRecord `yaml:"reply,omitempty"`
	ReplyItem      string         `yaml:"reply_item,omitempty"`
}

func newContextRecord(pc *pdu.PresentationContext) contextRecord {
	r := contextRecord{ID: int(pc.ID), Result: pc.Result.String()}
	if pc.AbstractSyntax != nil {
		r.AbstractSyntax = pc.AbstractSyntax.UID() + " (" + pc.AbstractSyntax.Description() + ")"
	}
	for _, ts := range pc.ProposedTransferSyntaxes {
		r.Proposed = append(r.Proposed, ts.Entry.String())
	}
	if pc.AcceptedTransferSyntax != nil {
		r.Accepted = pc.AcceptedTransferSyntax.Entry.String()
	}
	return r
}

func (r contextRecord) card() string {
	fields := []field{
		{label: "Result", value: r.Result, warn: r.Result != pdu.Acceptance.String()},
	}
	if r.AbstractSyntax != "" {
		fields = append(fields, field{label: "Abstract syntax", value: r.AbstractSyntax})
	}
	for i, p := range r.Proposed {
		fields = append(fields, field{label: "Proposed " + strconv.Itoa(i+1), value: p})
	}
	if r.Accepted != "" {
		fields = append(fields, field{label: "Accepted", value: r.Accepted})
	}
	if r.Reply != nil {
		fields = append(fields, field{label: "Reply", value: r.Reply.Result})
		if r.Reply.Accepted != "" {
			fields = append(fields, field{label: "Reply accepts", value: r.Reply.Accepted})
		}
		fields = append(fields, field{label: "Reply item", value: r.ReplyItem})
	}
	return renderCard("Presentation context "+strconv.Itoa(r.ID), fields)
}

// decodeHex accepts hex with optional whitespace, colons and a 0x prefix.
func decodeHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, ":", "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return b, nil
}

func (a *app) parseContexts(raw []byte, asItems bool) ([]*pdu.PresentationContext, error) {
	if !asItems {
		pc, err := a.codec.Parse(bytes.NewReader(raw), len(raw))
		if err != nil {
			return nil, err
		}
		return []*pdu.PresentationContext{pc}, nil
	}

	items, err := pdu.ReadItems(raw)
	if err != nil {
		return nil, err
	}
	var contexts []*pdu.PresentationContext
	for _, item := range items {
		if item.Type != pdu.ItemTypePresentationRQ && item.Type != pdu.ItemTypePresentationAC {
			a.logger.Debug("Skipping association item",
				"type", fmt.Sprintf("0x%02x", item.Type),
				"length", len(item.Data))
			continue
		}
		pc, err := a.codec.ParseItem(item)
		if err != nil {
			return nil, err
		}
		contexts = append(contexts, pc)
	}
	if len(contexts) == 0 {
		return nil, fmt.Errorf("no presentation context items found")
	}
	return contexts, nil
}

func newPctxCmd(a *app) *cobra.Command {
	var (
		asItems bool
		accept  bool
		allow   []string
	)

	cmd := &cobra.Command{
		Use:   "pctx <hex>...",
		Short: "Decode a presentation context item",
		Long: "Decode a presentation context item given in hex.\n\n" +
			"By default the input is one item body (context id onwards). With --items\n" +
			"it is a sequence of association items with their 4-byte headers; items\n" +
			"other than presentation contexts are skipped.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHex(strings.Join(args, ""))
			if err != nil {
				return err
			}
			contexts, err := a.parseContexts(raw, asItems)
			if err != nil {
				return err
			}

			acceptor := &pdu.Acceptor{Catalog: a.transfers, TransferSyntaxes: allow, Logger: a.logger}
			records := make([]contextRecord, 0, len(contexts))
			for _, pc := range contexts {
				r := newContextRecord(pc)
				if accept && !pc.IsResponse() {
					reply := acceptor.Answer(pc)
					item, err := a.codec.AppendItem(nil, reply)
					if err != nil {
						return err
					}
					rr := newContextRecord(reply)
					r.Reply = &rr
					r.ReplyItem = hex.EncodeToString(item)
				}
				records = append(records, r)
			}

			return a.emit(cmd.OutOrStdout(), records, func() string {
				cards := make([]string, len(records))
				for i, r := range records {
					cards[i] = r.card()
				}
				return strings.Join(cards, "\n")
			})
		},
	}
	cmd.Flags().BoolVar(&asItems, "items", false, "input is a sequence of items with headers")
	cmd.Flags().BoolVar(&accept, "accept", false, "answer each proposed context and print the reply item")
	cmd.Flags().StringSliceVar(&allow, "allow", nil, "transfer syntax UIDs the acceptor may choose (default: all supported)")
	return cmd
}
