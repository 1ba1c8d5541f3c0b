package main

import (
	"strings"

	"github.com/caio-sobreiro/dicomcatalog/abstract"
	"github.com/caio-sobreiro/dicomcatalog/transfer"
	"github.com/caio-sobreiro/dicomcatalog/uid"
	"github.com/spf13/cobra"
)

type uidRecord struct {
	UID         string        `yaml:"uid"`
	Description string        `yaml:"description"`
	Kind        string        `yaml:"kind"`
	Known       bool          `yaml:"known"`
	Valid       bool          `yaml:"valid"`
	Category    string        `yaml:"category,omitempty"`
	Syntax      *syntaxRecord `yaml:"transfer_syntax,omitempty"`
}

func (a *app) describeUID(value string) uidRecord {
	value = uid.Sanitize(value)
	entry := a.registry.Lookup(value)
	_, known := a.registry.Get(value)

	r := uidRecord{
		UID:         entry.UID(),
		Description: entry.Description(),
		Kind:        "unknown",
		Known:       known,
		Valid:       uid.Valid(value),
	}
	switch e := entry.(type) {
	case transfer.TransferSyntax:
		r.Kind = "transfer syntax"
		sr := a.syntaxRecord(e)
		r.Syntax = &sr
	case abstract.AbstractSyntax:
		r.Kind = "abstract syntax"
		r.Category = string(e.Category)
	default:
		if as := a.abstracts.Lookup(value); as.IsStorage() {
			r.Kind = "abstract syntax"
			r.Category = string(as.Category)
		}
	}
	return r
}

func (r uidRecord) card() string {
	fields := []field{
		{label: "Description", value: r.Description, warn: !r.Known},
		{label: "Kind", value: r.Kind},
		{label: "Valid", value: yesNo(r.Valid), warn: !r.Valid},
	}
	if r.Category != "" {
		fields = append(fields, field{label: "Category", value: r.Category})
	}
	if s := r.Syntax; s != nil {
		fields = append(fields,
			field{label: "Explicit VR", value: yesNo(s.ExplicitVR)},
			field{label: "Big endian", value: yesNo(s.BigEndian)},
			field{label: "Compression", value: s.Compression},
			field{label: "Lossy", value: yesNo(s.Lossy)},
			field{label: "Retired", value: yesNo(s.Retired)},
			field{label: "Unsupported", value: yesNo(s.Unsupported), warn: s.Unsupported},
		)
	}
	return renderCard(r.UID, fields)
}

func newUIDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uid <uid>...",
		Short: "Describe one or more UIDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := make([]uidRecord, 0, len(args))
			for _, arg := range args {
				records = append(records, a.describeUID(arg))
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
}
