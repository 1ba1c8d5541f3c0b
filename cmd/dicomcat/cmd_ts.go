package main

import (
	"strconv"

	"github.com/caio-sobreiro/dicomcatalog/transfer"
	"github.com/spf13/cobra"
)

type syntaxRecord struct {
	Rank        int    `yaml:"rank"`
	UID         string `yaml:"uid"`
	Description string `yaml:"description"`
	ExplicitVR  bool   `yaml:"explicit_vr"`
	BigEndian   bool   `yaml:"big_endian"`
	Compression string `yaml:"compression"`
	Lossy       bool   `yaml:"lossy,omitempty"`
	Retired     bool   `yaml:"retired,omitempty"`
	Unsupported bool   `yaml:"unsupported,omitempty"`
}

func (a *app) syntaxRecord(ts transfer.TransferSyntax) syntaxRecord {
	return syntaxRecord{
		Rank:        a.transfers.Rank(ts.Value),
		UID:         ts.Value,
		Description: ts.Desc,
		ExplicitVR:  ts.ExplicitVR,
		BigEndian:   ts.BigEndian,
		Compression: ts.Compression.String(),
		Lossy:       ts.Lossy,
		Retired:     ts.Retired,
		Unsupported: a.transfers.IsUnsupported(ts.Value),
	}
}

func newTSCmd(a *app) *cobra.Command {
	var (
		onlyUnsupported bool
		hideRetired     bool
	)

	cmd := &cobra.Command{
		Use:   "ts",
		Short: "List transfer syntaxes in preferred order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			syntaxes := a.transfers.PreferredOrder()
			if onlyUnsupported {
				syntaxes = a.transfers.Unsupported()
			}

			records := make([]syntaxRecord, 0, len(syntaxes))
			for _, ts := range syntaxes {
				if hideRetired && ts.Retired {
					continue
				}
				records = append(records, a.syntaxRecord(ts))
			}

			return a.emit(cmd.OutOrStdout(), records, func() string {
				rows := make([][]string, 0, len(records))
				for _, r := range records {
					flags := ""
					if r.Retired {
						flags += "retired "
					}
					if r.Unsupported {
						flags += "unsupported"
					}
					rows = append(rows, []string{
						strconv.Itoa(r.Rank), r.UID, r.Description,
						yesNo(r.ExplicitVR), yesNo(r.BigEndian), r.Compression, flags,
					})
				}
				return renderTable([]string{"#", "UID", "Name", "Explicit", "BE", "Compression", "Flags"}, rows)
			})
		},
	}
	cmd.Flags().BoolVar(&onlyUnsupported, "unsupported", false, "list only the explicitly unsupported syntaxes")
	cmd.Flags().BoolVar(&hideRetired, "no-retired", false, "hide retired syntaxes")
	return cmd
}
