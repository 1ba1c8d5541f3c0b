package main

import (
	"fmt"
	"strings"

	"github.com/caio-sobreiro/dicomcatalog/dictionary"
	"github.com/spf13/cobra"
)

type elementRecord struct {
	Tag         string `yaml:"tag"`
	Keyword     string `yaml:"keyword"`
	Description string `yaml:"description"`
	VR          string `yaml:"vr"`
	VM          string `yaml:"vm"`
	Retired     bool   `yaml:"retired,omitempty"`
	Value       string `yaml:"value,omitempty"`
}

func newElementRecord(e dictionary.Element) elementRecord {
	return elementRecord{
		Tag:         e.Tag.String(),
		Keyword:     e.Keyword,
		Description: e.Description,
		VR:          string(e.VR),
		VM:          e.VM(),
		Retired:     e.Retired,
	}
}

func (r elementRecord) card() string {
	return renderCard(r.Tag+" "+r.Keyword, []field{
		{label: "Description", value: r.Description},
		{label: "VR", value: r.VR},
		{label: "VM", value: r.VM},
		{label: "Retired", value: yesNo(r.Retired), warn: r.Retired},
	})
}

// findElement resolves a tag in any ParseTag form, or a keyword.
func (a *app) findElement(arg string) (dictionary.Element, error) {
	if tag, err := dictionary.ParseTag(arg); err == nil {
		if e, ok := a.dict.Lookup(tag); ok {
			return e, nil
		}
		return dictionary.Element{}, fmt.Errorf("tag %s not in dictionary", tag)
	}
	if e, ok := a.dict.LookupKeyword(arg); ok {
		return e, nil
	}
	return dictionary.Element{}, fmt.Errorf("%q is neither a known tag nor a keyword", arg)
}

func newTagCmd(a *app) *cobra.Command {
	var values uint32

	cmd := &cobra.Command{
		Use:   "tag <gggg,eeee|keyword>...",
		Short: "Look up data dictionary elements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := make([]elementRecord, 0, len(args))
			var notes []string
			for _, arg := range args {
				e, err := a.findElement(arg)
				if err != nil {
					return err
				}
				records = append(records, newElementRecord(e))
				if values > 0 && !e.AllowsVM(values) {
					notes = append(notes, fmt.Sprintf("%s: %d values not allowed by VM %s", e.Keyword, values, e.VM()))
				}
			}

			err := a.emit(cmd.OutOrStdout(), records, func() string {
				cards := make([]string, len(records))
				for i, r := range records {
					cards[i] = r.card()
				}
				return strings.Join(cards, "\n")
			})
			if err != nil {
				return err
			}
			if len(notes) > 0 {
				return fmt.Errorf("value multiplicity check failed: %s", strings.Join(notes, "; "))
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&values, "values", 0, "check that this many values fit each element's VM")
	return cmd
}
