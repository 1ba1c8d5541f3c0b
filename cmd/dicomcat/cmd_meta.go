package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/caio-sobreiro/dicomcatalog/part10"
	"github.com/spf13/cobra"
)

type metaRecord struct {
	File           string          `yaml:"file"`
	TransferSyntax uidRecord       `yaml:"transfer_syntax"`
	SOPClass       uidRecord       `yaml:"sop_class"`
	SOPInstanceUID string          `yaml:"sop_instance_uid"`
	DatasetOffset  int             `yaml:"dataset_offset"`
	Elements       []elementRecord `yaml:"elements"`
}

func (a *app) readMeta(path string) (metaRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return metaRecord{}, err
	}
	h, err := part10.NewReader(a.transfers, a.abstracts, part10.WithLogger(a.logger)).ReadHeader(data)
	if err != nil {
		return metaRecord{}, fmt.Errorf("%s: %w", path, err)
	}

	r := metaRecord{
		File:           path,
		TransferSyntax: a.describeUID(h.TransferSyntax.Value),
		SOPClass:       a.describeUID(h.MediaStorageSOPClass.Value),
		SOPInstanceUID: h.MediaStorageSOPInstanceUID,
		DatasetOffset:  h.DatasetOffset,
	}
	for _, e := range h.Elements {
		er := elementRecord{Tag: e.Tag.String(), VR: string(e.VR)}
		if known, ok := a.dict.Lookup(e.Tag); ok {
			er = newElementRecord(known)
			er.VR = string(e.VR)
		}
		er.Value = e.Text()
		r.Elements = append(r.Elements, er)
	}
	return r, nil
}

func (r metaRecord) card() string {
	fields := []field{
		{label: "Transfer syntax", value: r.TransferSyntax.UID + " (" + r.TransferSyntax.Description + ")", warn: !r.TransferSyntax.Known},
		{label: "SOP class", value: r.SOPClass.UID + " (" + r.SOPClass.Description + ")", warn: !r.SOPClass.Known},
		{label: "SOP instance", value: r.SOPInstanceUID},
		{label: "Dataset offset", value: fmt.Sprint(r.DatasetOffset)},
	}
	for _, e := range r.Elements {
		label := e.Tag
		if e.Keyword != "" {
			label += " " + e.Keyword
		}
		fields = append(fields, field{label: label, value: e.VR + " " + e.Value})
	}
	return renderCard(r.File, fields)
}

func newMetaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "meta <file>...",
		Short: "Show the File Meta Information of DICOM Part 10 files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := make([]metaRecord, 0, len(args))
			for _, path := range args {
				r, err := a.readMeta(path)
				if err != nil {
					return err
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
}
