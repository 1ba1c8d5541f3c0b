package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caio-sobreiro/dicomcatalog/abstract"
	"github.com/caio-sobreiro/dicomcatalog/dictionary"
	"github.com/caio-sobreiro/dicomcatalog/pdu"
	"github.com/caio-sobreiro/dicomcatalog/transfer"
	"github.com/caio-sobreiro/dicomcatalog/uid"
	"github.com/spf13/cobra"
)

const appName = "dicomcat"

var envOutput = strings.ToUpper(appName) + "_OUTPUT"

const (
	outputText = "text"
	outputYAML = "yaml"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	output  string
	verbose bool

	logger    *slog.Logger
	registry  *uid.Registry
	transfers *transfer.Catalog
	abstracts *abstract.Catalog
	dict      *dictionary.Dictionary
	codec     *pdu.Codec
}

func newRootCmd() *cobra.Command {
	a := &app{}

	defaultOutput := os.Getenv(envOutput)
	if defaultOutput == "" {
		defaultOutput = outputText
	}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect DICOM transfer syntaxes, UIDs, dictionary tags and presentation contexts",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", defaultOutput,
		"output format: text or yaml (default from $"+envOutput+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"log debug output to stderr")

	rootCmd.AddCommand(newTSCmd(a), newUIDCmd(a), newTagCmd(a), newPctxCmd(a), newMetaCmd(a))

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd
}

// setup validates global flags and builds the catalogs on a private registry,
// sealing it once every built-in is in.
func (a *app) setup(cmd *cobra.Command) error {
	switch a.output {
	case outputText, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", a.output, outputText, outputYAML)
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.registry = uid.NewRegistry()
	var err error
	if a.transfers, err = transfer.NewCatalog(a.registry); err != nil {
		return err
	}
	if a.abstracts, err = abstract.NewCatalog(a.registry); err != nil {
		return err
	}
	a.registry.Seal()

	a.dict = dictionary.New(dictionary.WithLogger(a.logger))
	a.codec = pdu.NewCodec(a.transfers, a.abstracts, pdu.WithLogger(a.logger))

	a.logger.Debug("Catalogs loaded",
		"uids", a.registry.Len(),
		"transfer_syntaxes", a.transfers.Len(),
		"tags", a.dict.Len())
	return nil
}
