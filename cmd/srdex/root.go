package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/dgallion1/srdex/internal/config"
	"github.com/dgallion1/srdex/internal/extract"
	"github.com/dgallion1/srdex/internal/scan"
	"github.com/dgallion1/srdex/internal/spell"
)

var rootCmd = &cobra.Command{
	Use:   "srdex",
	Short: "Extract SRD spell documents into a normalized JSON record set",
	Long: `srdex walks the 26 alphabetic shard directories of an SRD spell
corpus, extracts every spell document into a normalized record, and writes
the collection to stdout as a pretty-printed JSON array.

Documents the Markdown parser rejects are logged to stderr and skipped.
A document whose structure the extraction rules do not cover aborts the
whole run: the collection is either fully recovered or visibly absent,
never silently partial.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg := config.Load()

		records, err := runScan(cmd, cfg, log)
		if err != nil {
			return err
		}
		if records == nil {
			records = []*spell.Record{}
		}

		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			log.Error("encode failed", "error", err)
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func newLogger() *slog.Logger {
	// stdout carries the record array; all diagnostics go to stderr.
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

// runScan aggregates the corpus. A structural failure is fatal: the stack
// trace and the offending parsed tree are written to stdout in place of the
// record array, and the process exits non-zero via the returned error.
func runScan(cmd *cobra.Command, cfg config.Config, log *slog.Logger) ([]*spell.Record, error) {
	scanner := scan.New(cfg.Root, cfg.Workers, cfg.KeepGoing, log)
	records, err := scanner.Run(cmd.Context())
	if err != nil {
		var serr *extract.StructuralError
		if errors.As(err, &serr) {
			fmt.Fprintf(os.Stdout, "fatal: %s\n\n%s\n%s", serr.Msg, debug.Stack(), serr.Tree.Dump())
		}
		log.Error("scan failed", "root", cfg.Root, "error", err)
		return nil, err
	}
	log.Info("scan complete", "root", cfg.Root, "records", len(records))
	return records, nil
}
