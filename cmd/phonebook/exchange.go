package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/phonebook/internal/exchange"
	"github.com/jeanpaul/phonebook/internal/records"
)

func newExportCmd() *cobra.Command {
	var format, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all records as txt, json, yaml or xlsx",
		Example: `  phonebook export --format json
  phonebook export --out contacts.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := resolveFormat(format, outPath)
			if err != nil {
				return err
			}
			dir, err := openDirectory()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				file, cerr := os.Create(outPath)
				if cerr != nil {
					return fmt.Errorf("export: %w", cerr)
				}
				defer func() {
					if cerr := file.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("export: close %s: %w", outPath, cerr)
					}
				}()
				w = file
			}

			recs := dir.All()
			if err := exchange.Export(w, f, recs); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			logger.Info("records exported",
				zap.String("format", string(f)),
				zap.String("out", outPath),
				zap.Int("records", len(recs)),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format: "+exchange.FormatNames()+" (default from --out, else txt)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import PATTERN...",
		Short: "Add records from files matching glob patterns",
		Long: `Each pattern may use ** to match across directories. Every contact read is
normalized and appended like a record added from the menu. The format is taken
from --format or else from each file's extension.`,
		Example: `  phonebook import backup.json
  phonebook import 'exports/**/*.xlsx'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := exchange.Expand(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("import: no files match %v", args)
			}
			dir, err := openDirectory()
			if err != nil {
				return err
			}

			for _, path := range paths {
				f, err := resolveFormat(format, path)
				if err != nil {
					return err
				}
				contacts, err := importFile(path, f)
				if err != nil {
					return err
				}
				for _, c := range contacts {
					if _, err := dir.Add(c); err != nil {
						return err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records from %s\n", len(contacts), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Input format: "+exchange.FormatNames()+" (default from extension)")
	return cmd
}

func importFile(path string, f exchange.Format) ([]records.Fields, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	defer file.Close()

	contacts, err := exchange.Import(file, f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	logger.Info("file imported", zap.String("path", path), zap.String("format", string(f)), zap.Int("records", len(contacts)))
	return contacts, nil
}

// resolveFormat prefers an explicit --format, then the file extension, then txt
// for stdout.
func resolveFormat(flag, path string) (exchange.Format, error) {
	if flag != "" {
		return exchange.ParseFormat(flag)
	}
	if path == "" || path == "-" {
		return exchange.FormatText, nil
	}
	return exchange.FormatFromPath(path)
}
