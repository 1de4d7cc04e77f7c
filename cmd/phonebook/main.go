package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/phonebook/internal/config"
	"github.com/jeanpaul/phonebook/internal/directory"
	"github.com/jeanpaul/phonebook/internal/logging"
	"github.com/jeanpaul/phonebook/internal/tui"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "phonebook",
		Short: "Personal contact directory kept in a plain text file",
		Long: `phonebook keeps contacts in a flat file, one record per line with six
fields separated by ';': last name, first name, patronymic, organization,
work phone and personal phone.

Run without a command to start the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err = logging.New(logging.Options{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				File:   cfg.Log.File,
			})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger.Debug("config loaded",
				zap.String("command", cmd.Name()),
				zap.String("data_file", cfg.DataFile),
				zap.Int("page_size", cfg.PageSize),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runConsole,
	}

	flags := root.PersistentFlags()
	flags.StringP("data-file", "f", config.DefaultDataFile, "Contact file (created when missing)")
	flags.Int("page-size", config.DefaultPageSize, "Records per page")
	flags.String("theme", "auto", "Card style: auto, dark, light, notty, ...")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("log-format", "console", "Log format: console or json")
	flags.String("log-file", "", "Write logs to this file instead of stderr")

	root.AddCommand(
		newRunCmd(),
		newDoctorCmd(),
		newShowCmd(),
		newBrowseCmd(),
		newExportCmd(),
		newImportCmd(),
		newVersionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal("%v", err)
	}
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("error: "+msg))
	os.Exit(1)
}

// openDirectory opens the configured data file.
func openDirectory() (*directory.Directory, error) {
	return directory.Open(cfg.DataFile,
		directory.WithPageSize(cfg.PageSize),
		directory.WithLogger(logger),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
