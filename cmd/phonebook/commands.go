package main

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/phonebook/internal/health"
	"github.com/jeanpaul/phonebook/internal/tui"
	"github.com/jeanpaul/phonebook/pkg/version"
)

const cardWidth = 80

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  runConsole,
	}
}

func runConsole(cmd *cobra.Command, args []string) error {
	dir, err := openDirectory()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if isTerminal(out) {
		fmt.Fprint(out, tui.BannerStyle.Render(tui.Banner))
	}
	return tui.NewConsole(dir, cmd.InOrStdin(), out, logger).Run()
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the data file and configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tui.BannerStyle.Render("  Phone book health check"))
			fmt.Fprintln(out)

			fmt.Fprintf(out, "  %s %s ... ", tui.MenuNumberStyle.Render("●"), tui.MenuItemStyle.Render("data file "+cfg.DataFile))
			status := health.Check(cfg.DataFile)
			switch {
			case status.Healthy():
				fmt.Fprintf(out, "%s %s\n",
					tui.BannerStyle.Render("✓ "+status.Summary()),
					tui.HelpStyle.Render(status.Latency.Round(time.Microsecond).String()),
				)
			case !status.Exists:
				fmt.Fprintln(out, tui.HelpStyle.Render("- "+status.Error))
			default:
				fmt.Fprintln(out, tui.ErrorStyle.Render("✗ "+status.Error))
			}

			fmt.Fprintf(out, "  %s %s ... ", tui.MenuNumberStyle.Render("●"), tui.MenuItemStyle.Render("config"))
			if cfg.Source != "" {
				fmt.Fprintln(out, tui.BannerStyle.Render("✓ "+cfg.Source))
			} else {
				fmt.Fprintln(out, tui.HelpStyle.Render("- Using defaults (create config.yaml to customize)"))
			}
			fmt.Fprintln(out)

			if status.Exists && !status.Healthy() {
				return errors.New("data file is not usable")
			}
			fmt.Fprintln(out, tui.BannerStyle.Render("  Phone book is healthy!"))
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show POSITION",
		Short: "Show one record as a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := tui.ParseInt(args[0])
			if err != nil {
				return err
			}
			dir, err := openDirectory()
			if err != nil {
				return err
			}
			rec, err := dir.Get(position)
			if err != nil {
				return err
			}
			card, err := tui.RenderCard(rec, cfg.Theme, cardWidth)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), card)
			return nil
		},
	}
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Page through records in a full screen table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := openDirectory()
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewBrowseModel(dir),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			m, ok := final.(tui.BrowseModel)
			if !ok {
				return nil
			}
			rec, ok := m.Selected()
			if !ok {
				return nil
			}
			logger.Debug("record selected", zap.Int("position", rec.Position), zap.Int("page", m.Page()))
			card, err := tui.RenderCard(rec, cfg.Theme, cardWidth)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), card)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "phonebook %s (%s)\n", version.Version, version.Commit)
		},
	}
}
