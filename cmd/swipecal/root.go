package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool

	view string
	mode string
	rtl  bool

	multiView bool
	weeks     int
	firstDay  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swipecal",
		Short:         "swipecal is a themeable terminal date range picker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a picker configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringVar(&flags.view, "view", "", "Initial view level (month, year, decade, century)")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "Selection mode (single, multiple, range, multirange, extendable)")
	cmd.Flags().BoolVar(&flags.rtl, "rtl", false, "Right-to-left navigation")
	cmd.Flags().BoolVar(&flags.multiView, "multi-view", false, "Show two adjacent views side by side")
	cmd.Flags().IntVar(&flags.weeks, "weeks", 0, "Week rows in the month view (1-6)")
	cmd.Flags().StringVar(&flags.firstDay, "first-day", "", "First day of the week (sunday, monday, ...)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}
