package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dlapp/crmdeck/internal/config"
	"github.com/dlapp/crmdeck/internal/logger"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved preferences and log files",
	Long: `Reset removes the settings file (theme, sidebar mode, last open
section) and deletes the debug log.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := cfg.Reset(); err != nil {
		return fmt.Errorf("error clearing settings: %w", err)
	}
	fmt.Println("Settings cleared.")

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Printf("Warning: error clearing logs: %v\n", err)
	}
	if logsCleared > 0 {
		fmt.Printf("Removed %d log file(s).\n", logsCleared)
	}
	return nil
}
