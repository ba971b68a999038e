package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/games/golf"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the golf.yaml that a session would use: the --config file, or
~/.golf/configs/golf.yaml, or ./configs/golf.yaml, or the built-in
defaults, with the --difficulty preset applied.

Examples:
  golf config > ~/.golf/configs/golf.yaml
  golf config --difficulty hard
  golf config --defaults`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := golf.LoadConfig()
	if err != nil {
		newLogger(os.Stderr, "golf").Warn("config not loaded, showing defaults", "error", err)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
