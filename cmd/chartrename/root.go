package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/chartrename/internal/config"
	"github.com/gyeh/chartrename/internal/logging"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "chartrename",
	Short: "Clinic chart PDF renamer",
	Long: "Extracts the patient name and appointment date from clinic chart PDF exports\n" +
		"and renames them with a deterministic, collision-safe naming convention.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to YAML config file")
	pf.StringVar(&cfg.OutputDir, "output", "", "Output folder for renamed files (default: rename in place)")
	pf.StringVar(&cfg.Format, "format", "", "Filename format: current_discharge, appt_billing, appt_billing_eval, appt_billing_progress, appt_billing_discharge")
	pf.StringVar(&cfg.LogFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&cfg.LogFile, "log-file", "", "Also write logs to this rotating file")
}

// setup merges the optional config file and initializes logging; shared by
// every subcommand.
func setup() (zerolog.Logger, error) {
	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			return zerolog.Logger{}, err
		}
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return logging.Setup(cfg.LogFormat, cfg.LogFile), nil
}
