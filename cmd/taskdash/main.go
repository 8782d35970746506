package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandeepkv93/taskdash/internal/update"
	"github.com/spf13/cobra"
)

var version = "dev"

type flags struct {
	filter  string
	sort    string
	noSeed  bool
	ids     string
	logFile string
}

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "taskdash failed: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd wires flags and config loading; start receives the final config.
func newRootCmd(start func(update.RuntimeConfig) error) *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "taskdash",
		Short:         "Terminal task dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return start(cfg)
		},
	}
	root.Flags().StringVar(&f.filter, "filter", "", "initial filter: all, active or completed")
	root.Flags().StringVar(&f.sort, "sort", "", "initial sort: priority or due")
	root.Flags().BoolVar(&f.noSeed, "no-seed", false, "start with an empty board")
	root.Flags().StringVar(&f.ids, "ids", "", "task id strategy: sequence or uuid")
	root.Flags().StringVar(&f.logFile, "log-file", "", "write debug log to this file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the taskdash version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return root
}

// loadConfig layers defaults, .env and the environment, then explicit flags.
func loadConfig(cmd *cobra.Command, f flags) (update.RuntimeConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return update.RuntimeConfig{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	fl := cmd.Flags()
	if fl.Changed("filter") {
		cfg.Filter = f.filter
	}
	if fl.Changed("sort") {
		cfg.Sort = f.sort
	}
	if fl.Changed("no-seed") {
		cfg.Seed = !f.noSeed
	}
	if fl.Changed("ids") {
		cfg.IDStrategy = f.ids
	}
	if fl.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return update.RuntimeConfig{}, err
	}
	return cfg, nil
}

func run(cfg update.RuntimeConfig) error {
	if cfg.LogFile != "" {
		lf, err := tea.LogToFile(cfg.LogFile, "taskdash")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer lf.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := update.NewModelWithConfig(cfg)
	if err != nil {
		return err
	}
	log.Printf("taskdash: starting filter=%s sort=%s ids=%s", cfg.Filter, cfg.Sort, cfg.IDStrategy)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
