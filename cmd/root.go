package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alibaba-rfq-scraper/config"
	"alibaba-rfq-scraper/utils"
)

var (
	demoFlag      bool
	outputDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "alibaba-rfq",
	Short: "Scrapes Alibaba RFQ listings into a timestamped CSV file.",
	Long: "alibaba-rfq fetches the Alibaba sourcing RFQ list, extracts one record per listing " +
		"and writes them to alibaba_rfq_data_<timestamp>.csv. When the site cannot be scraped " +
		"it falls back to built-in sample data.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cmd.Flags().Changed("demo") {
			cfg.DemoMode = demoFlag
		}
		if cmd.Flags().Changed("output-dir") {
			cfg.OutputDir = outputDirFlag
		}

		logger := utils.NewLogger(cfg.LogLevel)
		return run(cmd.Context(), cfg, logger, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&demoFlag, "demo", false, "Use built-in sample data instead of fetching the site.")
	rootCmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", ".", "Directory the CSV file is written to.")
}

// ExecuteContext runs the root command and exits non-zero on failure.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
