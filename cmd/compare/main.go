package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/moznion/go-optional"
	"github.com/pricelens-lab/pricelens/internal/chart"
	"github.com/pricelens-lab/pricelens/pkg/comparison"
	"github.com/pricelens-lab/pricelens/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

// compareAction is the core logic executed by the CLI command.
// It parses arguments, sets up the comparison client, and runs the comparison.
func compareAction(ctx context.Context, cmd *cli.Command) error {
	// Retrieve flag values from the context
	codeFlag := cmd.String("code")
	processedPath := cmd.String("processed")
	unprocessedPath := cmd.String("unprocessed")
	periodFlag := cmd.String("period")
	outputFlag := cmd.String("output")
	styleFlag := cmd.String("style")

	stockCode, err := strconv.ParseInt(codeFlag, 10, 64)
	if err != nil {
		return errors.Newf(errors.ErrCodeInvalidParameter, "stock code must be an integer, got %q", codeFlag)
	}

	// The period is checked before any snapshot file is opened
	period, err := comparison.ParsePeriod(periodFlag)
	if err != nil {
		return err
	}

	style := chart.DefaultConfig()
	if styleFlag != "" {
		style, err = chart.LoadConfig(styleFlag)
		if err != nil {
			return fmt.Errorf("failed to load style file: %w", err)
		}
	}

	// The bar is created on the first callback, once the row total is known
	var bar *progressbar.ProgressBar

	onProgress := func(current int, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription(fmt.Sprintf("Loading stock %d", stockCode)),
				progressbar.OptionShowCount())
		}

		bar.Set(current)
	}

	client, err := comparison.NewClient(comparison.ClientConfig{Style: style}, onProgress)
	if err != nil {
		return fmt.Errorf("failed to create comparison client: %w", err)
	}

	outputPath := optional.None[string]()
	if outputFlag != "" {
		outputPath = optional.Some(outputFlag)
	}

	handle, err := client.Compare(ctx, comparison.CompareParams{
		StockCode:       stockCode,
		ProcessedPath:   processedPath,
		UnprocessedPath: unprocessedPath,
		Period:          period,
		OutputPath:      outputPath,
	})
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if bar != nil {
		bar.Finish()
	}

	fmt.Printf("Chart saved to %s\n", handle.OutputPath.Unwrap())

	return nil
}

func main() {
	// Define the CLI application
	cmd := &cli.Command{
		Name:  "compare",
		Usage: "Compare a stock's closing price history before and after processing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "code",
				Aliases:  []string{"c"},
				Usage:    "Stock code to compare",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "processed",
				Aliases:  []string{"p"},
				Usage:    "Path to the processed snapshot CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "unprocessed",
				Aliases:  []string{"u"},
				Usage:    "Path to the unprocessed snapshot CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "period",
				Usage:    fmt.Sprintf("Sampling period of the snapshots (%s or %s)", comparison.PeriodWeekly, comparison.PeriodDaily),
				Value:    string(comparison.PeriodWeekly), // Default period
				Required: false,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Chart output path (.json or .html). Derived from the stock code when omitted.",
				Required: false,
			},
			&cli.StringFlag{
				Name:     "style",
				Aliases:  []string{"s"},
				Usage:    "Path to a YAML chart style file",
				Required: false,
			},
		},
		Action: compareAction, // Assign the action function
	}

	// Run the CLI application
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
