// cmd/openseer-report/main.go
//
// One-shot command line front end for the sales pipeline: fetches the
// last n sales, prints the ranked table and the top-collections summary,
// and exits non-zero if the run fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/H4estu/OpenSeer/config"
	"github.com/H4estu/OpenSeer/opensea"
	"github.com/H4estu/OpenSeer/sales"
	"github.com/H4estu/OpenSeer/utils"
)

func main() {
	numSales := flag.Int("n", 1, "number of sales to request (1-300)")
	verbose := flag.Bool("v", false, "log pipeline details to stderr")
	flag.Parse()

	if !utils.IsValidNumSales(*numSales) {
		fmt.Fprintf(os.Stderr, "number of sales must be between %d and %d\n", utils.MinNumSales, utils.MaxNumSales)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := opensea.NewClient(cfg.OpenSea, logger)
	service := sales.NewService(client, logger)

	report, err := service.Report(ctx, *numSales)
	if err != nil {
		fmt.Fprintln(os.Stderr, sales.UserMessage(err))
		os.Exit(1)
	}

	fmt.Println(report.ChartTitle)
	for _, row := range report.Ranked {
		fmt.Printf("%4d  %s\n", row.Sales, row.Collection)
	}

	fmt.Println()
	fmt.Println(report.TopHeading)
	for i, row := range report.Top {
		fmt.Printf("%d. %s (%d)\n", i+1, row.Collection, row.Sales)
	}
}
