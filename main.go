// bill-ledger converts statement PDFs into a normalized transaction ledger.
//
// Batch mode walks data/<account>/<bill>.pdf, writes one CSV per bill to
// output/<account>/<bill>.csv, merges each account into output/<account>.csv
// and finally combines everything, categorized, into
// output/final_output.csv. Serve mode exposes the same pipeline over HTTP.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/bill-ledger/internal/aggregator"
	"github.com/insightdelivered/bill-ledger/internal/api"
	"github.com/insightdelivered/bill-ledger/internal/config"
	"github.com/insightdelivered/bill-ledger/internal/extractor"
	"github.com/insightdelivered/bill-ledger/internal/models"
	"github.com/insightdelivered/bill-ledger/internal/parser"
	"github.com/insightdelivered/bill-ledger/internal/tagger"
	"github.com/insightdelivered/bill-ledger/internal/writer"
)

const version = "1.0.0"

const finalOutputName = "final_output.csv"

func main() {
	configFlag := flag.String("config", "", "Path to billledger.yaml (defaults to ./billledger.yaml)")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of the batch pipeline")
	addrFlag := flag.String("addr", ":8080", "Listen address for --serve")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("bill-ledger v%s\n", version)
		os.Exit(0)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	if *serveFlag {
		log.Info("serving", "addr", *addrFlag)
		if err := api.NewApp().Listen(*addrFlag); err != nil {
			log.Error("server stopped", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, log); err != nil {
		log.Error("pipeline failed", "err", err)
		os.Exit(1)
	}
}

// run executes the batch pipeline end to end. A malformed statement aborts
// the whole run: a partially-correct ledger is worse than no ledger.
func run(cfg config.Config, log *slog.Logger) error {
	accounts, err := os.ReadDir(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("read data dir: %w", err)
	}

	// Per-bill CSVs, grouped by account.
	byAccount := make(map[string][]models.Transaction)
	var accountOrder []string
	for _, account := range accounts {
		if !account.IsDir() {
			continue
		}
		name := account.Name()

		vendorID, err := cfg.VendorFor(name)
		if err != nil {
			return err
		}
		vendor, err := parser.New(vendorID)
		if err != nil {
			return err
		}

		bills, err := os.ReadDir(filepath.Join(cfg.DataDir, name))
		if err != nil {
			return fmt.Errorf("read account dir %s: %w", name, err)
		}

		accountOrder = append(accountOrder, name)
		for _, bill := range bills {
			if bill.IsDir() || !strings.EqualFold(filepath.Ext(bill.Name()), ".pdf") {
				continue
			}
			billPath := filepath.Join(cfg.DataDir, name, bill.Name())
			log.Info("processing", "bill", billPath, "vendor", vendorID)

			pages, err := extractor.ExtractText(billPath)
			if err != nil {
				return fmt.Errorf("%s: %w", billPath, err)
			}

			ctx := models.StatementContext{AccountName: name, FileName: bill.Name()}
			txns, err := parser.ParseStatement(vendor, ctx, pages)
			if err != nil {
				return err
			}
			log.Info("parsed", "bill", billPath, "transactions", len(txns))

			csvName := strings.TrimSuffix(bill.Name(), filepath.Ext(bill.Name())) + ".csv"
			if err := writer.WriteFile(filepath.Join(cfg.OutputDir, name, csvName), txns); err != nil {
				return err
			}
			byAccount[name] = append(byAccount[name], txns...)
		}
	}

	// One merged CSV per account, chronological.
	var all []models.Transaction
	for _, name := range accountOrder {
		merged := aggregator.Merge(byAccount[name])
		if err := writer.WriteFile(filepath.Join(cfg.OutputDir, name+".csv"), merged); err != nil {
			return err
		}
		all = append(all, merged...)
	}

	// Final combined output, categorized.
	final := aggregator.Merge(all)
	rules := make([]tagger.Rule, len(cfg.DescriptionMapping))
	for i, r := range cfg.DescriptionMapping {
		rules[i] = tagger.Rule{Match: r.Match, Category: r.Category}
	}
	tg := tagger.New(rules)
	descriptions := make([]string, len(final))
	for i, txn := range final {
		descriptions[i] = txn.Description
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	finalPath := filepath.Join(cfg.OutputDir, finalOutputName)
	f, err := os.Create(finalPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", finalPath, err)
	}
	defer f.Close()
	if err := writer.WriteTagged(f, final, tg.Categories(descriptions)); err != nil {
		return err
	}

	log.Info("done", "accounts", len(accountOrder), "transactions", len(final), "output", finalPath)
	return nil
}
