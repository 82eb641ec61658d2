package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"

	"github.com/craftledger/etsyprofit/internal/config"
	"github.com/craftledger/etsyprofit/internal/engine"
	"github.com/craftledger/etsyprofit/internal/importer"
	"github.com/craftledger/etsyprofit/internal/report"
)

type Params struct {
	File      string `descr:"Path to the transaction export file" positional:"true"`
	Source    string `descr:"Source type" alts:"etsy-csv,etsy-xlsx" strict:"true"`
	Format    string `descr:"Output format (table or json)" alts:"table,json" strict:"true"`
	Config    string `descr:"Path to config file"`
	MaxOrders int    `descr:"Max orders to show in the table (0 = all)"`
}

func main() {
	boa.NewCmdT[Params]("etsyprofit").
		WithShort("Reconcile an Etsy transaction export into a profit report").
		WithLong("Parses an Etsy CSV or XLSX transaction export, categorizes every row (sales, fees, taxes, shipping, refunds), groups them into orders and reports net profit per order and in total.").
		WithRunFunc(run).
		Run()
}

func run(params *Params) {
	cfg := loadConfig(params.Config)

	source, path := importer.ParseFileArg(params.File)
	if params.Source != "" {
		source = params.Source
	}
	if source == "" && cfg != nil {
		source = cfg.Source
	}
	if source == "" {
		source = importer.InferSource(path)
	}

	opts := engine.Options{}
	if cfg != nil {
		opts.ExtraColumns = cfg.Columns
	}

	data, err := importer.ImportFile(source, path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing file: %v\n", err)
		os.Exit(1)
	}

	if len(data.RawTransactions) == 0 {
		fmt.Fprintln(os.Stderr, "No valid transactions found in file.")
		os.Exit(1)
	}

	if params.Format == "json" {
		if err := report.PrintJSON(os.Stdout, data); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cur := report.CurrencyFor(data)
	if cfg != nil && cfg.Currency != "" {
		cur = report.GetCurrency(cfg.Currency)
	}
	report.PrintTable(os.Stdout, data, report.Options{
		Currency:  cur,
		MaxOrders: params.MaxOrders,
	})
}

// loadConfig reads the config file. A missing file at the default path is
// fine; an explicitly given path must exist.
func loadConfig(path string) *config.Config {
	explicit := path != ""
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
