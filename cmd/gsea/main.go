// gsea runs a preranked gene set enrichment analysis: genes are ordered by a
// per-gene statistic, each gene set gets a running-sum enrichment score and a
// permutation p-value, and p-values are converted to Benjamini-Hochberg
// q-values across the gene sets.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/schollz/progressbar/v3"

	_ "github.com/carbocation/gsea/compileinfoprint"
	"github.com/carbocation/gsea/config"
	"github.com/carbocation/gsea/enrichment"
	"github.com/carbocation/gsea/ranking"
)

func main() {
	var (
		ranksFile, gmtFile, configFile, outFile, delim string
		showProgress                                   bool
	)

	cfg := config.DefaultConfig()

	flag.StringVar(&ranksFile, "ranks", "", "File (local or gs://, optionally compressed) with one gene and its statistic per line.")
	flag.StringVar(&gmtFile, "gmt", "", "Gene set file in GMT format (local or gs://, optionally compressed).")
	flag.StringVar(&configFile, "config", "", "Optional. YAML file with run parameters. Flags that are explicitly set take precedence.")
	flag.StringVar(&outFile, "out", "", "Output file. If not specified, writes to stdout.")
	flag.StringVar(&delim, "delim", "", "Column delimiter of the ranks file. Defaults to the layout's delimiter. 'auto' sniffs it from the file.")
	flag.BoolVar(&showProgress, "progress", false, "Show a progress bar on stderr.")
	flag.StringVar(&cfg.Layout, "layout", cfg.Layout, "Layout of the ranks file. Valid layouts: "+ranking.LayoutNames())
	flag.IntVar(&cfg.Permutations, "permutations", cfg.Permutations, "Number of gene set permutations used to build each null distribution.")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed. Results are reproducible for a given seed regardless of -workers.")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of gene sets to score concurrently. 0 uses every CPU.")
	flag.Float64Var(&cfg.Weight, "weight", cfg.Weight, "Exponent for weighting hits by |statistic|. 0 is the classic unweighted statistic.")
	flag.IntVar(&cfg.MinSize, "min-size", cfg.MinSize, "Skip gene sets with fewer than this many genes in the ranked list.")
	flag.IntVar(&cfg.MaxSize, "max-size", cfg.MaxSize, "Skip gene sets with more than this many genes in the ranked list. 0 means no limit.")
	flag.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "q-value threshold used for the summary printed to the log.")
	flag.Parse()

	if ranksFile == "" || gmtFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if configFile != "" {
		fromFile, err := config.LoadFile(configFile)
		if err != nil {
			log.Fatalln(err)
		}
		cfg = overrideWithFlags(fromFile, cfg)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	var client *storage.Client
	if strings.HasPrefix(ranksFile, "gs://") || strings.HasPrefix(gmtFile, "gs://") {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	list, err := loadRanks(ctx, client, ranksFile, cfg.Layout, delim)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Ranked", list.Len(), "genes from", ranksFile)

	sets, err := loadGeneSets(ctx, client, gmtFile)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Loaded", sets.Len(), "gene sets from", gmtFile)

	opts := cfg.Options()
	if showProgress {
		bar := progressbar.Default(int64(sets.Len()), "scoring gene sets")
		defer bar.Finish()
		opts.Progress = func() { bar.Add(1) }
	}

	log.Printf("Running %d permutations per gene set with seed %d\n", opts.Permutations, opts.Seed)
	report, err := enrichment.Run(ctx, list, sets, opts)
	if err != nil {
		log.Fatalln(err)
	}

	for _, skip := range report.Skipped {
		log.Printf("Skipped %s (%s): %d of %d genes in the ranked list\n", skip.Name, skip.Reason, skip.Matched, skip.Size)
	}

	// Writer
	var outWriter io.WriteCloser
	if outFile == "" {
		outWriter = os.Stdout
	} else {
		outWriter, err = os.Create(outFile)
		if err != nil {
			log.Fatalln(err)
		}
	}
	defer outWriter.Close()

	if err := report.WriteTSV(outWriter); err != nil {
		log.Fatalln(err)
	}

	summary, err := enrichment.Summarize(report, cfg.Alpha)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println(summary)
}

// overrideWithFlags starts from the file configuration and copies over every
// value whose flag was explicitly set on the command line.
func overrideWithFlags(fromFile, fromFlags *config.Config) *config.Config {
	out := *fromFile

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			out.Layout = fromFlags.Layout
		case "permutations":
			out.Permutations = fromFlags.Permutations
		case "seed":
			out.Seed = fromFlags.Seed
		case "workers":
			out.Workers = fromFlags.Workers
		case "weight":
			out.Weight = fromFlags.Weight
		case "min-size":
			out.MinSize = fromFlags.MinSize
		case "max-size":
			out.MaxSize = fromFlags.MaxSize
		case "alpha":
			out.Alpha = fromFlags.Alpha
		}
	})

	return &out
}
