// geneoverlap tests gene sets for over-representation among a list of genes of
// interest, using every gene in a ranks file as the universe. It is the
// threshold-based counterpart to the gsea command.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"

	"github.com/carbocation/gsea"
	_ "github.com/carbocation/gsea/compileinfoprint"
	"github.com/carbocation/gsea/geneset"
	"github.com/carbocation/gsea/ora"
	"github.com/carbocation/gsea/ranking"
)

func main() {
	var (
		genesFile, ranksFile, layout, gmtFile, outFile string
		top                                             int
	)

	flag.StringVar(&genesFile, "genes", "", "Filename containing one gene identifier per line: your genes of interest. Ignored if -top is set.")
	flag.StringVar(&ranksFile, "ranks", "", "Ranks file. Every gene in it forms the universe.")
	flag.StringVar(&layout, "layout", "RNK", "Layout of the ranks file. Valid layouts: "+ranking.LayoutNames())
	flag.IntVar(&top, "top", 0, "Optional. Use the top N ranked genes as the genes of interest. Negative values take the bottom N.")
	flag.StringVar(&gmtFile, "gmt", "", "Gene set file in GMT format.")
	flag.StringVar(&outFile, "out", "", "Output file. If not specified, writes to stdout.")
	flag.Parse()

	if ranksFile == "" || gmtFile == "" || (genesFile == "" && top == 0) {
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx := context.Background()

	var client *storage.Client
	for _, path := range []string{genesFile, ranksFile, gmtFile} {
		if strings.HasPrefix(path, "gs://") {
			var err error
			if client, err = storage.NewClient(ctx); err != nil {
				log.Fatalln(err)
			}
			defer client.Close()
			break
		}
	}

	list, err := readRanks(ctx, client, ranksFile, layout)
	if err != nil {
		log.Fatalln(err)
	}

	var selected []string
	if top != 0 {
		selected = ora.TopGenes(list, top)
	} else if selected, err = readGeneList(ctx, client, genesFile); err != nil {
		log.Fatalln(err)
	}
	log.Println(len(selected), "genes of interest out of a universe of", list.Len())

	rc, err := gsea.Open(ctx, gmtFile, client)
	if err != nil {
		log.Fatalln(err)
	}
	sets, err := geneset.ReadGMT(rc)
	rc.Close()
	if err != nil {
		log.Fatalln(err)
	}

	report, err := ora.Test(selected, list.Genes(), sets)
	if err != nil {
		log.Fatalln(err)
	}
	if report.SelectedMissing > 0 {
		log.Println(report.SelectedMissing, "genes of interest were not in the universe and were ignored")
	}

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

	log.Println(len(report.Results), "gene sets tested,", len(report.Skipped), "skipped")
}

func readRanks(ctx context.Context, client *storage.Client, path, layout string) (*ranking.RankedList, error) {
	parser, err := ranking.NewParser(layout)
	if err != nil {
		return nil, err
	}

	rc, err := gsea.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	entries, err := parser.Read(rc)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return ranking.New(entries)
}

func readGeneList(ctx context.Context, client *storage.Client, path string) ([]string, error) {
	rc, err := gsea.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	genes := make([]string, 0)
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		genes = append(genes, strings.Fields(line)[0])
	}

	return genes, scanner.Err()
}
