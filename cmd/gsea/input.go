package main

import (
	"bufio"
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"

	"github.com/carbocation/gsea"
	"github.com/carbocation/gsea/geneset"
	"github.com/carbocation/gsea/ranking"
)

func loadRanks(ctx context.Context, client *storage.Client, path, layout, delim string) (*ranking.RankedList, error) {
	parser, err := ranking.NewParser(layout)
	if err != nil {
		return nil, err
	}

	rc, err := gsea.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	br := bufio.NewReaderSize(rc, 64*1024)

	switch delim {
	case "":
	case "auto":
		parser.CSVReaderSettings.Comma = gsea.SniffDelimiter(br)
	case `\t`, "tab":
		parser.CSVReaderSettings.Comma = '\t'
	default:
		parser.CSVReaderSettings.Comma = rune(delim[0])
	}

	entries, err := parser.Read(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	list, err := ranking.New(entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return list, nil
}

func loadGeneSets(ctx context.Context, client *storage.Client, path string) (*geneset.Collection, error) {
	rc, err := gsea.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sets, err := geneset.ReadGMT(rc)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return sets, nil
}
