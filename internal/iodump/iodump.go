// Package iodump loads NCBI taxonomy dump files into a lineage resolver.
package iodump

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlineage/internal/iofs"
	"github.com/gnames/gnlineage/pkg/config"
	"github.com/gnames/gnlineage/pkg/lineage"
	"github.com/gnames/gnlineage/pkg/taxonomy"
	"golang.org/x/sync/errgroup"
)

// Load reads names and nodes files of the dump described by cfg.
// Both files are parsed at the same time, the resolver is returned only
// after both succeeded. Cancelling ctx stops parsing.
func Load(ctx context.Context, cfg *config.Config) (*lineage.Resolver, error) {
	start := time.Now()
	namesPath := cfg.Dump.NamesPath()
	nodesPath := cfg.Dump.NodesPath()
	rootID := cfg.Dump.RootID
	if rootID == "" {
		rootID = taxonomy.DefaultRootID
	}

	namesFile, namesSize, err := open(namesPath)
	if err != nil {
		return nil, err
	}
	defer namesFile.Close()

	nodesFile, nodesSize, err := open(nodesPath)
	if err != nil {
		return nil, err
	}
	defer nodesFile.Close()

	slog.Info("Loading taxonomy dump",
		"names", namesPath,
		"nodes", nodesPath,
		"size", humanize.Bytes(uint64(namesSize+nodesSize)),
	)

	var namesR, nodesR io.Reader = namesFile, nodesFile
	var bar *pb.ProgressBar
	if cfg.WithProgress {
		bar = newProgressBar(namesSize+nodesSize, "Loading dump ")
		// proxy readers are not closed, closing them finishes the bar
		namesR = bar.NewProxyReader(namesFile)
		nodesR = bar.NewProxyReader(nodesFile)
	}

	var names *taxonomy.NameIndex
	var tree *taxonomy.Tree
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		names, err = taxonomy.ReadNames(gCtx, namesR, namesPath)
		return err
	})

	g.Go(func() error {
		var err error
		tree, err = taxonomy.ReadNodes(gCtx, nodesR, nodesPath, rootID)
		return err
	})

	err = g.Wait()
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		slog.Error("Cannot load taxonomy dump", "error", err)
		return nil, err
	}

	if !tree.Has(rootID) {
		err = MissingRootError(rootID, nodesPath)
		slog.Error("Root node is absent", "root", rootID, "error", err)
		return nil, err
	}

	slog.Info("Taxonomy dump loaded",
		"names", humanize.Comma(int64(names.Len())),
		"scientific_names", humanize.Comma(int64(names.ScientificLen())),
		"nodes", humanize.Comma(int64(tree.Len())),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)

	return lineage.NewResolver(names, tree), nil
}

func open(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, iofs.ReadFileError(path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, iofs.ReadFileError(path, err)
	}
	return f, info.Size(), nil
}

func newProgressBar(total int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
