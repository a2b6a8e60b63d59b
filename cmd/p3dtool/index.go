package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/pure3d/internal/batch"
	"github.com/Faultbox/pure3d/internal/catalog"
	"github.com/Faultbox/pure3d/internal/source"
)

// IndexCmd scans a directory tree into the catalogue.
type IndexCmd struct {
	Dir      string `arg:"" help:"Directory to scan" type:"existingdir"`
	Workers  int    `short:"j" help:"Parallel workers (default from config)"`
	Database string `help:"Catalogue database (default from config)" type:"path"`
}

func (c *IndexCmd) Run(a *app) error {
	if c.Workers > 0 {
		a.cfg.Index.Workers = c.Workers
	}
	if c.Database != "" {
		a.cfg.Index.Database = c.Database
	}

	paths, err := source.Find(c.Dir, a.cfg.Index.Extensions)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "No files found")
		return nil
	}

	store, err := catalog.Open(a.cfg.Index.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scanID, err := store.BeginScan(ctx, c.Dir)
	if err != nil {
		return err
	}
	a.log.Info("scan started",
		zap.String("scan", scanID),
		zap.Int("files", len(paths)),
		zap.Int("workers", a.cfg.Index.Workers))

	start := time.Now()
	results, runErr := batch.Run(ctx, batch.Config{
		Workers:      a.cfg.Index.Workers,
		Loader:       source.NewLoader(0),
		ParseOptions: a.parserOptions(),
		Log:          a.log.Named("batch"),
		Progress: func(done, total int) {
			if done%100 == 0 || done == total {
				a.log.Info("progress", zap.Int("done", done), zap.Int("total", total))
			}
		},
	}, paths)

	var failed, textures int
	for i := range results {
		r := &results[i]
		rec := fileRecord(r)
		if r.Err != nil {
			failed++
			a.log.Warn("file failed", zap.String("file", r.Path), zap.Error(r.Err))
		}
		textures += len(rec.Textures)
		// The store is written even after an interrupt so the partial
		// scan stays queryable.
		if err := store.RecordFile(context.Background(), scanID, rec); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("scan %s interrupted: %w", scanID, runErr)
	}
	if err := store.FinishScan(ctx, scanID); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Scan:\t%s\n", scanID)
	fmt.Fprintf(w, "Files:\t%d (%d failed)\n", len(results), failed)
	fmt.Fprintf(w, "Textures:\t%d\n", textures)
	fmt.Fprintf(w, "Elapsed:\t%s\n", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(w, "Database:\t%s\n", a.cfg.Index.Database)
	return w.Flush()
}

// fileRecord flattens a batch result into a catalogue row.
func fileRecord(r *batch.Result) catalog.File {
	rec := catalog.File{Path: r.Path, Unknown: r.Unknown()}
	if r.Type != 0 {
		rec.Variant = r.Type.String()
	}
	if r.Forest != nil {
		rec.Records = r.Forest.Len()
	}
	rec.Meshes, rec.Skins = r.Counts()
	if r.Err != nil {
		rec.Err = r.Err.Error()
	}
	for _, t := range r.Textures {
		rec.Textures = append(rec.Textures, catalog.Texture{
			Name:   t.Name,
			Format: t.Format.String(),
			Width:  int(t.Width),
			Height: int(t.Height),
			Digest: t.Info.Digest,
		})
	}
	return rec
}

// LookupCmd finds textures by content digest.
type LookupCmd struct {
	Digest   string `arg:"" help:"BLAKE3 digest as printed by the textures command"`
	Database string `help:"Catalogue database (default from config)" type:"path"`
}

func (c *LookupCmd) Run(a *app) error {
	if c.Database != "" {
		a.cfg.Index.Database = c.Database
	}
	if _, err := os.Stat(a.cfg.Index.Database); err != nil {
		return fmt.Errorf("catalogue %s: %w", a.cfg.Index.Database, err)
	}

	store, err := catalog.Open(a.cfg.Index.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	hits, err := store.Textures(context.Background(), c.Digest)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Fprintln(os.Stderr, "No textures found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tNAME\tFORMAT\tSIZE\tSCAN")
	for _, h := range hits {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%s\n", h.Path, h.Name, h.Format, h.Width, h.Height, h.ScanID)
	}
	return w.Flush()
}
