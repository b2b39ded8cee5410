package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin"

	"github.com/yassir56069/XML2Excel/config"
	"github.com/yassir56069/XML2Excel/pipeline"
	"github.com/yassir56069/XML2Excel/sink"
	"github.com/yassir56069/XML2Excel/watch"
)

func main() {
	cmdFlatten := kingpin.Command("flatten", "Convert one XML document to a workbook")
	flattenFile := cmdFlatten.Arg("file", "Source XML file").Required().ExistingFile()

	cmdUnflatten := kingpin.Command("unflatten", "Convert one workbook back to an XML document")
	unflattenFile := cmdUnflatten.Arg("file", "Source workbook").Required().ExistingFile()

	cmdBatch := kingpin.Command("batch", "Convert every matching file in a directory")
	batchDir := cmdBatch.Arg("dir", "Directory to sweep").Required().ExistingDir()

	cmdWatch := kingpin.Command("watch", "Convert files as they arrive in a directory")
	watchDir := cmdWatch.Arg("dir", "Directory to watch").Required().ExistingDir()

	outDir := kingpin.Flag("out", "Destination directory (default: alongside the source)").String()
	reverse := kingpin.Flag("reverse", "Read workbooks instead of XML in batch and watch modes").Bool()
	database := kingpin.Flag("database", "Postgres DSN for the conversion log").String()
	settle := kingpin.Flag("settle", "Quiet period before converting an arriving file").Duration()
	cmd := kingpin.Parse()

	cfg, err := config.Load(config.Config{
		OutputDir:   *outDir,
		DatabaseDSN: *database,
		SettleDelay: *settle,
	})
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(2)
	}
	if *reverse {
		cfg.Extension = ".xlsx"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logSink := sink.Sink(sink.Nop{})
	if cfg.DatabaseDSN != "" {
		pg, err := sink.OpenPostgres(cfg.DatabaseDSN)
		if err != nil {
			slog.Error("Cannot open conversion log database", "error", err)
			os.Exit(2)
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			slog.Error("Cannot prepare conversion log table", "error", err)
			os.Exit(2)
		}
		logSink = pg
	}

	runner := &runner{sink: logSink, outDir: cfg.OutputDir, reverse: *reverse}

	switch cmd {
	case cmdFlatten.FullCommand():
		runner.reverse = false
		runner.convert(ctx, *flattenFile)

	case cmdUnflatten.FullCommand():
		runner.reverse = true
		runner.convert(ctx, *unflattenFile)

	case cmdBatch.FullCommand():
		runner.sweep(ctx, *batchDir, cfg.Extension)

	case cmdWatch.FullCommand():
		cfg.WatchDir = *watchDir
		if err := runner.watch(ctx, cfg); err != nil && ctx.Err() == nil {
			slog.Error("Watcher stopped", "error", err)
			os.Exit(1)
		}
	}

	runner.report()
	if runner.failed > 0 {
		os.Exit(1)
	}
}

type runner struct {
	sink    sink.Sink
	outDir  string
	reverse bool

	converted int
	failed    int
}

// convert runs one file through the pipeline and records the outcome.
// Failures are reported and counted, never fatal to the run.
func (r *runner) convert(ctx context.Context, path string) {
	var res pipeline.Result
	if r.reverse {
		res = pipeline.Unflatten(path, r.outDir)
	} else {
		res = pipeline.Flatten(path, r.outDir)
	}

	if res.Document != nil {
		if err := r.sink.Record(ctx, sink.NewEntry(path, res.Document)); err != nil {
			slog.Error("Cannot record conversion", "source", path, "error", err)
		}
	}

	if !res.OK() {
		r.failed++
		slog.Error("Conversion failed", "source", res.Source, "error", res.Err)
		return
	}
	r.converted++
	slog.Info("Converted", "source", res.Source, "dest", res.Dest, "sheets", res.Sheets, "rows", res.Rows)
}

// sweep converts every file in dir matching ext, continuing past per-file
// failures.
func (r *runner) sweep(ctx context.Context, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Error("Cannot list directory", "dir", dir, "error", err)
		r.failed++
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		r.convert(ctx, filepath.Join(dir, entry.Name()))
	}
}

// watch drains settled paths from the directory watcher and converts each
// synchronously, until interrupted.
func (r *runner) watch(ctx context.Context, cfg config.Config) error {
	w := &watch.Watcher{Dir: cfg.WatchDir, Ext: cfg.Extension, Settle: cfg.SettleDelay}
	events := make(chan string)
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx, events) }()

	slog.Info("Watching", "dir", cfg.WatchDir, "ext", cfg.Extension, "settle", cfg.SettleDelay)
	for {
		select {
		case path := <-events:
			r.convert(ctx, path)
		case err := <-errc:
			return err
		case <-ctx.Done():
			return <-errc
		}
	}
}

func (r *runner) report() {
	fmt.Printf("%d converted, %d failed\n", r.converted, r.failed)
}
