package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"tms/internal/lookup"
	"tms/internal/lookup/export"
	"tms/internal/platform/config"
	"tms/internal/platform/logger"
	dErrors "tms/pkg/domain-errors"
)

// createOutput opens the export destination for -o paths.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// main writes the lookup catalog in the configured format. Environment
// variables set the defaults; flags override them.
func main() {
	cfg := config.FromEnv()
	log := logger.New(os.Stderr, cfg.LogLevel)

	if err := run(os.Args[1:], cfg, os.Stdout, log); err != nil {
		log.Error("catalog export failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, cfg config.Export, stdout io.Writer, log *slog.Logger) error {
	fs := flag.NewFlagSet("lookups", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	formatFlag := fs.String("format", cfg.Format, "output format: json or text")
	outputFlag := fs.String("o", cfg.Output, "output file, - for stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := export.ParseFormat(*formatFlag)
	if err != nil {
		return err
	}

	catalog := lookup.Catalog()
	if *outputFlag == "-" {
		err = export.Write(stdout, catalog, format)
	} else {
		err = writeFile(*outputFlag, catalog, format)
	}
	if err != nil {
		return err
	}
	log.Info("catalog written", "format", format, "output", *outputFlag, "sizes", catalog.Sizes())
	return nil
}

// writeFile renders the catalog to path. A failed close is reported, since
// buffered filesystems surface write errors there.
func writeFile(path string, c lookup.CatalogView, f export.Format) error {
	out, err := createOutput(path)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create output")
	}
	if err := export.Write(out, c, f); err != nil {
		_ = out.Close()
		return err
	}
	return dErrors.Wrap(out.Close(), dErrors.CodeInternal, "failed to close output")
}
