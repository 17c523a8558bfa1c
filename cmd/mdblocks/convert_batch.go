package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	mdblocks "github.com/alnah/go-mdblocks"
	"github.com/alnah/go-mdblocks/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrReadCSS         = errors.New("failed to read CSS file")
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrConverterInit   = errors.New("failed to initialize converter")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input mdblocks.Input) (*mdblocks.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdblocks.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() CLIConverter
	Release(CLIConverter)
	InitError() error
	Size() int
	Close() error
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string // HTML file
	PDFPath    string // empty unless a PDF was written
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))
	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))

	var wg sync.WaitGroup
	for range concurrency {
		wg.Go(func() {
			conv := pool.Acquire()
			if conv == nil {
				// Converter creation failed, mark remaining jobs as failed
				initErr := ErrConverterInit
				if err := pool.InitError(); err != nil {
					initErr = fmt.Errorf("%w: %w", ErrConverterInit, err)
				}
				for idx := range jobs {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: initErr}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		})
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	sourceDir, err := filepath.Abs(filepath.Dir(f.InputPath))
	if err != nil {
		return fail(fmt.Errorf("resolving source directory: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrCreateOutputDir, err))
	}

	convResult, err := conv.Convert(ctx, mdblocks.Input{
		Markdown:  string(content),
		SourceDir: sourceDir,
		Title:     resolveTitle(params.title, string(content), f.InputPath),
		CSS:       params.css,
		Page:      params.page,
		HTMLOnly:  !params.pdf,
	})
	if err != nil {
		return fail(err)
	}

	if err := fileutil.WriteFile(f.OutputPath, convResult.HTML, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	if params.pdf {
		pdfPath := pdfOutputPath(f.OutputPath)
		if err := fileutil.WriteFile(pdfPath, convResult.PDF, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
		}
		result.PDFPath = pdfPath
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	FirstErr  error
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err == nil {
			summary.Succeeded++
			continue
		}
		summary.Failed++
		if summary.FirstErr == nil {
			summary.FirstErr = r.Err
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %s\n", r.InputPath, formatError(r.Err, env))
			continue
		}

		if quiet {
			continue
		}

		outputs := r.OutputPath
		if r.PDFPath != "" {
			outputs += ", " + r.PDFPath
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, outputs, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", outputs)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}
