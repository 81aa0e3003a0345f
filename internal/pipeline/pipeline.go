// Package pipeline runs manifest discovery, entry extraction and serialization.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/open-cli-collective/transjson/internal/dataset"
	"github.com/open-cli-collective/transjson/internal/logging"
	"github.com/open-cli-collective/transjson/internal/manifest"
	"github.com/open-cli-collective/transjson/pkg/latex"
)

const (
	CodeManifestRead = "MANIFEST_READ_FAILED"
	CodeContentRead  = "CONTENT_READ_FAILED"
	CodeParse        = "LATEX_PARSE_FAILED"
	CodeOutputWrite  = "OUTPUT_WRITE_FAILED"
)

// ErrInvalidEncoding reports a content file that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("not valid UTF-8")

// Options configures a pipeline run.
type Options struct {
	Manifest string       // path to the root document
	Output   string       // path of the JSON file written by Run
	Keys     dataset.Keys // JSON field names of the two languages
	Logger   glog.Logger  // nil disables logging
}

// FileReport summarizes the entries extracted from one content file.
type FileReport struct {
	Path        string `json:"path"`
	Sections    int    `json:"sections"`
	Subsections int    `json:"subsections"`
	Paragraphs  int    `json:"paragraphs"`
	Skipped     int    `json:"skipped"`
}

// Report is the outcome of a run: every entry in manifest order plus per-file counts.
type Report struct {
	Files   []FileReport
	Entries []latex.Entry
	Output  string // empty unless Run wrote the file
}

// Collect parses every content file named by the manifest without writing output.
// Files are processed one at a time in manifest order; the first error aborts.
func Collect(opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	files, err := manifest.Load(opts.Manifest)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryCommand, err.Error()).
			WithTextCode(CodeManifestRead)
	}
	logger.Debug("manifest loaded", "manifest", opts.Manifest, "files", len(files))

	report := &Report{Entries: []latex.Entry{}}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("failed to read content file: %v", err)).
				WithTextCode(CodeContentRead)
		}
		if !utf8.Valid(data) {
			err := fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
			return nil, goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("failed to read content file: %v", err)).
				WithTextCode(CodeContentRead)
		}

		result, err := latex.ParseEntries(string(data))
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("failed to parse %s: %v", path, err)).
				WithTextCode(CodeParse)
		}

		counts := result.Counts()
		report.Files = append(report.Files, FileReport{
			Path:        path,
			Sections:    counts[latex.EntrySection],
			Subsections: counts[latex.EntrySubsection],
			Paragraphs:  counts[latex.EntryParagraph],
			Skipped:     len(result.Skipped),
		})
		report.Entries = append(report.Entries, result.Entries...)

		logger.Debug("content file parsed", "path", path, "entries", len(result.Entries), "skipped", len(result.Skipped))
		for _, s := range result.Skipped {
			logger.Trace("skipped macro", "path", path, "name", s.Name, "position", s.Position)
		}
	}

	return report, nil
}

// Run collects all entries and writes them to opts.Output. Nothing is written
// unless every file was read and parsed.
func Run(opts Options) (*Report, error) {
	report, err := Collect(opts)
	if err != nil {
		return nil, err
	}

	if err := dataset.WriteFile(opts.Output, report.Entries, opts.Keys); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryCommand, err.Error()).
			WithTextCode(CodeOutputWrite)
	}
	report.Output = opts.Output

	if opts.Logger != nil {
		opts.Logger.Info("translation data written", "output", opts.Output, "entries", len(report.Entries))
	}
	return report, nil
}
