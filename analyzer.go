package pslstat

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

// Default artifact names, kept compatible with the reference analysis output.
const (
	TotalCSVName      = "sld_popularity_total.csv"
	UniqueTLDCSVName  = "sld_popularity_unique_tld.csv"
	ComponentJSONName = "sld_string_to_tlds.json"
	TLDJSONName       = "sld_tld_to_strings.json"
)

const defaultUserAgent = "pslstat (+https://github.com/projectdiscovery/pslstat)"

const summaryLineTemplate = "  {{component}}: {{value}}"

// Analyzer Options
type Options struct {
	// URL of the suffix list to analyze (DefaultSourceURL if empty)
	URL string
	// UserAgent sent while fetching the list
	UserAgent string
	// InputFile analyzes a local list copy instead of fetching URL
	InputFile string
	// StartMarker/EndMarker delimit the analyzed section
	StartMarker string
	EndMarker   string
	// ExcludeTLDs are skipped wholesale during aggregation
	// nil means the default set, an empty slice disables exclusion
	ExcludeTLDs []string
	// OutputDir receives the four report artifacts
	OutputDir string
	// Timeout bounds the list download
	Timeout time.Duration
	// Top is the number of summary entries printed per frequency view
	Top int
	// DriftCheck compares parsed patterns against the compiled
	// publicsuffix table shipped with golang.org/x/net
	DriftCheck bool
	// Fetcher overrides the list source, mainly for tests
	Fetcher Fetcher
}

// Result holds the aggregate indexes and both frequency views of a run.
type Result struct {
	Index              *Index
	TotalFrequency     map[string]int
	UniqueTLDFrequency map[string]int
}

// Analyzer runs the fetch -> extract -> parse -> report pipeline.
type Analyzer struct {
	opts    *Options
	fetcher Fetcher
	exclude map[string]struct{}
}

// New creates and returns new analyzer instance from options
func New(opts *Options) (*Analyzer, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.StartMarker == "" {
		opts.StartMarker = BeginICANNMarker
	}
	if opts.EndMarker == "" {
		opts.EndMarker = EndICANNMarker
	}
	if opts.ExcludeTLDs == nil {
		opts.ExcludeTLDs = DefaultConfig.ExcludeTLDs
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultConfig.OutputDir
	}
	if opts.Top <= 0 {
		opts.Top = 10
	}
	a := &Analyzer{
		opts:    opts,
		exclude: NewExcludeSet(opts.ExcludeTLDs),
	}
	switch {
	case opts.Fetcher != nil:
		a.fetcher = opts.Fetcher
	case opts.InputFile != "":
		a.fetcher = &FileFetcher{Path: opts.InputFile}
	default:
		if opts.URL == "" {
			opts.URL = DefaultSourceURL
		}
		userAgent := opts.UserAgent
		if userAgent == "" {
			userAgent = defaultUserAgent
		}
		fetcher, err := NewHTTPFetcher(opts.URL, userAgent, opts.Timeout)
		if err != nil {
			return nil, err
		}
		a.fetcher = fetcher
	}
	return a, nil
}

// Run executes the whole pipeline. Artifacts are only written once fetch,
// extraction and parsing all succeeded, so a failed run leaves no output
// behind.
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	gologger.Info().Msgf("Fetching public suffix list...")
	content, err := a.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	gologger.Info().Msgf("Extracting ICANN domains section...")
	lines, err := ExtractSection(content, a.opts.StartMarker, a.opts.EndMarker)
	if err != nil {
		return nil, err
	}
	gologger.Info().Msgf("Found %v lines in ICANN section", len(lines))

	if len(a.opts.ExcludeTLDs) > 0 {
		gologger.Info().Msgf("Parsing domains (excluding .%v)...", strings.Join(a.opts.ExcludeTLDs, ", ."))
	} else {
		gologger.Info().Msgf("Parsing domains...")
	}
	idx := ParseLines(lines, a.exclude)
	gologger.Info().Msgf("Found %v unique components", len(idx.ComponentTLDs))
	gologger.Info().Msgf("Found %v unique TLDs", len(idx.TLDComponents))

	if a.opts.DriftCheck {
		gologger.Verbose().Msgf("%v patterns are missing from the compiled publicsuffix table", TableDrift(lines))
	}

	gologger.Info().Msgf("Calculating frequencies...")
	result := &Result{
		Index:              idx,
		TotalFrequency:     idx.TotalFrequencies(),
		UniqueTLDFrequency: idx.UniqueTLDFrequencies(),
	}

	if err := a.writeArtifacts(result); err != nil {
		return nil, err
	}

	a.printTop("total", result.TotalFrequency)
	a.printTop("unique TLD", result.UniqueTLDFrequency)
	return result, nil
}

func (a *Analyzer) writeArtifacts(result *Result) error {
	if !fileutil.FolderExists(a.opts.OutputDir) {
		if err := fileutil.CreateFolder(a.opts.OutputDir); err != nil {
			return errorutil.NewWithTag("pslstat", "failed to create output dir %v got %v", a.opts.OutputDir, err)
		}
	}

	gologger.Info().Msgf("Writing output files...")
	if err := a.writeArtifact(TotalCSVName, func(f io.Writer) (int, error) {
		return WriteFrequencyCSV(f, RankByValue(result.TotalFrequency))
	}); err != nil {
		return err
	}
	if err := a.writeArtifact(UniqueTLDCSVName, func(f io.Writer) (int, error) {
		return WriteFrequencyCSV(f, RankByValue(result.UniqueTLDFrequency))
	}); err != nil {
		return err
	}
	if err := a.writeArtifact(ComponentJSONName, result.Index.WriteComponentDetails); err != nil {
		return err
	}
	return a.writeArtifact(TLDJSONName, result.Index.WriteTLDDetails)
}

func (a *Analyzer) writeArtifact(name string, write func(w io.Writer) (int, error)) error {
	path := filepath.Join(a.opts.OutputDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return errorutil.NewWithTag("pslstat", "failed to open output file %v got %v", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	count, err := write(f)
	if err != nil {
		return errorutil.NewWithTag("pslstat", "failed to write %v got %v", path, err)
	}
	gologger.Info().Msgf("Written %v entries to %v", count, path)
	return nil
}

func (a *Analyzer) printTop(view string, freq map[string]int) {
	entries := RankByValue(freq)
	if len(entries) > a.opts.Top {
		entries = entries[:a.opts.Top]
	}
	gologger.Info().Msgf("Top %v most popular components (%v):", a.opts.Top, view)
	for _, entry := range entries {
		gologger.Print().Msgf("%s", Replace(summaryLineTemplate, map[string]interface{}{
			"component": entry.Component,
			"value":     entry.Value,
		}))
	}
}
