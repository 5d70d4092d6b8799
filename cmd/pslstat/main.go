package main

import (
	"context"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/pslstat"
	"github.com/projectdiscovery/pslstat/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	opts := pslstat.Options{
		URL:        cliOpts.URL,
		UserAgent:  cliOpts.UserAgent,
		InputFile:  cliOpts.InputFile,
		OutputDir:  cliOpts.OutputDir,
		Timeout:    cliOpts.FetchTimeout(),
		Top:        cliOpts.Top,
		DriftCheck: cliOpts.DriftCheck,
	}
	if cliOpts.ExcludeTLDs != nil {
		opts.ExcludeTLDs = cliOpts.ExcludeTLDs
	}

	analyzer, err := pslstat.New(&opts)
	if err != nil {
		gologger.Fatal().Msgf("failed to configure analyzer got %v", err)
	}
	if _, err := analyzer.Run(context.Background()); err != nil {
		gologger.Fatal().Msgf("analysis failed: %v", err)
	}
	gologger.Info().Msgf("Analysis complete!")
}
