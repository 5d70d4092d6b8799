package runner

import (
	"os"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/pslstat"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	URL                string
	InputFile          string
	UserAgent          string
	ExcludeTLDs        goflags.StringSlice
	OutputDir          string
	Config             string
	Timeout            int
	Top                int
	DriftCheck         bool
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Naming popularity analysis for public suffix list components.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.URL, "url", "u", pslstat.DefaultSourceURL, "url of the public suffix list to analyze"),
		flagSet.StringVarP(&opts.InputFile, "input", "i", "", "analyze a local suffix list file instead of fetching"),
		flagSet.StringVarP(&opts.UserAgent, "user-agent", "ua", "", "custom user agent sent while fetching the list"),
		flagSet.StringSliceVarP(&opts.ExcludeTLDs, "exclude-tld", "et", nil, "tlds excluded wholesale from aggregation (comma-separated, file) (default it,jp,no)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.IntVar(&opts.Timeout, "timeout", 30, "timeout in seconds for fetching the list"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.OutputDir, "output-dir", "od", ".", "directory to write the four report artifacts"),
		flagSet.IntVar(&opts.Top, "top", 10, "number of top components printed per frequency view"),
		flagSet.BoolVar(&opts.DriftCheck, "drift", false, "report how many patterns the compiled publicsuffix table is missing"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display pslstat version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `pslstat cli config file (default '$HOME/.config/pslstat/config.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update pslstat to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic pslstat update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("pslstat")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("pslstat version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current pslstat version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if opts.UserAgent == "" {
		opts.UserAgent = pslstat.Replace("pslstat/{{version}} (+https://github.com/projectdiscovery/pslstat)", map[string]interface{}{
			"version": version,
		})
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

// FetchTimeout returns the configured fetch timeout as a duration.
func (o *Options) FetchTimeout() time.Duration {
	return time.Duration(o.Timeout) * time.Second
}
