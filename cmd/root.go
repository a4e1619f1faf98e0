package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tanq16/rws-scrape/internal/deck"
	"github.com/tanq16/rws-scrape/internal/downloader"
	"github.com/tanq16/rws-scrape/internal/output"
	"github.com/tanq16/rws-scrape/internal/scraper"
	"github.com/tanq16/rws-scrape/internal/utils"
)

var debug bool

var ScrapeVersion = "dev"

// no timeout, no custom headers: a stuck request stalls the run
var httpClientConfig = utils.HTTPClientConfig{}

var rootCmd = &cobra.Command{
	Use:     "rws-scrape OUTPUT_DIR",
	Short:   "Download the Rider-Waite-Smith Tarot card images into OUTPUT_DIR",
	Version: ScrapeVersion,
	Args:    cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
		utils.SetRunID(uuid.NewString())
	},
	Run: func(cmd *cobra.Command, args []string) {
		client := utils.NewScrapeHTTPClient(httpClientConfig)
		if err := scrape(client, args[0]); err != nil {
			output.PrintError(err.Error())
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(newManifestCmd())
}

func newSink(target string) (downloader.Sink, error) {
	if downloader.IsS3Target(target) {
		sink, err := downloader.NewS3Sink(target)
		if err != nil {
			return nil, err
		}
		return sink, nil
	}
	return downloader.LocalSink{Dir: target}, nil
}

func scrape(client utils.HTTPDoer, target string) error {
	sink, err := newSink(target)
	if err != nil {
		return err
	}
	log.Debug().Str("op", "cmd/root").Msgf("scraping %s into %s", deck.SourceURL, target)
	manifest, err := scraper.ScrapeManifest(client, deck.SourceURL, deck.ImageHostPrefix)
	if err != nil {
		return err
	}
	summary, err := downloader.Run(downloader.Config{
		Client: client,
		Sink:   sink,
		StartFunc: func(entry deck.Entry, dest string) {
			output.PrintSaving(entry.URL, dest)
		},
		ResultFunc: func(result downloader.Result) {
			if result.OK() {
				output.PrintSaved(result.Path, result.Bytes)
				return
			}
			output.PrintStatusError(result.StatusCode)
		},
	}, manifest)
	if err != nil {
		return err
	}
	output.PrintSummary(summary.Saved, summary.Failed)
	return nil
}
