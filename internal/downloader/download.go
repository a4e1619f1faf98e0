package downloader

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/rws-scrape/internal/deck"
	"github.com/tanq16/rws-scrape/internal/utils"
)

// Run fetches every manifest entry in order and hands 200 bodies to the sink.
// Non-200 responses are reported and skipped; transport and sink failures
// stop the run.
func Run(cfg Config, manifest deck.Manifest) (Summary, error) {
	if cfg.Client == nil || cfg.Sink == nil {
		return Summary{}, errors.New("downloader needs both a client and a sink")
	}
	var summary Summary
	for _, entry := range manifest.Entries() {
		dest := cfg.Sink.Destination(entry.Name)
		if cfg.StartFunc != nil {
			cfg.StartFunc(entry, dest)
		}
		result, err := downloadEntry(cfg, entry, dest)
		if err != nil {
			return summary, err
		}
		if result.OK() {
			summary.Saved++
		} else {
			summary.Failed++
		}
		if cfg.ResultFunc != nil {
			cfg.ResultFunc(result)
		}
	}
	log.Debug().Str("op", "downloader/download").Msgf("run finished: %d saved, %d failed", summary.Saved, summary.Failed)
	return summary, nil
}

func downloadEntry(cfg Config, entry deck.Entry, dest string) (Result, error) {
	result := Result{Entry: entry, Path: dest}
	resp, err := utils.Get(cfg.Client, entry.URL)
	if err != nil {
		return result, fmt.Errorf("error downloading %s: %w", entry.Name, err)
	}
	defer resp.Body.Close()
	result.StatusCode = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		result.Err = &DownloadError{Name: entry.Name, URL: entry.URL, StatusCode: resp.StatusCode}
		log.Error().Str("op", "downloader/download").Err(result.Err).Msg("skipping image")
		return result, nil
	}
	n, err := cfg.Sink.Write(entry.Name, resp.Body)
	if err != nil {
		return result, fmt.Errorf("error writing %s: %w", dest, err)
	}
	result.Bytes = n
	log.Debug().Str("op", "downloader/download").Msgf("wrote %s (%s)", dest, utils.FormatBytes(uint64(n)))
	return result, nil
}
