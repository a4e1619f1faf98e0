package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/rws-scrape/internal/deck"
	"github.com/tanq16/rws-scrape/internal/output"
	"github.com/tanq16/rws-scrape/internal/scraper"
	"github.com/tanq16/rws-scrape/internal/utils"
	"gopkg.in/yaml.v3"
)

func newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the card name to image URL mapping as YAML without downloading",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			client := utils.NewScrapeHTTPClient(httpClientConfig)
			if err := printManifest(client, os.Stdout); err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
		},
	}
	return cmd
}

func printManifest(client utils.HTTPDoer, w io.Writer) error {
	manifest, err := scraper.ScrapeManifest(client, deck.SourceURL, deck.ImageHostPrefix)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(manifest); err != nil {
		return fmt.Errorf("error encoding manifest: %w", err)
	}
	return nil
}
