package scraper

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/rws-scrape/internal/deck"
	"github.com/tanq16/rws-scrape/internal/utils"
)

// FetchPage downloads and parses the page. The status is not checked: a
// bad page surfaces as a ValidationError during extraction.
func FetchPage(client utils.HTTPDoer, pageURL string) (*goquery.Document, error) {
	resp, err := utils.Get(client, pageURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching page %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Warn().Str("op", "scraper/extract").Msgf("page %s returned status %d", pageURL, resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing page %s: %w", pageURL, err)
	}
	return doc, nil
}

// ExtractImageLinks returns, in document order, the href of every anchor
// inside the first content region that points at hostPrefix.
func ExtractImageLinks(doc *goquery.Document, hostPrefix string) ([]string, error) {
	region := doc.Find(deck.ContentSelector).First()
	if region.Length() == 0 {
		return nil, ErrNoContentRegion
	}
	var links []string
	region.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if ok && strings.HasPrefix(href, hostPrefix) {
			links = append(links, href)
		}
	})
	log.Debug().Str("op", "scraper/extract").Msgf("found %d image links", len(links))
	return links, nil
}

func ExtractManifest(doc *goquery.Document, hostPrefix string) (deck.Manifest, error) {
	links, err := ExtractImageLinks(doc, hostPrefix)
	if err != nil {
		return deck.Manifest{}, &ValidationError{Err: err}
	}
	if len(links) != deck.ExpectedImageCount {
		return deck.Manifest{}, &ValidationError{Count: len(links), URLs: links}
	}
	manifest, err := deck.NameImages(links)
	if err != nil {
		return deck.Manifest{}, &ValidationError{Count: len(links), URLs: links, Err: err}
	}
	return manifest, nil
}

// ScrapeManifest fetches the source page and builds the manifest from it.
func ScrapeManifest(client utils.HTTPDoer, pageURL, hostPrefix string) (deck.Manifest, error) {
	doc, err := FetchPage(client, pageURL)
	if err != nil {
		return deck.Manifest{}, err
	}
	return ExtractManifest(doc, hostPrefix)
}
