package scraper

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanq16/rws-scrape/internal/deck"
	"github.com/tanq16/rws-scrape/internal/utils"
)

func imageURLs(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("%s/user_image/%02d/rws%03d.jpg", deck.ImageHostPrefix, i%10, i)
	}
	return urls
}

// blogPage renders a page shaped like the source blog post, with noise
// around and inside the content region.
func blogPage(urls []string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="header"><a href="http://blogimg.goo.ne.jp/outside.jpg">outside</a></div>`)
	b.WriteString(`<div class="entry-content"><p>Rider-Waite-Smith</p>`)
	b.WriteString(`<a href="http://example.com/other.jpg">other host</a><a name="anchor">no href</a>`)
	for _, u := range urls {
		fmt.Fprintf(&b, `<a href="%s"><img src="%s" /></a>`, u, strings.Replace(u, ".jpg", "_s.jpg", 1))
	}
	b.WriteString(`<a href="https://blogimg.goo.ne.jp/https-not-matched.jpg">https</a>`)
	b.WriteString(`</div><div class="entry-content"><a href="http://blogimg.goo.ne.jp/second-region.jpg">x</a></div>`)
	b.WriteString(`</body></html>`)
	return b.String()
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractImageLinks(t *testing.T) {
	urls := imageURLs(5)
	links, err := ExtractImageLinks(parse(t, blogPage(urls)), deck.ImageHostPrefix)
	require.NoError(t, err)
	assert.Equal(t, urls, links)
}

func TestExtractImageLinksNoRegion(t *testing.T) {
	_, err := ExtractImageLinks(parse(t, `<html><body><a href="http://blogimg.goo.ne.jp/a.jpg">a</a></body></html>`), deck.ImageHostPrefix)
	assert.ErrorIs(t, err, ErrNoContentRegion)
}

func TestExtractManifest(t *testing.T) {
	urls := imageURLs(deck.ExpectedImageCount)
	manifest, err := ExtractManifest(parse(t, blogPage(urls)), deck.ImageHostPrefix)
	require.NoError(t, err)
	require.Equal(t, deck.ExpectedImageCount, manifest.Len())

	for k, entry := range manifest.Entries() {
		assert.Equal(t, urls[k], entry.URL)
	}
	wands, ok := manifest.Lookup("01-wands")
	require.True(t, ok)
	assert.Equal(t, urls[23], wands)
	cups, ok := manifest.Lookup("01-cups")
	require.True(t, ok)
	assert.Equal(t, urls[37], cups)
}

func TestExtractManifestWrongCount(t *testing.T) {
	for _, n := range []int{0, 1, deck.ExpectedImageCount - 1, deck.ExpectedImageCount + 1, 89} {
		t.Run(fmt.Sprintf("count_%d", n), func(t *testing.T) {
			urls := imageURLs(n)
			manifest, err := ExtractManifest(parse(t, blogPage(urls)), deck.ImageHostPrefix)
			require.Error(t, err)
			assert.Equal(t, 0, manifest.Len())

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, n, verr.Count)
			assert.Contains(t, err.Error(), fmt.Sprintf("wrong number of images %d", n))
			for _, u := range urls {
				assert.Contains(t, err.Error(), u)
			}
		})
	}
}

func TestExtractManifestNoRegion(t *testing.T) {
	_, err := ExtractManifest(parse(t, `<html><body></body></html>`), deck.ImageHostPrefix)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 0, verr.Count)
	assert.ErrorIs(t, err, ErrNoContentRegion)
}

func TestScrapeManifest(t *testing.T) {
	urls := imageURLs(deck.ExpectedImageCount)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "19", r.URL.Query().Get("p"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(blogPage(urls)))
	}))
	defer srv.Close()

	client := utils.NewScrapeHTTPClient(utils.HTTPClientConfig{})
	manifest, err := ScrapeManifest(client, srv.URL+"/blog/?p=19", deck.ImageHostPrefix)
	require.NoError(t, err)
	assert.Equal(t, deck.ExpectedImageCount, manifest.Len())
	back, _ := manifest.Lookup(deck.BackName)
	assert.Equal(t, urls[1], back)
}

func TestScrapeManifestErrorPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := ScrapeManifest(utils.NewScrapeHTTPClient(utils.HTTPClientConfig{}), srv.URL, deck.ImageHostPrefix)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestScrapeManifestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := ScrapeManifest(utils.NewScrapeHTTPClient(utils.HTTPClientConfig{}), addr, deck.ImageHostPrefix)
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
