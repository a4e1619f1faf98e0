package downloader

import (
	"fmt"
	"io"

	"github.com/tanq16/rws-scrape/internal/deck"
	"github.com/tanq16/rws-scrape/internal/utils"
)

// Sink stores one named image. Write must replace any previous image of
// the same name.
type Sink interface {
	Destination(name string) string
	Write(name string, body io.Reader) (int64, error)
}

type Config struct {
	Client     utils.HTTPDoer
	Sink       Sink
	StartFunc  func(entry deck.Entry, dest string)
	ResultFunc func(result Result)
}

// Result is the outcome of a single manifest entry.
type Result struct {
	Entry      deck.Entry
	Path       string
	StatusCode int
	Bytes      int64
	Err        error
}

func (r Result) OK() bool {
	return r.Err == nil
}

type Summary struct {
	Saved  int
	Failed int
}

// DownloadError reports a non-200 response for one image. It never stops a run.
type DownloadError struct {
	Name       string
	URL        string
	StatusCode int
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("error downloading %s from %s: status %d", e.Name, e.URL, e.StatusCode)
}
