package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tanq16/rws-scrape/internal/deck"
)

var ErrNoContentRegion = errors.New("content region not found")

// ValidationError means the page did not have the expected shape, so
// positional naming cannot be trusted.
type ValidationError struct {
	Count int
	URLs  []string
	Err   error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("wrong number of images %d (want %d): [%s]", e.Count, deck.ExpectedImageCount, strings.Join(e.URLs, ", "))
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
