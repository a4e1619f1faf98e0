package downloader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tanq16/rws-scrape/internal/deck"
	"github.com/tanq16/rws-scrape/internal/utils"
)

// LocalSink writes <Dir>/<name>.jpg. The directory must already exist.
type LocalSink struct {
	Dir string
}

func (s LocalSink) Destination(name string) string {
	return filepath.Join(s.Dir, name+deck.ImageExt)
}

func (s LocalSink) Write(name string, body io.Reader) (int64, error) {
	path := s.Destination(name)
	outFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("error creating output file: %w", err)
	}
	defer outFile.Close()
	n, err := io.CopyBuffer(outFile, body, make([]byte, utils.DefaultBufferSize))
	if err != nil {
		return n, fmt.Errorf("error writing to output file: %w", err)
	}
	if err := outFile.Close(); err != nil {
		return n, fmt.Errorf("error closing output file: %w", err)
	}
	return n, nil
}
