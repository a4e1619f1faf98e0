package deck

import (
	"errors"
	"fmt"
	"slices"
)

const (
	SourceURL       = "http://muzendo.jp/blog/?p=19"
	ImageHostPrefix = "http://blogimg.goo.ne.jp"
	ContentSelector = ".entry-content"
	ImageExt        = ".jpg"
	BackName        = "back"

	MajorArcanaCount   = 22
	CardsPerSuit       = 14
	SuitCount          = len(Suits)
	ExpectedImageCount = MajorArcanaCount + SuitCount*CardsPerSuit + 1 // +1 for the card back
)

// Suits in the order the source page lists them.
var Suits = [...]string{"wands", "cups", "swords", "pents"}

var (
	ErrImageCount    = errors.New("unexpected number of images")
	ErrDuplicateName = errors.New("duplicate card name")
	ErrEmptyName     = errors.New("empty card name")
)

type Entry struct {
	Name string
	URL  string
}

func (e Entry) FileName() string {
	return e.Name + ImageExt
}

// Manifest is an ordered, read-only name to URL mapping.
type Manifest struct {
	entries []Entry
	index   map[string]int
}

func NewManifest(entries []Entry) (Manifest, error) {
	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		if entry.Name == "" {
			return Manifest{}, fmt.Errorf("%w at position %d", ErrEmptyName, i)
		}
		if _, exists := index[entry.Name]; exists {
			return Manifest{}, fmt.Errorf("%w: %s", ErrDuplicateName, entry.Name)
		}
		index[entry.Name] = i
	}
	return Manifest{entries: slices.Clone(entries), index: index}, nil
}

func (m Manifest) Len() int {
	return len(m.entries)
}

func (m Manifest) Entries() []Entry {
	return slices.Clone(m.entries)
}

func (m Manifest) Names() []string {
	names := make([]string, len(m.entries))
	for i, entry := range m.entries {
		names[i] = entry.Name
	}
	return names
}

func (m Manifest) Lookup(name string) (string, bool) {
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.entries[i].URL, true
}

func MajorName(number int) string {
	return fmt.Sprintf("%02d", number)
}

func SuitName(rank int, suit string) string {
	return fmt.Sprintf("%02d-%s", rank, suit)
}

// NameImages assigns card names to image URLs purely by position. The page
// lists The Fool first and the card back second, then majors 01-21, then
// each suit ace to king.
func NameImages(urls []string) (Manifest, error) {
	if len(urls) != ExpectedImageCount {
		return Manifest{}, fmt.Errorf("%w: got %d, want %d", ErrImageCount, len(urls), ExpectedImageCount)
	}
	entries := make([]Entry, 0, ExpectedImageCount)
	entries = append(entries,
		Entry{Name: MajorName(0), URL: urls[0]},
		Entry{Name: BackName, URL: urls[1]},
	)
	for i := 1; i < MajorArcanaCount; i++ {
		entries = append(entries, Entry{Name: MajorName(i), URL: urls[i+1]})
	}
	for _, suit := range Suits {
		offset := len(entries)
		for rank := 1; rank <= CardsPerSuit; rank++ {
			entries = append(entries, Entry{Name: SuitName(rank, suit), URL: urls[offset+rank-1]})
		}
	}
	return NewManifest(entries)
}
