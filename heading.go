package nbtoc

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alnah/go-nbtoc/internal/notebook"
)

var (
	// headingLine matches a run of '#' followed by whitespace. The run length
	// is checked against the max level after matching, so the whole leading
	// run must fit: "### x" is not a level-2 heading.
	headingLine = regexp.MustCompile(`^(#+)[` + whitespaceClass + `]+(.*)`)

	// inlineLink matches [text](url) for unwrapping to text.
	inlineLink = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)

	// emphasisMarkers matches every emphasis and code marker character.
	emphasisMarkers = regexp.MustCompile("[*_`]")
)

// ParseHeadingLine reports whether line is a heading of at most maxLevel and
// returns its level and cleaned text. Surrounding whitespace is ignored.
// Lines whose text is empty after cleaning are not headings.
func ParseHeadingLine(line string, maxLevel int) (level int, text string, ok bool) {
	m := headingLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, "", false
	}

	level = len(m[1])
	if level > maxLevel {
		return 0, "", false
	}

	text = CleanHeadingText(m[2])
	if text == "" {
		return 0, "", false
	}
	return level, text, true
}

// CleanHeadingText trims text, unwraps inline links and removes every
// '*', '_' and '`' character.
func CleanHeadingText(text string) string {
	text = strings.TrimSpace(text)
	text = inlineLink.ReplaceAllString(text, "$1")
	return emphasisMarkers.ReplaceAllString(text, "")
}

// HeadingsFromCells extracts headings from the markdown cells in order,
// assigning anchors from a fresh per-document table.
func HeadingsFromCells(cells []notebook.Cell, maxLevel int) []Heading {
	anchors := NewAnchorTable()

	var headings []Heading
	for _, cell := range cells {
		if !cell.IsMarkdown() {
			continue
		}
		for _, line := range cell.Lines {
			level, text, ok := ParseHeadingLine(line, maxLevel)
			if !ok {
				continue
			}
			headings = append(headings, Heading{
				Level:  level,
				Text:   text,
				Anchor: anchors.Anchor(text),
			})
		}
	}
	return headings
}

// ExtractHeadings parses notebook content and returns its headings up to maxLevel.
func ExtractHeadings(data []byte, maxLevel int) ([]Heading, error) {
	if maxLevel < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxLevel, maxLevel)
	}

	cells, err := notebook.Parse(data)
	if err != nil {
		if errors.Is(err, notebook.ErrInvalidJSON) {
			return nil, fmt.Errorf("%w: %v", ErrDecodeNotebook, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotebookShape, err)
	}
	return HeadingsFromCells(cells, maxLevel), nil
}

// ExtractFile reads the notebook at path and returns its headings up to maxLevel.
func ExtractFile(path string, maxLevel int) ([]Heading, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotebookNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadNotebook, err)
	}
	return ExtractHeadings(data, maxLevel)
}
