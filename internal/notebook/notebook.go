// Package notebook reads the cell structure of Jupyter notebook documents.
//
// Only the minimal shape needed to locate markdown text is checked: a JSON
// object with an optional "cells" array whose entries are objects carrying
// "cell_type" and "source". Everything else in the document is ignored.
package notebook

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// Sentinel errors for notebook parsing.
var (
	ErrInvalidJSON  = errors.New("invalid notebook JSON")
	ErrInvalidShape = errors.New("invalid notebook structure")
	ErrInvalidUTF8  = errors.New("notebook is not valid UTF-8")
)

// CellTypeMarkdown is the cell_type value of markdown cells.
const CellTypeMarkdown = "markdown"

// lineBreak matches every line boundary recognized when splitting a string
// source into lines: CRLF, CR, LF and the other Unicode line separators.
var lineBreak = regexp.MustCompile(`\r\n|[\n\r\v\f\x1c-\x1e\x{85}\x{2028}\x{2029}]`)

// Cell is a single notebook cell.
type Cell struct {
	Type  string   // cell_type value ("" when missing or not a string)
	Lines []string // source lines, only populated for markdown cells
}

// IsMarkdown reports whether the cell holds markdown text.
func (c Cell) IsMarkdown() bool {
	return c.Type == CellTypeMarkdown
}

// Parse decodes notebook content and returns its cells in document order.
// A missing "cells" key yields no cells. Sources of markdown cells may be a
// string or an array of strings; list entries are kept as-is, one per line.
func Parse(data []byte) ([]Cell, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrInvalidShape)
	}

	cellsValue := doc.Get("cells")
	if !cellsValue.Exists() {
		return nil, nil
	}
	if !cellsValue.IsArray() {
		return nil, fmt.Errorf("%w: cells is not an array", ErrInvalidShape)
	}

	var (
		cells []Cell
		err   error
	)
	cellsValue.ForEach(func(_, value gjson.Result) bool {
		var cell Cell
		cell, err = parseCell(len(cells), value)
		if err != nil {
			return false
		}
		cells = append(cells, cell)
		return true
	})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

// parseCell converts one entry of the cells array.
func parseCell(index int, value gjson.Result) (Cell, error) {
	if !value.IsObject() {
		return Cell{}, fmt.Errorf("%w: cell %d is not an object", ErrInvalidShape, index)
	}

	var cell Cell
	if t := value.Get("cell_type"); t.Type == gjson.String {
		cell.Type = t.Str
	}
	if !cell.IsMarkdown() {
		return cell, nil
	}

	lines, err := sourceLines(value.Get("source"))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: cell %d: %v", ErrInvalidShape, index, err)
	}
	cell.Lines = lines
	return cell, nil
}

// sourceLines normalizes a cell source to a list of lines.
func sourceLines(source gjson.Result) ([]string, error) {
	switch {
	case !source.Exists():
		return nil, nil
	case source.Type == gjson.String:
		return SplitLines(source.Str), nil
	case source.IsArray():
		entries := source.Array()
		lines := make([]string, 0, len(entries))
		for i, entry := range entries {
			if entry.Type != gjson.String {
				return nil, fmt.Errorf("source line %d is not a string", i)
			}
			lines = append(lines, entry.Str)
		}
		return lines, nil
	default:
		return nil, fmt.Errorf("source is neither a string nor an array")
	}
}

// SplitLines splits s at line boundaries. Line terminators are dropped and
// a trailing terminator does not produce an empty final line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := lineBreak.Split(s, -1)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
