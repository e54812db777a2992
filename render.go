package nbtoc

import (
	"path/filepath"
	"strings"
)

// TOCTitle is the first line of every rendered table of contents.
const TOCTitle = "# Table of Contents"

// List markers and indentation.
const (
	bulletMarker   = "*"
	numberedMarker = "1." // renderers number ordered lists themselves
	indentUnit     = "    "
)

// Render builds the Markdown table of contents for docs. Documents without
// headings are omitted. A heading whose text equals the previous rendered
// heading of the same document is skipped. The result has no trailing newline.
func Render(docs []Document, opts Options) string {
	lines := []string{TOCTitle}

	for _, doc := range docs {
		if len(doc.Headings) == 0 {
			continue
		}

		if opts.IncludeFilenames {
			lines = append(lines, "\n**"+filepath.Base(doc.RelPath)+"**\n")
		}

		link := EncodeLinkPath(doc.RelPath)
		lastText := ""
		for i, h := range doc.Headings {
			if i > 0 && h.Text == lastText {
				continue
			}
			lastText = h.Text
			lines = append(lines, renderItem(h, link, opts.UseBullets))
		}
	}

	return strings.Join(lines, "\n")
}

// renderItem formats one heading as an indented list item.
func renderItem(h Heading, link string, useBullets bool) string {
	marker := numberedMarker
	if useBullets {
		marker = bulletMarker
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(indentUnit, max(h.Level-1, 0)))
	sb.WriteString(marker)
	sb.WriteString(" [")
	sb.WriteString(h.Text)
	sb.WriteString("](")
	sb.WriteString(link)
	sb.WriteString("#")
	sb.WriteString(h.Anchor)
	sb.WriteString(")")
	return sb.String()
}

// EncodeLinkPath percent-encodes every segment of a relative path and
// joins the segments with '/'.
func EncodeLinkPath(rel string) string {
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for i, s := range segments {
		segments[i] = escapeSegment(s)
	}
	return strings.Join(segments, "/")
}

// escapeSegment percent-encodes every byte outside the RFC 3986 unreserved
// set (ALPHA / DIGIT / "-" / "." / "_" / "~"), using upper-case hex.
func escapeSegment(s string) string {
	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
