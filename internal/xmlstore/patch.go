package xmlstore

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	statusPattern      = regexp.MustCompile(`(?is)<status>.*?</status>`)
	childIndentPattern = regexp.MustCompile(`\n([ \t]*)\S`)
	closeIndentPattern = regexp.MustCompile(`\n[ \t]*$`)
)

// UpdateBinStatus rewrites the <status> field of one trashCan record and
// returns the full document text. The record is located by the narrowest
// non-greedy span from its opening tag to its closing tag, so sibling
// records stay byte-identical. The replacement is spliced at the span's
// byte offsets; nothing outside the span is ever touched, even if its
// text happens to repeat elsewhere in the document.
//
// When the record has no <status> yet, one is inserted just before the
// record's close, reusing the surrounding indentation so the document
// stays diff-friendly.
//
// Returns ErrNotFound when no record carries the given id.
func UpdateBinStatus(text string, binID int, statusText string) (string, error) {
	if binID <= 0 {
		return "", fmt.Errorf("bin id %d: %w", binID, ErrMalformedInput)
	}

	span := regexp.MustCompile(
		`(?is)<trashCan\b[^>]*\bid=["']` + strconv.Itoa(binID) + `["'][^>]*>(.*?)</trashCan>`)
	loc := span.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", fmt.Errorf("bin %d: %w", binID, ErrNotFound)
	}

	// loc[2]:loc[3] bounds the record's inner content.
	inner := text[loc[2]:loc[3]]

	var newInner string
	if m := statusPattern.FindStringIndex(inner); m != nil {
		newInner = inner[:m[0]] + "<status>" + statusText + "</status>" + inner[m[1]:]
	} else {
		// Indent like the record's first child; the closing tag's own
		// trailing indentation is carried past the inserted line.
		indent := "    "
		if im := childIndentPattern.FindStringSubmatch(inner); im != nil {
			indent = im[1]
		}
		body := inner
		closeIndent := ""
		if cm := closeIndentPattern.FindStringIndex(inner); cm != nil {
			body = inner[:cm[0]]
			closeIndent = inner[cm[0]+1:]
		}
		newInner = body + "\n" + indent + "<status>" + statusText + "</status>\n" + closeIndent
	}

	return text[:loc[2]] + newInner + text[loc[3]:], nil
}
