package xmlstore

import "regexp"

// reportIDPattern is the structural marker every appended report block
// opens with. Scanning for it is deliberately a text-level pass: the
// allocator only owes monotonic uniqueness, and a narrow scan cannot be
// defeated by malformed content elsewhere in the document.
var reportIDPattern = regexp.MustCompile(`<rapport\s+id="(\d+)"`)

// NextReportID returns one more than the highest report identifier
// already present in the document, or 1 when none exist. Gaps in the
// sequence are never filled. Callers treat a missing document as empty
// text, so a brand-new store also starts at 1.
func NextReportID(text string) int {
	max := 0
	for _, m := range reportIDPattern.FindAllStringSubmatch(text, -1) {
		if id := atoiDefault(m[1]); id > max {
			max = id
		}
	}
	return max + 1
}
