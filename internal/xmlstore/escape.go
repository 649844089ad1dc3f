package xmlstore

import "strings"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five reserved markup characters so that free text
// inserted into a document can never break its well-formedness.
func Escape(s string) string {
	return xmlEscaper.Replace(s)
}
