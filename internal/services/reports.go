package services

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"binroute-backend/internal/models"
	"binroute-backend/internal/xmlstore"
)

var closingRootPattern = regexp.MustCompile(`(?i)</rapports>\s*$`)

// ReportInput is the assembler's view of one submission. Present tokens
// come first in the output; every roster token not marked present is
// recorded absent, so no worker is silently dropped.
type ReportInput struct {
	Date      string
	TourID    int
	ChefID    int
	Present   []string
	Roster    []string
	Collected []models.CollectedBin
}

// ReportAssembler turns a day's attendance and collection data into a
// new rapport block and appends it to the report document. Prior
// reports are never touched.
type ReportAssembler struct {
	store *xmlstore.Store
}

func NewReportAssembler(store *xmlstore.Store) *ReportAssembler {
	return &ReportAssembler{store: store}
}

// Append assembles and persists one report, returning its allocated id.
//
// The id is allocated against the document as it exists on disk right
// before the append. A missing report document is recovered by writing
// a fresh root around the new block; a missing user document only costs
// name resolution (workers keep their raw token as last name).
func (a *ReportAssembler) Append(input ReportInput) (int, error) {
	users, err := a.store.LoadUsers()
	if err != nil {
		// Resolution is best-effort; raw tokens still make a valid report.
		log.Printf("report assembler: user lookup unavailable: %v", err)
		users = nil
	}

	text, err := a.store.ReadOrEmpty(xmlstore.DocReports)
	if err != nil {
		return 0, err
	}

	id := xmlstore.NextReportID(text)
	block := a.buildBlock(id, input, users)

	var newText string
	if loc := closingRootPattern.FindStringIndex(text); loc != nil {
		newText = text[:loc[0]] + block + "</rapports>\n"
	} else {
		// Corrupt or brand-new document: recover with a fresh root.
		if strings.TrimSpace(text) == "" {
			text = `<?xml version="1.0" encoding="UTF-8"?>` + "\n<rapports>\n"
		} else {
			text += "\n"
		}
		newText = text + block + "</rapports>\n"
	}

	if err := a.store.Write(xmlstore.DocReports, newText); err != nil {
		return 0, err
	}

	log.Printf("📝 Report %d recorded (%d present, %d absent, %d bins)",
		id, len(input.Present), len(input.Roster)-len(input.Present), len(input.Collected))
	return id, nil
}

func (a *ReportAssembler) buildBlock(id int, input ReportInput, users []models.User) string {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	present := make(map[string]bool, len(input.Present))
	for _, t := range input.Present {
		present[t] = true
	}
	absent := make([]string, 0, len(input.Roster))
	for _, t := range input.Roster {
		if !present[t] {
			absent = append(absent, t)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "    <rapport id=\"%d\">\n", id)
	fmt.Fprintf(&b, "        <date>%s</date>\n", xmlstore.Escape(date))
	if input.TourID > 0 {
		fmt.Fprintf(&b, "        <tournee id=\"%d\"/>\n", input.TourID)
	} else {
		b.WriteString("        <tournee/>\n")
	}

	b.WriteString("        <employees>\n")
	if input.ChefID > 0 {
		fmt.Fprintf(&b, "            <chefTourne id=\"%d\"/>\n", input.ChefID)
	} else {
		b.WriteString("            <chefTourne/>\n")
	}
	b.WriteString("            <ouvriers>\n")
	for _, token := range input.Present {
		writeWorker(&b, token, models.AttendancePresent, users)
	}
	for _, token := range absent {
		writeWorker(&b, token, models.AttendanceAbsent, users)
	}
	b.WriteString("            </ouvriers>\n")
	b.WriteString("        </employees>\n")

	b.WriteString("        <dechetsCollecte>\n")
	for _, c := range input.Collected {
		q := c.Quantity
		if q < 0 {
			q = 0
		}
		fmt.Fprintf(&b, "            <trashCan id=\"%d\" quantite=\"%g\"/>\n", c.ID, q)
	}
	b.WriteString("        </dechetsCollecte>\n")
	b.WriteString("    </rapport>\n")
	return b.String()
}

func writeWorker(b *strings.Builder, token, attendance string, users []models.User) {
	nom := token
	prenom := ""
	idAttr := ""
	if u, ok := ResolveUser(token, users); ok {
		nom = u.Nom
		prenom = u.Prenom
		idAttr = fmt.Sprintf(" id=\"%d\"", u.ID)
	}
	fmt.Fprintf(b, "                <ouvrier%s>\n", idAttr)
	fmt.Fprintf(b, "                    <nom>%s</nom>\n", xmlstore.Escape(nom))
	fmt.Fprintf(b, "                    <prenom>%s</prenom>\n", xmlstore.Escape(prenom))
	fmt.Fprintf(b, "                    <status>%s</status>\n", attendance)
	fmt.Fprintf(b, "                </ouvrier>\n")
}
