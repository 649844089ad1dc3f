package xmlstore

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"binroute-backend/internal/models"
)

// The readers below walk the token stream and decode every element of
// the target name wherever it sits, so a document with zero, one, or
// many records always comes back as a flat slice. A record that fails
// to decode is skipped; one bad record never blocks the rest of the
// collection. Numeric fields that fail to parse resolve to 0.

func decodeAll[T any](text, local string) []T {
	dec := xml.NewDecoder(strings.NewReader(text))
	var out []T
	for {
		tok, err := dec.Token()
		if tok == nil || err == io.EOF {
			break
		}
		if err != nil {
			// Malformed markup past this point; keep what we have.
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != local {
			continue
		}
		var item T
		if err := dec.DecodeElement(&item, &se); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out
}

func atoiDefault(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atofDefault(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// firstNonEmpty returns the first argument with content after trimming.
// Records may carry their identifier as an attribute or a child element;
// the attribute wins.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

type rawBin struct {
	IDAttr  string `xml:"id,attr"`
	IDChild string `xml:"id"`
	Lieu    struct {
		Adresse string `xml:"adresse"`
		Coords  struct {
			Latitude  string `xml:"latitude"`
			Lat       string `xml:"lat"`
			Longitude string `xml:"longitude"`
			Lng       string `xml:"lng"`
		} `xml:"coordonnees"`
	} `xml:"lieu"`
	Status string `xml:"status"`
}

// ParseBins extracts every trashCan record from the bin document.
func ParseBins(text string) []models.Bin {
	raws := decodeAll[rawBin](text, "trashCan")
	bins := make([]models.Bin, 0, len(raws))
	for _, r := range raws {
		bins = append(bins, models.Bin{
			ID:        atoiDefault(firstNonEmpty(r.IDAttr, r.IDChild)),
			Address:   strings.TrimSpace(r.Lieu.Adresse),
			Latitude:  atofDefault(firstNonEmpty(r.Lieu.Coords.Latitude, r.Lieu.Coords.Lat)),
			Longitude: atofDefault(firstNonEmpty(r.Lieu.Coords.Longitude, r.Lieu.Coords.Lng)),
			Status:    models.NormalizeStatus(r.Status),
		})
	}
	return bins
}

type rawUser struct {
	IDAttr   string `xml:"id,attr"`
	IDChild  string `xml:"id"`
	Login    string `xml:"login"`
	Password string `xml:"password"`
	Nom      string `xml:"nom"`
	Prenom   string `xml:"prenom"`
	Role     string `xml:"role"`
}

// ParseUsers extracts every user record from the user document.
func ParseUsers(text string) []models.User {
	raws := decodeAll[rawUser](text, "user")
	users := make([]models.User, 0, len(raws))
	for _, r := range raws {
		users = append(users, models.User{
			ID:       atoiDefault(firstNonEmpty(r.IDAttr, r.IDChild)),
			Login:    strings.TrimSpace(r.Login),
			Password: strings.TrimSpace(r.Password),
			Nom:      strings.TrimSpace(r.Nom),
			Prenom:   strings.TrimSpace(r.Prenom),
			Role:     strings.TrimSpace(r.Role),
		})
	}
	return users
}

type rawRef struct {
	IDAttr  string `xml:"id,attr"`
	IDChild string `xml:"id"`
}

func (r rawRef) id() int {
	return atoiDefault(firstNonEmpty(r.IDAttr, r.IDChild))
}

type rawTour struct {
	IDAttr   string   `xml:"id,attr"`
	IDChild  string   `xml:"id"`
	Vehicule rawRef   `xml:"vehicule"`
	Nested   []rawRef `xml:"ouvriers>ouvrier"`
	Direct   []rawRef `xml:"ouvrier"`
}

// ParseTours extracts every tournee record. Worker references may sit
// under an <ouvriers> wrapper or directly under the tour element.
func ParseTours(text string) []models.Tour {
	raws := decodeAll[rawTour](text, "tournee")
	tours := make([]models.Tour, 0, len(raws))
	for _, r := range raws {
		refs := r.Nested
		if len(refs) == 0 {
			refs = r.Direct
		}
		workers := make([]int, 0, len(refs))
		for _, ref := range refs {
			workers = append(workers, ref.id())
		}
		tours = append(tours, models.Tour{
			ID:        atoiDefault(firstNonEmpty(r.IDAttr, r.IDChild)),
			VehicleID: r.Vehicule.id(),
			WorkerIDs: workers,
		})
	}
	return tours
}

type rawVehicle struct {
	IDAttr    string `xml:"id,attr"`
	IDChild   string `xml:"id"`
	Chauffeur rawRef `xml:"chauffeur"`
	Matricule string `xml:"matricule"`
}

// ParseVehicles extracts every vehicule record.
func ParseVehicles(text string) []models.Vehicle {
	raws := decodeAll[rawVehicle](text, "vehicule")
	vehicles := make([]models.Vehicle, 0, len(raws))
	for _, r := range raws {
		vehicles = append(vehicles, models.Vehicle{
			ID:        atoiDefault(firstNonEmpty(r.IDAttr, r.IDChild)),
			DriverID:  r.Chauffeur.id(),
			Matricule: strings.TrimSpace(r.Matricule),
		})
	}
	return vehicles
}

type rawReportWorker struct {
	IDAttr string `xml:"id,attr"`
	Nom    string `xml:"nom"`
	Prenom string `xml:"prenom"`
	Status string `xml:"status"`
}

type rawWaste struct {
	IDAttr   string `xml:"id,attr"`
	Quantite string `xml:"quantite,attr"`
}

type rawReport struct {
	IDAttr    string `xml:"id,attr"`
	Date      string `xml:"date"`
	Tournee   rawRef `xml:"tournee"`
	Employees struct {
		Chef     rawRef            `xml:"chefTourne"`
		Ouvriers []rawReportWorker `xml:"ouvriers>ouvrier"`
	} `xml:"employees"`
	Dechets struct {
		TrashCans []rawWaste `xml:"trashCan"`
	} `xml:"dechetsCollecte"`
}

// ParseReports extracts every rapport record in document order.
func ParseReports(text string) []models.Report {
	raws := decodeAll[rawReport](text, "rapport")
	reports := make([]models.Report, 0, len(raws))
	for _, r := range raws {
		workers := make([]models.ReportWorker, 0, len(r.Employees.Ouvriers))
		for _, w := range r.Employees.Ouvriers {
			workers = append(workers, models.ReportWorker{
				ID:         atoiDefault(w.IDAttr),
				Nom:        strings.TrimSpace(w.Nom),
				Prenom:     strings.TrimSpace(w.Prenom),
				Attendance: strings.TrimSpace(w.Status),
			})
		}
		waste := make([]models.WasteEntry, 0, len(r.Dechets.TrashCans))
		for _, t := range r.Dechets.TrashCans {
			waste = append(waste, models.WasteEntry{
				BinID:    atoiDefault(t.IDAttr),
				Quantity: atofDefault(t.Quantite),
			})
		}
		reports = append(reports, models.Report{
			ID:      atoiDefault(r.IDAttr),
			Date:    strings.TrimSpace(r.Date),
			TourID:  r.Tournee.id(),
			ChefID:  r.Employees.Chef.id(),
			Workers: workers,
			Waste:   waste,
		})
	}
	return reports
}
