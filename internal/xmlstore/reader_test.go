package xmlstore

import (
	"testing"

	"binroute-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBinsDoc = `<?xml version="1.0" encoding="UTF-8"?>
<trashCans>
    <trashCan id="1">
        <lieu>
            <adresse>12 Rue de la République</adresse>
            <coordonnees>
                <latitude>45.7640</latitude>
                <longitude>4.8357</longitude>
            </coordonnees>
        </lieu>
        <status>plein</status>
    </trashCan>
    <trashCan id="2">
        <lieu>
            <adresse>8 Place Bellecour</adresse>
            <coordonnees>
                <lat>45.7578</lat>
                <lng>4.8320</lng>
            </coordonnees>
        </lieu>
        <status>Moitie</status>
    </trashCan>
</trashCans>
`

func TestParseBins(t *testing.T) {
	bins := ParseBins(sampleBinsDoc)
	require.Len(t, bins, 2)

	assert.Equal(t, 1, bins[0].ID)
	assert.Equal(t, "12 Rue de la République", bins[0].Address)
	assert.InDelta(t, 45.7640, bins[0].Latitude, 1e-9)
	assert.InDelta(t, 4.8357, bins[0].Longitude, 1e-9)
	assert.Equal(t, models.StatusFull, bins[0].Status)

	// Short coordinate element names are accepted too.
	assert.Equal(t, 2, bins[1].ID)
	assert.InDelta(t, 45.7578, bins[1].Latitude, 1e-9)
	assert.Equal(t, models.StatusHalf, bins[1].Status)
}

func TestParseBinsSingleElement(t *testing.T) {
	doc := `<trashCans>
    <trashCan id="7">
        <lieu><adresse>A</adresse></lieu>
        <status>vide</status>
    </trashCan>
</trashCans>`
	bins := ParseBins(doc)
	require.Len(t, bins, 1)
	assert.Equal(t, 7, bins[0].ID)
	assert.Equal(t, models.StatusEmpty, bins[0].Status)
}

func TestParseBinsEmptyDocument(t *testing.T) {
	assert.Empty(t, ParseBins("<trashCans></trashCans>"))
	assert.Empty(t, ParseBins(""))
}

func TestParseBinsIDAsChildElement(t *testing.T) {
	doc := `<trashCans>
    <trashCan>
        <id>42</id>
        <lieu><adresse>B</adresse></lieu>
    </trashCan>
</trashCans>`
	bins := ParseBins(doc)
	require.Len(t, bins, 1)
	assert.Equal(t, 42, bins[0].ID)
	// Missing status defaults to full.
	assert.Equal(t, models.StatusFull, bins[0].Status)
}

func TestParseBinsMalformedNumbersDefaultToZero(t *testing.T) {
	doc := `<trashCans>
    <trashCan id="oops">
        <lieu>
            <adresse>C</adresse>
            <coordonnees><latitude>not-a-number</latitude><longitude></longitude></coordonnees>
        </lieu>
        <status>plein</status>
    </trashCan>
    <trashCan id="3">
        <lieu><adresse>D</adresse></lieu>
        <status>plein</status>
    </trashCan>
</trashCans>`
	bins := ParseBins(doc)
	require.Len(t, bins, 2, "one degraded record must not block the rest")
	assert.Equal(t, 0, bins[0].ID)
	assert.Zero(t, bins[0].Latitude)
	assert.Equal(t, 3, bins[1].ID)
}

func TestNormalizeStatusVariants(t *testing.T) {
	cases := map[string]string{
		"VIDE":       models.StatusEmpty,
		"vide":       models.StatusEmpty,
		"Vide ":      models.StatusEmpty,
		"moitie":     models.StatusHalf,
		"Moitié":     models.StatusHalf,
		"plein":      models.StatusFull,
		"":           models.StatusFull,
		"overflowed": models.StatusFull,
	}
	for raw, want := range cases {
		assert.Equal(t, want, models.NormalizeStatus(raw), "status %q", raw)
	}
}

func TestParseUsers(t *testing.T) {
	doc := `<users>
    <user id="1">
        <login>mdupont</login>
        <password>secret</password>
        <nom>Dupont</nom>
        <prenom>Marie</prenom>
        <role>chef</role>
    </user>
    <user id="2">
        <login>admin</login>
        <password>x</password>
        <nom>Martin</nom>
        <prenom>Paul</prenom>
        <role>admin</role>
    </user>
</users>`
	users := ParseUsers(doc)
	require.Len(t, users, 2)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, "mdupont", users[0].Login)
	assert.Equal(t, "Dupont", users[0].Nom)
	assert.Equal(t, "Marie", users[0].Prenom)
	assert.Equal(t, "chef", users[0].Role)
}

func TestParseToursNestedAndDirectWorkers(t *testing.T) {
	doc := `<tournees>
    <tournee id="1">
        <vehicule id="4"/>
        <ouvriers>
            <ouvrier id="3"/>
            <ouvrier id="5"/>
        </ouvriers>
    </tournee>
    <tournee id="2">
        <vehicule id="9"/>
        <ouvrier id="6"/>
    </tournee>
</tournees>`
	tours := ParseTours(doc)
	require.Len(t, tours, 2)
	assert.Equal(t, 4, tours[0].VehicleID)
	assert.Equal(t, []int{3, 5}, tours[0].WorkerIDs)
	assert.Equal(t, []int{6}, tours[1].WorkerIDs)
}

func TestParseVehicles(t *testing.T) {
	doc := `<vehicules>
    <vehicule id="1">
        <chauffeur id="7"/>
        <matricule>AB-123-CD</matricule>
    </vehicule>
</vehicules>`
	vehicles := ParseVehicles(doc)
	require.Len(t, vehicles, 1)
	assert.Equal(t, 1, vehicles[0].ID)
	assert.Equal(t, 7, vehicles[0].DriverID)
	assert.Equal(t, "AB-123-CD", vehicles[0].Matricule)
}

func TestParseReports(t *testing.T) {
	doc := `<rapports>
    <rapport id="3">
        <date>2024-05-01</date>
        <tournee id="1"/>
        <employees>
            <chefTourne id="2"/>
            <ouvriers>
                <ouvrier id="3">
                    <nom>Bernard</nom>
                    <prenom>Jean</prenom>
                    <status>present</status>
                </ouvrier>
                <ouvrier>
                    <nom>bob</nom>
                    <prenom></prenom>
                    <status>absent</status>
                </ouvrier>
            </ouvriers>
        </employees>
        <dechetsCollecte>
            <trashCan id="7" quantite="3"/>
        </dechetsCollecte>
    </rapport>
</rapports>`
	reports := ParseReports(doc)
	require.Len(t, reports, 1)
	r := reports[0]
	assert.Equal(t, 3, r.ID)
	assert.Equal(t, "2024-05-01", r.Date)
	assert.Equal(t, 1, r.TourID)
	assert.Equal(t, 2, r.ChefID)
	require.Len(t, r.Workers, 2)
	assert.Equal(t, "present", r.Workers[0].Attendance)
	assert.Equal(t, "Bernard", r.Workers[0].Nom)
	assert.Equal(t, "absent", r.Workers[1].Attendance)
	assert.Equal(t, "bob", r.Workers[1].Nom)
	require.Len(t, r.Waste, 1)
	assert.Equal(t, 7, r.Waste[0].BinID)
	assert.InDelta(t, 3.0, r.Waste[0].Quantity, 1e-9)
}
