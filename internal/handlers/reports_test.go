package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"binroute-backend/internal/models"
	"binroute-backend/internal/websocket"
	"binroute-backend/internal/xmlstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reportsTestUsersDoc = `<users>
    <user id="1">
        <login>alice</login>
        <password>x</password>
        <nom>Durand</nom>
        <prenom>Alice</prenom>
        <role>ouvrier</role>
    </user>
</users>`

func TestCreateReportEndToEnd(t *testing.T) {
	store := xmlstore.New(t.TempDir())
	require.NoError(t, store.Write(xmlstore.DocUsers, reportsTestUsersDoc))
	require.NoError(t, store.Write(xmlstore.DocReports, `<rapports>
    <rapport id="2"><date>2024-04-30</date></rapport>
</rapports>
`))
	hub := websocket.NewHub()

	body := `{
		"date": "2024-05-01",
		"idTournee": 1,
		"chef": {"id": 2},
		"presentEmployees": ["alice"],
		"absentEmployees": ["bob"],
		"selectedTrashcans": [{"id": 7, "quantite": 3}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateReport(store, hub)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CreateReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.ID, "one greater than the previous maximum")
	assert.Equal(t, "Rapport enregistré", resp.Message)

	reports, err := store.LoadReports()
	require.NoError(t, err)
	require.Len(t, reports, 2)

	r := reports[1]
	assert.Equal(t, "2024-05-01", r.Date)
	require.Len(t, r.Workers, 2)
	assert.Equal(t, models.AttendancePresent, r.Workers[0].Attendance)
	assert.Equal(t, "Durand", r.Workers[0].Nom)
	assert.Equal(t, models.AttendanceAbsent, r.Workers[1].Attendance)
	assert.Equal(t, "bob", r.Workers[1].Nom)
	require.Len(t, r.Waste, 1)
	assert.Equal(t, 7, r.Waste[0].BinID)
	assert.InDelta(t, 3.0, r.Waste[0].Quantity, 1e-9)
}

func TestCreateReportBareTrashcanIDs(t *testing.T) {
	store := xmlstore.New(t.TempDir())
	hub := websocket.NewHub()

	body := `{"date": "2024-05-01", "selectedTrashcans": [4, 9]}`
	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateReport(store, hub)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	reports, err := store.LoadReports()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Waste, 2)
	assert.Equal(t, 4, reports[0].Waste[0].BinID)
	assert.Zero(t, reports[0].Waste[0].Quantity, "bare ids carry quantity 0")
	assert.Equal(t, 9, reports[0].Waste[1].BinID)
}

func TestCreateReportInvalidBody(t *testing.T) {
	store := xmlstore.New(t.TempDir())
	hub := websocket.NewHub()

	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	CreateReport(store, hub)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, store.Exists(xmlstore.DocReports), "rejected before any I/O")
}

func TestGetReports(t *testing.T) {
	store := xmlstore.New(t.TempDir())
	require.NoError(t, store.Write(xmlstore.DocReports, `<rapports>
    <rapport id="1"><date>2024-04-30</date></rapport>
    <rapport id="2"><date>2024-05-01</date></rapport>
</rapports>
`))

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	rec := httptest.NewRecorder()
	GetReports(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var reports []models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, 1, reports[0].ID)
	assert.Equal(t, 2, reports[1].ID)
}

func TestGetReportsMissingDocument(t *testing.T) {
	store := xmlstore.New(t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	rec := httptest.NewRecorder()
	GetReports(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "no reports filed yet is not an error")
	assert.JSONEq(t, `[]`, rec.Body.String())
}
