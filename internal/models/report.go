package models

// Attendance values written into a report's worker entries.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Report is an immutable end-of-day record. Once appended to the report
// document it is never mutated again.
type Report struct {
	ID      int            `json:"id"`
	Date    string         `json:"date"`
	TourID  int            `json:"tourId,omitempty"`
	ChefID  int            `json:"chefId,omitempty"`
	Workers []ReportWorker `json:"workers"`
	Waste   []WasteEntry   `json:"collectedWaste"`
}

type ReportWorker struct {
	ID         int    `json:"id,omitempty"`
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Attendance string `json:"attendance"`
}

type WasteEntry struct {
	BinID    int     `json:"binId"`
	Quantity float64 `json:"quantity"`
}

// CreateReportRequest is the request body for POST /api/reports. Field
// names follow the map client's vocabulary.
type CreateReportRequest struct {
	Date              string         `json:"date"`
	IDTournee         FlexInt        `json:"idTournee"`
	Vehicule          string         `json:"vehicule"`
	Chef              *ChefRef       `json:"chef"`
	PresentEmployees  []string       `json:"presentEmployees"`
	AbsentEmployees   []string       `json:"absentEmployees"`
	SelectedTrashcans []CollectedBin `json:"selectedTrashcans"`
}

type ChefRef struct {
	ID FlexInt `json:"id"`
}

type CreateReportResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}
