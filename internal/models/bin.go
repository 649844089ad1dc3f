package models

import "strings"

// Bin fill states as exposed over the API.
const (
	StatusFull  = "full"
	StatusHalf  = "half"
	StatusEmpty = "empty"
)

// Status text written into the bin document. The documents predate this
// service and carry French status labels.
const (
	StatusTextFull  = "plein"
	StatusTextHalf  = "moitie"
	StatusTextEmpty = "vide"
)

type Bin struct {
	ID        int     `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
}

// BinResponse is what we send to the map client.
type BinResponse struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Status string  `json:"status"`
}

// UpdateBinStatusRequest is the request body for POST /api/bins/update.
// The id arrives as a number or a numeric string depending on the client.
type UpdateBinStatusRequest struct {
	ID FlexInt `json:"id"`
}

// ToBinResponse converts a Bin to BinResponse
func (b *Bin) ToBinResponse() BinResponse {
	return BinResponse{
		ID:     b.ID,
		Name:   b.Address,
		Lat:    b.Latitude,
		Lng:    b.Longitude,
		Status: b.Status,
	}
}

// NormalizeStatus maps free status text from the bin document onto the
// three-state enum. Matching is case-insensitive and substring-based;
// anything unrecognized counts as full (the bin has not been emptied yet).
func NormalizeStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, StatusTextEmpty):
		return StatusEmpty
	case strings.Contains(s, StatusTextHalf), strings.Contains(s, "moitié"):
		return StatusHalf
	default:
		return StatusFull
	}
}
