package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes JSON fields the clients send as a number, a numeric
// string, or an empty string. Anything that fails to parse resolves to 0,
// the documented default-on-parse-failure policy of the store layer.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(fl))
		return nil
	}
	*f = 0
	return nil
}

func (f FlexInt) Int() int { return int(f) }

// FlexFloat is the float counterpart of FlexInt.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexFloat(fl)
		return nil
	}
	*f = 0
	return nil
}

// CollectedBin is one entry of selectedTrashcans. Older clients send a
// bare bin id, newer ones send {id, quantite}; both decode here.
type CollectedBin struct {
	ID       int
	Quantity float64
}

func (c *CollectedBin) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, "{") {
		var obj struct {
			ID       FlexInt   `json:"id"`
			Quantite FlexFloat `json:"quantite"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		c.ID = obj.ID.Int()
		c.Quantity = float64(obj.Quantite)
		return nil
	}
	var id FlexInt
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	c.ID = id.Int()
	c.Quantity = 0
	return nil
}
