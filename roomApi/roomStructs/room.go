package roomStructs

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type Room struct {
	Id                string  `json:"id"`
	Name              string  `json:"name"`
	Temperature       Reading `json:"temperature"`
	Humidity          Reading `json:"humidity"`
	Resident          string  `json:"resident"`
	Age               int     `json:"age"`
	PreferredTemp     Reading `json:"preferredTemp"`
	PreferredHumidity Reading `json:"preferredHumidity"`
}

// Title is the name shown on a card, falling back to the resident.
func (r Room) Title() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Resident != "" {
		return r.Resident + "'s Room"
	}
	return "Room " + r.Id
}

// Reading is a climate value the mock API sends either as a JSON string
// ("14.9°C") or as a JSON number (14.9). The raw text is kept as is.
type Reading string

func (r *Reading) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Reading(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Reading(n.String())
	return nil
}

func (r Reading) String() string {
	return string(r)
}

// WithUnit appends unit unless the reading already carries it.
func (r Reading) WithUnit(unit string) string {
	s := strings.TrimSpace(string(r))
	if s == "" || strings.HasSuffix(s, unit) {
		return s
	}
	return s + unit
}

// Float returns the numeric part of the reading, ignoring a trailing unit.
func (r Reading) Float() (float64, bool) {
	s := strings.TrimSpace(string(r))
	for _, unit := range []string{"°C", "°", "C", "%"} {
		s = strings.TrimSuffix(s, unit)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
