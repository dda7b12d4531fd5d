package roomStructs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomDecodesStringAndNumberReadings(t *testing.T) {
	body := `[
		{"id":"1","name":"Jerry's Bedroom","temperature":"14.9°C","humidity":78.3,"resident":"Eva Paucek","age":88,"preferredTemp":15,"preferredHumidity":"80%"},
		{"id":"2","temperature":null,"humidity":"77","resident":"Alton Moen","age":82}
	]`

	var rooms []Room
	require.NoError(t, json.Unmarshal([]byte(body), &rooms))
	require.Len(t, rooms, 2)

	assert.Equal(t, Reading("14.9°C"), rooms[0].Temperature)
	assert.Equal(t, Reading("78.3"), rooms[0].Humidity)
	assert.Equal(t, Reading("15"), rooms[0].PreferredTemp)
	assert.Equal(t, Reading("80%"), rooms[0].PreferredHumidity)
	assert.Equal(t, 88, rooms[0].Age)

	assert.Equal(t, Reading(""), rooms[1].Temperature)
	assert.Equal(t, "2", rooms[1].Id)
}

func TestRoomRejectsMalformedReading(t *testing.T) {
	var room Room
	err := json.Unmarshal([]byte(`{"id":"1","temperature":{"value":1}}`), &room)
	assert.Error(t, err)
}

func TestReadingWithUnit(t *testing.T) {
	assert.Equal(t, "14.9°C", Reading("14.9").WithUnit("°C"))
	assert.Equal(t, "14.9°C", Reading("14.9°C").WithUnit("°C"))
	assert.Equal(t, "80%", Reading(" 80 ").WithUnit("%"))
	assert.Equal(t, "", Reading("").WithUnit("%"))
}

func TestReadingFloat(t *testing.T) {
	cases := map[Reading]float64{
		"14.9°C": 14.9,
		"15":     15,
		"78.3%":  78.3,
		" 21 C ": 21,
	}
	for in, want := range cases {
		got, ok := in.Float()
		assert.True(t, ok, "reading %q", in)
		assert.InDelta(t, want, got, 1e-9, "reading %q", in)
	}

	_, ok := Reading("warm").Float()
	assert.False(t, ok)
	_, ok = Reading("").Float()
	assert.False(t, ok)
}

func TestRoomTitle(t *testing.T) {
	assert.Equal(t, "Paul's Bedroom", Room{Id: "3", Name: "Paul's Bedroom"}.Title())
	assert.Equal(t, "Emma's Room", Room{Id: "4", Resident: "Emma"}.Title())
	assert.Equal(t, "Room 5", Room{Id: "5"}.Title())
}
