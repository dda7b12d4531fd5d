package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/zabeloliver/room-monitor/roomApi/roomClient"
	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
	"github.com/zabeloliver/room-monitor/roomApp/roomScreens"
	"github.com/zabeloliver/room-monitor/roomApp/roomSession"
)

type countingDirectory struct {
	staticDirectory
	calls int
}

func (c *countingDirectory) GetRooms(ctx context.Context) ([]roomStructs.Room, error) {
	c.calls++
	return c.staticDirectory.GetRooms(ctx)
}

var shellRooms = []roomStructs.Room{
	{Id: "1", Name: "Jerry's Bedroom", Temperature: "14.9", Humidity: "78.3", Resident: "Eva Paucek", Age: 88, PreferredTemp: "15", PreferredHumidity: "80"},
	{Id: "2", Name: "Alice's Bedroom", Temperature: "15", Humidity: "77.7", Resident: "Anthony Bergstrom", Age: 79, PreferredTemp: "15", PreferredHumidity: "77"},
}

func runShell(dir roomScreens.Directory, input string) string {
	var out bytes.Buffer
	renderer := roomScreens.NewRenderer(roomScreens.Layout{}, nil)
	sugar := zap.NewNop().Sugar()
	sh := newShell(context.Background(), strings.NewReader(input), &out, dir, roomSession.NewGate(sugar), renderer, sugar)
	sh.Run()
	return out.String()
}

func TestShellLoginThenBackStaysHome(t *testing.T) {
	out := runShell(&staticDirectory{rooms: shellRooms}, "admin@example.com\nadmin123\nback\nquit\n")

	assert.Contains(t, out, "Login Successful!")
	assert.Contains(t, out, "Welcome to the Home Monitor App!")
	assert.Contains(t, out, "[1] Jerry's Bedroom")
	assert.Contains(t, out, "[2] Alice's Bedroom")
	assert.Contains(t, out, "Nothing to go back to.")
	assert.Equal(t, 1, strings.Count(out, "Email address: "))
}

func TestShellWrongCredentialsStayOnLogin(t *testing.T) {
	dir := &countingDirectory{staticDirectory: staticDirectory{rooms: shellRooms}}
	out := runShell(dir, "admin@example.com\nwrong\n")

	assert.Contains(t, out, "** Invalid Credentials! **")
	assert.Equal(t, 2, strings.Count(out, "Email address: "))
	assert.NotContains(t, out, "[1]")
	assert.Equal(t, 0, dir.calls)
}

func TestShellOpenDetailAndBackRemountsHome(t *testing.T) {
	dir := &countingDirectory{staticDirectory: staticDirectory{rooms: shellRooms}}
	out := runShell(dir, "admin@example.com\nadmin123\nopen 2\nback\nquit\n")

	assert.Contains(t, out, "Room Details")
	assert.Contains(t, out, "Anthony Bergstrom")
	assert.Contains(t, out, "15°C")
	assert.Contains(t, out, "79 years")
	// home, details, home again
	assert.Equal(t, 3, dir.calls)
	assert.Equal(t, 1, strings.Count(out, "Welcome to the Home Monitor App!"))
}

func TestShellOpenById(t *testing.T) {
	out := runShell(&staticDirectory{rooms: shellRooms}, "admin@example.com\nadmin123\nopen 1\nquit\n")
	assert.Contains(t, out, "Eva Paucek")
	assert.Contains(t, out, "88 years")
}

func TestShellUnknownRoom(t *testing.T) {
	out := runShell(&staticDirectory{rooms: shellRooms}, "admin@example.com\nadmin123\nopen 9\nquit\n")
	assert.Contains(t, out, `No room "9".`)
}

func TestShellExpandCard(t *testing.T) {
	out := runShell(&staticDirectory{rooms: shellRooms}, "admin@example.com\nadmin123\nexpand 1\nquit\n")
	assert.Contains(t, out, "Resident: Eva Paucek (88 years old)")
}

func TestShellShowsFetchFailure(t *testing.T) {
	out := runShell(&staticDirectory{err: &roomClient.StatusError{Code: 500}}, "admin@example.com\nadmin123\nquit\n")
	assert.Contains(t, out, "Error: 500")
	assert.NotContains(t, out, "[1]")
}

func TestShellReloadFetchesAgain(t *testing.T) {
	dir := &countingDirectory{staticDirectory: staticDirectory{rooms: shellRooms}}
	runShell(dir, "admin@example.com\nadmin123\nreload\nquit\n")
	assert.Equal(t, 2, dir.calls)
}

func TestPickRoom(t *testing.T) {
	id, ok := pickRoom(shellRooms, "2")
	assert.True(t, ok)
	assert.Equal(t, "2", id)

	rooms := []roomStructs.Room{{Id: "abc"}, {Id: "def"}}
	id, ok = pickRoom(rooms, "def")
	assert.True(t, ok)
	assert.Equal(t, "def", id)

	id, ok = pickRoom(rooms, "1")
	assert.True(t, ok)
	assert.Equal(t, "abc", id)

	_, ok = pickRoom(rooms, "0")
	assert.False(t, ok)
	_, ok = pickRoom(rooms, "")
	assert.False(t, ok)
}
