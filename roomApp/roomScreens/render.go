package roomScreens

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
)

const (
	AppTitle       = "Home Temperature Monitor"
	WelcomeMessage = "Welcome to the Home Monitor App!"
	LoadingText    = "Loading..."
	EmptyListText  = "No rooms to show."
)

const tabletColumnWidth = 44

// Layout replaces the separate phone, tablet and image variants of the
// list and detail screens.
type Layout struct {
	Tablet bool
	Images bool
}

type Renderer struct {
	Layout Layout
	Images *ImageCatalogue
}

func NewRenderer(layout Layout, images *ImageCatalogue) *Renderer {
	if images == nil {
		images = DefaultImages()
	}
	return &Renderer{Layout: layout, Images: images}
}

// List renders the home screen. expanded holds the ids of cards showing
// their resident and preferred settings.
func (r *Renderer) List(state ListState, expanded map[string]bool) string {
	var b strings.Builder
	b.WriteString(AppTitle + "\n\n")

	switch state.Phase {
	case Loading:
		b.WriteString(LoadingText + "\n")
		return b.String()
	case Failure:
		b.WriteString(state.Message + "\n")
		return b.String()
	}

	if len(state.Rooms) == 0 {
		b.WriteString(EmptyListText + "\n")
		return b.String()
	}

	cards := make([][]string, len(state.Rooms))
	for i, room := range state.Rooms {
		cards[i] = r.card(i+1, room, expanded[room.Id])
	}

	if !r.Layout.Tablet {
		for _, card := range cards {
			b.WriteString(strings.Join(card, "\n") + "\n\n")
		}
		return b.String()
	}

	for i := 0; i < len(cards); i += 2 {
		left := cards[i]
		var right []string
		if i+1 < len(cards) {
			right = cards[i+1]
		}
		b.WriteString(sideBySide(left, right) + "\n")
	}
	return b.String()
}

func (r *Renderer) card(n int, room roomStructs.Room, expanded bool) []string {
	lines := []string{
		fmt.Sprintf("[%d] %s", n, room.Title()),
		fmt.Sprintf("    Temp: %s | Humidity: %s", room.Temperature, room.Humidity),
	}
	if r.Layout.Images {
		lines = append(lines, "    Image: "+r.Images.Lookup(room.Resident))
	}
	if expanded {
		lines = append(lines,
			"    "+strings.Repeat("-", 24),
			fmt.Sprintf("    Resident: %s (%d years old)", room.Resident, room.Age),
			"    Preferred Temp: "+room.PreferredTemp.String(),
			"    Preferred Humidity: "+room.PreferredHumidity.String(),
		)
	}
	return lines
}

func sideBySide(left, right []string) string {
	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	var b strings.Builder
	for i := 0; i < rows; i++ {
		l, rr := "", ""
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			rr = right[i]
		}
		line := l
		if rr != "" {
			line = pad(l, tabletColumnWidth) + rr
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}

// Detail renders the detail screen for state.
func (r *Renderer) Detail(state DetailState) string {
	var b strings.Builder
	b.WriteString("Room Details\n\n")

	switch state.Phase {
	case Loading:
		b.WriteString(LoadingText + "\n")
		return b.String()
	case Failure:
		b.WriteString(state.Message + "\n")
		return b.String()
	}

	room := state.Room
	if r.Layout.Images {
		b.WriteString("Image: " + r.Images.Lookup(room.Resident) + "\n\n")
	}
	b.WriteString(room.Resident + "\n")
	b.WriteString(strings.Repeat("-", 32) + "\n")

	rows := [][2]string{
		{"Temperature", room.Temperature.WithUnit("°C")},
		{"Humidity", room.Humidity.WithUnit("%")},
		{"Age", fmt.Sprintf("%d years", room.Age)},
		{"Preferred Temperature", room.PreferredTemp.WithUnit("°C")},
		{"Preferred Humidity", room.PreferredHumidity.WithUnit("%")},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-23s %s\n", row[0], row[1]))
	}
	return b.String()
}

// MissingRoomId is shown for a details route without an id.
func (r *Renderer) MissingRoomId() string {
	return "Room Details\n\n" + MissingRoomIdMessage + "\n"
}
