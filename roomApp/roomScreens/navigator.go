package roomScreens

import (
	"fmt"
	"strings"
)

const (
	RouteLogin   = "login"
	RouteHome    = "home"
	RouteDetails = "details"
)

const MissingRoomIdMessage = "Error: Room ID not provided!"

type Route struct {
	Name   string
	RoomId string
}

func Login() Route { return Route{Name: RouteLogin} }
func Home() Route { return Route{Name: RouteHome} }
func Details(roomId string) Route { return Route{Name: RouteDetails, RoomId: roomId} }

func (r Route) Path() string {
	if r.Name == RouteDetails {
		return RouteDetails + "/" + r.RoomId
	}
	return r.Name
}

// ParseRoute accepts "login", "home" and "details/{roomId}". A details path
// without an id parses fine; the screen shows MissingRoomIdMessage for it.
func ParseRoute(path string) (Route, error) {
	path = strings.Trim(path, "/")
	name, rest, _ := strings.Cut(path, "/")
	switch name {
	case RouteLogin, RouteHome:
		if rest != "" {
			return Route{}, fmt.Errorf("unknown route %q", path)
		}
		return Route{Name: name}, nil
	case RouteDetails:
		return Details(rest), nil
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}

// Navigator is the back stack. It always starts at login.
type Navigator struct {
	stack []Route
}

func NewNavigator() *Navigator {
	return &Navigator{stack: []Route{Login()}}
}

func (n *Navigator) Current() Route {
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) Depth() int {
	return len(n.stack)
}

func (n *Navigator) Navigate(to Route) {
	n.stack = append(n.stack, to)
}

// NavigatePopUpTo removes every entry down to and including the newest
// entry named popUpTo, then pushes to. If popUpTo is not on the stack the
// stack is left as is before the push.
func (n *Navigator) NavigatePopUpTo(to Route, popUpTo string) {
	for i := len(n.stack) - 1; i >= 0; i-- {
		if n.stack[i].Name == popUpTo {
			n.stack = n.stack[:i]
			break
		}
	}
	n.stack = append(n.stack, to)
}

// Back pops the current entry. It reports false at the root.
func (n *Navigator) Back() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}
