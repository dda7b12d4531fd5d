package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
	"github.com/zabeloliver/room-monitor/roomApp/roomScreens"
	"github.com/zabeloliver/room-monitor/roomApp/roomSession"
)

const (
	homeHelp   = "Commands: open <n|id>, expand <n>, reload, back, quit"
	detailHelp = "Commands: reload, back, quit"
)

// shell drives the navigator from a line-based terminal. Each time a route
// becomes current a fresh screen is mounted for it; leaving the route
// disposes the screen.
type shell struct {
	ctx       context.Context
	in        *bufio.Scanner
	out       io.Writer
	nav       *roomScreens.Navigator
	gate      *roomSession.Gate
	directory roomScreens.Directory
	renderer  *roomScreens.Renderer
	logger    *zap.SugaredLogger

	welcomed bool
	expanded map[string]bool
}

func newShell(ctx context.Context, in io.Reader, out io.Writer, directory roomScreens.Directory, gate *roomSession.Gate, renderer *roomScreens.Renderer, logger *zap.SugaredLogger) *shell {
	return &shell{
		ctx:       ctx,
		in:        bufio.NewScanner(in),
		out:       out,
		nav:       roomScreens.NewNavigator(),
		gate:      gate,
		directory: directory,
		renderer:  renderer,
		logger:    logger,
		expanded:  map[string]bool{},
	}
}

// Run returns when the user quits, input ends or ctx is cancelled.
func (s *shell) Run() {
	for {
		route := s.nav.Current()
		s.logger.Debugw("Showing route", "route", route.Path())

		var quit bool
		switch route.Name {
		case roomScreens.RouteLogin:
			quit = s.loginScreen()
		case roomScreens.RouteHome:
			quit = s.homeScreen()
		case roomScreens.RouteDetails:
			quit = s.detailScreen(route.RoomId)
		}
		if quit {
			return
		}
	}
}

func (s *shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *shell) readLine(prompt string) (string, bool) {
	if s.ctx.Err() != nil {
		return "", false
	}
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// notify shows a one-line dismissable message.
func (s *shell) notify(msg string) {
	s.printf("** %s **\n", msg)
}

func (s *shell) loginScreen() bool {
	s.printf("%s\n\n", roomScreens.AppTitle)
	email, ok := s.readLine("Email address: ")
	if !ok {
		return true
	}
	password, ok := s.readLine("Password: ")
	if !ok {
		return true
	}

	if _, err := s.gate.Check(email, password); err != nil {
		s.notify(err.Error())
		return false
	}
	s.notify(roomSession.LoginSuccessMessage)
	s.welcomed = false
	s.nav.NavigatePopUpTo(roomScreens.Home(), roomScreens.RouteLogin)
	return false
}

// wait blocks until the screen settles. It reports false if ctx ended first.
func (s *shell) wait(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	case <-s.ctx.Done():
		return false
	}
}

func (s *shell) homeScreen() bool {
	list := roomScreens.NewRoomList(s.directory, s.logger)
	defer list.Dispose()

	s.printf("%s\n", roomScreens.LoadingText)
	list.Mount(s.ctx)
	if !s.wait(list.Done()) {
		return true
	}
	state := list.State()

	if !s.welcomed {
		s.notify(roomScreens.WelcomeMessage)
		s.welcomed = true
	}
	s.printf("%s", s.renderer.List(state, s.expanded))

	for {
		line, ok := s.readLine("home> ")
		if !ok {
			return true
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "open":
			id, found := pickRoom(state.Rooms, arg)
			if !found {
				s.printf("No room %q.\n", arg)
				continue
			}
			s.nav.Navigate(roomScreens.Details(id))
			return false
		case "expand":
			id, found := pickRoom(state.Rooms, arg)
			if !found {
				s.printf("No room %q.\n", arg)
				continue
			}
			s.expanded[id] = !s.expanded[id]
			s.printf("%s", s.renderer.List(state, s.expanded))
		case "reload":
			return false
		case "back":
			if !s.nav.Back() {
				s.printf("Nothing to go back to.\n")
				continue
			}
			return false
		case "quit", "exit":
			return true
		default:
			s.printf("%s\n", homeHelp)
		}
	}
}

func (s *shell) detailScreen(roomId string) bool {
	if roomId == "" {
		s.printf("%s", s.renderer.MissingRoomId())
		return s.detailCommands()
	}

	detail := roomScreens.NewRoomDetail(s.directory, roomId, s.logger)
	defer detail.Dispose()

	s.printf("%s\n", roomScreens.LoadingText)
	detail.Mount(s.ctx)
	if !s.wait(detail.Done()) {
		return true
	}
	s.printf("%s", s.renderer.Detail(detail.State()))
	return s.detailCommands()
}

func (s *shell) detailCommands() bool {
	for {
		line, ok := s.readLine("details> ")
		if !ok {
			return true
		}
		switch line {
		case "back":
			s.nav.Back()
			return false
		case "reload":
			return false
		case "quit", "exit":
			return true
		default:
			s.printf("%s\n", detailHelp)
		}
	}
}

// pickRoom resolves a 1-based card number or a room id.
func pickRoom(rooms []roomStructs.Room, arg string) (string, bool) {
	if arg == "" {
		return "", false
	}
	for _, r := range rooms {
		if r.Id == arg {
			return r.Id, true
		}
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(rooms) {
		return "", false
	}
	return rooms[n-1].Id, true
}
