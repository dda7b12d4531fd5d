package roomScreens

import (
	"context"

	"go.uber.org/zap"

	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
)

type ListState struct {
	Phase   Phase
	Rooms   []roomStructs.Room
	Message string
	Err     error
}

// RoomList is the home screen's view model. One instance issues exactly one
// directory fetch; remounting the screen means building a new instance.
type RoomList struct {
	lifetime
	directory Directory
	logger    *zap.SugaredLogger
	state     ListState
	onChange  func(ListState)
}

func NewRoomList(directory Directory, logger *zap.SugaredLogger) *RoomList {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RoomList{
		lifetime:  lifetime{done: make(chan struct{})},
		directory: directory,
		logger:    logger,
		state:     ListState{Phase: Loading},
	}
}

// OnChange registers f to be called once with the settled state. It must be
// set before Mount.
func (l *RoomList) OnChange(f func(ListState)) {
	l.onChange = f
}

func (l *RoomList) Mount(ctx context.Context) {
	fetchCtx, ok := l.start(ctx)
	if !ok {
		return
	}
	go func() {
		defer l.settle()

		rooms, err := l.directory.GetRooms(fetchCtx)
		next := ListState{Phase: Success, Rooms: rooms}
		if err != nil {
			next = ListState{Phase: Failure, Message: err.Error(), Err: err}
		}

		if !l.commit(func() { l.state = next }) {
			l.logger.Debug("Room list disposed before the fetch settled, dropping result")
			return
		}
		if err != nil {
			l.logger.Errorw("Room list fetch failed", "error", err)
		} else {
			l.logger.Infow("Room list loaded", "rooms", len(rooms))
		}
		if l.onChange != nil {
			l.onChange(next)
		}
	}()
}

func (l *RoomList) State() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
