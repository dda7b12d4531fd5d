package roomScreens

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
)

// NotFoundError means the directory loaded but holds no room with the id.
type NotFoundError struct {
	Id string
}

func (e *NotFoundError) Error() string {
	return "Room " + e.Id + " not found"
}

type DetailState struct {
	Phase   Phase
	Room    *roomStructs.Room
	Message string
	Err     error
}

// RoomDetail looks a single room up by re-fetching the whole directory. The
// API has no single-room endpoint, so this is a linear scan per view.
type RoomDetail struct {
	lifetime
	directory Directory
	logger    *zap.SugaredLogger
	roomId    string
	state     DetailState
}

func NewRoomDetail(directory Directory, roomId string, logger *zap.SugaredLogger) *RoomDetail {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RoomDetail{
		lifetime:  lifetime{done: make(chan struct{})},
		directory: directory,
		logger:    logger,
		roomId:    roomId,
		state:     DetailState{Phase: Loading},
	}
}

func (d *RoomDetail) RoomId() string {
	return d.roomId
}

func (d *RoomDetail) Mount(ctx context.Context) {
	fetchCtx, ok := d.start(ctx)
	if !ok {
		return
	}
	go func() {
		defer d.settle()

		next := d.lookup(fetchCtx)
		if !d.commit(func() { d.state = next }) {
			d.logger.Debugw("Room detail disposed before the fetch settled, dropping result", "id", d.roomId)
			return
		}
		if next.Err != nil {
			d.logger.Errorw("Room detail lookup failed", "id", d.roomId, "error", next.Err)
		}
	}()
}

func (d *RoomDetail) lookup(ctx context.Context) DetailState {
	rooms, err := d.directory.GetRooms(ctx)
	if err != nil {
		return DetailState{Phase: Failure, Message: err.Error(), Err: err}
	}
	idx := slices.IndexFunc(rooms, func(r roomStructs.Room) bool { return r.Id == d.roomId })
	if idx == -1 {
		err := &NotFoundError{Id: d.roomId}
		return DetailState{Phase: Failure, Message: err.Error(), Err: err}
	}
	room := rooms[idx]
	return DetailState{Phase: Success, Room: &room}
}

func (d *RoomDetail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}
