package roomClient

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
)

// DefaultBaseUrl is the mock directory the app ships against. It must end with '/'.
const DefaultBaseUrl = "https://6752c7c4f3754fcea7b99109.mockapi.io/api/v1/"

const roomsPath = "rooms"

type RoomApiClient struct {
	BaseUrl string
	client  *resty.Client
	logger  *zap.SugaredLogger
}

// NewRoomApiClient builds the one client the process uses. Retries stay off:
// a fetch either succeeds or fails once.
func NewRoomApiClient(baseUrl string, logger *zap.SugaredLogger) *RoomApiClient {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	client := resty.New().
		SetBaseURL(baseUrl).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetLogger(logger)

	return &RoomApiClient{
		BaseUrl: baseUrl,
		client:  client,
		logger:  logger,
	}
}

// SetTimeout overrides the transport default. Zero or less keeps the default.
func (c *RoomApiClient) SetTimeout(timeout int) {
	if timeout <= 0 {
		return
	}
	c.client.SetTimeout(time.Duration(timeout) * time.Second)
}

// GetRooms fetches the whole room directory in response order.
func (c *RoomApiClient) GetRooms(ctx context.Context) ([]roomStructs.Room, error) {
	c.logger.Debugw("Requesting room directory", "url", c.BaseUrl+roomsPath)

	res, err := c.client.R().
		SetContext(ctx).
		Get(roomsPath)
	if err != nil {
		c.logger.Errorw("Room directory request failed", "error", err)
		return nil, &TransportError{Err: err}
	}
	if !res.IsSuccess() {
		c.logger.Errorw("Room directory returned non-success status", "status", res.StatusCode())
		return nil, &StatusError{Code: res.StatusCode()}
	}

	var rooms []roomStructs.Room
	if err := json.Unmarshal(res.Body(), &rooms); err != nil {
		c.logger.Errorw("Room directory response could not be decoded", "error", err)
		return nil, &TransportError{Err: err}
	}
	if rooms == nil {
		rooms = []roomStructs.Room{}
	}
	c.logger.Info("Get List of Rooms: ", len(rooms))
	return rooms, nil
}
