package roomWeb

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
	"github.com/zabeloliver/room-monitor/roomApp/roomScreens"
	"github.com/zabeloliver/room-monitor/roomApp/roomSession"
)

const tokenKey = "token"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type roomView struct {
	roomStructs.Room
	Image string `json:"image"`
}

func (h *Handler) view(room roomStructs.Room) roomView {
	return roomView{Room: room, Image: h.images.Lookup(room.Resident)}
}

func (h *Handler) GetLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": roomScreens.AppTitle, "route": roomScreens.RouteLogin})
}

func (h *Handler) PostLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if _, err := h.gate.Check(req.Email, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   h.tokens.Issue(req.Email),
		"message": roomSession.LoginSuccessMessage,
		"welcome": roomScreens.WelcomeMessage,
		"next":    roomScreens.RouteHome,
	})
}

// RequireSession rejects requests without a live bearer token.
func (h *Handler) RequireSession(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if _, ok := h.tokens.Lookup(token); !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required", "next": roomScreens.RouteLogin})
		return
	}
	c.Set(tokenKey, token)
	c.Next()
}

func (h *Handler) PostLogout(c *gin.Context) {
	h.tokens.Revoke(c.GetString(tokenKey))
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetHome(c *gin.Context) {
	list := roomScreens.NewRoomList(h.directory, h.logger)
	defer list.Dispose()

	ctx := c.Request.Context()
	list.Mount(ctx)
	select {
	case <-list.Done():
	case <-ctx.Done():
		return
	}

	state := list.State()
	if state.Phase != roomScreens.Success {
		c.JSON(http.StatusBadGateway, gin.H{"state": state.Phase.String(), "message": state.Message})
		return
	}

	rooms := make([]roomView, 0, len(state.Rooms))
	for _, room := range state.Rooms {
		rooms = append(rooms, h.view(room))
	}
	c.JSON(http.StatusOK, gin.H{"state": state.Phase.String(), "rooms": rooms})
}

func (h *Handler) GetDetails(c *gin.Context) {
	roomId := c.Param("roomId")
	if roomId == "" {
		h.GetMissingDetails(c)
		return
	}

	detail := roomScreens.NewRoomDetail(h.directory, roomId, h.logger)
	defer detail.Dispose()

	ctx := c.Request.Context()
	detail.Mount(ctx)
	select {
	case <-detail.Done():
	case <-ctx.Done():
		return
	}

	state := detail.State()
	if state.Phase == roomScreens.Success {
		c.JSON(http.StatusOK, gin.H{"state": state.Phase.String(), "room": h.view(*state.Room)})
		return
	}

	status := http.StatusBadGateway
	var notFound *roomScreens.NotFoundError
	if errors.As(state.Err, &notFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"state": state.Phase.String(), "message": state.Message})
}

func (h *Handler) GetMissingDetails(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"state": roomScreens.Failure.String(), "message": roomScreens.MissingRoomIdMessage})
}
