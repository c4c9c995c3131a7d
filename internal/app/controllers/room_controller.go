package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/services"
	"github.com/bisplatform/bisbackend/internal/middleware"
)

// RoomController handles room endpoints
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

// Create adds a new room
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RoomRequest true "Room data"
// @Success 201 {object} dto.APIResponse{data=models.Room} "Room created"
// @Failure 409 {object} dto.ErrorResponse "Room name already exists"
// @Router /rooms [post]
func (c *RoomController) Create(ctx *gin.Context) {
	var req dto.RoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	room := &models.Room{Name: req.Name, Capacity: req.Capacity, Location: req.Location}
	id, err := c.roomService.Create(ctx, room)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	room.ID = id
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(room))
}

// GetAll lists all rooms
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms"
// @Router /rooms [get]
func (c *RoomController) GetAll(ctx *gin.Context) {
	rooms, err := c.roomService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rooms))
}

// GetByID retrieves one room
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{id} [get]
func (c *RoomController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	room, err := c.roomService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(room))
}

// Update rewrites a room
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.RoomRequest true "Room data"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room updated"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{id} [put]
func (c *RoomController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	room := &models.Room{ID: id, Name: req.Name, Capacity: req.Capacity, Location: req.Location}
	if err := c.roomService.Update(ctx, room); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(room))
}

// Delete removes a room
// @Summary Delete a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse "Room deleted"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Room is referenced by sessions"
// @Router /rooms/{id} [delete]
func (c *RoomController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.roomService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Room deleted"))
}
