package handlers

import (
	"net/http"
	"time"

	roomRepo "hotelier/database/repository/room"
	"hotelier/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoomHandler exposes room inventory management over HTTP.
type RoomHandler struct {
	Repo roomRepo.RoomRepository
}

func NewRoomHandler(repo roomRepo.RoomRepository) *RoomHandler {
	return &RoomHandler{Repo: repo}
}

type roomInput struct {
	Number        string  `json:"number" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	PricePerNight float64 `json:"pricePerNight" binding:"required,gt=0"`
	Capacity      int     `json:"capacity" binding:"required,gt=0"`
	Status        string  `json:"status"`
}

func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var input roomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	status := models.RoomStatus(input.Status)
	if input.Status == "" {
		status = models.RoomStatusAvailable
	}
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room status " + input.Status})
		return
	}
	now := time.Now().UTC()
	room := &models.Room{
		ID:            uuid.New().String(),
		Number:        input.Number,
		Type:          input.Type,
		PricePerNight: input.PricePerNight,
		Capacity:      input.Capacity,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := h.Repo.Insert(c.Request.Context(), room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	room, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var input roomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Status != "" && !models.RoomStatus(input.Status).IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room status " + input.Status})
		return
	}
	room.Number = input.Number
	room.Type = input.Type
	room.PricePerNight = input.PricePerNight
	room.Capacity = input.Capacity
	if input.Status != "" {
		room.Status = models.RoomStatus(input.Status)
	}
	room.UpdatedAt = time.Now().UTC()
	if err := h.Repo.Update(c.Request.Context(), room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
