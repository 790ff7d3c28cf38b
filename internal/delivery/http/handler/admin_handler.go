package handler

import (
	"net/http"
	"restaurant-platform/internal/usecase/admin"
	"restaurant-platform/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	service *admin.Service
}

func NewAdminHandler(service *admin.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	admins := router.Group("/admins")
	{
		admins.GET("", h.GetAll)
		admins.GET("/:id", h.GetByID)
	}
}

func (h *AdminHandler) GetAll(c *gin.Context) {
	admins, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Admins retrieved successfully", admins)
}

func (h *AdminHandler) GetByID(c *gin.Context) {
	adminID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid admin ID")
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), adminID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Admin retrieved successfully", found)
}
