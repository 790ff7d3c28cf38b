package handler

import (
	"net/http"
	"restaurant-platform/internal/middleware"
	"restaurant-platform/internal/usecase/restaurant"
	"restaurant-platform/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RestaurantHandler struct {
	service *restaurant.Service
}

func NewRestaurantHandler(service *restaurant.Service) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

func (h *RestaurantHandler) RegisterRoutes(router *gin.RouterGroup) {
	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", h.ListRestaurants)
		restaurants.GET("/:id", h.GetRestaurant)
	}

	router.GET("/categories", h.ListCategories)
}

func (h *RestaurantHandler) RegisterOwnerRoutes(router *gin.RouterGroup) {
	restaurants := router.Group("/restaurants")
	{
		restaurants.POST("", h.CreateRestaurant)
		restaurants.PUT("/:id", h.EditRestaurant)
	}
}

func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req restaurant.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = utils.SanitizeString(req.Name)
	req.Address = utils.SanitizeString(req.Address)
	req.CategoryName = utils.SanitizeString(req.CategoryName)

	created, err := h.service.CreateRestaurant(c.Request.Context(), owner, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Restaurant created successfully", created)
}

func (h *RestaurantHandler) EditRestaurant(c *gin.Context) {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	var req restaurant.EditRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.RestaurantID = restaurantID

	if req.Name != nil {
		sanitized := utils.SanitizeString(*req.Name)
		req.Name = &sanitized
	}
	if req.Address != nil {
		sanitized := utils.SanitizeString(*req.Address)
		req.Address = &sanitized
	}
	if req.CategoryName != nil {
		sanitized := utils.SanitizeString(*req.CategoryName)
		req.CategoryName = &sanitized
	}

	updated, err := h.service.EditRestaurant(c.Request.Context(), owner, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurant updated successfully", updated)
}

func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	found, err := h.service.GetRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurant retrieved successfully", found)
}

func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.service.ListRestaurants(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurants retrieved successfully", restaurants)
}

func (h *RestaurantHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}
