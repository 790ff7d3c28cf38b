package handler

import (
	"errors"
	"net/http"
	domainAdmin "restaurant-platform/internal/domain/admin"
	domainRestaurant "restaurant-platform/internal/domain/restaurant"
	domainUser "restaurant-platform/internal/domain/user"
	"restaurant-platform/internal/logger"
	"restaurant-platform/internal/middleware"
	appErrors "restaurant-platform/pkg/errors"
	"restaurant-platform/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondWithError translates manager errors into HTTP statuses. The error
// texts themselves are returned verbatim; clients match on them.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domainUser.ErrEmailTaken):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, domainUser.ErrWrongPassword),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domainRestaurant.ErrNotOwner),
		errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domainUser.ErrUserNotFound),
		errors.Is(err, domainUser.ErrVerificationNotFound),
		errors.Is(err, domainRestaurant.ErrRestaurantNotFound),
		errors.Is(err, domainAdmin.ErrAdminNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainUser.ErrInvalidRole):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainUser.ErrCreateAccountFailed),
		errors.Is(err, domainUser.ErrEditProfileFailed),
		errors.Is(err, domainRestaurant.ErrCreateRestaurantFailed),
		errors.Is(err, domainRestaurant.ErrEditRestaurantFailed):
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
