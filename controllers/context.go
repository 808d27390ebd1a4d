package controllers

import (
	"net/http"

	"barberq-backend/models"
	"barberq-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// resolveSalonID determines the salon scope of an authenticated request.
// ADMIN and BARBER tokens are bound to their own salon; SUPER_ADMIN selects
// one via the salonId query parameter. Writes the error response itself and
// returns false when no scope can be resolved.
func resolveSalonID(c *gin.Context) (uuid.UUID, bool) {
	role, _ := c.Get("role")

	if role == models.RoleSuperAdmin {
		raw := c.Query("salonId")
		if raw == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "salonId query parameter required")
			return uuid.Nil, false
		}
		salonUUID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
			return uuid.Nil, false
		}
		return salonUUID, true
	}

	salonID, exists := c.Get("salonId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return uuid.Nil, false
	}
	salonUUID, err := uuid.Parse(salonID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid salon ID format")
		return uuid.Nil, false
	}
	return salonUUID, true
}
