// controllers/user.go
package controllers

import (
	"errors"
	"net/http"

	"barberq-backend/config"
	"barberq-backend/models"
	"barberq-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateUserInput defines the expected JSON structure for creating a user
type CreateUserInput struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=4"`
	Role     string  `json:"role" binding:"required,oneof=SUPER_ADMIN ADMIN BARBER"`
	SalonID  *string `json:"salonId"`
}

// GetUsers lists all users without their password hashes (SUPER_ADMIN only)
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	list := make([]gin.H, 0, len(users))
	for _, u := range users {
		list = append(list, gin.H{
			"id":        u.ID,
			"username":  u.Username,
			"role":      u.Role,
			"salonId":   u.SalonID,
			"lastLogin": u.LastLogin,
		})
	}

	c.JSON(http.StatusOK, list)
}

// CreateUser creates a staff account (SUPER_ADMIN only)
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var salonID *uuid.UUID
	if input.Role != models.RoleSuperAdmin {
		if input.SalonID == nil || *input.SalonID == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "salonId is required for ADMIN and BARBER roles")
			return
		}
		parsed, err := uuid.Parse(*input.SalonID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
			return
		}
		var salon models.Salon
		if err := config.DB.First(&salon, "id = ?", parsed).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Salon does not exist")
			return
		}
		salonID = &parsed
	}

	// Duplicate check is case-insensitive
	var existing models.User
	result := config.DB.Where("LOWER(username) = LOWER(?)", input.Username).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username already exists")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Username: input.Username,
		Password: hashed,
		Role:     input.Role,
		SalonID:  salonID,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"salonId":  user.SalonID,
	})
}

// DeleteUser removes a staff account (SUPER_ADMIN only). Deleting the last
// SUPER_ADMIN is refused so the system always keeps at least one.
func DeleteUser(c *gin.Context) {
	userUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if user.Role == models.RoleSuperAdmin {
		var superAdmins int64
		if err := config.DB.Model(&models.User{}).
			Where("role = ?", models.RoleSuperAdmin).Count(&superAdmins).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if superAdmins <= 1 {
			utils.RespondWithError(c, http.StatusConflict, "Cannot delete the last super admin")
			return
		}
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
