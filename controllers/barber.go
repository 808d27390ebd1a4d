// controllers/barber.go
package controllers

import (
	"fmt"
	"net/http"

	"barberq-backend/config"
	"barberq-backend/models"
	"barberq-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateBarberInput defines the expected JSON structure for creating a barber
type CreateBarberInput struct {
	Name    string `json:"name" binding:"required"`
	Photo   string `json:"photo"`
	ChairID string `json:"chairId"`
}

// UpdateBarberInput defines the expected JSON structure for updating a barber
type UpdateBarberInput struct {
	Name    *string `json:"name"`
	Photo   *string `json:"photo"`
	ChairID *string `json:"chairId"`
}

// CreateBarber adds a barber to the salon
func CreateBarber(c *gin.Context) {
	salonUUID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	var input CreateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	photo := input.Photo
	if photo == "" {
		photo = fmt.Sprintf("https://picsum.photos/seed/%s/200", uuid.New().String()[:8])
	}
	chairID := input.ChairID
	if chairID == "" {
		chairID = "default"
	}

	barber := models.Barber{
		SalonID: salonUUID,
		Name:    input.Name,
		Photo:   photo,
		ChairID: chairID,
	}

	if err := config.DB.Create(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create barber")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// GetBarbers retrieves the salon's barbers in creation order
func GetBarbers(c *gin.Context) {
	salonUUID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	var barbers []models.Barber
	if err := config.DB.Where("salon_id = ?", salonUUID).Order("created_at asc").
		Find(&barbers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve barbers")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

// UpdateBarber updates an existing barber
func UpdateBarber(c *gin.Context) {
	salonUUID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	var input UpdateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var barber models.Barber
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, barberUUID).
		First(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		return
	}

	if input.Name != nil {
		barber.Name = *input.Name
	}
	if input.Photo != nil {
		barber.Photo = *input.Photo
	}
	if input.ChairID != nil {
		barber.ChairID = *input.ChairID
	}

	if err := config.DB.Save(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update barber")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// DeleteBarber removes a barber from the salon
func DeleteBarber(c *gin.Context) {
	salonUUID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, barberUUID).
		Delete(&models.Barber{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete barber")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barber deleted successfully"})
}

// CreateChairInput defines the expected JSON structure for creating a chair
type CreateChairInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateChair adds a chair label to the salon
func CreateChair(c *gin.Context) {
	salonUUID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	var input CreateChairInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	chair := models.Chair{
		SalonID: salonUUID,
		Name:    input.Name,
	}

	if err := config.DB.Create(&chair).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create chair")
		return
	}

	c.JSON(http.StatusCreated, chair)
}

// GetChairs retrieves the salon's chairs
func GetChairs(c *gin.Context) {
	salonUUID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	var chairs []models.Chair
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&chairs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve chairs")
		return
	}

	c.JSON(http.StatusOK, chairs)
}

// DeleteChair removes a chair label
func DeleteChair(c *gin.Context) {
	salonUUID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	chairUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid chair ID format")
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, chairUUID).
		Delete(&models.Chair{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete chair")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Chair not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chair deleted successfully"})
}
