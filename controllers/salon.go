// controllers/salon.go
package controllers

import (
	"errors"
	"net/http"

	"barberq-backend/config"
	"barberq-backend/models"
	"barberq-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateSalonInput defines the expected JSON structure for creating a salon
type CreateSalonInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Slug    string `json:"slug" binding:"required"`
}

// CreateSalon creates a new salon (SUPER_ADMIN only). Salons are append-only
// once referenced by child entities; there is no delete endpoint.
func CreateSalon(c *gin.Context) {
	var input CreateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slug := utils.NormalizeSlug(input.Slug)
	if !utils.ValidateSlug(slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid slug format")
		return
	}

	var existing models.Salon
	result := config.DB.Where("slug = ?", slug).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Slug already in use")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	salon := models.Salon{
		Name:    input.Name,
		Address: input.Address,
		Slug:    slug,
	}

	if err := config.DB.Create(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create salon")
		return
	}

	c.JSON(http.StatusCreated, salon)
}

// GetSalons retrieves all salons (SUPER_ADMIN only)
func GetSalons(c *gin.Context) {
	var salons []models.Salon
	if err := config.DB.Find(&salons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}

	c.JSON(http.StatusOK, salons)
}

// GetPublicSalons is the unauthenticated salon directory
func GetPublicSalons(c *gin.Context) {
	var salons []models.Salon
	if err := config.DB.Find(&salons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}

	list := make([]gin.H, 0, len(salons))
	for _, s := range salons {
		list = append(list, gin.H{
			"name":    s.Name,
			"address": s.Address,
			"slug":    s.Slug,
		})
	}

	c.JSON(http.StatusOK, list)
}

// GetPublicSalon returns a salon with its barbers and services, everything
// the public booking form needs.
func GetPublicSalon(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := config.DB.Where("slug = ?", slug).First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var barbers []models.Barber
	if err := config.DB.Where("salon_id = ?", salon.ID).Order("created_at asc").Find(&barbers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var svcs []models.Service
	if err := config.DB.Where("salon_id = ?", salon.ID).Find(&svcs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    gin.H{"name": salon.Name, "address": salon.Address, "slug": salon.Slug},
		"barbers":  barbers,
		"services": svcs,
	})
}
