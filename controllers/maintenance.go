// controllers/maintenance.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"barberq-backend/config"
	"barberq-backend/models"
	"barberq-backend/services"
	"barberq-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExportData streams the entire dataset as one JSON backup document
// (SUPER_ADMIN only).
func ExportData(c *gin.Context) {
	ds, err := services.NewGormStore(config.DB).LoadDataset()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export data")
		return
	}

	filename := fmt.Sprintf("barberq_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.JSON(http.StatusOK, ds)
}

// ImportData replaces the entire dataset with an uploaded backup document
// (SUPER_ADMIN only). The document must parse and carry at least salons and
// users; otherwise nothing is written.
func ImportData(c *gin.Context) {
	var ds services.Dataset
	if err := c.ShouldBindJSON(&ds); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid backup document: "+err.Error())
		return
	}

	if len(ds.Salons) == 0 || len(ds.Users) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid backup document: missing salons or users")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := wipeDataset(tx); err != nil {
			return err
		}
		if err := tx.Create(&ds.Salons).Error; err != nil {
			return err
		}
		if len(ds.Services) > 0 {
			if err := tx.Create(&ds.Services).Error; err != nil {
				return err
			}
		}
		if len(ds.Barbers) > 0 {
			if err := tx.Create(&ds.Barbers).Error; err != nil {
				return err
			}
		}
		if len(ds.Chairs) > 0 {
			if err := tx.Create(&ds.Chairs).Error; err != nil {
				return err
			}
		}
		if len(ds.Queue) > 0 {
			if err := tx.Create(&ds.Queue).Error; err != nil {
				return err
			}
		}
		return tx.Create(&ds.Users).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import data")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data imported successfully"})
}

// ResetData wipes everything and re-seeds the bootstrap defaults
// (SUPER_ADMIN only).
func ResetData(c *gin.Context) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return wipeDataset(tx)
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset data")
		return
	}

	if err := services.Bootstrap(config.DB); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to re-seed defaults")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data reset to defaults"})
}

func wipeDataset(tx *gorm.DB) error {
	for _, model := range []interface{}{
		&models.QueueEntry{},
		&models.Barber{},
		&models.Chair{},
		&models.Service{},
		&models.User{},
		&models.Salon{},
	} {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
