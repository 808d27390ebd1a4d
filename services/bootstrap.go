package services

import (
	"log"
	"os"

	"barberq-backend/models"
	"barberq-backend/utils"

	"gorm.io/gorm"
)

// Bootstrap seeds the initial super admin when the user table is empty, so a
// fresh install is always reachable. With SEED_DEMO=true it also creates the
// demo salons used during development.
func Bootstrap(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "superadmin"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	superAdmin := models.User{
		Username: "superadmin",
		Password: hashed,
		Role:     models.RoleSuperAdmin,
	}
	if err := db.Create(&superAdmin).Error; err != nil {
		return err
	}
	log.Println("Bootstrap: created default super admin")

	if os.Getenv("SEED_DEMO") == "true" {
		if err := seedDemoData(db); err != nil {
			return err
		}
		log.Println("Bootstrap: seeded demo salons")
	}
	return nil
}

func seedDemoData(db *gorm.DB) error {
	salons := []models.Salon{
		{Name: "Le Gentleman", Address: "123 Rue de la Coiffe, Paris", Slug: "le-gentleman"},
		{Name: "Barber Shop 94", Address: "45 Avenue de la République, Créteil", Slug: "barber-94"},
	}
	for i := range salons {
		if err := db.Create(&salons[i]).Error; err != nil {
			return err
		}
	}

	services := []models.Service{
		{SalonID: salons[0].ID, Name: "Coupe Classique", Duration: 30},
		{SalonID: salons[0].ID, Name: "Barbe", Duration: 15},
		{SalonID: salons[1].ID, Name: "Dégradé Américain", Duration: 45},
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			return err
		}
	}

	chairs := []models.Chair{
		{SalonID: salons[0].ID, Name: "Fauteuil 1"},
		{SalonID: salons[0].ID, Name: "Fauteuil 2"},
		{SalonID: salons[1].ID, Name: "Trône Principal"},
	}
	for i := range chairs {
		if err := db.Create(&chairs[i]).Error; err != nil {
			return err
		}
	}

	barbers := []models.Barber{
		{SalonID: salons[0].ID, Name: "Julien", Photo: "https://picsum.photos/seed/b1/200", ChairID: chairs[0].Name},
		{SalonID: salons[0].ID, Name: "Marc", Photo: "https://picsum.photos/seed/b2/200", ChairID: chairs[1].Name},
		{SalonID: salons[1].ID, Name: "Karim", Photo: "https://picsum.photos/seed/b3/200", ChairID: chairs[2].Name},
	}
	for i := range barbers {
		if err := db.Create(&barbers[i]).Error; err != nil {
			return err
		}
	}

	demoAdmins := []struct {
		username string
		salonID  *models.Salon
	}{
		{"admin1", &salons[0]},
		{"admin2", &salons[1]},
	}
	for _, a := range demoAdmins {
		hashed, err := utils.HashPassword("admin")
		if err != nil {
			return err
		}
		salonID := a.salonID.ID
		user := models.User{
			Username: a.username,
			Password: hashed,
			Role:     models.RoleAdmin,
			SalonID:  &salonID,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}
