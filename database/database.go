package database

import (
	"fmt"
	"log"

	config "github.com/anjiri1684/tutoring_center/configs"
	"github.com/anjiri1684/tutoring_center/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Child{},
		&models.Tutor{},
		&models.TutorAvailability{},
		&models.Center{},
		&models.Package{},
		&models.Contract{},
		&models.ContractSession{},
		&models.RescheduleRequest{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedStaff() {
	staffEmail := config.Config("STAFF_EMAIL")
	staffPassword := config.Config("STAFF_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", staffEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for staff user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Staff user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash staff password: %v", err)
		return
	}

	staffUser := models.User{
		FullName: config.Config("STAFF_FULL_NAME"),
		Email:    staffEmail,
		Password: string(hashedPassword),
		Role:     "staff",
	}

	if err := DB.Create(&staffUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed staff user: %v", err)
		return
	}

	log.Println("✅ Staff user seeded successfully")
}
