package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rishen2486/wheels-up-booking-suite/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "rental_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

func jsonList(items ...string) datatypes.JSON {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(fmt.Sprintf("%q", it))
	}
	sb.WriteByte(']')
	return datatypes.JSON(sb.String())
}

// SeedDatabase is idempotent: it only inserts when a table is empty.
func SeedDatabase() {
	// ---------------- Superuser profile ----------------
	var adminCount int64
	DB.Model(&models.Profile{}).Where("superuser = ?", true).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Profile{
				UserID:    uuid.NewString(),
				Email:     envOrDefault("ADMIN_EMAIL", "admin@wheelsup.local"),
				Password:  string(hash),
				FirstName: "Platform",
				LastName:  "Admin",
				Role:      "admin",
				Superuser: true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default superuser: %v", err)
			} else {
				log.Println("Default superuser seeded")
			}
		}
	}

	// ---------------- Demo agent + catalog ----------------
	var carCount int64
	DB.Model(&models.Car{}).Count(&carCount)
	if carCount > 0 {
		log.Println("Catalog already seeded")
		return
	}

	agentID := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte("agent123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash demo agent password: %v", err)
		return
	}
	agent := models.Profile{
		UserID:    agentID,
		Email:     "agent@wheelsup.local",
		Password:  string(hash),
		FirstName: "Demo",
		LastName:  "Agent",
		Role:      "agent",
	}
	if err := DB.Create(&agent).Error; err != nil {
		log.Printf("warning: failed to create demo agent: %v", err)
		return
	}
	DB.Create(&models.AgentInfo{
		UserID:      agentID,
		CompanyName: "Wheels Up Rentals Ltd",
		Phone:       "+230 5555 0100",
		Approved:    true,
	})

	cars := []models.Car{
		{
			UserID: agentID, Name: "Swift Compact", Brand: "Suzuki", CarModel: "Swift",
			Year: 2022, Type: "Hatchback", Seats: 5, Transmission: "Manual", FuelType: "Petrol",
			Location: "Port Louis", DailyRate: 45,
			Features:  jsonList("Air Conditioning", "Bluetooth"),
			Available: true,
		},
		{
			UserID: agentID, Name: "Family SUV", Brand: "Toyota", CarModel: "RAV4",
			Year: 2023, Type: "SUV", Seats: 5, Transmission: "Automatic", FuelType: "Hybrid",
			Location: "Grand Baie", DailyRate: 85,
			Features:  jsonList("Air Conditioning", "GPS", "Reverse Camera"),
			Available: true,
		},
	}
	if err := DB.Create(&cars).Error; err != nil {
		log.Printf("warning: failed to seed cars: %v", err)
	}

	tours := []models.Tour{
		{UserID: agentID, Name: "North Coast Day Trip", Location: "Grand Baie", DurationDays: 1, Price: 75, MaxPeople: 12, Available: true},
		{UserID: agentID, Name: "South Island Explorer", Location: "Chamarel", DurationDays: 2, Price: 120, MaxPeople: 8, Available: true},
		{UserID: agentID, Name: "Catamaran Cruise", Location: "Blue Bay", DurationDays: 1, Price: 180, MaxPeople: 20, Available: true},
	}
	if err := DB.Create(&tours).Error; err != nil {
		log.Printf("warning: failed to seed tours: %v", err)
	}

	attractions := []models.Attraction{
		{UserID: agentID, Name: "Casela Nature Park", Location: "Cascavelle", Price: 30, OpenHours: "09:00-17:00", Available: true},
		{UserID: agentID, Name: "Pamplemousses Garden", Location: "Pamplemousses", Price: 10, OpenHours: "08:30-17:30", Available: true},
	}
	if err := DB.Create(&attractions).Error; err != nil {
		log.Printf("warning: failed to seed attractions: %v", err)
	}

	log.Println("Catalog seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Profile{},
		&models.AgentInfo{},
		&models.Car{},
		&models.Tour{},
		&models.Attraction{},
		&models.Booking{},
		&models.AvailabilityBlock{},
		&models.PaymentAttempt{},
		&models.SearchRequest{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
