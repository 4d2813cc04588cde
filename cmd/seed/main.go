package main

import (
	"log"
	"os"
	"time"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/mapper"
	"ai-support-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a verified admin and a demo user so the dashboard and chat flows
// are usable right after migration. Idempotent: existing emails are skipped.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	userMapper := mapper.NewUserMapper()

	seedUsers := []struct {
		email    string
		fullName string
		role     string
		verified bool
		password string
	}{
		{
			email:    getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
			fullName: "Support Admin",
			role:     entity.UserRoleAdmin,
			verified: true,
			password: getEnv("SEED_ADMIN_PASSWORD", "admin-password"),
		},
		{
			email:    getEnv("SEED_USER_EMAIL", "demo@example.com"),
			fullName: "Demo Customer",
			role:     entity.UserRoleUser,
			verified: true,
			password: getEnv("SEED_USER_PASSWORD", "demo-password"),
		},
	}

	for _, su := range seedUsers {
		var count int64
		db.Table("users").Where("email = ?", su.email).Count(&count)
		if count > 0 {
			log.Printf("Skip: %s already exists", su.email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error: Failed to hash password: %v", err)
		}
		hashStr := string(hash)

		user := &entity.User{
			Id:            uuid.New(),
			Email:         su.email,
			FullName:      su.fullName,
			PasswordHash:  &hashStr,
			Role:          su.role,
			EmailVerified: su.verified,
			CreatedAt:     time.Now(),
		}

		if err := db.Create(userMapper.ToModel(user)).Error; err != nil {
			log.Fatalf("Error: Failed to seed %s: %v", su.email, err)
		}
		log.Printf("Seeded %s (%s)", su.email, su.role)
	}

	log.Println("Seeding completed")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
