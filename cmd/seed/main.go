package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"modelo/internal/database"
	"modelo/internal/domain/auth"
	"modelo/internal/domain/listing"
	"modelo/internal/domain/profile"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "modelo.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM conversations")
	db.Exec("DELETE FROM applications")
	db.Exec("DELETE FROM listings")
	db.Exec("DELETE FROM model_profiles")
	db.Exec("DELETE FROM professional_profiles")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM users")

	// ================== MODELS ==================
	log.Println("Creating models...")

	modelNames := []string{"Amina", "Sofia", "Lena"}
	for i, name := range modelNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("model123"), bcrypt.DefaultCost)
		u := auth.User{
			Email:        fmt.Sprintf("%s@example.com", name),
			PasswordHash: string(hash),
			Role:         auth.RoleModel,
			Name:         name,
			Phone:        fmt.Sprintf("+33 6 12 34 56 %02d", 10+i),
		}
		db.Create(&u)

		db.Create(&profile.ModelProfile{
			UserID:     u.ID,
			Gender:     profile.GenderFemale,
			BirthYear:  1998 + i,
			HeightCm:   168 + i*3,
			HairColor:  []string{"brown", "blonde", "black"}[i],
			HairLength: "long",
			EyeColor:   "brown",
			Experience: profile.ExperienceIntermediate,
			Bio:        fmt.Sprintf("%s, available for editorial and beauty work.", name),
			City:       "Paris",
		})
		log.Printf("Model created: %s / model123", u.Email)
	}

	// ================== PROFESSIONALS ==================
	log.Println("Creating professionals...")

	type pro struct {
		name       string
		profession profile.Profession
		business   string
	}
	pros := []pro{
		{"Marc", profile.ProfessionPhotographer, "Studio Lumière"},
		{"Julie", profile.ProfessionHairdresser, "Salon Julie"},
	}
	professionals := make([]auth.User, 0, len(pros))
	for i, p := range pros {
		hash, _ := bcrypt.GenerateFromPassword([]byte("pro123"), bcrypt.DefaultCost)
		u := auth.User{
			Email:        fmt.Sprintf("%s@example.com", p.name),
			PasswordHash: string(hash),
			Role:         auth.RoleProfessional,
			Name:         p.name,
			Phone:        fmt.Sprintf("+33 6 98 76 54 %02d", 20+i),
		}
		db.Create(&u)
		professionals = append(professionals, u)

		specs, _ := json.Marshal([]string{"editorial", "beauty"})
		db.Create(&profile.ProfessionalProfile{
			UserID:       u.ID,
			Profession:   p.profession,
			Specialties:  datatypes.JSON(specs),
			BusinessName: p.business,
			Bio:          fmt.Sprintf("%s at %s.", p.profession, p.business),
			City:         "Paris",
		})
		log.Printf("Professional created: %s / pro123", u.Email)
	}

	// ================== LISTINGS ==================
	log.Println("Creating listings...")

	amount := 150.0
	minHeight := 165
	listings := []listing.Listing{
		{
			ProfessionalID:    professionals[0].ID,
			Title:             "Editorial shoot, natural light",
			Description:       "Looking for a model for an outdoor editorial series.",
			Category:          listing.CategoryPhotoshoot,
			Status:            listing.StatusPublished,
			ScheduledAt:       time.Now().Add(7 * 24 * time.Hour),
			DurationMinutes:   180,
			City:              "Paris",
			Address:           "Jardin des Tuileries",
			CompensationType:  listing.CompensationPaid,
			CompensationAmount: &amount,
			RequiredHeightMin: &minHeight,
		},
		{
			ProfessionalID:   professionals[1].ID,
			Title:            "Balayage demo model needed",
			Description:      "Free balayage in exchange for before/after photos.",
			Category:         listing.CategoryColoring,
			Status:           listing.StatusPublished,
			ScheduledAt:      time.Now().Add(3 * 24 * time.Hour),
			DurationMinutes:  120,
			City:             "Paris",
			Address:          "Salon Julie, 12 rue des Martyrs",
			CompensationType: listing.CompensationFree,
		},
		{
			ProfessionalID:   professionals[0].ID,
			Title:            "TFP beauty closeups",
			Description:      "Trade for prints, studio session.",
			Category:         listing.CategoryPhotoshoot,
			Status:           listing.StatusDraft,
			ScheduledAt:      time.Now().Add(14 * 24 * time.Hour),
			DurationMinutes:  90,
			City:             "Paris",
			Address:          "Studio Lumière",
			CompensationType: listing.CompensationTFP,
		},
	}
	for i := range listings {
		db.Create(&listings[i])
	}
	log.Printf("Created %d listings", len(listings))

	log.Println("Seed complete.")
}
