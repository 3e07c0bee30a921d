package main

import (
	"log"
	"os"
	"time"

	"trainerbook/internal/database"
	"trainerbook/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "trainerbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.BusySlot{},
		&domain.Session{},
		&domain.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM busy_slots")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@trainerbook.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@trainerbook.local / admin123")

	trainerNames := []string{"Aigerim", "Marat", "Sofia"}
	trainers := make([]domain.User, 0, len(trainerNames))
	for i, name := range trainerNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("trainer123"), bcrypt.DefaultCost)
		t := domain.User{
			Email:        name + "@trainerbook.local",
			PasswordHash: string(hash),
			Role:         domain.RoleTrainer,
			Name:         name,
			Phone:        "+7 777 000 00" + string(rune('0'+i)),
		}
		db.Create(&t)
		trainers = append(trainers, t)
	}
	log.Printf("Created %d trainers (password: trainer123)", len(trainers))

	log.Println("Creating busy slots...")
	tomorrow := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	db.Create(&domain.BusySlot{
		TrainerID: trainers[0].ID,
		Start:     tomorrow,
		End:       tomorrow.Add(2 * time.Hour),
		Reason:    "Personal appointment",
	})
	db.Create(&domain.BusySlot{
		TrainerID: trainers[1].ID,
		Start:     tomorrow.Add(4 * time.Hour),
		End:       tomorrow.Add(5 * time.Hour),
	})

	log.Println("Creating sessions...")
	nextWeek := time.Now().Add(7 * 24 * time.Hour)
	db.Create(&domain.Session{
		TrainerID:      trainers[0].ID,
		CourseName:     "Go Fundamentals",
		Date:           nextWeek.Format(domain.DateLayout),
		Time:           "09:00",
		Location:       "Room 101",
		Duration:       90,
		ApprovalStatus: domain.ApprovalApproved,
	})
	db.Create(&domain.Session{
		TrainerID:        trainers[1].ID,
		CourseName:       "Advanced SQL",
		Date:             nextWeek.Format(domain.DateLayout),
		Time:             "14:00",
		Location:         "Room 202",
		Duration:         domain.DefaultSessionDuration,
		CreatedByTrainer: true,
		ApprovalStatus:   domain.ApprovalPending,
	})

	log.Println("Seed complete")
}
