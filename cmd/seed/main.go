package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/medlocate/medlocate-backend/internal/adapters/database"
	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/internal/infrastructure/clients/postgres"
	"github.com/medlocate/medlocate-backend/pkg/auth"
	"github.com/medlocate/medlocate-backend/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS hospitals (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	emergency_available BOOLEAN NOT NULL DEFAULT FALSE,
	ot_available BOOLEAN NOT NULL DEFAULT FALSE,
	general_beds INTEGER NOT NULL DEFAULT 0 CHECK (general_beds >= 0),
	ac_beds INTEGER NOT NULL DEFAULT 0 CHECK (ac_beds >= 0),
	private_beds INTEGER NOT NULL DEFAULT 0 CHECK (private_beds >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS doctors (
	id UUID PRIMARY KEY,
	hospital_id UUID NOT NULL REFERENCES hospitals(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	shift_start TEXT NOT NULL DEFAULT '',
	shift_end TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'available' CHECK (status IN ('available', 'upcoming')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_doctors_hospital_id ON doctors(hospital_id);

CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_roles (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	role TEXT NOT NULL CHECK (role IN ('admin', 'user')),
	hospital_id UUID REFERENCES hospitals(id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_user_roles_user_id ON user_roles(user_id);
`

type demoHospital struct {
	name      string
	lat, lon  float64
	emergency bool
	ot        bool
	beds      entities.BedCounts
	doctors   []demoDoctor
}

type demoDoctor struct {
	name       string
	shiftStart string
	shiftEnd   string
	status     entities.DoctorStatus
}

var demoHospitals = []demoHospital{
	{
		name: "City General Hospital", lat: 19.0760, lon: 72.8777,
		emergency: true, ot: true,
		beds: entities.BedCounts{General: 24, AC: 8, Private: 4},
		doctors: []demoDoctor{
			{"Dr. Asha Rao", "8:00 AM", "4:00 PM", entities.DoctorStatusAvailable},
			{"Dr. Vikram Iyer", "4:00 PM", "12:00 AM", entities.DoctorStatusUpcoming},
		},
	},
	{
		name: "Seaside Medical Centre", lat: 19.0825, lon: 72.8416,
		emergency: true, ot: false,
		beds: entities.BedCounts{General: 12, AC: 6, Private: 2},
		doctors: []demoDoctor{
			{"Dr. Meera Khan", "9:00 AM", "5:00 PM", entities.DoctorStatusAvailable},
		},
	},
	{
		name: "Lakeview Clinic", lat: 19.1197, lon: 72.9051,
		emergency: false, ot: false,
		beds: entities.BedCounts{General: 8, AC: 2, Private: 0},
	},
}

// Seeds the schema and a small demo data set: three hospitals, their
// rosters, and an administrator bound to the first hospital.
func main() {
	adminEmail := flag.String("admin-email", "admin@medlocate.local", "email for the demo administrator")
	adminPassword := flag.String("admin-password", "admin123", "password for the demo administrator")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("Schema created")

	hospitalRepo := database.NewHospitalAdapter(pgClient)
	doctorRepo := database.NewDoctorAdapter(pgClient)
	userRepo := database.NewUserAdapter(pgClient)
	userRoleRepo := database.NewUserRoleAdapter(pgClient)

	var firstHospitalID string
	for _, demo := range demoHospitals {
		hospital := &entities.Hospital{
			ID:                 uuid.New().String(),
			Name:               demo.name,
			Latitude:           demo.lat,
			Longitude:          demo.lon,
			EmergencyAvailable: demo.emergency,
			OTAvailable:        demo.ot,
			GeneralBeds:        demo.beds.General,
			ACBeds:             demo.beds.AC,
			PrivateBeds:        demo.beds.Private,
		}
		if err := hospitalRepo.Create(ctx, hospital); err != nil {
			log.Fatalf("Failed to create hospital %q: %v", demo.name, err)
		}
		if firstHospitalID == "" {
			firstHospitalID = hospital.ID
		}
		log.Printf("Created hospital %q (%s)", hospital.Name, hospital.ID)

		for _, d := range demo.doctors {
			doctor := &entities.Doctor{
				ID:         uuid.New().String(),
				HospitalID: hospital.ID,
				Name:       d.name,
				ShiftStart: d.shiftStart,
				ShiftEnd:   d.shiftEnd,
				Status:     d.status,
			}
			if err := doctorRepo.Create(ctx, doctor); err != nil {
				log.Fatalf("Failed to create doctor %q: %v", d.name, err)
			}
		}
	}

	passwordHash, err := auth.HashPassword(*adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := &entities.User{
		ID:           uuid.New().String(),
		Email:        *adminEmail,
		PasswordHash: passwordHash,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	role := &entities.UserRole{
		ID:         uuid.New().String(),
		UserID:     admin.ID,
		Role:       entities.RoleAdmin,
		HospitalID: &firstHospitalID,
	}
	if err := userRoleRepo.Create(ctx, role); err != nil {
		log.Fatalf("Failed to create admin role: %v", err)
	}

	log.Printf("Created administrator %s bound to hospital %s", admin.Email, firstHospitalID)
	log.Println("Seed complete")
}
