package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
	"github.com/gctu/attendance-api/internal/core/service"
	"github.com/gctu/attendance-api/internal/infrastructure/config"
	"github.com/gctu/attendance-api/internal/infrastructure/db/mongo"
	"github.com/gctu/attendance-api/pkg/logger"
)

var sampleUsers = []ports.RegisterUserInput{
	{UserID: "L100", Name: "Dr. Kwame Owusu", Email: "kowusu@gctu.edu.gh", Role: "lecturer", Department: "Computer Science", Courses: []string{"CSC201", "CSC305"}, Levels: []int{200, 300}},
	{UserID: "L101", Name: "Dr. Efua Boateng", Email: "eboateng@gctu.edu.gh", Role: "lecturer", Department: "Information Technology", Courses: []string{"ITC110"}, Levels: []int{100}},
	{UserID: "E100", Name: "Prof. Yaw Asante", Email: "yasante@gctu.edu.gh", Role: "examiner", Department: "Examinations"},
	{UserID: "S100", Name: "Ama Mensah", Email: "amensah@gctu.edu.gh", Role: "student", Level: 200, Program: "BSc Computer Science"},
	{UserID: "S101", Name: "Kofi Adjei", Email: "kadjei@gctu.edu.gh", Role: "student", Level: 200, Program: "BSc Computer Science"},
	{UserID: "S102", Name: "Akosua Darko", Email: "adarko@gctu.edu.gh", Role: "student", Level: 300, Program: "BSc Computer Science"},
	{UserID: "S103", Name: "Yaw Frimpong", Email: "yfrimpong@gctu.edu.gh", Role: "student", Level: 100, Program: "BSc Information Technology"},
}

type sampleMark struct {
	lecturer, student, course, courseName, status string
	daysAgo                                       int
}

var sampleMarks = []sampleMark{
	{"L100", "S100", "CSC201", "Data Structures", "present", 0},
	{"L100", "S101", "CSC201", "Data Structures", "absent", 0},
	{"L100", "S100", "CSC201", "Data Structures", "late", 7},
	{"L100", "S101", "CSC201", "Data Structures", "present", 7},
	{"L100", "S102", "CSC305", "Operating Systems", "present", 2},
	{"L101", "S103", "ITC110", "Introduction to IT", "present", 1},
	{"L101", "S103", "ITC110", "Introduction to IT", "absent", 35},
}

func main() {
	password := flag.String("password", "", "password given to every seeded user (required)")
	withAttendance := flag.Bool("attendance", true, "also record sample attendance marks")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "attendance-seed"})

	if *password == "" {
		log.Fatal().Msg("-password is required")
	}
	if cfg.Store.Driver != config.StoreMongo {
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("seeding needs STORE_DRIVER=mongo")
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongo.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare mongodb schema")
	}

	users := mongo.NewUserRepository(db, cfg.Store.Timeout)
	ledger := mongo.NewAttendanceRepository(db, cfg.Store.Timeout)
	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	dir := service.NewDirectory(users, "")
	userService := service.NewUserService(dir, users, hasher, false, log)
	attendanceService := service.NewAttendanceService(dir, ledger, log)

	fmt.Printf("=== Seeding %d users ===\n", len(sampleUsers))
	created := 0
	for _, in := range sampleUsers {
		in.Password = *password
		if _, err := userService.Register(ctx, in); err != nil {
			if errors.Is(err, domain.ErrUserExists) {
				fmt.Printf("  skip %s (exists)\n", in.UserID)
				continue
			}
			log.Fatal().Err(err).Str("user_id", in.UserID).Msg("failed to seed user")
		}
		created++
		fmt.Printf("  created %s %-8s %s\n", in.UserID, in.Role, in.Name)
	}
	fmt.Printf("Created %d users\n", created)

	if !*withAttendance {
		return
	}

	fmt.Printf("=== Recording %d attendance marks ===\n", len(sampleMarks))
	now := time.Now().UTC()
	for _, m := range sampleMarks {
		lecturer, err := dir.FindByID(ctx, m.lecturer)
		if err != nil {
			log.Fatal().Err(err).Str("user_id", m.lecturer).Msg("failed to load lecturer")
		}
		_, err = attendanceService.Record(ctx, lecturer, ports.RecordAttendanceInput{
			StudentID:  m.student,
			CourseID:   m.course,
			CourseName: m.courseName,
			Status:     m.status,
			RecordedAt: now.AddDate(0, 0, -m.daysAgo),
		})
		if err != nil {
			log.Fatal().Err(err).Str("student_id", m.student).Msg("failed to record attendance")
		}
	}
	fmt.Println("Done.")
}
