// Package seed loads the demo accounts, projects and announcements.
package seed

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	announcemententity "student_portal/internal/feature/announcement/domain/entity"
	authentity "student_portal/internal/feature/auth/domain/entity"
	authusecase "student_portal/internal/feature/auth/usecase"
	projectentity "student_portal/internal/feature/project/domain/entity"
	"student_portal/internal/platform/logger"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

// Result counts the rows inserted by Run.
type Result struct {
	Accounts      int
	Projects      int
	Announcements int
}

var projects = []projectentity.Project{
	{Title: "Machine Learning for Medical Image Analysis", Description: "Develop and implement machine learning algorithms for medical image analysis to assist in diagnosing various conditions."},
	{Title: "Blockchain-based Voting System", Description: "Create a secure and transparent voting system using blockchain technology that ensures vote integrity and prevents fraud."},
	{Title: "Smart Home Automation System", Description: "Design and implement a smart home automation system that controls various household appliances and systems using IoT technologies."},
	{Title: "Natural Language Processing for Social Media Analysis", Description: "Develop NLP algorithms to analyze social media content for sentiment analysis, trend detection, and user behavior patterns."},
	{Title: "Augmented Reality Educational App", Description: "Create an educational application that uses augmented reality to enhance learning experiences across various subjects."},
	{Title: "Cybersecurity Risk Assessment Tool", Description: "Develop a tool that assesses cybersecurity risks in computer networks and provides recommendations for improving security."},
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

var announcements = []announcemententity.Announcement{
	{Title: "Registration for Fall 2025 Now Open", Content: "Registration for the Fall 2025 semester is now open. Please log in to your student account to register for courses.", Display: announcemententity.DepartmentGeneral, Datetime: at("2025-03-15T09:00:00")},
	{Title: "Final Exam Schedule Posted", Content: "The final exam schedule for the Spring 2025 semester has been posted. Please check your student portal for details.", Display: announcemententity.DepartmentGeneral, Datetime: at("2025-03-18T14:30:00")},
	{Title: "New Project Management Course", Content: "A new project management course will be offered in the Computer Science department next semester. Prerequisites include CS220 and CS240.", Display: announcemententity.DepartmentGeneral, Datetime: at("2025-03-20T10:15:00")},
	{Title: "New Computer Science Curriculum", Content: "The Computer Science department has updated its curriculum for the upcoming academic year. New courses include Advanced AI and Blockchain Technology.", Display: announcemententity.DepartmentComputerScience, Datetime: at("2025-03-12T14:30:00")},
	{Title: "Physics Department Seminar Series", Content: "The Physics Department will host a series of seminars on quantum mechanics starting next month. All students are welcome to attend.", Display: announcemententity.DepartmentPhysics, Datetime: at("2025-03-10T10:15:00")},
}

// Run inserts whatever demo data is missing. Running it twice is a no-op.
func Run(ctx context.Context, db *gorm.DB) (Result, error) {
	var res Result
	hash, err := authusecase.HashPassword(DemoPassword)
	if err != nil {
		return res, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student := authentity.Student{FirstName: "Demo", LastName: "Student", Email: "student@example.com", Password: hash}
		n, err := firstOrCreate(tx, &student, "email = ?", student.Email)
		if err != nil {
			return fmt.Errorf("failed to seed student: %w", err)
		}
		res.Accounts += n

		admin := authentity.Admin{FullName: "Demo Admin", Email: "admin@example.com", Password: hash}
		n, err = firstOrCreate(tx, &admin, "email = ?", admin.Email)
		if err != nil {
			return fmt.Errorf("failed to seed admin: %w", err)
		}
		res.Accounts += n

		for _, p := range projects {
			n, err := firstOrCreate(tx, &p, "title = ?", p.Title)
			if err != nil {
				return fmt.Errorf("failed to seed project %q: %w", p.Title, err)
			}
			res.Projects += n
		}

		for _, a := range announcements {
			n, err := firstOrCreate(tx, &a, "title = ?", a.Title)
			if err != nil {
				return fmt.Errorf("failed to seed announcement %q: %w", a.Title, err)
			}
			res.Announcements += n
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.Info().
		Int("accounts", res.Accounts).
		Int("projects", res.Projects).
		Int("announcements", res.Announcements).
		Msg("seed complete")
	return res, nil
}

// firstOrCreate inserts row unless a row matching the condition exists.
// It returns 1 when a row was inserted.
func firstOrCreate[T any](tx *gorm.DB, row *T, query string, arg any) (int, error) {
	var n int64
	if err := tx.Model(new(T)).Where(query, arg).Count(&n).Error; err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	if err := tx.Create(row).Error; err != nil {
		return 0, err
	}
	return 1, nil
}
