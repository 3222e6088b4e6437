package database

import (
	"fmt"
	"log"
	"trait_tracer_backend/internal/config"
	"trait_tracer_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Organization{},
			&model.JobOpening{},
			&model.CandidateProfile{},
			&model.Application{},
			&model.Assessment{},
			&model.AssessmentSession{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		seedDemoJobs(db)
	}

	return db, nil
}

// seedDemoJobs inserts a demo organization with a few openings so a fresh
// install has something to browse. Skipped once any opening exists.
func seedDemoJobs(db *gorm.DB) {
	var count int64
	db.Model(&model.JobOpening{}).Count(&count)
	if count > 0 {
		return
	}

	org := &model.Organization{
		Name:        "TraitTracer Demo Co",
		Industry:    "Technology",
		Description: "Demo organization created on first start",
	}
	if err := db.Create(org).Error; err != nil {
		log.Printf("demo seed skipped: %v", err)
		return
	}

	demoJobs := []model.JobOpening{
		{
			OrganizationID: org.ID,
			Title:          "Senior Frontend Developer",
			Description:    "Build and own rich client features across our recruiting products.",
			Requirements:   []string{"5+ years React experience", "TypeScript proficiency", "UI/UX design skills"},
			RequiredSkills: []string{"React", "TypeScript", "CSS"},
			Experience:     model.Senior,
			EmploymentType: "Full-time",
			Location:       "Remote",
			IsActive:       true,
		},
		{
			OrganizationID: org.ID,
			Title:          "Data Scientist",
			Description:    "Turn assessment and hiring-funnel data into models recruiters can act on.",
			Requirements:   []string{"Python expertise", "Machine Learning experience", "Statistics background"},
			RequiredSkills: []string{"Python", "Pandas", "SQL"},
			Experience:     model.Mid,
			EmploymentType: "Full-time",
			Location:       "Berlin",
			IsActive:       true,
		},
		{
			OrganizationID: org.ID,
			Title:          "DevOps Engineer",
			Description:    "Own CI/CD and runtime infrastructure for the platform.",
			Requirements:   []string{"AWS/Azure experience", "Docker/Kubernetes", "CI/CD pipelines"},
			RequiredSkills: []string{"Kubernetes", "Terraform", "Go"},
			Experience:     model.Mid,
			EmploymentType: "Full-time",
			Location:       "Remote",
			IsActive:       true,
		},
	}
	for i := range demoJobs {
		db.Create(&demoJobs[i])
	}
}
