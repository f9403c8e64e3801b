package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/database/models"
	"agrimanager-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// TenantData describes one tenant and everything created inside it
type TenantData struct {
	Name              string       `yaml:"name"`
	Email             string       `yaml:"email"`
	Phone             string       `yaml:"phone"`
	Address           string       `yaml:"address"`
	Users             []UserData   `yaml:"users"`
	CropStatuses      []LookupData `yaml:"crop_statuses"`
	ExpenseCategories []LookupData `yaml:"expense_categories"`
}

type UserData struct {
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
}

// LookupData is a named entry that defaults to active
type LookupData struct {
	Name     string `yaml:"name"`
	IsActive *bool  `yaml:"is_active,omitempty"`
}

func (l LookupData) active() bool {
	return l.IsActive == nil || *l.IsActive
}

type SeedFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

// Summary counts the records a run created
type Summary struct {
	Tenants           int
	Users             int
	CropStatuses      int
	ExpenseCategories int
}

// loadSeedFiles parses every .yaml/.yml file under dir in lexical order
func loadSeedFiles(dir string) ([]SeedFile, error) {
	var files []SeedFile

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		files = append(files, file)
		return nil
	})

	return files, err
}

// Seeder creates seed records that do not exist yet
type Seeder struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, now: time.Now}
}

// Seed applies every tenant of every file, each tenant in its own transaction
func (s *Seeder) Seed(ctx context.Context, files []SeedFile) (Summary, error) {
	var summary Summary
	for _, file := range files {
		for _, tenant := range file.Tenants {
			if strings.TrimSpace(tenant.Name) == "" {
				return summary, fmt.Errorf("tenant name is required")
			}
			err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return s.seedTenant(tx, tenant, &summary)
			})
			if err != nil {
				return summary, fmt.Errorf("failed to seed tenant %s: %w", tenant.Name, err)
			}
		}
	}
	return summary, nil
}

func (s *Seeder) seedTenant(tx *gorm.DB, data TenantData, summary *Summary) error {
	var tenant models.Tenant
	err := tx.Where("name = ?", data.Name).First(&tenant).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		tenant = models.Tenant{
			Name:      data.Name,
			Email:     data.Email,
			Phone:     data.Phone,
			Address:   data.Address,
			IsActive:  true,
			CreatedAt: s.now(),
		}
		if err := repository.NewTenantAccountRepository(tx).Create(tx.Statement.Context, &tenant); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}
		summary.Tenants++
	case err != nil:
		return fmt.Errorf("failed to query tenant: %w", err)
	}

	for _, userData := range data.Users {
		created, err := s.seedUser(tx, tenant.ID, userData)
		if err != nil {
			return err
		}
		if created {
			summary.Users++
		}
	}

	for _, status := range data.CropStatuses {
		created, err := s.seedLookup(tx, &models.CropStatus{}, tenant.ID, status, func(m models.TenantModel) interface{} {
			return &models.CropStatus{TenantModel: m, Name: status.Name, IsActive: status.active()}
		})
		if err != nil {
			return fmt.Errorf("crop status %s: %w", status.Name, err)
		}
		if created {
			summary.CropStatuses++
		}
	}

	for _, category := range data.ExpenseCategories {
		created, err := s.seedLookup(tx, &models.ExpenseCategory{}, tenant.ID, category, func(m models.TenantModel) interface{} {
			return &models.ExpenseCategory{TenantModel: m, Name: category.Name, IsActive: category.active()}
		})
		if err != nil {
			return fmt.Errorf("expense category %s: %w", category.Name, err)
		}
		if created {
			summary.ExpenseCategories++
		}
	}

	return nil
}

func (s *Seeder) seedUser(tx *gorm.DB, tenantID uint, data UserData) (bool, error) {
	var existing models.User
	err := tx.Where("tenant_id = ? AND username = ?", tenantID, data.Username).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user %s: %w", data.Username, err)
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return false, fmt.Errorf("user %s: %w", data.Username, err)
	}

	user := models.User{
		TenantID:     tenantID,
		Username:     data.Username,
		PasswordHash: hash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		Phone:        data.Phone,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := repository.NewUserRepository(tx).Create(tx.Statement.Context, &user); err != nil {
		return false, fmt.Errorf("failed to create user %s: %w", data.Username, err)
	}
	return true, nil
}

// seedLookup creates a named row in probe's table unless the tenant already has one with that name
func (s *Seeder) seedLookup(tx *gorm.DB, probe models.TenantOwned, tenantID uint, data LookupData, build func(models.TenantModel) interface{}) (bool, error) {
	var count int64
	if err := tx.Model(probe).Where("tenant_id = ? AND name = ?", tenantID, data.Name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	record := build(models.TenantModel{TenantID: tenantID, CreatedAt: s.now()})
	if err := tx.Create(record).Error; err != nil {
		return false, fmt.Errorf("failed to create: %w", err)
	}
	return true, nil
}
