package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"agrimanager-backend/internal/database/models"
	"agrimanager-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const seedYAML = `
tenants:
  - name: Test Farms
    users:
      - username: alice
        password: pw
    crop_statuses:
      - name: Growing
      - name: Failed
        is_active: false
    expense_categories:
      - name: Seeds
`

func writeSeedDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tenants.yaml"), []byte(seedYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o600))
	return dir
}

func TestLoadSeedFiles(t *testing.T) {
	files, err := loadSeedFiles(writeSeedDir(t))
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Len(t, files[0].Tenants, 1)

	tenant := files[0].Tenants[0]
	assert.Equal(t, "Test Farms", tenant.Name)
	assert.Len(t, tenant.Users, 1)
	assert.True(t, tenant.CropStatuses[0].active())
	assert.False(t, tenant.CropStatuses[1].active())
}

func TestLoadSeedFiles_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("tenants: [\n"), 0o600))

	_, err := loadSeedFiles(dir)
	assert.Error(t, err)
}

func TestSeeder_IsIdempotent(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	files, err := loadSeedFiles(writeSeedDir(t))
	require.NoError(t, err)

	seeder := NewSeeder(db)
	first, err := seeder.Seed(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, Summary{Tenants: 1, Users: 1, CropStatuses: 2, ExpenseCategories: 1}, first)

	second, err := seeder.Seed(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, second)

	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "pw", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw")))

	var failed models.CropStatus
	require.NoError(t, db.Where("name = ?", "Failed").First(&failed).Error)
	assert.False(t, failed.IsActive)
	assert.Equal(t, user.TenantID, failed.TenantID)
}

func TestSeeder_RejectsUnnamedTenant(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	_, err := NewSeeder(db).Seed(context.Background(), []SeedFile{{Tenants: []TenantData{{Name: " "}}}})
	assert.Error(t, err)
}
