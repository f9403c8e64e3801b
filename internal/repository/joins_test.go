package repository

import (
	"context"
	"testing"

	"agrimanager-backend/internal/database/models"
	"agrimanager-backend/internal/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestJoinedListings_FillNamesOfSameTenant(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(t)
	g := testutils.NewFactorySet().SeedGraph(t, db, "Tenant One", "alice")

	fields, err := NewFieldRepository(db).ListDetailed(ctx, g.Tenant.ID)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "North Farm", fields[0].FarmName)
	assert.Equal(t, g.Field.ID, fields[0].ID)

	crop, err := NewCropRepository(db).GetDetailed(ctx, g.Tenant.ID, g.Crop.ID)
	require.NoError(t, err)
	assert.Equal(t, "North Farm", crop.FarmName)
	assert.Equal(t, "Field A", crop.FieldName)
	assert.Equal(t, "Growing", crop.StatusName)
	assert.Equal(t, "2024-03-01", crop.StartDate.String())
	require.NotNil(t, crop.ExpectedEndDate)
	assert.Equal(t, "2024-08-31", crop.ExpectedEndDate.String())

	expenses, err := NewExpenseRepository(db).ListDetailed(ctx, g.Tenant.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Wheat", expenses[0].CropName)
	assert.Equal(t, "Seeds", expenses[0].CategoryName)
	assert.True(t, decimal.RequireFromString("150.50").Equal(expenses[0].Amount))

	income, err := NewIncomeRepository(db).GetDetailed(ctx, g.Tenant.ID, g.Income.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wheat", income.CropName)
	assert.True(t, decimal.NewFromInt(250).Equal(income.TotalAmount))
}

func TestJoinedListings_ForeignParentNamesStayEmpty(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(t)
	factories := testutils.NewFactorySet()
	one := factories.SeedGraph(t, db, "Tenant One", "alice")
	two := factories.SeedGraph(t, db, "Tenant Two", "bob")

	// a row of tenant two pointing at tenant one's parents
	stray := factories.Crop.Create(two.Tenant.ID, one.Farm.ID, one.Field.ID, one.Status.ID)
	stray.Name = "Stray"
	require.NoError(t, db.Create(stray).Error)

	crop, err := NewCropRepository(db).GetDetailed(ctx, two.Tenant.ID, stray.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stray", crop.Name)
	assert.Empty(t, crop.FarmName)
	assert.Empty(t, crop.FieldName)
	assert.Empty(t, crop.StatusName)

	crops, err := NewCropRepository(db).ListDetailed(ctx, two.Tenant.ID)
	require.NoError(t, err)
	require.Len(t, crops, 2)
	assert.Equal(t, two.Crop.ID, crops[0].ID)
	assert.Equal(t, "North Farm", crops[0].FarmName)
	assert.Equal(t, stray.ID, crops[1].ID)
	assert.Empty(t, crops[1].FarmName)
}

func TestJoinedListings_MissingParentKeepsChildRow(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(t)
	g := testutils.NewFactorySet().SeedGraph(t, db, "Tenant One", "alice")

	orphan := &models.Income{
		TenantModel: models.TenantModel{TenantID: g.Tenant.ID, CreatedBy: g.User.ID},
		CropID:      987654,
		TotalAmount: decimal.NewFromInt(5),
		SaleDate:    models.NewDate(2024, 10, 1),
	}
	require.NoError(t, db.Create(orphan).Error)

	rows, err := NewIncomeRepository(db).ListDetailed(ctx, g.Tenant.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, orphan.ID, rows[1].ID)
	assert.Empty(t, rows[1].CropName)
}

func TestGetDetailed_OtherTenantIsNotFound(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(t)
	factories := testutils.NewFactorySet()
	one := factories.SeedGraph(t, db, "Tenant One", "alice")
	two := factories.SeedGraph(t, db, "Tenant Two", "bob")

	_, err := NewExpenseRepository(db).GetDetailed(ctx, two.Tenant.ID, one.Expense.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = NewFieldRepository(db).GetDetailed(ctx, two.Tenant.ID, one.Field.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_GetActiveByUsername(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(t)
	factories := testutils.NewFactorySet()
	tenant, user := factories.SeedTenant(t, db, "Tenant One", "alice", "pw")
	other, _ := factories.SeedTenant(t, db, "Tenant Two", "alice", "pw")

	repo := NewUserRepository(db)

	found, err := repo.GetActiveByUsername(ctx, tenant.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// same username in another tenant is a different account
	found, err = repo.GetActiveByUsername(ctx, other.ID, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, user.ID, found.ID)

	duplicate := factories.User.WithCredentials(tenant.ID, "alice", "pw")
	assert.Error(t, repo.Create(ctx, duplicate))

	require.NoError(t, db.Model(&models.Tenant{}).Where("id = ?", tenant.ID).Update("is_active", false).Error)
	_, err = repo.GetActiveByUsername(ctx, tenant.ID, "alice")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTenantAccountRepository(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(t)
	repo := NewTenantAccountRepository(db)

	tenant := testutils.NewFactorySet().Tenant.WithName("Tenant One")
	require.NoError(t, repo.Create(ctx, tenant))

	stored, err := repo.GetByID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tenant One", stored.Name)

	_, err = repo.GetByID(ctx, tenant.ID+1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
