package testutils

import (
	"fmt"
	"testing"
	"time"

	"agrimanager-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every user built by UserFactory.Create
const DefaultPassword = "pw"

func auditFields(tenantID uint) models.TenantModel {
	return models.TenantModel{
		TenantID:  tenantID,
		CreatedAt: time.Now().UTC(),
		CreatedBy: 1,
	}
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates an active test Tenant
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		Name:      "Tenant " + uuid.NewString()[:8],
		Email:     "owner@example.com",
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// WithName sets a custom name for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active user of the tenant whose password is DefaultPassword
func (f *UserFactory) Create(tenantID uint) *models.User {
	return f.WithCredentials(tenantID, "user-"+uuid.NewString()[:8], DefaultPassword)
}

// WithCredentials creates an active user with the given username and password
func (f *UserFactory) WithCredentials(tenantID uint, username, password string) *models.User {
	// MinCost keeps tests fast; verification does not depend on the cost
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("hash test password: %v", err))
	}
	return &models.User{
		TenantID:     tenantID,
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

// FarmFactory provides methods to create test Farm data
type FarmFactory struct{}

// NewFarmFactory creates a new FarmFactory
func NewFarmFactory() *FarmFactory {
	return &FarmFactory{}
}

// Create creates a test Farm owned by the tenant
func (f *FarmFactory) Create(tenantID uint) *models.Farm {
	return &models.Farm{
		TenantModel: auditFields(tenantID),
		Name:        "North Farm",
		Location:    "Valley Road",
		Notes:       "Irrigated",
	}
}

// WithName sets a custom name for the farm
func (f *FarmFactory) WithName(tenantID uint, name string) *models.Farm {
	farm := f.Create(tenantID)
	farm.Name = name
	return farm
}

// FieldFactory provides methods to create test Field data
type FieldFactory struct{}

// NewFieldFactory creates a new FieldFactory
func NewFieldFactory() *FieldFactory {
	return &FieldFactory{}
}

// Create creates a test Field on the farm
func (f *FieldFactory) Create(tenantID, farmID uint) *models.Field {
	return &models.Field{
		TenantModel: auditFields(tenantID),
		FarmID:      farmID,
		Name:        "Field A",
		Area:        "12 ha",
	}
}

// CropStatusFactory provides methods to create test CropStatus data
type CropStatusFactory struct{}

// NewCropStatusFactory creates a new CropStatusFactory
func NewCropStatusFactory() *CropStatusFactory {
	return &CropStatusFactory{}
}

// Create creates an active test CropStatus
func (f *CropStatusFactory) Create(tenantID uint) *models.CropStatus {
	return f.WithName(tenantID, "Growing", true)
}

// WithName creates a status with the given name and activity
func (f *CropStatusFactory) WithName(tenantID uint, name string, active bool) *models.CropStatus {
	return &models.CropStatus{
		TenantModel: auditFields(tenantID),
		Name:        name,
		IsActive:    active,
	}
}

// CropFactory provides methods to create test Crop data
type CropFactory struct{}

// NewCropFactory creates a new CropFactory
func NewCropFactory() *CropFactory {
	return &CropFactory{}
}

// Create creates a test Crop planted on the field
func (f *CropFactory) Create(tenantID, farmID, fieldID, statusID uint) *models.Crop {
	end := models.NewDate(2024, time.August, 31)
	return &models.Crop{
		TenantModel:     auditFields(tenantID),
		FarmID:          farmID,
		FieldID:         fieldID,
		StatusID:        statusID,
		Name:            "Wheat",
		Season:          "Rabi",
		StartDate:       models.NewDate(2024, time.March, 1),
		ExpectedEndDate: &end,
		ExpectedYield:   "40 q",
	}
}

// ExpenseCategoryFactory provides methods to create test ExpenseCategory data
type ExpenseCategoryFactory struct{}

// NewExpenseCategoryFactory creates a new ExpenseCategoryFactory
func NewExpenseCategoryFactory() *ExpenseCategoryFactory {
	return &ExpenseCategoryFactory{}
}

// Create creates an active test ExpenseCategory
func (f *ExpenseCategoryFactory) Create(tenantID uint) *models.ExpenseCategory {
	return f.WithName(tenantID, "Seeds", true)
}

// WithName creates a category with the given name and activity
func (f *ExpenseCategoryFactory) WithName(tenantID uint, name string, active bool) *models.ExpenseCategory {
	return &models.ExpenseCategory{
		TenantModel: auditFields(tenantID),
		Name:        name,
		IsActive:    active,
	}
}

// ExpenseFactory provides methods to create test Expense data
type ExpenseFactory struct{}

// NewExpenseFactory creates a new ExpenseFactory
func NewExpenseFactory() *ExpenseFactory {
	return &ExpenseFactory{}
}

// Create creates a test Expense of 150.50 against the crop
func (f *ExpenseFactory) Create(tenantID, cropID, categoryID uint) *models.Expense {
	return &models.Expense{
		TenantModel: auditFields(tenantID),
		CropID:      cropID,
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString("150.50"),
		ExpenseDate: models.NewDate(2024, time.March, 5),
		Notes:       "Seed purchase",
	}
}

// IncomeFactory provides methods to create test Income data
type IncomeFactory struct{}

// NewIncomeFactory creates a new IncomeFactory
func NewIncomeFactory() *IncomeFactory {
	return &IncomeFactory{}
}

// Create creates a test Income of 10 x 25.00 for the crop
func (f *IncomeFactory) Create(tenantID, cropID uint) *models.Income {
	quantity := decimal.NewFromInt(10)
	price := decimal.RequireFromString("25.00")
	return &models.Income{
		TenantModel:  auditFields(tenantID),
		CropID:       cropID,
		Quantity:     &quantity,
		PricePerUnit: &price,
		TotalAmount:  quantity.Mul(price),
		SaleDate:     models.NewDate(2024, time.September, 10),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant          *TenantFactory
	User            *UserFactory
	Farm            *FarmFactory
	Field           *FieldFactory
	CropStatus      *CropStatusFactory
	Crop            *CropFactory
	ExpenseCategory *ExpenseCategoryFactory
	Expense         *ExpenseFactory
	Income          *IncomeFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:          NewTenantFactory(),
		User:            NewUserFactory(),
		Farm:            NewFarmFactory(),
		Field:           NewFieldFactory(),
		CropStatus:      NewCropStatusFactory(),
		Crop:            NewCropFactory(),
		ExpenseCategory: NewExpenseCategoryFactory(),
		Expense:         NewExpenseFactory(),
		Income:          NewIncomeFactory(),
	}
}

// TenantGraph is one fully linked set of records owned by a tenant
type TenantGraph struct {
	Tenant   *models.Tenant
	User     *models.User
	Farm     *models.Farm
	Field    *models.Field
	Status   *models.CropStatus
	Crop     *models.Crop
	Category *models.ExpenseCategory
	Expense  *models.Expense
	Income   *models.Income
}

// SeedTenant persists an active tenant with one user
func (fs *FactorySet) SeedTenant(t *testing.T, db *gorm.DB, name, username, password string) (*models.Tenant, *models.User) {
	t.Helper()

	tenant := fs.Tenant.WithName(name)
	require.NoError(t, db.Create(tenant).Error)

	user := fs.User.WithCredentials(tenant.ID, username, password)
	require.NoError(t, db.Create(user).Error)

	return tenant, user
}

// SeedGraph persists a tenant, its user and one record of every entity linked together
func (fs *FactorySet) SeedGraph(t *testing.T, db *gorm.DB, name, username string) *TenantGraph {
	t.Helper()

	g := &TenantGraph{}
	g.Tenant, g.User = fs.SeedTenant(t, db, name, username, DefaultPassword)
	tenantID := g.Tenant.ID

	g.Farm = fs.Farm.Create(tenantID)
	require.NoError(t, db.Create(g.Farm).Error)

	g.Field = fs.Field.Create(tenantID, g.Farm.ID)
	require.NoError(t, db.Create(g.Field).Error)

	g.Status = fs.CropStatus.Create(tenantID)
	require.NoError(t, db.Create(g.Status).Error)

	g.Crop = fs.Crop.Create(tenantID, g.Farm.ID, g.Field.ID, g.Status.ID)
	require.NoError(t, db.Create(g.Crop).Error)

	g.Category = fs.ExpenseCategory.Create(tenantID)
	require.NoError(t, db.Create(g.Category).Error)

	g.Expense = fs.Expense.Create(tenantID, g.Crop.ID, g.Category.ID)
	require.NoError(t, db.Create(g.Expense).Error)

	g.Income = fs.Income.Create(tenantID, g.Crop.ID)
	require.NoError(t, db.Create(g.Income).Error)

	return g
}
