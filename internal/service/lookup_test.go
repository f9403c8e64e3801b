package service_test

import (
	"context"
	"testing"

	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/mocks"
	"agrimanager-backend/internal/repository"
	"agrimanager-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LookupServiceTestSuite covers crop statuses and expense categories
type LookupServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	ctx             context.Context
	statusRepo      *mocks.MockCropStatusRepositoryInterface
	categoryRepo    *mocks.MockExpenseCategoryRepositoryInterface
	statusService   *service.CropStatusService
	categoryService *service.ExpenseCategoryService
}

func (suite *LookupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.statusRepo = mocks.NewMockCropStatusRepositoryInterface(suite.ctrl)
	suite.categoryRepo = mocks.NewMockExpenseCategoryRepositoryInterface(suite.ctrl)
	suite.statusService = service.NewCropStatusService(suite.statusRepo, service.NewValidator())
	suite.categoryService = service.NewExpenseCategoryService(suite.categoryRepo, service.NewValidator())
}

func (suite *LookupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func boolPtr(v bool) *bool {
	return &v
}

func (suite *LookupServiceTestSuite) TestCropStatus_CreateDefaultsToActive() {
	suite.statusRepo.EXPECT().
		Create(gomock.Any(), uint(1), uint(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uint, status *models.CropStatus) error {
			status.ID = 2
			return nil
		})

	resp, err := suite.statusService.Create(suite.ctx, testCaller, &service.CropStatusRequest{Name: "Growing"})
	suite.Require().NoError(err)
	suite.True(resp.IsActive)
}

func (suite *LookupServiceTestSuite) TestCropStatus_CreateInactive() {
	suite.statusRepo.EXPECT().Create(gomock.Any(), uint(1), uint(7), gomock.Any()).Return(nil)

	resp, err := suite.statusService.Create(suite.ctx, testCaller, &service.CropStatusRequest{Name: "Failed", IsActive: boolPtr(false)})
	suite.Require().NoError(err)
	suite.False(resp.IsActive)
}

func (suite *LookupServiceTestSuite) TestCropStatus_UpdateKeepsActivityWhenOmitted() {
	stored := &models.CropStatus{TenantModel: models.TenantModel{ID: 2, TenantID: 1}, Name: "Old", IsActive: false}
	suite.statusRepo.EXPECT().GetByID(gomock.Any(), uint(1), uint(2)).Return(stored, nil)
	suite.statusRepo.EXPECT().Update(gomock.Any(), uint(1), uint(7), stored).Return(nil)

	resp, err := suite.statusService.Update(suite.ctx, testCaller, 2, &service.CropStatusRequest{Name: "Renamed"})
	suite.Require().NoError(err)
	suite.Equal("Renamed", resp.Name)
	suite.False(resp.IsActive)
}

func (suite *LookupServiceTestSuite) TestCropStatus_Dropdown() {
	suite.statusRepo.EXPECT().ListActive(gomock.Any(), uint(1)).Return([]models.CropStatus{
		{TenantModel: models.TenantModel{ID: 2}, Name: "Growing", IsActive: true},
		{TenantModel: models.TenantModel{ID: 4}, Name: "Harvested", IsActive: true},
	}, nil)

	options, err := suite.statusService.Dropdown(suite.ctx, testCaller)
	suite.Require().NoError(err)
	suite.Equal([]service.CropStatusOption{{ID: 2, Name: "Growing"}, {ID: 4, Name: "Harvested"}}, options)
}

func (suite *LookupServiceTestSuite) TestCropStatus_DeleteInUse() {
	suite.statusRepo.EXPECT().Delete(gomock.Any(), uint(1), uint(2)).Return(repository.ErrHasDependents)

	err := suite.statusService.Delete(suite.ctx, testCaller, 2)
	suite.True(apperrors.IsConflict(err))
	suite.Contains(err.Error(), "crop status")
}

func (suite *LookupServiceTestSuite) TestExpenseCategory_CreateIsAlwaysActive() {
	suite.categoryRepo.EXPECT().
		Create(gomock.Any(), uint(1), uint(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uint, category *models.ExpenseCategory) error {
			suite.True(category.IsActive)
			return nil
		})

	resp, err := suite.categoryService.Create(suite.ctx, testCaller, &service.ExpenseCategoryRequest{Name: "Seeds", IsActive: boolPtr(false)})
	suite.Require().NoError(err)
	suite.True(resp.IsActive)
}

func (suite *LookupServiceTestSuite) TestExpenseCategory_Toggle() {
	stored := &models.ExpenseCategory{TenantModel: models.TenantModel{ID: 4, TenantID: 1}, Name: "Seeds", IsActive: true}
	suite.categoryRepo.EXPECT().GetByID(gomock.Any(), uint(1), uint(4)).Return(stored, nil).Times(2)
	suite.categoryRepo.EXPECT().Update(gomock.Any(), uint(1), uint(7), stored).Return(nil).Times(2)

	resp, err := suite.categoryService.Toggle(suite.ctx, testCaller, 4)
	suite.Require().NoError(err)
	suite.Equal(service.ToggleResponse{ID: 4, IsActive: false}, *resp)

	resp, err = suite.categoryService.Toggle(suite.ctx, testCaller, 4)
	suite.Require().NoError(err)
	suite.True(resp.IsActive)
}

func (suite *LookupServiceTestSuite) TestExpenseCategory_ToggleNotFound() {
	suite.categoryRepo.EXPECT().GetByID(gomock.Any(), uint(1), uint(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.categoryService.Toggle(suite.ctx, testCaller, 4)
	suite.ErrorIs(err, apperrors.ErrExpenseCategoryNotFound)
}

func (suite *LookupServiceTestSuite) TestExpenseCategory_UpdateAppliesActivity() {
	stored := &models.ExpenseCategory{TenantModel: models.TenantModel{ID: 4, TenantID: 1}, Name: "Seeds", IsActive: true}
	suite.categoryRepo.EXPECT().GetByID(gomock.Any(), uint(1), uint(4)).Return(stored, nil)
	suite.categoryRepo.EXPECT().Update(gomock.Any(), uint(1), uint(7), stored).Return(nil)

	resp, err := suite.categoryService.Update(suite.ctx, testCaller, 4, &service.ExpenseCategoryRequest{Name: "Seed", IsActive: boolPtr(false)})
	suite.Require().NoError(err)
	suite.Equal("Seed", resp.Name)
	suite.False(resp.IsActive)
}

func TestLookupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LookupServiceTestSuite))
}

// FieldServiceTestSuite defines the test suite for FieldService
type FieldServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ctx      context.Context
	repo     *mocks.MockFieldRepositoryInterface
	farmRepo *mocks.MockFarmRepositoryInterface
	service  *service.FieldService
}

func (suite *FieldServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.repo = mocks.NewMockFieldRepositoryInterface(suite.ctrl)
	suite.farmRepo = mocks.NewMockFarmRepositoryInterface(suite.ctrl)
	suite.service = service.NewFieldService(suite.repo, suite.farmRepo, service.NewValidator())
}

func (suite *FieldServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FieldServiceTestSuite) TestCreate_ReturnsFarmName() {
	suite.farmRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(1)).Return(true, nil)
	suite.repo.EXPECT().
		Create(gomock.Any(), uint(1), uint(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uint, field *models.Field) error {
			field.ID = 3
			return nil
		})
	suite.repo.EXPECT().GetDetailed(gomock.Any(), uint(1), uint(3)).Return(&models.FieldDetail{
		Field:    models.Field{TenantModel: models.TenantModel{ID: 3}, FarmID: 1, Name: "Field A"},
		FarmName: "North Farm",
	}, nil)

	resp, err := suite.service.Create(suite.ctx, testCaller, &service.FieldRequest{FarmID: 1, Name: "Field A"})
	suite.Require().NoError(err)
	suite.Equal("North Farm", resp.FarmName)
}

func (suite *FieldServiceTestSuite) TestCreate_ForeignFarm() {
	suite.farmRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(8)).Return(false, nil)

	_, err := suite.service.Create(suite.ctx, testCaller, &service.FieldRequest{FarmID: 8, Name: "Field A"})
	suite.True(apperrors.IsValidation(err))
	suite.Equal("farm not found", apperrors.ValidationMessage(err))
}

func (suite *FieldServiceTestSuite) TestUpdate_NotFoundBeforeValidation() {
	suite.repo.EXPECT().GetByID(gomock.Any(), uint(1), uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, testCaller, 3, &service.FieldRequest{})
	suite.ErrorIs(err, apperrors.ErrFieldNotFound)
}

func (suite *FieldServiceTestSuite) TestGetAll_Empty() {
	suite.repo.EXPECT().ListDetailed(gomock.Any(), uint(1)).Return([]models.FieldDetail{}, nil)

	fields, err := suite.service.GetAll(suite.ctx, testCaller)
	suite.Require().NoError(err)
	suite.NotNil(fields)
	suite.Empty(fields)
}

func TestFieldServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FieldServiceTestSuite))
}
