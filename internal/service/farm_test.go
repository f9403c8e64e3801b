package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/mocks"
	"agrimanager-backend/internal/repository"
	"agrimanager-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var testCaller = auth.Identity{UserID: 7, TenantID: 1, Username: "alice"}

// FarmServiceTestSuite defines the test suite for FarmService
type FarmServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ctx     context.Context
	repo    *mocks.MockFarmRepositoryInterface
	service *service.FarmService
}

func (suite *FarmServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.repo = mocks.NewMockFarmRepositoryInterface(suite.ctrl)
	suite.service = service.NewFarmService(suite.repo, service.NewValidator())
}

func (suite *FarmServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FarmServiceTestSuite) TestCreate_UsesCallerTenant() {
	suite.repo.EXPECT().
		Create(gomock.Any(), uint(1), uint(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenantID, userID uint, farm *models.Farm) error {
			farm.ID = 3
			farm.TenantID = tenantID
			farm.CreatedBy = userID
			return nil
		})

	resp, err := suite.service.Create(suite.ctx, testCaller, &service.FarmRequest{Name: "  North Farm ", Location: "Valley Road"})
	suite.Require().NoError(err)
	suite.Equal(uint(3), resp.ID)
	suite.Equal("North Farm", resp.Name)
	suite.Equal(uint(7), resp.CreatedBy)
}

func (suite *FarmServiceTestSuite) TestCreate_ValidationWritesNothing() {
	cases := map[string]*service.FarmRequest{
		"name is required":                {Name: "   "},
		"name must be at most 50":         {Name: strings.Repeat("x", 51)},
		"location must be at most 50":     {Name: "Farm", Location: strings.Repeat("x", 51)},
		"total_fields must be at least 0": {Name: "Farm", TotalFields: intPtr(-1)},
	}

	for want, req := range cases {
		suite.Run(want, func() {
			_, err := suite.service.Create(suite.ctx, testCaller, req)
			suite.Require().Error(err)
			suite.True(apperrors.IsValidation(err))
			suite.Equal(want, strings.TrimSuffix(apperrors.ValidationMessage(err), " characters"))
		})
	}
}

func (suite *FarmServiceTestSuite) TestGetByID_NotFound() {
	suite.repo.EXPECT().GetByID(gomock.Any(), uint(1), uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(suite.ctx, testCaller, 99)
	suite.ErrorIs(err, apperrors.ErrFarmNotFound)
}

func (suite *FarmServiceTestSuite) TestGetAll() {
	suite.repo.EXPECT().List(gomock.Any(), uint(1)).Return([]models.Farm{
		{TenantModel: models.TenantModel{ID: 1}, Name: "North Farm"},
		{TenantModel: models.TenantModel{ID: 2}, Name: "South Farm"},
	}, nil)

	farms, err := suite.service.GetAll(suite.ctx, testCaller)
	suite.Require().NoError(err)
	suite.Require().Len(farms, 2)
	suite.Equal("South Farm", farms[1].Name)
}

func (suite *FarmServiceTestSuite) TestUpdate_NotFound() {
	suite.repo.EXPECT().GetByID(gomock.Any(), uint(1), uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, testCaller, 5, &service.FarmRequest{Name: "Renamed"})
	suite.ErrorIs(err, apperrors.ErrFarmNotFound)
}

func (suite *FarmServiceTestSuite) TestUpdate_Success() {
	stored := &models.Farm{TenantModel: models.TenantModel{ID: 5, TenantID: 1}, Name: "Old", Notes: "keep?"}
	suite.repo.EXPECT().GetByID(gomock.Any(), uint(1), uint(5)).Return(stored, nil)
	suite.repo.EXPECT().Update(gomock.Any(), uint(1), uint(7), stored).Return(nil)

	resp, err := suite.service.Update(suite.ctx, testCaller, 5, &service.FarmRequest{Name: "Renamed"})
	suite.Require().NoError(err)
	suite.Equal("Renamed", resp.Name)
	suite.Equal("", resp.Notes)
}

func (suite *FarmServiceTestSuite) TestDelete_ErrorMapping() {
	suite.repo.EXPECT().Delete(gomock.Any(), uint(1), uint(1)).Return(gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.service.Delete(suite.ctx, testCaller, 1), apperrors.ErrFarmNotFound)

	suite.repo.EXPECT().Delete(gomock.Any(), uint(1), uint(2)).Return(repository.ErrHasDependents)
	err := suite.service.Delete(suite.ctx, testCaller, 2)
	suite.True(apperrors.IsConflict(err))
	suite.Contains(err.Error(), "farm cannot be deleted")

	boom := errors.New("connection reset")
	suite.repo.EXPECT().Delete(gomock.Any(), uint(1), uint(3)).Return(boom)
	err = suite.service.Delete(suite.ctx, testCaller, 3)
	suite.ErrorIs(err, boom)
	suite.Contains(err.Error(), "failed to delete farm")
}

func TestFarmServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FarmServiceTestSuite))
}

func intPtr(v int) *int {
	return &v
}
