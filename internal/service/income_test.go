package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/mocks"
	"agrimanager-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// IncomeServiceTestSuite defines the test suite for IncomeService
type IncomeServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ctx      context.Context
	repo     *mocks.MockIncomeRepositoryInterface
	cropRepo *mocks.MockCropRepositoryInterface
	service  *service.IncomeService
	created  *models.Income
}

func (suite *IncomeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.repo = mocks.NewMockIncomeRepositoryInterface(suite.ctrl)
	suite.cropRepo = mocks.NewMockCropRepositoryInterface(suite.ctrl)
	suite.service = service.NewIncomeService(suite.repo, suite.cropRepo, service.NewValidator())
	suite.created = nil
}

func (suite *IncomeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// expectCreate captures the stored record and echoes it back through GetDetailed
func (suite *IncomeServiceTestSuite) expectCreate() {
	suite.cropRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(5)).Return(true, nil)
	suite.repo.EXPECT().
		Create(gomock.Any(), uint(1), uint(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uint, income *models.Income) error {
			income.ID = 11
			suite.created = income
			return nil
		})
	suite.repo.EXPECT().
		GetDetailed(gomock.Any(), uint(1), uint(11)).
		DoAndReturn(func(context.Context, uint, uint) (*models.IncomeDetail, error) {
			return &models.IncomeDetail{Income: *suite.created, CropName: "Wheat"}, nil
		})
}

func (suite *IncomeServiceTestSuite) TestCreate_ComputesMissingTotal() {
	suite.expectCreate()

	resp, err := suite.service.Create(suite.ctx, testCaller, &service.IncomeRequest{
		CropID:       5,
		Quantity:     dec("10"),
		PricePerUnit: dec("25.00"),
		SaleDate:     models.NewDate(2024, time.September, 10),
	})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(250).Equal(resp.TotalAmount))
	suite.Equal("Wheat", resp.CropName)
}

func (suite *IncomeServiceTestSuite) TestCreate_RoundsComputedTotal() {
	suite.expectCreate()

	resp, err := suite.service.Create(suite.ctx, testCaller, &service.IncomeRequest{
		CropID:       5,
		Quantity:     dec("3.333"),
		PricePerUnit: dec("3"),
		SaleDate:     models.NewDate(2024, time.September, 10),
	})
	suite.Require().NoError(err)
	suite.Equal("10", resp.TotalAmount.String())
}

func (suite *IncomeServiceTestSuite) TestCreate_KeepsSuppliedTotal() {
	suite.expectCreate()

	resp, err := suite.service.Create(suite.ctx, testCaller, &service.IncomeRequest{
		CropID:       5,
		Quantity:     dec("10"),
		PricePerUnit: dec("25.00"),
		TotalAmount:  dec("240.00"),
		SaleDate:     models.NewDate(2024, time.September, 10),
	})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(240).Equal(resp.TotalAmount))
}

func (suite *IncomeServiceTestSuite) TestCreate_Rejections() {
	date := models.NewDate(2024, time.September, 10)
	cases := map[string]*service.IncomeRequest{
		"total_amount is required unless quantity and price_per_unit are given": {CropID: 5, Quantity: dec("10"), SaleDate: date},
		"Quantity cannot be negative":       {CropID: 5, Quantity: dec("-1"), TotalAmount: dec("1"), SaleDate: date},
		"Price per unit cannot be negative": {CropID: 5, PricePerUnit: dec("-1"), TotalAmount: dec("1"), SaleDate: date},
		"Total amount cannot be negative":   {CropID: 5, TotalAmount: dec("-5"), SaleDate: date},
		"sale_date is required":             {CropID: 5, TotalAmount: dec("5")},
		"crop_id is required":               {TotalAmount: dec("5"), SaleDate: date},
	}

	for want, req := range cases {
		suite.Run(want, func() {
			_, err := suite.service.Create(suite.ctx, testCaller, req)
			suite.True(apperrors.IsValidation(err))
			suite.Equal(want, apperrors.ValidationMessage(err))
		})
	}
}

func (suite *IncomeServiceTestSuite) TestCreate_ForeignCrop() {
	suite.cropRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(5)).Return(false, nil)

	_, err := suite.service.Create(suite.ctx, testCaller, &service.IncomeRequest{
		CropID:      5,
		TotalAmount: dec("5"),
		SaleDate:    models.NewDate(2024, time.September, 10),
	})
	suite.Equal("crop not found", apperrors.ValidationMessage(err))
}

func (suite *IncomeServiceTestSuite) TestExport() {
	suite.repo.EXPECT().ListDetailed(gomock.Any(), uint(1)).Return([]models.IncomeDetail{{
		Income: models.Income{
			TenantModel: models.TenantModel{ID: 11},
			TotalAmount: decimal.NewFromInt(250),
			SaleDate:    models.NewDate(2024, time.September, 10),
		},
		CropName: "Wheat",
	}}, nil)

	data, err := suite.service.Export(suite.ctx, testCaller)
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Income")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Total Amount", rows[0][5])
	suite.Equal("Wheat", rows[1][2])
	suite.Equal("250", rows[1][5])
}

func TestIncomeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}
