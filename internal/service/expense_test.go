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
	"gorm.io/gorm"
)

// ExpenseServiceTestSuite defines the test suite for ExpenseService
type ExpenseServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ctx          context.Context
	repo         *mocks.MockExpenseRepositoryInterface
	cropRepo     *mocks.MockCropRepositoryInterface
	categoryRepo *mocks.MockExpenseCategoryRepositoryInterface
	service      *service.ExpenseService
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.repo = mocks.NewMockExpenseRepositoryInterface(suite.ctrl)
	suite.cropRepo = mocks.NewMockCropRepositoryInterface(suite.ctrl)
	suite.categoryRepo = mocks.NewMockExpenseCategoryRepositoryInterface(suite.ctrl)
	suite.service = service.NewExpenseService(suite.repo, suite.cropRepo, suite.categoryRepo, service.NewValidator())
}

func (suite *ExpenseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func expenseRequest(amount string) *service.ExpenseRequest {
	return &service.ExpenseRequest{
		CropID:      5,
		CategoryID:  4,
		Amount:      decimal.RequireFromString(amount),
		ExpenseDate: models.NewDate(2024, time.March, 5),
	}
}

func (suite *ExpenseServiceTestSuite) TestCreate_AmountMustBePositive() {
	for _, amount := range []string{"0", "0.00", "-1", "-0.01", "0.004", "0.0049"} {
		suite.Run(amount, func() {
			_, err := suite.service.Create(suite.ctx, testCaller, expenseRequest(amount))
			suite.ErrorIs(err, apperrors.ErrAmountNotPositive)
		})
	}
}

func (suite *ExpenseServiceTestSuite) TestCreate_SmallestAmountAccepted() {
	suite.cropRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(5)).Return(true, nil)
	suite.categoryRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(4)).Return(true, nil)
	suite.repo.EXPECT().
		Create(gomock.Any(), uint(1), uint(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uint, expense *models.Expense) error {
			suite.True(decimal.RequireFromString("0.01").Equal(expense.Amount))
			expense.ID = 9
			return nil
		})
	suite.repo.EXPECT().GetDetailed(gomock.Any(), uint(1), uint(9)).Return(&models.ExpenseDetail{
		Expense:      models.Expense{TenantModel: models.TenantModel{ID: 9}, Amount: decimal.RequireFromString("0.01")},
		CropName:     "Wheat",
		CategoryName: "Seeds",
	}, nil)

	resp, err := suite.service.Create(suite.ctx, testCaller, expenseRequest("0.01"))
	suite.Require().NoError(err)
	suite.Equal("Seeds", resp.CategoryName)
}

func (suite *ExpenseServiceTestSuite) TestCreate_AmountRoundedBeforeSaving() {
	suite.cropRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(5)).Return(true, nil)
	suite.categoryRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(4)).Return(true, nil)
	suite.repo.EXPECT().
		Create(gomock.Any(), uint(1), uint(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uint, expense *models.Expense) error {
			suite.True(decimal.RequireFromString("0.01").Equal(expense.Amount), expense.Amount.String())
			expense.ID = 9
			return nil
		})
	suite.repo.EXPECT().GetDetailed(gomock.Any(), uint(1), uint(9)).Return(&models.ExpenseDetail{
		Expense: models.Expense{TenantModel: models.TenantModel{ID: 9}, Amount: decimal.RequireFromString("0.01")},
	}, nil)

	_, err := suite.service.Create(suite.ctx, testCaller, expenseRequest("0.005"))
	suite.Require().NoError(err)
}

func (suite *ExpenseServiceTestSuite) TestCreate_DateRequired() {
	req := expenseRequest("10")
	req.ExpenseDate = models.Date{}

	_, err := suite.service.Create(suite.ctx, testCaller, req)
	suite.Equal("expense_date is required", apperrors.ValidationMessage(err))
}

func (suite *ExpenseServiceTestSuite) TestCreate_ForeignCategory() {
	suite.cropRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(5)).Return(true, nil)
	suite.categoryRepo.EXPECT().Exists(gomock.Any(), uint(1), uint(4)).Return(false, nil)

	_, err := suite.service.Create(suite.ctx, testCaller, expenseRequest("10"))
	suite.True(apperrors.IsValidation(err))
	suite.Equal("expense category not found", apperrors.ValidationMessage(err))
}

func (suite *ExpenseServiceTestSuite) TestGetByID_NotFound() {
	suite.repo.EXPECT().GetDetailed(gomock.Any(), uint(1), uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(suite.ctx, testCaller, 9)
	suite.ErrorIs(err, apperrors.ErrExpenseNotFound)
}

func (suite *ExpenseServiceTestSuite) TestExport() {
	suite.repo.EXPECT().ListDetailed(gomock.Any(), uint(1)).Return([]models.ExpenseDetail{{
		Expense: models.Expense{
			TenantModel: models.TenantModel{ID: 9},
			Amount:      decimal.RequireFromString("150.50"),
			ExpenseDate: models.NewDate(2024, time.March, 5),
			Notes:       "Seed purchase",
		},
		CropName:     "Wheat",
		CategoryName: "Seeds",
	}}, nil)

	data, err := suite.service.Export(suite.ctx, testCaller)
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal([]string{"ID", "Date", "Crop", "Category", "Amount", "Notes"}, rows[0])
	suite.Equal([]string{"9", "2024-03-05", "Wheat", "Seeds", "150.5", "Seed purchase"}, rows[1])
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
