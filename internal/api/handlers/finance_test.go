package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"agrimanager-backend/internal/api/handlers"
	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/mocks"
	"agrimanager-backend/internal/service"
	"agrimanager-backend/internal/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// FinanceHandlerTestSuite covers the expense and income endpoints
type FinanceHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	expenseService *mocks.MockExpenseServiceInterface
	incomeService  *mocks.MockIncomeServiceInterface
	httpSuite      *testutils.HTTPTestSuite
}

func (suite *FinanceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.expenseService = mocks.NewMockExpenseServiceInterface(suite.ctrl)
	suite.incomeService = mocks.NewMockIncomeServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest(nil)

	expenseHandler := handlers.NewExpenseHandler(suite.expenseService)
	incomeHandler := handlers.NewIncomeHandler(suite.incomeService)

	api := suite.httpSuite.Router.Group("/api")
	api.Use(withCaller(testCaller))
	{
		api.POST("/expenses", expenseHandler.CreateExpense)
		api.GET("/expenses", expenseHandler.ListExpenses)
		api.GET("/expenses/export", expenseHandler.ExportExpenses)

		api.POST("/income", incomeHandler.CreateIncome)
		api.GET("/income/:id", incomeHandler.GetIncome)
		api.GET("/income/export", incomeHandler.ExportIncome)
	}
}

func (suite *FinanceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FinanceHandlerTestSuite) TestCreateExpense_DecodesAmountAndDate() {
	suite.expenseService.EXPECT().
		Create(gomock.Any(), testCaller, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ auth.Identity, req *service.ExpenseRequest) (*service.ExpenseResponse, error) {
			suite.True(req.Amount.Equal(decimal.RequireFromString("150.50")))
			suite.Equal(models.NewDate(2024, 3, 5), req.ExpenseDate)
			return &service.ExpenseResponse{
				ID:           9,
				CropID:       req.CropID,
				CropName:     "Wheat",
				CategoryID:   req.CategoryID,
				CategoryName: "Seeds",
				Amount:       req.Amount,
				ExpenseDate:  req.ExpenseDate,
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/expenses", map[string]interface{}{
		"crop_id":      5,
		"category_id":  4,
		"amount":       "150.50",
		"expense_date": "2024-03-05",
	})

	env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusCreated, nil)
	suite.Equal("Expense created successfully", env.Message)
	suite.Contains(string(env.Data), `"amount":"150.5"`)
	suite.Contains(string(env.Data), `"expense_date":"2024-03-05"`)
	suite.Contains(string(env.Data), `"category_name":"Seeds"`)
}

func (suite *FinanceHandlerTestSuite) TestCreateExpense_MalformedDate() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/expenses", map[string]interface{}{
		"crop_id":      5,
		"category_id":  4,
		"amount":       "10",
		"expense_date": "05/03/2024",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *FinanceHandlerTestSuite) TestCreateExpense_NonPositiveAmount() {
	suite.expenseService.EXPECT().
		Create(gomock.Any(), testCaller, gomock.Any()).
		Return(nil, apperrors.ErrAmountNotPositive)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/expenses", map[string]interface{}{
		"crop_id":      5,
		"category_id":  4,
		"amount":       "0",
		"expense_date": "2024-03-05",
	})

	env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusBadRequest, nil)
	suite.Equal("Amount must be greater than zero", env.Message)
}

func (suite *FinanceHandlerTestSuite) TestExportExpenses() {
	workbook := []byte("PK\x03\x04workbook")
	suite.expenseService.EXPECT().Export(gomock.Any(), testCaller).Return(workbook, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/expenses/export", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal(service.XLSXContentType, recorder.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="expenses.xlsx"`, recorder.Header().Get("Content-Disposition"))
	suite.Equal(workbook, recorder.Body.Bytes())
}

func (suite *FinanceHandlerTestSuite) TestExportExpenses_Failure() {
	suite.expenseService.EXPECT().Export(gomock.Any(), testCaller).Return(nil, errors.New("failed to export expenses: boom"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/expenses/export", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "failed to export expenses")
}

func (suite *FinanceHandlerTestSuite) TestCreateIncome_ForeignCrop() {
	suite.incomeService.EXPECT().
		Create(gomock.Any(), testCaller, gomock.Any()).
		Return(nil, apperrors.NewValidationError("crop_id", "crop not found"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/income", map[string]interface{}{
		"crop_id":   77,
		"sale_date": "2024-09-10",
	})

	env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusBadRequest, nil)
	suite.Equal("crop not found", env.Message)
}

func (suite *FinanceHandlerTestSuite) TestGetIncome_NotFound() {
	suite.incomeService.EXPECT().GetByID(gomock.Any(), testCaller, uint(11)).Return(nil, apperrors.ErrIncomeNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/income/11", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "income not found")
}

func (suite *FinanceHandlerTestSuite) TestExportIncome() {
	suite.incomeService.EXPECT().Export(gomock.Any(), testCaller).Return([]byte("PK"), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/income/export", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal(service.XLSXContentType, recorder.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="income.xlsx"`, recorder.Header().Get("Content-Disposition"))
}

func TestFinanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceHandlerTestSuite))
}
