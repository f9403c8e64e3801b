package handlers_test

import (
	"net/http"
	"testing"

	"agrimanager-backend/internal/api/handlers"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/mocks"
	"agrimanager-backend/internal/service"
	"agrimanager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LookupHandlerTestSuite covers the crop status and expense category endpoints
type LookupHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	statusService   *mocks.MockCropStatusServiceInterface
	categoryService *mocks.MockExpenseCategoryServiceInterface
	httpSuite       *testutils.HTTPTestSuite
}

func (suite *LookupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.statusService = mocks.NewMockCropStatusServiceInterface(suite.ctrl)
	suite.categoryService = mocks.NewMockExpenseCategoryServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest(nil)

	statusHandler := handlers.NewCropStatusHandler(suite.statusService)
	categoryHandler := handlers.NewExpenseCategoryHandler(suite.categoryService)

	api := suite.httpSuite.Router.Group("/api")
	api.Use(withCaller(testCaller))
	{
		api.POST("/crop-status", statusHandler.CreateCropStatus)
		api.GET("/crop-status", statusHandler.ListCropStatuses)
		api.GET("/crop-status/dropdown", statusHandler.GetCropStatusDropdown)
		api.DELETE("/crop-status/:id", statusHandler.DeleteCropStatus)

		api.POST("/expense-categories", categoryHandler.CreateExpenseCategory)
		api.PUT("/expense-categories/:id", categoryHandler.UpdateExpenseCategory)
		api.PUT("/expense-categories/:id/toggle", categoryHandler.ToggleExpenseCategory)
	}
}

func (suite *LookupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LookupHandlerTestSuite) TestCreateCropStatus() {
	inactive := false
	suite.statusService.EXPECT().
		Create(gomock.Any(), testCaller, &service.CropStatusRequest{Name: "Failed", IsActive: &inactive}).
		Return(&service.CropStatusResponse{ID: 4, Name: "Failed", IsActive: false}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/crop-status", map[string]interface{}{
		"name":      "Failed",
		"is_active": false,
	})

	var status service.CropStatusResponse
	env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusCreated, &status)
	suite.Equal("Crop status created successfully", env.Message)
	suite.False(status.IsActive)
}

func (suite *LookupHandlerTestSuite) TestGetCropStatusDropdown() {
	suite.statusService.EXPECT().Dropdown(gomock.Any(), testCaller).Return([]service.CropStatusOption{
		{ID: 2, Name: "Growing"},
		{ID: 1, Name: "Planned"},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/crop-status/dropdown", nil)

	env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusOK, nil)
	suite.JSONEq(`[{"id":2,"name":"Growing"},{"id":1,"name":"Planned"}]`, string(env.Data))
}

func (suite *LookupHandlerTestSuite) TestDeleteCropStatus_InUse() {
	suite.statusService.EXPECT().
		Delete(gomock.Any(), testCaller, uint(2)).
		Return(apperrors.NewHasDependentsError("crop status"))

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/crop-status/2", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "crop status cannot be deleted")
}

func (suite *LookupHandlerTestSuite) TestCreateExpenseCategory_Duplicate() {
	suite.categoryService.EXPECT().
		Create(gomock.Any(), testCaller, gomock.Any()).
		Return(nil, &apperrors.AlreadyExistsError{Entity: "expense category", Context: "with this name"})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/expense-categories", map[string]interface{}{"name": "Seeds"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "expense category already exists")
}

func (suite *LookupHandlerTestSuite) TestToggleExpenseCategory() {
	suite.Run("deactivated", func() {
		suite.categoryService.EXPECT().
			Toggle(gomock.Any(), testCaller, uint(4)).
			Return(&service.ToggleResponse{ID: 4, IsActive: false}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/expense-categories/4/toggle", nil)

		var toggled service.ToggleResponse
		env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusOK, &toggled)
		suite.Equal("Expense category deactivated", env.Message)
		suite.Equal(service.ToggleResponse{ID: 4, IsActive: false}, toggled)
	})

	suite.Run("activated", func() {
		suite.categoryService.EXPECT().
			Toggle(gomock.Any(), testCaller, uint(5)).
			Return(&service.ToggleResponse{ID: 5, IsActive: true}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/expense-categories/5/toggle", nil)

		env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusOK, nil)
		suite.Equal("Expense category activated", env.Message)
	})

	suite.Run("unknown category", func() {
		suite.categoryService.EXPECT().
			Toggle(gomock.Any(), testCaller, uint(99)).
			Return(nil, apperrors.ErrExpenseCategoryNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/expense-categories/99/toggle", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "expense category not found")
	})
}

func (suite *LookupHandlerTestSuite) TestUpdateExpenseCategory_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/expense-categories/seeds", map[string]interface{}{"name": "Seeds"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid id")
}

func TestLookupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LookupHandlerTestSuite))
}
