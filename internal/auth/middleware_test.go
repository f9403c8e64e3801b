package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/database/models"
	"agrimanager-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// AuthMiddlewareTestSuite drives RequireAuth through a small router
type AuthMiddlewareTestSuite struct {
	suite.Suite
	service   *auth.AuthService
	httpSuite *testutils.HTTPTestSuite
	token     string
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	service, err := auth.NewAuthService(testAuthConfig())
	suite.Require().NoError(err)
	suite.service = service

	suite.httpSuite = testutils.SetupHTTPTest(nil)
	handler := auth.NewAuthHandler(service, nil, nil)

	protected := suite.httpSuite.Router.Group("/api")
	protected.Use(auth.NewAuthMiddleware(service).RequireAuth())
	protected.GET("/auth/me", handler.Me)
	protected.OPTIONS("/auth/me", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	suite.token, _, err = service.GenerateJWT(&models.User{ID: 7, TenantID: 1, Username: "alice"})
	suite.Require().NoError(err)
}

func (suite *AuthMiddlewareTestSuite) TestValidToken() {
	recorder := suite.httpSuite.MakeAuthorizedRequest(http.MethodGet, "/api/auth/me", suite.token, nil)

	var identity auth.Identity
	env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusOK, &identity)
	suite.True(env.Status)
	suite.Equal(auth.Identity{UserID: 7, TenantID: 1, Username: "alice"}, identity)
}

func (suite *AuthMiddlewareTestSuite) TestLowercaseScheme() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "bearer " + suite.token,
	})
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/auth/me", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Unauthorized")
}

func (suite *AuthMiddlewareTestSuite) TestMalformedHeaders() {
	for _, header := range []string{"Bearer", "Bearer ", "Token " + suite.token, suite.token, "Basic YWxpY2U6cHc="} {
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/auth/me", nil, map[string]string{
			"Authorization": header,
		})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Unauthorized")
	}
}

func (suite *AuthMiddlewareTestSuite) TestExpiredToken() {
	issued := time.Now().Add(-3 * time.Hour)
	past, err := auth.NewAuthService(testAuthConfig(), auth.WithClock(func() time.Time { return issued }))
	suite.Require().NoError(err)
	token, _, err := past.GenerateJWT(&models.User{ID: 7, TenantID: 1, Username: "alice"})
	suite.Require().NoError(err)

	recorder := suite.httpSuite.MakeAuthorizedRequest(http.MethodGet, "/api/auth/me", token, nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Unauthorized")
}

func (suite *AuthMiddlewareTestSuite) TestPreflightPassesThrough() {
	recorder := suite.httpSuite.MakeRequest(http.MethodOptions, "/api/auth/me", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *AuthMiddlewareTestSuite) TestUnauthorizedBodyIsEnvelope() {
	recorder := suite.httpSuite.MakeAuthorizedRequest(http.MethodGet, "/api/auth/me", "garbage", nil)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	suite.Equal(false, body["status"])
	suite.Contains(body, "message")
	suite.Contains(body, "data")
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
