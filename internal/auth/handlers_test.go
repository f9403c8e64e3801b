package auth_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/metrics"
	"agrimanager-backend/internal/repository"
	"agrimanager-backend/internal/testutils"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// LoginHandlerTestSuite covers POST /api/auth/login end to end on SQLite
type LoginHandlerTestSuite struct {
	suite.Suite
	service   *auth.AuthService
	metrics   *metrics.Metrics
	httpSuite *testutils.HTTPTestSuite
	tenantID  uint
	userID    uint
}

func (suite *LoginHandlerTestSuite) SetupTest() {
	db := testutils.NewSQLiteDB(suite.T())
	tenant, user := testutils.NewFactorySet().SeedTenant(suite.T(), db, "Green Valley", "alice", "pw")
	suite.tenantID, suite.userID = tenant.ID, user.ID

	service, err := auth.NewAuthService(testAuthConfig())
	suite.Require().NoError(err)
	suite.service = service
	suite.metrics = metrics.New()

	handler := auth.NewAuthHandler(service, auth.NewCredentialVerifier(repository.NewUserRepository(db)), suite.metrics)
	suite.httpSuite = testutils.SetupHTTPTest(nil)
	suite.httpSuite.Router.POST("/api/auth/login", handler.Login)
}

func (suite *LoginHandlerTestSuite) TestLogin_Success() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"tenant_id": suite.tenantID,
		"username":  "alice",
		"password":  "pw",
	})

	var resp auth.LoginResponse
	env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusOK, &resp)
	suite.True(env.Status)
	suite.Equal("Login successful", env.Message)
	suite.Equal(suite.userID, resp.UserID)
	suite.Equal(suite.tenantID, resp.TenantID)
	suite.Equal("alice", resp.Username)
	suite.NotEmpty(resp.Token)

	claims, err := suite.service.ValidateJWT(resp.Token)
	suite.Require().NoError(err)
	suite.Equal(suite.tenantID, claims.TenantID)
	suite.Equal(suite.userID, claims.UserID)

	suite.assertLogins(metrics.LoginSucceeded, 1)
}

func (suite *LoginHandlerTestSuite) TestLogin_WrongPassword() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"tenant_id": suite.tenantID,
		"username":  "alice",
		"password":  "nope",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid tenant, username, or password")
	suite.assertLogins(metrics.LoginRejected, 1)
}

func (suite *LoginHandlerTestSuite) TestLogin_WrongTenant() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"tenant_id": suite.tenantID + 100,
		"username":  "alice",
		"password":  "pw",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid tenant, username, or password")
}

func (suite *LoginHandlerTestSuite) TestLogin_IncompleteCredentials() {
	bodies := map[string]interface{}{
		"missing tenant and password": map[string]interface{}{"username": "alice"},
		"zero tenant": map[string]interface{}{
			"tenant_id": 0,
			"username":  "alice",
			"password":  testutils.DefaultPassword,
		},
		"empty password": map[string]interface{}{
			"tenant_id": suite.tenantID,
			"username":  "alice",
			"password":  "",
		},
		"not an object": []string{"alice"},
	}

	for name, body := range bodies {
		suite.Run(name, func() {
			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", body)

			env := testutils.DecodeEnvelope(suite.T(), recorder, http.StatusUnauthorized, nil)
			suite.False(env.Status)
			suite.Equal("Invalid tenant, username, or password", env.Message)
		})
	}

	suite.assertLogins(metrics.LoginRejected, len(bodies))
}

// assertLogins compares the login counter series exposed by the registry
func (suite *LoginHandlerTestSuite) assertLogins(outcome string, count int) {
	expected := fmt.Sprintf(`
# HELP agrimanager_auth_login_attempts_total Number of login attempts, by outcome
# TYPE agrimanager_auth_login_attempts_total counter
agrimanager_auth_login_attempts_total{outcome="%s"} %d
`, outcome, count)
	err := testutil.GatherAndCompare(suite.metrics.Registry(), strings.NewReader(expected), "agrimanager_auth_login_attempts_total")
	suite.NoError(err)
}

func TestLoginHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LoginHandlerTestSuite))
}
