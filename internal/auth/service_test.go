package auth_test

import (
	"testing"
	"time"

	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/database/models"
	"agrimanager-backend/internal/testutils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func testAuthConfig() *auth.AuthConfig {
	return auth.NewAuthConfig(testutils.NewTestConfig())
}

func TestAuthConfig_ValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*auth.AuthConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*auth.AuthConfig) {}},
		{name: "missing secret", mutate: func(c *auth.AuthConfig) { c.JWTSecret = "" }, wantErr: "JWT secret is required"},
		{name: "missing issuer", mutate: func(c *auth.AuthConfig) { c.Issuer = "" }, wantErr: "issuer is required"},
		{name: "missing audience", mutate: func(c *auth.AuthConfig) { c.Audience = "" }, wantErr: "audience is required"},
		{name: "zero ttl", mutate: func(c *auth.AuthConfig) { c.TokenTTL = 0 }, wantErr: "token TTL must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testAuthConfig()
			tt.mutate(config)

			err := config.ValidateConfig()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewAuthConfig(t *testing.T) {
	config := testAuthConfig()

	assert.Equal(t, testutils.TestJWTSecret, config.JWTSecret)
	assert.Equal(t, "agrimanager-api", config.Issuer)
	assert.Equal(t, "agrimanager-clients", config.Audience)
	assert.Equal(t, 2*time.Hour, config.TokenTTL)
}

func TestNewAuthService_RejectsInvalidConfig(t *testing.T) {
	_, err := auth.NewAuthService(nil)
	assert.Error(t, err)

	config := testAuthConfig()
	config.JWTSecret = ""
	_, err = auth.NewAuthService(config)
	assert.Error(t, err)
}

// AuthServiceTestSuite exercises token issuing and validation against a fixed clock
type AuthServiceTestSuite struct {
	suite.Suite
	now     time.Time
	service *auth.AuthService
	user    *models.User
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.now = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	service, err := auth.NewAuthService(testAuthConfig(), auth.WithClock(func() time.Time { return suite.now }))
	suite.Require().NoError(err)
	suite.service = service

	suite.user = &models.User{ID: 7, TenantID: 1, Username: "alice", PasswordHash: "secret-hash"}
}

func (suite *AuthServiceTestSuite) TestRoundTrip() {
	token, expiresAt, err := suite.service.GenerateJWT(suite.user)
	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal(suite.now.Add(2*time.Hour), expiresAt)
	suite.NotContains(token, "secret-hash")

	claims, err := suite.service.ValidateJWT(token)
	suite.Require().NoError(err)
	suite.Equal(auth.Identity{UserID: 7, TenantID: 1, Username: "alice"}, claims.Identity())
	suite.Equal("agrimanager-api", claims.Issuer)
	suite.Equal("7", claims.Subject)
}

func (suite *AuthServiceTestSuite) TestGenerateJWT_RequiresIdentity() {
	_, _, err := suite.service.GenerateJWT(nil)
	suite.Error(err)

	_, _, err = suite.service.GenerateJWT(&models.User{ID: 7})
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestValidateJWT_Expired() {
	token, _, err := suite.service.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	suite.now = suite.now.Add(2*time.Hour + time.Second)

	_, err = suite.service.ValidateJWT(token)
	suite.Require().Error(err)
	suite.ErrorIs(err, jwt.ErrTokenExpired)
}

func (suite *AuthServiceTestSuite) TestValidateJWT_StillValidBeforeExpiry() {
	token, _, err := suite.service.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	suite.now = suite.now.Add(time.Hour)

	_, err = suite.service.ValidateJWT(token)
	suite.NoError(err)
}

func (suite *AuthServiceTestSuite) TestValidateJWT_RejectsForeignTokens() {
	cases := map[string]func(*auth.AuthConfig){
		"wrong issuer":   func(c *auth.AuthConfig) { c.Issuer = "someone-else" },
		"wrong audience": func(c *auth.AuthConfig) { c.Audience = "other-clients" },
		"wrong secret":   func(c *auth.AuthConfig) { c.JWTSecret = "another-secret-key-with-enough-bytes" },
	}

	for name, mutate := range cases {
		suite.Run(name, func() {
			config := testAuthConfig()
			mutate(config)
			other, err := auth.NewAuthService(config, auth.WithClock(func() time.Time { return suite.now }))
			suite.Require().NoError(err)

			token, _, err := other.GenerateJWT(suite.user)
			suite.Require().NoError(err)

			_, err = suite.service.ValidateJWT(token)
			suite.Error(err)
		})
	}
}

func (suite *AuthServiceTestSuite) TestValidateJWT_RejectsOtherAlgorithms() {
	claims := jwt.MapClaims{
		"user_id":   7,
		"tenant_id": 1,
		"username":  "alice",
		"iss":       "agrimanager-api",
		"aud":       "agrimanager-clients",
		"exp":       suite.now.Add(time.Hour).Unix(),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testutils.TestJWTSecret))
	suite.Require().NoError(err)
	_, err = suite.service.ValidateJWT(hs512)
	suite.Error(err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	suite.Require().NoError(err)
	_, err = suite.service.ValidateJWT(none)
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestValidateJWT_RequiresIdentityClaims() {
	claims := jwt.MapClaims{
		"username": "alice",
		"iss":      "agrimanager-api",
		"aud":      "agrimanager-clients",
		"exp":      suite.now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testutils.TestJWTSecret))
	suite.Require().NoError(err)

	_, err = suite.service.ValidateJWT(token)
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestValidateJWT_Garbage() {
	_, err := suite.service.ValidateJWT("not-a-token")
	suite.Error(err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
