package auth_test

import (
	"context"
	"testing"

	"agrimanager-backend/internal/auth"
	"agrimanager-backend/internal/database/models"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/repository"
	"agrimanager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CredentialVerifierTestSuite verifies logins against users stored in SQLite
type CredentialVerifierTestSuite struct {
	suite.Suite
	db       *gorm.DB
	verifier *auth.CredentialVerifier
	tenant   *models.Tenant
	user     *models.User
	other    *models.Tenant
	ctx      context.Context
}

func (suite *CredentialVerifierTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.verifier = auth.NewCredentialVerifier(repository.NewUserRepository(suite.db))

	factories := testutils.NewFactorySet()
	suite.tenant, suite.user = factories.SeedTenant(suite.T(), suite.db, "Green Valley", "alice", "pw")
	suite.other, _ = factories.SeedTenant(suite.T(), suite.db, "Riverbend", "bob", "pw")
}

func (suite *CredentialVerifierTestSuite) TestVerify_Success() {
	user, err := suite.verifier.Verify(suite.ctx, suite.tenant.ID, "alice", "pw")
	suite.Require().NoError(err)
	suite.Equal(suite.user.ID, user.ID)
	suite.Equal(suite.tenant.ID, user.TenantID)
}

func (suite *CredentialVerifierTestSuite) TestVerify_TrimsUsername() {
	user, err := suite.verifier.Verify(suite.ctx, suite.tenant.ID, "  alice ", "pw")
	suite.Require().NoError(err)
	suite.Equal(suite.user.ID, user.ID)
}

func (suite *CredentialVerifierTestSuite) TestVerify_Rejections() {
	cases := []struct {
		name     string
		tenantID uint
		username string
		password string
	}{
		{"wrong password", suite.tenant.ID, "alice", "wrong"},
		{"unknown user", suite.tenant.ID, "mallory", "pw"},
		{"user of another tenant", suite.other.ID, "alice", "pw"},
		{"unknown tenant", 9999, "alice", "pw"},
		{"zero tenant", 0, "alice", "pw"},
		{"empty username", suite.tenant.ID, "", "pw"},
		{"empty password", suite.tenant.ID, "alice", ""},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			user, err := suite.verifier.Verify(suite.ctx, tc.tenantID, tc.username, tc.password)
			suite.Nil(user)
			suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
		})
	}
}

func (suite *CredentialVerifierTestSuite) TestVerify_InactiveUser() {
	suite.Require().NoError(suite.db.Model(suite.user).Update("is_active", false).Error)

	_, err := suite.verifier.Verify(suite.ctx, suite.tenant.ID, "alice", "pw")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *CredentialVerifierTestSuite) TestVerify_InactiveTenant() {
	suite.Require().NoError(suite.db.Model(suite.tenant).Update("is_active", false).Error)

	_, err := suite.verifier.Verify(suite.ctx, suite.tenant.ID, "alice", "pw")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *CredentialVerifierTestSuite) TestVerify_StoreFailure() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	_, err = suite.verifier.Verify(suite.ctx, suite.tenant.ID, "alice", "pw")
	suite.Require().Error(err)
	suite.False(apperrors.IsAuthentication(err))
}

func TestCredentialVerifierTestSuite(t *testing.T) {
	suite.Run(t, new(CredentialVerifierTestSuite))
}

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "pw" {
		t.Fatal("hash must not equal the plain password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}

	if _, err := auth.HashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
