// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/craftloom/handloom-backend/internal/models"
	"github.com/craftloom/handloom-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	cfg := testConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	s.service = NewAuthService(s.db, cfg)
}

func (s *AuthServiceTestSuite) TestSignupCreatesUserAndToken() {
	resp, err := s.service.Signup(&SignupRequest{
		Name:     "Meera",
		Email:    "Meera@Example.com",
		Password: "secret123",
		Role:     models.RoleArtisan,
	})

	s.Require().NoError(err)
	s.Require().NotNil(resp.User)
	s.Equal("meera@example.com", resp.User.Email)
	s.Equal(models.RoleArtisan, resp.User.Role)
	s.NotEmpty(resp.Token)

	claims, err := utils.ValidateJWT(resp.Token)
	s.Require().NoError(err)
	s.Equal(resp.User.ID.String(), claims.UserID)
	s.Equal(string(models.RoleArtisan), claims.Role)

	// Password is stored hashed, never in the clear
	s.NotEqual("secret123", resp.User.PasswordHash)
	s.NoError(resp.User.CheckPassword("secret123"))
}

func (s *AuthServiceTestSuite) TestSignupRejectsDuplicateEmail() {
	req := &SignupRequest{
		Name:     "Meera",
		Email:    "meera@example.com",
		Password: "secret123",
		Role:     models.RoleBuyer,
	}
	_, err := s.service.Signup(req)
	s.Require().NoError(err)

	_, err = s.service.Signup(&SignupRequest{
		Name:     "Other",
		Email:    "MEERA@example.com",
		Password: "different",
		Role:     models.RoleBuyer,
	})
	s.Require().ErrorIs(err, ErrEmailTaken)

	// No second user was written
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	s.Equal(int64(1), count)
}

func (s *AuthServiceTestSuite) TestSignupRejectsUnknownRole() {
	_, err := s.service.Signup(&SignupRequest{
		Name:     "Meera",
		Email:    "meera@example.com",
		Password: "secret123",
		Role:     models.Role("Wizard"),
	})
	s.ErrorIs(err, ErrInvalidRole)
}

func (s *AuthServiceTestSuite) TestLoginSucceedsWithCorrectPassword() {
	_, err := s.service.Signup(&SignupRequest{
		Name:     "Meera",
		Email:    "meera@example.com",
		Password: "secret123",
		Role:     models.RoleBuyer,
	})
	s.Require().NoError(err)

	resp, err := s.service.Login(&LoginRequest{
		Email:    "meera@example.com",
		Password: "secret123",
	})
	s.Require().NoError(err)
	s.Equal("meera@example.com", resp.User.Email)
	s.NotEmpty(resp.Token)
}

func (s *AuthServiceTestSuite) TestLoginRejectsWrongPassword() {
	_, err := s.service.Signup(&SignupRequest{
		Name:     "Meera",
		Email:    "meera@example.com",
		Password: "secret123",
		Role:     models.RoleBuyer,
	})
	s.Require().NoError(err)

	_, err = s.service.Login(&LoginRequest{
		Email:    "meera@example.com",
		Password: "wrong-password",
	})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLoginRejectsUnknownEmail() {
	_, err := s.service.Login(&LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	// Unknown email and wrong password are indistinguishable
	s.ErrorIs(err, ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
