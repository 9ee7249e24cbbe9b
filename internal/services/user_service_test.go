// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/craftloom/handloom-backend/internal/models"
)

type UserServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *UserService
}

func (s *UserServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = NewUserService(s.db)
}

func (s *UserServiceTestSuite) TestUpdateProfileMergesOnlyProvidedFields() {
	user := createTestUser(s.T(), s.db, "Meera", "meera@example.com", models.RoleBuyer)

	updated, err := s.service.UpdateProfile(user.ID, &UpdateProfileRequest{
		Bio:  "Textile collector",
		City: "Jaipur",
	})
	s.Require().NoError(err)
	s.Equal("Textile collector", updated.Bio)
	s.Equal("Jaipur", updated.City)
	// Untouched fields survive
	s.Equal("Meera", updated.Name)
	s.Equal("meera@example.com", updated.Email)
}

func (s *UserServiceTestSuite) TestUpdateProfileIsIdempotent() {
	user := createTestUser(s.T(), s.db, "Meera", "meera@example.com", models.RoleBuyer)

	req := &UpdateProfileRequest{Bio: "Textile collector"}
	first, err := s.service.UpdateProfile(user.ID, req)
	s.Require().NoError(err)

	second, err := s.service.UpdateProfile(user.ID, req)
	s.Require().NoError(err)
	s.Equal(first.Bio, second.Bio)
	s.Equal(first.Email, second.Email)
}

func (s *UserServiceTestSuite) TestUpdateProfileRejectsTakenEmail() {
	createTestUser(s.T(), s.db, "Meera", "meera@example.com", models.RoleBuyer)
	user := createTestUser(s.T(), s.db, "Rohan", "rohan@example.com", models.RoleBuyer)

	_, err := s.service.UpdateProfile(user.ID, &UpdateProfileRequest{
		Email: "meera@example.com",
	})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *UserServiceTestSuite) TestUpdateProfileKeepsOwnEmail() {
	user := createTestUser(s.T(), s.db, "Meera", "meera@example.com", models.RoleBuyer)

	updated, err := s.service.UpdateProfile(user.ID, &UpdateProfileRequest{
		Email: "MEERA@example.com",
		Name:  "Meera K",
	})
	s.Require().NoError(err)
	s.Equal("meera@example.com", updated.Email)
	s.Equal("Meera K", updated.Name)
}

func (s *UserServiceTestSuite) TestListUsersFiltersByRole() {
	createTestUser(s.T(), s.db, "Meera", "meera@example.com", models.RoleBuyer)
	createTestUser(s.T(), s.db, "Kavita", "kavita@example.com", models.RoleArtisan)
	createTestUser(s.T(), s.db, "Rohan", "rohan@example.com", models.RoleArtisan)

	role := models.RoleArtisan
	users, err := s.service.ListUsers(UserFilter{Role: &role})
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	for _, u := range users {
		s.Equal(models.RoleArtisan, u.Role)
	}
}

func (s *UserServiceTestSuite) TestListUsersSearchMatchesNameOrEmail() {
	createTestUser(s.T(), s.db, "Meera", "meera@example.com", models.RoleBuyer)
	createTestUser(s.T(), s.db, "Kavita", "weaver@example.com", models.RoleArtisan)

	users, err := s.service.ListUsers(UserFilter{Search: "weaver"})
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("Kavita", users[0].Name)

	users, err = s.service.ListUsers(UserFilter{Search: "MEERA"})
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("Meera", users[0].Name)
}

func (s *UserServiceTestSuite) TestGetUserSelfOrAdminOnly() {
	user := createTestUser(s.T(), s.db, "Meera", "meera@example.com", models.RoleBuyer)
	other := createTestUser(s.T(), s.db, "Rohan", "rohan@example.com", models.RoleBuyer)
	admin := createTestUser(s.T(), s.db, "Admin", "admin@example.com", models.RoleAdmin)

	got, err := s.service.GetUser(user.ID, user.ID, models.RoleBuyer)
	s.Require().NoError(err)
	s.Equal(user.Email, got.Email)

	_, err = s.service.GetUser(user.ID, other.ID, models.RoleBuyer)
	s.ErrorIs(err, ErrForbidden)

	got, err = s.service.GetUser(user.ID, admin.ID, models.RoleAdmin)
	s.Require().NoError(err)
	s.Equal(user.Email, got.Email)
}

func (s *UserServiceTestSuite) TestDeleteUserSelfOrAdminOnly() {
	user := createTestUser(s.T(), s.db, "Meera", "meera@example.com", models.RoleBuyer)
	other := createTestUser(s.T(), s.db, "Rohan", "rohan@example.com", models.RoleBuyer)

	err := s.service.DeleteUser(user.ID, other.ID, models.RoleBuyer)
	s.ErrorIs(err, ErrForbidden)

	err = s.service.DeleteUser(user.ID, user.ID, models.RoleBuyer)
	s.Require().NoError(err)

	_, err = s.service.GetProfile(user.ID)
	s.ErrorIs(err, ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
