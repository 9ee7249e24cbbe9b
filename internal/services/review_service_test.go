// internal/services/review_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/craftloom/handloom-backend/internal/models"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ReviewService
	artisan *models.User
	buyer   *models.User
	product *models.Product
}

func (s *ReviewServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.service = NewReviewService(s.db)
	s.artisan = createTestUser(s.T(), s.db, "Kavita", "kavita@example.com", models.RoleArtisan)
	s.buyer = createTestUser(s.T(), s.db, "Meera", "meera@example.com", models.RoleBuyer)
	s.product = createTestProduct(s.T(), s.db, s.artisan.ID, "Handwoven Saree", "Sarees", 4500)
}

func (s *ReviewServiceTestSuite) TestCreateMarksDeliveredOrderVerified() {
	order := createTestOrder(s.T(), s.db, s.buyer.ID, s.product.ID, models.OrderStatusDelivered)

	review, err := s.service.CreateReview(s.product.ID, s.buyer.ID, &CreateReviewRequest{
		OrderID: order.ID,
		Rating:  5,
		Title:   "Beautiful weave",
		Comment: "Exactly as pictured.",
		Images:  []string{"https://cdn.example.com/r1.jpg"},
	})
	s.Require().NoError(err)
	s.True(review.Verified)
	s.Equal(models.ReviewStatusPending, review.Status)
	s.Equal([]string{"https://cdn.example.com/r1.jpg"}, []string(review.Images))
}

func (s *ReviewServiceTestSuite) TestCreateLeavesPendingOrderUnverified() {
	order := createTestOrder(s.T(), s.db, s.buyer.ID, s.product.ID, models.OrderStatusPending)

	review, err := s.service.CreateReview(s.product.ID, s.buyer.ID, &CreateReviewRequest{
		OrderID: order.ID,
		Rating:  4,
		Title:   "Nice",
		Comment: "Still waiting for delivery confirmation.",
	})
	s.Require().NoError(err)
	s.False(review.Verified)
}

func (s *ReviewServiceTestSuite) TestCreateUnverifiedWhenOrderForDifferentProduct() {
	other := createTestProduct(s.T(), s.db, s.artisan.ID, "Silk Scarf", "Scarves", 2800)
	order := createTestOrder(s.T(), s.db, s.buyer.ID, other.ID, models.OrderStatusDelivered)

	review, err := s.service.CreateReview(s.product.ID, s.buyer.ID, &CreateReviewRequest{
		OrderID: order.ID,
		Rating:  3,
		Title:   "Okay",
		Comment: "Bought something else though.",
	})
	s.Require().NoError(err)
	s.False(review.Verified)
}

func (s *ReviewServiceTestSuite) TestCreateRejectsForeignOrder() {
	other := createTestUser(s.T(), s.db, "Rohan", "rohan@example.com", models.RoleBuyer)
	order := createTestOrder(s.T(), s.db, other.ID, s.product.ID, models.OrderStatusDelivered)

	_, err := s.service.CreateReview(s.product.ID, s.buyer.ID, &CreateReviewRequest{
		OrderID: order.ID,
		Rating:  1,
		Title:   "Not mine",
		Comment: "This order belongs to someone else.",
	})
	s.ErrorIs(err, ErrOrderMismatch)
}

func (s *ReviewServiceTestSuite) TestCreateRejectsSecondReviewForSameOrder() {
	order := createTestOrder(s.T(), s.db, s.buyer.ID, s.product.ID, models.OrderStatusDelivered)

	req := &CreateReviewRequest{
		OrderID: order.ID,
		Rating:  5,
		Title:   "Beautiful weave",
		Comment: "Exactly as pictured.",
	}
	_, err := s.service.CreateReview(s.product.ID, s.buyer.ID, req)
	s.Require().NoError(err)

	_, err = s.service.CreateReview(s.product.ID, s.buyer.ID, req)
	s.ErrorIs(err, ErrDuplicateReview)
}

func (s *ReviewServiceTestSuite) TestCreateRejectsMissingProduct() {
	order := createTestOrder(s.T(), s.db, s.buyer.ID, s.product.ID, models.OrderStatusDelivered)

	_, err := s.service.CreateReview(s.buyer.ID, s.buyer.ID, &CreateReviewRequest{
		OrderID: order.ID,
		Rating:  5,
		Title:   "Ghost",
		Comment: "No such product.",
	})
	s.ErrorIs(err, ErrNotFound)
}

func (s *ReviewServiceTestSuite) createApprovedReview() *models.Review {
	order := createTestOrder(s.T(), s.db, s.buyer.ID, s.product.ID, models.OrderStatusDelivered)

	review, err := s.service.CreateReview(s.product.ID, s.buyer.ID, &CreateReviewRequest{
		OrderID: order.ID,
		Rating:  5,
		Title:   "Beautiful weave",
		Comment: "Exactly as pictured.",
	})
	s.Require().NoError(err)

	review, err = s.service.Moderate(review.ID, models.ReviewStatusApproved)
	s.Require().NoError(err)

	return review
}

func (s *ReviewServiceTestSuite) TestListProductReviewsShowsApprovedOnly() {
	s.createApprovedReview()

	// A second, still-pending review on another order
	order := createTestOrder(s.T(), s.db, s.buyer.ID, s.product.ID, models.OrderStatusDelivered)
	_, err := s.service.CreateReview(s.product.ID, s.buyer.ID, &CreateReviewRequest{
		OrderID: order.ID,
		Rating:  2,
		Title:   "Changed my mind",
		Comment: "Second thoughts.",
	})
	s.Require().NoError(err)

	reviews, err := s.service.ListProductReviews(s.product.ID)
	s.Require().NoError(err)
	s.Require().Len(reviews, 1)
	s.Equal(models.ReviewStatusApproved, reviews[0].Status)
	s.Require().NotNil(reviews[0].Buyer)
	s.Equal("Meera", reviews[0].Buyer.Name)
}

func (s *ReviewServiceTestSuite) TestUpdateResetsStatusToPending() {
	review := s.createApprovedReview()

	newRating := 4
	updated, err := s.service.UpdateReview(review.ID, s.buyer.ID, &UpdateReviewRequest{
		Rating: &newRating,
	})
	s.Require().NoError(err)
	s.Equal(4, updated.Rating)
	s.Equal(models.ReviewStatusPending, updated.Status)
	// Untouched fields survive
	s.Equal("Beautiful weave", updated.Title)
}

func (s *ReviewServiceTestSuite) TestUpdateForbiddenForOtherBuyer() {
	review := s.createApprovedReview()
	other := createTestUser(s.T(), s.db, "Rohan", "rohan@example.com", models.RoleBuyer)

	newRating := 1
	_, err := s.service.UpdateReview(review.ID, other.ID, &UpdateReviewRequest{
		Rating: &newRating,
	})
	s.ErrorIs(err, ErrForbidden)
}

func (s *ReviewServiceTestSuite) TestDeleteOwnerOrAdmin() {
	review := s.createApprovedReview()
	other := createTestUser(s.T(), s.db, "Rohan", "rohan@example.com", models.RoleBuyer)

	err := s.service.DeleteReview(review.ID, other.ID, models.RoleBuyer)
	s.ErrorIs(err, ErrForbidden)

	admin := createTestUser(s.T(), s.db, "Admin", "admin@example.com", models.RoleAdmin)
	err = s.service.DeleteReview(review.ID, admin.ID, models.RoleAdmin)
	s.Require().NoError(err)
}

func (s *ReviewServiceTestSuite) TestVoteIncrementsCounters() {
	review := s.createApprovedReview()

	voted, err := s.service.Vote(review.ID, true)
	s.Require().NoError(err)
	s.Equal(1, voted.Helpful)
	s.Equal(0, voted.Unhelpful)

	voted, err = s.service.Vote(review.ID, true)
	s.Require().NoError(err)
	s.Equal(2, voted.Helpful)

	voted, err = s.service.Vote(review.ID, false)
	s.Require().NoError(err)
	s.Equal(2, voted.Helpful)
	s.Equal(1, voted.Unhelpful)
}

func (s *ReviewServiceTestSuite) TestVoteSurfacesReloadFailure() {
	review := s.createApprovedReview()

	// Fail the second query of the call: the counter bump succeeds but the
	// reload does not. The caller must see the error, not a stale record
	// presented as current.
	queries := 0
	err := s.db.Callback().Query().Before("gorm:query").Register("fail_reload", func(tx *gorm.DB) {
		queries++
		if queries > 1 {
			tx.AddError(errors.New("connection reset"))
		}
	})
	s.Require().NoError(err)
	defer s.db.Callback().Query().Remove("fail_reload")

	_, err = s.service.Vote(review.ID, true)
	s.Require().Error(err)
	s.NotErrorIs(err, ErrNotFound)
}

func (s *ReviewServiceTestSuite) TestListByStatusFiltersQueue() {
	s.createApprovedReview()

	order := createTestOrder(s.T(), s.db, s.buyer.ID, s.product.ID, models.OrderStatusDelivered)
	_, err := s.service.CreateReview(s.product.ID, s.buyer.ID, &CreateReviewRequest{
		OrderID: order.ID,
		Rating:  3,
		Title:   "Second order",
		Comment: "Another purchase.",
	})
	s.Require().NoError(err)

	pending := models.ReviewStatusPending
	reviews, err := s.service.ListByStatus(&pending)
	s.Require().NoError(err)
	s.Require().Len(reviews, 1)
	s.Equal("Second order", reviews[0].Title)

	reviews, err = s.service.ListByStatus(nil)
	s.Require().NoError(err)
	s.Len(reviews, 2)
}

func (s *ReviewServiceTestSuite) TestModerateRejectHidesReview() {
	review := s.createApprovedReview()

	moderated, err := s.service.Moderate(review.ID, models.ReviewStatusRejected)
	s.Require().NoError(err)
	s.Equal(models.ReviewStatusRejected, moderated.Status)

	reviews, err := s.service.ListProductReviews(s.product.ID)
	s.Require().NoError(err)
	s.Empty(reviews)
}

func (s *ReviewServiceTestSuite) TestRespondStampsTimestamp() {
	review := s.createApprovedReview()

	responded, err := s.service.Respond(review.ID, "Thank you for your feedback.")
	s.Require().NoError(err)
	s.Equal("Thank you for your feedback.", responded.AdminResponse)
	s.Require().NotNil(responded.AdminRespondedAt)
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}
