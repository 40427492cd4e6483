package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/core/services"
	"github.com/mnjscf/team_ops_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DirectiveRepository ---
type MockDirectiveRepository struct {
	mock.Mock
}

func (m *MockDirectiveRepository) LoadAll(ctx context.Context) ([]domain.Directive, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Directive), args.Error(1)
}

func (m *MockDirectiveRepository) Upsert(ctx context.Context, directive domain.Directive) error {
	args := m.Called(ctx, directive)
	return args.Error(0)
}

func (m *MockDirectiveRepository) Remove(ctx context.Context, directiveID string) error {
	args := m.Called(ctx, directiveID)
	return args.Error(0)
}

// --- Test Suite ---
type DirectiveServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDirectiveRepository
	service  portssvc.DirectiveSvcFacade
	admin    domain.User
	ayushi   domain.User
	dishant  domain.User
}

func (suite *DirectiveServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDirectiveRepository)
	roster := services.NewRosterService(domain.TeamRoster())
	suite.service = services.NewDirectiveService(suite.mockRepo, roster)

	for _, u := range domain.TeamRoster() {
		switch u.UserID {
		case "me":
			suite.admin = u
		case "ayushi":
			suite.ayushi = u
		case "dishant":
			suite.dishant = u
		}
	}
}

func (suite *DirectiveServiceTestSuite) TestSave_AdminIssuesPendingDirective() {
	ctx := context.Background()
	req := dto.SaveDirectiveRequest{
		TargetUserID: "ayushi",
		Title:        "Fix checkout page",
		Description:  "The payment button 404s on mobile",
		Priority:     string(domain.PriorityCritical),
	}

	suite.mockRepo.On("Upsert", ctx, mock.MatchedBy(func(d domain.Directive) bool {
		return d.AdminID == "me" &&
			d.TargetUserID == "ayushi" &&
			d.TargetUserName == "Ayushi" &&
			d.Status == domain.DirectivePending &&
			d.Priority == domain.PriorityCritical &&
			d.DirectiveID != ""
	})).Return(nil).Once()

	directive, err := suite.service.Save(ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DirectivePending, directive.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DirectiveServiceTestSuite) TestSave_MemberIsSilentlyRefused() {
	ctx := context.Background()
	req := dto.SaveDirectiveRequest{
		TargetUserID: "dishant",
		Title:        "Self-assigned work",
		Description:  "Should never persist",
		Priority:     string(domain.PriorityLow),
	}

	directive, err := suite.service.Save(ctx, suite.ayushi, req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(directive)
	suite.mockRepo.AssertNotCalled(suite.T(), "Upsert")
}

func (suite *DirectiveServiceTestSuite) TestSave_UnknownTargetRejected() {
	ctx := context.Background()
	req := dto.SaveDirectiveRequest{
		TargetUserID: "nobody",
		Title:        "Orphan directive",
		Description:  "No such member",
		Priority:     string(domain.PriorityHigh),
	}

	directive, err := suite.service.Save(ctx, suite.admin, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(directive)
}

func (suite *DirectiveServiceTestSuite) TestSave_EditPreservesTimestampAndStatus() {
	ctx := context.Background()
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	existing := domain.Directive{
		DirectiveID:    "d1",
		AdminID:        "me",
		TargetUserID:   "ayushi",
		TargetUserName: "Ayushi",
		Title:          "Fix checkout page",
		Status:         domain.DirectiveInProgress,
		Timestamp:      created,
	}
	suite.mockRepo.On("LoadAll", ctx).Return([]domain.Directive{existing}, nil).Once()
	suite.mockRepo.On("Upsert", ctx, mock.MatchedBy(func(d domain.Directive) bool {
		// Edits never reset the member's progress or the issue time.
		return d.DirectiveID == "d1" &&
			d.Status == domain.DirectiveInProgress &&
			d.Timestamp.Equal(created) &&
			d.Title == "Fix checkout and cart pages"
	})).Return(nil).Once()

	req := dto.SaveDirectiveRequest{
		DirectiveID:  "d1",
		TargetUserID: "ayushi",
		Title:        "Fix checkout and cart pages",
		Description:  "Cart has the same 404",
		Priority:     string(domain.PriorityCritical),
	}

	directive, err := suite.service.Save(ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DirectiveInProgress, directive.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DirectiveServiceTestSuite) TestUpdateStatus_AnyCallerAnyValue() {
	ctx := context.Background()
	existing := domain.Directive{DirectiveID: "d1", TargetUserID: "ayushi", Status: domain.DirectivePending}

	// The target member acknowledges.
	suite.mockRepo.On("LoadAll", ctx).Return([]domain.Directive{existing}, nil).Once()
	suite.mockRepo.On("Upsert", ctx, mock.MatchedBy(func(d domain.Directive) bool {
		return d.Status == domain.DirectiveAcknowledged
	})).Return(nil).Once()

	directive, err := suite.service.UpdateStatus(ctx, suite.ayushi, "d1", domain.DirectiveAcknowledged)
	suite.Require().NoError(err)
	suite.Equal(domain.DirectiveAcknowledged, directive.Status)

	// Regressing Done back to Pending is accepted; the progression is advisory.
	done := existing
	done.Status = domain.DirectiveDone
	suite.mockRepo.On("LoadAll", ctx).Return([]domain.Directive{done}, nil).Once()
	suite.mockRepo.On("Upsert", ctx, mock.MatchedBy(func(d domain.Directive) bool {
		return d.Status == domain.DirectivePending
	})).Return(nil).Once()

	directive, err = suite.service.UpdateStatus(ctx, suite.dishant, "d1", domain.DirectivePending)
	suite.Require().NoError(err)
	suite.Equal(domain.DirectivePending, directive.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DirectiveServiceTestSuite) TestUpdateStatus_UnknownDirective() {
	ctx := context.Background()
	suite.mockRepo.On("LoadAll", ctx).Return([]domain.Directive{}, nil).Once()

	directive, err := suite.service.UpdateStatus(ctx, suite.ayushi, "missing", domain.DirectiveDone)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(directive)
}

func (suite *DirectiveServiceTestSuite) TestRecall_AdminOnly() {
	ctx := context.Background()
	suite.mockRepo.On("Remove", ctx, "d1").Return(nil).Once()

	suite.Require().NoError(suite.service.Recall(ctx, suite.admin, "d1"))

	err := suite.service.Recall(ctx, suite.ayushi, "d1")
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "Remove", 1)
}

func TestDirectiveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectiveServiceTestSuite))
}
