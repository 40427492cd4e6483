package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mnjscf/team_ops_app/internal/apperrors"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"github.com/mnjscf/team_ops_app/internal/core/services"
	"github.com/mnjscf/team_ops_app/internal/dto"
	"github.com/mnjscf/team_ops_app/internal/handlers"
	"github.com/mnjscf/team_ops_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock WorkLogService ---
type MockWorkLogService struct {
	mock.Mock
}

func (m *MockWorkLogService) ListVisible(ctx context.Context, caller domain.User) ([]domain.WorkLogEntry, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkLogEntry), args.Error(1)
}

func (m *MockWorkLogService) Save(ctx context.Context, caller domain.User, req dto.SaveWorkLogRequest) (*domain.WorkLogEntry, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkLogEntry), args.Error(1)
}

func (m *MockWorkLogService) QuickComplete(ctx context.Context, caller domain.User, entryID string) (*domain.WorkLogEntry, error) {
	args := m.Called(ctx, caller, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkLogEntry), args.Error(1)
}

func (m *MockWorkLogService) Delete(ctx context.Context, caller domain.User, entryID string) error {
	args := m.Called(ctx, caller, entryID)
	return args.Error(0)
}

var _ portssvc.WorkLogSvcFacade = (*MockWorkLogService)(nil)

// --- Test Suite ---
type WorkLogHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockWorkLogSvc *MockWorkLogService
	jwtSecret      string
	admin          domain.User
	vishakha       domain.User
}

func (suite *WorkLogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockWorkLogSvc = new(MockWorkLogService)

	// The roster service is the real one: caller resolution against the
	// fixed roster is part of what these tests exercise.
	roster := services.NewRosterService(domain.TeamRoster())
	for _, u := range roster.ListUsers(context.Background()) {
		switch u.UserID {
		case "me":
			suite.admin = u
		case "vishakha":
			suite.vishakha = u
		}
	}

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // no swagger routes in tests
	}
	container := &portssvc.ServiceContainer{
		Roster:  roster,
		WorkLog: suite.mockWorkLogSvc,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// generateTestToken creates a signed JWT for the given roster user.
func (suite *WorkLogHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "tob-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *WorkLogHandlerTestSuite) serve(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *WorkLogHandlerTestSuite) TestListWorkLogs_Success() {
	entries := []domain.WorkLogEntry{
		{
			EntryID:        "w2",
			Timestamp:      time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
			Category:       domain.CategoryTelecalling,
			TeamMemberID:   "vishakha",
			TeamMemberName: "Vishakha",
			Description:    "Morning call block",
			Status:         domain.WorkLogCompleted,
			MetricValue:    40,
		},
		{
			EntryID:        "w1",
			Timestamp:      time.Date(2026, 8, 27, 16, 0, 0, 0, time.UTC),
			Category:       domain.CategoryTelecalling,
			TeamMemberID:   "vishakha",
			TeamMemberName: "Vishakha",
			Description:    "Follow-ups",
			Status:         domain.WorkLogInProgress,
			MetricValue:    12,
		},
	}
	suite.mockWorkLogSvc.On("ListVisible", mock.Anything, suite.vishakha).
		Return(entries, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/worklogs", "vishakha", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListWorkLogsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.WorkLogs, 2)
	suite.Equal("w2", resp.WorkLogs[0].EntryID)
	suite.Equal("Completed", resp.WorkLogs[0].Status)
	suite.mockWorkLogSvc.AssertExpectations(suite.T())
}

func (suite *WorkLogHandlerTestSuite) TestListWorkLogs_RequiresToken() {
	w := suite.serve(http.MethodGet, "/api/v1/worklogs", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockWorkLogSvc.AssertNotCalled(suite.T(), "ListVisible")
}

func (suite *WorkLogHandlerTestSuite) TestListWorkLogs_UnknownSubjectRejected() {
	// A valid token whose subject is no longer on the roster is refused
	// before the service is consulted.
	w := suite.serve(http.MethodGet, "/api/v1/worklogs", "departed-user", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockWorkLogSvc.AssertNotCalled(suite.T(), "ListVisible")
}

func (suite *WorkLogHandlerTestSuite) TestSaveWorkLog_Create() {
	reqBody := dto.SaveWorkLogRequest{
		Category:    "Telecalling",
		Description: "Afternoon call block",
		Status:      "In Progress",
		MetricValue: 25,
	}
	saved := &domain.WorkLogEntry{
		EntryID:        "generated-id",
		Timestamp:      time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC),
		Category:       domain.CategoryTelecalling,
		TeamMemberID:   "vishakha",
		TeamMemberName: "Vishakha",
		Description:    "Afternoon call block",
		Status:         domain.WorkLogInProgress,
		MetricValue:    25,
	}
	suite.mockWorkLogSvc.On("Save", mock.Anything, suite.vishakha, reqBody).
		Return(saved, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/worklogs", "vishakha", reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.WorkLogResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("generated-id", resp.EntryID)
	suite.Equal("Vishakha", resp.TeamMemberName)
	suite.mockWorkLogSvc.AssertExpectations(suite.T())
}

func (suite *WorkLogHandlerTestSuite) TestSaveWorkLog_RejectsUnknownCategory() {
	// The binding-level category validator fires before the service.
	reqBody := dto.SaveWorkLogRequest{
		Category:    "Quantum Outreach",
		Description: "??",
		Status:      "Completed",
	}
	w := suite.serve(http.MethodPut, "/api/v1/worklogs", "vishakha", reqBody)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockWorkLogSvc.AssertNotCalled(suite.T(), "Save")
}

func (suite *WorkLogHandlerTestSuite) TestSaveWorkLog_UnknownEntryIs404() {
	reqBody := dto.SaveWorkLogRequest{
		EntryID:     "missing",
		Category:    "Blogs",
		Description: "Edit pass",
		Status:      "Completed",
	}
	suite.mockWorkLogSvc.On("Save", mock.Anything, suite.admin, reqBody).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodPut, "/api/v1/worklogs", "me", reqBody)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *WorkLogHandlerTestSuite) TestQuickComplete_ForbiddenIsSilent() {
	// Another member's entry: the guard swallows it as a 204, never a 403.
	suite.mockWorkLogSvc.On("QuickComplete", mock.Anything, suite.vishakha, "w9").
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.serve(http.MethodPost, "/api/v1/worklogs/w9/complete", "vishakha", nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
}

func (suite *WorkLogHandlerTestSuite) TestQuickComplete_Success() {
	completed := &domain.WorkLogEntry{
		EntryID:      "w1",
		TeamMemberID: "vishakha",
		Category:     domain.CategoryTelecalling,
		Status:       domain.WorkLogCompleted,
	}
	suite.mockWorkLogSvc.On("QuickComplete", mock.Anything, suite.vishakha, "w1").
		Return(completed, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/worklogs/w1/complete", "vishakha", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.WorkLogResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Completed", resp.Status)
}

func (suite *WorkLogHandlerTestSuite) TestDeleteWorkLog_MemberIsSilentNoOp() {
	suite.mockWorkLogSvc.On("Delete", mock.Anything, suite.vishakha, "w1").
		Return(apperrors.ErrForbidden).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/worklogs/w1", "vishakha", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *WorkLogHandlerTestSuite) TestDeleteWorkLog_Admin() {
	suite.mockWorkLogSvc.On("Delete", mock.Anything, suite.admin, "w1").
		Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/worklogs/w1", "me", nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockWorkLogSvc.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestWorkLogHandler(t *testing.T) {
	suite.Run(t, new(WorkLogHandlerTestSuite))
}
