package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/testimonials"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTestimonialUsecase struct {
	mock.Mock
}

func (m *MockTestimonialUsecase) GetAllTestimonials(ctx context.Context, page, pageSize int) ([]responses.Testimonial, int, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]responses.Testimonial), args.Int(1), args.Error(2)
}

func (m *MockTestimonialUsecase) GetTestimonialByID(ctx context.Context, testimonialID string) (*responses.Testimonial, error) {
	args := m.Called(ctx, testimonialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Testimonial), args.Error(1)
}

func (m *MockTestimonialUsecase) CreateTestimonial(ctx context.Context, request *requests.CreateTestimonial) (*responses.Testimonial, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Testimonial), args.Error(1)
}

func (m *MockTestimonialUsecase) UpdateTestimonial(ctx context.Context, testimonialID string, request *requests.UpdateTestimonial) (*responses.Testimonial, error) {
	args := m.Called(ctx, testimonialID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Testimonial), args.Error(1)
}

func (m *MockTestimonialUsecase) DeleteTestimonial(ctx context.Context, testimonialID string) error {
	args := m.Called(ctx, testimonialID)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func TestTestimonialRouter(t *testing.T) {
	logger := zap.NewNop()

	jwtSecret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: jwtSecret, ExpTimeInHour: 1},
	}

	mockUsecase := new(MockTestimonialUsecase)
	mockSessionService := new(MockSessionService)

	controller := testimonials.NewTestimonialController(logger, mockUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		SessionService: mockSessionService,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachTestimonialRoutes(router, middlewareInstance, controller)

	adminToken, err := utils.GenerateSessionJWT("admin-session", jwtSecret, 1)
	assert.NoError(t, err)
	mockSessionService.On("GetSessionData", mock.Anything, "admin-session").
		Return(&models.Session{SessionID: "admin-session", UserID: "64e4b5f0a2b3c4d5e6f7a8b9", Role: constvars.RoleAdmin}, nil)

	t.Run("List is public", func(t *testing.T) {
		mockUsecase.On("GetAllTestimonials", mock.Anything, 1, 10).
			Return([]responses.Testimonial{}, 0, nil)

		req := httptest.NewRequest("GET", "/", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Create without a token is rejected", func(t *testing.T) {
		requestBody := requests.CreateTestimonial{
			Name:   "Sara",
			Text:   "Great care, friendly staff",
			Rating: 5,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "CreateTestimonial")
	})

	t.Run("Admin can create", func(t *testing.T) {
		mockUsecase.On("CreateTestimonial", mock.Anything, mock.AnythingOfType("*requests.CreateTestimonial")).
			Return(&responses.Testimonial{ID: "abc", Name: "Sara", Rating: 5}, nil)

		requestBody := requests.CreateTestimonial{
			Name:   "Sara",
			Text:   "Great care, friendly staff",
			Rating: 5,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Admin create with rating out of range fails validation", func(t *testing.T) {
		requestBody := requests.CreateTestimonial{
			Name:   "Sara",
			Text:   "Great care, friendly staff",
			Rating: 9,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Non-admin cannot delete", func(t *testing.T) {
		userToken, err := utils.GenerateSessionJWT("user-session", jwtSecret, 1)
		assert.NoError(t, err)
		mockSessionService.On("GetSessionData", mock.Anything, "user-session").
			Return(&models.Session{SessionID: "user-session", UserID: "74e4b5f0a2b3c4d5e6f7a8b9", Role: constvars.RoleUser}, nil)

		req := httptest.NewRequest("DELETE", "/64e4b5f0a2b3c4d5e6f7a8b9", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockUsecase.AssertNotCalled(t, "DeleteTestimonial")
	})
}
