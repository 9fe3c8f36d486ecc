package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"orca-service/internal/app/config"
	"orca-service/internal/app/delivery/http/controllers"
	"orca-service/internal/app/delivery/http/middlewares"
	"orca-service/internal/app/models"
	"orca-service/internal/app/services/core/roles"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const assertionHeader = "X-Pomerium-Jwt-Assertion"

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) RecentUsers(r *http.Request) []models.RecentUser {
	return []models.RecentUser{}
}
func (m *MockSessionService) RecentClinics(r *http.Request) []models.RecentClinic {
	return []models.RecentClinic{}
}
func (m *MockSessionService) RecentClinicians(r *http.Request) []models.RecentClinician {
	return []models.RecentClinician{}
}
func (m *MockSessionService) RecentPatients(r *http.Request) []models.RecentPatient {
	return []models.RecentPatient{}
}
func (m *MockSessionService) PushRecentUser(w http.ResponseWriter, r *http.Request, item models.RecentUser) error {
	return nil
}
func (m *MockSessionService) PushRecentClinic(w http.ResponseWriter, r *http.Request, item models.RecentClinic) error {
	return nil
}
func (m *MockSessionService) PushRecentClinician(w http.ResponseWriter, r *http.Request, item models.RecentClinician) error {
	return nil
}
func (m *MockSessionService) PushRecentPatient(w http.ResponseWriter, r *http.Request, item models.RecentPatient) error {
	return nil
}
func (m *MockSessionService) FlashError(w http.ResponseWriter, r *http.Request, message string) error {
	return nil
}
func (m *MockSessionService) PopFlashError(w http.ResponseWriter, r *http.Request) (string, error) {
	return "", nil
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Ping(ctx context.Context) error {
	return nil
}
func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return nil
}
func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}
func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return false, nil
}
func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	return false, nil
}
func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	return 1, nil
}

type MockReportUsecase struct {
	mock.Mock
}

func (m *MockReportUsecase) ListReports(ctx context.Context) (*responses.ReportCatalog, error) {
	args := m.Called(ctx)
	catalog, _ := args.Get(0).(*responses.ReportCatalog)
	return catalog, args.Error(1)
}
func (m *MockReportUsecase) ClinicPatientsReport(ctx context.Context, request *requests.ClinicReport) (*models.Report, error) {
	args := m.Called(ctx, request)
	report, _ := args.Get(0).(*models.Report)
	return report, args.Error(1)
}
func (m *MockReportUsecase) ClinicCliniciansReport(ctx context.Context, request *requests.ClinicReport) (*models.Report, error) {
	args := m.Called(ctx, request)
	report, _ := args.Get(0).(*models.Report)
	return report, args.Error(1)
}
func (m *MockReportUsecase) ClinicMergeReport(ctx context.Context, request *requests.ClinicMergeReport) (*responses.ClinicMergeReport, *models.Report, error) {
	args := m.Called(ctx, request)
	analysis, _ := args.Get(0).(*responses.ClinicMergeReport)
	report, _ := args.Get(1).(*models.Report)
	return analysis, report, args.Error(2)
}

func newTestRouter(t *testing.T, reportUsecase *MockReportUsecase) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxRequests:               1000,
			MaxTimeRequestsPerSeconds: 1,
			RequestTimeoutInSeconds:   5,
		},
		Auth: config.Auth{
			AssertionHeader: assertionHeader,
			EditorGroups:    []string{"orca-editors"},
		},
	}

	authorizationService, err := roles.NewCasbinRoleUsecase(internalConfig.Auth.EditorGroups, logger)
	require.NoError(t, err)

	sessionService := new(MockSessionService)
	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		logger,
		middlewares.NewMiddlewares(logger, authorizationService, nil, internalConfig),
		controllers.NewHealthController(logger, new(MockRedisRepository)),
		controllers.NewHomeController(logger, sessionService),
		controllers.NewUserController(logger, nil, sessionService, internalConfig),
		controllers.NewClinicController(logger, nil, sessionService, internalConfig),
		controllers.NewClinicianController(logger, nil, sessionService, internalConfig),
		controllers.NewPatientController(logger, nil, sessionService, internalConfig),
		controllers.NewPrescriptionController(logger, nil, internalConfig),
		controllers.NewReportController(logger, reportUsecase, internalConfig),
	)
	return router
}

func assertion(t *testing.T, groups ...string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    "staff-1",
		"email":  "jane@tidepool.org",
		"groups": groups,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("proxy-signing-key"))
	require.NoError(t, err)
	return token
}

func TestSetupRoutes(t *testing.T) {
	reportUsecase := new(MockReportUsecase)
	router := newTestRouter(t, reportUsecase)

	t.Run("Health check needs no identity", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID), "request id should be echoed")
	})

	t.Run("Home without assertion", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Viewer reads home", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(assertionHeader, assertion(t, "support"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Viewer cannot generate reports", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/reports/clinic-patients", nil)
		req.Header.Set(assertionHeader, assertion(t, "support"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Editor reaches the report handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/reports/clinic-patients", nil)
		req.Header.Set(assertionHeader, assertion(t, "orca-editors"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		// the empty form fails validation inside the handler
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "clinicId")
		reportUsecase.AssertNotCalled(t, "ClinicPatientsReport", mock.Anything, mock.Anything)
	})
}
