package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctor-slot-sync/config"
	"doctor-slot-sync/internal/delivery/dto"
	"doctor-slot-sync/internal/delivery/http/handler"
	"doctor-slot-sync/internal/delivery/http/middleware"
	"doctor-slot-sync/internal/domain/entity"
	"doctor-slot-sync/internal/domain/gateway"
	"doctor-slot-sync/internal/service"
	"doctor-slot-sync/internal/usecase"
	"doctor-slot-sync/pkg/jwt"
	"doctor-slot-sync/pkg/response"
	"doctor-slot-sync/pkg/validator"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorUsecase struct {
	lastFilter *entity.DoctorFilter
}

func (f *fakeDoctorUsecase) GetAllDoctors(_ context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	f.lastFilter = filter
	return &dto.DoctorListResponse{
		Doctors: []dto.DoctorResponse{{ID: "1", Name: "John Doe"}},
		Total:   1,
	}, nil
}

func (f *fakeDoctorUsecase) GetDoctor(_ context.Context, doctorID string) (*dto.DoctorDetailResponse, error) {
	if doctorID != "1" {
		return nil, usecase.ErrDoctorNotFound
	}
	return &dto.DoctorDetailResponse{DoctorResponse: dto.DoctorResponse{ID: "1", Name: "John Doe"}}, nil
}

type fakeSyncFailureUsecase struct {
	lastLimit int
}

func (f *fakeSyncFailureUsecase) GetRecentFailures(_ context.Context, limit int) (*dto.SyncFailureListResponse, error) {
	f.lastLimit = limit
	return &dto.SyncFailureListResponse{}, nil
}

type fakeRunner struct {
	err      error
	status   *entity.SyncStatus
	triggers []string
}

func (f *fakeRunner) Run(_ context.Context, trigger string) (*entity.SyncStatus, error) {
	f.triggers = append(f.triggers, trigger)
	status := &entity.SyncStatus{RunID: "run-1", Trigger: trigger, StartedAt: time.Now()}
	status.Finish(time.Now(), f.err)
	return status, f.err
}

func (f *fakeRunner) LastStatus(context.Context) (*entity.SyncStatus, error) {
	if f.status == nil {
		return nil, service.ErrSyncStatusNotFound
	}
	return f.status, nil
}

type routerFixture struct {
	handler  http.Handler
	jwt      *jwt.JWTService
	runner   *fakeRunner
	doctors  *fakeDoctorUsecase
	failures *fakeSyncFailureUsecase
}

func newRouterFixture(runnerErr error) *routerFixture {
	log, _ := test.NewNullLogger()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "s3cret", AccessExpiry: time.Minute})
	v := validator.NewValidator()

	f := &routerFixture{
		jwt:      jwtService,
		runner:   &fakeRunner{err: runnerErr},
		doctors:  &fakeDoctorUsecase{},
		failures: &fakeSyncFailureUsecase{},
	}

	router := NewRouter(
		log,
		handler.NewDoctorHandler(f.doctors, v),
		handler.NewSyncHandler(f.runner, f.failures, v),
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("# metrics")) }),
		middleware.NewAuthMiddleware(jwtService, log),
		middleware.NewCORSMiddleware(""),
	)
	f.handler = router.Setup()
	return f
}

func (f *routerFixture) do(t *testing.T, method, path, token string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	var body response.Response
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (f *routerFixture) token(t *testing.T, scopes ...string) string {
	t.Helper()
	token, _, err := f.jwt.GenerateAccessToken("ops", scopes)
	require.NoError(t, err)
	return token
}

func TestRouter_TriggerSync(t *testing.T) {
	t.Parallel()
	fatal := fmt.Errorf("%w: %w", usecase.ErrFatalFetch, gateway.ErrVendorDecode)

	tests := []struct {
		name       string
		runnerErr  error
		scopes     []string
		noToken    bool
		wantStatus int
		wantRuns   int
	}{
		{name: "accepted", scopes: []string{jwt.ScopeSyncTrigger}, wantStatus: http.StatusAccepted, wantRuns: 1},
		{name: "missing token", noToken: true, wantStatus: http.StatusUnauthorized},
		{name: "missing scope", scopes: []string{"doctors:read"}, wantStatus: http.StatusForbidden},
		{name: "vendor roster failed", runnerErr: fatal, scopes: []string{jwt.ScopeSyncTrigger}, wantStatus: http.StatusBadGateway, wantRuns: 1},
		{name: "storage failed", runnerErr: errors.New("db down"), scopes: []string{jwt.ScopeSyncTrigger}, wantStatus: http.StatusInternalServerError, wantRuns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newRouterFixture(tt.runnerErr)

			token := ""
			if !tt.noToken {
				token = f.token(t, tt.scopes...)
			}

			rec, body := f.do(t, http.MethodPost, "/api/v1/sync", token)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusAccepted, body.Success)
			assert.Len(t, f.runner.triggers, tt.wantRuns)
			if tt.wantRuns > 0 {
				assert.Equal(t, service.TriggerHTTP, f.runner.triggers[0])
			}
		})
	}
}

func TestRouter_InvalidAuthorizationHeader(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, f.runner.triggers)
}

func TestRouter_ReadEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "health", path: "/api/v1/health", wantStatus: http.StatusOK},
		{name: "doctors", path: "/api/v1/doctors", wantStatus: http.StatusOK},
		{name: "doctors with error filter", path: "/api/v1/doctors?has_error=true", wantStatus: http.StatusOK},
		{name: "doctors with invalid filter", path: "/api/v1/doctors?has_error=maybe", wantStatus: http.StatusBadRequest},
		{name: "doctor", path: "/api/v1/doctors/1", wantStatus: http.StatusOK},
		{name: "unknown doctor", path: "/api/v1/doctors/42", wantStatus: http.StatusNotFound},
		{name: "non numeric doctor id", path: "/api/v1/doctors/abc", wantStatus: http.StatusNotFound},
		{name: "status before any run", path: "/api/v1/sync/status", wantStatus: http.StatusNotFound},
		{name: "failures", path: "/api/v1/sync/failures?limit=10", wantStatus: http.StatusOK},
		{name: "failures with zero limit", path: "/api/v1/sync/failures?limit=0", wantStatus: http.StatusBadRequest},
		{name: "failures with bad limit", path: "/api/v1/sync/failures?limit=ten", wantStatus: http.StatusBadRequest},
		{name: "metrics", path: "/api/v1/metrics", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newRouterFixture(nil)
			rec, _ := f.do(t, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_PassesQueryToUsecases(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(nil)

	f.do(t, http.MethodGet, "/api/v1/doctors?has_error=false", "")
	require.NotNil(t, f.doctors.lastFilter)
	require.NotNil(t, f.doctors.lastFilter.HasError)
	assert.False(t, *f.doctors.lastFilter.HasError)

	f.do(t, http.MethodGet, "/api/v1/sync/failures", "")
	assert.Equal(t, 50, f.failures.lastLimit)
}

func TestRouter_SyncStatus(t *testing.T) {
	t.Parallel()
	f := newRouterFixture(nil)
	started := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f.runner.status = &entity.SyncStatus{RunID: "run-9", Trigger: service.TriggerCron, Status: entity.SyncRunRunning, StartedAt: started}

	rec, body := f.do(t, http.MethodGet, "/api/v1/sync/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "run-9", data["run_id"])
	assert.Equal(t, entity.SyncRunRunning, data["status"])
}
