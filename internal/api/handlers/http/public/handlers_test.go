package public_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"sightmap/internal/api/handlers/http/public"
	mock_public "sightmap/internal/api/handlers/http/public/mocks"
	"sightmap/internal/domain"
	"sightmap/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestMapRefresh_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mock_public.NewMockMapRefresher(ctrl)
	h := public.NewHandler(newTestLogger(), refresher, nil, nil)

	reqBody := `{"device_id":"00000000-0000-0000-0000-000000000001","lat":43.03643,"lng":-76.13459}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/map/refresh", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantReq := domain.RefreshRequest{
		DeviceID: "00000000-0000-0000-0000-000000000001",
		Lat:      43.03643,
		Lng:      -76.13459,
	}
	markerID := uuid.New()
	wantResp := domain.RefreshResponse{
		Markers: []domain.MarkerView{
			{
				Marker: domain.Marker{
					ID:       markerID,
					Lat:      43.05,
					Lng:      -76.13459,
					Category: domain.CategoryICE,
					Active:   true,
				},
				DistanceKm: 1.93,
			},
		},
		Alert: &domain.Alert{
			ID:       uuid.New(),
			Message:  "ice marker detected 1.2 miles to the N",
			Type:     domain.AlertWarning,
			Duration: 5 * time.Second,
		},
	}

	refresher.EXPECT().
		Refresh(gomock.Any(), wantReq).
		Return(wantResp, nil).
		Times(1)

	h.MapRefresh(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.RefreshResponse](t, rr)
	if len(got.Markers) != 1 || got.Markers[0].ID != markerID {
		t.Fatalf("unexpected markers: %+v", got.Markers)
	}
	if got.Alert == nil || got.Alert.Message != wantResp.Alert.Message {
		t.Fatalf("unexpected alert: %+v", got.Alert)
	}
}

func TestMapRefresh_ZeroCoordinatesAccepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Gulf of Guinea: lat 0 / lng 0 are real coordinates, not missing ones.
	refresher := mock_public.NewMockMapRefresher(ctrl)
	refresher.EXPECT().
		Refresh(gomock.Any(), domain.RefreshRequest{
			DeviceID: "00000000-0000-0000-0000-000000000001",
			Lat:      0,
			Lng:      0,
		}).
		Return(domain.RefreshResponse{}, nil)

	h := public.NewHandler(newTestLogger(), refresher, nil, nil)

	reqBody := `{"device_id":"00000000-0000-0000-0000-000000000001","lat":0,"lng":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/map/refresh", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.MapRefresh(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestMarkerCreate_ZeroCoordinatesAccepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := &domain.Marker{
		ID:       uuid.New(),
		Category: domain.CategoryObserver,
		Active:   true,
	}

	creator := mock_public.NewMockMarkerCreator(ctrl)
	creator.EXPECT().
		Create(gomock.Any(), domain.CreateMarkerRequest{
			Category: domain.CategoryObserver,
			Title:    "Null Island observer",
		}).
		Return(created, nil)

	h := public.NewHandler(newTestLogger(), nil, creator, nil)

	reqBody := `{"latitude":0,"longitude":0,"category":"observer","title":"Null Island observer"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/markers", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.MarkerCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestMapRefresh_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mock_public.NewMockMapRefresher(ctrl)
	h := public.NewHandler(newTestLogger(), refresher, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/map/refresh", bytes.NewBufferString(`{not json`))
	rr := httptest.NewRecorder()

	h.MapRefresh(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestMapRefresh_UnknownField_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mock_public.NewMockMapRefresher(ctrl)
	h := public.NewHandler(newTestLogger(), refresher, nil, nil)

	reqBody := `{"device_id":"00000000-0000-0000-0000-000000000001","lat":43.0,"lng":-76.1,"bogus":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/map/refresh", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.MapRefresh(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestMapRefresh_BadCategory_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT: validation must stop the request at the boundary.
	refresher := mock_public.NewMockMapRefresher(ctrl)
	h := public.NewHandler(newTestLogger(), refresher, nil, nil)

	reqBody := `{"device_id":"00000000-0000-0000-0000-000000000001","lat":43.0,"lng":-76.1,"category":"patrol"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/map/refresh", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.MapRefresh(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestMapRefresh_ServiceError_502(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mock_public.NewMockMapRefresher(ctrl)
	refresher.EXPECT().
		Refresh(gomock.Any(), gomock.Any()).
		Return(domain.RefreshResponse{}, e.ErrNetwork)

	h := public.NewHandler(newTestLogger(), refresher, nil, nil)

	reqBody := `{"device_id":"00000000-0000-0000-0000-000000000001","lat":43.0,"lng":-76.1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/map/refresh", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.MapRefresh(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected %d got %d", http.StatusBadGateway, rr.Code)
	}
}

func TestMarkerCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := mock_public.NewMockMarkerCreator(ctrl)
	h := public.NewHandler(newTestLogger(), nil, creator, nil)

	reqBody := `{"latitude":43.05,"longitude":-76.13,"category":"ice","title":"Checkpoint on Erie Blvd"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/markers", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	created := &domain.Marker{
		ID:       uuid.New(),
		Lat:      43.05,
		Lng:      -76.13,
		Category: domain.CategoryICE,
		Active:   true,
	}

	creator.EXPECT().
		Create(gomock.Any(), domain.CreateMarkerRequest{
			Lat:      43.05,
			Lng:      -76.13,
			Category: domain.CategoryICE,
			Title:    "Checkpoint on Erie Blvd",
		}).
		Return(created, nil)

	h.MarkerCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Marker](t, rr)
	if got.ID != created.ID {
		t.Fatalf("unexpected marker id: got=%s want=%s", got.ID, created.ID)
	}
}

func TestMarkerCreate_BadCategory_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := mock_public.NewMockMarkerCreator(ctrl)
	h := public.NewHandler(newTestLogger(), nil, creator, nil)

	reqBody := `{"latitude":43.05,"longitude":-76.13,"category":"patrol","title":"nope"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/markers", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.MarkerCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestMarkerCreate_ServiceRejects_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := mock_public.NewMockMarkerCreator(ctrl)
	creator.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrInvalidCoordinates)

	h := public.NewHandler(newTestLogger(), nil, creator, nil)

	reqBody := `{"latitude":43.05,"longitude":-76.13,"category":"ice","title":"Checkpoint"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/markers", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.MarkerCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAlertList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_public.NewMockAlertViewer(ctrl)
	alerts.EXPECT().Visible().Return([]domain.Alert{
		{ID: uuid.New(), Message: "observer marker detected 264 feet to the N", Type: domain.AlertInfo},
	})

	h := public.NewHandler(newTestLogger(), nil, nil, alerts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil)
	rr := httptest.NewRecorder()

	h.AlertList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}

	got := decodeJSON[map[string]json.RawMessage](t, rr)
	if _, ok := got["alerts"]; !ok {
		t.Fatalf("response missing alerts field: %s", rr.Body.String())
	}
}

func TestAlertDismiss_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	alerts := mock_public.NewMockAlertViewer(ctrl)
	alerts.EXPECT().Dismiss(id)

	h := public.NewHandler(newTestLogger(), nil, nil, alerts)

	r := chi.NewRouter()
	r.Post("/alerts/{id}/dismiss", h.AlertDismiss)

	req := httptest.NewRequest(http.MethodPost, "/alerts/"+id.String()+"/dismiss", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d", http.StatusNoContent, rr.Code)
	}
}

func TestAlertDismiss_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_public.NewMockAlertViewer(ctrl)
	h := public.NewHandler(newTestLogger(), nil, nil, alerts)

	r := chi.NewRouter()
	r.Post("/alerts/{id}/dismiss", h.AlertDismiss)

	req := httptest.NewRequest(http.MethodPost, "/alerts/not-a-uuid/dismiss", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestMapRefresh_UnexpectedError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mock_public.NewMockMapRefresher(ctrl)
	refresher.EXPECT().
		Refresh(gomock.Any(), gomock.Any()).
		Return(domain.RefreshResponse{}, errors.New("boom"))

	h := public.NewHandler(newTestLogger(), refresher, nil, nil)

	reqBody := `{"device_id":"00000000-0000-0000-0000-000000000001","lat":43.0,"lng":-76.1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/map/refresh", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.MapRefresh(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
}
