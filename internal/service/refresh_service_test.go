package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sightmap/internal/alerts"
	"sightmap/internal/domain"
	mock_service "sightmap/internal/service/mocks"
	"sightmap/internal/store"
	"sightmap/internal/ttl"
	"sightmap/pkg/e"
)

const (
	testLat = 43.03643
	testLng = -76.13459
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// markerNorthOf places a marker the given number of miles due north of
// (lat, lng). One degree of latitude spans ~111.19 km everywhere.
func markerNorthOf(lat, lng, miles float64, cat domain.MarkerCategory, age time.Duration) domain.Marker {
	return domain.Marker{
		ID:        uuid.New(),
		Lat:       lat + miles*1.60934/111.194,
		Lng:       lng,
		Category:  cat,
		CreatedAt: time.Now().UTC().Add(-age),
		Active:    true,
	}
}

func newTestRefresher(t *testing.T, gateway MarkerGateway, cache MarkerCache, logs RefreshLogRepository) (MapRefresher, *store.Store, *alerts.Scheduler) {
	t.Helper()
	markers := store.New()
	queue := alerts.NewScheduler(clockwork.NewFakeClock(), discardLogger())
	refresher := NewRefreshService(gateway, cache, markers, queue, logs, ttl.Default(), discardLogger(), 5.0, alerts.DefaultDuration)
	return refresher, markers, queue
}

func TestRefresh_NearbyMarkerRaisesAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	marker := markerNorthOf(testLat, testLng, 1.2, domain.CategoryICE, 10*time.Minute)

	gateway := mock_service.NewMockMarkerGateway(ctrl)
	gateway.EXPECT().
		FetchWithinRadius(gomock.Any(), domain.UserLocation{Lat: testLat, Lng: testLng}, 5.0, nil).
		Return([]domain.Marker{marker}, nil).
		Times(2)

	refresher, markers, _ := newTestRefresher(t, gateway, nil, nil)

	resp, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	require.NoError(t, err)
	require.NotNil(t, resp.Alert)

	assert.Contains(t, resp.Alert.Message, "1.2 miles")
	assert.Contains(t, resp.Alert.Message, "to the N")
	assert.Equal(t, domain.AlertWarning, resp.Alert.Type)
	require.NotNil(t, resp.Alert.SubjectMarkerID)
	assert.Equal(t, marker.ID, *resp.Alert.SubjectMarkerID)
	assert.Equal(t, 1, markers.Len())

	require.Len(t, resp.Markers, 1)
	assert.False(t, resp.Markers[0].Expired)

	// A second refresh with nothing changed dedupes onto the same alert.
	resp2, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	require.NoError(t, err)
	require.NotNil(t, resp2.Alert)
	assert.Equal(t, resp.Alert.ID, resp2.Alert.ID)
}

func TestRefresh_ObserverMarkerAlertsInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	marker := markerNorthOf(testLat, testLng, 0.5, domain.CategoryObserver, 10*time.Minute)

	gateway := mock_service.NewMockMarkerGateway(ctrl)
	gateway.EXPECT().
		FetchWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Marker{marker}, nil)

	refresher, _, _ := newTestRefresher(t, gateway, nil, nil)

	resp, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	require.NoError(t, err)
	require.NotNil(t, resp.Alert)
	assert.Equal(t, domain.AlertInfo, resp.Alert.Type)
}

func TestRefresh_NearestOfSeveralWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	near := markerNorthOf(testLat, testLng, 0.6, domain.CategoryICE, time.Minute)
	mid := markerNorthOf(testLat, testLng, 2.0, domain.CategoryICE, time.Minute)
	far := markerNorthOf(testLat, testLng, 4.5, domain.CategoryICE, time.Minute)

	gateway := mock_service.NewMockMarkerGateway(ctrl)
	gateway.EXPECT().
		FetchWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Marker{far, near, mid}, nil)

	refresher, _, _ := newTestRefresher(t, gateway, nil, nil)

	resp, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	require.NoError(t, err)
	require.NotNil(t, resp.Alert)
	require.NotNil(t, resp.Alert.SubjectMarkerID)
	assert.Equal(t, near.ID, *resp.Alert.SubjectMarkerID)
}

func TestRefresh_ExpiredMarkerListedButNotAlerted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Observer sightings go stale after an hour.
	stale := markerNorthOf(testLat, testLng, 0.5, domain.CategoryObserver, 2*time.Hour)

	gateway := mock_service.NewMockMarkerGateway(ctrl)
	gateway.EXPECT().
		FetchWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Marker{stale}, nil)

	refresher, _, _ := newTestRefresher(t, gateway, nil, nil)

	resp, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	require.NoError(t, err)
	assert.Nil(t, resp.Alert)
	require.Len(t, resp.Markers, 1)
	assert.True(t, resp.Markers[0].Expired)
}

func TestRefresh_InvalidCoordinatesRejectedBeforeFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT on the gateway: any call fails the test.
	gateway := mock_service.NewMockMarkerGateway(ctrl)
	refresher, _, _ := newTestRefresher(t, gateway, nil, nil)

	_, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: 95, Lng: testLng})
	assert.ErrorIs(t, err, e.ErrInvalidCoordinates)

	_, err = refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: -200})
	assert.ErrorIs(t, err, e.ErrInvalidCoordinates)
}

func TestRefresh_FetchFailureLeavesStoreUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetchErr := errors.New("connection reset")
	gateway := mock_service.NewMockMarkerGateway(ctrl)
	gateway.EXPECT().
		FetchWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fetchErr).
		Times(2)

	refresher, markers, queue := newTestRefresher(t, gateway, nil, nil)
	markers.Merge([]domain.Marker{markerNorthOf(testLat, testLng, 1, domain.CategoryICE, time.Minute)})

	_, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, 1, markers.Len())

	visible := queue.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, domain.AlertError, visible[0].Type)

	// A repeat failure dedupes instead of stacking advisories.
	_, err = refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	assert.ErrorIs(t, err, fetchErr)
	assert.Len(t, queue.Visible(), 1)
}

func TestRefresh_CacheHitSkipsGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inRadius := markerNorthOf(testLat, testLng, 1, domain.CategoryICE, time.Minute)
	outOfRadius := markerNorthOf(testLat, testLng, 40, domain.CategoryICE, time.Minute)

	// Gateway has no EXPECT: the cached set must satisfy the refresh.
	gateway := mock_service.NewMockMarkerGateway(ctrl)
	cache := mock_service.NewMockMarkerCache(ctrl)
	cache.EXPECT().
		GetActive(gomock.Any()).
		Return([]domain.Marker{inRadius, outOfRadius}, true, nil)

	refresher, _, _ := newTestRefresher(t, gateway, cache, nil)

	resp, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng, RadiusMiles: 5})
	require.NoError(t, err)
	require.Len(t, resp.Markers, 1)
	assert.Equal(t, inRadius.ID, resp.Markers[0].ID)
}

func TestRefresh_CacheMissFallsThroughToGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	marker := markerNorthOf(testLat, testLng, 1, domain.CategoryICE, time.Minute)

	cache := mock_service.NewMockMarkerCache(ctrl)
	cache.EXPECT().GetActive(gomock.Any()).Return(nil, false, nil)

	gateway := mock_service.NewMockMarkerGateway(ctrl)
	gateway.EXPECT().
		FetchWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Marker{marker}, nil)

	refresher, _, _ := newTestRefresher(t, gateway, cache, nil)

	resp, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	require.NoError(t, err)
	assert.Len(t, resp.Markers, 1)
}

func TestRefresh_CategoryFilterNarrowsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ice := markerNorthOf(testLat, testLng, 1, domain.CategoryICE, time.Minute)
	observer := markerNorthOf(testLat, testLng, 1.5, domain.CategoryObserver, time.Minute)

	gateway := mock_service.NewMockMarkerGateway(ctrl)
	cache := mock_service.NewMockMarkerCache(ctrl)
	cache.EXPECT().
		GetActive(gomock.Any()).
		Return([]domain.Marker{ice, observer}, true, nil)

	refresher, _, _ := newTestRefresher(t, gateway, cache, nil)

	cat := domain.CategoryObserver
	resp, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng, Category: &cat})
	require.NoError(t, err)
	require.NotNil(t, resp.Alert)
	require.NotNil(t, resp.Alert.SubjectMarkerID)
	assert.Equal(t, observer.ID, *resp.Alert.SubjectMarkerID)
}

func TestRefresh_RecordsRefreshLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deviceID := uuid.New()
	marker := markerNorthOf(testLat, testLng, 1, domain.CategoryICE, time.Minute)

	gateway := mock_service.NewMockMarkerGateway(ctrl)
	gateway.EXPECT().
		FetchWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Marker{marker}, nil)

	logs := mock_service.NewMockRefreshLogRepository(ctrl)
	logs.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *domain.RefreshLog) error {
			assert.Equal(t, deviceID, log.DeviceID)
			assert.Equal(t, []uuid.UUID{marker.ID}, log.MarkerIDs)
			return nil
		})

	refresher, _, _ := newTestRefresher(t, gateway, nil, logs)

	_, err := refresher.Refresh(context.Background(), domain.RefreshRequest{
		DeviceID: deviceID.String(),
		Lat:      testLat,
		Lng:      testLng,
	})
	require.NoError(t, err)
}

func TestRefresh_LogFailureDoesNotFailRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_service.NewMockMarkerGateway(ctrl)
	gateway.EXPECT().
		FetchWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	logs := mock_service.NewMockRefreshLogRepository(ctrl)
	logs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	refresher, _, _ := newTestRefresher(t, gateway, nil, logs)

	_, err := refresher.Refresh(context.Background(), domain.RefreshRequest{
		DeviceID: uuid.NewString(),
		Lat:      testLat,
		Lng:      testLng,
	})
	assert.NoError(t, err)
}

func TestRefresh_DismissedAlertCanFireAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	marker := markerNorthOf(testLat, testLng, 1, domain.CategoryICE, time.Minute)

	gateway := mock_service.NewMockMarkerGateway(ctrl)
	gateway.EXPECT().
		FetchWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Marker{marker}, nil).
		Times(2)

	markers := store.New()
	clock := clockwork.NewFakeClock()
	queue := alerts.NewScheduler(clock, discardLogger(), alerts.WithDedupeWindow(time.Second))
	refresher := NewRefreshService(gateway, nil, markers, queue, nil, ttl.Default(), discardLogger(), 5.0, alerts.DefaultDuration)

	resp, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	require.NoError(t, err)
	require.NotNil(t, resp.Alert)

	queue.Dismiss(resp.Alert.ID)
	clock.Advance(2 * time.Second)

	resp2, err := refresher.Refresh(context.Background(), domain.RefreshRequest{Lat: testLat, Lng: testLng})
	require.NoError(t, err)
	require.NotNil(t, resp2.Alert)
	assert.NotEqual(t, resp.Alert.ID, resp2.Alert.ID)
}
