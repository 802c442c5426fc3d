package activity_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/trainlytics/internal/activity"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_HandleRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockservice(ctrl)
	h := activity.NewHandler(svc)

	svc.EXPECT().Recent(gomock.Any(), activity.DefaultRecentLimit, "").
		Return(&activity.Recent{Activities: []activity.Entry{}}, nil)
	rr := httptest.NewRecorder()
	h.HandleRecent(rr, httptest.NewRequest(http.MethodGet, "/activity/recent", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count": 0, "activities": []}`, rr.Body.String())

	svc.EXPECT().Recent(gomock.Any(), activity.MaxRecentLimit, "ci").
		Return(&activity.Recent{Activities: []activity.Entry{}}, nil)
	rr = httptest.NewRecorder()
	h.HandleRecent(rr, httptest.NewRequest(http.MethodGet, "/activity/recent?limit=500&source=ci", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandler_HandleCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockservice(ctrl)
	h := activity.NewHandler(svc)

	tokens := 10
	svc.EXPECT().CostSummary(gomock.Any(), 14).Return(&activity.CostSummary{
		Period:      "14 days",
		TotalCost:   "$0.5",
		TotalTokens: 10,
		TotalEvents: 1,
		BySource:    activity.Buckets{{Key: "ci", Bucket: activity.Bucket{Events: 1, Cost: "$0.5", Tokens: &tokens}}},
		ByModel:     activity.Buckets{{Key: "unknown", Bucket: activity.Bucket{Events: 1, Cost: "$0.5", Tokens: &tokens}}},
		ByType:      activity.Buckets{{Key: "deploy", Bucket: activity.Bucket{Events: 1, Cost: "$0.5"}}},
	}, nil)

	rr := httptest.NewRecorder()
	h.HandleCosts(rr, httptest.NewRequest(http.MethodGet, "/activity/costs?days=14", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"period": "14 days",
		"totalCost": "$0.5",
		"totalTokens": 10,
		"totalEvents": 1,
		"bySource": {"ci": {"events": 1, "cost": "$0.5", "tokens": 10}},
		"byModel": {"unknown": {"events": 1, "cost": "$0.5", "tokens": 10}},
		"byType": {"deploy": {"events": 1, "cost": "$0.5"}}
	}`, rr.Body.String())
}

func TestHandler_HandleStats_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockservice(ctrl)
	h := activity.NewHandler(svc)

	svc.EXPECT().Stats(gomock.Any(), activity.DefaultStatsDays).Return(nil, errors.New("connection refused"))

	rr := httptest.NewRecorder()
	h.HandleStats(rr, httptest.NewRequest(http.MethodGet, "/activity/stats?days=abc", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "connection refused"}`, rr.Body.String())
}

func TestHandler_HandleLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockservice(ctrl)
	h := activity.NewHandler(svc)

	ts := "2024-03-15T12:00:00.000Z"
	svc.EXPECT().Log(gomock.Any(), activity.LogRequest{Type: "code", Title: "t", Source: "ci"}).
		Return(&activity.Entry{ID: "id-1", Type: "code", Title: "t", Source: "ci", Timestamp: &ts}, nil)

	rr := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"type": "code", "title": "t", "source": "ci"}`)
	h.HandleLog(rr, httptest.NewRequest(http.MethodPost, "/activity/log", body))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"id": "id-1", "type": "code", "title": "t", "description": "", "source": "ci",
		"model": null, "tokens": null, "cost": null, "timestamp": "2024-03-15T12:00:00.000Z"
	}`, rr.Body.String())
}

func TestHandler_HandleLog_BadRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockservice(ctrl)
	h := activity.NewHandler(svc)

	rr := httptest.NewRecorder()
	h.HandleLog(rr, httptest.NewRequest(http.MethodPost, "/activity/log", bytes.NewBufferString(`{"type": `)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Invalid JSON body"}`, rr.Body.String())

	svc.EXPECT().Log(gomock.Any(), activity.LogRequest{Type: "code"}).Return(nil, activity.ErrMissingFields)
	rr = httptest.NewRecorder()
	h.HandleLog(rr, httptest.NewRequest(http.MethodPost, "/activity/log", bytes.NewBufferString(`{"type": "code"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Missing required fields: type, title, source"}`, rr.Body.String())
}

func TestHandler_SetupRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockservice(ctrl)
	r := mux.NewRouter()
	activity.NewHandler(svc).SetupRoutes(r)

	svc.EXPECT().Stats(gomock.Any(), activity.DefaultStatsDays).Return(&activity.Stats{}, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activity/stats", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activity/log", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
