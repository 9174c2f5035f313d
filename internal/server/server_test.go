package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel-concierge/internal/common/config"
	"hotel-concierge/internal/common/logger"
	roomnames "hotel-concierge/internal/handlers/catalog/room-names"
	"hotel-concierge/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEndpoint struct {
	name string
}

func (s stubEndpoint) Handle(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"endpoint": s.name})
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func stubRoutes() Routes {
	return Routes{
		RoomDetails:      stubEndpoint{"room-details"},
		RoomNames:        stubEndpoint{"room-names"},
		RoomAvailability: stubEndpoint{"room-availability"},
		GuestCreate:      stubEndpoint{"guest-create"},
		GuestDetails:     stubEndpoint{"guest-details"},
		GuestList:        stubEndpoint{"guest-list"},
		ChatMessage:      stubEndpoint{"chat-message"},
	}
}

func newTestServer(t *testing.T, routes Routes, readiness map[string]Pinger) *Server {
	t.Helper()
	return New(config.HTTPConfig{Address: ":0", BodyLimit: "1M"}, routes, nil, readiness, logger.NewTestLogger(t))
}

func do(s *Server, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t, stubRoutes(), nil)

	tests := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/roomDetails?room_id=1", "room-details"},
		{http.MethodGet, "/getRoomNames", "room-names"},
		{http.MethodGet, "/roomAvailability?date=25-02-2024", "room-availability"},
		{http.MethodPost, "/user/info", "guest-create"},
		{http.MethodGet, "/user/details?Email=a%40b.c", "guest-details"},
		{http.MethodGet, "/users", "guest-list"},
		{http.MethodPost, "/chat", "chat-message"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(s, tt.method, tt.path, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body["endpoint"])
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestServer_MethodMismatch(t *testing.T) {
	s := newTestServer(t, stubRoutes(), nil)

	rec := do(s, http.MethodGet, "/chat", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	s := newTestServer(t, stubRoutes(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set(echo.HeaderOrigin, "http://widget.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServer_HealthAndMetrics(t *testing.T) {
	s := newTestServer(t, stubRoutes(), nil)

	rec := do(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	do(s, http.MethodGet, "/users", "")
	rec = do(s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hotel_http_requests_total")
}

func TestServer_Ready(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		s := newTestServer(t, stubRoutes(), map[string]Pinger{"postgres": stubPinger{}})

		rec := do(s, http.MethodGet, "/ready", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"postgres":"ok"`)
	})

	t.Run("dependency down", func(t *testing.T) {
		s := newTestServer(t, stubRoutes(), map[string]Pinger{
			"postgres": stubPinger{},
			"redis":    stubPinger{err: errors.New("dial tcp: connection refused")},
		})

		rec := do(s, http.MethodGet, "/ready", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "connection refused")
	})
}

func TestServer_RoomNamesEndToEnd(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT room_name FROM rooms_hotel`).
		WillReturnRows(sqlmock.NewRows([]string{"room_name"}).AddRow("Deluxe").AddRow("Suite"))

	log := logger.NewTestLogger(t)
	routes := stubRoutes()
	routes.RoomNames = roomnames.NewHandler(&roomnames.Config{Timeout: time.Second}, store.NewCatalog(db, nil, 0, log), log)
	s := newTestServer(t, routes, nil)

	rec := do(s, http.MethodGet, "/getRoomNames", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"roomNames":["Deluxe","Suite"]}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServer_StartStop(t *testing.T) {
	s := New(config.HTTPConfig{Address: "127.0.0.1:0"}, stubRoutes(), nil, nil, logger.NewTestLogger(t))

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.NoError(t, <-errCh)
}
