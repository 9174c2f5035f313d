package guestlist

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guestColumns = []string{
	"id", "name_of_your", "mobile_number", "dob", "email", "married_status", "spouses_name", "spouses_dob",
	"anniversary_date", "child1", "child2", "child3", "child4", "child1_dob", "child2_dob", "child3_dob",
	"child4_dob", "address", "city",
}

func row(id int64, name string) []driver.Value {
	r := make([]driver.Value, len(guestColumns))
	r[0], r[1] = id, name
	return r
}

func serve(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.Handle(e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), rec)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM user_data ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(guestColumns).AddRow(row(1, "Asha")...).AddRow(row(2, "Ravi")...))

	log := logger.NewTestLogger(t)
	rec := serve(t, NewHandler(&Config{Timeout: 5 * time.Second}, store.NewGuests(db, log), log))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out Output
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Users, 2)
	assert.Equal(t, "Ravi", out.Users[1].NameOfYour)
	assert.Equal(t, int64(2), out.Users[1].ID)
}

func TestHandler_Handle_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM user_data`).WillReturnRows(sqlmock.NewRows(guestColumns))

	log := logger.NewTestLogger(t)
	rec := serve(t, NewHandler(&Config{Timeout: 5 * time.Second}, store.NewGuests(db, log), log))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Users":[]}`, rec.Body.String())
}

func TestHandler_Handle_StoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM user_data`).WillReturnError(errors.New("connection refused"))

	log := logger.NewTestLogger(t)
	rec := serve(t, NewHandler(&Config{Timeout: 5 * time.Second}, store.NewGuests(db, log), log))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Error fetching users", body["error"])
}
