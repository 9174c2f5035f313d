package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guestRowColumns = []string{
	"id", "name_of_your", "mobile_number", "dob", "email", "married_status", "spouses_name", "spouses_dob",
	"anniversary_date", "child1", "child2", "child3", "child4", "child1_dob", "child2_dob", "child3_dob",
	"child4_dob", "address", "city",
}

func guestRow(id int64, name, email, city string) []driver.Value {
	row := make([]driver.Value, len(guestRowColumns))
	row[0] = id
	row[1] = name
	row[4] = email
	row[18] = city
	return row
}

func TestGuests_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	args := make([]driver.Value, 18)
	args[0] = "Asha"
	args[3] = "asha@example.com"
	args[17] = "Alwar"

	mock.ExpectQuery(`INSERT INTO user_data \(name_of_your, mobile_number`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(41)))

	g := NewGuests(db, logger.NewTestLogger(t))
	id, err := g.Insert(context.Background(), &models.GuestProfile{
		NameOfYour: "Asha",
		Email:      "asha@example.com",
		City:       "Alwar",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuests_Insert_StoreError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO user_data`).WillReturnError(errors.New("disk full"))

	g := NewGuests(db, logger.NewTestLogger(t))
	_, err = g.Insert(context.Background(), &models.GuestProfile{Email: "x@y.z"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestGuests_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM user_data WHERE email = \$1 ORDER BY id`).
		WithArgs("asha@example.com").
		WillReturnRows(sqlmock.NewRows(guestRowColumns).
			AddRow(guestRow(1, "Asha", "asha@example.com", "Alwar")...).
			AddRow(guestRow(2, "Asha K", "asha@example.com", "")...))

	g := NewGuests(db, logger.NewTestLogger(t))
	profiles, err := g.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, int64(1), profiles[0].ID)
	assert.Equal(t, "Alwar", profiles[0].City)
	assert.Equal(t, "Asha K", profiles[1].NameOfYour)
	assert.Equal(t, "", profiles[1].City)
	assert.Equal(t, "", profiles[1].Child3)
}

func TestGuests_FindByEmail_None(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM user_data WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(guestRowColumns))

	g := NewGuests(db, logger.NewTestLogger(t))
	profiles, err := g.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestGuests_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM user_data ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(guestRowColumns).
			AddRow(guestRow(1, "Asha", "a@example.com", "Alwar")...).
			AddRow(guestRow(2, "Ravi", "r@example.com", "Jaipur")...))

	g := NewGuests(db, logger.NewTestLogger(t))
	profiles, err := g.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Ravi", profiles[1].NameOfYour)
	assert.Equal(t, "Jaipur", profiles[1].City)
}

func TestGuests_List_StoreError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM user_data`).WillReturnError(errors.New("conn closed"))

	g := NewGuests(db, logger.NewTestLogger(t))
	_, err = g.List(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
