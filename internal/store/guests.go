package store

import (
	"context"
	"database/sql"

	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/models"
)

const (
	guestStore = "guests"

	guestColumns = `name_of_your, mobile_number, dob, email, married_status, spouses_name, spouses_dob,
		anniversary_date, child1, child2, child3, child4, child1_dob, child2_dob, child3_dob, child4_dob,
		address, city`
)

// Guests is the write-mostly user_data table. There is no update or delete path.
type Guests struct {
	db     *sql.DB
	logger logger.Logger
}

func NewGuests(db *sql.DB, log logger.Logger) *Guests {
	return &Guests{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"store": guestStore}),
	}
}

// Insert writes one profile in a single statement. Empty fields are stored as NULL.
func (g *Guests) Insert(ctx context.Context, p *models.GuestProfile) (int64, error) {
	args := make([]interface{}, 0, 18)
	for _, f := range guestFields(p) {
		args = append(args, nullable(*f))
	}

	var id int64
	err := g.db.QueryRowContext(ctx,
		`INSERT INTO user_data (`+guestColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`,
		args...,
	).Scan(&id)
	if err != nil {
		return 0, unavailable(guestStore, "insert", err)
	}
	return id, nil
}

func (g *Guests) FindByEmail(ctx context.Context, email string) ([]models.GuestProfile, error) {
	return g.query(ctx, "find_by_email",
		`SELECT id, `+guestColumns+` FROM user_data WHERE email = $1 ORDER BY id`, email)
}

func (g *Guests) List(ctx context.Context) ([]models.GuestProfile, error) {
	return g.query(ctx, "list", `SELECT id, `+guestColumns+` FROM user_data ORDER BY id`)
}

func (g *Guests) query(ctx context.Context, op, query string, args ...interface{}) ([]models.GuestProfile, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable(guestStore, op, err)
	}
	defer rows.Close()

	out := make([]models.GuestProfile, 0)
	for rows.Next() {
		var (
			p    models.GuestProfile
			cols [18]sql.NullString
		)
		dest := make([]interface{}, 0, 19)
		dest = append(dest, &p.ID)
		for i := range cols {
			dest = append(dest, &cols[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, unavailable(guestStore, op, err)
		}
		for i, f := range guestFields(&p) {
			*f = cols[i].String
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(guestStore, op, err)
	}
	return out, nil
}

// guestFields lists the profile fields in guestColumns order.
func guestFields(p *models.GuestProfile) []*string {
	return []*string{
		&p.NameOfYour, &p.MobileNumber, &p.DOB, &p.Email, &p.MarriedStatus, &p.SpousesName, &p.SpousesDOB,
		&p.AnniversaryDate, &p.Child1, &p.Child2, &p.Child3, &p.Child4, &p.Child1DOB, &p.Child2DOB,
		&p.Child3DOB, &p.Child4DOB, &p.Address, &p.City,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
