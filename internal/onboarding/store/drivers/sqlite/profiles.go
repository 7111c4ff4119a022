package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pulsefit/fitgate/internal/onboarding/domain"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) SaveProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (email, name, tier, access_code, goals, activities, created_at, last_login_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			name = excluded.name,
			tier = excluded.tier,
			access_code = excluded.access_code,
			goals = excluded.goals,
			activities = excluded.activities,
			created_at = excluded.created_at,
			last_login_at = excluded.last_login_at
	`,
		p.Email,
		p.Name,
		string(p.Tier),
		p.AccessCode,
		joinFields(p.Goals),
		joinFields(p.Activities),
		p.CreatedAt,
		mapOptionalTime(p.LastLoginAt),
	)
	// access_code carries its own UNIQUE index; a collision with another
	// profile's code must not silently clobber it.
	return mapUniqueViolation(err)
}

func (r *profilesRepo) GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT email, name, tier, access_code, goals, activities, created_at, last_login_at
		FROM profiles
		WHERE email = ?
	`, email)
	return scanProfile(row)
}

func (r *profilesRepo) GetProfileByAccessCode(ctx context.Context, code string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT email, name, tier, access_code, goals, activities, created_at, last_login_at
		FROM profiles
		WHERE access_code = ?
	`, code)
	return scanProfile(row)
}

func (r *profilesRepo) TouchLastLogin(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET last_login_at = ? WHERE email = ?
	`, time.Now().UTC(), email)
	return err
}

func scanProfile(row *sql.Row) (domain.Profile, error) {
	var (
		p           domain.Profile
		tier        string
		goals       string
		activities  string
		lastLoginAt sql.NullTime
	)
	err := row.Scan(
		&p.Email,
		&p.Name,
		&tier,
		&p.AccessCode,
		&goals,
		&activities,
		&p.CreatedAt,
		&lastLoginAt,
	)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	p.Tier = domain.Tier(tier)
	p.Goals = splitFields(goals)
	p.Activities = splitFields(activities)
	p.LastLoginAt = mapNullTimePtr(lastLoginAt)
	return p, nil
}
