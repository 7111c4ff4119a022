package sqlite

import (
	"context"
	"database/sql"

	"github.com/pulsefit/fitgate/internal/onboarding/domain"
)

type leadsRepo struct {
	db dbtx
}

func (r *leadsRepo) CreateLead(ctx context.Context, l domain.Lead) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leads (id, name, email, tier, access_code, source, raw_preferences, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		l.ID,
		l.Name,
		l.Email,
		string(l.Tier),
		l.AccessCode,
		l.Source,
		l.RawPreferences,
		l.CreatedAt,
	)
	return mapUniqueViolation(err)
}

func (r *leadsRepo) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, tier, access_code, source, raw_preferences, created_at
		FROM leads
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var leads []domain.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *leadsRepo) GetLeadByAccessCode(ctx context.Context, code string) (domain.Lead, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, tier, access_code, source, raw_preferences, created_at
		FROM leads
		WHERE access_code = ?
	`, code)

	var l domain.Lead
	var tier string
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Email,
		&tier,
		&l.AccessCode,
		&l.Source,
		&l.RawPreferences,
		&l.CreatedAt,
	)
	if err != nil {
		return domain.Lead{}, mapNotFound(err)
	}
	l.Tier = domain.Tier(tier)
	return l, nil
}

func scanLead(rows *sql.Rows) (domain.Lead, error) {
	var l domain.Lead
	var tier string
	err := rows.Scan(
		&l.ID,
		&l.Name,
		&l.Email,
		&tier,
		&l.AccessCode,
		&l.Source,
		&l.RawPreferences,
		&l.CreatedAt,
	)
	if err != nil {
		return domain.Lead{}, err
	}
	l.Tier = domain.Tier(tier)
	return l, nil
}
