package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type migration struct {
	version int
	sql     string
}

// migrations must stay ordered with sequential versions starting at 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS drafts (
	token        TEXT PRIMARY KEY,
	template_id  TEXT NOT NULL DEFAULT '',
	client       TEXT NOT NULL DEFAULT '{}',
	terms        TEXT NOT NULL DEFAULT '{}',
	selections   TEXT NOT NULL DEFAULT '[]',
	discount     TEXT NOT NULL DEFAULT '0',
	status       TEXT NOT NULL DEFAULT 'draft',
	agreement_id TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS agreements (
	id                 TEXT PRIMARY KEY,
	contract_reference TEXT NOT NULL UNIQUE,
	template_id        TEXT NOT NULL,
	client_name        TEXT NOT NULL,
	client_email       TEXT NOT NULL,
	client             TEXT NOT NULL,
	terms              TEXT NOT NULL,
	end_date           TEXT NOT NULL,
	renewal_date       TEXT,
	services_included  TEXT NOT NULL DEFAULT '',
	quote              TEXT NOT NULL,
	terms_accepted     INTEGER NOT NULL DEFAULT 0,
	client_signature   TEXT NOT NULL,
	company_signature  TEXT NOT NULL,
	status             TEXT NOT NULL,
	draft_token        TEXT NOT NULL DEFAULT '',
	email_sent_at      TEXT,
	email_sent_to      TEXT NOT NULL DEFAULT '',
	reminder_sent_at   TEXT,
	created_at         TEXT NOT NULL,
	updated_at         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_agreements_created_at ON agreements(created_at);
CREATE INDEX IF NOT EXISTS idx_agreements_status ON agreements(status);

CREATE TABLE IF NOT EXISTS agreement_lines (
	agreement_id    TEXT NOT NULL REFERENCES agreements(id) ON DELETE CASCADE,
	position        INTEGER NOT NULL,
	service_id      TEXT NOT NULL,
	category_id     TEXT NOT NULL,
	name            TEXT NOT NULL,
	frequency       TEXT NOT NULL,
	visits          INTEGER NOT NULL,
	unit_price      TEXT,
	annualized_cost TEXT,
	PRIMARY KEY (agreement_id, position)
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}

// Migrate applies any migrations newer than the stored schema version.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	current := 0

	var tableCount int
	err := db.GetContext(ctx, &tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'")
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}
	if tableCount > 0 {
		if err := db.GetContext(ctx, &current, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}
	return nil
}
