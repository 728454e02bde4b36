package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"artshare/internal/models"

	"github.com/google/uuid"
)

type ActivitySQLite struct {
	db *sql.DB
}

func NewActivitySQLite(db *sql.DB) *ActivitySQLite { return &ActivitySQLite{db: db} }

var _ Activity = (*ActivitySQLite)(nil)

const insertActivitySQL = `INSERT INTO activity_events (id, occurred_at, type, email, detail) VALUES (?, ?, ?, ?, ?)`

// sqliteTimeLayout is how occurred_at is stored. Filter bounds must be
// bound in the same format: SQLite compares the column as text, so a
// differently rendered time would break the inclusive [from, to] range.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Append inserts a new event. If EventID or OccurredAt are empty, they're set.
func (r *ActivitySQLite) Append(ctx context.Context, e models.ActivityEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertActivitySQL,
		e.EventID,
		e.OccurredAt.Format(sqliteTimeLayout),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Email,
		e.Detail,
	)
	if err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

// List returns events filtered by [from, to] (inclusive) and/or type, ordered ASC.
func (r *ActivitySQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimeLayout))
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := `SELECT id, occurred_at, type, email, detail FROM activity_events`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	defer rows.Close()

	out := make([]models.ActivityEvent, 0, 64)
	for rows.Next() {
		var (
			ev     models.ActivityEvent
			detail sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Type, &ev.Email, &detail); err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		if detail.Valid {
			ev.Detail = detail.String
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}
	return out, nil
}
