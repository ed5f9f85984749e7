package store

import (
	"context"
	"fmt"

	"annotate-me/internal/database"
	"annotate-me/internal/model"
)

func InsertAttempt(ctx context.Context, db database.DB, a *model.LoginAttempt) (*model.LoginAttempt, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO login_attempts (source, identifier_kind, accepted, identifier_error, secret_error, remote_ip)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		a.Source,
		a.IdentifierKind,
		a.Accepted,
		a.IdentifierError,
		a.SecretError,
		a.RemoteIP,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("InsertAttempt: %w", err)
	}
	return a, nil
}
