package postgresql

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db  *database.DB
	now func() time.Time
}

// NewRefreshTokenRepository stores refresh tokens hashed, never in clear.
func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db, now: time.Now}
}

// hashToken hashes the input string using SHA256 and encodes the result in base64.
func hashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}

// Create implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, subjectID string, subjectType auth.SubjectType, token string, expiresAt int64, session auth.SessionTrackingRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO refresh_tokens (id, subject_id, subject_type, token_hash, expires_at, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.Exec(ctx, query,
		newID(),
		subjectID,
		subjectType,
		hashToken(token),
		time.Unix(expiresAt, 0).UTC(),
		nullable(session.UserAgent),
		nullable(session.IPAddress),
	)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Lookup implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Lookup(ctx context.Context, token string) (auth.RefreshTokenRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT subject_id, subject_type, revoked_at, expires_at
		FROM refresh_tokens
		WHERE token_hash = $1
	`

	var (
		record    auth.RefreshTokenRecord
		revokedAt *time.Time
		expiresAt time.Time
	)
	err := q.QueryRow(ctx, query, hashToken(token)).Scan(&record.SubjectID, &record.SubjectType, &revokedAt, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.RefreshTokenRecord{}, auth.ErrRefreshTokenNotFound
		}
		return auth.RefreshTokenRecord{}, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	record.Revoked = revokedAt != nil || !expiresAt.After(r.now())
	return record, nil
}

// Revoke implements auth.RefreshTokenRepository. Revoking twice is harmless.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`
	if _, err := q.Exec(ctx, query, hashToken(token)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
