package postgresql

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/auth"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/database"
)

// JWTRepository persists refresh tokens. Only SHA-256 hashes are stored, so
// a leaked table cannot be replayed as live sessions.
type JWTRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error
	IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error
}

type jwtRepositoryImpl struct {
	db *database.DB
}

func NewJWTRepository(db *database.DB) JWTRepository {
	return &jwtRepositoryImpl{db: db}
}

// hashRefreshToken derives the at-rest form of a refresh token.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func (j *jwtRepositoryImpl) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	q := GetQuerier(ctx, j.db)

	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query,
		userID, hashRefreshToken(token), time.Unix(expiresAt, 0).UTC(),
		sessionReq.UserAgent, sessionReq.IPAddress,
	)
	return err
}

// IsRefreshTokenRevoked treats an expired token the same as a revoked one.
// An unknown token surfaces as pgx.ErrNoRows for the caller to map.
func (j *jwtRepositoryImpl) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, j.db)

	query := `
		SELECT revoked_at IS NOT NULL OR expires_at <= NOW()
		FROM refresh_tokens
		WHERE token_hash = $1
	`

	var dead bool
	if err := q.QueryRow(ctx, query, hashRefreshToken(token)).Scan(&dead); err != nil {
		return false, err
	}
	return dead, nil
}

func (j *jwtRepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, j.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`

	_, err := q.Exec(ctx, query, hashRefreshToken(token))
	return err
}
