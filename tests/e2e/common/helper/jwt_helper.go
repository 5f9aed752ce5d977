//go:build e2e

package helper

import (
	"testing"
	"time"

	"groupcart/internal/domain/user"
	"groupcart/internal/pkg/config"
	"groupcart/internal/pkg/jwt"
	"groupcart/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints tokens directly with the signing secret. Tokens are
// issued out of band by the identity service, so there is no login endpoint
// to drive here.
type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.Duration)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// CreateUserWithToken seeds a buyer row and returns its id plus a valid token.
func (h *JWTTestHelper) CreateUserWithToken(t *testing.T, db dbtest.DBLike, email string) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, string(user.RoleBuyer))
	return userID, h.GenerateToken(t, userID, user.RoleBuyer)
}
