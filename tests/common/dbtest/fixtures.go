//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"laundry-backoffice/internal/domain/credential"
	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword matches builder.DefaultPassword.
const DefaultPassword = "password123"

var hashCache sync.Map // pepper -> bcrypt hash of DefaultPassword

func defaultPasswordHash(t *testing.T, pepper string) string {
	t.Helper()
	if h, ok := hashCache.Load(pepper); ok {
		return h.(string)
	}
	hasher, err := password.NewHasher(pepper)
	require.NoError(t, err)
	h, err := hasher.Hash(DefaultPassword)
	require.NoError(t, err)
	hashCache.Store(pepper, h)
	return h
}

// CreateTestUser inserts a user whose password is DefaultPassword under pepper.
func CreateTestUser(t *testing.T, db DBLike, pepper, email string, role user.Role) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING`,
		userID, "Test "+role.String(), email, defaultPasswordHash(t, pepper), role.Code())
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestCompany(t *testing.T, db DBLike, name string, directorIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO companies (id, name) VALUES ($1, $2)", companyID, name)
	require.NoError(t, err)

	for _, d := range directorIDs {
		_, err := db.Exec(ctx, "INSERT INTO company_directors (company_id, director_id) VALUES ($1, $2)", companyID, d)
		require.NoError(t, err)
	}

	return companyID
}

func CreateTestUnit(t *testing.T, db DBLike, companyID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	unitID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO units (id, company_id, name, address) VALUES ($1, $2, $3, $4)",
		unitID, companyID, name, "Rua Teste, 1")
	require.NoError(t, err)

	return unitID
}

// CreatePasswordToken stores a link token issued at issuedAt and returns its opaque value.
func CreatePasswordToken(t *testing.T, db DBLike, userID uuid.UUID, purpose credential.Purpose, issuedAt time.Time) string {
	t.Helper()

	tok, raw, err := credential.Issue(userID, purpose, issuedAt)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		`INSERT INTO password_tokens (id, user_id, purpose, token_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		tok.ID(), tok.UserID(), string(tok.Purpose()), tok.Hash(), tok.CreatedAt(), tok.ExpiresAt())
	require.NoError(t, err)

	return raw
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all application tables, leaving the goose version table alone
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
