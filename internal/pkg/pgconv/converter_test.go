//go:build unit

package pgconv_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"laundry-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableRoundTrip(t *testing.T) {
	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	s := "secret"
	assert.Equal(t, &s, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&s)))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(nil)))

	now := time.Now()
	assert.Equal(t, &now, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now)))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))
	assert.Equal(t, now, pgconv.TimeFromPgtype(pgconv.TimeToPgtype(now)))
}

func TestErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, pgconv.IsUniqueViolation(unique))
	assert.False(t, pgconv.IsUniqueViolation(fk))
	assert.True(t, pgconv.IsForeignKeyViolation(fk))
	assert.False(t, pgconv.IsForeignKeyViolation(errors.New("boom")))

	assert.True(t, pgconv.IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(unique))
}
