package postgres

import (
	"testing"

	"eventhub/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrap := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert")
	}

	assert.True(t, isUniqueConstraintViolation(wrap(pgUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrap(pgCheckViolation)))

	assert.True(t, isForeignKeyConstraintViolation(wrap(pgForeignKeyViolation)))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isCheckConstraintViolation(wrap(pgCheckViolation)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	assert.True(t, isNotNullConstraintViolation(wrap(pgNotNullViolation)))
	assert.False(t, isNotNullConstraintViolation(errors.New("boom")))
}
