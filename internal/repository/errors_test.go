package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil is ok", nil, KindOK},
		{"record not found", wrap("op", gorm.ErrRecordNotFound), KindNotFound},
		{"duplicated key", wrap("op", gorm.ErrDuplicatedKey), KindConstraint},
		{"foreign key", wrap("op", fmt.Errorf("delete: %w", gorm.ErrForeignKeyViolated)), KindConstraint},
		{"pg unique violation", wrap("op", &pgconn.PgError{Code: "23505"}), KindConstraint},
		{"pg not null violation", wrap("op", &pgconn.PgError{Code: "23502"}), KindConstraint},
		{"pg undefined table", wrap("op", &pgconn.PgError{Code: "42P01"}), KindStorage},
		{"plain driver error", wrap("op", errors.New("connection refused")), KindStorage},
		{"foreign error type", errors.New("boom"), KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMatching(t *testing.T) {
	err := wrap("author.find_by_id", gorm.ErrRecordNotFound)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NotErrorIs(t, err, ErrStorage)
	assert.Equal(t, "author.find_by_id: not_found: record not found", err.Error())

	assert.Nil(t, wrap("op", nil))
	assert.Equal(t, "author.delete: not_found", (&Error{Kind: KindNotFound, Op: "author.delete"}).Error())
}
