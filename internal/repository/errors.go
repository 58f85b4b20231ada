package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind 表示一次資料存取的結果類別
type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindConstraint
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindConstraint:
		return "constraint_violation"
	case KindStorage:
		return "storage_error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error 是 repository 回傳的所有錯誤的型別
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 讓 errors.Is(err, ErrNotFound) 這類比較只看 Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrConstraint = &Error{Kind: KindConstraint}
	ErrStorage    = &Error{Kind: KindStorage}
)

// KindOf 取出錯誤的類別；nil 為 KindOK，非 repository 錯誤一律視為 KindStorage
func KindOf(err error) Kind {
	if err == nil {
		return KindOK
	}
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindStorage
}

// wrap 依照 gorm / pgx 的錯誤分類
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: classify(err), Op: op, Err: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindConstraint
	}

	// SQLSTATE 23xxx: integrity constraint violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == "23" {
		return KindConstraint
	}

	return KindStorage
}
