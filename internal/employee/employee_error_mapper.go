package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/Slawuu/Company-manager/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage-level failures into the module's
// apperror values. Unique violations are dispatched on the constraint
// name so email and phone conflicts surface as distinct messages.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "phone") {
			return employeeerrors.ErrPhoneTaken
		}
		return employeeerrors.ErrEmailTaken
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") {
		if strings.Contains(msg, "phone") {
			return employeeerrors.ErrPhoneTaken
		}
		return employeeerrors.ErrEmailTaken
	}

	return err
}
