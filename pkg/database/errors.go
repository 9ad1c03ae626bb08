package database

import (
	"errors"

	"github.com/lib/pq"
)

const foreignKeyViolation = pq.ErrorCode("23503")

// IsForeignKeyViolation reports whether err was raised by a referential
// constraint, e.g. inserting a department for a faculty that does not exist.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
