package sqlconfig

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a row does not exist or belongs to another owner.
var ErrNotFound = errors.New("record not found")

const dateLayout = "2006-01-02"

// dateArg formats t as a DATE literal so Postgres compares calendar days
// instead of timestamps shifted by the session time zone.
func dateArg(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
