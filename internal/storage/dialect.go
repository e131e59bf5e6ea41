package storage

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	sqlitedriver "modernc.org/sqlite"
)

// Dialect selects the SQL flavour spoken by a SQLRepository.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// sqliteTimeLayout is fixed width so that text comparison orders by time.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000Z"

// unicodeLower is registered with the SQLite driver because SQLite's own
// LOWER folds ASCII only. It lowercases the way core.DonorFilter.Matches does.
const unicodeLower = "unicode_lower"

func init() {
	err := sqlitedriver.RegisterDeterministicScalarFunction(unicodeLower, 1,
		func(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
			switch v := args[0].(type) {
			case nil:
				return nil, nil
			case string:
				return strings.ToLower(v), nil
			case []byte:
				return strings.ToLower(string(v)), nil
			default:
				return v, nil
			}
		})
	if err != nil {
		panic(fmt.Sprintf("register %s: %v", unicodeLower, err))
	}
}

func (d Dialect) String() string { return string(d) }

// lower names the case folding function used by the name filter.
func (d Dialect) lower() string {
	if d == Postgres {
		return "LOWER"
	}
	return unicodeLower
}

func (d Dialect) driverName() string {
	if d == Postgres {
		return "pgx"
	}
	return "sqlite"
}

// Rebind rewrites ? placeholders into the dialect's bind syntax.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// timeArg converts t into the value bound for a date column.
func (d Dialect) timeArg(t time.Time) any {
	if d == Postgres {
		return t.UTC()
	}
	return t.UTC().Format(sqliteTimeLayout)
}

// snapshotOptions returns the transaction options used by Snapshot.
func (d Dialect) snapshotOptions() *sql.TxOptions {
	if d == Postgres {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	// A SQLite transaction already reads from a single snapshot.
	return nil
}

// dbTime scans date columns from either dialect.
type dbTime struct {
	Time time.Time
}

var textTimeLayouts = []string{
	sqliteTimeLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		return fmt.Errorf("scan date: unexpected NULL")
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range textTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("scan date: unrecognised format %q", s)
}
