package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"festival/internal/core"
	"festival/internal/log"
)

const (
	donorColumns   = "id, name, contact, donation_amount, date"
	expenseColumns = "id, description, amount, date"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLRepository stores donors and expenses in SQLite or Postgres.
type SQLRepository struct {
	db        *sql.DB
	dialect   Dialect
	now       func() time.Time
	snapshots bool
	logger    *log.Logger
}

type Option func(*SQLRepository)

// WithClock overrides the clock used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(r *SQLRepository) { r.now = now }
}

// WithSnapshots makes Snapshot run inside one read-only transaction.
func WithSnapshots(enabled bool) Option {
	return func(r *SQLRepository) { r.snapshots = enabled }
}

func WithLogger(logger *log.Logger) Option {
	return func(r *SQLRepository) { r.logger = logger.WithComponent(log.ComponentStorage) }
}

// Open connects to dsn, applies pending migrations and returns a ready repository.
func Open(ctx context.Context, dialect Dialect, dsn string, opts ...Option) (*SQLRepository, error) {
	if dialect != SQLite && dialect != Postgres {
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}

	db, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}
	if dialect == SQLite {
		// one writer at a time; also keeps shared in-memory databases alive
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dialect, dsn); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return NewSQLRepository(db, dialect, opts...), nil
}

// NewSQLRepository wraps an already migrated database.
func NewSQLRepository(db *sql.DB, dialect Dialect, opts ...Option) *SQLRepository {
	r := &SQLRepository{
		db:      db,
		dialect: dialect,
		now:     time.Now,
		logger:  log.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SQLRepository) Dialect() Dialect { return r.dialect }

func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListDonors returns donors matching f, newest first.
func (r *SQLRepository) ListDonors(ctx context.Context, f core.DonorFilter) ([]core.Donor, error) {
	w := donorFilterWhere(r.dialect, f)
	query := "SELECT " + donorColumns + " FROM donors" + w.String() + " ORDER BY date DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("query donors: %w", err)
	}
	defer rows.Close()

	donors := []core.Donor{}
	for rows.Next() {
		d, err := scanDonor(rows)
		if err != nil {
			return nil, err
		}
		donors = append(donors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate donors: %w", err)
	}

	r.logger.DebugContext(ctx, "Listed donors", log.FieldCount, len(donors), log.FieldFilter, !f.IsEmpty())
	return donors, nil
}

func (r *SQLRepository) GetDonor(ctx context.Context, id int64) (core.Donor, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind("SELECT "+donorColumns+" FROM donors WHERE id = ?"), id)
	return donorResult(row, id, "get donor")
}

func (r *SQLRepository) CreateDonor(ctx context.Context, in core.DonorFields) (core.Donor, error) {
	query := "INSERT INTO donors (name, contact, donation_amount, date) VALUES (?, ?, ?, ?) RETURNING " + donorColumns
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		in.Name, nullString(in.Contact), in.Amount.Cents(), r.dialect.timeArg(r.now()))

	d, err := scanDonor(row)
	if err != nil {
		return core.Donor{}, fmt.Errorf("insert donor: %w", err)
	}

	r.logger.InfoContext(ctx, "Donor saved", log.FieldRecordID, d.ID, log.FieldAmount, d.DonationAmount.String())
	return d, nil
}

func (r *SQLRepository) UpdateDonor(ctx context.Context, id int64, in core.DonorFields) (core.Donor, error) {
	query := "UPDATE donors SET name = ?, contact = ?, donation_amount = ? WHERE id = ? RETURNING " + donorColumns
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		in.Name, nullString(in.Contact), in.Amount.Cents(), id)
	return donorResult(row, id, "update donor")
}

func (r *SQLRepository) DeleteDonor(ctx context.Context, id int64) (core.Donor, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind("DELETE FROM donors WHERE id = ? RETURNING "+donorColumns), id)
	return donorResult(row, id, "delete donor")
}

func (r *SQLRepository) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	return listExpenses(ctx, r.db, r.dialect)
}

func (r *SQLRepository) GetExpense(ctx context.Context, id int64) (core.Expense, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind("SELECT "+expenseColumns+" FROM expenses WHERE id = ?"), id)
	return expenseResult(row, id, "get expense")
}

func (r *SQLRepository) CreateExpense(ctx context.Context, in core.ExpenseFields) (core.Expense, error) {
	query := "INSERT INTO expenses (description, amount, date) VALUES (?, ?, ?) RETURNING " + expenseColumns
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		in.Description, in.Amount.Cents(), r.dialect.timeArg(r.now()))

	e, err := scanExpense(row)
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	r.logger.InfoContext(ctx, "Expense saved", log.FieldRecordID, e.ID, log.FieldAmount, e.Amount.String())
	return e, nil
}

func (r *SQLRepository) UpdateExpense(ctx context.Context, id int64, in core.ExpenseFields) (core.Expense, error) {
	query := "UPDATE expenses SET description = ?, amount = ? WHERE id = ? RETURNING " + expenseColumns
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), in.Description, in.Amount.Cents(), id)
	return expenseResult(row, id, "update expense")
}

func (r *SQLRepository) DeleteExpense(ctx context.Context, id int64) (core.Expense, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind("DELETE FROM expenses WHERE id = ? RETURNING "+expenseColumns), id)
	return expenseResult(row, id, "delete expense")
}

func (r *SQLRepository) SumDonations(ctx context.Context) (core.Money, error) {
	return sumColumn(ctx, r.db, "donors", "donation_amount")
}

func (r *SQLRepository) SumExpenses(ctx context.Context) (core.Money, error) {
	return sumColumn(ctx, r.db, "expenses", "amount")
}

// Snapshot runs fn against the repository itself, or inside a read-only
// transaction when snapshots are enabled.
func (r *SQLRepository) Snapshot(ctx context.Context, fn func(AggregateReader) error) error {
	if !r.snapshots {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, r.dialect.snapshotOptions())
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&txReader{tx: tx, dialect: r.dialect}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// txReader serves aggregate reads from an open transaction.
type txReader struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *txReader) SumDonations(ctx context.Context) (core.Money, error) {
	return sumColumn(ctx, t.tx, "donors", "donation_amount")
}

func (t *txReader) SumExpenses(ctx context.Context) (core.Money, error) {
	return sumColumn(ctx, t.tx, "expenses", "amount")
}

func (t *txReader) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	return listExpenses(ctx, t.tx, t.dialect)
}

func sumColumn(ctx context.Context, q querier, table, column string) (core.Money, error) {
	var cents int64
	query := fmt.Sprintf("SELECT CAST(COALESCE(SUM(%s), 0) AS BIGINT) FROM %s", column, table)
	if err := q.QueryRowContext(ctx, query).Scan(&cents); err != nil {
		return core.Money{}, fmt.Errorf("sum %s.%s: %w", table, column, err)
	}
	return core.MoneyFromCents(cents), nil
}

func listExpenses(ctx context.Context, q querier, d Dialect) ([]core.Expense, error) {
	rows, err := q.QueryContext(ctx, "SELECT "+expenseColumns+" FROM expenses ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []core.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDonor(s rowScanner) (core.Donor, error) {
	var (
		d       core.Donor
		contact sql.NullString
		cents   int64
		date    dbTime
	)
	if err := s.Scan(&d.ID, &d.Name, &contact, &cents, &date); err != nil {
		return core.Donor{}, fmt.Errorf("scan donor: %w", err)
	}
	if contact.Valid {
		d.Contact = &contact.String
	}
	d.DonationAmount = core.MoneyFromCents(cents)
	d.Date = date.Time
	return d, nil
}

func scanExpense(s rowScanner) (core.Expense, error) {
	var (
		e     core.Expense
		cents int64
		date  dbTime
	)
	if err := s.Scan(&e.ID, &e.Description, &cents, &date); err != nil {
		return core.Expense{}, fmt.Errorf("scan expense: %w", err)
	}
	e.Amount = core.MoneyFromCents(cents)
	e.Date = date.Time
	return e, nil
}

func donorResult(row *sql.Row, id int64, op string) (core.Donor, error) {
	d, err := scanDonor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Donor{}, fmt.Errorf("%s: %w", op, &core.NotFoundError{Entity: core.KindDonor, ID: id})
	}
	if err != nil {
		return core.Donor{}, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

func expenseResult(row *sql.Row, id int64, op string) (core.Expense, error) {
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, fmt.Errorf("%s: %w", op, &core.NotFoundError{Entity: core.KindExpense, ID: id})
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
