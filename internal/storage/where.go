package storage

import (
	"strings"

	"festival/internal/core"
)

// whereBuilder collects parameterized predicates joined with AND.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(clause string, args ...any) {
	w.clauses = append(w.clauses, clause)
	w.args = append(w.args, args...)
}

// String renders the WHERE clause, or "" when nothing was added.
func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func (w *whereBuilder) Args() []any {
	return w.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func donorFilterWhere(d Dialect, f core.DonorFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.Name != nil {
		lower := d.lower()
		w.add(lower+`(name) LIKE `+lower+`(?) ESCAPE '\'`, "%"+escapeLike(*f.Name)+"%")
	}
	if f.MinAmount != nil {
		w.add("donation_amount >= ?", f.MinAmount.Cents())
	}
	if f.MaxAmount != nil {
		w.add("donation_amount <= ?", f.MaxAmount.Cents())
	}
	if f.DateFrom != nil {
		w.add("date >= ?", d.timeArg(*f.DateFrom))
	}
	if f.DateTo != nil {
		w.add("date <= ?", d.timeArg(*f.DateTo))
	}
	return w
}
