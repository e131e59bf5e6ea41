// This file implements parsing of request bodies, path ids and list filters.
// Body values follow loose presence rules: a missing key, null, false, an
// empty string and the number 0 all count as absent, while the string "0"
// is present and left for amount validation to reject.

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"festival/internal/core"
	"festival/internal/log"
	"festival/internal/services"
)

const maxBodyBytes = 1 << 20

var errBadBody = errors.New("invalid request body")

// RequestBodyParser reads a JSON or form-encoded body once and answers
// presence-aware lookups on it.
type RequestBodyParser struct {
	jsonData map[string]any
	formData url.Values
}

// ParseRequestBody reads and decodes the body of r.
func ParseRequestBody(w http.ResponseWriter, r *http.Request) (*RequestBodyParser, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errBadBody
	}

	p := &RequestBodyParser{}
	if len(bytes.TrimSpace(body)) == 0 {
		p.formData = url.Values{}
		return p, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		p.formData, err = url.ParseQuery(string(body))
		if err != nil {
			return nil, errBadBody
		}
		return p, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&p.jsonData); err != nil || p.jsonData == nil {
		return nil, errBadBody
	}
	return p, nil
}

// Value returns the text of key when it is present.
func (p *RequestBodyParser) Value(key string) (string, bool) {
	if p.formData != nil {
		v := p.formData.Get(key)
		return v, v != ""
	}

	switch v := p.jsonData[key].(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), v
	case json.Number:
		if len(v) <= core.MaxAmountLength {
			d, err := decimal.NewFromString(v.String())
			if err == nil && d.IsZero() {
				return "", false
			}
		}
		return v.String(), true
	default:
		raw, _ := json.Marshal(v)
		return string(raw), true
	}
}

// Text is Value without the presence flag.
func (p *RequestBodyParser) Text(key string) string {
	v, _ := p.Value(key)
	return v
}

// Optional returns nil when key is missing or null and the stored text
// otherwise, including the empty string.
func (p *RequestBodyParser) Optional(key string) *string {
	if p.formData != nil {
		if vs, ok := p.formData[key]; ok && len(vs) > 0 {
			return &vs[0]
		}
		return nil
	}

	switch v := p.jsonData[key].(type) {
	case nil:
		return nil
	case string:
		return &v
	default:
		raw, _ := json.Marshal(v)
		s := string(raw)
		return &s
	}
}

// DonorInput maps the body onto a donor write.
func (p *RequestBodyParser) DonorInput() services.DonorInput {
	return services.DonorInput{
		Name:    p.Text("name"),
		Contact: p.Optional("contact"),
		Amount:  p.Text("donation_amount"),
	}
}

// ExpenseInput maps the body onto an expense write.
func (p *RequestBodyParser) ExpenseInput() services.ExpenseInput {
	return services.ExpenseInput{
		Description: p.Text("description"),
		Amount:      p.Text("amount"),
	}
}

// parseID reads the {id} path parameter. Anything that is not a positive
// integer cannot name a record.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

const dateOnly = "2006-01-02"

// ParseDonorFilter builds a filter from query parameters. Values that do not
// parse are dropped with a warning rather than failing the request.
func ParseDonorFilter(q url.Values, logger *log.Logger) core.DonorFilter {
	var f core.DonorFilter

	if name := q.Get("name"); name != "" {
		f.Name = &name
	}
	f.MinAmount = parseAmountParam(q, "minAmount", logger)
	f.MaxAmount = parseAmountParam(q, "maxAmount", logger)
	f.DateFrom = parseDateParam(q, "dateFrom", false, logger)
	f.DateTo = parseDateParam(q, "dateTo", true, logger)
	return f
}

func parseAmountParam(q url.Values, key string, logger *log.Logger) *core.Money {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	m, err := core.ParseMoney(raw)
	if err != nil {
		logger.Warn("Ignoring invalid filter value", log.FieldFilter, key, "value", raw)
		return nil
	}
	return &m
}

// parseDateParam accepts YYYY-MM-DD or RFC3339. A date-only upper bound
// covers the whole day.
func parseDateParam(q url.Values, key string, endOfDay bool, logger *log.Logger) *time.Time {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(dateOnly, raw); err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
		}
		return &t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t
	}
	logger.Warn("Ignoring invalid filter value", log.FieldFilter, key, "value", raw)
	return nil
}
