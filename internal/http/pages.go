package http

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"festival/internal/core"
	"festival/internal/log"
	appweb "festival/web"
)

// pageData is shared by every rendered page.
type pageData struct {
	Title       string
	Active      string
	AuthEnabled bool
	Notice      string
	Year        int
}

func (s *Server) newPageData(r *http.Request, active, title string) pageData {
	return pageData{
		Title:       title,
		Active:      active,
		AuthEnabled: s.deps.Tokens != nil,
		Year:        time.Now().Year(),
	}
}

var templateFuncs = template.FuncMap{
	"rupees": formatRupees,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("02 Jan 2006")
	},
	"contact": func(d core.Donor) string {
		if c := d.ContactOrEmpty(); c != "" {
			return c
		}
		return "-"
	},
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(appweb.TemplatesFS, "templates/*.html")
}

// render executes into a buffer so a template failure never leaves a
// half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.FromContext(r.Context()).LogError(r.Context(), "Template execution failed", err,
			log.ComponentTemplate, log.OpRender, log.NewFields())
		http.Error(w, MsgInternalError, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleDonorsPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "donors.html", s.newPageData(r, "donors", "Donors"))
}

func (s *Server) handleExpensesPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "expenses.html", s.newPageData(r, "expenses", "Expenses"))
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "login.html", s.newPageData(r, "login", "Admin login"))
}

// formatRupees renders an amount as ₹1,23,456.78 using Indian digit grouping.
func formatRupees(m core.Money) string {
	s := m.String()
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		s = s[1:]
	}
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var grouped []byte
	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		for i, c := range []byte(head) {
			if i > 0 && (len(head)-i)%2 == 0 {
				grouped = append(grouped, ',')
			}
			grouped = append(grouped, c)
		}
		grouped = append(grouped, ',')
		grouped = append(grouped, tail...)
	} else {
		grouped = []byte(intPart)
	}

	out := "₹" + string(grouped) + frac
	if neg {
		return "-" + out
	}
	return out
}
