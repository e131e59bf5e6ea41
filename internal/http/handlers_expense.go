package http

import (
	"net/http"

	"festival/internal/log"
)

const (
	msgExpenseNotFound = "Expense not found"
	msgExpenseAdded    = "Expense added successfully"
	msgExpenseUpdated  = "Expense updated successfully"
	msgExpenseDeleted  = "Expense deleted successfully"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.deps.Expenses.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, msgExpenseNotFound, log.OpList)
		return
	}
	expenses = emptyIfNil(expenses)
	NewJSONResponse().Data(expenses).Count(len(expenses)).Write(w)
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		NotFoundError(msgExpenseNotFound).Write(w)
		return
	}
	expense, err := s.deps.Expenses.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, msgExpenseNotFound, log.OpRead)
		return
	}
	NewJSONResponse().Data(expense).Write(w)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	body, err := ParseRequestBody(w, r)
	if err != nil {
		BadRequestError("Invalid request body").Write(w)
		return
	}

	expense, err := s.deps.Expenses.Create(r.Context(), body.ExpenseInput())
	if err != nil {
		writeServiceError(w, r, err, msgExpenseNotFound, log.OpCreate)
		return
	}
	NewJSONResponse().Status(http.StatusCreated).Data(expense).Message(msgExpenseAdded).Write(w)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	body, err := ParseRequestBody(w, r)
	if err != nil {
		BadRequestError("Invalid request body").Write(w)
		return
	}
	in := body.ExpenseInput()
	if _, err := in.Fields(); err != nil {
		writeServiceError(w, r, err, msgExpenseNotFound, log.OpValidate)
		return
	}

	id, ok := parseID(r)
	if !ok {
		NotFoundError(msgExpenseNotFound).Write(w)
		return
	}
	expense, err := s.deps.Expenses.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err, msgExpenseNotFound, log.OpUpdate)
		return
	}
	NewJSONResponse().Data(expense).Message(msgExpenseUpdated).Write(w)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		NotFoundError(msgExpenseNotFound).Write(w)
		return
	}
	if _, err := s.deps.Expenses.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, msgExpenseNotFound, log.OpDelete)
		return
	}
	NewJSONResponse().Message(msgExpenseDeleted).Write(w)
}
