package services

import (
	"context"
	"fmt"

	"festival/internal/amqp"
	"festival/internal/core"
	"festival/internal/log"
	"festival/internal/storage"
)

// ExpenseService validates expense writes, persists them and announces them.
type ExpenseService struct {
	store     storage.ExpenseStore
	publisher Publisher
	logger    *log.Logger
}

func NewExpenseService(store storage.ExpenseStore, publisher Publisher, logger *log.Logger) *ExpenseService {
	if logger == nil {
		logger = log.Discard()
	}
	return &ExpenseService{
		store:     store,
		publisher: publisher,
		logger:    logger.WithComponent(log.ComponentExpense),
	}
}

func (s *ExpenseService) List(ctx context.Context) ([]core.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (s *ExpenseService) Get(ctx context.Context, id int64) (core.Expense, error) {
	return s.store.GetExpense(ctx, id)
}

func (s *ExpenseService) Create(ctx context.Context, in ExpenseInput) (core.Expense, error) {
	fields, err := in.Fields()
	if err != nil {
		return core.Expense{}, err
	}

	e, err := s.store.CreateExpense(ctx, fields)
	if err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	publish(ctx, s.publisher, s.logger, core.KindExpense, amqp.OpCreated, e.ID)
	return e, nil
}

func (s *ExpenseService) Update(ctx context.Context, id int64, in ExpenseInput) (core.Expense, error) {
	fields, err := in.Fields()
	if err != nil {
		return core.Expense{}, err
	}

	e, err := s.store.UpdateExpense(ctx, id, fields)
	if err != nil {
		return core.Expense{}, err
	}

	publish(ctx, s.publisher, s.logger, core.KindExpense, amqp.OpUpdated, e.ID)
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id int64) (core.Expense, error) {
	e, err := s.store.DeleteExpense(ctx, id)
	if err != nil {
		return core.Expense{}, err
	}

	publish(ctx, s.publisher, s.logger, core.KindExpense, amqp.OpDeleted, e.ID)
	return e, nil
}
