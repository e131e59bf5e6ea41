package services

import (
	"context"
	"fmt"

	"festival/internal/amqp"
	"festival/internal/core"
	"festival/internal/log"
	"festival/internal/storage"
)

// DonorService validates donor writes, persists them and announces them.
type DonorService struct {
	store     storage.DonorStore
	publisher Publisher
	logger    *log.Logger
}

// NewDonorService wires the store. publisher may be nil when change events are disabled.
func NewDonorService(store storage.DonorStore, publisher Publisher, logger *log.Logger) *DonorService {
	if logger == nil {
		logger = log.Discard()
	}
	return &DonorService{
		store:     store,
		publisher: publisher,
		logger:    logger.WithComponent(log.ComponentDonor),
	}
}

func (s *DonorService) List(ctx context.Context, f core.DonorFilter) ([]core.Donor, error) {
	donors, err := s.store.ListDonors(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return donors, nil
}

// Get returns core.ErrNotFound when id is unknown.
func (s *DonorService) Get(ctx context.Context, id int64) (core.Donor, error) {
	return s.store.GetDonor(ctx, id)
}

func (s *DonorService) Create(ctx context.Context, in DonorInput) (core.Donor, error) {
	fields, err := in.Fields()
	if err != nil {
		return core.Donor{}, err
	}

	d, err := s.store.CreateDonor(ctx, fields)
	if err != nil {
		return core.Donor{}, fmt.Errorf("create donor: %w", err)
	}

	publish(ctx, s.publisher, s.logger, core.KindDonor, amqp.OpCreated, d.ID)
	return d, nil
}

func (s *DonorService) Update(ctx context.Context, id int64, in DonorInput) (core.Donor, error) {
	fields, err := in.Fields()
	if err != nil {
		return core.Donor{}, err
	}

	d, err := s.store.UpdateDonor(ctx, id, fields)
	if err != nil {
		return core.Donor{}, err
	}

	publish(ctx, s.publisher, s.logger, core.KindDonor, amqp.OpUpdated, d.ID)
	return d, nil
}

func (s *DonorService) Delete(ctx context.Context, id int64) (core.Donor, error) {
	d, err := s.store.DeleteDonor(ctx, id)
	if err != nil {
		return core.Donor{}, err
	}

	publish(ctx, s.publisher, s.logger, core.KindDonor, amqp.OpDeleted, d.ID)
	return d, nil
}

// publish sends a change event. Failures are logged and never returned:
// the write is already committed.
func publish(ctx context.Context, p Publisher, logger *log.Logger, kind, op string, id int64) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, amqp.NewRecordChanged(kind, op, id)); err != nil {
		logger.LogError(ctx, "Failed to publish record change", err, logger.Component(), log.OpPublish,
			log.NewFields().WithRecord(kind, id))
	}
}
