package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"festival/internal/amqp"
	"festival/internal/core"
	"festival/internal/mocks"
)

func TestDonorService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockDonorStore(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	svc := NewDonorService(store, publisher, nil)
	ctx := context.Background()

	t.Run("should persist rounded amount and publish", func(t *testing.T) {
		req := require.New(t)
		contact := "+91-9359774343"
		saved := core.Donor{ID: 1, Name: "Kundlik", Contact: &contact, DonationAmount: core.MoneyFromCents(250001), Date: time.Now()}

		store.EXPECT().
			CreateDonor(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in core.DonorFields) (core.Donor, error) {
				req.Equal("Kundlik", in.Name)
				req.Equal(int64(250001), in.Amount.Cents())
				return saved, nil
			}).
			Times(1)
		publisher.EXPECT().
			Publish(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *amqp.RecordChanged) error {
				req.Equal(core.KindDonor, msg.Kind)
				req.Equal(amqp.OpCreated, msg.Op)
				req.Equal(int64(1), msg.ID)
				return nil
			}).
			Times(1)

		d, err := svc.Create(ctx, DonorInput{Name: "Kundlik", Contact: &contact, Amount: "2500.005"})
		req.NoError(err)
		req.Equal(saved, d)
	})

	t.Run("should reject missing fields before touching the store", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().CreateDonor(gomock.Any(), gomock.Any()).Times(0)

		for _, in := range []DonorInput{
			{Name: "", Amount: "100"},
			{Name: "Bhau", Amount: ""},
			{},
		} {
			_, err := svc.Create(ctx, in)
			ve, ok := core.IsValidation(err)
			req.True(ok)
			req.Equal(MsgDonorRequired, ve.Message)
		}
	})

	t.Run("should reject non-positive or non-numeric amounts", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().CreateDonor(gomock.Any(), gomock.Any()).Times(0)

		for _, amount := range []string{"0", "-5", "abc", "0.001", "100000000", "12abc"} {
			_, err := svc.Create(ctx, DonorInput{Name: "Bhau", Amount: amount})
			ve, ok := core.IsValidation(err)
			req.True(ok, amount)
			req.Equal(MsgDonationPositive, ve.Message, amount)
		}
	})

	t.Run("should accept the largest storable amount", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().CreateDonor(ctx, gomock.Any()).Return(core.Donor{ID: 2}, nil)
		publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		_, err := svc.Create(ctx, DonorInput{Name: "Big", Amount: "99999999.99"})
		req.NoError(err)
	})

	t.Run("should not fail when publishing fails", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().CreateDonor(ctx, gomock.Any()).Return(core.Donor{ID: 3}, nil)
		publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("broker down"))

		d, err := svc.Create(ctx, DonorInput{Name: "Kunal", Amount: "10"})
		req.NoError(err)
		req.Equal(int64(3), d.ID)
	})

	t.Run("should wrap store failures", func(t *testing.T) {
		req := require.New(t)
		boom := errors.New("disk full")
		store.EXPECT().CreateDonor(ctx, gomock.Any()).Return(core.Donor{}, boom)

		_, err := svc.Create(ctx, DonorInput{Name: "Kunal", Amount: "10"})
		req.ErrorIs(err, boom)
		_, isValidation := core.IsValidation(err)
		req.False(isValidation)
	})
}

func TestDonorService_UpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockDonorStore(ctrl)
	svc := NewDonorService(store, nil, nil)
	ctx := context.Background()

	t.Run("validation runs before the existence check", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().UpdateDonor(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Update(ctx, 999, DonorInput{Name: "x", Amount: "-1"})
		ve, ok := core.IsValidation(err)
		req.True(ok)
		req.Equal(MsgDonationPositive, ve.Message)
	})

	t.Run("unknown id surfaces not found", func(t *testing.T) {
		req := require.New(t)
		notFound := &core.NotFoundError{Entity: core.KindDonor, ID: 999}
		store.EXPECT().UpdateDonor(ctx, int64(999), gomock.Any()).Return(core.Donor{}, notFound)
		store.EXPECT().DeleteDonor(ctx, int64(999)).Return(core.Donor{}, notFound)

		_, err := svc.Update(ctx, 999, DonorInput{Name: "x", Amount: "1"})
		req.ErrorIs(err, core.ErrNotFound)
		_, err = svc.Delete(ctx, 999)
		req.ErrorIs(err, core.ErrNotFound)
	})

	t.Run("get reads through to the store", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().GetDonor(ctx, int64(4)).Return(core.Donor{ID: 4, Name: "Dhiraj"}, nil)
		store.EXPECT().GetDonor(ctx, int64(999)).Return(core.Donor{}, &core.NotFoundError{Entity: core.KindDonor, ID: 999})

		d, err := svc.Get(ctx, 4)
		req.NoError(err)
		req.Equal("Dhiraj", d.Name)
		_, err = svc.Get(ctx, 999)
		req.ErrorIs(err, core.ErrNotFound)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().DeleteDonor(ctx, int64(4)).Return(core.Donor{ID: 4, Name: "Dhiraj"}, nil)

		d, err := svc.Delete(ctx, 4)
		req.NoError(err)
		req.Equal("Dhiraj", d.Name)
	})
}

func TestExpenseService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockExpenseStore(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	svc := NewExpenseService(store, publisher, nil)
	ctx := context.Background()

	t.Run("negative amount is rejected with the expense message", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, ExpenseInput{Description: "Flowers", Amount: "-5"})
		ve, ok := core.IsValidation(err)
		req.True(ok)
		req.Equal(MsgAmountPositive, ve.Message)

		_, err = svc.Create(ctx, ExpenseInput{Amount: "5"})
		ve, ok = core.IsValidation(err)
		req.True(ok)
		req.Equal(MsgExpenseRequired, ve.Message)
		req.Equal("Description", ve.Field)
	})

	t.Run("create, update and delete publish their operation", func(t *testing.T) {
		req := require.New(t)
		var ops []string
		publisher.EXPECT().
			Publish(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *amqp.RecordChanged) error {
				req.Equal(core.KindExpense, msg.Kind)
				ops = append(ops, msg.Op)
				return nil
			}).
			Times(3)

		gomock.InOrder(
			store.EXPECT().CreateExpense(ctx, gomock.Any()).Return(core.Expense{ID: 5}, nil),
			store.EXPECT().UpdateExpense(ctx, int64(5), gomock.Any()).Return(core.Expense{ID: 5}, nil),
			store.EXPECT().DeleteExpense(ctx, int64(5)).Return(core.Expense{ID: 5}, nil),
		)

		_, err := svc.Create(ctx, ExpenseInput{Description: "Sound System", Amount: "8000"})
		req.NoError(err)
		_, err = svc.Update(ctx, 5, ExpenseInput{Description: "Sound System", Amount: "7500"})
		req.NoError(err)
		_, err = svc.Delete(ctx, 5)
		req.NoError(err)

		req.Equal([]string{amqp.OpCreated, amqp.OpUpdated, amqp.OpDeleted}, ops)
	})

	t.Run("get does not publish", func(t *testing.T) {
		req := require.New(t)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
		store.EXPECT().GetExpense(ctx, int64(5)).Return(core.Expense{ID: 5, Description: "Sound System"}, nil)

		e, err := svc.Get(ctx, 5)
		req.NoError(err)
		req.Equal("Sound System", e.Description)
	})
}
