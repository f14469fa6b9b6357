package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/types"
)

type ScheduledPaymentService struct {
	repo domain.ScheduledPaymentRepository
	now  func() time.Time
}

func NewScheduledPaymentService(repo domain.ScheduledPaymentRepository) *ScheduledPaymentService {
	return &ScheduledPaymentService{repo: repo, now: time.Now}
}

// NextDue is the projection of a payment's following due date.
type NextDue struct {
	ID          int64            `json:"id"`
	Frequency   domain.Frequency `json:"frecuencia"`
	NextDueDate types.Date       `json:"proxima_fecha_vencimiento"`
	// FollowingDueDate is nil when it would fall after the payment's end date.
	FollowingDueDate *types.Date `json:"siguiente_fecha_vencimiento"`
}

func (s *ScheduledPaymentService) CreatePayment(ctx context.Context, draft domain.ScheduledPaymentDraft) (int64, error) {
	payment, err := draft.Normalize()
	if err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, payment)
}

func (s *ScheduledPaymentService) GetPayment(ctx context.Context, id int64) (*domain.ScheduledPayment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ScheduledPaymentService) GetPayments(ctx context.Context) ([]domain.ScheduledPayment, error) {
	return s.repo.FindAll(ctx)
}

// GetUpcomingPayments returns payments due today or later, active or not.
func (s *ScheduledPaymentService) GetUpcomingPayments(ctx context.Context) ([]domain.ScheduledPayment, error) {
	return s.repo.FindDueFrom(ctx, types.DateOf(s.now()))
}

func (s *ScheduledPaymentService) GetUserPayments(ctx context.Context, userID int64) ([]domain.ScheduledPayment, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *ScheduledPaymentService) GetPaymentsByFrequency(ctx context.Context, frequency string) ([]domain.ScheduledPayment, error) {
	f := domain.Frequency(frequency)
	if !f.Valid() {
		return nil, domain.ErrInvalidFrequency
	}
	return s.repo.FindByFrequency(ctx, f)
}

// UpdatePayment applies the creation rules to the draft. Flags missing from
// the draft keep their stored values.
func (s *ScheduledPaymentService) UpdatePayment(ctx context.Context, id int64, draft domain.ScheduledPaymentDraft) error {
	payment, err := draft.Normalize()
	if err != nil {
		return err
	}

	if draft.Active == nil || draft.AutoRegister == nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if draft.Active == nil {
			payment.Active = existing.Active
		}
		if draft.AutoRegister == nil {
			payment.AutoRegister = existing.AutoRegister
		}
	}
	return s.repo.Update(ctx, id, payment)
}

func (s *ScheduledPaymentService) DeletePayment(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// TogglePaymentStatus flips the active flag and returns the confirmation
// message for the new state.
func (s *ScheduledPaymentService) TogglePaymentStatus(ctx context.Context, id int64) (string, error) {
	active, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return "", err
	}
	state := "desactivado"
	if active {
		state = "activado"
	}
	return fmt.Sprintf("Pago programado %s correctamente", state), nil
}

// GetNextDueDate computes the due date following the stored one. Nothing is
// persisted.
func (s *ScheduledPaymentService) GetNextDueDate(ctx context.Context, id int64) (*NextDue, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.NextDueDate == nil {
		return nil, ErrNoNextDueDate
	}

	following, err := domain.Advance(*payment.NextDueDate, payment.Frequency)
	if err != nil {
		return nil, err
	}

	result := &NextDue{ID: payment.ID, Frequency: payment.Frequency, NextDueDate: *payment.NextDueDate}
	if payment.EndDate == nil || !following.After(*payment.EndDate) {
		result.FollowingDueDate = &following
	}
	return result, nil
}
