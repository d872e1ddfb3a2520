package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ProjectID string
	// DepositID is optional; the latest deposit for the selected contractor is used when empty.
	DepositID string
	StartAt   time.Time
	EndAt     time.Time
	Note      string
}

// BookingStatus tells a client whether booking is possible right now, and why not.
type BookingStatus struct {
	Enabled        bool                         `json:"enabled"`
	DisabledReason escrow.BookingDisabledReason `json:"disabled_reason,omitempty"`
}

type IBookingUseCase interface {
	Status(ctx context.Context, projectID string) (BookingStatus, error)
	CreateBooking(ctx context.Context, actor entities.Actor, in CreateBookingInput) (entities.BookingRequest, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.BookingRequest, error)
}

type BookingUseCase struct {
	projects interfaces.IProjectRepository
	deposits interfaces.IEstimateDepositRepository
	bookings interfaces.IBookingRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	projects interfaces.IProjectRepository,
	deposits interfaces.IEstimateDepositRepository,
	bookings interfaces.IBookingRepository,
) *BookingUseCase {
	return &BookingUseCase{projects: projects, deposits: deposits, bookings: bookings}
}

func (u *BookingUseCase) Status(ctx context.Context, projectID string) (BookingStatus, error) {
	p, deposit, err := u.resolve(ctx, projectID, "")
	if err != nil {
		return BookingStatus{}, err
	}
	reason := escrow.ResolveBookingDisabledReason(p.ContractorID, deposit)
	return BookingStatus{Enabled: reason == escrow.BookingReasonNone, DisabledReason: reason}, nil
}

func (u *BookingUseCase) CreateBooking(ctx context.Context, actor entities.Actor, in CreateBookingInput) (entities.BookingRequest, error) {
	p, deposit, err := u.resolve(ctx, in.ProjectID, in.DepositID)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if actor.Role != entities.RoleCustomer || actor.ID != p.CustomerID {
		return entities.BookingRequest{}, escrow.ErrCustomerOnly
	}

	b, err := escrow.NewBookingRequest(p, deposit, in.StartAt, in.EndAt, in.Note)
	if err != nil {
		log.Printf("[booking][usecase] gate rejected project_id=%s err=%v", p.ID, err)
		return entities.BookingRequest{}, err
	}
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()

	created, err := u.bookings.Create(ctx, b)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	log.Printf("[booking][usecase] created booking_id=%s project_id=%s deposit_id=%s", created.ID, p.ID, created.EstimateDepositID)
	return created, nil
}

func (u *BookingUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.BookingRequest, error) {
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return nil, err
	}
	return u.bookings.ListByProjectID(ctx, p.ID)
}

func (u *BookingUseCase) resolve(ctx context.Context, projectID, depositID string) (entities.Project, *entities.EstimateDeposit, error) {
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return entities.Project{}, nil, err
	}
	if !p.HasContractor() {
		return p, nil, nil
	}

	depositID = strings.TrimSpace(depositID)
	if depositID != "" {
		d, err := u.deposits.GetByID(ctx, depositID)
		if err != nil {
			return entities.Project{}, nil, err
		}
		if d.ID == "" {
			return p, nil, nil
		}
		return p, &d, nil
	}

	deposits, err := u.deposits.ListByProjectID(ctx, p.ID)
	if err != nil {
		return entities.Project{}, nil, err
	}
	return p, latestDepositFor(deposits, p.ContractorID), nil
}
