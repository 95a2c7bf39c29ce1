package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-agenda/internal/converter"
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/delivery/http/middleware"
	"clinic-agenda/internal/domain/entity"
	"clinic-agenda/internal/domain/repository"
	"clinic-agenda/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotTaken                   = errors.New("the requested slot is no longer available")
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrAppointmentInPast           = errors.New("cannot book a past slot")
	ErrDayNotBookable              = errors.New("the requested day is closed for booking")
)

type AppointmentUsecase interface {
	// CheckAvailability is the advisory read-only overlap test; it reserves
	// nothing.
	CheckAvailability(ctx context.Context, date, timeOfDay string, durationMinutes, consultorioID int) (*entity.Availability, error)
	// CreateSecure re-validates availability inside the insert transaction
	// to close the check-then-act race between concurrent bookings.
	CreateSecure(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	ListByDay(ctx context.Context, date string, consultorioID int) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	consultorioRepo repository.ConsultorioRepository
	settingsUsecase AgendaSettingsUsecase
	blockedUsecase  BlockedDateUsecase
	cache           service.AgendaCache

	// now is injected for tests.
	now func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	consultorioRepo repository.ConsultorioRepository,
	settingsUsecase AgendaSettingsUsecase,
	blockedUsecase BlockedDateUsecase,
	cache service.AgendaCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		consultorioRepo: consultorioRepo,
		settingsUsecase: settingsUsecase,
		blockedUsecase:  blockedUsecase,
		cache:           cache,
		now:             time.Now,
	}
}

func (u *appointmentUsecase) CheckAvailability(ctx context.Context, date, timeOfDay string, durationMinutes, consultorioID int) (*entity.Availability, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	existing, err := u.appointmentRepo.FindActiveByDay(u.db.WithContext(ctx), consultorioID, date)
	if err != nil {
		u.log.Warnf("Failed to load appointments for %s consultorio %d: %+v", date, consultorioID, err)
		return nil, err
	}

	if entity.FindConflict(existing, timeOfDay, durationMinutes) != nil {
		return &entity.Availability{Available: false, Reason: entity.SlotReasonBooked}, nil
	}
	return &entity.Availability{Available: true}, nil
}

// CreateSecure books a slot.
//
// Flow:
// 1. Validate date/time formats, room exists and is active, day is open
// 2. Default duration to the configured slot interval
// 3. Reject past slots
// 4. Inside one transaction: lock the day's rows, re-run the overlap test,
//    insert (the partial unique index on consultorio/date/time is the
//    backstop if two transactions slip past the row locks)
// 5. Publish the appointment-booked event
func (u *appointmentUsecase) CreateSecure(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	consultorio, err := u.consultorioRepo.FindByID(u.db.WithContext(ctx), req.ConsultorioID)
	if err != nil {
		u.log.Warnf("Failed to find consultorio %d: %+v", req.ConsultorioID, err)
		return nil, err
	}
	if consultorio == nil {
		return nil, ErrConsultorioNotFound
	}
	if !consultorio.Active {
		return nil, ErrConsultorioInactive
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		settings, err := u.settingsUsecase.Current(ctx)
		if err != nil {
			return nil, err
		}
		if settings == nil {
			return nil, ErrScheduleNotConfigured
		}
		duration = settings.SlotIntervalMinutes
	}

	if err := u.validateBookableDay(ctx, req.Date, req.Time); err != nil {
		return nil, err
	}

	createdBy, _ := middleware.GetUserIDFromContext(ctx)
	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		ConsultorioID:   req.ConsultorioID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: duration,
		Status:          entity.AppointmentStatusScheduled,
		Reason:          req.Reason,
		CreatedBy:       createdBy,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := u.appointmentRepo.FindActiveByDayForUpdate(tx, req.ConsultorioID, req.Date)
		if err != nil {
			return err
		}
		if entity.FindConflict(existing, req.Time, duration) != nil {
			return ErrSlotTaken
		}
		return u.appointmentRepo.Create(tx, appointment)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		if !errors.Is(err, ErrSlotTaken) {
			u.log.Warnf("Failed to create appointment: %+v", err)
		}
		return nil, err
	}

	u.cache.PublishAppointmentBooked(ctx, service.AgendaEvent{
		AppointmentID: appointment.ID,
		ConsultorioID: appointment.ConsultorioID,
		Date:          appointment.Date,
		Time:          appointment.Time,
	})
	u.log.Infof("Appointment booked: id=%s consultorio=%d %s %s",
		appointment.ID, appointment.ConsultorioID, appointment.Date, appointment.Time)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return ErrAppointmentAlreadyCancelled
	}

	affected, err := u.appointmentRepo.Cancel(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		// Lost the race against a concurrent cancel.
		return ErrAppointmentAlreadyCancelled
	}

	u.log.Infof("Appointment cancelled: id=%s", id)
	return nil
}

// Reschedule moves an appointment to a new slot, re-running the same locked
// availability check as creation.
func (u *appointmentUsecase) Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentAlreadyCancelled
	}

	if err := u.validateBookableDay(ctx, req.Date, req.Time); err != nil {
		return nil, err
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := u.appointmentRepo.FindActiveByDayForUpdate(tx, appointment.ConsultorioID, req.Date)
		if err != nil {
			return err
		}
		for i := range existing {
			if existing[i].ID == appointment.ID {
				continue
			}
			if existing[i].Overlaps(req.Time, appointment.DurationMinutes) {
				return ErrSlotTaken
			}
		}
		return u.appointmentRepo.UpdateSlot(tx, id, req.Date, req.Time)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		if !errors.Is(err, ErrSlotTaken) {
			u.log.Warnf("Failed to reschedule appointment %s: %+v", id, err)
		}
		return nil, err
	}

	u.cache.PublishAppointmentBooked(ctx, service.AgendaEvent{
		AppointmentID: id,
		ConsultorioID: appointment.ConsultorioID,
		Date:          req.Date,
		Time:          req.Time,
	})
	u.log.Infof("Appointment rescheduled: id=%s -> %s %s", id, req.Date, req.Time)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", id, err)
		appointment.Date = req.Date
		appointment.Time = req.Time
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) ListByDay(ctx context.Context, date string, consultorioID int) (*dto.AppointmentListResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.appointmentRepo.FindByFilter(u.db.WithContext(ctx), &entity.AppointmentFilter{
		Date:          date,
		ConsultorioID: consultorioID,
	})
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", date, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// validateBookableDay enforces the write-path invariants: no bookings on
// blocked days, closed weekdays, or past slots.
func (u *appointmentUsecase) validateBookableDay(ctx context.Context, date, timeOfDay string) error {
	slotAt, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeOfDay, time.Local)
	if err != nil {
		return ErrInvalidDateFormat
	}
	if slotAt.Before(u.now()) {
		return ErrAppointmentInPast
	}

	settings, err := u.settingsUsecase.Current(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		return ErrScheduleNotConfigured
	}
	if !settings.IsWorkDay(slotAt) {
		return ErrDayNotBookable
	}

	blocked, err := u.blockedUsecase.IsBlocked(ctx, date)
	if err != nil {
		return err
	}
	if blocked {
		return ErrDayNotBookable
	}
	return nil
}
