package usecase

import (
	"context"
	"time"

	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Availability checks are independent reads; fan them out but keep the
// result list ordered by slot index.
const maxConcurrentChecks = 4

type SlotUsecase interface {
	// GenerateSlots produces the candidate slots for one consultorio on one
	// date, strictly ascending by time. An empty list means the day is
	// entirely closed: unconfigured schedule, non-work day, blocked date,
	// or inactive room.
	GenerateSlots(ctx context.Context, date string, consultorioID int) (*dto.SlotListResponse, error)
}

type slotUsecase struct {
	log                *logrus.Logger
	settingsUsecase    AgendaSettingsUsecase
	blockedUsecase     BlockedDateUsecase
	consultorioUsecase ConsultorioUsecase
	appointmentUsecase AppointmentUsecase

	// now is injected for tests.
	now func() time.Time
}

func NewSlotUsecase(
	log *logrus.Logger,
	settingsUsecase AgendaSettingsUsecase,
	blockedUsecase BlockedDateUsecase,
	consultorioUsecase ConsultorioUsecase,
	appointmentUsecase AppointmentUsecase,
) SlotUsecase {
	return &slotUsecase{
		log:                log,
		settingsUsecase:    settingsUsecase,
		blockedUsecase:     blockedUsecase,
		consultorioUsecase: consultorioUsecase,
		appointmentUsecase: appointmentUsecase,
		now:                time.Now,
	}
}

func (u *slotUsecase) GenerateSlots(ctx context.Context, date string, consultorioID int) (*dto.SlotListResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	empty := &dto.SlotListResponse{
		Date:          date,
		ConsultorioID: consultorioID,
		Slots:         []dto.TimeSlotResponse{},
		Total:         0,
	}

	settings, err := u.settingsUsecase.Current(ctx)
	if err != nil {
		// Fail closed: without the schedule nothing can be offered.
		u.log.Warnf("Slot generation degraded, settings unavailable: %+v", err)
		return empty, nil
	}
	if settings == nil {
		return empty, nil
	}

	if !settings.IsWorkDay(day) {
		return empty, nil
	}

	blocked, err := u.blockedUsecase.IsBlocked(ctx, date)
	if err != nil {
		u.log.Warnf("Slot generation degraded, blocked-date check failed: %+v", err)
		return empty, nil
	}
	if blocked {
		return empty, nil
	}

	consultorio, err := u.consultorioUsecase.Get(ctx, consultorioID)
	if err != nil {
		u.log.Warnf("Slot generation degraded, consultorio lookup failed: %+v", err)
		return empty, nil
	}
	if consultorio == nil || !consultorio.Active {
		return empty, nil
	}

	times := settings.SlotTimes()
	slots := make([]dto.TimeSlotResponse, len(times))
	now := u.now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)

	for i, t := range times {
		slotAt, err := time.ParseInLocation("2006-01-02 15:04", date+" "+t, time.Local)
		if err != nil || slotAt.Before(now) {
			// Past times can never be booked; skip the availability call.
			slots[i] = dto.TimeSlotResponse{Time: t, Available: false, Reason: entity.SlotReasonPast}
			continue
		}

		i, t := i, t
		g.Go(func() error {
			availability, err := u.appointmentUsecase.CheckAvailability(
				gctx, date, t, settings.SlotIntervalMinutes, consultorioID)
			if err != nil {
				// A failed check must never present a slot as bookable.
				u.log.Warnf("Availability check failed for %s %s: %+v", date, t, err)
				slots[i] = dto.TimeSlotResponse{Time: t, Available: false, Reason: entity.SlotReasonCheckError}
				return nil
			}
			slots[i] = dto.TimeSlotResponse{Time: t, Available: availability.Available, Reason: availability.Reason}
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes completion.
	_ = g.Wait()

	return &dto.SlotListResponse{
		Date:          date,
		ConsultorioID: consultorioID,
		Slots:         slots,
		Total:         len(slots),
	}, nil
}
