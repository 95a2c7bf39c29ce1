package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-agenda/internal/converter"
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
	"clinic-agenda/internal/domain/repository"
	"clinic-agenda/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotConfigured = errors.New("agenda schedule has not been configured")
	ErrInvalidTimeFormat     = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange      = errors.New("end time must be after start time")
	ErrIntervalMismatch      = errors.New("slot interval must evenly divide the schedule span")
	ErrInvalidWorkDay        = errors.New("work days must be Spanish day names, Lunes through Domingo")
)

type AgendaSettingsUsecase interface {
	Get(ctx context.Context) (*dto.AgendaSettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateAgendaSettingsRequest) (*dto.AgendaSettingsResponse, error)
	// Current returns the raw settings entity for internal callers, or
	// (nil, nil) before the clinic has been configured. Served cache-first.
	Current(ctx context.Context) (*entity.AgendaSettings, error)
}

type agendaSettingsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingsRepo repository.AgendaSettingsRepository
	cache        service.AgendaCache
}

func NewAgendaSettingsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingsRepo repository.AgendaSettingsRepository,
	cache service.AgendaCache,
) AgendaSettingsUsecase {
	return &agendaSettingsUsecase{
		db:           db,
		log:          log,
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

func (u *agendaSettingsUsecase) Get(ctx context.Context) (*dto.AgendaSettingsResponse, error) {
	settings, err := u.Current(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrScheduleNotConfigured
	}
	return converter.AgendaSettingsToResponse(settings), nil
}

func (u *agendaSettingsUsecase) Current(ctx context.Context) (*entity.AgendaSettings, error) {
	if cached, ok := u.cache.GetSettings(ctx); ok {
		return cached, nil
	}

	settings, err := u.settingsRepo.Find(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load agenda settings: %+v", err)
		return nil, err
	}
	if settings != nil {
		u.cache.SetSettings(ctx, settings)
	}
	return settings, nil
}

// Update fully replaces the stored configuration after semantic validation.
func (u *agendaSettingsUsecase) Update(ctx context.Context, req *dto.UpdateAgendaSettingsRequest) (*dto.AgendaSettingsResponse, error) {
	if err := validateScheduleConfig(req); err != nil {
		return nil, err
	}

	settings := &entity.AgendaSettings{
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SlotIntervalMinutes: req.SlotIntervalMinutes,
		WorkDays:            entity.WorkDays(req.WorkDays),
	}

	if err := u.settingsRepo.Save(u.db.WithContext(ctx), settings); err != nil {
		u.log.Warnf("Failed to save agenda settings: %+v", err)
		return nil, err
	}

	u.cache.SetSettings(ctx, settings)
	u.log.Infof("Agenda settings updated: %s-%s every %dmin, %d work days",
		settings.StartTime, settings.EndTime, settings.SlotIntervalMinutes, len(settings.WorkDays))

	return converter.AgendaSettingsToResponse(settings), nil
}

func validateScheduleConfig(req *dto.UpdateAgendaSettingsRequest) error {
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", req.EndTime); err != nil {
		return ErrInvalidTimeFormat
	}

	start, _ := entity.MinutesOfDay(req.StartTime)
	end, _ := entity.MinutesOfDay(req.EndTime)
	if end <= start {
		return ErrInvalidTimeRange
	}
	if req.SlotIntervalMinutes <= 0 || (end-start)%req.SlotIntervalMinutes != 0 {
		return ErrIntervalMismatch
	}

	for _, day := range req.WorkDays {
		if !entity.IsValidWeekdayName(day) {
			return ErrInvalidWorkDay
		}
	}
	return nil
}
