package usecase

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
	"clinic-agenda/internal/repository"
	"clinic-agenda/internal/service"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// noopCache satisfies service.AgendaCache without Redis; every read is a
// miss, so the usecases always hit the database.
type noopCache struct{}

func (noopCache) GetSettings(ctx context.Context) (*entity.AgendaSettings, bool) { return nil, false }
func (noopCache) SetSettings(ctx context.Context, settings *entity.AgendaSettings) {}
func (noopCache) InvalidateSettings(ctx context.Context)                           {}
func (noopCache) GetBlockedDates(ctx context.Context) ([]entity.BlockedDate, bool) {
	return nil, false
}
func (noopCache) SetBlockedDates(ctx context.Context, blocked []entity.BlockedDate)  {}
func (noopCache) InvalidateBlockedDates(ctx context.Context)                         {}
func (noopCache) PublishAppointmentBooked(ctx context.Context, event service.AgendaEvent) {}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`)
	db.Exec(`DO $$ BEGIN
		CREATE TYPE appointment_status AS ENUM ('scheduled', 'completed', 'cancelled');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`)

	if err := db.AutoMigrate(
		&entity.AgendaSettings{},
		&entity.BlockedDate{},
		&entity.Consultorio{},
		&entity.Appointment{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot_unique
		ON appointments (consultorio_id, date, time) WHERE status <> 'cancelled'`)

	db.Exec(`TRUNCATE appointments, blocked_dates, consultorios, agenda_settings CASCADE`)

	return db
}

type integrationEnv struct {
	db           *gorm.DB
	appointments AppointmentUsecase
	blocked      BlockedDateUsecase
}

func setupIntegrationEnv(t *testing.T) *integrationEnv {
	t.Helper()

	db := setupIntegrationDB(t)
	log := testLogger()
	cache := noopCache{}

	settingsRepo := repository.NewAgendaSettingsRepository()
	blockedRepo := repository.NewBlockedDateRepository()
	consultorioRepo := repository.NewConsultorioRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	settingsUC := NewAgendaSettingsUsecase(db, log, settingsRepo, cache)
	blockedUC := NewBlockedDateUsecase(db, log, blockedRepo, cache)
	appointmentUC := NewAppointmentUsecase(db, log, appointmentRepo, consultorioRepo, settingsUC, blockedUC, cache)

	// Open every day so any future date is bookable.
	if _, err := settingsUC.Update(context.Background(), &dto.UpdateAgendaSettingsRequest{
		StartTime:           "08:00",
		EndTime:             "18:00",
		SlotIntervalMinutes: 30,
		WorkDays: []string{
			entity.DayLunes, entity.DayMartes, entity.DayMiercoles, entity.DayJueves,
			entity.DayViernes, entity.DaySabado, entity.DayDomingo,
		},
	}); err != nil {
		t.Fatalf("failed to seed agenda settings: %v", err)
	}

	if err := consultorioRepo.UpsertBatch(db, []entity.Consultorio{
		{ID: 1, Name: "Consultorio 1", Active: true},
	}); err != nil {
		t.Fatalf("failed to seed consultorio: %v", err)
	}

	return &integrationEnv{db: db, appointments: appointmentUC, blocked: blockedUC}
}

func futureDate(daysAhead int) string {
	return time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func TestCreateSecureConcurrentConflict(t *testing.T) {
	env := setupIntegrationEnv(t)
	date := futureDate(14)

	const racers = 2
	var wg sync.WaitGroup
	results := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = env.appointments.CreateSecure(context.Background(), &dto.CreateAppointmentRequest{
				PatientID:     uuid.New(),
				ConsultorioID: 1,
				Date:          date,
				Time:          "09:00",
			})
		}(i)
	}
	wg.Wait()

	var booked, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			booked++
		case errors.Is(err, ErrSlotTaken):
			rejected++
		default:
			t.Fatalf("unexpected booking error: %v", err)
		}
	}
	if booked != 1 || rejected != 1 {
		t.Errorf("expected exactly one booking to win, got booked=%d rejected=%d", booked, rejected)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	env := setupIntegrationEnv(t)
	date := futureDate(21)
	ctx := context.Background()

	first, err := env.appointments.CreateSecure(ctx, &dto.CreateAppointmentRequest{
		PatientID:     uuid.New(),
		ConsultorioID: 1,
		Date:          date,
		Time:          "10:00",
	})
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Slot is held.
	if _, err := env.appointments.CreateSecure(ctx, &dto.CreateAppointmentRequest{
		PatientID:     uuid.New(),
		ConsultorioID: 1,
		Date:          date,
		Time:          "10:00",
	}); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken on double booking, got %v", err)
	}

	if err := env.appointments.Cancel(ctx, first.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := env.appointments.Cancel(ctx, first.ID); !errors.Is(err, ErrAppointmentAlreadyCancelled) {
		t.Fatalf("expected ErrAppointmentAlreadyCancelled, got %v", err)
	}

	// Cancelled appointments release their slot.
	if _, err := env.appointments.CreateSecure(ctx, &dto.CreateAppointmentRequest{
		PatientID:     uuid.New(),
		ConsultorioID: 1,
		Date:          date,
		Time:          "10:00",
	}); err != nil {
		t.Fatalf("rebooking a cancelled slot failed: %v", err)
	}
}

func TestCreateSecureOnBlockedDay(t *testing.T) {
	env := setupIntegrationEnv(t)
	date := futureDate(28)
	ctx := context.Background()

	if _, err := env.blocked.Create(ctx, &dto.CreateBlockedDateRequest{
		StartDate: date,
		EndDate:   date,
		Reason:    "Congreso anual",
		BlockType: string(entity.BlockTypeCongress),
	}); err != nil {
		t.Fatalf("failed to create blocked date: %v", err)
	}

	if _, err := env.appointments.CreateSecure(ctx, &dto.CreateAppointmentRequest{
		PatientID:     uuid.New(),
		ConsultorioID: 1,
		Date:          date,
		Time:          "09:00",
	}); !errors.Is(err, ErrDayNotBookable) {
		t.Fatalf("expected ErrDayNotBookable, got %v", err)
	}
}

func TestBlockedDateDeleteMissing(t *testing.T) {
	env := setupIntegrationEnv(t)

	if err := env.blocked.Delete(context.Background(), 999999); !errors.Is(err, ErrBlockedDateNotFound) {
		t.Fatalf("expected ErrBlockedDateNotFound, got %v", err)
	}
}

func TestRescheduleConflict(t *testing.T) {
	env := setupIntegrationEnv(t)
	date := futureDate(35)
	ctx := context.Background()

	if _, err := env.appointments.CreateSecure(ctx, &dto.CreateAppointmentRequest{
		PatientID:     uuid.New(),
		ConsultorioID: 1,
		Date:          date,
		Time:          "11:00",
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	second, err := env.appointments.CreateSecure(ctx, &dto.CreateAppointmentRequest{
		PatientID:     uuid.New(),
		ConsultorioID: 1,
		Date:          date,
		Time:          "12:00",
	})
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	if _, err := env.appointments.Reschedule(ctx, second.ID, &dto.RescheduleAppointmentRequest{
		Date: date,
		Time: "11:00",
	}); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken on reschedule into a held slot, got %v", err)
	}

	moved, err := env.appointments.Reschedule(ctx, second.ID, &dto.RescheduleAppointmentRequest{
		Date: date,
		Time: "13:00",
	})
	if err != nil {
		t.Fatalf("reschedule into a free slot failed: %v", err)
	}
	if moved.Time != "13:00" {
		t.Errorf("rescheduled time = %q, want %q", moved.Time, "13:00")
	}
}
