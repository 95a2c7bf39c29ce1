package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"clinic-agenda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis keys for the agenda read cache
	settingsCacheKey     = "agenda:settings"
	blockedDatesCacheKey = "agenda:blocked_dates"

	// Pub/sub channel for agenda events
	agendaEventsChannel = "agenda:events"

	// Timeout for individual Redis operations
	cacheOpTimeout = 5 * time.Second
)

// EventAppointmentBooked is published after a booking commits so that
// interested components can refresh their cached agenda state, instead of
// relying on an implicit global reload.
const EventAppointmentBooked = "appointment_booked"

// AgendaEvent is the pub/sub message payload.
type AgendaEvent struct {
	Type          string    `json:"type"`
	AppointmentID uuid.UUID `json:"appointment_id,omitempty"`
	ConsultorioID int       `json:"consultorio_id,omitempty"`
	Date          string    `json:"date,omitempty"`
	Time          string    `json:"time,omitempty"`
}

// AgendaCache is the read-through cache and event bus the usecases depend
// on. Implementations must degrade gracefully: a cache failure is never a
// request failure.
type AgendaCache interface {
	GetSettings(ctx context.Context) (*entity.AgendaSettings, bool)
	SetSettings(ctx context.Context, settings *entity.AgendaSettings)
	InvalidateSettings(ctx context.Context)
	GetBlockedDates(ctx context.Context) ([]entity.BlockedDate, bool)
	SetBlockedDates(ctx context.Context, blocked []entity.BlockedDate)
	InvalidateBlockedDates(ctx context.Context)
	PublishAppointmentBooked(ctx context.Context, event AgendaEvent)
}

// AgendaCacheService caches agenda settings and blocked dates in Redis and
// carries the appointment-booked event over pub/sub. The subscriber loop
// invalidates the cached agenda state whenever a booking lands, so every
// instance behind the load balancer re-reads fresh data on its next request.
type AgendaCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewAgendaCacheService creates the service and starts the pub/sub
// subscriber goroutine. Call Stop() during graceful shutdown.
func NewAgendaCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *AgendaCacheService {
	svc := &AgendaCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.subscribeLoop()

	return svc
}

// Stop gracefully shuts down the subscriber loop. Safe to call multiple times.
func (s *AgendaCacheService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("AgendaCacheService stopped")
	}
}

func (s *AgendaCacheService) GetSettings(ctx context.Context) (*entity.AgendaSettings, bool) {
	data, err := s.redisClient.Get(ctx, settingsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read settings cache: %+v", err)
		}
		return nil, false
	}

	var settings entity.AgendaSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		s.log.Warnf("Corrupt settings cache entry, dropping: %+v", err)
		s.InvalidateSettings(ctx)
		return nil, false
	}
	return &settings, true
}

func (s *AgendaCacheService) SetSettings(ctx context.Context, settings *entity.AgendaSettings) {
	data, err := json.Marshal(settings)
	if err != nil {
		s.log.Warnf("Failed to marshal settings for cache: %+v", err)
		return
	}
	if err := s.redisClient.Set(ctx, settingsCacheKey, data, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write settings cache: %+v", err)
	}
}

func (s *AgendaCacheService) InvalidateSettings(ctx context.Context) {
	if err := s.redisClient.Del(ctx, settingsCacheKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate settings cache: %+v", err)
	}
}

func (s *AgendaCacheService) GetBlockedDates(ctx context.Context) ([]entity.BlockedDate, bool) {
	data, err := s.redisClient.Get(ctx, blockedDatesCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read blocked-dates cache: %+v", err)
		}
		return nil, false
	}

	var blocked []entity.BlockedDate
	if err := json.Unmarshal(data, &blocked); err != nil {
		s.log.Warnf("Corrupt blocked-dates cache entry, dropping: %+v", err)
		s.InvalidateBlockedDates(ctx)
		return nil, false
	}
	return blocked, true
}

func (s *AgendaCacheService) SetBlockedDates(ctx context.Context, blocked []entity.BlockedDate) {
	data, err := json.Marshal(blocked)
	if err != nil {
		s.log.Warnf("Failed to marshal blocked dates for cache: %+v", err)
		return
	}
	if err := s.redisClient.Set(ctx, blockedDatesCacheKey, data, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write blocked-dates cache: %+v", err)
	}
}

func (s *AgendaCacheService) InvalidateBlockedDates(ctx context.Context) {
	if err := s.redisClient.Del(ctx, blockedDatesCacheKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate blocked-dates cache: %+v", err)
	}
}

// PublishAppointmentBooked broadcasts the booked event. Publish failures
// are logged and swallowed: the booking already committed, and the cache
// TTL bounds the staleness window.
func (s *AgendaCacheService) PublishAppointmentBooked(ctx context.Context, event AgendaEvent) {
	event.Type = EventAppointmentBooked
	data, err := json.Marshal(event)
	if err != nil {
		s.log.Warnf("Failed to marshal booked event: %+v", err)
		return
	}
	if err := s.redisClient.Publish(ctx, agendaEventsChannel, data).Err(); err != nil {
		s.log.Warnf("Failed to publish booked event (non-fatal): %+v", err)
	}
}

// WarmUp primes the cache before traffic is accepted. Errors are non-fatal;
// the first request will fall back to the database.
func (s *AgendaCacheService) WarmUp(ctx context.Context, settings *entity.AgendaSettings, blocked []entity.BlockedDate) error {
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	if settings != nil {
		s.SetSettings(ctx, settings)
	}
	s.SetBlockedDates(ctx, blocked)
	s.log.Infof("Agenda cache warmed: %d blocked ranges", len(blocked))
	return nil
}

func (s *AgendaCacheService) subscribeLoop() {
	defer s.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-s.stopChan
		cancel()
	}()

	pubsub := s.redisClient.Subscribe(ctx, agendaEventsChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Agenda event subscriber stopping")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.handleEvent(msg.Payload)
		}
	}
}

func (s *AgendaCacheService) handleEvent(payload string) {
	var event AgendaEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.log.Warnf("Ignoring malformed agenda event: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()

	switch event.Type {
	case EventAppointmentBooked:
		// A booking may follow an admin changing the agenda on another
		// instance; drop both cached views and let the next read repopulate.
		s.InvalidateSettings(ctx)
		s.InvalidateBlockedDates(ctx)
		s.log.Debugf("Invalidated agenda cache after booking %s on %s %s",
			event.AppointmentID, event.Date, event.Time)
	default:
		s.log.Debugf("Ignoring agenda event type %q", event.Type)
	}
}
