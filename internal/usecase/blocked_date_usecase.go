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
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
	ErrInvalidBlockType    = errors.New("block type must be one of: vacation, congress, legal, other")
	ErrBlockedDateNotFound = errors.New("blocked date range not found")
)

type BlockedDateUsecase interface {
	List(ctx context.Context) (*dto.BlockedDateListResponse, error)
	Create(ctx context.Context, req *dto.CreateBlockedDateRequest) (*dto.BlockedDateResponse, error)
	Delete(ctx context.Context, id int) error
	// IsBlocked reports whether the ISO date falls inside any blocked range,
	// inclusive on both ends. Served cache-first.
	IsBlocked(ctx context.Context, date string) (bool, error)
}

type blockedDateUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	blockedRepo repository.BlockedDateRepository
	cache       service.AgendaCache
}

func NewBlockedDateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	blockedRepo repository.BlockedDateRepository,
	cache service.AgendaCache,
) BlockedDateUsecase {
	return &blockedDateUsecase{
		db:          db,
		log:         log,
		blockedRepo: blockedRepo,
		cache:       cache,
	}
}

func (u *blockedDateUsecase) List(ctx context.Context) (*dto.BlockedDateListResponse, error) {
	blocked, err := u.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.BlockedDateListResponse{
		BlockedDates: converter.BlockedDatesToResponses(blocked),
		Total:        len(blocked),
	}, nil
}

func (u *blockedDateUsecase) Create(ctx context.Context, req *dto.CreateBlockedDateRequest) (*dto.BlockedDateResponse, error) {
	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if req.EndDate < req.StartDate {
		return nil, ErrInvalidDateRange
	}

	blockType := entity.BlockType(req.BlockType)
	if !blockType.IsValid() {
		return nil, ErrInvalidBlockType
	}

	blocked := &entity.BlockedDate{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		BlockType: blockType,
	}

	if err := u.blockedRepo.Create(u.db.WithContext(ctx), blocked); err != nil {
		u.log.Warnf("Failed to create blocked date range: %+v", err)
		return nil, err
	}

	u.cache.InvalidateBlockedDates(ctx)
	u.log.Infof("Blocked date range created: id=%d %s..%s (%s)",
		blocked.ID, blocked.StartDate, blocked.EndDate, blocked.BlockType)

	return converter.BlockedDateToResponse(blocked), nil
}

func (u *blockedDateUsecase) Delete(ctx context.Context, id int) error {
	affected, err := u.blockedRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete blocked date %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrBlockedDateNotFound
	}

	u.cache.InvalidateBlockedDates(ctx)
	u.log.Infof("Blocked date range deleted: id=%d", id)
	return nil
}

func (u *blockedDateUsecase) IsBlocked(ctx context.Context, date string) (bool, error) {
	blocked, err := u.loadAll(ctx)
	if err != nil {
		return false, err
	}
	return entity.AnyCovers(blocked, date), nil
}

func (u *blockedDateUsecase) loadAll(ctx context.Context) ([]entity.BlockedDate, error) {
	if cached, ok := u.cache.GetBlockedDates(ctx); ok {
		return cached, nil
	}

	blocked, err := u.blockedRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load blocked dates: %+v", err)
		return nil, err
	}
	u.cache.SetBlockedDates(ctx, blocked)
	return blocked, nil
}
