package usecase

import (
	"context"
	"errors"

	"clinic-agenda/internal/converter"
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
	"clinic-agenda/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConsultorioNotFound = errors.New("consultorio not found")
	ErrConsultorioInactive = errors.New("consultorio is not active")
)

type ConsultorioUsecase interface {
	List(ctx context.Context) (*dto.ConsultorioListResponse, error)
	UpdateBatch(ctx context.Context, req *dto.UpdateConsultoriosRequest) (*dto.ConsultorioListResponse, error)
	// Get returns (nil, nil) for an unknown consultorio.
	Get(ctx context.Context, id int) (*entity.Consultorio, error)
}

type consultorioUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	consultorioRepo repository.ConsultorioRepository
}

func NewConsultorioUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultorioRepo repository.ConsultorioRepository,
) ConsultorioUsecase {
	return &consultorioUsecase{
		db:              db,
		log:             log,
		consultorioRepo: consultorioRepo,
	}
}

func (u *consultorioUsecase) List(ctx context.Context) (*dto.ConsultorioListResponse, error) {
	consultorios, err := u.consultorioRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list consultorios: %+v", err)
		return nil, err
	}
	return &dto.ConsultorioListResponse{
		Consultorios: converter.ConsultoriosToResponses(consultorios),
		Total:        len(consultorios),
	}, nil
}

// UpdateBatch upserts the whole room catalog in one transaction, matching
// the all-at-once save the admin screen performs.
func (u *consultorioUsecase) UpdateBatch(ctx context.Context, req *dto.UpdateConsultoriosRequest) (*dto.ConsultorioListResponse, error) {
	consultorios := make([]entity.Consultorio, len(req.Consultorios))
	for i, c := range req.Consultorios {
		consultorios[i] = entity.Consultorio{
			ID:     c.ID,
			Name:   c.Name,
			Active: c.Active,
			Fee:    c.Fee,
		}
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return u.consultorioRepo.UpsertBatch(tx, consultorios)
	})
	if err != nil {
		u.log.Warnf("Failed to upsert consultorios: %+v", err)
		return nil, err
	}

	u.log.Infof("Consultorio catalog updated: %d rooms", len(consultorios))
	return u.List(ctx)
}

func (u *consultorioUsecase) Get(ctx context.Context, id int) (*entity.Consultorio, error) {
	return u.consultorioRepo.FindByID(u.db.WithContext(ctx), id)
}
