package service

import (
	"context"
	"errors"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"gorm.io/gorm"
)

type ScrapPriceService interface {
	List(ctx context.Context) ([]model.ScrapPrice, error)
	Get(ctx context.Context, id string) (*model.ScrapPrice, error)
	UpdatePrice(ctx context.Context, id string, pricePerKg float64) (*model.ScrapPrice, error)
}

type scrapPriceService struct {
	repo repository.ScrapPriceRepository
}

func NewScrapPriceService(repo repository.ScrapPriceRepository) ScrapPriceService {
	return &scrapPriceService{repo: repo}
}

func (s *scrapPriceService) List(ctx context.Context) ([]model.ScrapPrice, error) {
	return s.repo.List(ctx)
}

func (s *scrapPriceService) Get(ctx context.Context, id string) (*model.ScrapPrice, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *scrapPriceService) UpdatePrice(ctx context.Context, id string, pricePerKg float64) (*model.ScrapPrice, error) {
	if pricePerKg <= 0 {
		return nil, errors.New("price per kg must be positive")
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.PricePerKg = pricePerKg
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
