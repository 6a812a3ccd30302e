package service

import (
	"context"

	"dinehub/internal/domain"
	"dinehub/internal/repository"
)

// CatalogService owns menu items. Prices here are only advisory for orders:
// checkout snapshots them into order lines and never looks back.
type CatalogService struct {
	menu repository.MenuRepositoryInterface
}

func NewCatalogService(menu repository.MenuRepositoryInterface) *CatalogService {
	return &CatalogService{menu: menu}
}

func (s *CatalogService) PublicMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.ListAvailable(ctx)
}

func (s *CatalogService) FullMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.ListAll(ctx)
}

type AddMenuItemRequest struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
}

func (s *CatalogService) AddItem(ctx context.Context, req AddMenuItemRequest) (int64, error) {
	if req.Name == "" {
		return 0, domain.Validationf("item name is required")
	}
	if req.UnitPrice <= 0 {
		return 0, domain.Validationf("unit price must be positive")
	}
	return s.menu.Create(ctx, domain.MenuItem{Name: req.Name, UnitPrice: req.UnitPrice, Available: true})
}

func (s *CatalogService) SetAvailability(ctx context.Context, id int64, available bool) error {
	ok, err := s.menu.SetAvailability(ctx, id, available)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *CatalogService) DeleteItem(ctx context.Context, id int64) error {
	ok, err := s.menu.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
