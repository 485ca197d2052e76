package usecase

import (
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// StoreUseCase casos de uso para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// List lista todas las tiendas, ascendente por id.
func (uc *StoreUseCase) List() ([]dto.StoreResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return items, nil
}

// Create registra una nueva tienda.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	store := &entity.Store{
		Name:         in.Name,
		Address:      in.Address,
		City:         in.City,
		OpeningHours: in.OpeningHours,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:           s.ID,
		Name:         s.Name,
		Address:      s.Address,
		City:         s.City,
		OpeningHours: s.OpeningHours,
	}
}
