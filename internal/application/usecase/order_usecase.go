package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// OrderUseCase casos de uso para pedidos.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// List lista todos los pedidos, ascendente por id.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// Create registra un nuevo pedido. StoreID no se valida contra las tiendas:
// la referencia es consultiva.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order := &entity.Order{
		Name:            in.Name,
		Date:            in.Date,
		Pickup:          in.Pickup,
		StoreID:         in.StoreID,
		ShippingAddress: in.ShippingAddress,
		City:            in.City,
		Total:           decimal.NewFromFloat(in.Total),
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		Name:            o.Name,
		Date:            o.Date,
		Pickup:          o.Pickup,
		StoreID:         o.StoreID,
		ShippingAddress: o.ShippingAddress,
		City:            o.City,
		Total:           o.Total.InexactFloat64(),
	}
}
