package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos: listado, consulta, alta y
// descuento de stock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista todos los productos, ascendente por id.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por id. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create crea un nuevo producto; el id lo asigna la base.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        in.Name,
		Price:       decimal.NewFromFloat(in.Price),
		Description: in.Description,
		Stock:       in.Stock,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DecrementStock descuenta quantity del stock del producto. Devuelve false si
// el id no existe. La política heredada solo exige que la fila exista: el
// stock puede quedar negativo.
func (uc *ProductUseCase) DecrementStock(id int64, quantity int) (bool, error) {
	return uc.repo.DecrementStock(id, quantity)
}

// toProductResponse proyecta la entidad al contrato JSON. La coerción
// NUMERIC -> float64 ocurre una sola vez, aquí en la frontera.
func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.InexactFloat64(),
		Description: p.Description,
		Stock:       p.Stock,
	}
}
