package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// DetailTxRunner puerto para ejecutar una operación con un DetailRepository
// atado a una transacción (lote todo-o-nada).
type DetailTxRunner interface {
	RunDetails(ctx context.Context, fn func(repo repository.DetailRepository) error) error
}

// DetailUseCase listado e inserción por lote de los renglones de un pedido.
type DetailUseCase struct {
	repo   repository.DetailRepository
	runner DetailTxRunner
}

// NewDetailUseCase construye el caso de uso. repo se usa para lecturas sobre
// el pool; runner para la inserción transaccional del lote.
func NewDetailUseCase(repo repository.DetailRepository, runner DetailTxRunner) *DetailUseCase {
	return &DetailUseCase{repo: repo, runner: runner}
}

// List lista todos los renglones, ascendente por id.
func (uc *DetailUseCase) List() ([]dto.DetailResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DetailResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDetailResponse(d))
	}
	return items, nil
}

// CreateBatch inserta el lote completo dentro de una transacción: se confirman
// todos los renglones o ninguno. Un lote vacío es un no-op válido y devuelve
// una secuencia vacía.
func (uc *DetailUseCase) CreateBatch(ctx context.Context, in []dto.CreateDetailRequest) ([]dto.DetailResponse, error) {
	items := make([]dto.DetailResponse, 0, len(in))
	if len(in) == 0 {
		return items, nil
	}

	details := make([]*entity.Detail, 0, len(in))
	for _, d := range in {
		details = append(details, &entity.Detail{
			OrderID:   d.OrderID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			Subtotal:  decimal.NewFromFloat(d.Subtotal),
		})
	}

	err := uc.runner.RunDetails(ctx, func(repo repository.DetailRepository) error {
		return repo.CreateBatch(details)
	})
	if err != nil {
		return nil, err
	}

	for _, d := range details {
		items = append(items, *toDetailResponse(d))
	}
	return items, nil
}

func toDetailResponse(d *entity.Detail) *dto.DetailResponse {
	if d == nil {
		return nil
	}
	return &dto.DetailResponse{
		ID:        d.ID,
		OrderID:   d.OrderID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		Subtotal:  d.Subtotal.InexactFloat64(),
	}
}
