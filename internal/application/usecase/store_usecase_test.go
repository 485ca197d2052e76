package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

type fakeStoreRepo struct {
	seq    int64
	stores []*entity.Store
}

func (f *fakeStoreRepo) List() ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(f.stores))
	for _, s := range f.stores {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStoreRepo) Create(store *entity.Store) error {
	f.seq++
	store.ID = f.seq
	cp := *store
	f.stores = append(f.stores, &cp)
	return nil
}

func TestStoreUseCase_CreateYList(t *testing.T) {
	uc := usecase.NewStoreUseCase(&fakeStoreRepo{})

	created, err := uc.Create(dto.CreateStoreRequest{
		Name:         "Sucursal Centro",
		Address:      "Calle 10 #5-20",
		City:         "Bogotá",
		OpeningHours: "8:00-18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sucursal Centro", list[0].Name)
	assert.Equal(t, "8:00-18:00", list[0].OpeningHours)
}
