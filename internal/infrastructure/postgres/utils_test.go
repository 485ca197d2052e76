package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDataViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"clase 22: representación de texto inválida", &pgconn.PgError{Code: "22P02"}, true},
		{"clase 23: violación de unicidad", &pgconn.PgError{Code: "23505"}, true},
		{"clase 23: not null", &pgconn.PgError{Code: "23502"}, true},
		{"error de conexión no es rechazo de datos", &pgconn.PgError{Code: "08006"}, false},
		{"error genérico", errors.New("se cayó la red"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isDataViolation(tc.err))
		})
	}
}

// errors.As debe encontrar el PgError aunque venga envuelto con %w.
func TestIsDataViolation_ErrorEnvuelto(t *testing.T) {
	wrapped := fmt.Errorf("insert detail 2: %w", &pgconn.PgError{Code: "22P02"})
	assert.True(t, isDataViolation(wrapped))
}
