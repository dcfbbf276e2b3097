package ficha

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ceplan/fichas/internal/core/domain"
)

func TestBuildCharts(t *testing.T) {
	tests := []struct {
		name    string
		removed []domain.RemovedItem
		want    []domain.ChartEntry
	}{
		{
			name: "figure with note",
			removed: []domain.RemovedItem{
				{Position: 2, Line: "Figura 1. Mundo: algo."},
				{Position: 3, Line: "Nota. Fuente X."},
			},
			want: []domain.ChartEntry{
				{Order: 2, Numeration: "Figura 1.", Title: "Mundo: algo.", Note: "Nota. Fuente X."},
			},
		},
		{
			name: "table without title separator",
			removed: []domain.RemovedItem{
				{Position: 0, Line: "Tabla 4"},
				{Position: 0, Line: "Nota: elaboración propia"},
			},
			want: []domain.ChartEntry{
				{Order: 0, Numeration: "Tabla 4.", Title: "", Note: "Nota: elaboración propia"},
			},
		},
		{
			name: "header replaced before note",
			removed: []domain.RemovedItem{
				{Position: -1, Line: "Figura 1. A."},
				{Position: -1, Line: "Figura 2. B."},
				{Position: -1, Line: "Nota. N"},
			},
			want: []domain.ChartEntry{
				{Order: -1, Numeration: "Figura 2.", Title: "B.", Note: "Nota. N"},
			},
		},
		{
			name: "orphan note",
			removed: []domain.RemovedItem{
				{Position: 0, Line: "Nota. Sin figura."},
			},
			want: nil,
		},
		{
			name: "second note after emit is orphan",
			removed: []domain.RemovedItem{
				{Position: 0, Line: "Figura 1. A."},
				{Position: 0, Line: "Nota. uno"},
				{Position: 1, Line: "Nota. dos"},
			},
			want: []domain.ChartEntry{
				{Order: 0, Numeration: "Figura 1.", Title: "A.", Note: "Nota. uno"},
			},
		},
		{
			name: "trailing header dropped",
			removed: []domain.RemovedItem{
				{Position: 5, Line: "Figura 9. Final."},
			},
			want: nil,
		},
		{
			name: "unrelated lines ignored",
			removed: []domain.RemovedItem{
				{Position: 0, Line: "Noticias."},
				{Position: 0, Line: "TABLA 1. mayúsculas"},
				{Position: 0, Line: "nota en minúscula"},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildCharts(tt.removed))
		})
	}
}
