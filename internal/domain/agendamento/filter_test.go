package agendamento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterConditions(t *testing.T) {
	tests := []struct {
		name       string
		filter     Filter
		wantClause string
		wantArgs   []any
	}{
		{
			name:       "empty filter",
			filter:     Filter{},
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "data only",
			filter:     Filter{Data: "2024-06-01"},
			wantClause: "data = ?",
			wantArgs:   []any{"2024-06-01"},
		},
		{
			name:       "status only",
			filter:     Filter{Status: "Confirmado"},
			wantClause: "status = ?",
			wantArgs:   []any{"Confirmado"},
		},
		{
			name:       "data and status joined by AND, data first",
			filter:     Filter{Data: "2024-06-01", Status: "Pendente"},
			wantClause: "data = ? AND status = ?",
			wantArgs:   []any{"2024-06-01", "Pendente"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.Conditions()
			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Data: "2024-06-01"}.IsZero())
	assert.False(t, Filter{Status: "Confirmado"}.IsZero())
}
