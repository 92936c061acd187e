package agendamento

import "strings"

// Filter são os filtros opcionais da listagem. Campo vazio = sem
// filtro; todos são igualdade exata.
type Filter struct {
	Data   string
	Status string
}

// Conditions monta a cláusula WHERE parametrizada e a lista de
// argumentos na mesma ordem. Filtro vazio devolve cláusula vazia.
// Valores do caller nunca entram no texto da query.
func (f Filter) Conditions() (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.Data != "" {
		conds = append(conds, "data = ?")
		args = append(args, f.Data)
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}

	return strings.Join(conds, " AND "), args
}

// IsZero indica ausência de filtros (listagem completa).
func (f Filter) IsZero() bool {
	return f.Data == "" && f.Status == ""
}
