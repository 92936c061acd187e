package models

import "time"

type Agendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Referência opcional; cliente_nome é denormalizado e pode divergir
	// do nome atual do cliente referenciado.
	ClienteID   *uint  `json:"cliente_id"`
	ClienteNome string `gorm:"size:100;not null" json:"cliente_nome"`

	Servico string `gorm:"size:100;not null" json:"servico"`

	// Data como texto YYYY-MM-DD, hora como HH:MM
	Data string `gorm:"size:10;not null;index" json:"data"`
	Hora string `gorm:"size:5;not null" json:"hora"`

	Status string `gorm:"size:20;default:'Pendente'" json:"status"`

	Preco       *float64 `json:"preco"`
	Observacoes string   `gorm:"size:255" json:"observacoes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
