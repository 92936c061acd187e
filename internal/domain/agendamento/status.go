package agendamento

// Status do agendamento. O campo é texto livre no banco (o intake
// externo pode mandar valores próprios); estas são as constantes que o
// sistema conhece.
type Status string

const (
	StatusPendente   Status = "Pendente"
	StatusConfirmado Status = "Confirmado"
	StatusCancelado  Status = "Cancelado"
)

// DefaultStatus é aplicado quando o create não informa status.
func DefaultStatus() Status {
	return StatusPendente
}
