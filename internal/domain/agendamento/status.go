package agendamento

// ===============================
// Agendamento Status
// ===============================

type Status string

const (
	StatusAgendado  Status = "Agendado"
	StatusConcluido Status = "Concluído"
	StatusCancelado Status = "Cancelado"
)

var allStatuses = []Status{
	StatusAgendado,
	StatusConcluido,
	StatusCancelado,
}

func StatusValido(s string) bool {
	for _, st := range allStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

func Statuses() []string {
	out := make([]string, 0, len(allStatuses))
	for _, st := range allStatuses {
		out = append(out, string(st))
	}
	return out
}
