package dto

type ResumoMensalDTO struct {
	Mes        string `json:"mes"`
	Total      int    `json:"total"`
	Agendados  int    `json:"agendados"`
	Concluidos int    `json:"concluidos"`
	Cancelados int    `json:"cancelados"`
}
