package models

import "time"

type Paciente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome           string    `gorm:"size:100;not null" json:"nome"`
	Email          string    `gorm:"size:100;not null" json:"email"`
	Telefone       string    `gorm:"size:20;not null" json:"telefone"`
	DataNascimento time.Time `json:"dataNascimento"`
	Genero         string    `gorm:"size:20" json:"genero"`
	Endereco       string    `gorm:"size:255" json:"endereco"`

	ContatoEmergencia   string `gorm:"size:100" json:"contatoEmergencia"`
	TelefoneEmergencia  string `gorm:"size:20" json:"telefoneEmergencia"`
	PlanoSaude          string `gorm:"size:100" json:"planoSaude"`
	CartaoPlano         string `gorm:"size:50" json:"cartaoPlano"`
	Alergias            string `gorm:"type:text" json:"alergias"`
	MedicacoesContinuas string `gorm:"type:text" json:"medicacoesContinuas"`
	HistoricoMedico     string `gorm:"type:text" json:"historicoMedico"`
	HistoricoFamiliar   string `gorm:"type:text" json:"historicoFamiliar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
