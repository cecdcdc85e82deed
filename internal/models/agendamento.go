package models

import "time"

type Agendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DataHora    time.Time `gorm:"not null" json:"dataHora"`
	Observacoes string    `gorm:"size:255" json:"observacoes"`
	Status      string    `gorm:"size:20;default:'Agendado'" json:"status"`

	PacienteID uint     `gorm:"not null" json:"pacienteId"`
	Paciente   Paciente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"paciente"`

	MedicoID uint   `gorm:"not null" json:"medicoId"`
	Medico   Medico `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"medico"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
