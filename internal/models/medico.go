package models

import "time"

type Medico struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome          string `gorm:"size:100;not null" json:"nome"`
	Email         string `gorm:"size:100;not null" json:"email"`
	Telefone      string `gorm:"size:20;not null" json:"telefone"`
	CRM           string `gorm:"size:20;not null" json:"crm"`
	Especialidade string `gorm:"size:50;not null" json:"especialidade"`
	Genero        string `gorm:"size:20" json:"genero"`
	Endereco      string `gorm:"size:255" json:"endereco"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
