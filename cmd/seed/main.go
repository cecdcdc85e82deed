package main

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PedroPossari/Vitalis/internal/config"
	dbpkg "github.com/PedroPossari/Vitalis/internal/db"
	domainAgendamento "github.com/PedroPossari/Vitalis/internal/domain/agendamento"
	domainMedico "github.com/PedroPossari/Vitalis/internal/domain/medico"
	"github.com/PedroPossari/Vitalis/internal/models"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedAdmin(db); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	medicos, err := seedMedicos(db, 15)
	if err != nil {
		log.Fatalf("seed medicos: %v", err)
	}

	pacientes, err := seedPacientes(db, 60)
	if err != nil {
		log.Fatalf("seed pacientes: %v", err)
	}

	if err := seedAgendamentos(db, pacientes, medicos, 200); err != nil {
		log.Fatalf("seed agendamentos: %v", err)
	}

	log.Println("seed complete")
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Usuario{}).
		Where("email = ?", "admin@vitalis.com").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already seeded")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Usuario{
		Nome:      "Administrador",
		Email:     "admin@vitalis.com",
		SenhaHash: string(hashed),
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("admin seeded (admin@vitalis.com / admin123)")
	return nil
}

func seedMedicos(db *gorm.DB, count int) ([]models.Medico, error) {
	log.Printf("seeding %d medicos", count)

	medicos := make([]models.Medico, 0, count)
	for i := 0; i < count; i++ {
		m := models.Medico{
			Nome:          "Dr. " + gofakeit.Name(),
			Email:         gofakeit.Email(),
			Telefone:      gofakeit.Phone(),
			CRM:           fmt.Sprintf("CRM/SP %06d", gofakeit.Number(100000, 999999)),
			Especialidade: domainMedico.Especialidades[gofakeit.Number(0, len(domainMedico.Especialidades)-1)],
			Genero:        genero(),
			Endereco:      gofakeit.Street() + ", " + gofakeit.City(),
		}

		if err := db.Create(&m).Error; err != nil {
			return nil, err
		}
		medicos = append(medicos, m)
	}

	log.Println("medicos seeded")
	return medicos, nil
}

func seedPacientes(db *gorm.DB, count int) ([]models.Paciente, error) {
	log.Printf("seeding %d pacientes", count)

	planos := []string{"Unimed", "Amil", "Bradesco Saúde", "SulAmérica", ""}

	pacientes := make([]models.Paciente, 0, count)
	for i := 0; i < count; i++ {
		p := models.Paciente{
			Nome:           gofakeit.Name(),
			Email:          gofakeit.Email(),
			Telefone:       gofakeit.Phone(),
			DataNascimento: gofakeit.DateRange(
				time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC),
			),
			Genero:   genero(),
			Endereco: gofakeit.Street() + ", " + gofakeit.City(),

			ContatoEmergencia:  gofakeit.Name(),
			TelefoneEmergencia: gofakeit.Phone(),
			PlanoSaude:         planos[gofakeit.Number(0, len(planos)-1)],
			CartaoPlano:        fmt.Sprintf("%012d", gofakeit.Number(1, 999999999)),
		}

		if err := db.Create(&p).Error; err != nil {
			return nil, err
		}
		pacientes = append(pacientes, p)
	}

	log.Println("pacientes seeded")
	return pacientes, nil
}

func seedAgendamentos(db *gorm.DB, pacientes []models.Paciente, medicos []models.Medico, count int) error {
	log.Printf("seeding %d agendamentos", count)

	statuses := domainAgendamento.Statuses()
	now := time.Now()

	for i := 0; i < count; i++ {
		ag := models.Agendamento{
			DataHora:    gofakeit.DateRange(now.AddDate(0, -6, 0), now.AddDate(0, 3, 0)),
			Observacoes: gofakeit.Sentence(6),
			Status:      statuses[gofakeit.Number(0, len(statuses)-1)],
			PacienteID:  pacientes[gofakeit.Number(0, len(pacientes)-1)].ID,
			MedicoID:    medicos[gofakeit.Number(0, len(medicos)-1)].ID,
		}

		if err := db.Create(&ag).Error; err != nil {
			return err
		}
	}

	log.Println("agendamentos seeded")
	return nil
}

func genero() string {
	if gofakeit.Bool() {
		return "Masculino"
	}
	return "Feminino"
}
