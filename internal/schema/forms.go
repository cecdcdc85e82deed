package schema

import (
	"time"

	domainAgendamento "github.com/PedroPossari/Vitalis/internal/domain/agendamento"
	domainMedico "github.com/PedroPossari/Vitalis/internal/domain/medico"
)

// As tabelas abaixo espelham os formulários do painel administrativo:
// os mesmos campos, as mesmas mensagens.

var LoginSchema = Schema{
	"email": {Required: true, Type: TypeString, Email: true, Message: "email é obrigatório"},
	"senha": {Required: true, Type: TypeString, Message: "senha é obrigatório"},
}

var UsuarioSchema = Schema{
	"nome":  {Required: true, Type: TypeString, Message: "nome é obrigatório"},
	"email": {Required: true, Type: TypeString, Email: true, Message: "email é obrigatório"},
	"senha": {Required: true, Type: TypeString, Message: "senha é obrigatório"},
}

var MedicoSchema = Schema{
	"nome":          {Required: true, Type: TypeString, Message: "nome é obrigatório"},
	"email":         {Required: true, Type: TypeString, Email: true, Message: "email é obrigatório"},
	"telefone":      {Required: true, Type: TypeString, Message: "telefone é obrigatório"},
	"crm":           {Required: true, Type: TypeString, Message: "CRM é obrigatório"},
	"especialidade": {Required: true, Type: TypeString, Enum: domainMedico.Especialidades, Message: "especialidade é obrigatória"},
	"genero":        {Required: true, Type: TypeString, Message: "gênero é obrigatório"},
	"endereco":      {Required: true, Type: TypeString, Message: "endereço é obrigatório"},
}

var PacienteSchema = Schema{
	"nome":           {Required: true, Type: TypeString, Message: "nome é obrigatório"},
	"email":          {Required: true, Type: TypeString, Email: true, Message: "email é obrigatório"},
	"telefone":       {Required: true, Type: TypeString, Message: "telefone é obrigatório"},
	"dataNascimento": {Required: true, Type: TypeDate, Message: "data de nascimento é obrigatório"},
	"genero":         {Required: true, Type: TypeString, Message: "genero é obrigatório"},
	"endereco":       {Required: true, Type: TypeString, Message: "endereço é obrigatório"},

	"contatoEmergencia":   {Type: TypeString},
	"telefoneEmergencia":  {Type: TypeString},
	"planoSaude":          {Type: TypeString},
	"cartaoPlano":         {Type: TypeString},
	"alergias":            {Type: TypeString},
	"medicacoesContinuas": {Type: TypeString},
	"historicoMedico":     {Type: TypeString},
	"historicoFamiliar":   {Type: TypeString},
}

var AgendamentoSchema = Schema{
	"dataHora":    {Required: true, Type: TypeDate, Message: "Data e hora são obrigatórias"},
	"observacoes": {Type: TypeString},
	"status":      {Required: true, Type: TypeString, Enum: domainAgendamento.Statuses(), Message: "Status é obrigatório"},
	"pacienteId":  {Required: true, Type: TypeNumber, Message: "Paciente é obrigatório"},
	"medicoId":    {Required: true, Type: TypeNumber, Message: "Médico é obrigatório"},
}

// --------- Forms ---------

type LoginForm struct {
	Email string
	Senha string
}

type UsuarioForm struct {
	Nome  string
	Email string
	Senha string
}

type UsuarioUpdate struct {
	Nome  *string
	Email *string
	Senha *string
}

type MedicoForm struct {
	Nome          string
	Email         string
	Telefone      string
	CRM           string
	Especialidade string
	Genero        string
	Endereco      string
}

type MedicoUpdate struct {
	Nome          *string
	Email         *string
	Telefone      *string
	CRM           *string
	Especialidade *string
	Genero        *string
	Endereco      *string
}

type PacienteForm struct {
	Nome           string
	Email          string
	Telefone       string
	DataNascimento time.Time
	Genero         string
	Endereco       string

	ContatoEmergencia   string
	TelefoneEmergencia  string
	PlanoSaude          string
	CartaoPlano         string
	Alergias            string
	MedicacoesContinuas string
	HistoricoMedico     string
	HistoricoFamiliar   string
}

type PacienteUpdate struct {
	Nome           *string
	Email          *string
	Telefone       *string
	DataNascimento *time.Time
	Genero         *string
	Endereco       *string

	ContatoEmergencia   *string
	TelefoneEmergencia  *string
	PlanoSaude          *string
	CartaoPlano         *string
	Alergias            *string
	MedicacoesContinuas *string
	HistoricoMedico     *string
	HistoricoFamiliar   *string
}

type AgendamentoForm struct {
	DataHora    time.Time
	Observacoes string
	Status      string
	PacienteID  uint
	MedicoID    uint
}

type AgendamentoUpdate struct {
	DataHora    *time.Time
	Observacoes *string
	Status      *string
	PacienteID  *uint
	MedicoID    *uint
}

// --------- Parsers ---------

func ParseLogin(in map[string]any) (*LoginForm, error) {
	m, errs := LoginSchema.Validate(in)
	if errs != nil {
		return nil, errs
	}
	return &LoginForm{
		Email: str(m, "email"),
		Senha: str(m, "senha"),
	}, nil
}

func ParseUsuario(in map[string]any) (*UsuarioForm, error) {
	m, errs := UsuarioSchema.Validate(in)
	if errs != nil {
		return nil, errs
	}
	return &UsuarioForm{
		Nome:  str(m, "nome"),
		Email: str(m, "email"),
		Senha: str(m, "senha"),
	}, nil
}

func ParseUsuarioUpdate(in map[string]any) (*UsuarioUpdate, error) {
	m, errs := UsuarioSchema.ValidatePartial(in)
	if errs != nil {
		return nil, errs
	}
	return &UsuarioUpdate{
		Nome:  strPtr(m, "nome"),
		Email: strPtr(m, "email"),
		Senha: strPtr(m, "senha"),
	}, nil
}

func ParseMedico(in map[string]any) (*MedicoForm, error) {
	m, errs := MedicoSchema.Validate(in)
	if errs != nil {
		return nil, errs
	}
	return &MedicoForm{
		Nome:          str(m, "nome"),
		Email:         str(m, "email"),
		Telefone:      str(m, "telefone"),
		CRM:           str(m, "crm"),
		Especialidade: str(m, "especialidade"),
		Genero:        str(m, "genero"),
		Endereco:      str(m, "endereco"),
	}, nil
}

func ParseMedicoUpdate(in map[string]any) (*MedicoUpdate, error) {
	m, errs := MedicoSchema.ValidatePartial(in)
	if errs != nil {
		return nil, errs
	}
	return &MedicoUpdate{
		Nome:          strPtr(m, "nome"),
		Email:         strPtr(m, "email"),
		Telefone:      strPtr(m, "telefone"),
		CRM:           strPtr(m, "crm"),
		Especialidade: strPtr(m, "especialidade"),
		Genero:        strPtr(m, "genero"),
		Endereco:      strPtr(m, "endereco"),
	}, nil
}

func ParsePaciente(in map[string]any) (*PacienteForm, error) {
	m, errs := PacienteSchema.Validate(in)
	if errs != nil {
		return nil, errs
	}
	return &PacienteForm{
		Nome:           str(m, "nome"),
		Email:          str(m, "email"),
		Telefone:       str(m, "telefone"),
		DataNascimento: date(m, "dataNascimento"),
		Genero:         str(m, "genero"),
		Endereco:       str(m, "endereco"),

		ContatoEmergencia:   str(m, "contatoEmergencia"),
		TelefoneEmergencia:  str(m, "telefoneEmergencia"),
		PlanoSaude:          str(m, "planoSaude"),
		CartaoPlano:         str(m, "cartaoPlano"),
		Alergias:            str(m, "alergias"),
		MedicacoesContinuas: str(m, "medicacoesContinuas"),
		HistoricoMedico:     str(m, "historicoMedico"),
		HistoricoFamiliar:   str(m, "historicoFamiliar"),
	}, nil
}

func ParsePacienteUpdate(in map[string]any) (*PacienteUpdate, error) {
	m, errs := PacienteSchema.ValidatePartial(in)
	if errs != nil {
		return nil, errs
	}
	return &PacienteUpdate{
		Nome:           strPtr(m, "nome"),
		Email:          strPtr(m, "email"),
		Telefone:       strPtr(m, "telefone"),
		DataNascimento: datePtr(m, "dataNascimento"),
		Genero:         strPtr(m, "genero"),
		Endereco:       strPtr(m, "endereco"),

		ContatoEmergencia:   strPtr(m, "contatoEmergencia"),
		TelefoneEmergencia:  strPtr(m, "telefoneEmergencia"),
		PlanoSaude:          strPtr(m, "planoSaude"),
		CartaoPlano:         strPtr(m, "cartaoPlano"),
		Alergias:            strPtr(m, "alergias"),
		MedicacoesContinuas: strPtr(m, "medicacoesContinuas"),
		HistoricoMedico:     strPtr(m, "historicoMedico"),
		HistoricoFamiliar:   strPtr(m, "historicoFamiliar"),
	}, nil
}

func ParseAgendamento(in map[string]any) (*AgendamentoForm, error) {
	m, errs := AgendamentoSchema.Validate(in)
	if errs != nil {
		return nil, errs
	}
	return &AgendamentoForm{
		DataHora:    date(m, "dataHora"),
		Observacoes: str(m, "observacoes"),
		Status:      str(m, "status"),
		PacienteID:  id(m, "pacienteId"),
		MedicoID:    id(m, "medicoId"),
	}, nil
}

func ParseAgendamentoUpdate(in map[string]any) (*AgendamentoUpdate, error) {
	m, errs := AgendamentoSchema.ValidatePartial(in)
	if errs != nil {
		return nil, errs
	}
	return &AgendamentoUpdate{
		DataHora:    datePtr(m, "dataHora"),
		Observacoes: strPtr(m, "observacoes"),
		Status:      strPtr(m, "status"),
		PacienteID:  idPtr(m, "pacienteId"),
		MedicoID:    idPtr(m, "medicoId"),
	}, nil
}
