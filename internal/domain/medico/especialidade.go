package medico

// Lista fixa de especialidades aceitas no cadastro de médicos.
var Especialidades = []string{
	"Cardiologia",
	"Dermatologia",
	"Endocrinologia",
	"Gastroenterologia",
	"Ginecologia",
	"Neurologia",
	"Oftalmologia",
	"Ortopedia",
	"Otorrinolaringologia",
	"Pediatria",
	"Pneumologia",
	"Psiquiatria",
	"Radiologia",
	"Urologia",
	"Clínica Geral",
	"Medicina de Família",
	"Anestesiologia",
	"Cirurgia Geral",
	"Medicina do Trabalho",
	"Medicina Esportiva",
}

func EspecialidadeValida(s string) bool {
	for _, e := range Especialidades {
		if e == s {
			return true
		}
	}
	return false
}
