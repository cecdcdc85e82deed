package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Tipo de valor esperado por um campo após a coerção.
type Type int

const (
	TypeString Type = iota
	TypeDate
	TypeNumber
)

// Rule descreve um campo de forma declarativa: presença, tipo,
// formato e enumeração. As regras são dados, não código.
type Rule struct {
	Required bool
	Type     Type
	Email    bool
	Enum     []string
	Message  string
}

// Schema mapeia nome do campo (como chega no JSON) para a sua regra.
type Schema map[string]Rule

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

var validate = validator.New()

// Layouts aceitos na coerção de datas, do mais ao menos específico.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Validate aplica o schema completo sobre o JSON decodificado e devolve
// os valores normalizados (datas como time.Time, ids como uint).
// Campos required ausentes ou malformados viram erros por campo.
func (s Schema) Validate(in map[string]any) (map[string]any, Errors) {
	return s.run(in, false)
}

// ValidatePartial valida apenas os campos presentes no payload.
// Chaves ausentes não geram erro, preservando a distinção entre
// "campo omitido" e "campo enviado".
func (s Schema) ValidatePartial(in map[string]any) (map[string]any, Errors) {
	return s.run(in, true)
}

func (s Schema) run(in map[string]any, partial bool) (map[string]any, Errors) {
	out := make(map[string]any, len(s))
	var errs Errors

	for field, rule := range s {
		raw, present := in[field]
		if !present || raw == nil {
			if rule.Required && !partial {
				errs = append(errs, FieldError{Field: field, Message: rule.requiredMessage(field)})
			}
			continue
		}

		value, err := coerce(raw, rule)
		if err != nil {
			errs = append(errs, FieldError{Field: field, Message: err.Error()})
			continue
		}

		if str, ok := value.(string); ok {
			if str == "" {
				if rule.Required {
					errs = append(errs, FieldError{Field: field, Message: rule.requiredMessage(field)})
					continue
				}
				// string vazia enviada é valor, não omissão: um update
				// parcial pode limpar um campo opcional
				out[field] = str
				continue
			}
			if rule.Email {
				if err := validate.Var(str, "email"); err != nil {
					errs = append(errs, FieldError{Field: field, Message: "email inválido"})
					continue
				}
			}
			if len(rule.Enum) > 0 && !contains(rule.Enum, str) {
				errs = append(errs, FieldError{Field: field, Message: "valor inválido"})
				continue
			}
		}

		out[field] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func (r Rule) requiredMessage(field string) string {
	if r.Message != "" {
		return r.Message
	}
	return field + " é obrigatório"
}

func coerce(raw any, rule Rule) (any, error) {
	switch rule.Type {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("deve ser um texto")
		}
		return s, nil

	case TypeDate:
		switch v := raw.(type) {
		case time.Time:
			return v, nil
		case string:
			for _, layout := range dateLayouts {
				if t, err := time.Parse(layout, v); err == nil {
					return t, nil
				}
			}
			return nil, fmt.Errorf("data inválida")
		default:
			return nil, fmt.Errorf("data inválida")
		}

	case TypeNumber:
		switch v := raw.(type) {
		case float64:
			if v != float64(uint(v)) || v < 1 {
				return nil, fmt.Errorf("deve ser um número válido")
			}
			return uint(v), nil
		case int:
			if v < 1 {
				return nil, fmt.Errorf("deve ser um número válido")
			}
			return uint(v), nil
		case uint:
			return v, nil
		default:
			return nil, fmt.Errorf("deve ser um número válido")
		}
	}

	return raw, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// --------- typed accessors over the normalized map ---------

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func strPtr(m map[string]any, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func date(m map[string]any, key string) time.Time {
	if v, ok := m[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func datePtr(m map[string]any, key string) *time.Time {
	if v, ok := m[key].(time.Time); ok {
		return &v
	}
	return nil
}

func id(m map[string]any, key string) uint {
	if v, ok := m[key].(uint); ok {
		return v
	}
	return 0
}

func idPtr(m map[string]any, key string) *uint {
	if v, ok := m[key].(uint); ok {
		return &v
	}
	return nil
}
