package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PedroPossari/Vitalis/internal/httperr"
	"github.com/PedroPossari/Vitalis/internal/usecase/relatorio"
)

type DashboardHandler struct {
	resumoMensal *relatorio.ResumoMensal
}

func NewDashboardHandler(resumoMensal *relatorio.ResumoMensal) *DashboardHandler {
	return &DashboardHandler{resumoMensal: resumoMensal}
}

// Resumo devolve o total de agendamentos por mês do ano pedido
// (corrente por padrão), quebrado por status.
func (h *DashboardHandler) Resumo(c *gin.Context) {
	ano := time.Now().Year()

	if anoStr := c.Query("ano"); anoStr != "" {
		parsed, err := strconv.Atoi(anoStr)
		if err != nil || parsed < 2000 || parsed > 2100 {
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
			return
		}
		ano = parsed
	}

	resumo, err := h.resumoMensal.Execute(c.Request.Context(), ano)
	if err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Erro ao montar o resumo.")
		return
	}

	c.JSON(200, gin.H{
		"ano":   ano,
		"meses": resumo,
	})
}
