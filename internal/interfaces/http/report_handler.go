package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestorpro-api/internal/application/reports"
	"github.com/gestorpro/gestorpro-api/internal/infrastructure/pdf"
)

// ReportHandler dashboard e relatório mensal (protegido). As duas rotas
// passam pelo mesmo agregador: os números nunca divergem entre elas.
type ReportHandler struct {
	uc     *reports.UseCase
	pdfGen *pdf.ReportGenerator
}

// NewReportHandler constrói o handler de relatórios.
func NewReportHandler(uc *reports.UseCase, pdfGen *pdf.ReportGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdfGen: pdfGen}
}

// Dashboard godoc
// @Summary      Fechamento do mês para o dashboard
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  string  false  "mês no formato YYYY-MM (padrão: mês corrente)"
// @Success      200  {object}  dto.MonthlyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Monthly(GetWorkspaceID(c), c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Relatório financeiro mensal
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  string  false  "mês no formato YYYY-MM (padrão: mês corrente)"
// @Success      200  {object}  dto.MonthlyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.uc.Monthly(GetWorkspaceID(c), c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyPDF godoc
// @Summary      Relatório financeiro mensal em PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        month  query  string  false  "mês no formato YYYY-MM (padrão: mês corrente)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/pdf [get]
func (h *ReportHandler) MonthlyPDF(c *fiber.Ctx) error {
	report, settings, err := h.uc.MonthlyEntity(GetWorkspaceID(c), c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.pdfGen.Generate(report, settings)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="relatorio-%s.pdf"`, report.Period))
	return c.Send(doc)
}
