// Package pdf implementa a geração do relatório em PDF de uma verba, usado
// como anexo nas aprovações e na prestação de contas.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razão Social + CNPJ  │  Título da verba + Status    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LINHA DO TEMPO: criada / submetida / decidida / liberada    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Produto | Preço Unit. | Pontos | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: itens / pontos / TOTAL EM R$                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/genautech/yoobe-store-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 124, Green: 58, Blue: 237} // roxo Yoobe
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Rótulos de status exibidos no relatório.
var statusLabels = map[string]string{
	entity.BudgetStatusDraft:      "Rascunho",
	entity.BudgetStatusSubmitted:  "Submetida",
	entity.BudgetStatusReviewed:   "Em análise",
	entity.BudgetStatusApproved:   "Aprovada",
	entity.BudgetStatusRejected:   "Rejeitada",
	entity.BudgetStatusReleased:   "Liberada",
	entity.BudgetStatusReplicated: "Replicada",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoBudgetReport implementa budget.PDFGenerator usando Maroto v2.
type MarotoBudgetReport struct{}

// NewMarotoBudgetReport constrói o gerador.
func NewMarotoBudgetReport() *MarotoBudgetReport { return &MarotoBudgetReport{} }

// GenerateBudgetPDF gera o relatório da verba e devolve seus bytes.
func (g *MarotoBudgetReport) GenerateBudgetPDF(
	_ context.Context,
	budget *entity.Budget,
	company *entity.Company,
	items []*entity.BudgetItem,
	products map[string]*entity.BaseProduct,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Verba", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(budget, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(timelineRows(budget)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items, products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(budget))

	if budget.Status == entity.BudgetStatusRejected {
		m.AddRows(rejectionRows(budget)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: razão social + CNPJ (esq) e título da verba + status (dir).
func headerRow(budget *entity.Budget, company *entity.Company) core.Row {
	status := statusLabels[budget.Status]
	if status == "" {
		status = budget.Status
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+nonEmpty(company.CNPJ, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO DE VERBA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(budget.Title, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Status: "+status, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// timelineRows: datas marcantes do ciclo de vida da verba.
func timelineRows(budget *entity.Budget) []core.Row {
	fmtDate := func(t *time.Time) string {
		if t == nil {
			return "—"
		}
		return t.Format("02/01/2006 15:04")
	}
	return []core.Row{
		row.New(12).Add(
			col.New(12).Add(
				text.New("LINHA DO TEMPO", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(fmt.Sprintf("Criada: %s   |   Submetida: %s   |   Decidida: %s   |   Liberada: %s",
					budget.CreatedAt.Format("02/01/2006 15:04"),
					fmtDate(budget.SubmittedAt),
					fmtDate(budget.ReviewedAt),
					fmtDate(budget.ReleasedAt),
				), props.Text{Size: 8, Top: 7, Color: colorGray}),
			),
		),
	}
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Produto", 5, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Pontos", 1, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: uma linha por item da verba.
func tableItemRows(items []*entity.BudgetItem, products map[string]*entity.BaseProduct) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.BaseProductID
		if p := products[it.BaseProductID]; p != nil {
			name = p.Name
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Qty),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.UnitPoints),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+it.SubtotalCash.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(budget *entity.Budget) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Itens:"),
			label("Pontos:"),
			grandLabel("TOTAL EM R$:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", budget.TotalItems)),
			value(fmt.Sprintf("%d", budget.TotalPoints)),
			grandValue("R$ "+budget.TotalCash.StringFixed(2)),
		),
		col.New(3),
	)
}

// rejectionRows: motivo e categoria quando a verba foi rejeitada.
func rejectionRows(budget *entity.Budget) []core.Row {
	return []core.Row{
		line.NewRow(3),
		row.New(12).Add(col.New(12).Add(
			text.New("REJEIÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Categoria: %s   |   Motivo: %s",
				budget.RejectionCategory, budget.RejectionReason,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
