// Package export renders a persisted order and its client into shareable
// documents: a printable PDF and a WhatsApp message.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/example/pedidos/internal/models"
)

// OrderPDF renders the order summary as a landscape PDF with one quantity
// column per size of the grid.
func OrderPDF(order models.Order, client models.Client) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(40, 50, 75)
	pdf.CellFormat(0, 10, tr("PEDIDO DE VENDA"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Data: %s", order.CreatedAt.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Pedido Nº: #%s", strings.ToUpper(order.ID.String()[:8]))), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeClientBox(pdf, tr, order, client)
	pdf.Ln(4)
	writeItemTable(pdf, tr, order)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("TOTAL DO PEDIDO: %s  |  PARES: %d", FormatBRL(order.TotalValue), totalPairs(order))), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeClientBox(pdf *gofpdf.Fpdf, tr func(string) string, order models.Order, client models.Client) {
	pdf.SetFillColor(245, 247, 250)
	pdf.SetDrawColor(200, 200, 200)
	x, y := pdf.GetXY()
	pdf.Rect(x, y, 277, 28, "FD")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(x+4, y+3)
	pdf.CellFormat(0, 5, tr("Dados do Cliente"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	phone := client.Phone
	if client.Phone2 != "" {
		phone += " / " + client.Phone2
	}
	pdf.SetX(x + 4)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Empresa: %s   Resp: %s   Tel: %s", client.DisplayName(), client.Name, phone)), "", 1, "L", false, 0, "")

	pdf.SetX(x + 4)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("End: %s   CNPJ/CPF: %s   IE: %s", addressLine(client), dash(client.CpfCnpj), dash(client.StateRegistration))), "", 1, "L", false, 0, "")

	pdf.SetX(x + 4)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Frete: %s   Cond. Pagto: %s   Forma Pagto: %s", dash(order.Freight), dash(order.PaymentTerms), dash(order.PaymentMethod))), "", 1, "L", false, 0, "")

	pdf.SetY(y + 28)
}

func writeItemTable(pdf *gofpdf.Fpdf, tr func(string) string, order models.Order) {
	sizes := models.Sizes()

	type column struct {
		header string
		width  float64
	}
	columns := []column{
		{"REF", 12}, {"DESCRIÇÃO", 46}, {"SOLADO", 28}, {"COURO", 28}, {"COR", 16},
	}
	for _, s := range sizes {
		columns = append(columns, column{s, 6.5})
	}
	columns = append(columns, column{"QTD", 9}, column{"UNIT.", 16}, column{"TOTAL", 18})

	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(40, 50, 75)
	pdf.SetTextColor(255, 255, 255)
	for _, col := range columns {
		pdf.CellFormat(col.width, 6, tr(col.header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	for _, item := range order.Items {
		cells := []string{item.Reference, item.Description, dash(item.Sole), dash(item.Material), item.Color}
		for _, s := range sizes {
			qty := models.SizeQuantity(item.Sizes[s])
			if qty == 0 {
				cells = append(cells, "")
			} else {
				cells = append(cells, fmt.Sprintf("%d", qty))
			}
		}
		cells = append(cells,
			fmt.Sprintf("%d", item.Quantity),
			FormatBRL(item.UnitPrice),
			FormatBRL(item.Total),
		)

		for i, col := range columns {
			align := "C"
			if i == 1 {
				align = "L"
			}
			pdf.CellFormat(col.width, 5.5, tr(cells[i]), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// FormatBRL renders a money value as "R$ 1.234,56", rounding to two places
// only here at the presentation boundary.
func FormatBRL(v float64) string {
	fixed := decimal.NewFromFloat(v).StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	parts := strings.SplitN(fixed, ".", 2)

	intPart := parts[0]
	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := "R$ " + strings.Join(grouped, ".") + "," + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

func addressLine(client models.Client) string {
	line := client.Address
	if client.Number != "" {
		line += ", " + client.Number
	}
	if client.Neighborhood != "" {
		line += " - " + client.Neighborhood
	}
	line += " - " + client.City
	if client.State != "" {
		line += "/" + client.State
	}
	if client.ZipCode != "" {
		line += " - CEP: " + client.ZipCode
	}
	return line
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func totalPairs(order models.Order) int {
	total := 0
	for _, item := range order.Items {
		total += item.Quantity
	}
	return total
}
