// Package pdf renders an invoice into a fixed-page-size document.
//
// A4 page layout (210×297 mm, 10 mm margins):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Business name + contact + ABN + bank │ INVOICE + number    │
//	│  ───────────────────────────────────────────────────────── │
//	│  BILL TO: client          │  Issue Date / Due Date          │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Service (desc + visit dates) | Qty | Rate | Total   │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALS: Subtotal / Discount / GST / TOTAL DUE              │
//	│  Notes + payment footer                                     │
//	└─────────────────────────────────────────────────────────────┘
//
// Overflow policy: rows flow onto additional A4 pages; content is never
// scaled down or truncated to force a single page.
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"

	"github.com/mazzari/invoicing-api/internal/application/invoicing"
	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/pkg/money"
)

var decimalHundred = decimal.NewFromInt(100)

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52} // landscaping green
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// MarotoRenderer produces the invoice PDF with Maroto v2. Each render builds
// and discards its own document, so concurrent exports never share state.
type MarotoRenderer struct{}

var _ invoicing.PDFRenderer = (*MarotoRenderer)(nil)

// NewMarotoRenderer builds the renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// RenderInvoicePDF lays out the invoice on A4 and returns the document bytes.
// Any failure wraps domain.ErrRenderFailed.
func (g *MarotoRenderer) RenderInvoicePDF(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("%w: no invoice to render", domain.ErrRenderFailed)
	}
	if len(inv.Items) == 0 {
		return nil, fmt.Errorf("%w: invoice %s has no line items", domain.ErrRenderFailed, inv.InvoiceNumber)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.InvoiceNumber, true).
		WithAuthor(inv.BusinessInfo.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(inv))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, item := range inv.Items {
		for _, r := range itemRows(item) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range totalsRows(inv) {
		m.AddRows(r)
	}

	if inv.Notes != "" {
		m.AddRows(notesRow(inv.Notes))
	}
	m.AddRows(footerRow(inv.BusinessInfo))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: generate document: %v", domain.ErrRenderFailed, err)
	}
	return doc.GetBytes(), nil
}

// headerRow: business identity on the left, INVOICE + number on the right.
func headerRow(inv *entity.Invoice) core.Row {
	biz := inv.BusinessInfo

	contact := []string{biz.Email, biz.Phone, biz.Address}
	if biz.ABN != "" {
		contact = append(contact, "ABN: "+biz.ABN)
	}

	left := col.New(7).Add(text.New(biz.BusinessName, props.Text{
		Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
	}))
	top := 9.0
	for _, lineText := range contact {
		if lineText == "" {
			continue
		}
		left.Add(text.New(lineText, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4
	}

	right := col.New(5).Add(
		text.New("INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
		text.New(inv.InvoiceNumber, props.Text{
			Size: 9, Align: align.Right, Top: 10, Color: colorGray,
		}),
	)

	return row.New(top + 4).Add(left, right)
}

// billToRow: client snapshot on the left, issue/due dates on the right.
func billToRow(inv *entity.Invoice) core.Row {
	client := inv.ClientInfo

	left := col.New(7).Add(
		text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(client.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
	)
	top := 12.0
	for _, lineText := range []string{client.Email, client.Phone, client.Address} {
		if lineText == "" {
			continue
		}
		left.Add(text.New(lineText, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4
	}

	right := col.New(5).Add(
		text.New("Issue Date: "+inv.IssueDate.Format("02 Jan 2006"), props.Text{
			Size: 9, Align: align.Right, Top: 2,
		}),
		text.New("Due Date: "+inv.DueDate.Format("02 Jan 2006"), props.Text{
			Size: 9, Align: align.Right, Top: 8, Style: fontstyle.Bold,
		}),
	)

	if top < 16 {
		top = 16
	}
	return row.New(top + 4).Add(left, right)
}

// tableHeaderRow: Service | Qty | Rate | Total.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("SERVICE", 6, align.Left),
		h("QTY", 2, align.Right),
		h("RATE", 2, align.Right),
		h("TOTAL", 2, align.Right),
	)
}

// itemRows: the main line plus optional description and visit-date sub-rows.
// Every line total is recomputed from quantity × rate for display.
func itemRows(item entity.ServiceItem) []core.Row {
	lineTotal := item.Quantity.Mul(item.Rate)

	rows := []core.Row{
		row.New(6).Add(
			col.New(6).Add(text.New(item.Service, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(2).Add(text.New(item.Quantity.String(), props.Text{Size: 9, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(money.FormatAUD(item.Rate), props.Text{Size: 9, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(money.FormatAUD(lineTotal), props.Text{Size: 9, Align: align.Right, Top: 1})),
		),
	}

	if item.Description != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(item.Description, props.Text{Size: 8, Color: colorGray, Top: 0.5}),
		)))
	}

	if len(item.Dates) > 0 {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New("Visits:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 0.5}),
		)))
		for _, d := range item.Dates {
			rows = append(rows, row.New(4).Add(col.New(12).Add(
				text.New(d.Format("02/01/2006"), props.Text{Size: 8, Color: colorGray, Top: 0.5, Left: 3}),
			)))
		}
	}

	rows = append(rows, row.New(2))
	return rows
}

// totalsRows: right-aligned breakdown. Discount shows only when set; GST only
// when enabled.
func totalsRows(inv *entity.Invoice) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Color: colorGray, Top: 1})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: 1, Color: c})
	}

	rows := []core.Row{
		row.New(6).Add(
			col.New(8).Add(label("Subtotal")),
			col.New(4).Add(value(money.FormatAUD(inv.Subtotal), nil)),
		),
	}

	if inv.Discount.IsPositive() {
		name := "Discount"
		if inv.DiscountType == entity.DiscountPercentage {
			name = fmt.Sprintf("Discount (%s%%)", inv.Discount.String())
		}
		discountAmount := inv.Discount
		if inv.DiscountType == entity.DiscountPercentage {
			discountAmount = inv.Subtotal.Mul(inv.Discount).Div(decimalHundred)
		}
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(label(name)),
			col.New(4).Add(value("-"+money.FormatAUD(discountAmount), colorRed)),
		))
	}

	if inv.GSTEnabled {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(label(fmt.Sprintf("GST (%s%%)", inv.GSTRate.String()))),
			col.New(4).Add(value(money.FormatAUD(inv.GSTAmount), nil)),
		))
	}

	rows = append(rows, row.New(9).Add(
		col.New(8).Add(text.New("TOTAL DUE", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New(money.FormatAUD(inv.Total), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	))

	return rows
}

func notesRow(notes string) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("NOTES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
		text.New(notes, props.Text{Size: 8, Color: colorGray, Top: 7}),
	))
}

// footerRow: payment instructions built from the business bank details.
func footerRow(biz entity.BusinessInfo) core.Row {
	c := col.New(12).Add(text.New("Thank you for your business.", props.Text{
		Size: 9, Align: align.Center, Color: colorGray, Top: 6,
	}))
	if biz.BankAccountNumber != "" || biz.BankBSB != "" {
		payTo := "Payment: "
		if biz.BankBSB != "" {
			payTo += "BSB " + biz.BankBSB + "  "
		}
		if biz.BankAccountNumber != "" {
			payTo += "Account " + biz.BankAccountNumber
		}
		c.Add(text.New(payTo, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 11}))
	}
	return row.New(18).Add(c)
}
