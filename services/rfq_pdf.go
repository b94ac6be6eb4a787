package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	pdfDark  = color.Color{Red: 33, Green: 47, Blue: 36}
	pdfMuted = color.Color{Red: 112, Green: 118, Blue: 104}
	pdfRule  = color.Color{Red: 214, Green: 219, Blue: 208}
)

// QuoteRequestPDF renders the one-page RFQ summary the sales desk receives.
func QuoteRequestPDF(q *models.QuoteRequest) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(14, func() {
		m.Col(8, func() {
			m.Text("REQUEST FOR QUOTATION", props.Text{
				Size:  18,
				Style: consts.Bold,
				Color: pdfDark,
			})
		})
		m.Col(4, func() {
			m.Text(q.Reference, props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: pdfDark,
				Align: consts.Right,
			})
		})
	})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Received %s  |  Language %s", q.CreatedAt.Format("Jan 02, 2006 15:04 MST"), q.Lang), props.Text{
				Size:  9,
				Color: pdfMuted,
			})
		})
	})
	m.Line(6, props.Line{Color: pdfRule})

	pdfSection(m, "BUYER")
	pdfField(m, "Company", q.CompanyName)
	pdfField(m, "Contact", q.ContactName)
	pdfField(m, "E-mail", q.Email)
	pdfField(m, "Phone", q.Phone)
	pdfField(m, "Country", q.Country)

	m.Row(4, func() {})
	pdfSection(m, "SHIPMENT")
	pdfField(m, "Product", q.ProductName)
	pdfField(m, "Quantity", quantityLabel(q.Quantity, q.Unit))
	pdfField(m, "Incoterm", q.Incoterm)
	pdfField(m, "Destination port", q.DestinationPort)

	if q.Message != "" {
		m.Row(4, func() {})
		pdfSection(m, "MESSAGE")
		m.Row(30, func() {
			m.Col(12, func() {
				m.Text(q.Message, props.Text{
					Size:  9,
					Color: pdfDark,
				})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render rfq pdf: %w", err)
	}
	return &buf, nil
}

func pdfSection(m pdf.Maroto, title string) {
	m.Row(7, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: pdfMuted,
			})
		})
	})
}

func pdfField(m pdf.Maroto, label, value string) {
	if value == "" {
		value = "-"
	}
	m.Row(6, func() {
		m.Col(4, func() {
			m.Text(label, props.Text{
				Size:  9,
				Color: pdfMuted,
			})
		})
		m.Col(8, func() {
			m.Text(value, props.Text{
				Size:  9,
				Style: consts.Bold,
				Color: pdfDark,
			})
		})
	})
}

func quantityLabel(quantity float64, unit string) string {
	if quantity <= 0 {
		return ""
	}
	label := strconv.FormatFloat(quantity, 'f', -1, 64)
	if unit != "" {
		label += " " + unit
	}
	return label
}
