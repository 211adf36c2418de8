// Package export renders a document to its print-formatted PDF. The core
// treats this as a fire-and-forget collaborator: it consumes a snapshot and
// returns bytes, never writing anything back into the model.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/paperdesk/paperdesk/internal/currency"
	"github.com/paperdesk/paperdesk/internal/document"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func title(t document.Type) string {
	switch t {
	case document.TypeDeliveryChallan:
		return "DELIVERY CHALLAN"
	case document.TypeQuotation:
		return "QUOTATION"
	default:
		return "INVOICE"
	}
}

// Render produces the A4 print layout: company header with optional logo,
// document header, line-item table and, where the type shows them, the
// totals and signature blocks.
func (r *Renderer) Render(doc document.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	renderCompanyHeader(pdf, tr, doc.CompanyInfo)
	renderDocumentHeader(pdf, tr, doc)
	renderLineItems(pdf, tr, doc)

	hideMoney := doc.DocumentType == document.TypeDeliveryChallan
	if doc.ShowTotals && !hideMoney {
		renderTotals(pdf, tr, doc)
	}
	if doc.SignatureInfo.IncludeSignature {
		renderSignature(pdf, tr, doc.SignatureInfo)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderCompanyHeader(pdf *gofpdf.Fpdf, tr func(string) string, info document.CompanyInfo) {
	if img, imgType, ok := decodeLogo(info.Logo); ok {
		name := "company-logo"
		opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: true}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
		if pdf.Ok() {
			pdf.ImageOptions(name, 10, 10, 28, 0, false, opts, 0, "")
		} else {
			// A bad image must not block printing; drop it and carry on.
			pdf.ClearError()
		}
	}

	pdf.SetXY(45, 12)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, tr(info.Name), "", 1, "L", false, 0, "")
	pdf.SetX(45)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, tr(info.Email), "", 1, "L", false, 0, "")
	for _, phone := range info.PhoneNumbers {
		if phone == "" {
			continue
		}
		pdf.SetX(45)
		pdf.CellFormat(0, 5, tr(phone), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)
}

func renderDocumentHeader(pdf *gofpdf.Fpdf, tr func(string) string, doc document.Document) {
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, title(doc.DocumentType), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, tr(doc.DocumentType.NumberLabel()+" "+doc.InvoiceNumber), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr("Date: "+doc.Date), "", 1, "R", false, 0, "")

	if doc.Recipient != "" {
		pdf.CellFormat(0, 6, tr("To: "+doc.Recipient), "", 1, "L", false, 0, "")
	}
	if doc.Address != "" {
		pdf.MultiCell(0, 5, tr(doc.Address), "", "L", false)
	}
	if doc.Subject != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, tr("Subject: "+doc.Subject), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
	}
	pdf.Ln(4)
}

func renderLineItems(pdf *gofpdf.Fpdf, tr func(string) string, doc document.Document) {
	hideMoney := doc.DocumentType == document.TypeDeliveryChallan

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	if hideMoney {
		pdf.CellFormat(12, 7, "#", "1", 0, "C", true, 0, "")
		pdf.CellFormat(70, 7, "Product", "1", 0, "L", true, 0, "")
		pdf.CellFormat(83, 7, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 7, "Qty", "1", 1, "R", true, 0, "")
	} else {
		pdf.CellFormat(12, 7, "#", "1", 0, "C", true, 0, "")
		pdf.CellFormat(48, 7, "Product", "1", 0, "L", true, 0, "")
		pdf.CellFormat(60, 7, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
		pdf.CellFormat(25, 7, "Rate", "1", 0, "R", true, 0, "")
		pdf.CellFormat(25, 7, "Amount", "1", 1, "R", true, 0, "")
	}

	pdf.SetFont("Arial", "", 10)
	for i, item := range doc.LineItems {
		qty := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", item.Quantity), "0"), ".")
		if hideMoney {
			pdf.CellFormat(12, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
			pdf.CellFormat(70, 7, tr(item.Product), "1", 0, "L", false, 0, "")
			pdf.CellFormat(83, 7, tr(item.Description), "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 7, qty, "1", 1, "R", false, 0, "")
			continue
		}
		pdf.CellFormat(12, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(48, 7, tr(item.Product), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, qty, "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, tr(currency.FormatAmount(doc.Currency, item.Rate)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, tr(currency.FormatAmount(doc.Currency, item.Amount)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func renderTotals(pdf *gofpdf.Fpdf, tr func(string) string, doc document.Document) {
	row := func(label string, amount float64, bold bool) {
		if bold {
			pdf.SetFont("Arial", "B", 10)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		pdf.CellFormat(140, 6, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, tr(currency.FormatAmount(doc.Currency, amount)), "", 1, "R", false, 0, "")
	}

	row("Subtotal", doc.Subtotal, false)
	if doc.DeliveryCost > 0 {
		row("Delivery Cost", doc.DeliveryCost, false)
	}
	if doc.Discount > 0 {
		row("Discount", doc.Discount, false)
	}
	row("Total", doc.Total, true)
	if doc.DocumentType == document.TypeInvoice && doc.Advance > 0 {
		row("Advance", doc.Advance, false)
		row("Due", doc.Due(), true)
	}
	pdf.Ln(6)
}

func renderSignature(pdf *gofpdf.Fpdf, tr func(string) string, sig document.SignatureInfo) {
	pdf.Ln(14)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(140, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 5, "____________________", "", 1, "C", false, 0, "")
	pdf.CellFormat(140, 5, "", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 5, tr(sig.Name), "", 1, "C", false, 0, "")
	pdf.CellFormat(140, 5, "", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(50, 5, tr(sig.Designation), "", 1, "C", false, 0, "")
}

// decodeLogo splits a data URL into raw bytes and a gofpdf image type.
// Anything unparseable is skipped; a logo can never fail an export.
func decodeLogo(dataURL string) ([]byte, string, bool) {
	if dataURL == "" {
		return nil, "", false
	}
	const scheme = "data:"
	if !strings.HasPrefix(dataURL, scheme) {
		return nil, "", false
	}
	rest := dataURL[len(scheme):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return nil, "", false
	}
	mime := rest[:sep]
	payload := rest[sep+len(";base64,"):]

	var imgType string
	switch mime {
	case "image/png":
		imgType = "PNG"
	case "image/jpeg", "image/jpg":
		imgType = "JPG"
	case "image/gif":
		imgType = "GIF"
	default:
		return nil, "", false
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", false
	}
	return raw, imgType, true
}
