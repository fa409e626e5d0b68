package pdf

import (
	"bytes"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/exceptions"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	coreFontFamily    = "Helvetica"
	unicodeFontFamily = "DentaFlowUnicode"
	pageMargin   = 15.0
	lineHeight   = 6.0
	tableRowSize = 7.0

	documentInvoice      = "invoice"
	documentPrescription = "prescription"
)

type pdfRenderer struct {
	unicodeFont []byte
}

// NewPDFRenderer returns a renderer whose output depends only on the document,
// including the GeneratedAt timestamp written as the PDF creation date.
// Without unicodeFont the core Helvetica font is used and text is mapped to
// cp1252, which covers Latin scripts. With a TTF in unicodeFont any UTF-8
// text prints, Cyrillic clinic and patient names included.
func NewPDFRenderer(unicodeFont []byte) contracts.DocumentRenderer {
	return &pdfRenderer{unicodeFont: unicodeFont}
}

// LoadUnicodeFont reads the TTF at path once at startup. An empty path
// keeps the core font.
func LoadUnicodeFont(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	font, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pdf font %s: %w", path, err)
	}
	return font, nil
}

// canvas is one PDF under construction together with the font family and
// the text mapping every cell goes through.
type canvas struct {
	*fpdf.Fpdf
	family string
	text   func(string) string
}

func (d *canvas) font(style string, size float64) {
	d.SetFont(d.family, style, size)
}

func (d *canvas) cell(w, h float64, txt, border string, ln int, align string, fill bool) {
	d.CellFormat(w, h, d.text(txt), border, ln, align, fill, 0, "")
}

func (r *pdfRenderer) RenderInvoice(document *models.InvoiceDocument) ([]byte, error) {
	invoice := document.Invoice
	pdf := r.newDocument(document.GeneratedAt, fmt.Sprintf("Invoice %s", invoice.InvoiceNumber))

	writeClinicHeader(pdf, document.Clinic)
	writeTitle(pdf, "INVOICE")

	metadata := [][2]string{
		{"Invoice number", invoice.InvoiceNumber},
		{"Patient", invoice.PatientName},
		{"Issued", invoice.IssuedAt.Format(constvars.TimeFormatDate)},
		{"Status", string(invoice.Status)},
	}
	if invoice.DueDate != nil {
		metadata = append(metadata, [2]string{"Due", invoice.DueDate.Format(constvars.TimeFormatDate)})
	}
	writeMetadata(pdf, metadata)

	widths := []float64{90, 20, 35, 35}
	writeTableHeader(pdf, widths, []string{"Description", "Qty", "Unit price", "Line total"})
	pdf.font("", 10)
	for i := range invoice.Items {
		item := invoice.Items[i]
		pdf.cell(widths[0], tableRowSize, item.Description, "1", 0, "L", false)
		pdf.cell(widths[1], tableRowSize, strconv.Itoa(item.Quantity), "1", 0, "R", false)
		pdf.cell(widths[2], tableRowSize, formatMoney(item.UnitPrice), "1", 0, "R", false)
		pdf.cell(widths[3], tableRowSize, formatMoney(item.LineTotal()), "1", 1, "R", false)
	}
	pdf.Ln(lineHeight)

	breakdown := [][2]string{
		{"Total", formatMoney(invoice.Total)},
		{"Tax", formatMoney(invoice.Tax)},
		{"Discount", "-" + formatMoney(invoice.Discount)},
		{"Net", formatMoney(invoice.Net())},
		{"Paid", formatMoney(invoice.Paid)},
		{"Remaining", formatMoney(invoice.Remaining())},
	}
	labelOffset := widths[0] + widths[1]
	for _, row := range breakdown {
		style := ""
		if row[0] == "Net" || row[0] == "Remaining" {
			style = "B"
		}
		pdf.font(style, 10)
		pdf.SetX(pageMargin + labelOffset)
		pdf.cell(widths[2], tableRowSize, row[0], "", 0, "L", false)
		pdf.cell(widths[3], tableRowSize, fmt.Sprintf("%s %s", row[1], invoice.Currency), "", 1, "R", false)
	}

	if invoice.Notes != "" {
		writeNotes(pdf, invoice.Notes)
	}

	return output(pdf, documentInvoice)
}

func (r *pdfRenderer) RenderPrescription(document *models.PrescriptionDocument) ([]byte, error) {
	prescription := document.Prescription
	pdf := r.newDocument(document.GeneratedAt, fmt.Sprintf("Prescription %s", prescription.ID))

	writeClinicHeader(pdf, document.Clinic)
	writeTitle(pdf, "PRESCRIPTION")

	metadata := [][2]string{
		{"Patient", prescription.PatientName},
		{"Dentist", prescription.DentistName},
		{"Issued", prescription.IssuedAt.Format(constvars.TimeFormatDate)},
	}
	if document.Patient.DateOfBirth != nil {
		metadata = append(metadata, [2]string{"Date of birth", document.Patient.DateOfBirth.Format(constvars.TimeFormatDate)})
	}
	writeMetadata(pdf, metadata)

	widths := []float64{50, 30, 35, 30, 35}
	writeTableHeader(pdf, widths, []string{"Medication", "Dosage", "Frequency", "Duration", "Instructions"})
	pdf.font("", 9)
	for _, item := range prescription.Items {
		pdf.cell(widths[0], tableRowSize, item.Medication, "1", 0, "L", false)
		pdf.cell(widths[1], tableRowSize, item.Dosage, "1", 0, "L", false)
		pdf.cell(widths[2], tableRowSize, item.Frequency, "1", 0, "L", false)
		pdf.cell(widths[3], tableRowSize, item.Duration, "1", 0, "L", false)
		pdf.cell(widths[4], tableRowSize, item.Instructions, "1", 1, "L", false)
	}

	if prescription.Notes != "" {
		writeNotes(pdf, prescription.Notes)
	}

	pdf.Ln(lineHeight * 3)
	pdf.font("", 10)
	pdf.cell(0, lineHeight, "Signature: ______________________", "", 1, "R", false)

	return output(pdf, documentPrescription)
}

func (r *pdfRenderer) newDocument(generatedAt time.Time, title string) *canvas {
	pdf := &canvas{Fpdf: fpdf.New("P", "mm", "A4", ""), family: coreFontFamily}
	if len(r.unicodeFont) > 0 {
		for _, style := range []string{"", "B", "I"} {
			pdf.AddUTF8FontFromBytes(unicodeFontFamily, style, r.unicodeFont)
		}
		pdf.family = unicodeFontFamily
		pdf.text = func(s string) string { return s }
	} else {
		pdf.text = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin+5)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetTitle(title, true)
	pdf.SetCreator("DentaFlow", true)
	pdf.AliasNbPages("")

	footer := fmt.Sprintf("Generated %s", generatedAt.UTC().Format(time.RFC3339))
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.font("I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.cell(90, 10, footer, "", 0, "L", false)
		pdf.cell(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "R", false)
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	return pdf
}

func writeClinicHeader(pdf *canvas, clinic models.Clinic) {
	pdf.font("B", 16)
	pdf.cell(0, 8, clinic.Name, "", 1, "L", false)
	pdf.font("", 9)
	for _, line := range []string{clinic.Address, clinic.Phone, clinic.Email} {
		if line != "" {
			pdf.cell(0, 5, line, "", 1, "L", false)
		}
	}
	pdf.Ln(2)
	x, y := pdf.GetXY()
	pageWidth, _ := pdf.GetPageSize()
	pdf.Line(x, y, pageWidth-pageMargin, y)
	pdf.Ln(4)
}

func writeTitle(pdf *canvas, title string) {
	pdf.font("B", 14)
	pdf.cell(0, 10, title, "", 1, "C", false)
	pdf.Ln(2)
}

func writeMetadata(pdf *canvas, rows [][2]string) {
	for _, row := range rows {
		pdf.font("B", 10)
		pdf.cell(40, lineHeight, row[0], "", 0, "L", false)
		pdf.font("", 10)
		pdf.cell(0, lineHeight, row[1], "", 1, "L", false)
	}
	pdf.Ln(lineHeight)
}

func writeTableHeader(pdf *canvas, widths []float64, headers []string) {
	pdf.font("B", 10)
	pdf.SetFillColor(230, 236, 245)
	for i, header := range headers {
		pdf.cell(widths[i], tableRowSize, header, "1", 0, "C", true)
	}
	pdf.Ln(-1)
}

func writeNotes(pdf *canvas, notes string) {
	pdf.Ln(lineHeight)
	pdf.font("B", 10)
	pdf.cell(0, lineHeight, "Notes", "", 1, "L", false)
	pdf.font("", 10)
	pdf.MultiCell(0, 5, pdf.text(notes), "", "L", false)
}

func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func output(pdf *canvas, document string) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, exceptions.ErrPDFRender(err, document)
	}
	return buf.Bytes(), nil
}
