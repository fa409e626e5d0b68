package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dentaflow-service/internal/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func sampleInvoiceDocument() *models.InvoiceDocument {
	due := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	return &models.InvoiceDocument{
		Clinic: models.Clinic{Name: "Smile Dental", Address: "Peace Ave 12", Phone: "+976 9911 2233", Email: "info@smile.test"},
		Invoice: models.Invoice{
			InvoiceNumber: "INV-20260310-0001",
			PatientName:   "Jane Doe",
			Currency:      "MNT",
			Total:         decimal.NewFromInt(150000),
			Tax:           decimal.NewFromInt(15000),
			Discount:      decimal.NewFromInt(5000),
			Paid:          decimal.NewFromInt(60000),
			Status:        models.InvoicePartial,
			DueDate:       &due,
			Notes:         "Follow-up in two weeks.",
			IssuedAt:      generatedAt,
			Items: []models.InvoiceItem{
				{Description: "Composite filling", Quantity: 2, UnitPrice: decimal.NewFromInt(50000)},
				{Description: "Scaling and polishing", Quantity: 1, UnitPrice: decimal.NewFromInt(50000)},
			},
		},
		GeneratedAt: generatedAt,
	}
}

func samplePrescriptionDocument() *models.PrescriptionDocument {
	return &models.PrescriptionDocument{
		Clinic:  models.Clinic{Name: "Smile Dental"},
		Patient: models.Patient{FullName: "Jane Doe"},
		Prescription: models.Prescription{
			ID:          "rx-1",
			PatientName: "Jane Doe",
			DentistName: "Dr. Bold",
			IssuedAt:    generatedAt,
			Items: []models.PrescriptionItem{
				{Medication: "Amoxicillin 500mg", Dosage: "1 capsule", Frequency: "3x daily", Duration: "7 days", Instructions: "After meals"},
			},
		},
		GeneratedAt: generatedAt,
	}
}

func TestPDFRenderer_RenderInvoice(t *testing.T) {
	renderer := NewPDFRenderer(nil)

	first, err := renderer.RenderInvoice(sampleInvoiceDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(first)), "%%EOF"))

	second, err := renderer.RenderInvoice(sampleInvoiceDocument())
	require.NoError(t, err)
	assert.Equal(t, first, second, "same document must render to the same bytes")
}

func TestPDFRenderer_RenderInvoiceDependsOnInput(t *testing.T) {
	renderer := NewPDFRenderer(nil)

	base, err := renderer.RenderInvoice(sampleInvoiceDocument())
	require.NoError(t, err)

	changed := sampleInvoiceDocument()
	changed.Invoice.Paid = decimal.NewFromInt(160000)
	other, err := renderer.RenderInvoice(changed)
	require.NoError(t, err)

	assert.NotEqual(t, base, other)
}

func TestPDFRenderer_RenderPrescription(t *testing.T) {
	renderer := NewPDFRenderer(nil)

	first, err := renderer.RenderPrescription(samplePrescriptionDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))

	second, err := renderer.RenderPrescription(samplePrescriptionDocument())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPDFRenderer_CoreFontMapsLatinText(t *testing.T) {
	renderer := &pdfRenderer{}
	pdf := renderer.newDocument(generatedAt, "Invoice")

	assert.Equal(t, coreFontFamily, pdf.family)
	assert.Equal(t, "Caf\xe9 \xdcnal", pdf.text("Café Ünal"))
}

func TestPDFRenderer_RenderInvoiceWithAccentedNames(t *testing.T) {
	renderer := NewPDFRenderer(nil)
	document := sampleInvoiceDocument()
	document.Clinic.Name = "Clínica Dental Señora"
	document.Invoice.PatientName = "Zoë Müller"

	out, err := renderer.RenderInvoice(document)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestLoadUnicodeFont(t *testing.T) {
	t.Run("empty path keeps core font", func(t *testing.T) {
		font, err := LoadUnicodeFont("")

		assert.NoError(t, err)
		assert.Nil(t, font)
	})

	t.Run("reads font file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "font.ttf")
		require.NoError(t, os.WriteFile(path, []byte("ttf-bytes"), 0o600))

		font, err := LoadUnicodeFont(path)

		require.NoError(t, err)
		assert.Equal(t, []byte("ttf-bytes"), font)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadUnicodeFont(filepath.Join(t.TempDir(), "missing.ttf"))

		assert.Error(t, err)
	})
}
