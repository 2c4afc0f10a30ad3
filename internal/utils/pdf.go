package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// KartuPDFData adalah isi kartu cetak untuk satu record balita atau ibu hamil.
type KartuPDFData struct {
	Title       string // mis. "KARTU DATA BALITA"
	Posyandu    string
	RecordLabel string // mis. "No. Registrasi"
	RecordID    int64
	Identity    []KartuRow
	Health      []KartuRow
	Notes       string
	QRCodePNG   []byte // QR code sebagai bytes PNG
	PrintedAt   time.Time
}

type KartuRow struct {
	Label string
	Value string
}

var namaBulan = [...]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// FormatTanggal menulis tanggal dalam format "2 Januari 2024".
func FormatTanggal(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()], t.Year())
}

func GenerateKartuPDF(data KartuPDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ─────────────────────────────────────────
	// HEADER
	// ─────────────────────────────────────────
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(46, 125, 50)
	pdf.CellFormat(0, 7, tr(data.Posyandu), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, tr(data.Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("%s: %06d", data.RecordLabel, data.RecordID), "", 1, "C", false, 0, "")

	pdf.SetDrawColor(46, 125, 50)
	pdf.SetLineWidth(0.6)
	pdf.Line(12, pdf.GetY()+2, 136, pdf.GetY()+2)
	pdf.Ln(6)

	// ─────────────────────────────────────────
	// IDENTITAS & DATA KESEHATAN
	// ─────────────────────────────────────────
	writeSection(pdf, tr, "Identitas", data.Identity)
	writeSection(pdf, tr, "Data Kesehatan", data.Health)

	if data.Notes != "" {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 6, "Catatan", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, tr(data.Notes), "1", "L", false)
		pdf.Ln(3)
	}

	// ─────────────────────────────────────────
	// QR CODE & TANGGAL CETAK
	// ─────────────────────────────────────────
	currentY := pdf.GetY()
	if len(data.QRCodePNG) > 0 {
		pdf.SetFont("Arial", "", 7)
		pdf.SetXY(12, currentY)
		pdf.CellFormat(30, 4, "Scan untuk detail:", "", 1, "L", false, 0, "")

		qrReader := bytes.NewReader(data.QRCodePNG)
		pdf.RegisterImageOptionsReader("qrcode", gofpdf.ImageOptions{ImageType: "PNG"}, qrReader)
		pdf.ImageOptions("qrcode", 12, currentY+5, 28, 28, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	pdf.SetXY(80, currentY)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(56, 5, fmt.Sprintf("Dicetak, %s", FormatTanggal(data.PrintedAt)), "", 1, "C", false, 0, "")
	pdf.SetX(80)
	pdf.CellFormat(56, 5, "Kader Posyandu,", "", 1, "C", false, 0, "")

	pdf.SetY(-12)
	pdf.SetFont("Arial", "I", 6)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 4,
		fmt.Sprintf("Kartu dibuat dari data per %s", data.PrintedAt.Format("02/01/2006 15:04")),
		"", 1, "C", false, 0, "")

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("gagal generate PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gagal generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *gofpdf.Fpdf, tr func(string) string, title string, rows []KartuRow) {
	if len(rows) == 0 {
		return
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(46, 125, 50)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 6, title, "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		fill := i%2 == 0
		if fill {
			pdf.SetFillColor(237, 247, 237)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.CellFormat(45, 6, tr(row.Label), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(0, 6, tr(truncate(row.Value, 60)), "1", 1, "L", fill, 0, "")
	}
	pdf.Ln(3)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
