package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
)

// InvoiceService renders invoices to PDF. It is a fixed sequence of draw
// calls with a manually tracked vertical cursor; rows that would run off the
// page trigger a new page with a repeated table header.
type InvoiceService struct{}

func NewInvoiceService() *InvoiceService {
	return &InvoiceService{}
}

const (
	pageLeft   = 15.0
	pageRight  = 195.0
	pageBottom = 270.0
)

func (s *InvoiceService) Render(req *dtos.InvoiceRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	y := 20.0

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetXY(pageLeft, y)
	pdf.CellFormat(0, 10, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageLeft, y+2)
	pdf.CellFormat(pageRight-pageLeft, 6, "# "+req.InvoiceNumber, "", 0, "R", false, 0, "")
	y += 16

	pdf.SetXY(pageLeft, y)
	pdf.CellFormat(90, 5, "Issued: "+req.IssueDate.Format("Jan 2, 2006"), "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, "Due: "+req.DueDate.Format("Jan 2, 2006"), "", 0, "R", false, 0, "")
	y += 12

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(pageLeft, y)
	pdf.CellFormat(90, 5, "From", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, "Bill To", "", 0, "L", false, 0, "")
	y += 6
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageLeft, y)
	pdf.CellFormat(90, 5, req.FromName, "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, req.ToName, "", 0, "L", false, 0, "")
	y += 5
	pdf.SetXY(pageLeft, y)
	pdf.CellFormat(90, 5, req.FromEmail, "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, req.ToEmail, "", 0, "L", false, 0, "")
	y += 14

	y = s.tableHeader(pdf, y)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range req.Items {
		if y > pageBottom-20 {
			pdf.AddPage()
			y = 20
			y = s.tableHeader(pdf, y)
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetXY(pageLeft, y)
		pdf.CellFormat(90, 7, item.Description, "B", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%.1f", item.Hours), "B", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", item.Rate), "B", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", item.Amount()), "B", 0, "R", false, 0, "")
		y += 7
	}

	y += 4
	if y > pageBottom-20 {
		pdf.AddPage()
		y = 20
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(pageLeft, y)
	pdf.CellFormat(145, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", req.Total()), "T", 0, "R", false, 0, "")
	y += 14

	if req.Notes != "" {
		if y > pageBottom-20 {
			pdf.AddPage()
			y = 20
		}
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetXY(pageLeft, y)
		pdf.MultiCell(pageRight-pageLeft, 5, "Notes: "+req.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *InvoiceService) tableHeader(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(pageLeft, y)
	pdf.CellFormat(90, 7, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Hours", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Rate", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Amount", "B", 0, "R", false, 0, "")
	return y + 8
}
