package dtos

import "time"

// InvoiceRequest carries everything the PDF renderer needs as plain records.
// Invoices are not persisted; the endpoint renders and returns the bytes.
type InvoiceRequest struct {
	InvoiceNumber string    `json:"invoice_number" binding:"required"`
	IssueDate     time.Time `json:"issue_date" binding:"required"`
	DueDate       time.Time `json:"due_date" binding:"required"`

	FromName  string `json:"from_name" binding:"required"`
	FromEmail string `json:"from_email" binding:"required,email"`
	ToName    string `json:"to_name" binding:"required"`
	ToEmail   string `json:"to_email" binding:"omitempty,email"`

	Items []InvoiceItem `json:"items" binding:"required,min=1,dive"`
	Notes string        `json:"notes"`
}

type InvoiceItem struct {
	Description string  `json:"description" binding:"required"`
	Hours       float64 `json:"hours" binding:"required,gt=0"`
	Rate        float64 `json:"rate" binding:"required,gte=0"`
}

func (i InvoiceItem) Amount() float64 { return i.Hours * i.Rate }

func (r *InvoiceRequest) Total() float64 {
	var total float64
	for _, item := range r.Items {
		total += item.Amount()
	}
	return total
}
