package models

// PaymentQueryRequest is the inbound /query body. All three identifiers are
// opaque codes; presence is the only validation applied.
type PaymentQueryRequest struct {
	CodeCustomer   string `json:"code_customer" binding:"required"`
	CodeSubsidiary string `json:"code_subsidiary" binding:"required"`
	CodeUser       string `json:"code_user" binding:"required"`
}

// QueryResult holds the six fields extracted from the ConsultaPago response.
// A partial result is never produced: parsing fails unless every field is
// present.
type QueryResult struct {
	CustomerCode      string
	CustomerName      string
	InvoiceDate       string
	InvoicePrice      float64
	InvoiceLocalPrice float64
	CurrencyCode      string
}

// PaymentQueryData is the payload returned to the caller on success.
type PaymentQueryData struct {
	ID                int64   `json:"id"`
	CustomerCode      string  `json:"customer_code"`
	CustomerName      string  `json:"customer_name"`
	InvoiceDate       string  `json:"invoice_date"`
	InvoicePrice      float64 `json:"invoice_price"`
	InvoiceLocalPrice float64 `json:"invoice_local_price"`
}
