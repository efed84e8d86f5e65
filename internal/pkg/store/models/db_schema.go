package models

// PaymentSubmission is one row of AV_RECO_ENVIOS. A row is written exactly
// once per successful query and never updated or deleted by this service.
type PaymentSubmission struct {
	BankCode          string
	SubsidiaryCode    string
	UserCode          string
	CustomerCode      string
	CurrencyCode      string
	Status            string
	PaidFlag          string
	CustomerName      string
	InvoiceDate       string
	InvoicePrice      float64
	InvoiceLocalPrice float64
}
