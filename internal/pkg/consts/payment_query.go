package consts

// Fixed values sent on every ConsultaPago invocation. The bank code and
// currency are contractual constants of the RECO integration.
const (
	BankCode     = "8"
	CurrencyCode = "LPS"
)

// Column constants written with every persisted query result.
const (
	StatusConsulted = "CON"
	PaidFlagNo      = "N"
)

// SOAP wire constants for the upstream banking service.
const (
	SoapNamespace   = "http://tempuri.org/"
	SoapAction      = "http://tempuri.org/ConsultaPago"
	SoapContentType = "text/xml;charset=UTF-8"
)

