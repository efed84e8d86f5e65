package models

// SoapResponseConsultaPagoResult is the result element of a ConsultaPago
// response. Pointer fields distinguish an absent child from an empty one, so
// the parser can reject partial results explicitly.
type SoapResponseConsultaPagoResult struct {
	CodigoCliente *string `xml:"CodigoCliente"`
	NombreCliente *string `xml:"NombreCliente"`
	FechaFactura  *string `xml:"FechaFactura"`
	Valor         *string `xml:"Valor"`
	ValorLocal    *string `xml:"ValorLocal"`
	Moneda        *string `xml:"Moneda"`
}
