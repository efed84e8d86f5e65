package models

import "encoding/xml"

type SoapRequestEnvelope struct {
	XMLName xml.Name          `xml:"soap:Envelope"`
	Header  SoapRequestHeader `xml:"soap:Header"`
	Body    SoapRequestBody   `xml:"soap:Body"`
}

type SoapRequestHeader struct{}

type SoapRequestBody struct {
	ConsultaPago SoapRequestConsultaPago `xml:"tem:ConsultaPago"`
}

// SoapRequestConsultaPago carries the query identifiers as element text.
// Marshalling escapes any characters illegal in XML text nodes.
type SoapRequestConsultaPago struct {
	CodigoBanco   string `xml:"CodigoBanco"`
	CodigoFilial  string `xml:"CodigoFilial"`
	CodigoUsuario string `xml:"CodigoUsuario"`
	CodigoCliente string `xml:"CodigoCliente"`
	Moneda        string `xml:"Moneda"`
}
