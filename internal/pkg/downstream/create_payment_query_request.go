package downstream

import (
	"encoding/xml"

	"recopayment/internal/pkg/consts"
	"recopayment/internal/pkg/models"
)

type soapEnvelope struct {
	XMLName   xml.Name                 `xml:"soap:Envelope"`
	XmlnsSoap string                   `xml:"xmlns:soap,attr"`
	XmlnsTem  string                   `xml:"xmlns:tem,attr"`
	Header    models.SoapRequestHeader `xml:"soap:Header"`
	Body      soapBody                 `xml:"soap:Body"`
}

type soapBody struct {
	ConsultaPago models.SoapRequestConsultaPago `xml:"tem:ConsultaPago"`
}

// CreatePaymentQueryRequest builds the ConsultaPago SOAP 1.1 envelope. The
// bank code and currency are fixed; the three identifiers come from the
// caller and are emitted as element text.
func CreatePaymentQueryRequest(subsidiaryCode, userCode, customerCode string) (string, error) {
	env := soapEnvelope{
		XmlnsSoap: "http://schemas.xmlsoap.org/soap/envelope/",
		XmlnsTem:  consts.SoapNamespace,
		Header:    models.SoapRequestHeader{},
		Body: soapBody{
			ConsultaPago: models.SoapRequestConsultaPago{
				CodigoBanco:   consts.BankCode,
				CodigoFilial:  subsidiaryCode,
				CodigoUsuario: userCode,
				CodigoCliente: customerCode,
				Moneda:        consts.CurrencyCode,
			},
		},
	}

	out, err := xml.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", err
	}

	xmlHeader := `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	return xmlHeader + string(out), nil
}
