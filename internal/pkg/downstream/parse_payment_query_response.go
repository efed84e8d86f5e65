package downstream

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	errs "recopayment/internal/pkg/downstream/error_handling"
	"recopayment/internal/pkg/models"
)

const resultElementName = "ConsultaPagoResult"

// ParsePaymentQueryResponse extracts the six result fields from a
// ConsultaPago response body. The result element is located anywhere in the
// document by local name, ignoring namespaces. An absent result element is
// ResultNotFound; a present element with missing children or non-numeric
// amounts is MalformedUpstreamResponse.
func ParsePaymentQueryResponse(body []byte) (*models.QueryResult, error) {
	result, err := locateResultElement(body)
	if err != nil {
		return nil, err
	}

	fields := map[string]*string{
		"CodigoCliente": result.CodigoCliente,
		"NombreCliente": result.NombreCliente,
		"FechaFactura":  result.FechaFactura,
		"Valor":         result.Valor,
		"ValorLocal":    result.ValorLocal,
		"Moneda":        result.Moneda,
	}
	for name, value := range fields {
		if value == nil {
			return nil, errs.NewMalformedUpstreamResponse(
				fmt.Errorf("result element is missing field %s", name))
		}
	}

	price, err := parseAmount("Valor", *result.Valor)
	if err != nil {
		return nil, err
	}
	localPrice, err := parseAmount("ValorLocal", *result.ValorLocal)
	if err != nil {
		return nil, err
	}

	return &models.QueryResult{
		CustomerCode:      *result.CodigoCliente,
		CustomerName:      *result.NombreCliente,
		InvoiceDate:       *result.FechaFactura,
		InvoicePrice:      price,
		InvoiceLocalPrice: localPrice,
		CurrencyCode:      *result.Moneda,
	}, nil
}

// locateResultElement walks the token stream until it finds the result
// element, then decodes just that subtree.
func locateResultElement(body []byte) (*models.SoapResponseConsultaPagoResult, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil, errs.NewResultNotFound(
				fmt.Errorf("response contains no %s element", resultElementName))
		}
		if err != nil {
			return nil, errs.NewMalformedUpstreamResponse(fmt.Errorf("decode response: %w", err))
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != resultElementName {
			continue
		}

		var result models.SoapResponseConsultaPagoResult
		if err := decoder.DecodeElement(&result, &start); err != nil {
			return nil, errs.NewMalformedUpstreamResponse(fmt.Errorf("decode result element: %w", err))
		}
		return &result, nil
	}
}

func parseAmount(name, text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errs.NewMalformedUpstreamResponse(
			fmt.Errorf("field %s is not numeric: %q", name, text))
	}
	return value, nil
}
