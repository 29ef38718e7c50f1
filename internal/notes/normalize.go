// Package notes converts raw extraction output into persisted fiscal notes.
package notes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matheus-feu/nf-bot-zap/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingField = errors.New("required field missing")
	ErrBadDate      = errors.New("invalid date format")
	ErrBadNumber    = errors.New("invalid numeric value")
)

// Accepted issue date layouts, tried in order.
var dateLayouts = []string{"02/01/2006", "2006-01-02"}

// BuildNote converts the schema-less mapping returned by the extraction
// engine into a typed Note aggregate. Header validation failures abort with
// an error; candidate items missing any required field are dropped silently
// and never fail the pipeline.
func BuildNote(raw map[string]interface{}, pdfURL string) (*models.Note, error) {
	provider := stringValue(raw["provider"])
	if provider == "" {
		return nil, fmt.Errorf("%w: provider", ErrMissingField)
	}

	dateRaw := stringValue(raw["date_of_issue"])
	if dateRaw == "" {
		return nil, fmt.Errorf("%w: date_of_issue", ErrMissingField)
	}

	dateOfIssue, err := parseIssueDate(dateRaw)
	if err != nil {
		return nil, err
	}

	totalRaw, ok := raw["total_value"]
	if !ok || totalRaw == nil {
		return nil, fmt.Errorf("%w: total_value", ErrMissingField)
	}

	totalValue, ok := decimalValue(totalRaw)
	if !ok {
		return nil, fmt.Errorf("%w: total_value %v", ErrBadNumber, totalRaw)
	}

	note := &models.Note{
		NoteType:          stringValue(raw["note_type"]),
		NoteNumber:        stringValue(raw["note_number"]),
		Series:            stringValue(raw["series"]),
		AccessKey:         stringValue(raw["access_key"]),
		IssuerCNPJ:        stringValue(raw["issuer_cnpj"]),
		IssuerIE:          stringValue(raw["issuer_ie"]),
		IssuerCity:        stringValue(raw["issuer_city"]),
		IssuerState:       stringValue(raw["issuer_state"]),
		IssuerZipCode:     stringValue(raw["issuer_zip_code"]),
		Provider:          provider,
		NatureOfOperation: stringValue(raw["nature_of_operation"]),
		ProtocolNumber:    stringValue(raw["protocol_number"]),
		DateOfIssue:       dateOfIssue,
		TotalValue:        totalValue.Round(2),
		PDFURL:            pdfURL,
	}

	rawItems, _ := raw["items"].([]interface{})
	for _, rawItem := range rawItems {
		itemMap, ok := rawItem.(map[string]interface{})
		if !ok {
			continue
		}

		if item, ok := buildItem(itemMap); ok {
			note.Items = append(note.Items, item)
		}
	}

	return note, nil
}

// buildItem validates one candidate line item. All four of product_name,
// quantity, unit_of_measure and unit_value must be present and parseable.
func buildItem(m map[string]interface{}) (models.NoteItem, bool) {
	name := stringValue(m["product_name"])
	if name == "" {
		return models.NoteItem{}, false
	}

	quantity, ok := decimalValue(m["quantity"])
	if !ok {
		return models.NoteItem{}, false
	}

	unit := stringValue(m["unit_of_measure"])
	if unit == "" {
		return models.NoteItem{}, false
	}

	unitValue, ok := decimalValue(m["unit_value"])
	if !ok {
		return models.NoteItem{}, false
	}

	return models.NoteItem{
		ProductName:   name,
		ProductCode:   stringValue(m["product_code"]),
		NCM:           stringValue(m["ncm"]),
		CFOP:          stringValue(m["cfop"]),
		DiscountValue: nullDecimalValue(m["discount_value"]),
		ICMSValue:     nullDecimalValue(m["icms_value"]),
		IPIValue:      nullDecimalValue(m["ipi_value"]),
		Quantity:      quantity.Round(4),
		UnitOfMeasure: unit,
		UnitValue:     unitValue.Round(4),
	}, true
}

func parseIssueDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, raw)
}

// stringValue tolerates the model emitting strings or bare JSON numbers for
// textual fields such as note_number.
func stringValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}

func decimalValue(v interface{}) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case float64:
		return decimal.NewFromFloat(value), true
	default:
		return decimal.Decimal{}, false
	}
}

func nullDecimalValue(v interface{}) decimal.NullDecimal {
	d, ok := decimalValue(v)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d.Round(4), Valid: true}
}
