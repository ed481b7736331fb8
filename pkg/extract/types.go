// Package extract calls the vision model that reads bill images and
// returns the structured fields the ledger deriver consumes.
package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/billtally/billtally/pkg/ledger"
)

// ExtractedBill holds the fields the model reads off a bill image.
type ExtractedBill struct {
	BillNumber  string
	BillDate    string // YYYY-MM-DD
	VendorName  string
	Description string
	TotalAmount float64
	TaxAmount   float64
	CGST        float64
	SGST        float64
	IGST        float64
}

// ToBill converts the extraction into a bill owned by the user.
func (e *ExtractedBill) ToBill(userID string, billType ledger.BillType) ledger.Bill {
	return ledger.Bill{
		UserID:      userID,
		VendorName:  e.VendorName,
		BillNumber:  e.BillNumber,
		BillType:    billType,
		BillDate:    e.BillDate,
		TotalAmount: e.TotalAmount,
		TaxAmount:   e.TaxAmount,
		CGST:        e.CGST,
		SGST:        e.SGST,
		IGST:        e.IGST,
		Description: e.Description,
	}
}

// FieldExtractor extracts structured bill fields from an image.
// This interface enables mocking the vision service in tests.
type FieldExtractor interface {
	ExtractBill(imageData []byte, mimeType string) (*ExtractedBill, error)
}

// amount accepts both JSON numbers and numeric strings; the model is
// prompted to return amounts as strings but does not always comply.
type amount float64

func (a *amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = amount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("amount is neither number nor string: %s", data)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		*a = 0
		return nil
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return fmt.Errorf("failed to parse amount %q: %w", s, err)
	}
	*a = amount(f)
	return nil
}

// extractionPayload is the JSON object the model is prompted to emit.
type extractionPayload struct {
	BillNumber  string `json:"billNumber"`
	BillDate    string `json:"billDate"`
	VendorName  string `json:"vendorName"`
	Description string `json:"description"`
	TotalAmount amount `json:"totalAmount"`
	TaxAmount   amount `json:"taxAmount"`
	CGST        amount `json:"cgst"`
	SGST        amount `json:"sgst"`
	IGST        amount `json:"igst"`
}

// decodeExtraction parses the model's text output into an
// ExtractedBill, tolerating a markdown code fence around the JSON.
func decodeExtraction(text string) (*ExtractedBill, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var payload extractionPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse extraction output: %w", err)
	}

	return &ExtractedBill{
		BillNumber:  payload.BillNumber,
		BillDate:    payload.BillDate,
		VendorName:  payload.VendorName,
		Description: payload.Description,
		TotalAmount: float64(payload.TotalAmount),
		TaxAmount:   float64(payload.TaxAmount),
		CGST:        float64(payload.CGST),
		SGST:        float64(payload.SGST),
		IGST:        float64(payload.IGST),
	}, nil
}
