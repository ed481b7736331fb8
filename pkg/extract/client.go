package extract

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// extractionPrompt asks the model for the exact JSON shape
// decodeExtraction understands.
const extractionPrompt = `Extract the following information from this bill/invoice image and return it as a JSON object:
{
  "billNumber": "invoice number",
  "billDate": "YYYY-MM-DD format",
  "totalAmount": "total amount as string",
  "taxAmount": "total tax amount",
  "cgst": "CGST amount if available",
  "sgst": "SGST amount if available",
  "igst": "IGST amount if available",
  "vendorName": "vendor/supplier name",
  "description": "brief description"
}

If any field is not available, use reasonable defaults. For dates, use today's date if not found. For amounts, use "0" if not found.`

// ClientConfig represents the configuration for the extraction client.
type ClientConfig struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration // Default: 60 seconds
}

// Client calls the Gemini generateContent API to read bill images.
// It implements FieldExtractor.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a new extraction client.
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	baseURL := config.APIURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}

	model := config.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  config.APIKey,
		model:   model,
	}
}

// Request/response wire types for the generateContent endpoint.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ExtractBill sends the image to the model and decodes the structured
// bill fields from its response.
func (c *Client) ExtractBill(imageData []byte, mimeType string) (*ExtractedBill, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: extractionPrompt},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(imageData),
				}},
			},
		}},
		GenerationConfig: generationConfig{
			Temperature:     0.1,
			TopK:            1,
			TopP:            1,
			MaxOutputTokens: 2048,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("extraction service returned no candidates")
	}

	return decodeExtraction(genResp.Candidates[0].Content.Parts[0].Text)
}

// parseError builds an error from a non-200 response.
func (c *Client) parseError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 2048))
	if err != nil || len(body) == 0 {
		return fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("extraction service returned status %d: %s", resp.StatusCode, body)
}
