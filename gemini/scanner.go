package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/pantry"
	"google.golang.org/genai"
)

// Ensure Scanner implements pantry.Scanner at compile time.
var _ pantry.Scanner = (*Scanner)(nil)

// ScanPrompt is sent alongside the receipt image.
const ScanPrompt = `Read this grocery receipt and list every purchased food or household item.
For each line return:
- raw_name: the text exactly as printed on the receipt
- clean_name: the common product name a person would use at home (e.g. "AMUL TAZA 1L" -> "Milk"); leave empty if you cannot tell
- category: one of Dairy, Produce, Meat, Seafood, Bakery, Grains, Spices, Snacks, Beverages, Frozen, Household, Other
- quantity: the purchased count as printed (e.g. "2", "3 bottles")
- unit: the unit if printed (kg, g, L, ml, pack), otherwise empty
- ambiguous: true when the receipt text is an abbreviation or brand code you cannot confidently name
Ignore totals, taxes, discounts and payment lines.`

// Scanner implements pantry.Scanner using Gemini vision.
type Scanner struct {
	client *genai.Client
	model  string
}

// NewScanner creates a new Scanner.
func NewScanner(client *genai.Client, model string) *Scanner {
	return &Scanner{client: client, model: model}
}

// Scan reads the receipt image and returns the purchased items.
// When mimeType is empty it is sniffed from the image bytes.
func (s *Scanner) Scan(ctx context.Context, image []byte, mimeType string) ([]*pantry.ScannedItem, error) {
	if len(image) == 0 {
		return nil, pantry.Errorf(pantry.EINVALID, "receipt image required")
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, pantry.Errorf(pantry.EINVALID, "unsupported receipt type %q", mimeType)
	}

	text, err := generate(ctx, s.client, s.model, []*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText(ScanPrompt),
	}, BuildScanConfig())
	if err != nil {
		return nil, err
	}

	return ParseScanResponse(text)
}

// BuildScanConfig returns the GenerateContentConfig for receipt scanning.
func BuildScanConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"You are a meticulous grocery receipt reader. Return only items that were actually purchased.",
		),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   scanSchema(),
	}
}

func scanSchema() *genai.Schema {
	item := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"raw_name":   stringSchema("Text as printed on the receipt"),
			"clean_name": stringSchema("Common product name"),
			"category":   stringSchema("Product category"),
			"quantity":   stringSchema("Purchased quantity as printed"),
			"unit":       stringSchema("Unit of measure, if any"),
			"ambiguous":  {Type: genai.TypeBoolean},
		},
		Required: []string{"raw_name", "clean_name", "quantity"},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"items": {Type: genai.TypeArray, Items: item},
		},
		Required: []string{"items"},
	}
}

// scannedItem mirrors pantry.ScannedItem on the wire. Quantity is decoded
// loosely because models return both 2 and "2".
type scannedItem struct {
	RawName   string `json:"raw_name"`
	CleanName string `json:"clean_name"`
	Category  string `json:"category"`
	Quantity  any    `json:"quantity"`
	Unit      string `json:"unit"`
	Ambiguous bool   `json:"ambiguous"`
}

// ParseScanResponse decodes the model's JSON answer, tolerating code fences
// and a bare top-level array.
func ParseScanResponse(text string) ([]*pantry.ScannedItem, error) {
	body := pantry.StripCodeFence(text)

	var wire struct {
		Items []scannedItem `json:"items"`
	}
	var err error
	if strings.HasPrefix(body, "[") {
		err = json.Unmarshal([]byte(body), &wire.Items)
	} else {
		err = json.Unmarshal([]byte(body), &wire)
	}
	if err != nil {
		return nil, pantry.Errorf(pantry.EINTERNAL, "could not decode scan response: %v", err)
	}

	items := make([]*pantry.ScannedItem, 0, len(wire.Items))
	for _, w := range wire.Items {
		if strings.TrimSpace(w.RawName) == "" && strings.TrimSpace(w.CleanName) == "" {
			continue
		}
		var quantity string
		if w.Quantity != nil {
			quantity = fmt.Sprint(w.Quantity)
		}
		items = append(items, &pantry.ScannedItem{
			RawName:   strings.TrimSpace(w.RawName),
			CleanName: strings.TrimSpace(w.CleanName),
			Category:  strings.TrimSpace(w.Category),
			Quantity:  quantity,
			Unit:      strings.TrimSpace(w.Unit),
			Ambiguous: w.Ambiguous,
		})
	}

	return items, nil
}
