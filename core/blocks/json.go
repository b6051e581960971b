package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSSValue is a CSS token the editor may send either as a JSON string
// ("bold", "1.5") or as a JSON number (700, 1.5). The textual form is kept verbatim.
type CSSValue string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (v *CSSValue) UnmarshalJSON(data []byte) error {
	var c Cell
	if err := c.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("css value: %w", err)
	}
	*v = CSSValue(c)
	return nil
}

// UnmarshalTOML accepts TOML strings, integers and floats.
func (v *CSSValue) UnmarshalTOML(data any) error {
	switch x := data.(type) {
	case string:
		*v = CSSValue(x)
	case int64:
		*v = CSSValue(strconv.FormatInt(x, 10))
	case float64:
		*v = CSSValue(formatNumber(x))
	default:
		return fmt.Errorf("css value must be a string or a number, got %T", data)
	}
	return nil
}

// Number is a numeric property. The editor usually sends JSON numbers but
// older documents carry numeric strings ("16"). Values that are not numbers
// decode to zero instead of failing the document.
type Number float64

// String prints the shortest exact decimal form: 16, 2.5, 33.33.
func (n Number) String() string { return formatNumber(float64(n)) }

// UnmarshalJSON accepts numbers and numeric strings. Anything else is zero.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		*n = Number(f)
	}
	return nil
}

// UnmarshalTOML accepts TOML integers, floats and numeric strings.
func (n *Number) UnmarshalTOML(data any) error {
	switch x := data.(type) {
	case int64:
		*n = Number(x)
	case float64:
		*n = Number(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return fmt.Errorf("number expected, got %q", x)
		}
		*n = Number(f)
	default:
		return fmt.Errorf("number expected, got %T", data)
	}
	return nil
}

// Cell is the text of one table cell. Numbers and booleans are kept in
// their JSON text form, so 2024 renders as "2024" and true as "true".
type Cell string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*c = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cell(s)
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*c = Cell(data)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("table cell must be a string, number or boolean: %w", err)
		}
		*c = Cell(num.String())
	}
	return nil
}

type rawBlock struct {
	Type       BlockType       `json:"type"`
	Properties json.RawMessage `json:"properties"`
	Columns    []Column        `json:"columns"`
}

// UnmarshalJSON decodes properties into the record matching the block type.
// Unknown types are kept with nil properties.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw rawBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	props, err := decodeProperties(raw.Type, raw.Properties)
	if err != nil {
		return fmt.Errorf("%s block: %w", raw.Type, err)
	}

	*b = Block{
		Type:       raw.Type,
		Properties: props,
		Columns:    raw.Columns,
	}
	return nil
}

func decodeProperties(t BlockType, data json.RawMessage) (Properties, error) {
	switch t {
	case TypeButton:
		return decodeInto[ButtonProperties](data)
	case TypeDivider:
		return decodeInto[DividerProperties](data)
	case TypeHeading:
		return decodeInto[HeadingProperties](data)
	case TypeParagraph:
		return decodeInto[ParagraphProperties](data)
	case TypeImage:
		return decodeInto[ImageProperties](data)
	case TypeVideo:
		return decodeInto[VideoProperties](data)
	case TypeSocial:
		return decodeInto[SocialProperties](data)
	case TypeTable:
		return decodeInto[TableProperties](data)
	case TypeRow:
		return decodeInto[RowProperties](data)
	default:
		return nil, nil
	}
}

func decodeInto[T Properties](data json.RawMessage) (Properties, error) {
	var p T
	if len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseDocument decodes an editor document from JSON.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}

// DecodeDocument reads and decodes an editor document from r.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}
