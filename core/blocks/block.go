package blocks

import "fmt"

// BlockType is the discriminant of a Block.
type BlockType string

// Supported block types. Anything else renders to an empty string.
const (
	TypeButton    BlockType = "button"
	TypeDivider   BlockType = "divider"
	TypeHeading   BlockType = "heading"
	TypeParagraph BlockType = "paragraph"
	TypeImage     BlockType = "image"
	TypeVideo     BlockType = "video"
	TypeSocial    BlockType = "social"
	TypeTable     BlockType = "table"
	TypeRow       BlockType = "row"
)

// Known reports whether the renderer has a formatter for the type.
func (t BlockType) Known() bool {
	switch t {
	case TypeButton, TypeDivider, TypeHeading, TypeParagraph, TypeImage,
		TypeVideo, TypeSocial, TypeTable, TypeRow:
		return true
	}
	return false
}

// Block is one renderable unit of a document.
// Properties holds the type-specific record (value or pointer form).
// Columns is only meaningful for TypeRow.
type Block struct {
	Type       BlockType  `json:"type"`
	Properties Properties `json:"properties,omitempty"`
	Columns    []Column   `json:"columns,omitempty"`
}

// Column is a single cell of a row block. Width is a percentage of the row.
type Column struct {
	Width  Number  `json:"width"`
	Blocks []Block `json:"blocks"`
}

// Properties is implemented by the per-type property records.
// The set is closed: only the records declared in this package satisfy it.
type Properties interface {
	blockType() BlockType
}

// Spacing is a four-sided pixel box used for margins and paddings.
type Spacing struct {
	Top    Number `json:"top" toml:"top"`
	Right  Number `json:"right" toml:"right"`
	Bottom Number `json:"bottom" toml:"bottom"`
	Left   Number `json:"left" toml:"left"`
}

// String formats the box as a CSS shorthand, e.g. "10px 0px 10px 0px".
func (s Spacing) String() string {
	return fmt.Sprintf("%spx %spx %spx %spx", s.Top, s.Right, s.Bottom, s.Left)
}

// ButtonProperties describes a call-to-action link styled as a button.
// Text is emitted as-is and may contain markup.
type ButtonProperties struct {
	Text            string   `json:"text"`
	URL             string   `json:"url"`
	Align           string   `json:"align"`
	BackgroundColor string   `json:"backgroundColor"`
	TextColor       string   `json:"textColor"`
	FontFamily      string   `json:"fontFamily"`
	FontSize        Number   `json:"fontSize"`
	FontWeight      CSSValue `json:"fontWeight"`
	TextDecoration  string   `json:"textDecoration"`
	BorderRadius    Number   `json:"borderRadius"`
	Margin          Spacing  `json:"margin"`
	Padding         Spacing  `json:"padding"`
}

// DividerProperties describes a horizontal rule. Width is a percentage,
// Height is the line thickness in pixels.
type DividerProperties struct {
	Align  string  `json:"align"`
	Width  Number  `json:"width"`
	Height Number  `json:"height"`
	Color  string  `json:"color"`
	Margin Spacing `json:"margin"`
}

// TextStyle is shared by headings and paragraphs.
type TextStyle struct {
	Text          string   `json:"text"`
	FontFamily    string   `json:"fontFamily"`
	FontSize      Number   `json:"fontSize"`
	FontWeight    CSSValue `json:"fontWeight"`
	Color         string   `json:"color"`
	LineHeight    CSSValue `json:"lineHeight"`
	LetterSpacing Number   `json:"letterSpacing"`
	Align         string   `json:"align"`
	Margin        Spacing  `json:"margin"`
	Padding       Spacing  `json:"padding"`
}

// HeadingProperties renders as <h1>..<h6>, selected by Level.
// Level is used as the tag name without validation.
type HeadingProperties struct {
	Level string `json:"level"`
	TextStyle
}

// ParagraphProperties renders as <p>.
type ParagraphProperties struct {
	TextStyle
}

// ImageProperties describes an image, optionally linked.
type ImageProperties struct {
	URL    string   `json:"url"`
	Alt    string   `json:"alt"`
	Link   string   `json:"link"`
	Width  CSSValue `json:"width"`
	Height CSSValue `json:"height"`
	Align  string   `json:"align"`
	Margin Spacing  `json:"margin"`
}

// VideoProperties renders a clickable thumbnail pointing at URL.
type VideoProperties struct {
	URL          string   `json:"url"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Width        CSSValue `json:"width"`
	Align        string   `json:"align"`
	Margin       Spacing  `json:"margin"`
}

// SocialIcon is one entry of a social block.
type SocialIcon struct {
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
}

// SocialProperties describes a row of linked platform icons.
// IconSpacing is split evenly between the left and right side of each icon.
type SocialProperties struct {
	Icons       []SocialIcon `json:"icons"`
	IconSize    Number       `json:"iconSize"`
	IconSpacing Number       `json:"iconSpacing"`
	Align       string       `json:"align"`
	Margin      Spacing      `json:"margin"`
}

// TableRow is an ordered list of plain-text cells.
type TableRow struct {
	Cells []Cell `json:"cells"`
}

// TableProperties describes a data table. Styling applies to every cell.
type TableProperties struct {
	Rows            []TableRow `json:"rows"`
	BorderWidth     Number     `json:"borderWidth"`
	BorderColor     string     `json:"borderColor"`
	CellPadding     Number     `json:"cellPadding"`
	BackgroundColor string     `json:"backgroundColor"`
	TextColor       string     `json:"textColor"`
	FontSize        Number     `json:"fontSize"`
	Margin          Spacing    `json:"margin"`
}

// RowProperties styles a multi-column row. Padding is applied to every column.
type RowProperties struct {
	BackgroundColor string  `json:"backgroundColor"`
	Padding         Spacing `json:"padding"`
}

func (ButtonProperties) blockType() BlockType    { return TypeButton }
func (DividerProperties) blockType() BlockType   { return TypeDivider }
func (HeadingProperties) blockType() BlockType   { return TypeHeading }
func (ParagraphProperties) blockType() BlockType { return TypeParagraph }
func (ImageProperties) blockType() BlockType     { return TypeImage }
func (VideoProperties) blockType() BlockType     { return TypeVideo }
func (SocialProperties) blockType() BlockType    { return TypeSocial }
func (TableProperties) blockType() BlockType     { return TypeTable }
func (RowProperties) blockType() BlockType       { return TypeRow }

// propertiesOf extracts the record of type T from a block.
// A missing or mismatched record yields the zero value, so formatters
// degrade to empty interpolations instead of failing.
func propertiesOf[T any](b Block) T {
	switch p := any(b.Properties).(type) {
	case T:
		return p
	case *T:
		if p != nil {
			return *p
		}
	}
	var zero T
	return zero
}
