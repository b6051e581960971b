package blocks

// Document-level fallbacks for the optional settings.
const (
	DefaultLinkColor        = "#2f4574"
	DefaultFontWeight       = "normal"
	DefaultTextColor        = "#000000"
	DefaultContentAlignment = "center"
)

// Settings holds the document-wide styles applied by the document wrapper.
// BackgroundColor, FontFamily and ContentWidth have no defaults.
type Settings struct {
	BackgroundColor  string   `json:"backgroundColor" toml:"background_color"`
	FontFamily       string   `json:"fontFamily" toml:"font_family"`
	FontWeight       CSSValue `json:"fontWeight" toml:"font_weight"`
	TextColor        string   `json:"textColor" toml:"text_color"`
	LinkColor        string   `json:"linkColor" toml:"link_color"`
	ContentWidth     Number   `json:"contentWidth" toml:"content_width"`
	ContentAlignment string   `json:"contentAlignment" toml:"content_alignment"`
	PreheaderText    string   `json:"preheaderText,omitempty" toml:"preheader_text"`
}

// withDefaults fills the optional fields the wrapper falls back on.
func (s Settings) withDefaults() Settings {
	if s.LinkColor == "" {
		s.LinkColor = DefaultLinkColor
	}
	if s.FontWeight == "" {
		s.FontWeight = DefaultFontWeight
	}
	if s.TextColor == "" {
		s.TextColor = DefaultTextColor
	}
	if s.ContentAlignment == "" {
		s.ContentAlignment = DefaultContentAlignment
	}
	return s
}

// Merge returns a copy of s with every non-zero field of overlay applied on top.
func (s Settings) Merge(overlay Settings) Settings {
	if overlay.BackgroundColor != "" {
		s.BackgroundColor = overlay.BackgroundColor
	}
	if overlay.FontFamily != "" {
		s.FontFamily = overlay.FontFamily
	}
	if overlay.FontWeight != "" {
		s.FontWeight = overlay.FontWeight
	}
	if overlay.TextColor != "" {
		s.TextColor = overlay.TextColor
	}
	if overlay.LinkColor != "" {
		s.LinkColor = overlay.LinkColor
	}
	if overlay.ContentWidth != 0 {
		s.ContentWidth = overlay.ContentWidth
	}
	if overlay.ContentAlignment != "" {
		s.ContentAlignment = overlay.ContentAlignment
	}
	if overlay.PreheaderText != "" {
		s.PreheaderText = overlay.PreheaderText
	}
	return s
}

// Document pairs the block list with its settings, as produced by the editor.
type Document struct {
	Blocks   []Block  `json:"blocks"`
	Settings Settings `json:"settings"`
}

// Render renders the document. See Render.
func (d Document) Render() string {
	return Render(d.Blocks, d.Settings)
}
