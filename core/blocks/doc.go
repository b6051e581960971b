// Package blocks renders an email document model into a single HTML string
// with all styling inlined.
//
// A document is an ordered list of typed blocks (button, divider, heading,
// paragraph, image, video, social, table, row) plus document-level Settings.
// Render wraps the rendered blocks in an XHTML 1.0 Transitional document built
// from nested tables, which is what most email clients can display reliably.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/blockmail/core/blocks"
//
//	html := blocks.Render([]blocks.Block{
//		{
//			Type: blocks.TypeHeading,
//			Properties: blocks.HeadingProperties{
//				Level: "h1",
//				TextStyle: blocks.TextStyle{
//					Text:       "Welcome aboard",
//					FontFamily: "Arial, sans-serif",
//					FontSize:   28,
//					FontWeight: "bold",
//					Color:      "#111111",
//					LineHeight: "1.2",
//					Align:      "center",
//				},
//			},
//		},
//		{
//			Type: blocks.TypeButton,
//			Properties: blocks.ButtonProperties{
//				Text:            "Get started",
//				URL:             "https://example.com/start",
//				Align:           "center",
//				BackgroundColor: "#2f4574",
//				TextColor:       "#ffffff",
//				FontSize:        16,
//				BorderRadius:    4,
//				Padding:         blocks.Spacing{Top: 12, Right: 24, Bottom: 12, Left: 24},
//			},
//		},
//	}, blocks.Settings{
//		BackgroundColor: "#f4f4f4",
//		FontFamily:      "Arial, sans-serif",
//		ContentWidth:    600,
//		PreheaderText:   "Your account is ready",
//	})
//
// # Documents from the editor
//
// The editor produces JSON with a "blocks" array and a "settings" object.
// ParseDocument decodes it, choosing the property record by each block's type:
//
//	doc, err := blocks.ParseDocument(data)
//	if err != nil {
//		return err // wraps blocks.ErrInvalidDocument
//	}
//	html := doc.Render()
//
// # Lenient Rendering
//
// Rendering never returns an error:
//
//   - Unknown block types render to an empty string.
//   - Missing properties interpolate as zero values ("" or 0), producing
//     malformed CSS rather than a failure.
//   - Unknown social platforms render an icon with an empty src.
//
// Callers that need stricter guarantees must validate documents before rendering.
//
// # Escaping
//
// Escape is applied to the preheader text, image alt text and table cells.
// Button, heading and paragraph text is trusted rich content and is emitted
// unescaped, so it may carry inline markup such as <strong> or <a>.
//
// # templ
//
// Component adapts a Document to templ.Component for code that composes or
// serves templ components.
package blocks
