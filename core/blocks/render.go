package blocks

import (
	"fmt"
	"strconv"
	"strings"
)

const documentHead = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>Email</title>
  <style type="text/css">
    body { margin: 0; padding: 0; -webkit-text-size-adjust: 100%%; -ms-text-size-adjust: 100%%; }
    table { border-collapse: collapse; mso-table-lspace: 0pt; mso-table-rspace: 0pt; }
    img { border: 0; height: auto; line-height: 100%%; outline: none; text-decoration: none; -ms-interpolation-mode: bicubic; }
    a { color: %s; text-decoration: underline; }
  </style>
</head>
`

const preheaderBlock = `
  <!-- Preheader Text -->
  <div style="display: none; max-height: 0px; overflow: hidden;">
    %s
  </div>
  <!-- End Preheader -->`

// Render produces a complete XHTML 1.0 Transitional email document with
// every block rendered into a fixed-width content table.
//
// Render never fails. Missing settings interpolate as empty values, and
// unknown blocks contribute empty lines.
func Render(blocks []Block, settings Settings) string {
	s := settings.withDefaults()
	width := s.ContentWidth.String()

	var b strings.Builder
	fmt.Fprintf(&b, documentHead, s.LinkColor)
	fmt.Fprintf(&b, `<body style="margin: 0; padding: 0; background-color: %s; font-family: %s; font-weight: %s; color: %s;">`,
		s.BackgroundColor, s.FontFamily, s.FontWeight, s.TextColor)
	b.WriteString("\n  ")
	if s.PreheaderText != "" {
		fmt.Fprintf(&b, preheaderBlock, Escape(s.PreheaderText))
	}
	fmt.Fprintf(&b, `
  <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="background-color: %s;">
    <tr>
      <td align="%s" style="padding: 20px 0;">
        <table border="0" cellpadding="0" cellspacing="0" width="%s" style="max-width: %spx; background-color: #ffffff;">
          <tr>
            <td style="font-family: %s; font-weight: %s; color: %s;">
              %s
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`,
		s.BackgroundColor, s.ContentAlignment, width, width,
		s.FontFamily, s.FontWeight, s.TextColor, renderBlocks(blocks))

	return b.String()
}

// RenderBlock renders a single block. Unknown types render to "".
func RenderBlock(b Block) string {
	switch b.Type {
	case TypeButton:
		return renderButton(b)
	case TypeDivider:
		return renderDivider(b)
	case TypeHeading:
		return renderHeading(b)
	case TypeParagraph:
		return renderParagraph(b)
	case TypeImage:
		return renderImage(b)
	case TypeVideo:
		return renderVideo(b)
	case TypeSocial:
		return renderSocial(b)
	case TypeTable:
		return renderTable(b)
	case TypeRow:
		return renderRow(b)
	default:
		return ""
	}
}

// renderBlocks renders a block list joined by newlines.
func renderBlocks(blocks []Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = RenderBlock(b)
	}
	return strings.Join(parts, "\n")
}

// formatNumber prints a float in its shortest exact decimal form: 2.5, 50, 33.33.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
