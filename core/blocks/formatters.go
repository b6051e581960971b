package blocks

import (
	"fmt"
	"strings"
)

// Leaf formatters. Layout-sensitive blocks are wrapped in tables because
// most email clients ignore CSS layout; all styling stays inline.

func renderButton(b Block) string {
	p := propertiesOf[ButtonProperties](b)

	// Background and radius go on both the cell and the anchor: Outlook
	// paints the cell, everything else paints the anchor.
	return fmt.Sprintf(`
    <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="margin: %[1]s;">
      <tr>
        <td align="%[2]s">
          <table border="0" cellpadding="0" cellspacing="0">
            <tr>
              <td align="center" style="border-radius: %[3]spx; background-color: %[4]s;">
                <a href="%[5]s" target="_blank" style="display: inline-block; padding: %[6]s; font-family: %[7]s; font-size: %[8]spx; font-weight: %[9]s; color: %[10]s; text-decoration: %[11]s; border-radius: %[3]spx;">
                  %[12]s
                </a>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>`,
		p.Margin, p.Align, p.BorderRadius, p.BackgroundColor, p.URL, p.Padding,
		p.FontFamily, p.FontSize, p.FontWeight, p.TextColor, p.TextDecoration, p.Text)
}

func renderDivider(b Block) string {
	p := propertiesOf[DividerProperties](b)

	return fmt.Sprintf(`
    <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="margin: %s;">
      <tr>
        <td align="%s">
          <table border="0" cellpadding="0" cellspacing="0" width="%s%%">
            <tr>
              <td style="border-top: %spx solid %s;"></td>
            </tr>
          </table>
        </td>
      </tr>
    </table>`,
		p.Margin, p.Align, p.Width, p.Height, p.Color)
}

func renderHeading(b Block) string {
	p := propertiesOf[HeadingProperties](b)
	return renderText(p.Level, p.TextStyle)
}

func renderParagraph(b Block) string {
	p := propertiesOf[ParagraphProperties](b)
	return renderText("p", p.TextStyle)
}

// renderText emits a text element; the tag is not validated and the text is not escaped.
func renderText(tag string, s TextStyle) string {
	return fmt.Sprintf(`
    <%[1]s style="margin: %[2]s; padding: %[3]s; font-family: %[4]s; font-size: %[5]spx; font-weight: %[6]s; color: %[7]s; line-height: %[8]s; letter-spacing: %[9]spx; text-align: %[10]s;">
      %[11]s
    </%[1]s>`,
		tag, s.Margin, s.Padding, s.FontFamily, s.FontSize, s.FontWeight, s.Color,
		s.LineHeight, s.LetterSpacing, s.Align, s.Text)
}

func renderImage(b Block) string {
	p := propertiesOf[ImageProperties](b)

	content := fmt.Sprintf(`<img src="%s" alt="%s" width="%s" height="%s" style="display: block; max-width: 100%%; height: auto;" />`,
		p.URL, Escape(p.Alt), p.Width, p.Height)
	if p.Link != "" {
		content = fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, p.Link, content)
	}

	return alignedTable(p.Margin, p.Align, content)
}

func renderVideo(b Block) string {
	p := propertiesOf[VideoProperties](b)

	// Email clients cannot play inline video; link a thumbnail instead.
	content := fmt.Sprintf(`<a href="%s" target="_blank">
            <img src="%s" alt="Video" width="%s" style="display: block; max-width: 100%%; height: auto;" />
          </a>`,
		p.URL, p.ThumbnailURL, p.Width)

	return alignedTable(p.Margin, p.Align, content)
}

func renderSocial(b Block) string {
	p := propertiesOf[SocialProperties](b)
	spacing := p.IconSpacing / 2

	var icons strings.Builder
	for _, icon := range p.Icons {
		fmt.Fprintf(&icons, `
    <a href="%s" target="_blank" style="display: inline-block; margin: 0 %spx;">
      <img src="%s" alt="%s" width="%s" height="%s" style="display: block;" />
    </a>
  `,
			icon.URL, spacing, icon.Platform.IconURL(), icon.Platform, p.IconSize, p.IconSize)
	}

	return alignedTable(p.Margin, p.Align, icons.String())
}

func renderTable(b Block) string {
	p := propertiesOf[TableProperties](b)
	cellStyle := fmt.Sprintf("border: %spx solid %s; padding: %spx; background-color: %s; color: %s; font-size: %spx;",
		p.BorderWidth, p.BorderColor, p.CellPadding, p.BackgroundColor, p.TextColor, p.FontSize)

	var rows strings.Builder
	for _, row := range p.Rows {
		rows.WriteString("\n    <tr>\n      ")
		for _, cell := range row.Cells {
			fmt.Fprintf(&rows, `
        <td style="%s">
          %s
        </td>
      `, cellStyle, Escape(string(cell)))
		}
		rows.WriteString("\n    </tr>\n  ")
	}

	return fmt.Sprintf(`
    <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="margin: %s; border-collapse: collapse;">
      %s
    </table>`,
		p.Margin, rows.String())
}

// renderRow renders each column's blocks recursively. Every column shares
// the row's padding.
func renderRow(b Block) string {
	p := propertiesOf[RowProperties](b)

	var columns strings.Builder
	for _, col := range b.Columns {
		fmt.Fprintf(&columns, `
      <td width="%s%%" valign="top" style="padding: %s;">
        %s
      </td>
    `,
			col.Width, p.Padding, renderBlocks(col.Blocks))
	}

	return fmt.Sprintf(`
    <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="background-color: %s;">
      <tr>
        %s
      </tr>
    </table>`,
		p.BackgroundColor, columns.String())
}

// alignedTable wraps content in the full-width margin table used by media blocks.
func alignedTable(margin Spacing, align, content string) string {
	return fmt.Sprintf(`
    <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="margin: %s;">
      <tr>
        <td align="%s">
          %s
        </td>
      </tr>
    </table>`,
		margin, align, content)
}
