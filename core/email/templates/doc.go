// Package templates turns templ components into HTML strings suitable for
// email bodies.
//
//	doc, err := blocks.ParseDocument(payload)
//	if err != nil {
//		return err
//	}
//
//	body, err := templates.Render(ctx, blocks.Component(doc))
//	if err != nil {
//		return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Monthly digest",
//		BodyHTML: body,
//	})
//
// Any templ.Component works, including hand written .templ layouts.
// Rendering errors and empty output are wrapped in email.ErrRenderFailed.
package templates
