// Package response builds handler.Response values for text, HTML, JSON and
// templ components, and converts handler errors into HTTP error responses.
//
//	func render(r *http.Request) handler.Response {
//		doc, err := blocks.DecodeDocument(r.Body)
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.Templ(blocks.Component(doc))
//	}
//
// Errors are mapped to statuses with rules:
//
//	onError := response.JSONErrorHandler(
//		response.Map(blocks.ErrInvalidDocument, response.ErrBadRequest),
//		response.Map(preview.ErrNotFound, response.ErrNotFound),
//	)
//
// Any error that is, or wraps, an HTTPError keeps its own status. Errors
// with a StatusCode() int method use that status. Everything else is a 500.
package response
