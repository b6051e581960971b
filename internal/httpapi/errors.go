package httpapi

import (
	"errors"

	"github.com/dmitrymomot/blockmail/core/blocks"
	"github.com/dmitrymomot/blockmail/core/email"
	"github.com/dmitrymomot/blockmail/core/mailer"
	"github.com/dmitrymomot/blockmail/core/preview"
	"github.com/dmitrymomot/blockmail/core/response"
)

var (
	ErrInvalidRequest     = errors.New("invalid request body")
	ErrPreviewsDisabled   = errors.New("previews are disabled")
	ErrUnsupportedContent = errors.New("content type must be application/json")
)

var errorRules = []response.Rule{
	response.Map(blocks.ErrInvalidDocument, response.ErrBadRequest),
	response.Map(ErrInvalidRequest, response.ErrBadRequest),
	response.Map(email.ErrInvalidParams, response.ErrBadRequest),
	response.Map(ErrUnsupportedContent, response.ErrUnsupportedMediaType),
	response.Map(mailer.ErrRenderEmpty, response.ErrUnprocessableEntity),
	response.Map(preview.ErrNotFound, response.ErrNotFound),
	response.Map(email.ErrFailedToSendEmail, response.ErrBadGateway),
	response.Map(mailer.ErrNoSender, response.ErrServiceUnavailable),
	response.Map(ErrPreviewsDisabled, response.ErrNotImplemented),
}
