package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/blockmail/core/blocks"
	"github.com/dmitrymomot/blockmail/core/email/templates"
	"github.com/dmitrymomot/blockmail/core/handler"
	"github.com/dmitrymomot/blockmail/core/logger"
	"github.com/dmitrymomot/blockmail/core/mailer"
	"github.com/dmitrymomot/blockmail/core/response"
)

// PreviewResponse is returned by POST /previews.
type PreviewResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a *API) render(r *http.Request) handler.Response {
	doc, err := decodeDocument(r)
	if err != nil {
		return response.Error(err)
	}
	return response.Templ(blocks.Component(doc))
}

func (a *API) createPreview(r *http.Request) handler.Response {
	if a.previews == nil {
		return response.Error(ErrPreviewsDisabled)
	}

	doc, err := decodeDocument(r)
	if err != nil {
		return response.Error(err)
	}

	html, err := templates.Render(r.Context(), blocks.Component(doc))
	if err != nil {
		return response.Error(err)
	}

	p, err := a.previews.Save(r.Context(), html)
	if err != nil {
		return response.Error(err)
	}
	a.log.DebugContext(r.Context(), "preview stored", logger.PreviewID(p.ID), logger.Bytes(len(html)))

	location := a.baseURL + "/previews/" + p.ID
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Location", location)
		return response.JSONWithStatus(PreviewResponse{
			ID:        p.ID,
			URL:       location,
			ExpiresAt: p.ExpiresAt,
		}, http.StatusCreated)(w, r)
	}
}

func (a *API) getPreview(r *http.Request) handler.Response {
	if a.previews == nil {
		return response.Error(ErrPreviewsDisabled)
	}

	p, err := a.previews.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return response.Error(err)
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Cache-Control", "private, no-store")
		return response.HTML(p.HTML)(w, r)
	}
}

func (a *API) send(r *http.Request) handler.Response {
	if err := requireJSON(r); err != nil {
		return response.Error(err)
	}

	var msg mailer.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		return response.Error(decodeError(err))
	}

	res, err := a.mailer.Send(r.Context(), msg)
	if err != nil {
		return response.Error(err)
	}
	return response.JSONWithStatus(res, http.StatusAccepted)
}

func decodeDocument(r *http.Request) (blocks.Document, error) {
	if err := requireJSON(r); err != nil {
		return blocks.Document{}, err
	}
	doc, err := blocks.DecodeDocument(r.Body)
	if err != nil {
		return blocks.Document{}, decodeError(err)
	}
	return doc, nil
}

// decodeError keeps document errors as they are and reports oversized
// bodies as 413.
func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return response.ErrRequestEntityTooLarge.WithMessage(
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
	}
	if errors.Is(err, blocks.ErrInvalidDocument) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

// requireJSON accepts a missing Content-Type and any JSON media type.
func requireJSON(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil || (mt != "application/json" && mt != "text/json") {
		return ErrUnsupportedContent
	}
	return nil
}
