package handler

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/oklog/ulid/v2"

	"github.com/bolao/landing/internal/middleware"
	"github.com/bolao/landing/internal/model"
	"github.com/bolao/landing/internal/service"
	"github.com/bolao/landing/internal/view"
)

// MsgSubmissionPending is shown when the same form is posted twice while
// the first post is still being processed.
const MsgSubmissionPending = "Seu bolão já está sendo criado, aguarde um instante"

// PoolSubmitter creates pools on behalf of a form.
type PoolSubmitter interface {
	Submit(ctx context.Context, form *service.Form, sub service.Submission, clip service.Clipboard, notify service.Notifier) (string, error)
}

// PageHandler serves the landing page and its pool creation form.
type PageHandler struct {
	stats   *model.Stats
	creator PoolSubmitter
	logger  *slog.Logger
}

// NewPageHandler creates a PageHandler rendering the given snapshot.
// The snapshot is never modified.
func NewPageHandler(stats *model.Stats, creator PoolSubmitter, logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		stats:   stats,
		creator: creator,
		logger:  logger,
	}
}

// Home renders the landing page with an empty form.
//
// GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.HomeProps{Token: newToken()})
}

// CreatePool handles the form post.
//
// POST /pools
//
// Responses re-render the page:
//   - 201: title cleared, invite code shown and copied by the page script
//   - 409: the same form is still being processed
//   - 422: blank title
//   - 502: backend unreachable or failing
//
// Failures keep the posted title and token so the visitor can resubmit.
func (h *PageHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("invalid form post",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()),
		)
		h.render(w, r, http.StatusBadRequest, view.HomeProps{
			Token:  newToken(),
			Notice: &view.Notice{Kind: view.NoticeError, Message: service.MsgPoolCreateFailed},
		})
		return
	}

	token := r.PostForm.Get("token")
	if token != "" {
		if _, err := ulid.ParseStrict(token); err != nil {
			token = ""
		}
	}

	form := service.NewForm()
	form.SetTitle(r.PostForm.Get("title"))

	clip := &pageClipboard{}
	notice := &pageNotifier{}

	code, err := h.creator.Submit(r.Context(), form, service.Submission{Token: token}, clip, notice)
	if err == nil {
		h.render(w, r, http.StatusCreated, view.HomeProps{
			Title:      form.Title(),
			Token:      newToken(),
			Notice:     notice.notice,
			InviteCode: code,
		})
		return
	}

	if token == "" {
		token = newToken()
	}
	props := view.HomeProps{
		Title:  form.Title(),
		Token:  token,
		Notice: notice.notice,
	}

	status := http.StatusBadGateway
	switch {
	case errors.Is(err, service.ErrDuplicateSubmission), errors.Is(err, service.ErrSubmissionInFlight):
		status = http.StatusConflict
		props.Notice = &view.Notice{Kind: view.NoticeError, Message: MsgSubmissionPending}
	case service.KindOf(err) == service.KindValidation:
		status = http.StatusUnprocessableEntity
	}

	if props.Notice == nil {
		props.Notice = &view.Notice{Kind: view.NoticeError, Message: service.MsgPoolCreateFailed}
	}

	h.render(w, r, status, props)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, props view.HomeProps) {
	props.Stats = h.stats
	templ.Handler(view.Home(props),
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			h.logger.Error("failed to render page",
				slog.String("request_id", middleware.GetRequestID(r.Context())),
				slog.String("error", err.Error()),
			)
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

// newToken returns a fresh submission token for a rendered form.
// A completed token replays its invite code, so the entropy must not be
// guessable from a neighbouring token.
func newToken() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// pageClipboard hands the invite code to the rendered page, where the
// script copies it into the visitor's clipboard.
type pageClipboard struct {
	code string
}

func (c *pageClipboard) WriteText(_ context.Context, text string) error {
	c.code = text
	return nil
}

// pageNotifier turns notifications into the page banner.
type pageNotifier struct {
	notice *view.Notice
}

func (n *pageNotifier) NotifySuccess(_ context.Context, message string) {
	n.notice = &view.Notice{Kind: view.NoticeSuccess, Message: message}
}

func (n *pageNotifier) NotifyFailure(_ context.Context, message string, _ error) {
	n.notice = &view.Notice{Kind: view.NoticeError, Message: message}
}
