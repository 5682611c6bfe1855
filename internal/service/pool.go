package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bolao/landing/internal/metrics"
	"github.com/bolao/landing/internal/model"
)

// PoolAPI is the write side of the backend used by PoolCreator.
type PoolAPI interface {
	CreatePool(ctx context.Context, title string) (*model.Pool, error)
}

// Clipboard receives the invite code of a freshly created pool.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier surfaces the outcome of a submission to the user.
type Notifier interface {
	NotifySuccess(ctx context.Context, message string)
	NotifyFailure(ctx context.Context, message string, err error)
}

// Form is the pool creation form state: the title being typed and
// whether a submission is currently outstanding.
type Form struct {
	mu       sync.Mutex
	title    string
	inFlight atomic.Bool
}

// NewForm returns a form with an empty title.
func NewForm() *Form {
	return &Form{}
}

// Title returns the current title.
func (f *Form) Title() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.title
}

// SetTitle replaces the current title.
func (f *Form) SetTitle(title string) {
	f.mu.Lock()
	f.title = title
	f.mu.Unlock()
}

// InFlight reports whether a submission is outstanding.
func (f *Form) InFlight() bool {
	return f.inFlight.Load()
}

// Submission identifies one user intent to create a pool.
// An empty Token skips the cross-request guard.
type Submission struct {
	Token string
}

// PoolCreator runs the pool creation interaction.
type PoolCreator struct {
	api     PoolAPI
	guard   SubmissionGuard
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewPoolCreator creates a new PoolCreator.
// A nil guard defaults to a MemoryGuard.
func NewPoolCreator(api PoolAPI, guard SubmissionGuard, recorder metrics.Recorder, logger *slog.Logger) *PoolCreator {
	if guard == nil {
		guard = NewMemoryGuard(DefaultSubmissionTTL)
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PoolCreator{
		api:     api,
		guard:   guard,
		metrics: recorder,
		logger:  logger,
	}
}

// Submit creates a pool named after the form title, clears the title,
// copies the invite code to clip and notifies success.
//
// Any failure produces exactly one failure notification and a *CreateError.
// Failures before the backend accepted the pool leave the title untouched.
// Re-entrant calls on a busy form return ErrSubmissionInFlight and a token
// that is still being processed returns ErrDuplicateSubmission; neither
// notifies.
func (c *PoolCreator) Submit(ctx context.Context, form *Form, sub Submission, clip Clipboard, notify Notifier) (string, error) {
	title := strings.TrimSpace(form.Title())
	if title == "" {
		return "", c.fail(ctx, notify, &CreateError{Kind: KindValidation, Err: ErrEmptyTitle})
	}

	if !form.inFlight.CompareAndSwap(false, true) {
		c.metrics.IncSubmissionRejected()
		return "", ErrSubmissionInFlight
	}
	defer form.inFlight.Store(false)

	code, replayed, err := c.create(ctx, title, sub.Token)
	if err != nil {
		if errors.Is(err, ErrDuplicateSubmission) {
			c.metrics.IncSubmissionRejected()
			return "", err
		}
		return "", c.fail(ctx, notify, err)
	}

	form.SetTitle("")

	if err := clip.WriteText(ctx, code); err != nil {
		return code, c.fail(ctx, notify, &CreateError{Kind: KindClipboard, Code: code, Err: err})
	}

	if !replayed {
		c.metrics.IncPoolCreated()
	}
	notify.NotifySuccess(ctx, MsgPoolCreated)

	return code, nil
}

// create performs the backend call under the submission guard. A token that
// already completed replays its code without calling the backend.
func (c *PoolCreator) create(ctx context.Context, title, token string) (code string, replayed bool, err error) {
	if token != "" {
		acquired, prev, err := c.guard.Begin(ctx, token)
		switch {
		case err != nil:
			// Fail open: losing the guard must not block pool creation.
			c.logger.Warn("submission guard unavailable", "error", err)
			token = ""
		case prev != "":
			c.logger.Info("pool_submission_replayed", "token", token)
			return prev, true, nil
		case !acquired:
			return "", false, ErrDuplicateSubmission
		}
	}

	pool, err := c.api.CreatePool(ctx, title)
	if err != nil {
		c.abort(ctx, token)
		return "", false, &CreateError{Kind: classifyBackendError(err), Err: err}
	}
	if pool == nil || pool.Code == "" {
		c.abort(ctx, token)
		return "", false, &CreateError{Kind: KindBackend, Err: ErrMissingCode}
	}

	if token != "" {
		if err := c.guard.Complete(ctx, token, pool.Code); err != nil {
			c.logger.Warn("submission guard complete failed", "error", err)
		}
	}

	c.logger.Info("pool_created",
		"pool_id", pool.ID,
		"title_length", len(title),
	)

	return pool.Code, false, nil
}

func (c *PoolCreator) abort(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := c.guard.Abort(ctx, token); err != nil {
		c.logger.Warn("submission guard abort failed", "error", err)
	}
}

func (c *PoolCreator) fail(ctx context.Context, notify Notifier, err error) error {
	kind := KindOf(err)
	c.metrics.IncPoolCreateFailed(string(kind))
	c.logger.Warn("pool_create_failed", "kind", kind, "error", err)
	notify.NotifyFailure(ctx, MsgPoolCreateFailed, err)
	return err
}
