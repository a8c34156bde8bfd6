package activation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/FahadIshaq/scanback/internal/client"
	"github.com/FahadIshaq/scanback/internal/model"
)

// View is the controller's top-level view state. Exactly one is active.
type View int

const (
	// ViewLoading covers the window between construction and the record
	// fetch resolving.
	ViewLoading View = iota

	// ViewError is terminal unless the failure was timeout-class, in which
	// case a retry (a fresh Load) is offered.
	ViewError

	// ViewActivationForm renders the registration form for an unactivated tag.
	ViewActivationForm

	// ViewFinderDisplay renders owner contact actions for an activated tag.
	ViewFinderDisplay

	// ViewSuccessDisplay shows issued credentials after a successful activation.
	ViewSuccessDisplay
)

// User-visible failure messages, chosen by fixed precedence:
// timeout > inactive > generic.
const (
	msgTimeout    = "Request timed out. Please check your connection and try again."
	msgInactive   = "This tag is currently inactive. Please contact support if you believe this is a mistake."
	msgLoadFailed = "Failed to load tag information. Please try again later."
	msgActivation = "Activation failed. Please try again."
)

// Client is the slice of the backend API this controller consumes.
type Client interface {
	GetPublicQRCode(ctx context.Context, code string) (*model.QRTagRecord, error)
	TrackScan(ctx context.Context, code string) error
	ActivateQRCode(ctx context.Context, code string, payload model.ActivationPayload) (*model.ActivationResult, error)
}

// Tracker receives best-effort scan notifications. Implementations must not
// block and must swallow their own failures.
type Tracker interface {
	Track(code string)
}

// SuccessState is the read-only snapshot kept after a successful submission.
type SuccessState struct {
	Result    model.ActivationResult
	Submitted model.ActivationPayload
}

// Controller owns the scan page lifecycle for a single tag code.
type Controller struct {
	client  Client
	tracker Tracker

	view      View
	errMsg    string
	retryable bool
	submitErr string

	record  *model.QRTagRecord
	details model.TagDetails
	form    *FormState
	success *SuccessState
}

// Option configures a Controller.
type Option func(*Controller)

// WithTracker replaces the default fire-and-forget tracker.
func WithTracker(t Tracker) Option {
	return func(c *Controller) { c.tracker = t }
}

// New creates a controller in the Loading view. By default scan tracking is
// dispatched on a detached goroutine against the same backend client.
func New(cl Client, opts ...Option) (*Controller, error) {
	if cl == nil {
		return nil, errors.New("backend client is required")
	}
	c := &Controller{client: cl, view: ViewLoading}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracker == nil {
		c.tracker = &goTracker{client: cl}
	}
	return c, nil
}

// goTracker dispatches TrackScan on a detached goroutine; its result is
// observed only for logging and never joined with the render path.
type goTracker struct {
	client Client
}

func (t *goTracker) Track(code string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := t.client.TrackScan(ctx, code); err != nil {
			slog.Debug("scan tracking failed", "code", code, "error", err)
		}
	}()
}

// Load fetches the tag record and resolves the Loading view. preselect is the
// optional ?type= query value; it applies only while the stored type is "any"
// and the value is concrete. Load is also the retry entry point.
func (c *Controller) Load(ctx context.Context, code string, preselect model.TagType) {
	c.view = ViewLoading
	c.errMsg = ""
	c.retryable = false
	c.submitErr = ""

	record, err := c.client.GetPublicQRCode(ctx, code)
	if err != nil {
		c.view = ViewError
		switch {
		case client.IsTimeout(err):
			c.errMsg = msgTimeout
			c.retryable = true
		case client.IsInactive(err):
			c.errMsg = msgInactive
		default:
			if msg := client.Message(err); msg != "" {
				c.errMsg = msg
			} else {
				c.errMsg = msgLoadFailed
			}
		}
		slog.Error("failed to load tag", "code", code, "error", err)
		return
	}

	c.record = record

	if record.IsActivated {
		c.view = ViewFinderDisplay
		if details, err := record.DecodeDetails(); err != nil {
			slog.Warn("undecodable tag details", "code", code, "error", err)
		} else {
			c.details = details
		}
		c.tracker.Track(code)
		return
	}

	c.view = ViewActivationForm
	c.form = NewFormState(code, record.Type, preselect)
}

// Submit fires the activation mutation. Both gates block independently: the
// required-field predicate that also drives the disabled submit button, and
// the validation-error sweep.
func (c *Controller) Submit(ctx context.Context) {
	if c.view != ViewActivationForm || c.form == nil {
		return
	}
	if !c.form.IsValid() {
		c.submitErr = MsgMissingRequired
		return
	}
	if c.form.HasBlockingErrors() {
		c.submitErr = MsgFixValidation
		return
	}

	payload := c.form.BuildPayload()
	result, err := c.client.ActivateQRCode(ctx, c.form.Code, payload)
	if err != nil {
		if msg := client.Message(err); msg != "" {
			c.submitErr = msg
		} else {
			c.submitErr = msgActivation
		}
		slog.Error("activation failed", "code", c.form.Code, "error", err)
		return
	}

	c.submitErr = ""
	c.success = &SuccessState{Result: *result, Submitted: payload}
	c.view = ViewSuccessDisplay
}

// View returns the active top-level view.
func (c *Controller) View() View { return c.view }

// ErrorMessage returns the fetch-failure message for the Error view.
func (c *Controller) ErrorMessage() string { return c.errMsg }

// CanRetry reports whether the Error view offers a retry action.
func (c *Controller) CanRetry() bool { return c.retryable }

// SubmitError returns the banner message for a blocked or failed submission.
func (c *Controller) SubmitError() string { return c.submitErr }

// Record returns the fetched tag record, if any.
func (c *Controller) Record() *model.QRTagRecord { return c.record }

// Details returns the decoded detail bag of an activated tag.
func (c *Controller) Details() model.TagDetails { return c.details }

// Form returns the live form state while in the ActivationForm view.
func (c *Controller) Form() *FormState { return c.form }

// Success returns the post-activation snapshot.
func (c *Controller) Success() *SuccessState { return c.success }
