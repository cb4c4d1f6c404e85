// Package contactform is the client side of the contact form: local
// validation, submission status and a single POST per submit.
package contactform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

// DefaultFallbackEmail is offered in the failure banner.
const DefaultFallbackEmail = "sohagbhuiyan778@gmail.com"

var (
	// ErrInFlight is returned when Submit is called while a request is outstanding
	ErrInFlight = errors.New("submission already in progress")

	// ErrInvalid is returned when local validation fails; nothing is sent
	ErrInvalid = errors.New("form has invalid fields")

	// ErrSubmitFailed is returned when the endpoint could not be reached or
	// did not answer with a 2xx status
	ErrSubmitFailed = errors.New("submission failed")
)

// maxErrorBody bounds how much of a failure response is read for its reason
const maxErrorBody = 4 << 10

// Snapshot is an immutable copy of the controller state
type Snapshot struct {
	Fields        Fields
	Errors        FieldErrors
	Status        Status
	Submitting    bool
	FallbackEmail string
}

// Controller owns one form instance. It is safe for concurrent use; at most
// one submission is outstanding at a time.
type Controller struct {
	endpoint      string
	httpClient    httpclient.Client
	fallbackEmail string

	mu       sync.Mutex
	fields   Fields
	errs     FieldErrors
	status   Status
	inFlight bool
	subs     map[int]func(Snapshot)
	nextSub  int
}

// Option configures a Controller
type Option func(*Controller)

// WithFallbackEmail sets the address shown when a submission fails
func WithFallbackEmail(email string) Option {
	return func(c *Controller) {
		c.fallbackEmail = email
	}
}

// NewController creates a controller posting to endpoint (the full URL of
// the submission endpoint, e.g. https://example.com/api/contact).
func NewController(endpoint string, httpClient httpclient.Client, opts ...Option) *Controller {
	c := &Controller{
		endpoint:      endpoint,
		httpClient:    httpClient,
		fallbackEmail: DefaultFallbackEmail,
		errs:          FieldErrors{},
		status:        Idle{},
		subs:          make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) SetName(v string)    { c.setField(FieldName, v) }
func (c *Controller) SetEmail(v string)   { c.setField(FieldEmail, v) }
func (c *Controller) SetMessage(v string) { c.setField(FieldMessage, v) }

// setField stores v, clears the field's error and re-arms the status.
func (c *Controller) setField(f Field, v string) {
	c.mu.Lock()
	switch f {
	case FieldName:
		c.fields.Name = v
	case FieldEmail:
		c.fields.Email = v
	case FieldMessage:
		c.fields.Message = v
	}
	delete(c.errs, f)
	if !c.inFlight {
		c.status = Idle{}
	}
	snap, subs := c.snapshotLocked()
	c.mu.Unlock()

	publish(subs, snap)
}

// Snapshot returns the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, _ := c.snapshotLocked()
	return snap
}

// Subscribe registers fn to receive every state change. The returned func
// removes it. fn runs on the goroutine that changed the state.
func (c *Controller) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// Submit validates the fields and, when valid, sends them in one POST.
//
// It returns ErrInFlight if a submission is outstanding, ErrInvalid if a
// field is invalid (see Snapshot().Errors) and an error wrapping
// ErrSubmitFailed when the request fails. On success the fields are cleared;
// on failure they are kept so the user can try again.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrInFlight
	}

	if errs := Validate(c.fields.Name, c.fields.Email, c.fields.Message); len(errs) > 0 {
		c.errs = errs
		snap, subs := c.snapshotLocked()
		c.mu.Unlock()
		publish(subs, snap)
		return ErrInvalid
	}

	fields := c.fields
	c.errs = FieldErrors{}
	c.status = Submitting{}
	c.inFlight = true
	snap, subs := c.snapshotLocked()
	c.mu.Unlock()
	publish(subs, snap)

	var outcome Status = Failed{Reason: "submission aborted"}
	defer c.finish(&outcome)

	start := time.Now()
	err := c.send(ctx, fields)
	duration := time.Since(start).Seconds()
	if err != nil {
		outcome = Failed{Reason: err.Error()}
		logger.LogAPICall("contact-endpoint", "submit", "error", duration, zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	outcome = Succeeded{}
	logger.LogAPICall("contact-endpoint", "submit", "success", duration)
	return nil
}

// finish leaves the in-flight state on every exit path of Submit
func (c *Controller) finish(outcome *Status) {
	c.mu.Lock()
	c.inFlight = false
	c.status = *outcome
	if _, ok := (*outcome).(Succeeded); ok {
		c.fields = Fields{}
	}
	snap, subs := c.snapshotLocked()
	c.mu.Unlock()

	publish(subs, snap)
}

// send issues the POST and reports a non-2xx answer as an error carrying
// the server's reason when it gave one.
func (c *Controller) send(ctx context.Context, fields Fields) error {
	req, err := httpclient.NewJSONRequest(ctx, c.endpoint, fields)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}

	reason := http.StatusText(resp.StatusCode)
	var body struct {
		Error string `json:"error"`
	}
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); decodeErr == nil && body.Error != "" {
		reason = body.Error
	}
	return fmt.Errorf("endpoint responded with status %d: %s", resp.StatusCode, reason)
}

func (c *Controller) snapshotLocked() (Snapshot, []func(Snapshot)) {
	snap := Snapshot{
		Fields:        c.fields,
		Errors:        c.errs.clone(),
		Status:        c.status,
		Submitting:    c.inFlight,
		FallbackEmail: c.fallbackEmail,
	}
	subs := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	return snap, subs
}

func publish(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}

// Banner returns the status line shown under the form, or "" when there is
// nothing to show.
func Banner(s Snapshot) string {
	switch s.Status.(type) {
	case Submitting:
		return "Sending..."
	case Succeeded:
		return "Message sent successfully! I'll get back to you soon."
	case Failed:
		email := s.FallbackEmail
		if email == "" {
			email = DefaultFallbackEmail
		}
		return fmt.Sprintf("Failed to send message. Please try again or email me directly at %s (mailto:%s)", email, email)
	default:
		return ""
	}
}
