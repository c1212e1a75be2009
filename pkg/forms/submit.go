package forms

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Simulated network latency per form.
const (
	ContactDelay    = 1500 * time.Millisecond
	NewsletterDelay = 1000 * time.Millisecond
)

// Kind names the submitted form.
type Kind string

const (
	KindContact    Kind = "contact"
	KindNewsletter Kind = "newsletter"
)

// Receipt confirms an accepted submission.
type Receipt struct {
	ID   uuid.UUID
	Kind Kind
	At   time.Time
}

// Submitter accepts validated forms after a simulated delay.
type Submitter struct {
	log   *slog.Logger
	delay map[Kind]time.Duration
	now   func() time.Time
}

// SubmitterOption customises a Submitter.
type SubmitterOption func(*Submitter)

// WithSubmitLogger sets the submitter's logger.
func WithSubmitLogger(l *slog.Logger) SubmitterOption {
	return func(s *Submitter) { s.log = l }
}

// WithDelay overrides the simulated delay for one form kind.
func WithDelay(k Kind, d time.Duration) SubmitterOption {
	return func(s *Submitter) { s.delay[k] = d }
}

// NewSubmitter returns a submitter with the default delays.
func NewSubmitter(opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		delay: map[Kind]time.Duration{
			KindContact:    ContactDelay,
			KindNewsletter: NewsletterDelay,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// SubmitContact validates and submits a contact request.
func (s *Submitter) SubmitContact(ctx context.Context, c Contact) (Receipt, error) {
	if err := c.Validate(); err != nil {
		return Receipt{}, err
	}
	return s.submit(ctx, KindContact, "subject", string(c.Subject))
}

// SubmitNewsletter validates and submits a newsletter sign-up.
func (s *Submitter) SubmitNewsletter(ctx context.Context, n Newsletter) (Receipt, error) {
	if err := n.Validate(); err != nil {
		return Receipt{}, err
	}
	return s.submit(ctx, KindNewsletter)
}

func (s *Submitter) submit(ctx context.Context, kind Kind, attrs ...any) (Receipt, error) {
	timer := time.NewTimer(s.delay[kind])
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, fmt.Errorf("forms: submit %s: %w", kind, ctx.Err())
	case <-timer.C:
	}

	r := Receipt{ID: uuid.New(), Kind: kind, At: s.now()}
	s.log.InfoContext(ctx, "form submitted", append([]any{"kind", string(kind), "receipt", r.ID.String()}, attrs...)...)
	return r, nil
}
