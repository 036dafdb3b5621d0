package state

// update_flow.go = the update form's state machine. The CLI drives it the
// same way the web form did: pick a shelf, optionally pick a date read,
// submit, then either land on a terminal success screen or stay on the form
// with the error visible and resubmit.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookhub/cmd/cli/command/client"
	"bookhub/internal/http-api/models"
)

type FlowState int

const (
	// Viewing: the fetched record is displayed, nothing edited yet
	Viewing FlowState = iota
	// Editing: a status or date selection is pending submission
	Editing
	// Submitting: one request is in flight; edits are rejected
	Submitting
	// Success: terminal, only "go back" remains
	Success
)

func (s FlowState) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	}
	return fmt.Sprintf("FlowState(%d)", int(s))
}

var (
	ErrNothingToSubmit = errors.New("no pending edits to submit")
	ErrFlowFinished    = errors.New("update already succeeded")
	ErrFlowBusy        = errors.New("a submission is already in flight")
)

// BookUpdater is the one client call the flow needs.
type BookUpdater interface {
	UpdateBook(ctx context.Context, record *client.BookRecord) (*client.BookRecord, error)
}

// UpdateFlow merges the user's pending selections over a fetched working
// copy and submits the result. Every resubmission after a failure is a
// fresh, independent request.
type UpdateFlow struct {
	updater BookUpdater

	working  client.BookRecord
	state    FlowState
	status   string
	dateRead *time.Time
	lastErr  error
	result   *client.BookRecord
}

// NewUpdateFlow starts a flow in Viewing over the fetched working copy.
func NewUpdateFlow(updater BookUpdater, working client.BookRecord) *UpdateFlow {
	return &UpdateFlow{
		updater: updater,
		working: working,
		state:   Viewing,
	}
}

// SelectStatus records the shelf choice (mutually exclusive single choice)
// and moves the flow into Editing.
func (f *UpdateFlow) SelectStatus(status string) error {
	if err := f.editable(); err != nil {
		return err
	}
	if !models.ValidStatus(status) {
		return fmt.Errorf("unknown shelf status %q", status)
	}
	f.status = status
	f.state = Editing
	return nil
}

// SelectDateRead records the date-read pick and moves the flow into Editing.
func (f *UpdateFlow) SelectDateRead(day time.Time) error {
	if err := f.editable(); err != nil {
		return err
	}
	d := day
	f.dateRead = &d
	f.state = Editing
	return nil
}

// Submit sends the merged record once. On failure the flow stays editable
// with the error visible; on success it is terminal.
func (f *UpdateFlow) Submit(ctx context.Context) (*client.BookRecord, error) {
	switch f.state {
	case Viewing:
		return nil, ErrNothingToSubmit
	case Submitting:
		return nil, ErrFlowBusy
	case Success:
		return nil, ErrFlowFinished
	}

	f.state = Submitting
	merged := f.mergedRecord()

	stored, err := f.updater.UpdateBook(ctx, &merged)
	if err != nil {
		// back to the form, error stays visible until the next attempt
		f.state = Editing
		f.lastErr = err
		return nil, err
	}

	f.state = Success
	f.lastErr = nil
	f.result = stored
	return stored, nil
}

// mergedRecord produces a new record value from the working copy plus the
// pending selections. The working copy itself is never mutated, so the
// fetched record and the submitted payload cannot alias.
func (f *UpdateFlow) mergedRecord() client.BookRecord {
	merged := f.working
	if f.status != "" {
		status := f.status
		merged.Status = &status
	}
	if f.dateRead != nil {
		date := f.dateRead.Format(models.DateReadLayout)
		merged.DateRead = &date
	}
	return merged
}

func (f *UpdateFlow) editable() error {
	switch f.state {
	case Submitting:
		return ErrFlowBusy
	case Success:
		return ErrFlowFinished
	}
	return nil
}

// State returns the current flow state.
func (f *UpdateFlow) State() FlowState { return f.state }

// LastError returns the error shown on the form, nil outside a failed edit
// cycle.
func (f *UpdateFlow) LastError() error { return f.lastErr }

// Result returns the stored record once the flow reached Success.
func (f *UpdateFlow) Result() *client.BookRecord { return f.result }

// WorkingCopy returns the record the pending edits apply to.
func (f *UpdateFlow) WorkingCopy() client.BookRecord { return f.working }
