package types

import (
	"errors"
	"fmt"
)

var (
	ErrNoInventory        = errors.New("no account inventory found")
	ErrTemplateUnreadable = errors.New("unable to read widget template")
	ErrMissingCredentials = errors.New("assume-role response is missing credentials")
)

// Stages at which a per-account operation can fail.
const (
	StageCredentials = "credentials"
	StageTemplate    = "template"
	StageService     = "service"
	StageWrite       = "write"
)

// AccountFailure records a failed operation for a single account. Failures are
// collected into a RunReport instead of aborting the run.
type AccountFailure struct {
	Account string
	Region  string
	RoleARN string
	Stage   string
	Err     error
}

func (f *AccountFailure) Error() string {
	return fmt.Sprintf("account %s (region %s, role %s) failed at %s stage: %v",
		f.Account, f.Region, f.RoleARN, f.Stage, f.Err)
}

func (f *AccountFailure) Unwrap() error {
	return f.Err
}

// RunReport accumulates per-account outcomes over one run.
type RunReport struct {
	Succeeded int
	Failed    int
	Failures  []*AccountFailure
}

func (r *RunReport) RecordSuccess() {
	r.Succeeded++
}

func (r *RunReport) RecordFailure(f *AccountFailure) {
	r.Failed++
	r.Failures = append(r.Failures, f)
}
