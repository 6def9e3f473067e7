package syncing

import (
	"errors"
	"fmt"
)

var (
	ErrPageIDRequired    = errors.New("page id is required")
	ErrSourceURLRequired = errors.New("source url is required")
	ErrAttemptTimeout    = errors.New("attempt timed out")
	ErrNoAttempts        = errors.New("no fetch attempt was made")
)

// SyncError registra em qual etapa da execução a falha ocorreu
type SyncError struct {
	Stage string
	Err   error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err.Error())
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func newSyncError(stage string, err error) *SyncError {
	return &SyncError{Stage: stage, Err: err}
}
