package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narwhalmedia/marquee/pkg/errors"
)

func TestClassification(t *testing.T) {
	cause := stderrors.New("connection reset")

	tests := []struct {
		name      string
		err       error
		notFound  bool
		transient bool
		storage   bool
	}{
		{"not found", errors.NotFound("movie not found"), true, false, false},
		{"remote read", errors.RemoteRead("list reviews", cause), false, true, false},
		{"remote write", errors.RemoteWrite("create review", cause), false, true, false},
		{"storage", errors.StorageUnavailable("bolt closed", cause), false, false, true},
		{"wrapped twice", fmt.Errorf("catalog: %w", errors.RemoteRead("search", cause)), false, true, false},
		{"plain", cause, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, errors.IsNotFound(tt.err))
			assert.Equal(t, tt.transient, errors.IsTransient(tt.err))
			assert.Equal(t, tt.storage, errors.IsStorageUnavailable(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("timeout")
	err := errors.RemoteWrite("create review", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "REMOTE_WRITE: create review: timeout", err.Error())
	assert.Equal(t, errors.ErrorTypeRemoteWrite, errors.TypeOf(err))
	assert.Equal(t, errors.ErrorType(""), errors.TypeOf(cause))
}
