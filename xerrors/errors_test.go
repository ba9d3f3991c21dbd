package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestDeriveKeepsSentinel(t *testing.T) {
	err := IndexOutOfRange(7, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.NotErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, ErrIndexOutOfRange.Code, err.Code)
	assert.Equal(t, "index 7, len 3", err.Detail)
	assert.NotEmpty(t, err.Stack)

	// 哨兵本身不被修改。
	assert.Equal(t, "index must lie in [0, n)", ErrIndexOutOfRange.Detail)
	assert.Contains(t, InvalidRange(2, 1, 4).Error(), "range [2, 1), len 4")
	assert.Contains(t, KeyNotFound("x").Error(), "key x")
}

func TestWrapAndFromError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "nothing"))

	wrapped := fmt.Errorf("scenario: %w", Derive(ErrGraphHasCycle, "sorted %d of %d vertices", 2, 5))
	e, ok := FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrFailedPrecondition, e.Type)

	w := Wrap(wrapped, ErrInternal, "topo sort")
	assert.Equal(t, ErrGraphHasCycle.Code, w.Code)
	assert.ErrorIs(t, w, ErrGraphHasCycle)

	plain := Wrap(errors.New("io"), ErrInternal, "read")
	assert.Equal(t, ErrInternal, plain.Type)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		err  *Error
		want codes.Code
	}{
		{ErrInvalidShape, codes.InvalidArgument},
		{ErrInvalidInput, codes.InvalidArgument},
		{ErrKeyNotFound, codes.NotFound},
		{ErrDuplicateKey, codes.AlreadyExists},
		{ErrIndexOutOfRange, codes.OutOfRange},
		{ErrNotATree, codes.FailedPrecondition},
		{ErrScenarioFailed, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Message, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.GRPCCode())
			assert.Equal(t, tt.want, tt.err.ToGRPCStatus().Code())
		})
	}
	assert.Equal(t, "Unknown", ErrorType(99).String())
}
