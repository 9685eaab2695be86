//go:build !pi

package motion

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNew_SimulatesWithSighup(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	s, err := New(ctx, "GPIO17")
	require.NoError(t, err)
	assert.False(t, s.Moving())

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGHUP))
	assert.Eventually(t, s.Moving, time.Second, 5*time.Millisecond)
	assert.False(t, s.Moving())

	cancel()
}
