//go:build !windows

package procinfo

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRunner records the invoked tool and returns canned output.
type fakeRunner struct {
	calls  [][]string
	output []byte
	err    error
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

func TestPIDOnPort(t *testing.T) {
	fake := &fakeRunner{output: []byte("1234\n")}
	in := newInspector(zap.NewNop(), fake.run)

	pid, ok := in.PIDOnPort(context.Background(), 8000)
	require.True(t, ok)
	assert.Equal(t, 1234, pid)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"lsof", "-t", "-i", ":8000", "-sTCP:LISTEN"}, fake.calls[0])
}

func TestPIDOnPortToolMissing(t *testing.T) {
	fake := &fakeRunner{err: errors.New("exec: \"lsof\": executable file not found in $PATH")}
	in := newInspector(zap.NewNop(), fake.run)

	_, ok := in.PIDOnPort(context.Background(), 8000)
	assert.False(t, ok)
}

func TestInfo(t *testing.T) {
	fake := &fakeRunner{output: []byte("python3 /usr/bin/python3 app.py\n")}
	in := newInspector(zap.NewNop(), fake.run)

	info, ok := in.Info(context.Background(), 456)
	require.True(t, ok)
	assert.Equal(t, ProcessInfo{PID: 456, Name: "python3", Path: "/usr/bin/python3 app.py"}, info)
}

func TestKillInvokesKillDashNine(t *testing.T) {
	fake := &fakeRunner{}
	in := newInspector(zap.NewNop(), fake.run)

	require.NoError(t, in.Kill(context.Background(), 999))
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"kill", "-9", "999"}, fake.calls[0])
}

func TestKillNonexistentPID(t *testing.T) {
	// Real kill against a pid that cannot exist: must come back as an
	// error, never a panic.
	in := New(zap.NewNop())
	err := in.Kill(context.Background(), math.MaxInt32)
	assert.Error(t, err)
}
