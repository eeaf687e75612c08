package reaper

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"portkit/internal/procinfo"

	"github.com/stretchr/testify/assert"
)

// mockInspector scripts the lookup results and records kill attempts.
type mockInspector struct {
	pid       int
	pidFound  bool
	info      procinfo.ProcessInfo
	infoFound bool
	killErr   error

	killed []int
}

func (m *mockInspector) PIDOnPort(ctx context.Context, port int) (int, bool) {
	return m.pid, m.pidFound
}

func (m *mockInspector) Info(ctx context.Context, pid int) (procinfo.ProcessInfo, bool) {
	return m.info, m.infoFound
}

func (m *mockInspector) Kill(ctx context.Context, pid int) error {
	m.killed = append(m.killed, pid)
	return m.killErr
}

func occupiedFlow(insp *mockInspector, confirm bool) (Flow, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return Flow{
		Probe:     func(host string, port int) bool { return false },
		Inspector: insp,
		Confirm:   func(procinfo.ProcessInfo) bool { return confirm },
		Out:       out,
	}, out
}

func TestRunPortFree(t *testing.T) {
	insp := &mockInspector{}
	out := &bytes.Buffer{}
	f := Flow{
		Probe:     func(host string, port int) bool { return true },
		Inspector: insp,
		Confirm:   func(procinfo.ProcessInfo) bool { t.Fatal("confirm must not be called"); return false },
		Out:       out,
	}

	assert.Equal(t, PortFree, f.Run(context.Background(), "localhost", 8000))
	assert.Empty(t, insp.killed)
	assert.Contains(t, out.String(), "Port 8000 is free")
}

func TestRunPIDNotFound(t *testing.T) {
	insp := &mockInspector{pidFound: false}
	f, out := occupiedFlow(insp, true)

	assert.Equal(t, PIDNotFound, f.Run(context.Background(), "localhost", 8000))
	assert.Empty(t, insp.killed)
	assert.Contains(t, out.String(), "Could not find the process")
}

func TestRunInfoUnavailable(t *testing.T) {
	insp := &mockInspector{pid: 1234, pidFound: true, infoFound: false}
	f, out := occupiedFlow(insp, true)

	assert.Equal(t, InfoUnavailable, f.Run(context.Background(), "localhost", 8000))
	assert.Empty(t, insp.killed)
	assert.Contains(t, out.String(), "PID 1234")
}

func TestRunKillsOnlyOnAffirmative(t *testing.T) {
	insp := &mockInspector{
		pid:       1234,
		pidFound:  true,
		info:      procinfo.ProcessInfo{PID: 1234, Name: "node", Path: "node server.js"},
		infoFound: true,
	}
	f, _ := occupiedFlow(insp, true)

	assert.Equal(t, Killed, f.Run(context.Background(), "localhost", 8000))
	assert.Equal(t, []int{1234}, insp.killed)
}

func TestRunAbortsOnAnyOtherAnswer(t *testing.T) {
	insp := &mockInspector{
		pid:       1234,
		pidFound:  true,
		info:      procinfo.ProcessInfo{PID: 1234, Name: "node"},
		infoFound: true,
	}
	f, out := occupiedFlow(insp, false)

	assert.Equal(t, Aborted, f.Run(context.Background(), "localhost", 8000))
	assert.Empty(t, insp.killed, "kill must not run without an affirmative answer")
	assert.Contains(t, out.String(), "Cancelled")
}

func TestRunKillFailure(t *testing.T) {
	insp := &mockInspector{
		pid:       1234,
		pidFound:  true,
		info:      procinfo.ProcessInfo{PID: 1234, Name: "node"},
		infoFound: true,
		killErr:   errors.New("operation not permitted"),
	}
	f, out := occupiedFlow(insp, true)

	assert.Equal(t, KillFailed, f.Run(context.Background(), "localhost", 8000))
	assert.Contains(t, out.String(), "Could not terminate")
}
