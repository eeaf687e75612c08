package procinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFirstPID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		found    bool
	}{
		{"single pid", "1234\n", 1234, true},
		{"multiple pids takes first", "1234\n5678\n", 1234, true},
		{"leading whitespace", "  4312  \n", 4312, true},
		{"blank lines before pid", "\n\n99\n", 99, true},
		{"empty output", "", 0, false},
		{"whitespace only", "   \n", 0, false},
		{"non-numeric", "abc\n", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pid, ok := parseFirstPID(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, pid)
		})
	}
}

func TestParseNetstatPID(t *testing.T) {
	output := `
Active Connections

  Proto  Local Address          Foreign Address        State           PID
  TCP    0.0.0.0:135            0.0.0.0:0              LISTENING       948
  TCP    0.0.0.0:8000           0.0.0.0:0              LISTENING       4312
  TCP    127.0.0.1:80           0.0.0.0:0              LISTENING       512
  TCP    127.0.0.1:49731        127.0.0.1:8000         ESTABLISHED     7777
  TCP    [::]:8000              [::]:0                 LISTENING       4312
  UDP    0.0.0.0:5353           *:*                                    2100
`

	tests := []struct {
		name     string
		port     int
		expected int
		found    bool
	}{
		{"listening port", 8000, 4312, true},
		{"exact port match, no prefix collision", 80, 512, true},
		{"established is not listening", 49731, 0, false},
		{"nothing on port", 9999, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pid, ok := parseNetstatPID(output, tt.port)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, pid)
		})
	}

	t.Run("empty output", func(t *testing.T) {
		_, ok := parseNetstatPID("", 8000)
		assert.False(t, ok)
	})

	t.Run("malformed pid column", func(t *testing.T) {
		_, ok := parseNetstatPID("  TCP  0.0.0.0:8000  0.0.0.0:0  LISTENING  oops\n", 8000)
		assert.False(t, ok)
	})
}

func TestParsePSInfo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ProcessInfo
		found    bool
	}{
		{
			name:     "name and args",
			input:    "node node /home/dev/project/server.js\n",
			expected: ProcessInfo{PID: 123, Name: "node", Path: "node /home/dev/project/server.js"},
			found:    true,
		},
		{
			name:     "name only",
			input:    "nginx\n",
			expected: ProcessInfo{PID: 123, Name: "nginx"},
			found:    true,
		},
		{
			name:  "empty output",
			input: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := parsePSInfo(123, tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, info)
		})
	}
}

func TestParseTasklistInfo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ProcessInfo
		found    bool
	}{
		{
			name:     "csv row",
			input:    "\"node.exe\",\"4312\",\"Console\",\"1\",\"45,128 K\"\r\n",
			expected: ProcessInfo{PID: 4312, Name: "node.exe"},
			found:    true,
		},
		{
			name:  "no matching task",
			input: "INFO: No tasks are running which match the specified criteria.\r\n",
			found: false,
		},
		{
			name:  "empty output",
			input: "",
			found: false,
		},
		{
			name:  "not csv",
			input: "garbage\r\n",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := parseTasklistInfo(4312, tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, info)
		})
	}
}
