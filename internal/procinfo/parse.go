package procinfo

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// parseFirstPID extracts the first pid from terse `lsof -t` output, which is
// one pid per line. Returns false on empty or non-numeric output.
func parseFirstPID(output string) (int, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pid, err := strconv.Atoi(line)
		if err != nil {
			return 0, false
		}
		return pid, true
	}
	return 0, false
}

// parseNetstatPID scans `netstat -ano` output for a socket in LISTENING
// state on the given port and returns the owning pid from the last column.
//
// Lines look like:
//
//	TCP    0.0.0.0:8000    0.0.0.0:0    LISTENING    4312
func parseNetstatPID(output string, port int) (int, bool) {
	suffix := ":" + strconv.Itoa(port)
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "LISTENING") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		// Local address is the second column; match the port exactly so
		// :80 does not match :8000.
		if !strings.HasSuffix(fields[1], suffix) {
			continue
		}
		pid, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			continue
		}
		return pid, true
	}
	return 0, false
}

// parsePSInfo parses `ps -p PID -o comm= -o args=` output: the command name
// followed by the full invocation.
func parsePSInfo(pid int, output string) (ProcessInfo, bool) {
	line := strings.TrimSpace(output)
	if line == "" {
		return ProcessInfo{}, false
	}
	info := ProcessInfo{PID: pid}
	parts := strings.SplitN(line, " ", 2)
	info.Name = parts[0]
	if len(parts) > 1 {
		info.Path = strings.TrimSpace(parts[1])
	}
	return info, true
}

// parseTasklistInfo parses `tasklist /FO CSV /NH` output filtered to a single
// pid. Only the image name is usable; tasklist does not report the image
// path, so Path stays empty.
func parseTasklistInfo(pid int, output string) (ProcessInfo, bool) {
	line := strings.TrimSpace(output)
	if line == "" || strings.HasPrefix(line, "INFO:") {
		return ProcessInfo{}, false
	}
	record, err := csv.NewReader(strings.NewReader(line)).Read()
	if err != nil || len(record) < 2 {
		return ProcessInfo{}, false
	}
	return ProcessInfo{PID: pid, Name: record[0]}, true
}
