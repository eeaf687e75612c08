// Package netprobe tests TCP port occupancy by attempting short-lived
// connections. A probe is a plain dial, never a bind, so it works against
// ports owned by other users and never steals a port.
package netprobe

import (
	"net"
	"strconv"
	"time"
)

// DialTimeout bounds a single probe. Anything slower than this on loopback
// is not a listener we care about.
const DialTimeout = time.Second

// Free reports whether nothing is accepting TCP connections on host:port.
// A successful connect means occupied. Connection refused, timeout, or any
// other socket-level error is treated as free: the probe fails open rather
// than blocking the caller on transient errors.
func Free(host string, port int) bool {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, DialTimeout)
	if err != nil {
		return true
	}
	conn.Close()
	return false
}

// FindFree scans ports start, start+1, ... start+maxAttempts-1 and returns
// the first one that probes free. The scan is linear and sequential; it runs
// once per launch, so simplicity beats speed. The second return value is
// false when every port in the range is occupied.
func FindFree(host string, start, maxAttempts int) (int, bool) {
	for i := 0; i < maxAttempts; i++ {
		port := start + i
		if Free(host, port) {
			return port, true
		}
	}
	return 0, false
}
