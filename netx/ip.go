// Package netx validates and parses "address:port" strings.
package netx

import (
	"net/netip"
	"strconv"
	"strings"
)

// ValidIPv4 reports whether s has the form "x.x.x.x:port" with four octets
// in [0,255] and a port in [0,65535]. Leading zeros in octets are tolerated
// ("001.2.3.4:80" is valid); the port is mandatory.
func ValidIPv4(s string) bool {
	_, ok := ParseIPv4(s)
	return ok
}

// ParseIPv4 parses "x.x.x.x:port" into an AddrPort.
func ParseIPv4(s string) (netip.AddrPort, bool) {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portStr, ":") {
		return netip.AddrPort{}, false
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return netip.AddrPort{}, false
	}

	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return netip.AddrPort{}, false
	}
	var octets [4]byte
	for i, p := range parts {
		if p == "" {
			return netip.AddrPort{}, false
		}
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return netip.AddrPort{}, false
		}
		octets[i] = byte(n)
	}
	return netip.AddrPortFrom(netip.AddrFrom4(octets), uint16(port)), true
}

// ValidIPv6 reports whether s has the bracketed form "[addr]:port" with a
// valid IPv6 address and a port in [0,65535].
func ValidIPv6(s string) bool {
	_, ok := ParseIPv6(s)
	return ok
}

// ParseIPv6 parses "[addr]:port" into an AddrPort. Unbracketed addresses are
// rejected: without brackets the port separator is ambiguous.
func ParseIPv6(s string) (netip.AddrPort, bool) {
	if !strings.HasPrefix(s, "[") {
		return netip.AddrPort{}, false
	}
	ap, err := netip.ParseAddrPort(s)
	if err != nil || ap.Addr().Is4() {
		return netip.AddrPort{}, false
	}
	return ap, true
}
