package extractor

import (
	"net/netip"
)

// reservedRanges lists the IPv4 blocks that never appear in results:
// private-use, loopback, link-local, CGNAT, documentation, benchmarking,
// multicast and reserved space.
var reservedRanges = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("127.0.0.0/8"),
	netip.MustParsePrefix("169.254.0.0/16"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("224.0.0.0/4"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("255.255.255.255/32"),
}

// IsReservedAddr reports whether addr falls inside a non-public IPv4 block.
func IsReservedAddr(addr netip.Addr) bool {
	for _, prefix := range reservedRanges {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
