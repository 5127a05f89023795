package extractor

import (
	"fmt"
	"net/netip"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *IPExtractor {
	return NewIPExtractor(zerolog.Nop())
}

func candidateTexts(candidates []Candidate) []string {
	var texts []string
	for _, c := range candidates {
		texts = append(texts, c.Text)
	}
	return texts
}

func TestExtract_SinglePublicAddress(t *testing.T) {
	candidates := newTestExtractor().Extract("best node: 8.8.8.8 (fast)")

	require.Len(t, candidates, 1)
	assert.Equal(t, "8.8.8.8", candidates[0].Text)
	assert.Equal(t, uint32(8<<24|8<<16|8<<8|8), candidates[0].Value)
}

func TestExtract_EmptyInput(t *testing.T) {
	assert.Empty(t, newTestExtractor().Extract(""))
	assert.Empty(t, newTestExtractor().Extract("no addresses here"))
}

func TestExtract_RejectsReservedRanges(t *testing.T) {
	tests := []struct {
		name string
		addr string
	}{
		{"this network", "0.1.2.3"},
		{"private 10/8", "10.0.0.1"},
		{"cgnat", "100.64.0.1"},
		{"loopback", "127.0.0.1"},
		{"link local", "169.254.10.10"},
		{"private 172.16/12", "172.31.255.1"},
		{"ietf protocol", "192.0.0.1"},
		{"test net 1", "192.0.2.55"},
		{"private 192.168/16", "192.168.1.1"},
		{"benchmarking", "198.19.0.1"},
		{"test net 2", "198.51.100.3"},
		{"test net 3", "203.0.113.9"},
		{"multicast", "224.0.0.251"},
		{"reserved", "240.1.2.3"},
		{"broadcast", "255.255.255.255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := newTestExtractor().Extract("addr " + tt.addr + " end")
			assert.Empty(t, candidates, "expected %s to be rejected", tt.addr)
		})
	}
}

func TestExtract_AcceptsPublicEdgeAddresses(t *testing.T) {
	tests := []string{
		"1.0.0.1",
		"9.255.255.255",
		"11.0.0.1",
		"100.63.255.255",
		"100.128.0.1",
		"172.15.255.255",
		"172.32.0.1",
		"192.0.1.1",
		"198.17.255.255",
		"223.255.255.255",
	}

	for _, addr := range tests {
		t.Run(addr, func(t *testing.T) {
			candidates := newTestExtractor().Extract("x " + addr + " y")
			require.Len(t, candidates, 1)
			assert.Equal(t, addr, candidates[0].Text)
		})
	}
}

func TestExtract_BoundaryChecks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"embedded in longer run", "11.2.3.45", []string{"11.2.3.45"}},
		{"preceded by digit run", "1234.5.6.7", nil},
		{"two addresses in text", "91.2.3.4x 5.6.7.8", []string{"91.2.3.4", "5.6.7.8"}},
		{"followed by dot", "1.2.3.4.5", nil},
		{"preceded by dot", "x.1.2.3.4", nil},
		{"version string", "v1.2.3.4000", nil},
		{"inside html markup", "<td>1.2.3.4</td>", []string{"1.2.3.4"}},
		{"octet out of range", "1.2.3.256", nil},
		{"surrounded by letters", "ip1.2.3.4done", []string{"1.2.3.4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := newTestExtractor().Extract(tt.input)
			assert.Equal(t, tt.want, candidateTexts(candidates))
		})
	}
}

func TestExtract_LeadingZerosCanonicalized(t *testing.T) {
	candidates := newTestExtractor().Extract("node 012.011.001.009 up")

	require.Len(t, candidates, 1)
	assert.Equal(t, "12.11.1.9", candidates[0].Text)
}

func TestExtract_DeduplicatesWithinBody(t *testing.T) {
	candidates := newTestExtractor().Extract("8.8.8.8 and again 8.8.8.8 and 008.8.8.8")

	require.Len(t, candidates, 1)
	assert.Equal(t, "8.8.8.8", candidates[0].Text)
}

func TestExtract_MixedPublicAndReserved(t *testing.T) {
	input := "10.0.0.1 2.2.2.2 192.168.1.1 8.8.8.8"

	candidates := newTestExtractor().Extract(input)

	assert.ElementsMatch(t, []string{"2.2.2.2", "8.8.8.8"}, candidateTexts(candidates))
}

func TestExtract_HTMLTable(t *testing.T) {
	page := `<!DOCTYPE html>
<html><body>
<table>
<tr><th>Line</th><th>IP</th><th>Latency</th></tr>
<tr><td>CT</td><td>104.16.1.1</td><td>32ms</td></tr>
<tr><td>CU</td><td>172.64.32.5</td><td>45ms</td></tr>
<tr><td>CM</td><td>127.0.0.1</td><td>1ms</td></tr>
</table>
</body></html>`

	candidates := newTestExtractor().Extract(page)

	assert.ElementsMatch(t, []string{"104.16.1.1", "172.64.32.5"}, candidateTexts(candidates))
}

func TestIsReservedAddr(t *testing.T) {
	assert.True(t, IsReservedAddr(netip.MustParseAddr("10.1.2.3")))
	assert.True(t, IsReservedAddr(netip.MustParseAddr("239.255.255.250")))
	assert.False(t, IsReservedAddr(netip.MustParseAddr("1.1.1.1")))
	assert.False(t, IsReservedAddr(netip.MustParseAddr("104.16.0.1")))
}

func TestExtract_LargeBody(t *testing.T) {
	var body string
	for i := 1; i <= 50; i++ {
		body += fmt.Sprintf("row 104.16.%d.1 | ", i)
	}

	candidates := newTestExtractor().Extract(body)

	assert.Len(t, candidates, 50)
}
