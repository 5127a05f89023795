package extractor

import (
	"net/netip"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Candidate is a validated public IPv4 address extracted from source text.
// Value is the address as a big-endian 32-bit integer; Text is the canonical
// dotted-quad form (leading zeros stripped).
type Candidate struct {
	Value uint32
	Text  string
}

// dottedQuadPattern matches four 1-3 digit groups separated by dots. Octet
// range and boundary checks are applied separately because Go regexp has no
// lookaround; a purely value-constrained pattern would also resume scanning
// past overlapping runs like "999.1.2.3.4" inconsistently.
var dottedQuadPattern = regexp.MustCompile(`(?:\d{1,3}\.){3}\d{1,3}`)

// IPExtractor scans arbitrary text (typically scraped HTML) for public IPv4
// address literals. It is deterministic, side-effect free and performs no I/O.
type IPExtractor struct {
	logger zerolog.Logger
}

// NewIPExtractor creates a new IP extractor
func NewIPExtractor(logger zerolog.Logger) *IPExtractor {
	return &IPExtractor{
		logger: logger.With().Str("component", "IPExtractor").Logger(),
	}
}

// Extract returns all distinct public IPv4 candidates found in text. Matches
// embedded in longer numeric runs (e.g. "1.2.3.4" inside "11.2.3.45") are
// rejected by boundary checks: a match must not be immediately preceded or
// followed by a digit or a dot. An empty result is valid output, not an error.
func (ie *IPExtractor) Extract(text string) []Candidate {
	if text == "" {
		return nil
	}

	var candidates []Candidate
	seen := make(map[uint32]struct{})

	ie.scanSegment(text, seen, &candidates)

	// HTML sources often carry addresses inside table cells; scanning each
	// text node separately catches literals the raw scan rejects when markup
	// concatenation places digits next to a match.
	if looksLikeHTML(text) {
		for _, segment := range htmlTextSegments(text) {
			ie.scanSegment(segment, seen, &candidates)
		}
	}

	ie.logger.Debug().Int("candidate_count", len(candidates)).Msg("Extraction completed")
	return candidates
}

// scanSegment appends candidates found in one text segment, deduplicating
// against already seen numeric values.
func (ie *IPExtractor) scanSegment(text string, seen map[uint32]struct{}, out *[]Candidate) {
	matches := dottedQuadPattern.FindAllStringIndex(text, -1)
	for _, match := range matches {
		start, end := match[0], match[1]
		if !hasCleanBoundary(text, start, end) {
			continue
		}

		candidate, ok := parseDottedQuad(text[start:end])
		if !ok {
			continue
		}
		if _, dup := seen[candidate.Value]; dup {
			continue
		}

		seen[candidate.Value] = struct{}{}
		*out = append(*out, candidate)
	}
}

// hasCleanBoundary reports whether the match at [start,end) is not part of a
// longer numeric or dotted run.
func hasCleanBoundary(text string, start, end int) bool {
	if start > 0 {
		prev := text[start-1]
		if isDigit(prev) || prev == '.' {
			return false
		}
	}
	if end < len(text) {
		next := text[end]
		if isDigit(next) || next == '.' {
			return false
		}
	}
	return true
}

// parseDottedQuad validates octet ranges and the reserved-range table,
// returning the candidate in canonical form. Leading zeros are accepted
// ("012" parses as 12) to match the formats seen on scraped pages.
func parseDottedQuad(literal string) (Candidate, bool) {
	groups := strings.Split(literal, ".")
	if len(groups) != 4 {
		return Candidate{}, false
	}

	var octets [4]byte
	for i, group := range groups {
		value, err := strconv.Atoi(group)
		if err != nil || value < 0 || value > 255 {
			return Candidate{}, false
		}
		octets[i] = byte(value)
	}

	addr := netip.AddrFrom4(octets)
	if IsReservedAddr(addr) {
		return Candidate{}, false
	}

	value := uint32(octets[0])<<24 | uint32(octets[1])<<16 | uint32(octets[2])<<8 | uint32(octets[3])
	return Candidate{Value: value, Text: addr.String()}, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
