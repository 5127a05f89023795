package aggregator

import (
	"testing"

	"github.com/aleister1102/ipfresh/internal/extractor"
	"github.com/stretchr/testify/assert"
)

func TestAddressSet_AddIsIdempotent(t *testing.T) {
	set := NewAddressSet()
	candidate := extractor.Candidate{Value: 0x08080808, Text: "8.8.8.8"}

	set.Add(candidate)
	set.Add(candidate)
	set.Add(candidate)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, []string{"8.8.8.8"}, set.Finalize())
}

func TestAddressSet_FinalizeNumericOrdering(t *testing.T) {
	set := NewAddressSet()
	set.AddAll([]extractor.Candidate{
		{Value: 0x0A000001, Text: "10.0.0.1"},
		{Value: 0x02020202, Text: "2.2.2.2"},
		{Value: 0x08080808, Text: "8.8.8.8"},
		{Value: 0xDFFFFFFF, Text: "223.255.255.255"},
	})

	// Numeric order, not lexicographic: "10.0.0.1" sorts after "2.2.2.2"
	assert.Equal(t, []string{"2.2.2.2", "8.8.8.8", "10.0.0.1", "223.255.255.255"}, set.Finalize())
}

func TestAddressSet_Empty(t *testing.T) {
	set := NewAddressSet()

	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Finalize())
}

func TestAddressSet_ConcurrentAdds(t *testing.T) {
	set := NewAddressSet()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func(worker int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				value := uint32(worker*100 + j)
				set.Add(extractor.Candidate{Value: value, Text: "1.1.1.1"})
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.Equal(t, 800, set.Len())
}
