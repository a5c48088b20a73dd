package icao24

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryIndexBounds(t *testing.T) {
	idx := defaultClassifier.countries

	for _, b := range countryBlocks {
		low, high := Address(b.Low), Address(b.High)

		if got := idx.find(low); assert.NotNil(t, got, "low %s", low) {
			assert.Equal(t, b.Code, got.Code, "low %s", low)
		}
		if got := idx.find(high); assert.NotNil(t, got, "high %s", high) {
			assert.Equal(t, b.Code, got.Code, "high %s", high)
		}
		if b.Low > 0 {
			if got := idx.find(low - 1); got != nil {
				assert.NotEqual(t, b.Range, got.Range, "below %s", low)
			}
		}
		if got := idx.find(high + 1); got != nil {
			assert.NotEqual(t, b.Range, got.Range, "above %s", high)
		}
	}
}

func TestReservedIndexBounds(t *testing.T) {
	idx := defaultClassifier.reserved

	for _, b := range reservedBlocks {
		low, high := Address(b.Low), Address(b.High)

		if got := idx.find(low); assert.NotNil(t, got, "low %s", low) {
			assert.Equal(t, b.Range, got.Range)
		}
		if got := idx.find(high); assert.NotNil(t, got, "high %s", high) {
			assert.Equal(t, b.Range, got.Range)
		}
		if got := idx.find(low - 1); got != nil {
			assert.NotEqual(t, b.Range, got.Range, "below %s", low)
		}
		if got := idx.find(high + 1); got != nil {
			assert.NotEqual(t, b.Range, got.Range, "above %s", high)
		}
	}
}

// The trees and the linear scans must agree on every boundary and on a
// regular sample of the whole space.
func TestIndexMatchesScan(t *testing.T) {
	countries := countryBlocks[:]
	reserved := reservedBlocks[:]

	probes := make([]Address, 0, 4*(len(countries)+len(reserved))+0x4000)
	for _, b := range countries {
		probes = append(probes, Address(b.Low)-1, Address(b.Low), Address(b.High), Address(b.High)+1)
	}
	for _, b := range reserved {
		probes = append(probes, Address(b.Low)-1, Address(b.Low), Address(b.High), Address(b.High)+1)
	}
	for v := Address(0); v <= MaxAddress+1; v += 0x400 {
		probes = append(probes, v)
	}

	for _, a := range probes {
		assert.Equal(t, scanCountry(countries, a), defaultClassifier.countries.find(a), "country %s", a)
		assert.Equal(t, scanReserved(reserved, a), defaultClassifier.reserved.find(a), "reserved %s", a)
	}
}

func TestTablesSorted(t *testing.T) {
	for i := 1; i < len(countryBlocks); i++ {
		require.Less(t, countryBlocks[i-1].High, countryBlocks[i].Low, countryBlocks[i].Code)
	}
	for i := 1; i < len(reservedBlocks); i++ {
		require.Less(t, reservedBlocks[i-1].High, reservedBlocks[i].Low)
	}
	assert.Equal(t, len(countryBlocks), defaultClassifier.countries.len())
	assert.Equal(t, len(reservedBlocks), defaultClassifier.reserved.len())
}

func TestFindOutOfRange(t *testing.T) {
	assert.Nil(t, defaultClassifier.countries.find(MaxAddress+1))
	assert.Nil(t, defaultClassifier.reserved.find(MaxAddress+1))
	assert.Nil(t, defaultClassifier.reserved.find(Address(0xf09400)<<8))
}

func BenchmarkFindCountry(b *testing.B) {
	a, err := ParseAddress("395d66")
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		x := defaultClassifier.countries.find(a)
		_ = x
	}
}

func BenchmarkScanCountry(b *testing.B) {
	a, err := ParseAddress("c8d000")
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		x := scanCountry(countryBlocks[:], a)
		_ = x
	}
}
