// Package icao24 classifies ICAO 24-bit aircraft addresses by state of
// registry and by ICAO reserved blocks.
//
// Addresses are given as hexadecimal strings, as they appear in Mode-S and
// ADS-B feeds. Every lookup fails with ErrInvalidAddressFormat when the
// string holds anything other than hex digits.
package icao24

import (
	"github.com/pkg/errors"
)

// Classification gathers every fact known about an address.
type Classification struct {
	Address  Address `json:"address"`
	Country  string  `json:"country,omitempty"`
	Reserved bool    `json:"reserved"`
	Purpose  string  `json:"purpose,omitempty"`
	Valid    bool    `json:"valid"`
}

// Classifier answers lookups against a fixed pair of tables. It is never
// mutated after construction and is safe for concurrent use.
type Classifier struct {
	countries *countryIndex
	reserved  *reservedIndex
}

// NewClassifier indexes the given tables. Rows within each table must be
// disjoint and within the 24-bit address space; the two tables may overlap.
func NewClassifier(countries []CountryBlock, reserved []ReservedBlock) (*Classifier, error) {
	ci, ri, err := buildIndexes(countries, reserved)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		countries: ci,
		reserved:  ri,
	}, nil
}

// GetCountry returns the ISO 3166-1 alpha-2 code of the state the address is
// allocated to. ok is false when no allocation holds the address.
func (c *Classifier) GetCountry(address string) (code string, ok bool, err error) {
	a, err := ParseAddress(address)
	if err != nil {
		return "", false, err
	}
	if b := c.countries.find(a); b != nil {
		return b.Code, true, nil
	}
	return "", false, nil
}

// IsReserved reports whether the address lies in a reserved block.
func (c *Classifier) IsReserved(address string) (bool, error) {
	a, err := ParseAddress(address)
	if err != nil {
		return false, err
	}
	return c.reserved.find(a) != nil, nil
}

// IsValid reports whether the address is accounted for by the registry,
// either as an allocation or as a reserved block.
func (c *Classifier) IsValid(address string) (bool, error) {
	reserved, err := c.IsReserved(address)
	if err != nil {
		return false, err
	}
	if reserved {
		return true, nil
	}
	_, ok, err := c.GetCountry(address)
	return ok, err
}

// Classify parses the address once and reports all facts about it.
func (c *Classifier) Classify(address string) (Classification, error) {
	a, err := ParseAddress(address)
	if err != nil {
		return Classification{}, err
	}

	out := Classification{Address: a}
	if b := c.countries.find(a); b != nil {
		out.Country = b.Code
	}
	if b := c.reserved.find(a); b != nil {
		out.Reserved = true
		out.Purpose = b.Purpose
	}
	out.Valid = out.Reserved || out.Country != ""

	return out, nil
}

var defaultClassifier = mustNewClassifier(countryBlocks[:], reservedBlocks[:])

func mustNewClassifier(countries []CountryBlock, reserved []ReservedBlock) *Classifier {
	c, err := NewClassifier(countries, reserved)
	if err != nil {
		panic(errors.Wrap(err, "icao24: built-in tables are inconsistent"))
	}
	return c
}

// Default returns the classifier built from the ICAO allocation tables.
func Default() *Classifier {
	return defaultClassifier
}

// GetCountry calls GetCountry on the default classifier.
func GetCountry(address string) (string, bool, error) {
	return defaultClassifier.GetCountry(address)
}

// IsReserved calls IsReserved on the default classifier.
func IsReserved(address string) (bool, error) {
	return defaultClassifier.IsReserved(address)
}

// IsValid calls IsValid on the default classifier.
func IsValid(address string) (bool, error) {
	return defaultClassifier.IsValid(address)
}

// Classify calls Classify on the default classifier.
func Classify(address string) (Classification, error) {
	return defaultClassifier.Classify(address)
}
