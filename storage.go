package icao24

import (
	"time"

	btree "github.com/Rikanishu/btree/ui32"
	gbtree "github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const treeDegree = 2

// countryIndex finds the allocation block holding an address. Blocks are
// disjoint, so the only candidate is the one with the greatest low bound
// not above the address.
type countryIndex struct {
	tree *btree.BTree
}

func newCountryIndex(blocks []CountryBlock) (*countryIndex, error) {
	t := btree.New(treeDegree)
	lows := make(map[uint32]string, len(blocks))
	for i := range blocks {
		b := blocks[i]
		if err := checkRange(b.Range); err != nil {
			return nil, errors.Wrapf(err, "country block %s", b.Code)
		}
		if !isCountryCode(b.Code) {
			return nil, errors.Errorf("country block %06x-%06x: malformed country code %q", b.Low, b.High, b.Code)
		}
		if code, ok := lows[b.Low]; ok {
			return nil, errors.Errorf("country blocks %s and %s share low bound %06x", code, b.Code, b.Low)
		}
		lows[b.Low] = b.Code
		t.ReplaceOrInsert(&btree.Item{
			Key:     b.Low,
			Payload: &b,
		})
	}

	var prev *CountryBlock
	var err error
	t.Ascend(func(item *btree.Item) bool {
		cur := item.Payload.(*CountryBlock)
		if prev != nil && prev.High >= cur.Low {
			err = errors.Errorf("country blocks %s and %s overlap", prev.Code, cur.Code)
			return false
		}
		prev = cur
		return true
	})
	if err != nil {
		return nil, err
	}

	return &countryIndex{tree: t}, nil
}

func (idx *countryIndex) find(a Address) *CountryBlock {
	if !a.InRange() {
		return nil
	}

	var out *CountryBlock
	idx.tree.DescendLessOrEqual(&btree.Item{
		Key: uint32(a),
	}, func(item *btree.Item) bool {
		b := item.Payload.(*CountryBlock)
		if b.Contains(a) {
			out = b
		}
		return false
	})

	return out
}

func (idx *countryIndex) len() int {
	return idx.tree.Len()
}

type reservedItem struct {
	*ReservedBlock
}

func (r reservedItem) Less(than gbtree.Item) bool {
	return r.Low < than.(reservedItem).Low
}

// reservedIndex is the reserved table counterpart of countryIndex.
type reservedIndex struct {
	tree *gbtree.BTree
}

func newReservedIndex(blocks []ReservedBlock) (*reservedIndex, error) {
	t := gbtree.New(treeDegree)
	for i := range blocks {
		b := blocks[i]
		if err := checkRange(b.Range); err != nil {
			return nil, errors.Wrapf(err, "reserved block %q", b.Purpose)
		}
		if prev := t.ReplaceOrInsert(reservedItem{&b}); prev != nil {
			return nil, errors.Errorf("reserved blocks share low bound %06x", b.Low)
		}
	}

	var prev *ReservedBlock
	var err error
	t.Ascend(func(item gbtree.Item) bool {
		cur := item.(reservedItem).ReservedBlock
		if prev != nil && prev.High >= cur.Low {
			err = errors.Errorf("reserved blocks %06x-%06x and %06x-%06x overlap",
				prev.Low, prev.High, cur.Low, cur.High)
			return false
		}
		prev = cur
		return true
	})
	if err != nil {
		return nil, err
	}

	return &reservedIndex{tree: t}, nil
}

func (idx *reservedIndex) find(a Address) *ReservedBlock {
	if !a.InRange() {
		return nil
	}

	var out *ReservedBlock
	pivot := reservedItem{&ReservedBlock{Range: Range{Low: uint32(a)}}}
	idx.tree.DescendLessOrEqual(pivot, func(item gbtree.Item) bool {
		b := item.(reservedItem).ReservedBlock
		if b.Contains(a) {
			out = b
		}
		return false
	})

	return out
}

func (idx *reservedIndex) len() int {
	return idx.tree.Len()
}

func checkRange(r Range) error {
	if r.Low > r.High {
		return errors.Errorf("inverted range %06x-%06x", r.Low, r.High)
	}
	if r.High > MaxAddress {
		return errors.Errorf("range %06x-%06x exceeds the 24-bit address space", r.Low, r.High)
	}
	return nil
}

func buildIndexes(countries []CountryBlock, reserved []ReservedBlock) (*countryIndex, *reservedIndex, error) {
	startTS := time.Now()

	ci, err := newCountryIndex(countries)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to build country index")
	}
	ri, err := newReservedIndex(reserved)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to build reserved index")
	}

	logrus.Debugf("indexed %d country blocks, %d reserved blocks, took %v",
		ci.len(), ri.len(), time.Since(startTS))

	return ci, ri, nil
}

// scanCountry is the linear reference for countryIndex.find.
func scanCountry(blocks []CountryBlock, a Address) *CountryBlock {
	for i := range blocks {
		if blocks[i].Contains(a) {
			return &blocks[i]
		}
	}
	return nil
}

// scanReserved is the linear reference for reservedIndex.find.
func scanReserved(blocks []ReservedBlock, a Address) *ReservedBlock {
	for i := range blocks {
		if blocks[i].Contains(a) {
			return &blocks[i]
		}
	}
	return nil
}
