package eos

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/maseology/gowmt/grid"
)

// Cache memoizes Resolve by a hash of the tracer-field contents. It is
// owned and injected by the caller; the engine keeps no process-wide
// state. Not safe for concurrent use; share one per evaluation thread or
// guard externally.
type Cache struct {
	m map[uint64]*Coordinate
}

func NewCache() *Cache { return &Cache{m: map[uint64]*Coordinate{}} }

// Resolve returns the cached coordinate for identical inputs, otherwise
// resolves through the registry and retains the result.
func (c *Cache) Resolve(r *Registry, tr map[string]*grid.Field, name string) (*Coordinate, error) {
	k := cacheKey(tr, name)
	if crd, ok := c.m[k]; ok {
		return crd, nil
	}
	crd, err := r.Resolve(tr, name)
	if err != nil {
		return nil, err
	}
	c.m[k] = crd
	return crd, nil
}

// Len reports the number of retained resolutions.
func (c *Cache) Len() int { return len(c.m) }

func cacheKey(tr map[string]*grid.Field, name string) uint64 {
	names := make([]string, 0, len(tr))
	for n := range tr {
		names = append(names, n)
	}
	sort.Strings(names)

	d := xxhash.New()
	d.WriteString(name)
	var b [8]byte
	for _, n := range names {
		d.WriteString(n)
		f := tr[n]
		for _, s := range f.Data.Shape {
			binary.LittleEndian.PutUint64(b[:], uint64(s))
			d.Write(b[:])
		}
		for _, v := range f.Data.Elements {
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
			d.Write(b[:])
		}
	}
	return d.Sum64()
}
