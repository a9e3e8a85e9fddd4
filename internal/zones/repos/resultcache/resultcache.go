// Package resultcache keeps converted zones in memory using an LRU
// strategy, keyed by canonical zone name. The stored content hash lets
// callers skip reconversion of documents that have not changed, and a
// secondary index groups cached zones by their registrable apex.
package resultcache

import (
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/zonekit/zoned/internal/zones/common/utils"
	"github.com/zonekit/zoned/internal/zones/domain"
	"github.com/zonekit/zoned/internal/zones/services/converter"
)

// Cache is an in-memory LRU store of conversion results.
type Cache struct {
	lru *lru.Cache[string, domain.ConversionResult]

	mu     sync.Mutex
	apexes map[string]map[string]struct{} // apex → canonical zone names
}

// New returns a Cache holding at most size zones.
func New(size int) (*Cache, error) {
	c := &Cache{apexes: make(map[string]map[string]struct{})}
	inner, err := lru.NewWithEvict(size, func(name string, _ domain.ConversionResult) {
		c.unindex(name)
	})
	if err != nil {
		return nil, err
	}
	c.lru = inner
	return c, nil
}

// Put stores a conversion result, replacing any previous result for
// the same zone name, and records the zone under its apex group.
func (c *Cache) Put(result domain.ConversionResult) {
	name := utils.CanonicalName(result.Name)
	c.lru.Add(name, result)
	c.index(name)
}

// Get retrieves the stored result for a zone name.
func (c *Cache) Get(name string) (domain.ConversionResult, bool) {
	return c.lru.Get(utils.CanonicalName(name))
}

// NeedsReload reports whether a document with the given name and hash
// must be (re)converted. A zone not yet cached always needs loading,
// and an empty hash on either side forces a reload because there is
// nothing to compare.
func (c *Cache) NeedsReload(name, hash string) bool {
	result, ok := c.Get(name)
	if !ok {
		return true
	}
	if hash == "" || result.Hash == "" {
		return true
	}
	return result.Hash != hash
}

// Len returns the number of cached zones.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Apexes returns the registrable apex domains of all cached zones,
// sorted.
func (c *Cache) Apexes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	apexes := make([]string, 0, len(c.apexes))
	for apex := range c.apexes {
		apexes = append(apexes, apex)
	}
	sort.Strings(apexes)
	return apexes
}

// ZonesByApex returns the cached zone names grouped under the
// registrable apex of name, sorted. A full zone name works as the
// argument the same way its apex does.
func (c *Cache) ZonesByApex(name string) []string {
	apex := utils.ApexDomain(name)

	c.mu.Lock()
	defer c.mu.Unlock()

	group, ok := c.apexes[apex]
	if !ok {
		return nil
	}
	zones := make([]string, 0, len(group))
	for zone := range group {
		zones = append(zones, zone)
	}
	sort.Strings(zones)
	return zones
}

// index records a canonical zone name under its apex group.
func (c *Cache) index(name string) {
	apex := utils.ApexDomain(name)

	c.mu.Lock()
	defer c.mu.Unlock()

	group, ok := c.apexes[apex]
	if !ok {
		group = make(map[string]struct{})
		c.apexes[apex] = group
	}
	group[name] = struct{}{}
}

// unindex drops an evicted zone from its apex group, removing the
// group once empty. Runs from the LRU eviction callback.
func (c *Cache) unindex(name string) {
	apex := utils.ApexDomain(name)

	c.mu.Lock()
	defer c.mu.Unlock()

	group, ok := c.apexes[apex]
	if !ok {
		return
	}
	delete(group, name)
	if len(group) == 0 {
		delete(c.apexes, apex)
	}
}

// Ensure Cache implements converter.ResultCache at compile time
var _ converter.ResultCache = (*Cache)(nil)
