package cache

import (
	"testing"
	"time"

	"github.com/lithoparse/lithoparse"
)

func TestLayeredCacheSetGet(t *testing.T) {
	c := NewLayeredCache(time.Minute, time.Minute, t.TempDir(), time.Hour)

	desc := lithoparse.Parse("Firm CLAY")
	key := Key("Firm CLAY")

	if err := c.Set(key, desc, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("Get missed after Set")
	}
	// The memory layer serves the identical value back.
	if got != desc {
		t.Error("memory layer returned a different description")
	}
}

func TestLayeredCachePromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	key := Key("Strong LIMESTONE")

	first := NewLayeredCache(time.Minute, time.Minute, dir, time.Hour)
	if err := first.Set(key, lithoparse.Parse("Strong LIMESTONE"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// A fresh layered cache has an empty memory layer; the hit comes from
	// disk and is promoted.
	second := NewLayeredCache(time.Minute, time.Minute, dir, time.Hour)
	fromDisk, found := second.Get(key)
	if !found {
		t.Fatal("disk layer missed")
	}
	if fromDisk.MaterialType != lithoparse.MaterialTypeRock {
		t.Errorf("MaterialType = %v, want rock", fromDisk.MaterialType)
	}

	promoted, found := second.memory.Get(key)
	if !found {
		t.Fatal("disk hit was not promoted to memory")
	}
	if promoted != fromDisk {
		t.Error("promoted value differs from the returned one")
	}
}

func TestLayeredCacheDeleteAndClear(t *testing.T) {
	c := NewLayeredCache(time.Minute, time.Minute, t.TempDir(), time.Hour)

	key := Key("Dense SAND")
	_ = c.Set(key, lithoparse.Parse("Dense SAND"), time.Minute)

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Get returned a deleted entry")
	}

	_ = c.Set(key, lithoparse.Parse("Dense SAND"), time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Get returned an entry after Clear")
	}
}
