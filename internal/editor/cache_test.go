package editor

import "testing"

func TestCachePutTake(t *testing.T) {
	c := NewCache()
	c.Put("a", "hello")

	content, ok := c.Take("a")
	if !ok || content != "hello" {
		t.Fatalf("Take(a) = %q, %v; want hello, true", content, ok)
	}
	if _, ok := c.Take("a"); ok {
		t.Error("Take(a) twice should miss")
	}
}

func TestCacheGetDoesNotRemove(t *testing.T) {
	c := NewCache()
	c.Put("a", "hello")

	if content, ok := c.Get("a"); !ok || content != "hello" {
		t.Fatalf("Get(a) = %q, %v", content, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() after Get = %d, want 1", c.Len())
	}
}

func TestCachePutOverwrites(t *testing.T) {
	c := NewCache()
	c.Put("a", "one")
	c.Put("a", "two")

	if content, _ := c.Get("a"); content != "two" {
		t.Errorf("Get(a) = %q, want two", content)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheRemove(t *testing.T) {
	c := NewCache()
	c.Put("a", "hello")
	c.Remove("a")
	c.Remove("missing") // no-op

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCacheContentsIsACopy(t *testing.T) {
	c := NewCache()
	c.Put("a", "hello")

	m := c.Contents()
	m["b"] = "injected"

	if c.Len() != 1 {
		t.Error("mutating the Contents() map must not affect the cache")
	}
}
