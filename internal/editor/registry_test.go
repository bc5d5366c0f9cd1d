package editor

import "testing"

func TestRegistryAppendAndFind(t *testing.T) {
	var r Registry
	if err := r.Append(Tab{ID: "a", Kind: KindUntitled, Filename: "untitled"}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	tab, ok := r.Find("a")
	if !ok {
		t.Fatal("Find(a) should succeed")
	}
	if tab.Filename != "untitled" {
		t.Errorf("Filename = %q, want untitled", tab.Filename)
	}
	if _, ok := r.Find("missing"); ok {
		t.Error("Find(missing) should fail")
	}
}

func TestRegistryAppendDuplicate(t *testing.T) {
	var r Registry
	if err := r.Append(Tab{ID: "a"}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if err := r.Append(Tab{ID: "a"}); err == nil {
		t.Error("Append() with duplicate id should fail")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryRemovePreservesOrder(t *testing.T) {
	var r Registry
	for _, id := range []string{"a", "b", "c"} {
		if err := r.Append(Tab{ID: id}); err != nil {
			t.Fatalf("Append(%s) failed: %v", id, err)
		}
	}

	if !r.Remove("b") {
		t.Fatal("Remove(b) should report found")
	}
	tabs := r.Tabs()
	if len(tabs) != 2 || tabs[0].ID != "a" || tabs[1].ID != "c" {
		t.Errorf("order after remove = %v, want [a c]", tabs)
	}

	if r.Remove("b") {
		t.Error("Remove(b) twice should report not found")
	}
}

func TestRegistryMarkDirty(t *testing.T) {
	var r Registry
	r.Append(Tab{ID: "a"})
	r.Append(Tab{ID: "b"})

	if !r.MarkDirty("b", true) {
		t.Fatal("MarkDirty(b) should report found")
	}
	tabs := r.Tabs()
	if tabs[0].Dirty {
		t.Error("tab a should be unaffected")
	}
	if !tabs[1].Dirty {
		t.Error("tab b should be dirty")
	}
	if r.MarkDirty("missing", true) {
		t.Error("MarkDirty(missing) should report not found")
	}
}

func TestRegistryReplace(t *testing.T) {
	var r Registry
	r.Append(Tab{ID: "a", Kind: KindUntitled, Filename: "untitled"})

	ok := r.Replace(Tab{ID: "a", Kind: KindLocal, Filename: "note.txt", Path: "/tmp/note.txt"})
	if !ok {
		t.Fatal("Replace() should report found")
	}
	tab, _ := r.Find("a")
	if tab.Kind != KindLocal || tab.Path != "/tmp/note.txt" {
		t.Errorf("tab after Replace = %+v", tab)
	}
}

func TestRegistryReorder(t *testing.T) {
	var r Registry
	for _, id := range []string{"a", "b", "c"} {
		r.Append(Tab{ID: id})
	}

	if err := r.Reorder([]string{"c", "a", "b"}); err != nil {
		t.Fatalf("Reorder() failed: %v", err)
	}
	tabs := r.Tabs()
	if tabs[0].ID != "c" || tabs[1].ID != "a" || tabs[2].ID != "b" {
		t.Errorf("order = %v, want [c a b]", tabs)
	}
}

func TestRegistryReorderRejectsNonPermutation(t *testing.T) {
	var r Registry
	r.Append(Tab{ID: "a"})
	r.Append(Tab{ID: "b"})

	cases := []struct {
		name string
		ids  []string
	}{
		{"missing id", []string{"a"}},
		{"unknown id", []string{"a", "x"}},
		{"duplicate id", []string{"a", "a"}},
		{"extra id", []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		if err := r.Reorder(tc.ids); err == nil {
			t.Errorf("Reorder(%s) should fail", tc.name)
		}
	}

	// Order must be unchanged after rejected reorders.
	tabs := r.Tabs()
	if tabs[0].ID != "a" || tabs[1].ID != "b" {
		t.Errorf("order after rejected reorders = %v, want [a b]", tabs)
	}
}
