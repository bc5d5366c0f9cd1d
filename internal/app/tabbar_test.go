package app

import (
	"strings"
	"testing"

	"github.com/marcus/notetab/internal/editor"
)

func TestTabLabelsPlain(t *testing.T) {
	tabs := []editor.Tab{
		{ID: "a", Kind: editor.KindLocal, Filename: "note.txt", Path: "/home/u/note.txt"},
		{ID: "b", Kind: editor.KindUntitled, Filename: "untitled"},
	}
	labels := tabLabels(tabs, 20)
	if labels[0] != "note.txt" {
		t.Errorf("labels[0] = %q", labels[0])
	}
	if labels[1] != "untitled" {
		t.Errorf("labels[1] = %q", labels[1])
	}
}

func TestTabLabelsDisambiguateDuplicates(t *testing.T) {
	tabs := []editor.Tab{
		{ID: "a", Kind: editor.KindLocal, Filename: "notes.md", Path: "/work/notes.md"},
		{ID: "b", Kind: editor.KindLocal, Filename: "notes.md", Path: "/home/notes.md"},
	}
	labels := tabLabels(tabs, 30)
	if !strings.Contains(labels[0], "work") {
		t.Errorf("labels[0] = %q, want parent dir prefix", labels[0])
	}
	if !strings.Contains(labels[1], "home") {
		t.Errorf("labels[1] = %q, want parent dir prefix", labels[1])
	}
}

func TestTabLabelsDirtyMarker(t *testing.T) {
	tabs := []editor.Tab{
		{ID: "a", Kind: editor.KindUntitled, Filename: "untitled", Dirty: true},
	}
	labels := tabLabels(tabs, 20)
	if !strings.HasPrefix(labels[0], "● ") {
		t.Errorf("labels[0] = %q, want dirty marker", labels[0])
	}
}

func TestTabLabelsTruncate(t *testing.T) {
	tabs := []editor.Tab{
		{ID: "a", Kind: editor.KindLocal, Filename: "a-very-long-filename-indeed.txt", Path: "/x/a-very-long-filename-indeed.txt"},
	}
	labels := tabLabels(tabs, 10)
	if !strings.HasSuffix(labels[0], "…") {
		t.Errorf("labels[0] = %q, want ellipsis", labels[0])
	}
}

func TestRenderTabBarEmpty(t *testing.T) {
	out := renderTabBar(nil, "", 40, 20)
	if !strings.Contains(out, "no open tabs") {
		t.Errorf("empty tab bar = %q", out)
	}
}

func TestRenderTabBarHighlightsCurrent(t *testing.T) {
	tabs := []editor.Tab{
		{ID: "a", Kind: editor.KindLocal, Filename: "a.txt", Path: "/a.txt"},
		{ID: "b", Kind: editor.KindLocal, Filename: "b.txt", Path: "/b.txt"},
	}
	out := renderTabBar(tabs, "b", 60, 20)
	if !strings.Contains(out, "a.txt") || !strings.Contains(out, "b.txt") {
		t.Errorf("tab bar missing labels: %q", out)
	}
}
