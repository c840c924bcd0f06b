package title

import (
	"errors"
	"maps"
	"testing"

	"github.com/steven-cutting/decree/internal/apperr"
	"github.com/steven-cutting/decree/internal/testutil"
)

func TestRenameToSlug(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		title   string
		prefix  string
		want    string
		renamed bool
	}{
		{"numbered", "0001-old.md", "Brand New", "", "0001-brand-new.md", true},
		{"dated", "2020-05-01-legacy.md", "Modern Architecture", "", "2020-05-01-modern-architecture.md", true},
		{"month dated", "2024-03-old.md", "New", "", "2024-03-new.md", true},
		{"no prefix", "notes.md", "Team Notes", "", "team-notes.md", true},
		{"prefix override", "old.md", "Old", "0009", "0009-old.md", true},
		{"unchanged", "0002-same-title.md", "Same Title", "", "0002-same-title.md", false},
		{"fallback slug", "0003-x.md", "!!!", "", "0003-adr.md", true},
		{"keeps extension", "0004-a.markdown", "B", "", "0004-b.markdown", true},
		{"subdir", "sub/0005-a.md", "B", "", "sub/0005-b.md", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, store := testutil.TestDir(t, map[string]string{tt.path: "# x\n"})
			got, renamed, err := RenameToSlug(store, fromSlash(tt.path), tt.title, tt.prefix, false)
			if err != nil {
				t.Fatalf("RenameToSlug: %v", err)
			}
			if renamed != tt.renamed {
				t.Errorf("renamed = %v, want %v", renamed, tt.renamed)
			}
			if got != fromSlash(tt.want) {
				t.Errorf("path = %q, want %q", got, tt.want)
			}
			if !store.Exists(got) {
				t.Errorf("%s does not exist after rename", got)
			}
			if renamed && store.Exists(fromSlash(tt.path)) {
				t.Errorf("%s still exists after rename", tt.path)
			}
		})
	}
}

func TestRenameToSlug_DryRun(t *testing.T) {
	dir, store := testutil.TestDir(t, map[string]string{"0001-old.md": "# Old\n"})
	before := testutil.Snapshot(t, dir)

	got, renamed, err := RenameToSlug(store, "0001-old.md", "New", "", true)
	if err != nil {
		t.Fatalf("RenameToSlug: %v", err)
	}
	if !renamed || got != "0001-new.md" {
		t.Errorf("got (%q, %v), want (0001-new.md, true)", got, renamed)
	}
	if after := testutil.Snapshot(t, dir); !maps.Equal(before, after) {
		t.Errorf("dry run changed the tree: %v", after)
	}
}

func TestRenameToSlug_Conflict(t *testing.T) {
	dir, store := testutil.TestDir(t, map[string]string{
		"0008-source.md":        "# 0008: Source\n",
		"0008-existing-slug.md": "# 0008: Existing Slug\n",
	})
	before := testutil.Snapshot(t, dir)

	_, renamed, err := RenameToSlug(store, "0008-source.md", "Existing Slug", "", false)
	if !errors.Is(err, apperr.ErrRenameConflict) {
		t.Fatalf("expected ErrRenameConflict, got %v", err)
	}
	if renamed {
		t.Error("renamed should be false on conflict")
	}
	want := "Cannot rename 0008-source.md to 0008-existing-slug.md: target already exists"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
	if after := testutil.Snapshot(t, dir); !maps.Equal(before, after) {
		t.Errorf("conflict changed the tree: %v", after)
	}
}

func TestRenameToSlug_ConflictIgnoredInDryRun(t *testing.T) {
	_, store := testutil.TestDir(t, map[string]string{
		"0008-source.md":        "# 0008: Source\n",
		"0008-existing-slug.md": "# 0008: Existing Slug\n",
	})
	got, renamed, err := RenameToSlug(store, "0008-source.md", "Existing Slug", "", true)
	if err != nil {
		t.Fatalf("dry run should not check for conflicts: %v", err)
	}
	if !renamed || got != "0008-existing-slug.md" {
		t.Errorf("got (%q, %v)", got, renamed)
	}
}

func TestComposeName(t *testing.T) {
	if got := ComposeName("0001", "a-b", ".md"); got != "0001-a-b.md" {
		t.Errorf("got %q", got)
	}
	if got := ComposeName("", "a-b", ".md"); got != "a-b.md" {
		t.Errorf("got %q", got)
	}
}
