package metadata

import "testing"

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path   string
		parent string
		leaf   string
	}{
		{"/archive/run1/sample.bam", "/archive/run1", "sample.bam"},
		{"/sample.bam", "/", "sample.bam"},
		{"sample.bam", ".", "sample.bam"},
		{"run1/sample.bam", "run1", "sample.bam"},
	}

	for _, tt := range tests {
		parent, leaf := SplitPath(tt.path)
		if parent != tt.parent || leaf != tt.leaf {
			t.Errorf("SplitPath(%q): expected (%q, %q), got (%q, %q)",
				tt.path, tt.parent, tt.leaf, parent, leaf)
		}
	}
}

func TestSplitPath_Recomposes(t *testing.T) {
	// For paths with a separator, parent + "/" + leaf reconstructs the
	// original.
	paths := []string{
		"/archive/run1/sample.bam",
		"/a/b",
		"x/y",
	}
	for _, p := range paths {
		parent, leaf := SplitPath(p)
		recomposed := parent + "/" + leaf
		if parent == "/" {
			recomposed = parent + leaf
		}
		if recomposed != p {
			t.Errorf("SplitPath(%q): recomposition yields %q", p, recomposed)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindLeaf, "leaf"},
		{KindContainer, "container"},
		{KindNotFound, "not found"},
		{KindOther, "other"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): expected %q, got %q", tt.kind, tt.want, got)
		}
	}
}
