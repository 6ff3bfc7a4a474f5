package lint

import "testing"

func TestApplyEdits(t *testing.T) {
	src := []byte("array.delete e")

	edits := []TextEdit{
		{Start: 12, End: 13, NewText: "("},
		{Start: 14, End: 14, NewText: ")"},
	}

	got, err := ApplyEdits(src, edits)
	if err != nil {
		t.Fatalf("ApplyEdits() error = %v", err)
	}
	if string(got) != "array.delete(e)" {
		t.Errorf("ApplyEdits() = %q, want %q", got, "array.delete(e)")
	}
}

func TestApplyEditsUnorderedInput(t *testing.T) {
	src := []byte("super a")

	// Reverse order; ApplyEdits sorts before applying.
	edits := []TextEdit{
		{Start: 7, End: 7, NewText: ")"},
		{Start: 5, End: 6, NewText: "("},
	}

	got, err := ApplyEdits(src, edits)
	if err != nil {
		t.Fatalf("ApplyEdits() error = %v", err)
	}
	if string(got) != "super(a)" {
		t.Errorf("ApplyEdits() = %q, want %q", got, "super(a)")
	}
}

func TestApplyEditsNoEdits(t *testing.T) {
	src := []byte("x = 1")
	got, err := ApplyEdits(src, nil)
	if err != nil {
		t.Fatalf("ApplyEdits() error = %v", err)
	}
	if string(got) != string(src) {
		t.Errorf("ApplyEdits() = %q, want unchanged source", got)
	}
}

func TestApplyEditsOverlapping(t *testing.T) {
	src := []byte("abcdef")
	edits := []TextEdit{
		{Start: 1, End: 4, NewText: "x"},
		{Start: 3, End: 5, NewText: "y"},
	}

	if _, err := ApplyEdits(src, edits); err == nil {
		t.Error("ApplyEdits() expected error for overlapping edits, got nil")
	}
}

func TestApplyEditsOutOfRange(t *testing.T) {
	src := []byte("abc")
	edits := []TextEdit{{Start: 2, End: 9, NewText: "x"}}

	if _, err := ApplyEdits(src, edits); err == nil {
		t.Error("ApplyEdits() expected error for out-of-range edit, got nil")
	}
}
