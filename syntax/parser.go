package syntax

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"
)

// File is one parsed Ruby source file.
type File struct {
	// Path is the file path used in diagnostics.
	Path string
	// Source is the raw file content.
	Source []byte

	tree *sitter.Tree
}

// ParseFile reads and parses a single Ruby source file.
func ParseFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return ParseSource(src, path)
}

// ParseSource parses Ruby source from bytes. The path is only used for
// diagnostics and may be empty.
func ParseSource(src []byte, path string) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(ruby.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &File{Path: path, Source: src, tree: tree}, nil
}

// Root returns the root node of the parsed tree.
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}
