// Package resolve expands command line arguments into the ordered list of
// files to embed.
package resolve

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Input is one file selected for embedding.
type Input struct {
	// Path is the filesystem path used for reading.
	Path string
	// Name is the display name recorded in the generated registry,
	// slash-normalized so output is stable across platforms.
	Name string
}

// Expand resolves arguments into inputs. A file argument contributes
// itself; a directory argument is walked recursively in lexical order and
// contributes every regular file below it. Argument order is preserved and
// duplicates are kept.
func Expand(args []string) ([]Input, error) {
	var inputs []Input
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("can't find file or directory %q", arg)
		}
		if !info.IsDir() {
			inputs = append(inputs, newInput(arg))
			continue
		}
		walkErr := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			inputs = append(inputs, newInput(path))
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("failed to scan %q: %w", arg, walkErr)
		}
	}
	return inputs, nil
}

func newInput(path string) Input {
	return Input{Path: path, Name: filepath.ToSlash(path)}
}
