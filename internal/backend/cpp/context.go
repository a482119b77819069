// Package cpp generates C++11 source code embedding binary files.
//
// One Context describes one generation run: the ordered inputs, the output
// base name, and an optional namespace. An Emitter consumes the Context and
// produces the two artifacts: a header declaring the embedded-file registry
// and an implementation file defining it.
package cpp

import (
	"fmt"
	"strings"
)

// Input identifies one file to embed.
type Input struct {
	// Path is the filesystem path the bytes are read from.
	Path string
	// Name is the display name embedded alongside the data, normally the
	// path as the user gave it, with forward slashes.
	Name string
	// Ident is the derived C++ identifier, unique within one Context.
	// NewContext assigns it.
	Ident string
}

// Context carries the read-only configuration for one generation run.
type Context struct {
	Inputs    []Input
	BaseName  string
	Namespace string
}

// NewContext validates the configuration and assigns a unique identifier to
// every input. Namespace may be empty, meaning the generated code is not
// wrapped in a namespace.
func NewContext(inputs []Input, baseName, namespace string) (*Context, error) {
	if baseName == "" {
		return nil, fmt.Errorf("output base name must not be empty")
	}
	if strings.ContainsAny(baseName, `/\`) {
		return nil, fmt.Errorf("output base name %q must not contain path separators", baseName)
	}
	if namespace != "" && !isValidNamespace(namespace) {
		return nil, fmt.Errorf("invalid namespace %q (must be a C++ identifier)", namespace)
	}
	ctx := &Context{
		Inputs:    make([]Input, len(inputs)),
		BaseName:  baseName,
		Namespace: namespace,
	}
	copy(ctx.Inputs, inputs)
	assignIdentifiers(ctx.Inputs)
	return ctx, nil
}

// HeaderFileName returns the file name of the declarations artifact.
func (c *Context) HeaderFileName() string {
	return c.BaseName + ".h"
}

// BodyFileName returns the file name of the definitions artifact.
func (c *Context) BodyFileName() string {
	return c.BaseName + ".cpp"
}

// includeGuard is unique per base name and namespace, so several generated
// registries can be included into the same translation unit.
func (c *Context) includeGuard() string {
	guard := "CRAM_" + sanitizeUpper(c.BaseName)
	if c.Namespace != "" {
		guard += "_" + sanitizeUpper(c.Namespace)
	}
	return guard + "_H"
}

func isValidNamespace(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
