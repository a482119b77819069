package cpp

import (
	"fmt"
	"strings"
)

// Body returns the full text of the definitions artifact. Every Context
// input must have been passed to AddFile first; a mismatch means the record
// list would not line up with the emitted data blocks.
func (e *Emitter) Body() (string, error) {
	if e.added != len(e.ctx.Inputs) {
		return "", fmt.Errorf("definitions incomplete: %d of %d files added", e.added, len(e.ctx.Inputs))
	}

	var sb strings.Builder
	sb.WriteString(warningBanner)
	fmt.Fprintf(&sb, "#include %q\n", e.ctx.HeaderFileName())
	sb.WriteString("\n")

	// The per-file constants live in an anonymous namespace so identically
	// derived names from another generated registry cannot clash at link
	// time.
	if len(e.ctx.Inputs) > 0 {
		sb.WriteString("namespace {\n\n")
		sb.WriteString(e.defs.String())
		sb.WriteString("}\n\n")
	}

	if e.ctx.Namespace != "" {
		fmt.Fprintf(&sb, "namespace %s {\n\n", e.ctx.Namespace)
	}
	fmt.Fprintf(&sb, "const unsigned int fileInfoListSize = %d;\n", len(e.ctx.Inputs))
	sb.WriteString("\n")
	if len(e.ctx.Inputs) > 0 {
		sb.WriteString("const FileInfo s_fileInfoList[] = {\n")
		for _, in := range e.ctx.Inputs {
			fmt.Fprintf(&sb, "    { %s_name, %s_data, %s_size },\n", in.Ident, in.Ident, in.Ident)
		}
		sb.WriteString("};\n")
		sb.WriteString("\n")
		sb.WriteString("const FileInfo * const fileInfoList = s_fileInfoList;\n")
	} else {
		// An empty registry still compiles: no array, a null list pointer,
		// and FileInfoRange::end() never adds to it.
		sb.WriteString("const FileInfo * const fileInfoList = nullptr;\n")
	}
	if e.ctx.Namespace != "" {
		fmt.Fprintf(&sb, "\n} // %s\n", e.ctx.Namespace)
	}
	return sb.String(), nil
}
