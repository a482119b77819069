package cpp

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

const warningBanner = "// This file was generated by cram\n" +
	"// WARNING: any change you make will be lost!\n"

// Emitter produces the two artifacts for one Context. The expected call
// sequence is Header, then AddFile once per Context input in order, then
// Body. An Emitter is not reused across Contexts.
type Emitter struct {
	ctx   *Context
	defs  strings.Builder
	added int
}

// NewEmitter returns an Emitter for the given Context.
func NewEmitter(ctx *Context) *Emitter {
	return &Emitter{ctx: ctx}
}

// AddFile appends the definition block for one input: its display name, its
// size in bytes, and its data as an escaped string literal. Inputs must be
// added in Context order. The size constant is emitted as unsigned int, so a
// file whose length does not fit in 32 bits is refused.
func (e *Emitter) AddFile(in Input, data []byte) error {
	if e.added >= len(e.ctx.Inputs) {
		return fmt.Errorf("unexpected extra file %s: all %d inputs already added", in.Name, len(e.ctx.Inputs))
	}
	if want := e.ctx.Inputs[e.added]; in.Ident != want.Ident {
		return fmt.Errorf("file %s added out of order: expected %s next", in.Name, want.Name)
	}
	size, err := safecast.Conv[uint32](len(data))
	if err != nil {
		return fmt.Errorf("file %s is too large to embed: %w", in.Name, err)
	}

	nameLiteral, _ := EncodeLiteral([]byte(in.Name))
	dataLiteral, _ := EncodeLiteral(data)

	fmt.Fprintf(&e.defs, "// %s\n", in.Name)
	if strings.Contains(nameLiteral, "\n") {
		fmt.Fprintf(&e.defs, "const char * %s_name =\n%s;\n", in.Ident, nameLiteral)
	} else {
		fmt.Fprintf(&e.defs, "const char * %s_name = %s;\n", in.Ident, nameLiteral)
	}
	fmt.Fprintf(&e.defs, "const unsigned int %s_size = %d;\n", in.Ident, size)
	fmt.Fprintf(&e.defs, "const char * %s_data =\n%s;\n\n", in.Ident, dataLiteral)

	e.added++
	return nil
}
