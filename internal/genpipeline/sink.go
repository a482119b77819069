package genpipeline

import (
	"fmt"
	"io"
)

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// WriterSink prints plain progress lines for working events. Artifact
// stages print a "Generating <path>..." line, encode stages print the
// input name indented.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) OnEvent(evt Event) {
	if s.W == nil || evt.Status != StatusWorking {
		return
	}
	switch evt.Stage {
	case StageHeader, StageBody:
		fmt.Fprintf(s.W, "Generating %s...\n", evt.File)
	case StageEncode:
		fmt.Fprintf(s.W, "  %s\n", evt.File)
	}
}
