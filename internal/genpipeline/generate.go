// Package genpipeline orchestrates the generation of C++ artifacts.
package genpipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cram/internal/backend/cpp"
	"cram/internal/resolve"
)

// Request configures one generation run.
type Request struct {
	Inputs    []resolve.Input
	OutDir    string
	BaseName  string
	Namespace string
	Progress  ProgressSink
}

// Result captures generated artifact paths and timings.
type Result struct {
	HeaderPath string
	BodyPath   string
	FileCount  int
	TotalBytes int64
	Timings    Timings
}

// Generate emits the header and body artifacts for the request inputs.
// The run is strictly sequential: the header is written first, then each
// input is read and encoded in order, then the body is written. The first
// failure aborts the run; artifacts already written stay in place.
func Generate(ctx context.Context, req *Request) (Result, error) {
	var result Result
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing generate request")
	}

	inputs := make([]cpp.Input, len(req.Inputs))
	for i, in := range req.Inputs {
		inputs[i] = cpp.Input{Path: in.Path, Name: in.Name}
	}
	gctx, err := cpp.NewContext(inputs, req.BaseName, req.Namespace)
	if err != nil {
		return result, err
	}

	result.HeaderPath = filepath.Join(req.OutDir, gctx.HeaderFileName())
	result.BodyPath = filepath.Join(req.OutDir, gctx.BodyFileName())
	result.FileCount = len(gctx.Inputs)

	emitQueued(req.Progress, gctx.Inputs)

	emitter := cpp.NewEmitter(gctx)

	headerStart := time.Now()
	emitStage(req.Progress, result.HeaderPath, StageHeader, StatusWorking, nil, 0)
	if err := os.WriteFile(result.HeaderPath, []byte(emitter.Header()), 0o600); err != nil {
		err = fmt.Errorf("failed to write %q: %w", result.HeaderPath, err)
		emitStage(req.Progress, result.HeaderPath, StageHeader, StatusError, err, 0)
		return result, err
	}
	result.Timings.Set(StageHeader, time.Since(headerStart))
	emitStage(req.Progress, result.HeaderPath, StageHeader, StatusDone, nil, result.Timings.Duration(StageHeader))

	emitStage(req.Progress, result.BodyPath, StageBody, StatusWorking, nil, 0)

	encodeStart := time.Now()
	for _, in := range gctx.Inputs {
		if err := ctx.Err(); err != nil {
			emitStage(req.Progress, in.Name, StageEncode, StatusError, err, 0)
			return result, err
		}
		fileStart := time.Now()
		emitStage(req.Progress, in.Name, StageEncode, StatusWorking, nil, 0)
		// #nosec G304 -- the path was resolved from user-supplied arguments
		data, err := os.ReadFile(in.Path)
		if err != nil {
			err = fmt.Errorf("failed to read %q: %w", in.Path, err)
			emitStage(req.Progress, in.Name, StageEncode, StatusError, err, 0)
			return result, err
		}
		if err := emitter.AddFile(in, data); err != nil {
			emitStage(req.Progress, in.Name, StageEncode, StatusError, err, 0)
			return result, err
		}
		result.TotalBytes += int64(len(data))
		emitStage(req.Progress, in.Name, StageEncode, StatusDone, nil, time.Since(fileStart))
	}
	result.Timings.Set(StageEncode, time.Since(encodeStart))

	bodyStart := time.Now()
	body, err := emitter.Body()
	if err != nil {
		emitStage(req.Progress, result.BodyPath, StageBody, StatusError, err, 0)
		return result, err
	}
	if err := os.WriteFile(result.BodyPath, []byte(body), 0o600); err != nil {
		err = fmt.Errorf("failed to write %q: %w", result.BodyPath, err)
		emitStage(req.Progress, result.BodyPath, StageBody, StatusError, err, 0)
		return result, err
	}
	result.Timings.Set(StageBody, time.Since(bodyStart))
	emitStage(req.Progress, result.BodyPath, StageBody, StatusDone, nil, result.Timings.Duration(StageBody))

	return result, nil
}

func emitQueued(sink ProgressSink, inputs []cpp.Input) {
	if sink == nil {
		return
	}
	for _, in := range inputs {
		sink.OnEvent(Event{File: in.Name, Stage: StageEncode, Status: StatusQueued})
	}
}

func emitStage(sink ProgressSink, file string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
