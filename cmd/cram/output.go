package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cram/internal/genpipeline"
)

func printStageTimings(out io.Writer, timings genpipeline.Timings, enabled bool) {
	if out == nil || !enabled {
		return
	}
	if timings.Has(genpipeline.StageHeader) {
		fmt.Fprintf(out, "wrote header %.1f ms\n", toMillis(timings.Duration(genpipeline.StageHeader)))
	}
	if timings.Has(genpipeline.StageEncode) {
		fmt.Fprintf(out, "encoded %.1f ms\n", toMillis(timings.Duration(genpipeline.StageEncode)))
	}
	if timings.Has(genpipeline.StageBody) {
		fmt.Fprintf(out, "wrote body %.1f ms\n", toMillis(timings.Duration(genpipeline.StageBody)))
	}
	if timings.Has(genpipeline.StageHeader) || timings.Has(genpipeline.StageEncode) || timings.Has(genpipeline.StageBody) {
		total := timings.Sum(genpipeline.StageHeader, genpipeline.StageEncode, genpipeline.StageBody)
		fmt.Fprintf(out, "total %.1f ms\n", toMillis(total))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// displayPath shortens a path to its cwd-relative form for console output.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	return formatPathForOutput(wd, path)
}

func formatPathForOutput(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
