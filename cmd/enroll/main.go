// Command enroll builds an authentication baseline from recorded enrollment
// captures and writes it as JSON for the caller to persist.
//
// Usage:
//
//	enroll -kind signature -out baseline.json capture1.json capture2.json capture3.json
//
// Each capture file holds the raw wire payload under "strokes" (any accepted
// shape) plus the device descriptor recorded at capture time.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sauerbraten/jsonfile"

	"github.com/okian/drawauth/internal/app"
	"github.com/okian/drawauth/internal/config"
	"github.com/okian/drawauth/internal/domain/model"
	"github.com/okian/drawauth/pkg/logger"
	"github.com/okian/drawauth/pkg/metrics"
)

// captureFile is the on-disk shape of a recorded capture.
type captureFile struct {
	ID      string                   `json:"id"`
	Kind    string                   `json:"kind"`
	Device  model.DeviceCapabilities `json:"device"`
	Strokes json.RawMessage          `json:"strokes"`
}

func main() {
	kindFlag := flag.String("kind", string(model.KindSignature), "component kind to enroll")
	outFlag := flag.String("out", "", "baseline output path (default stdout)")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	kind := model.ComponentKind(*kindFlag)
	if !kind.Valid() {
		os.Stderr.WriteString("unknown component kind: " + *kindFlag + "\n")
		os.Exit(1)
	}
	paths := flag.Args()
	if len(paths) < cfg.MinEnrollmentSamples {
		fmt.Fprintf(os.Stderr, "need at least %d capture files, got %d\n", cfg.MinEnrollmentSamples, len(paths))
		os.Exit(1)
	}

	svc := app.FromConfig(cfg,
		app.WithLogger(logger.Get()),
		app.WithMetrics(metrics.NewManager(metrics.WithMetricsEnabled(false))),
	)

	var captures []model.Capture
	var device model.DeviceCapabilities
	for _, path := range paths {
		var cf captureFile
		if err := jsonfile.ParseFile(path, &cf); err != nil {
			os.Stderr.WriteString("failed to read " + path + ": " + err.Error() + "\n")
			os.Exit(1)
		}
		device = cf.Device
		captures = append(captures, svc.NormalizeCapture(ctx, kind, cf.Device, cf.Strokes))
	}

	b, report, err := svc.Enroll(ctx, kind, device, captures)
	if err != nil {
		os.Stderr.WriteString("enrollment failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	out := os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			os.Stderr.WriteString("failed to create " + *outFlag + ": " + err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		os.Stderr.WriteString("failed to write baseline: " + err.Error() + "\n")
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "baseline built from %d samples (%d features); velocity consistency %.2f\n",
		b.SampleCount, len(b.PerFeature), report.Velocity)
}
