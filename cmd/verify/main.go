// Command verify scores live captures against enrollment baselines and
// prints the aggregate authentication decision.
//
// Usage:
//
//	verify baseline1.json live1.json [baseline2.json live2.json ...]
//
// Each pair is one component: the baseline produced by enroll and a live
// capture file in the same shape enroll consumes.
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

type captureFile struct {
	ID      string                   `json:"id"`
	Kind    string                   `json:"kind"`
	Device  model.DeviceCapabilities `json:"device"`
	Strokes json.RawMessage          `json:"strokes"`
}

func main() {
	breakdown := flag.Bool("breakdown", false, "print per-feature contributions")
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

	paths := flag.Args()
	if len(paths) == 0 || len(paths)%2 != 0 {
		os.Stderr.WriteString("usage: verify baseline.json live.json [baseline2.json live2.json ...]\n")
		os.Exit(1)
	}

	svc := app.FromConfig(cfg,
		app.WithLogger(logger.Get()),
		app.WithMetrics(metrics.NewManager(metrics.WithMetricsEnabled(false))),
	)

	results := make(map[model.ComponentKind]model.ScoreResult)
	for i := 0; i < len(paths); i += 2 {
		var base model.Baseline
		if err := jsonfile.ParseFile(paths[i], &base); err != nil {
			os.Stderr.WriteString("failed to read baseline " + paths[i] + ": " + err.Error() + "\n")
			os.Exit(1)
		}
		var cf captureFile
		if err := jsonfile.ParseFile(paths[i+1], &cf); err != nil {
			os.Stderr.WriteString("failed to read capture " + paths[i+1] + ": " + err.Error() + "\n")
			os.Exit(1)
		}

		live := svc.NormalizeCapture(ctx, base.Kind, cf.Device, cf.Strokes)
		result, err := svc.Verify(ctx, live, base)
		if err != nil {
			os.Stderr.WriteString("verification failed: " + err.Error() + "\n")
			os.Exit(1)
		}
		results[base.Kind] = result

		if result.Comparable() {
			fmt.Printf("%-12s score %6.2f (excluded %d features)\n",
				base.Kind, result.Overall, result.ExcludedFeatureCount)
		} else {
			fmt.Printf("%-12s not comparable: %s\n", base.Kind, result.Reason)
		}
		if *breakdown {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(result.PerFeature)
		}
	}

	decision := svc.Authenticate(ctx, results)
	verdict := "REJECTED"
	if decision.Pass {
		verdict = "AUTHENTICATED"
	}
	fmt.Printf("\noverall confidence %.2f (threshold %.0f): %s\n",
		decision.Overall, cfg.PassThreshold, verdict)
	if !decision.Pass {
		os.Exit(2)
	}
}
