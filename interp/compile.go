package interp

import (
	"context"
	"slices"
	"time"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/fusions"
	"github.com/reusee/bf/insts"
	"github.com/reusee/bf/links"
	"github.com/reusee/bf/logs"
)

type CompileFunc func(ctx context.Context, src string) (insts.Program, error)

func (Module) Compile(
	logger logs.Logger,
	optimize bfconfigs.Optimize,
	fuseClears bfconfigs.FuseClears,
) CompileFunc {

	passes := fusions.DefaultPasses
	if fuseClears {
		passes = slices.Concat(passes, []fusions.Pass{fusions.FuseClears})
	}

	return func(ctx context.Context, src string) (insts.Program, error) {
		t0 := time.Now()
		program, err := links.Parse(src)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "parse completed",
			"duration", time.Since(t0),
			"instructions", len(program),
		)

		if !optimize {
			return program, nil
		}

		t0 = time.Now()
		optimized, err := fusions.Optimize(program, passes...)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "optimization completed",
			"duration", time.Since(t0),
			"instructions", len(optimized),
			"fuse_clears", bool(fuseClears),
		)

		return optimized, nil
	}
}
