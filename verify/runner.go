package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/wyfcoding/algo/config"
	"github.com/wyfcoding/algo/xerrors"
)

// Result 单个场景的执行结果。
type Result struct {
	Name     string
	Duration time.Duration
	Err      error
}

// Runner 在有界的 goroutine 池中并发执行场景。
type Runner struct {
	Parallelism int           // 小于 1 时按 1 处理
	Timeout     time.Duration // 单个场景的超时，0 表示不限
}

// Run 执行全部场景，结果顺序与 scenarios 一致。
// 任一场景失败时返回各失败原因经 errors.Join 合并后的错误。场景内的 panic 被恢复并记为失败。
func (r Runner) Run(ctx context.Context, cfg config.CheckConfig, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, len(scenarios))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(max(1, r.Parallelism))
	for i, s := range scenarios {
		p.Go(func(ctx context.Context) error {
			results[i] = r.runOne(ctx, cfg, s)
			return nil
		})
	}
	_ = p.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return results, errors.Join(errs...)
}

func (r Runner) runOne(ctx context.Context, cfg config.CheckConfig, s Scenario) (res Result) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	res.Name = s.Name
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			cause, ok := rec.(error)
			if !ok {
				cause = fmt.Errorf("%v", rec)
			}
			res.Err = fmt.Errorf("scenario %s: %w: panic: %w", s.Name, xerrors.ErrScenarioFailed, cause)
		}
		res.Duration = time.Since(start)
		if res.Err != nil {
			slog.ErrorContext(ctx, "scenario failed", "scenario", s.Name, "duration", res.Duration, "error", res.Err)
		} else {
			slog.InfoContext(ctx, "scenario passed", "scenario", s.Name, "duration", res.Duration)
		}
	}()

	if err := s.Run(ctx, cfg); err != nil {
		if !errors.Is(err, xerrors.ErrScenarioFailed) {
			err = fmt.Errorf("%w: %w", xerrors.ErrScenarioFailed, err)
		}
		res.Err = fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return res
}
