package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// fanout 把一条记录写到多个输出（stdout 与滚动文件）。每个输出按自己的级别过滤，
// 某个输出写入失败时其余输出照常写入，所有失败合并后返回。
type fanout []slog.Handler

func newFanout(sinks ...slog.Handler) slog.Handler {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return fanout(sinks)
}

// Enabled 只要有一个输出接受该级别即为真。
func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, s := range f {
		if s.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

// Handle 只交给接受该级别的输出，每个输出拿到记录的独立副本。
func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for i, s := range f {
		if !s.Enabled(ctx, r.Level) {
			continue
		}
		if err := s.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, fmt.Errorf("log sink %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return f
	}
	return f.each(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	if name == "" {
		return f
	}
	return f.each(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (f fanout) each(derive func(slog.Handler) slog.Handler) fanout {
	out := make(fanout, len(f))
	for i, s := range f {
		out[i] = derive(s)
	}
	return out
}
