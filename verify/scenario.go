// Package verify 提供算法库的自检场景与并发执行器，供 cmd/algocheck 与测试使用。
package verify

import (
	"context"
	"slices"

	"github.com/wyfcoding/algo/config"
	"github.com/wyfcoding/algo/xerrors"
)

// Scenario 一个具名的自检场景，失败时返回包装 ErrScenarioFailed 的错误。
type Scenario struct {
	Name string
	Run  func(ctx context.Context, cfg config.CheckConfig) error
}

// Builtin 返回全部内置场景，顺序固定。
func Builtin() []Scenario {
	return []Scenario{
		{Name: "lazy-sum-add", Run: lazySumAdd},
		{Name: "beats-chmin", Run: beatsChmin},
		{Name: "affine-composition", Run: affineComposition},
		{Name: "max-right-prefix", Run: maxRightPrefix},
		{Name: "dsu-equivalence", Run: dsuEquivalence},
		{Name: "tree-diameter", Run: treeDiameter},
		{Name: "lazy-random", Run: lazyRandom},
		{Name: "beats-random", Run: beatsRandom},
		{Name: "affine-sum-laws", Run: affineSumLaws},
		{Name: "clamp-laws", Run: clampLaws},
		{Name: "chmin-beats-agree", Run: chminBeatsAgree},
		{Name: "dual-affine-agree", Run: dualAffineAgree},
	}
}

// Select 按名字挑选场景，names 为空时返回全部。未知的名字返回 ErrKeyNotFound。
func Select(all []Scenario, names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return all, nil
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(all, func(s Scenario) bool { return s.Name == name })
		if i < 0 {
			return nil, xerrors.KeyNotFound(name)
		}
		out = append(out, all[i])
	}
	return out, nil
}
