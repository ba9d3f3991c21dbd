package verify

import (
	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

// MonoidLaws 检查单位元与结合律。
func MonoidLaws[S comparable, M algebra.Monoid[S]](m M, xs []S) error {
	e := m.Identity()
	for _, x := range xs {
		if m.Op(e, x) != x || m.Op(x, e) != x {
			return failf("identity law broken at %v", x)
		}
	}
	for _, a := range xs {
		for _, b := range xs {
			for _, c := range xs {
				if m.Op(m.Op(a, b), c) != m.Op(a, m.Op(b, c)) {
					return failf("associativity broken at (%v, %v, %v)", a, b, c)
				}
			}
		}
	}
	return nil
}

// ActionLaws 检查作用幺半群定律与分配律。作用之间按其在 xs 上的映射结果比较，
// 因此同一个函数的不同表示被视为相等。
func ActionLaws[S comparable, F any, M algebra.MapMonoid[S, F]](m M, xs []S, fs []F) error {
	id := m.IdentityMap()
	sameOn := func(f, g F) bool {
		for _, x := range xs {
			if m.Mapping(f, x) != m.Mapping(g, x) {
				return false
			}
		}
		return true
	}

	for _, x := range xs {
		if m.Mapping(id, x) != x {
			return failf("mapping(id, %v) != %v", x, x)
		}
	}
	for _, f := range fs {
		if !sameOn(m.Composition(id, f), f) || !sameOn(m.Composition(f, id), f) {
			return failf("identity map is not neutral for %v", f)
		}
		for _, a := range xs {
			for _, b := range xs {
				if m.Mapping(f, m.Op(a, b)) != m.Op(m.Mapping(f, a), m.Mapping(f, b)) {
					return failf("distributivity broken for %v at (%v, %v)", f, a, b)
				}
			}
		}
		for _, g := range fs {
			for _, x := range xs {
				if m.Mapping(m.Composition(f, g), x) != m.Mapping(f, m.Mapping(g, x)) {
					return failf("mapping(compose(%v, %v), %v) differs from nested mapping", f, g, x)
				}
			}
			for _, h := range fs {
				if !sameOn(m.Composition(m.Composition(f, g), h), m.Composition(f, m.Composition(g, h))) {
					return failf("composition not associative at (%v, %v, %v)", f, g, h)
				}
			}
		}
	}
	return nil
}

func failf(format string, args ...any) error {
	return xerrors.Derive(xerrors.ErrScenarioFailed, format, args...)
}
