// Package algebra 定义线段树、前缀和、并查集等数据结构共用的代数接口。
//
// 约定.
// - Monoid: 单位元 Identity 与满足结合律的二元运算 Op，不要求交换律。
// - Action: 作用幺半群 F 与它在 S 上的作用，不要求 S 上有运算。
// - MapMonoid: 在 Monoid 之上增加作用幺半群 F，Mapping 把 F 作用到 S 上，
//   Composition(f, g) 表示"先 g 后 f"。延迟传播的正确性依赖分配律
//   Mapping(f, Op(a, b)) == Op(Mapping(f, a), Mapping(f, b))。
// - MapMonoidBeats: Mapping 可以失败的 MapMonoid，失败的节点由子节点重算。
// - AbGroup: 可换群，提供零元、加法、取逆与减法，用于前缀和与差分。
//
// 所有实例都是零大小的结构体，泛型代码按具体类型实例化，避免接口的动态派发。
package algebra

// Monoid 幺半群。
type Monoid[S any] interface {
	Identity() S
	Op(a, b S) S
}

// Action 作用幺半群 F 及其在 S 上的作用，对偶线段树的参数。
type Action[S, F any] interface {
	IdentityMap() F
	Mapping(f F, x S) S
	Composition(f, g F) F
}

// MapMonoid 带作用的幺半群，懒标记线段树的参数。
type MapMonoid[S, F any] interface {
	Monoid[S]
	Action[S, F]
}

// MapMonoidBeats 允许作用失败的 MapMonoid，抽象 Segment Tree Beats 的参数。
// Mapping 无法只凭聚合值算出结果时返回一个 Fails 为真的值，树随后下推并由子节点重算。
// 叶子上的 Mapping 必须总是成功。
type MapMonoidBeats[S, F any] interface {
	MapMonoid[S, F]
	Fails(x S) bool
}

// AbGroup 可换群。
type AbGroup[S any] interface {
	Zero() S
	Add(a, b S) S
	Neg(a S) S
	Sub(a, b S) S
}

// Pow 用二进制幂计算 x 自乘 n 次，n == 0 时返回单位元。
func Pow[S any, M Monoid[S]](m M, x S, n uint64) S {
	res := m.Identity()
	for n > 0 {
		if n&1 == 1 {
			res = m.Op(res, x)
		}
		x = m.Op(x, x)
		n >>= 1
	}
	return res
}

// Fold 按从左到右的顺序折叠 xs。
func Fold[S any, M Monoid[S]](m M, xs []S) S {
	acc := m.Identity()
	for _, x := range xs {
		acc = m.Op(acc, x)
	}
	return acc
}
