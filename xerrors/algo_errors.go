package xerrors

import "fmt"

var (
	// ErrInvalidInput 成组输入彼此不匹配，例如两条序列长度不同。
	ErrInvalidInput = New(ErrInvalidArg, 400002, "invalid input", "paired inputs must agree in length", nil)
	// ErrIndexOutOfRange 下标越界。
	ErrIndexOutOfRange = New(ErrOutOfRange, 400101, "index out of range", "index must lie in [0, n)", nil)
	// ErrInvalidRange 区间非法。
	ErrInvalidRange = New(ErrOutOfRange, 400102, "invalid range", "range must satisfy 0 <= l <= r <= n", nil)
	// ErrDuplicateKey 键重复。
	ErrDuplicateKey = New(ErrAlreadyExists, 400103, "duplicate key", "keys of an indexed structure must be distinct", nil)
	// ErrKeyNotFound 键不存在。
	ErrKeyNotFound = New(ErrNotFound, 400104, "key not found", "the key was never registered", nil)
	// ErrInvalidShape 二维输入不是矩形。
	ErrInvalidShape = New(ErrInvalidArg, 400105, "invalid shape", "every row must have the same length", nil)
	// ErrPredicateIdentity 二分谓词在单位元上不成立。
	ErrPredicateIdentity = New(ErrInvalidArg, 400106, "predicate must hold on identity", "pred(e) returned false", nil)
	// ErrValueOutOfDomain 取值落在哨兵值上。
	ErrValueOutOfDomain = New(ErrInvalidArg, 400107, "value out of domain", "values must lie strictly between math.MinInt64 and math.MaxInt64", nil)
	// ErrInvariantViolated 数据结构内部不变量被破坏。
	ErrInvariantViolated = New(ErrInternal, 500102, "invariant violated", "", nil)
	// ErrGraphHasCycle 有向图存在环。
	ErrGraphHasCycle = New(ErrFailedPrecondition, 400201, "graph has a cycle", "topological order does not exist", nil)
	// ErrNotATree 图不是树。
	ErrNotATree = New(ErrFailedPrecondition, 400202, "graph is not a tree", "expected a connected graph with n-1 undirected edges", nil)
	// ErrNegativeWeight 存在负权边。
	ErrNegativeWeight = New(ErrInvalidArg, 400203, "negative edge weight", "edge weights must be non-negative", nil)
	// ErrScenarioFailed 自检场景失败。
	ErrScenarioFailed = New(ErrInternal, 500101, "self-check scenario failed", "", nil)
)

// IndexOutOfRange 构造越界错误，作为 panic 的载荷。
func IndexOutOfRange(idx, n int) *Error {
	return Derive(ErrIndexOutOfRange, "index %d, len %d", idx, n)
}

// InvalidRange 构造非法区间错误，作为 panic 的载荷。
func InvalidRange(l, r, n int) *Error {
	return Derive(ErrInvalidRange, "range [%d, %d), len %d", l, r, n)
}

// KeyNotFound 构造键不存在错误。
func KeyNotFound(key any) *Error {
	return Derive(ErrKeyNotFound, "key %s", fmt.Sprint(key))
}
