package deque

// Metrics is an observability hook, modeled on shardcache's cache.Metrics:
// a small set of fire-and-forget callbacks a Deque reports to on every
// push/pop/unlink, so a caller can wire in Prometheus (see
// metrics/prom) or any other backend without the hot path depending on
// it. Implementations must be safe for concurrent use; they are called
// from whichever goroutine performed the mutation, never from a
// dedicated reporter goroutine.
type Metrics interface {
	// OnPush is called once per element that becomes live, after
	// PushFirst/PushLast/PushAll/PushLastDetached succeed.
	OnPush()
	// OnPop is called once per element that stops being live, whether via
	// a Poll*/RemoveFirst/RemoveLast/Remove/*Occurrence call, Node.Unlink
	// or Iterator.Remove.
	OnPop()
	// OnUnlink is called once per node physically detached from the
	// chain, including interior nodes removed via Node.Unlink. It fires
	// alongside OnPop for every removal in this implementation, but is a
	// distinct event so a backend can tell logical removal from physical
	// unlinking if a future change makes the latter lazier.
	OnUnlink()
	// OnSize reports the current SizeApprox value after a push or pop.
	OnSize(n int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing. It
// is the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) OnPush()    {}
func (NoopMetrics) OnPop()     {}
func (NoopMetrics) OnUnlink()  {}
func (NoopMetrics) OnSize(int) {}

var _ Metrics = NoopMetrics{}
