package game

// ReconcileResult tells the caller what a reconciliation did.
type ReconcileResult int

const (
	// ReconcileApplied means the batch matched the session's seed and its
	// events were folded in.
	ReconcileApplied ReconcileResult = iota
	// ReconcileNoChange means the batch matched but carried no events.
	ReconcileNoChange
	// ReconcileStaleSeed means the batch describes a different game instance
	// and was ignored. The session is returned unchanged; callers may treat
	// this as "game superseded" or ignore it.
	ReconcileStaleSeed
)

func (r ReconcileResult) String() string {
	switch r {
	case ReconcileApplied:
		return "applied"
	case ReconcileNoChange:
		return "no change"
	case ReconcileStaleSeed:
		return "stale seed"
	}
	return "unknown"
}

// Reconcile merges an incoming event batch into the session and returns the
// resulting session. Events are folded in the exact order delivered; the
// server is trusted to send each event once, in order, relative to the
// watermark the client reported. No deduplication or gap detection happens
// here. After the fold the local player's side is recomputed from the roster.
//
// A batch whose seed differs from the session's belongs to a different game
// and is never merged.
func (s *Session) Reconcile(seed int64, events []Event) (*Session, ReconcileResult) {
	if seed != s.Seed {
		return s, ReconcileStaleSeed
	}
	if len(events) == 0 {
		return s, ReconcileNoChange
	}
	next := s
	for _, e := range events {
		next = next.ApplyEvent(e)
	}
	next.Player.Side = next.Players[next.Player.ID]
	return next, ReconcileApplied
}
