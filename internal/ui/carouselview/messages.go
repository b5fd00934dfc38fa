package carouselview

// SettledMsg reports that a navigation came to rest on a real item.
type SettledMsg struct {
	Session   uint64
	RealIndex int
}

// frameMsg advances animation Anim of a session by one frame.
type frameMsg struct {
	Session uint64
	Anim    uint64
}

// timerMsg runs scheduled callback ID of a session.
type timerMsg struct {
	Session uint64
	ID      uint64
}
