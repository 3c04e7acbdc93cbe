package core

// Tone is a color hint for a notification. The renderer decides the actual
// style; the engine only states the kind of news it is delivering.
type Tone int

const (
	ToneInfo    Tone = iota
	ToneGood         // rewards, purchases, unlocks
	ToneBad          // penalties, failures
	ToneSpecial      // rank ups, prestige, achievements
)

// Notification is one transient toast emitted by the engine. The renderer
// drains the remaining ticks each frame and discards expired entries.
type Notification struct {
	Text           string
	RemainingTicks int
	Tone           Tone
}

// NotificationQueue is an ordered list of pending notifications.
// The engine appends; the platform ages and trims it once per frame.
type NotificationQueue struct {
	items []Notification
}

// Push appends a notification with the given lifetime in ticks.
func (q *NotificationQueue) Push(text string, ticks int, tone Tone) {
	q.items = append(q.items, Notification{Text: text, RemainingTicks: ticks, Tone: tone})
}

// Items returns the live notifications in arrival order.
func (q *NotificationQueue) Items() []Notification {
	return q.items
}

// Age decrements every notification's lifetime by one tick and drops the
// expired ones, preserving order.
func (q *NotificationQueue) Age() {
	live := q.items[:0]
	for _, n := range q.items {
		n.RemainingTicks--
		if n.RemainingTicks > 0 {
			live = append(live, n)
		}
	}
	q.items = live
}

// Len returns the number of live notifications.
func (q *NotificationQueue) Len() int { return len(q.items) }

// Clear drops all notifications.
func (q *NotificationQueue) Clear() { q.items = q.items[:0] }
