package chat

import "time"

// Sender identifies who authored an entry.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// TimestampLayout renders the clock time shown next to each entry.
const TimestampLayout = "03:04 PM"

// Entry is one line of the conversation log. Entries are immutable once
// appended.
type Entry struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp string    `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsBot reports whether the entry was produced by the reply simulator.
func (e Entry) IsBot() bool {
	return e.Sender == SenderBot
}
