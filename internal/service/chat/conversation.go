package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/groovehire/backend/internal/model/chat"
)

// Replier produces the bot's answer to a user utterance.
type Replier interface {
	Simulate(utterance string) string
}

const subscriberBuffer = 32

// Conversation is the append-only message log of one chat view together with
// its typing indicator. Replies are scheduled independently per submission
// and are never cancelled: a reply scheduled before Close still lands in the
// log.
type Conversation struct {
	id        string
	createdAt time.Time
	replier   Replier
	delay     time.Duration
	now       func() time.Time

	mu          sync.Mutex
	entries     []chat.Entry
	inflight    int
	closed      bool
	subscribers map[int]chan chat.Event
	nextSubID   int

	replies sync.WaitGroup
}

func newConversation(id string, replier Replier, delay time.Duration, now func() time.Time) *Conversation {
	return &Conversation{
		id:          id,
		createdAt:   now(),
		replier:     replier,
		delay:       delay,
		now:         now,
		entries:     make([]chat.Entry, 0, 16),
		subscribers: make(map[int]chan chat.Event),
	}
}

// ID returns the conversation identifier.
func (c *Conversation) ID() string {
	return c.id
}

// AppendUser records a user submission and schedules the simulated reply.
// Blank text is ignored and reported with ok == false, as is anything
// submitted after Close.
func (c *Conversation) AppendUser(text string) (chat.Entry, bool) {
	if strings.TrimSpace(text) == "" {
		return chat.Entry{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return chat.Entry{}, false
	}

	entry := c.appendLocked(chat.SenderUser, text)
	c.scheduleReplyLocked(text)
	return entry, true
}

// QuickReply submits a predefined label exactly like typed text.
func (c *Conversation) QuickReply(label string) (chat.Entry, bool) {
	return c.AppendUser(label)
}

// AppendBot records a bot entry. It is used for the greeting and for
// simulator output.
func (c *Conversation) AppendBot(text string) chat.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appendLocked(chat.SenderBot, text)
}

// appendLocked stamps the entry under the lock so id order and creation time
// always agree.
func (c *Conversation) appendLocked(sender chat.Sender, text string) chat.Entry {
	now := c.now()
	entry := chat.Entry{
		ID:        len(c.entries) + 1,
		Text:      text,
		Sender:    sender,
		Timestamp: now.Format(chat.TimestampLayout),
		CreatedAt: now,
	}
	c.entries = append(c.entries, entry)

	c.publishLocked(chat.Event{Type: chat.EventEntry, Entry: &entry, Pending: c.inflight > 0})
	return entry
}

func (c *Conversation) scheduleReplyLocked(utterance string) {
	c.inflight++
	c.publishLocked(chat.Event{Type: chat.EventTyping, Pending: true})

	c.replies.Add(1)
	time.AfterFunc(c.delay, func() {
		defer c.replies.Done()

		reply := c.replier.Simulate(utterance)

		c.mu.Lock()
		c.inflight--
		entry := c.appendLocked(chat.SenderBot, reply)
		pending := c.inflight > 0
		c.publishLocked(chat.Event{Type: chat.EventTyping, Pending: pending})
		c.mu.Unlock()

		log.Debug().
			Str("component", "chat").
			Str("conv_id", c.id).
			Int("entry_id", entry.ID).
			Bool("pending", pending).
			Msg("simulated reply delivered")
	})
}

// Entries returns a copy of the log in append order.
func (c *Conversation) Entries() []chat.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]chat.Entry, len(c.entries))
	copy(copied, c.entries)
	return copied
}

// Len returns the number of entries in the log.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Pending reports whether a simulated reply is still in flight.
func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Snapshot returns the log and typing state in one consistent read.
func (c *Conversation) Snapshot() chat.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]chat.Entry, len(c.entries))
	copy(entries, c.entries)
	return chat.Snapshot{
		ID:        c.id,
		Entries:   entries,
		Pending:   c.inflight > 0,
		CreatedAt: c.createdAt,
	}
}

// Wait blocks until every reply scheduled so far has been appended.
func (c *Conversation) Wait() {
	c.replies.Wait()
}

// Subscribe registers for live events. The returned cancel func must be
// called once the subscriber is done; the channel is closed afterwards or
// when the conversation is closed.
func (c *Conversation) Subscribe() (<-chan chat.Event, func()) {
	ch := make(chan chat.Event, subscriberBuffer)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = ch
	c.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subscribers[id]; ok {
				delete(c.subscribers, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Close detaches all subscribers and refuses further submissions. In-flight
// replies still complete.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for id, sub := range c.subscribers {
		delete(c.subscribers, id)
		close(sub)
	}
}

// publishLocked fans event out without blocking. A subscriber that cannot
// keep up is detached and its channel closed, so it reconnects and starts
// again from a fresh snapshot instead of rendering a log with holes.
func (c *Conversation) publishLocked(event chat.Event) {
	event.ConversationID = c.id
	for id, sub := range c.subscribers {
		select {
		case sub <- event:
		default:
			delete(c.subscribers, id)
			close(sub)
			log.Warn().
				Str("component", "chat").
				Str("conv_id", c.id).
				Int("subscriber", id).
				Str("event", string(event.Type)).
				Msg("subscriber buffer full, detaching")
		}
	}
}
