package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/groovehire/backend/internal/model/chat"
	"github.com/groovehire/backend/internal/service/simulator"
)

var ErrConversationNotFound = errors.New("conversation not found")

// DefaultReplyDelay emulates the bot "typing" before each reply.
const DefaultReplyDelay = 1500 * time.Millisecond

// Options tune a Service. A zero ReplyDelay still delivers replies
// asynchronously, just without waiting.
type Options struct {
	ReplyDelay time.Duration
	Replier    Replier
	Greeting   string
	Clock      func() time.Time
}

// Service keeps the live conversations of this process in memory. Nothing is
// persisted: a discarded conversation is gone.
type Service struct {
	replier  Replier
	delay    time.Duration
	greeting string
	now      func() time.Time

	mu            sync.RWMutex
	conversations map[string]*Conversation
}

// NewService builds the conversation registry.
func NewService(opts Options) *Service {
	svc := &Service{
		replier:       opts.Replier,
		delay:         opts.ReplyDelay,
		greeting:      opts.Greeting,
		now:           opts.Clock,
		conversations: make(map[string]*Conversation),
	}
	if svc.replier == nil {
		svc.replier = simulator.Default()
	}
	if svc.delay < 0 {
		svc.delay = 0
	}
	if svc.greeting == "" {
		svc.greeting = simulator.Greeting
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

// Create opens a conversation seeded with the bot greeting.
func (s *Service) Create(_ context.Context) (*Conversation, error) {
	conv := newConversation(uuid.NewString(), s.replier, s.delay, s.now)
	conv.AppendBot(s.greeting)

	s.mu.Lock()
	s.conversations[conv.ID()] = conv
	s.mu.Unlock()

	log.Info().Str("component", "chat").Str("conv_id", conv.ID()).Msg("conversation created")
	return conv, nil
}

// Get retrieves a live conversation.
func (s *Service) Get(_ context.Context, id string) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}

// Snapshot returns the current log of a conversation.
func (s *Service) Snapshot(ctx context.Context, id string) (chat.Snapshot, error) {
	conv, err := s.Get(ctx, id)
	if err != nil {
		return chat.Snapshot{}, err
	}
	return conv.Snapshot(), nil
}

// Discard forgets a conversation, the equivalent of the chat view unmounting.
func (s *Service) Discard(_ context.Context, id string) error {
	s.mu.Lock()
	conv, ok := s.conversations[id]
	if ok {
		delete(s.conversations, id)
	}
	s.mu.Unlock()

	if !ok {
		return ErrConversationNotFound
	}
	conv.Close()

	log.Info().Str("component", "chat").Str("conv_id", id).Msg("conversation discarded")
	return nil
}

// Count returns the number of live conversations.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}

// Close ends every live event stream and stops accepting submissions. The
// conversations stay readable so Drain can still wait on their replies.
func (s *Service) Close() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, conv := range s.conversations {
		conv.Close()
	}
}

// Drain waits for the in-flight replies of every live conversation.
func (s *Service) Drain() {
	s.mu.RLock()
	convs := make([]*Conversation, 0, len(s.conversations))
	for _, conv := range s.conversations {
		convs = append(convs, conv)
	}
	s.mu.RUnlock()

	for _, conv := range convs {
		conv.Wait()
	}
}
