package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"lumina/internal/logging"
)

// Role identifies the speaker of a conversation entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting seeds every conversation.
const Greeting = "Welcome to Lumina. How can I assist with your interior curation today?"

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("assistant is still answering the previous message")
)

// Entry is one line of the conversation log.
type Entry struct {
	Role Role
	Text string
}

// Conversation is the append-only log of an assistant panel. It allows one
// outstanding request at a time so replies are appended in submit order.
type Conversation struct {
	ID string

	advisor  Advisor
	inflight *semaphore.Weighted
	logger   *zap.Logger

	mu      sync.RWMutex
	entries []Entry
}

// NewConversation starts a conversation seeded with the greeting.
func NewConversation(advisor Advisor) *Conversation {
	id := uuid.NewString()
	return &Conversation{
		ID:       id,
		advisor:  advisor,
		inflight: semaphore.NewWeighted(1),
		logger:   logging.Get(logging.CategoryAssistant).With(zap.String("conversation", id)),
		entries:  []Entry{{Role: RoleAssistant, Text: Greeting}},
	}
}

// Entries returns a copy of the log.
func (c *Conversation) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Busy reports whether a request is outstanding.
func (c *Conversation) Busy() bool {
	if c.inflight.TryAcquire(1) {
		c.inflight.Release(1)
		return false
	}
	return true
}

func (c *Conversation) append(e Entry) {
	c.mu.Lock()
	c.entries = append(c.entries, e)
	c.mu.Unlock()
}

// Turn is a submitted user message awaiting its reply.
type Turn struct {
	conv    *Conversation
	message string
	done    bool
}

// Message returns the trimmed user message.
func (t *Turn) Message() string {
	return t.message
}

// Begin validates text, reserves the single request slot and appends the
// user entry. The caller must call Complete on the returned Turn.
func (c *Conversation) Begin(text string) (*Turn, error) {
	msg := strings.TrimSpace(text)
	if msg == "" {
		return nil, ErrEmptyMessage
	}
	if !c.inflight.TryAcquire(1) {
		return nil, ErrBusy
	}

	c.append(Entry{Role: RoleUser, Text: msg})
	c.logger.Debug("user message submitted", zap.Int("chars", len(msg)))
	return &Turn{conv: c, message: msg}, nil
}

// Complete asks the advisor and appends its reply. The reply is always
// applied, even if ctx was cancelled while waiting. Calling Complete twice
// returns the empty string.
func (t *Turn) Complete(ctx context.Context) string {
	if t.done {
		return ""
	}
	t.done = true
	defer t.conv.inflight.Release(1)

	reply := t.conv.advisor.Advise(ctx, t.message)
	t.conv.append(Entry{Role: RoleAssistant, Text: reply})
	return reply
}

// Submit is Begin followed by Complete.
func (c *Conversation) Submit(ctx context.Context, text string) (string, error) {
	turn, err := c.Begin(text)
	if err != nil {
		return "", err
	}
	return turn.Complete(ctx), nil
}
