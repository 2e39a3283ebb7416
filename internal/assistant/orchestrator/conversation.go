package orchestrator

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"telecom-assistant/internal/assistant"
)

// ConversationLog is the bounded FIFO of completed interactions. Entries
// are never mutated after insertion; inserting past capacity evicts the
// oldest entry. Record, History and Clear are each a critical section under
// one lock because the transport layer invokes them from concurrent
// request handlers.
//
// Backed by an lru.Cache keyed by a monotonically increasing sequence
// number: entries are only ever added, never looked up, so LRU eviction
// order degenerates to insertion order.
type ConversationLog struct {
	mu      sync.Mutex
	seq     uint64
	entries *lru.Cache[uint64, assistant.ConversationEntry]
}

// NewConversationLog creates a log holding at most capacity entries.
func NewConversationLog(capacity int) *ConversationLog {
	cache, err := lru.New[uint64, assistant.ConversationEntry](capacity)
	if err != nil {
		// Only reachable with a non-positive capacity, which is a
		// programming error.
		panic(err)
	}
	return &ConversationLog{entries: cache}
}

// Record appends one completed interaction.
func (o *Orchestrator) Record(userMessage string, resp assistant.Response) {
	o.log.Add(userMessage, resp)
}

// History returns the categorized view over the log.
func (o *Orchestrator) History() assistant.History {
	return o.log.History()
}

// Clear empties the log unconditionally.
func (o *Orchestrator) Clear() {
	o.log.Clear()
}

// Add appends an entry, evicting the oldest when full.
func (cl *ConversationLog) Add(userMessage string, resp assistant.Response) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.seq++
	cl.entries.Add(cl.seq, assistant.ConversationEntry{
		ID:          uuid.New(),
		Timestamp:   time.Now(),
		UserMessage: userMessage,
		Response:    resp,
	})
}

// Len reports the number of stored entries.
func (cl *ConversationLog) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.entries.Len()
}

// Entries returns the stored entries, oldest first.
func (cl *ConversationLog) Entries() []assistant.ConversationEntry {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.snapshot()
}

// Clear removes every entry.
func (cl *ConversationLog) Clear() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.entries.Purge()
}

// History partitions the log into three views by response shape. The views
// are independent: one entry may appear in more than one.
func (cl *ConversationLog) History() assistant.History {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	history := assistant.History{
		IntentClassifications: []assistant.IntentRecord{},
		APICalls:              []assistant.APICallRecord{},
		DesignCalls:           []assistant.DesignCallRecord{},
	}

	for _, entry := range cl.snapshot() {
		resp := entry.Response

		switch {
		case resp.IsDesign():
			intent := ""
			if len(resp.Intents) > 0 {
				intent = resp.Intents[0]
			}
			history.DesignCalls = append(history.DesignCalls, assistant.DesignCallRecord{
				Timestamp:        entry.Timestamp,
				UserMessage:      entry.UserMessage,
				Intent:           intent,
				DesignType:       resp.DesignType,
				Error:            resp.Error,
				ResultsAvailable: len(resp.Results) > 0,
			})
		case len(resp.Intents) > 0:
			history.IntentClassifications = append(history.IntentClassifications, assistant.IntentRecord{
				Timestamp:     entry.Timestamp,
				UserMessage:   entry.UserMessage,
				Intents:       resp.Intents,
				Confidence:    resp.Confidence,
				Inappropriate: resp.Inappropriate,
			})
		}

		// Data retrieval view: any non-design entry that actually carried
		// results, independent of the two categories above.
		if len(resp.Results) > 0 && !resp.IsDesign() {
			history.APICalls = append(history.APICalls, assistant.APICallRecord{
				Timestamp:    entry.Timestamp,
				UserMessage:  entry.UserMessage,
				QueriesUsed:  resp.QueriesUsed,
				ResultsCount: len(resp.Results),
			})
		}
	}

	return history
}

// snapshot copies entries oldest-first. Callers must hold the lock. Keys()
// reports insertion order because the cache is add-only.
func (cl *ConversationLog) snapshot() []assistant.ConversationEntry {
	keys := cl.entries.Keys()
	out := make([]assistant.ConversationEntry, 0, len(keys))
	for _, k := range keys {
		if entry, ok := cl.entries.Peek(k); ok {
			out = append(out, entry)
		}
	}
	return out
}
