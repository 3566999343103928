package cli

import (
	"time"

	"github.com/alexanderramin/chartwise/internal/cli/formatter"
	"github.com/google/uuid"
)

// maxExchanges caps the in-memory history; older exchanges are dropped.
const maxExchanges = 500

// Exchange is one answered question in a shell session.
type Exchange struct {
	ID       string
	Query    string
	Response string
	AskedAt  time.Time
}

// Conversation is the question history of one shell session. It lives in
// memory only and is discarded when the shell exits.
type Conversation struct {
	exchanges []Exchange
	now       func() time.Time
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{now: time.Now}
}

// Record appends an exchange and returns it.
func (c *Conversation) Record(query, response string) Exchange {
	ex := Exchange{
		ID:       uuid.New().String(),
		Query:    query,
		Response: response,
		AskedAt:  c.now().UTC(),
	}
	c.exchanges = append(c.exchanges, ex)
	if len(c.exchanges) > maxExchanges {
		c.exchanges = c.exchanges[len(c.exchanges)-maxExchanges:]
	}
	return ex
}

// Exchanges returns the recorded exchanges, oldest first.
func (c *Conversation) Exchanges() []Exchange {
	out := make([]Exchange, len(c.exchanges))
	copy(out, c.exchanges)
	return out
}

// Len returns the number of recorded exchanges.
func (c *Conversation) Len() int {
	return len(c.exchanges)
}

// Clear forgets every exchange.
func (c *Conversation) Clear() {
	c.exchanges = nil
}

func (c *Conversation) historyItems() []formatter.HistoryItem {
	items := make([]formatter.HistoryItem, 0, len(c.exchanges))
	for _, ex := range c.exchanges {
		items = append(items, formatter.HistoryItem{
			Query:    ex.Query,
			Response: ex.Response,
			AskedAt:  ex.AskedAt.Local(),
		})
	}
	return items
}
