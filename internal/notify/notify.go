// Package notify keeps per-user notification state in memory. The core
// never creates notifications; they are injected by seeding and only their
// read flags and presence change afterwards.
package notify

import (
	"sync"

	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/pkg/metrics"
)

// Inbox tracks notifications per owning user, in insertion order.
type Inbox struct {
	mu     sync.RWMutex
	byUser map[string][]model.Notification
}

// NewInbox creates an empty inbox.
func NewInbox() *Inbox {
	return &Inbox{byUser: make(map[string][]model.Notification)}
}

// Seed replaces a user's notifications wholesale. Used when a canonical
// employee record is fetched and when demo data is loaded.
func (i *Inbox) Seed(userID string, notes []model.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()
	copied := make([]model.Notification, len(notes))
	copy(copied, notes)
	i.byUser[userID] = copied
	i.updateUnreadGauge()
}

// Push appends one injected notification.
func (i *Inbox) Push(n model.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.byUser[n.UserID] = append(i.byUser[n.UserID], n)
	i.updateUnreadGauge()
}

// List returns a copy of the user's notifications in insertion order.
func (i *Inbox) List(userID string) []model.Notification {
	i.mu.RLock()
	defer i.mu.RUnlock()
	notes := i.byUser[userID]
	out := make([]model.Notification, len(notes))
	copy(out, notes)
	return out
}

// UnreadCount reports how many of the user's notifications are unread.
func (i *Inbox) UnreadCount(userID string) int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	count := 0
	for _, n := range i.byUser[userID] {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flips one notification to read. Marking an already-read
// notification is a no-op, not an error.
func (i *Inbox) MarkRead(userID, id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	for idx, n := range i.byUser[userID] {
		if n.ID == id {
			i.byUser[userID][idx].Read = true
			i.updateUnreadGauge()
			return nil
		}
	}
	return ErrNotFound
}

// MarkAllRead flips every unread notification for the user and returns how
// many changed.
func (i *Inbox) MarkAllRead(userID string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	changed := 0
	for idx, n := range i.byUser[userID] {
		if !n.Read {
			i.byUser[userID][idx].Read = true
			changed++
		}
	}
	if changed > 0 {
		i.updateUnreadGauge()
	}
	return changed
}

// Delete removes one notification from the user's inbox.
func (i *Inbox) Delete(userID, id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	notes := i.byUser[userID]
	for idx, n := range notes {
		if n.ID == id {
			i.byUser[userID] = append(notes[:idx], notes[idx+1:]...)
			i.updateUnreadGauge()
			return nil
		}
	}
	return ErrNotFound
}

// updateUnreadGauge recomputes the unread total. Callers hold the lock.
func (i *Inbox) updateUnreadGauge() {
	total := 0
	for _, notes := range i.byUser {
		for _, n := range notes {
			if !n.Read {
				total++
			}
		}
	}
	metrics.UpdateUnreadNotifications(total)
}
