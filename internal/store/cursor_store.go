package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/greencandle/dispatch-core/internal/store/schema"
)

//go:generate mockgen -source=cursor_store.go -destination=../mocks/cursor_store.go -package=mocks -mock_names=CursorStore=MockCursorStore

// CursorStore defines the interface for storing and retrieving mailbox cursors
type CursorStore interface {
	// GetMailboxCursor retrieves the last processed IMAP UID for a mailbox
	GetMailboxCursor(ctx context.Context, mailbox string) (uint32, error)
	// SetMailboxCursor stores the last processed IMAP UID for a mailbox
	SetMailboxCursor(ctx context.Context, mailbox string, uid uint32) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

// GetMailboxCursor retrieves the last processed IMAP UID for a mailbox
func (s *cursorStore) GetMailboxCursor(ctx context.Context, mailbox string) (uint32, error) {
	key := fmt.Sprintf("mailbox_cursor:%s", mailbox)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil // Return 0 if no cursor exists
		}
		return 0, fmt.Errorf("failed to get mailbox cursor: %w", err)
	}

	uid, err := strconv.ParseUint(kv.Value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse mailbox cursor: %w", err)
	}

	return uint32(uid), nil
}

// SetMailboxCursor stores the last processed IMAP UID for a mailbox
func (s *cursorStore) SetMailboxCursor(ctx context.Context, mailbox string, uid uint32) error {
	key := fmt.Sprintf("mailbox_cursor:%s", mailbox)
	value := strconv.FormatUint(uint64(uid), 10)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set mailbox cursor: %w", err)
	}

	return nil
}
