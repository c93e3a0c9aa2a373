package models

import (
	"cloudbox/db"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MessageDefaultLimit = 100
	MessageMaxLimit     = 200
)

type Message struct {
	ID       string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	QQID     string  `gorm:"type:varchar(12);index" json:"qq"`
	Nickname *string `gorm:"type:varchar(60)" json:"nickname"`
	Body     string  `gorm:"type:varchar(1000)" json:"message"`
	Stamp    int64   `gorm:"index" json:"timestamp"` // unix milliseconds
}

// MessageCreate stores a new message. The sender does not have to be a
// registered user; the nickname is denormalized at post time and stays null
// for unknown senders.
func MessageCreate(qqID, body string) (*Message, error) {
	var nickname *string
	u, err := UserGet(qqID)
	if err == nil {
		nickname = &u.Nickname
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	m := Message{
		ID:       uuid.NewString(),
		QQID:     qqID,
		Nickname: nickname,
		Body:     body,
		Stamp:    time.Now().UnixMilli(),
	}
	return &m, db.Instance.Create(&m).Error
}

// MessageLatest returns the `limit` most recent messages in ascending
// chronological order. limit is clamped to [1, MessageMaxLimit]; anything
// below 1 means "use the default".
func MessageLatest(limit int) ([]Message, error) {
	if limit < 1 {
		limit = MessageDefaultLimit
	}
	if limit > MessageMaxLimit {
		limit = MessageMaxLimit
	}
	var messages []Message
	if err := db.Instance.Order("stamp DESC, id DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
