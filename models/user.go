package models

import (
	"cloudbox/db"
	"cloudbox/utils"
	"errors"
	"strings"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"gorm.io/gorm"
)

type User struct {
	QQID         string `gorm:"primaryKey;type:varchar(12)" json:"qq"`
	Nickname     string `gorm:"type:varchar(60)" json:"nickname"`
	PasswordHash string `gorm:"type:varchar(128)" json:"-"`
	CreatedAt    int64  `json:"created_at"`
	LastLoginAt  int64  `json:"last_login_at"`
}

var (
	ErrUserExists    = errors.New("账号已注册")
	ErrUserNotFound  = errors.New("账号未注册")
	ErrWrongPassword = errors.New("密码错误")
)

// registerLocks serializes the existence-check-then-insert sequence per QQ id.
// The primary key on qq_id backs it as a second line against racing inserts
// coming from other processes.
var registerLocks = cmap.New[*sync.Mutex]()

func registerLock(qqID string) *sync.Mutex {
	return registerLocks.Upsert(qqID, &sync.Mutex{},
		func(exist bool, valueInMap, newValue *sync.Mutex) *sync.Mutex {
			if exist {
				return valueInMap
			}
			return newValue
		})
}

func UserRegister(qqID, nickname, password string) (*User, error) {
	lock := registerLock(qqID)
	lock.Lock()
	defer lock.Unlock()

	var existing User
	err := db.Instance.First(&existing, "qq_id = ?", qqID).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	now := time.Now().Unix()
	u := User{
		QQID:         qqID,
		Nickname:     nickname,
		PasswordHash: utils.Sha512String(password),
		CreatedAt:    now,
		LastLoginAt:  now,
	}
	if err := db.Instance.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "Duplicate") {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return &u, nil
}

func UserLogin(qqID, password string) (*User, error) {
	u, err := UserGet(qqID)
	if err != nil {
		return nil, err
	}
	if u.PasswordHash != utils.Sha512String(password) {
		return nil, ErrWrongPassword
	}
	u.LastLoginAt = time.Now().Unix()
	if err := db.Instance.Model(u).Update("last_login_at", u.LastLoginAt).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func UserGet(qqID string) (*User, error) {
	var u User
	err := db.Instance.First(&u, "qq_id = ?", qqID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func UserUpdateNickname(qqID, nickname string) (*User, error) {
	u, err := UserGet(qqID)
	if err != nil {
		return nil, err
	}
	u.Nickname = nickname
	if err := db.Instance.Model(u).Update("nickname", nickname).Error; err != nil {
		return nil, err
	}
	return u, nil
}
