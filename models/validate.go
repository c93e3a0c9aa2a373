package models

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	qqPattern = regexp.MustCompile(`^[0-9]{5,12}$`)

	ErrQQInvalid       = errors.New("QQ号格式不正确，需为5-12位数字")
	ErrNicknameInvalid = errors.New("昵称长度需为1-20个字符")
	ErrPasswordInvalid = errors.New("密码长度需为6-64个字符")
	ErrMessageInvalid  = errors.New("消息长度需为1-1000个字符")
)

func ValidateQQ(qq string) error {
	if !qqPattern.MatchString(qq) {
		return ErrQQInvalid
	}
	return nil
}

// ValidateNickname trims the nickname and checks the 1-20 character bound.
// The trimmed value is what gets stored.
func ValidateNickname(nickname string) (string, error) {
	trimmed := strings.TrimSpace(nickname)
	n := utf8.RuneCountInString(trimmed)
	if n < 1 || n > 20 {
		return "", ErrNicknameInvalid
	}
	return trimmed, nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 || len(password) > 64 {
		return ErrPasswordInvalid
	}
	return nil
}

// ValidateMessageBody trims the body and checks the 1-1000 character bound.
func ValidateMessageBody(body string) (string, error) {
	trimmed := strings.TrimSpace(body)
	n := utf8.RuneCountInString(trimmed)
	if n < 1 || n > 1000 {
		return "", ErrMessageInvalid
	}
	return trimmed, nil
}
