package models

import (
	"strings"
	"testing"
)

func TestValidateQQ(t *testing.T) {
	valid := []string{"12345", "123456789012", "00000"}
	for _, qq := range valid {
		if err := ValidateQQ(qq); err != nil {
			t.Errorf("ValidateQQ(%q) = %v, want nil", qq, err)
		}
	}
	invalid := []string{"", "1234", "1234567890123", "12a45", " 12345", "12345 ", "-12345"}
	for _, qq := range invalid {
		if err := ValidateQQ(qq); err == nil {
			t.Errorf("ValidateQQ(%q) = nil, want error", qq)
		}
	}
}

func TestValidateNickname(t *testing.T) {
	got, err := ValidateNickname("  小明  ")
	if err != nil || got != "小明" {
		t.Errorf("ValidateNickname should trim, got (%q, %v)", got, err)
	}
	if _, err := ValidateNickname("   "); err == nil {
		t.Error("whitespace-only nickname must be rejected")
	}
	if _, err := ValidateNickname(strings.Repeat("名", 20)); err != nil {
		t.Error("20 runes is within bounds")
	}
	if _, err := ValidateNickname(strings.Repeat("名", 21)); err == nil {
		t.Error("21 runes must be rejected")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("123456"); err != nil {
		t.Error("6 chars is within bounds")
	}
	if err := ValidatePassword("12345"); err == nil {
		t.Error("5 chars must be rejected")
	}
	if err := ValidatePassword(strings.Repeat("x", 65)); err == nil {
		t.Error("65 chars must be rejected")
	}
}

func TestValidateMessageBody(t *testing.T) {
	got, err := ValidateMessageBody(" hello ")
	if err != nil || got != "hello" {
		t.Errorf("ValidateMessageBody should trim, got (%q, %v)", got, err)
	}
	if _, err := ValidateMessageBody(""); err == nil {
		t.Error("empty body must be rejected")
	}
	if _, err := ValidateMessageBody(strings.Repeat("字", 1000)); err != nil {
		t.Error("1000 runes is within bounds")
	}
	if _, err := ValidateMessageBody(strings.Repeat("字", 1001)); err == nil {
		t.Error("1001 runes must be rejected")
	}
}
