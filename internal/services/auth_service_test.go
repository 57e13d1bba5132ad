package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"01712345678", "01312345678", "01912345678"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("Expected %s to be valid", phone)
		}
	}

	invalid := []string{
		"01212345678",   // 012 is not an operator prefix
		"0171234567",    // too short
		"017123456789",  // too long
		"11712345678",   // must start with 0
		"+8801712345678",
		"01712 345678",
		"",
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("Expected %s to be invalid", phone)
		}
	}
}

func TestRegister(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewAuthService(testDB)

	profile, err := svc.Register("01714000001", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if profile.Balance != 0 {
		t.Errorf("Expected zero starting balance, got %f", profile.Balance)
	}
	if !strings.HasPrefix(profile.AccountID, "BT") || len(profile.AccountID) != 8 {
		t.Errorf("Unexpected account id %s", profile.AccountID)
	}
	if profile.Email != "01714000001@bractrading.com" {
		t.Errorf("Unexpected email %s", profile.Email)
	}
	if profile.PasswordHash == "secret1" {
		t.Error("Password stored in plaintext")
	}
	if profile.IsAdmin {
		t.Error("Self-registered profile must not be admin")
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewAuthService(testDB)

	if _, err := svc.Register("01714000002", "secret1"); err != nil {
		t.Fatalf("First register failed: %v", err)
	}

	_, err := svc.Register("01714000002", "another1")
	if !errors.Is(err, ErrDuplicateAccount) {
		t.Fatalf("Expected ErrDuplicateAccount, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewAuthService(testDB)

	if _, err := svc.Register("12345", "secret1"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for bad phone, got %v", err)
	}
	if _, err := svc.Register("01714000003", "abc"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for short password, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewAuthService(testDB)
	svc.Register("01714000004", "secret1")

	profile, err := svc.Login("01714000004", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if _, err := svc.Login("01714000004", "wrongpass"); !errors.Is(err, ErrAuthFailure) {
		t.Errorf("Expected ErrAuthFailure for wrong password, got %v", err)
	}
	if _, err := svc.Login("01714999999", "secret1"); !errors.Is(err, ErrAuthFailure) {
		t.Errorf("Expected ErrAuthFailure for unknown phone, got %v", err)
	}

	// Round-trip a token for the authenticated profile.
	token, err := svc.IssueToken(profile)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != profile.ID || claims.IsAdmin {
		t.Errorf("Unexpected claims %+v", claims)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token"); !errors.Is(err, ErrAuthFailure) {
		t.Errorf("Expected ErrAuthFailure, got %v", err)
	}
}

func TestSetWallet(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewAuthService(testDB)
	profile, _ := svc.Register("01714000005", "secret1")

	updated, err := svc.SetWallet(profile.ID, "bKash", "01714000005")
	if err != nil {
		t.Fatalf("SetWallet failed: %v", err)
	}
	if updated.WalletProvider == nil || *updated.WalletProvider != "bKash" {
		t.Errorf("Expected bKash provider, got %v", updated.WalletProvider)
	}

	if _, err := svc.SetWallet(profile.ID, "PayPal", "01714000005"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown provider, got %v", err)
	}
	if _, err := svc.SetWallet(profile.ID, "Nagad", "12345"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for bad number, got %v", err)
	}
}
