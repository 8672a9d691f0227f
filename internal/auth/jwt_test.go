package auth

import (
	"testing"
	"time"
)

func TestTokenMaker_RoundTrip(t *testing.T) {
	tm := NewTokenMaker("test-secret")

	tok, err := tm.New("u_1", "customer", time.Minute)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	claims, err := tm.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u_1" {
		t.Fatalf("user_id=%q, want u_1", claims.UserID)
	}
	if claims.Role != "customer" {
		t.Fatalf("role=%q, want customer", claims.Role)
	}
}

func TestTokenMaker_RejectsWrongSecret(t *testing.T) {
	tok, err := NewTokenMaker("secret-a").New("u_1", "customer", time.Minute)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	if _, err := NewTokenMaker("secret-b").Parse(tok); err == nil {
		t.Fatal("expected parse error for wrong secret")
	}
}

func TestTokenMaker_RejectsExpired(t *testing.T) {
	tm := NewTokenMaker("test-secret")

	tok, err := tm.New("u_1", "customer", -time.Minute)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	if _, err := tm.Parse(tok); err == nil {
		t.Fatal("expected parse error for expired token")
	}
}

func TestTokenMaker_RejectsGarbage(t *testing.T) {
	tm := NewTokenMaker("test-secret")

	if _, err := tm.Parse("not.a.jwt"); err == nil {
		t.Fatal("expected parse error")
	}
}
