package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"talentpact.backend/internal/config"
	"talentpact.backend/pkg/jwt"
)

func TestRun_PrintsValidToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "s3cret", AccessExpiry: time.Hour, RefreshExpiry: 2 * time.Hour}
	userID := uuid.New()

	var out bytes.Buffer
	if err := run(&out, cfg, userID.String(), "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "ACCESS_TOKEN=") || lines[1] != "EXPIRES_IN=1h0m0s" {
		t.Fatalf("unexpected output: %q", out.String())
	}

	claims, err := jwt.NewJWTService(cfg.Secret, cfg.AccessExpiry, cfg.RefreshExpiry).
		ValidateToken(strings.TrimPrefix(lines[0], "ACCESS_TOKEN="))
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.UserID != userID || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRun_RejectsBadUser(t *testing.T) {
	var out bytes.Buffer
	for _, raw := range []string{"", "nope", "  "} {
		if err := run(&out, config.JWTConfig{Secret: "s"}, raw, ""); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
