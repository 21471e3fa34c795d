package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/testfixtures"
)

func TestIssueAndValidate(t *testing.T) {
	clock := testfixtures.NewClock(time.Time{})
	tm := NewTokenManager("secret", time.Hour, clock.Now)

	token, exp, err := tm.Issue("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if want := clock.Now().Add(time.Hour); !exp.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, exp)
	}

	claims, err := tm.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestValidateFailures(t *testing.T) {
	clock := testfixtures.NewClock(time.Time{})
	tm := NewTokenManager("secret", time.Hour, clock.Now)
	token, _, err := tm.Issue("user-1", domain.RoleStandard)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	t.Run("expired", func(t *testing.T) {
		later := NewTokenManager("secret", time.Hour, func() time.Time { return clock.Now().Add(2 * time.Hour) })
		if _, err := later.Validate(token); !errors.Is(err, ErrExpiredToken) {
			t.Fatalf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", time.Hour, clock.Now)
		if _, err := other.Validate(token); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("expected ErrMalformedToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := tm.Validate("not.a.token"); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("expected ErrMalformedToken, got %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		parts[1] = parts[1] + "x"
		if _, err := tm.Validate(strings.Join(parts, ".")); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("expected ErrMalformedToken, got %v", err)
		}
	})

	t.Run("missing role", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
			},
		})
		signed, err := raw.SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := tm.Validate(signed); !errors.Is(err, ErrMissingClaims) {
			t.Fatalf("expected ErrMissingClaims, got %v", err)
		}
	})

	t.Run("no expiry", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "user-1", Role: domain.RoleStandard})
		signed, err := raw.SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := tm.Validate(signed); !errors.Is(err, ErrMissingClaims) {
			t.Fatalf("expected ErrMissingClaims, got %v", err)
		}
	})
}

func TestNewTokenManagerDefaults(t *testing.T) {
	tm := NewTokenManager("secret", 0, nil)
	if tm.TTL() != DefaultTokenTTL {
		t.Fatalf("expected default ttl, got %s", tm.TTL())
	}
}
