package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/trivia/api/internal/model"
)

// SecretParam is the query parameter that carries the shared secret
const SecretParam = "pass"

// SharedSecret returns a middleware that only lets a request through when
// its pass query parameter equals secret exactly.
func SharedSecret(secret string) Middleware {
	return secretGate(secretChecker(secret, false))
}

// BcryptSecret is SharedSecret for deployments that store PASS_HASH as a
// bcrypt hash. The pass parameter may equal the hash itself or be the
// plaintext that produced it. It must be enabled explicitly.
func BcryptSecret(hash string) Middleware {
	return secretGate(secretChecker(hash, true))
}

func secretGate(check func(string) bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.URL.Query().Get(SecretParam)
			if !check(presented) {
				model.NewUnauthorizedError("").WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IsBcryptHash reports whether s has a bcrypt version prefix
func IsBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}

func secretChecker(secret string, allowBcrypt bool) func(string) bool {
	// An unset secret must not let an absent parameter through
	if secret == "" {
		return func(string) bool { return false }
	}

	want := []byte(secret)
	exact := func(presented string) bool {
		return subtle.ConstantTimeCompare([]byte(presented), want) == 1
	}
	if !allowBcrypt || !IsBcryptHash(secret) {
		return exact
	}

	return func(presented string) bool {
		if presented == "" {
			return false
		}
		if exact(presented) {
			return true
		}
		return bcrypt.CompareHashAndPassword(want, []byte(presented)) == nil
	}
}
