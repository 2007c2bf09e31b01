package middleware

import (
	"casino_demo/internal/model"
	"casino_demo/internal/repository"
	"context"
	"net/http"
)

type ctxKey int

const userKey ctxKey = iota

// UserFromContext - пользователь текущей сессии, положенный RequireUser
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

// RequireUser - пускает дальше только при открытой сессии.
// Пользователь сессии кладётся в контекст запроса
func RequireUser(ledger repository.LedgerRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := ledger.CurrentUser(r.Context())
			if err != nil || user == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin - как RequireUser, но сессия должна принадлежать администратору
func RequireAdmin(ledger repository.LedgerRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := ledger.CurrentUser(r.Context())
			if err != nil || user == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if !user.IsAdmin {
				http.Error(w, "admin access required", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
