package rest

import (
	"context"
	"net/http"
	"strings"
)

type walletContextKey struct{}

// requireWallet - gates a handler behind a Bearer session token and
// stashes the authenticated wallet in the request context.
func (that *Handler) requireWallet(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, errorBody("missing bearer token"))
			return
		}

		wallet, err := that.auth.ParseToken(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody("invalid session token"))
			return
		}

		ctx := context.WithValue(r.Context(), walletContextKey{}, wallet)
		next(w, r.WithContext(ctx))
	}
}

func walletFrom(ctx context.Context) string {
	wallet, _ := ctx.Value(walletContextKey{}).(string)
	return wallet
}
