package transport

import (
	"net/http"
	"strings"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/utils/errors"
	"golang.org/x/crypto/bcrypt"
)

// InternalMiddleware checks the bearer service key against its bcrypt hash, so the plain
// key never has to be configured on the API side.
func InternalMiddleware(apiKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if apiKeyHash == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			key := strings.TrimPrefix(auth, "Bearer ")
			if bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)) != nil {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
