package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/netyark/storefront-backend/api/responses"
	pkgerrors "github.com/netyark/storefront-backend/pkg/errors"
	"github.com/netyark/storefront-backend/pkg/logger"
)

const mutationLockTTL = 10 * time.Second

type mutationLocker interface {
	AcquireMutationLock(ctx context.Context, cartID string, ttl time.Duration) (bool, error)
	ReleaseMutationLock(ctx context.Context, cartID string) error
}

// MutationGuard serializes cart mutations per session. A rapid
// double-submit (two "add to cart" clicks before the first settles)
// would otherwise race on the whole-cart write; the second request is
// rejected instead.
func MutationGuard(locker mutationLocker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if locker == nil || r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			cartID := CartSessionFromContext(r.Context())
			if cartID == "" {
				next.ServeHTTP(w, r)
				return
			}

			acquired, err := locker.AcquireMutationLock(r.Context(), cartID, mutationLockTTL)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire cart lock"))
				return
			}
			if !acquired {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "another cart operation is in progress"))
				return
			}
			defer func() {
				if err := locker.ReleaseMutationLock(r.Context(), cartID); err != nil && logg != nil {
					logg.Error(r.Context(), "release cart lock failed", err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
