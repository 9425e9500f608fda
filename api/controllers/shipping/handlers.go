package shipping

import (
	"net/http"

	"github.com/bleeshop/bleeshop-backend/api/responses"
	"github.com/bleeshop/bleeshop-backend/api/validators"
	shippingsvc "github.com/bleeshop/bleeshop-backend/internal/shipping"
	pkgerrors "github.com/bleeshop/bleeshop-backend/pkg/errors"
	"github.com/bleeshop/bleeshop-backend/pkg/logger"
)

// Quote resolves shipping rate options for the storefront cart.
func Quote(svc shippingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shipping service unavailable"))
			return
		}

		var payload QuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithPostalCode(ctx, payload.PostalCode)
		}

		quotes, err := svc.Calculate(ctx, payload.PostalCode, payload.toItems())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, toQuoteResponse(payload.PostalCode, quotes))
	}
}
