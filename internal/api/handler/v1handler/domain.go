package v1handler

import (
	"net/http"
	"slices"

	"github.com/go-faster/jx"
)

// DomainResults handles GET /domain-results and answers with every cached
// count keyed by domain.
func (h Handler) DomainResults(w http.ResponseWriter, r *http.Request) {
	res, err := h.verification.DomainResults(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	keys := make([]string, 0, len(res))
	for k := range res {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		for _, k := range keys {
			e.Field(k, func(e *jx.Encoder) {
				e.Int(res[k].Total)
			})
		}
	})
	writeJSON(w, http.StatusOK, e.Bytes())
}

// DomainCountResult handles GET /domain-count-result. The domain is read
// from the JSON body, or from the domain query parameter when the body is
// empty. It answers with the raw provider response.
func (h Handler) DomainCountResult(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	domainName := r.URL.Query().Get("domain")
	if !isBlank(body) {
		if domainName, err = stringField(body, "domain"); err != nil {
			h.writeError(w, r, err)

			return
		}
	}

	res, err := h.verification.CountDomain(r.Context(), domainName)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	raw(&e, res.Raw)
	writeJSON(w, http.StatusOK, e.Bytes())
}
