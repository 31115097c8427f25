package v1handler

import (
	"fmt"
	"net/http"
	"slices"
	"verifier/internal/verification"

	"github.com/go-faster/jx"
)

// VerifyEmail handles POST /verify-email. It verifies the email given in the
// JSON body and answers with the stored result.
func (h Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	email, err := stringField(body, "email")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.verification.VerifyEmail(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	raw(&e, res.Body())
	writeJSON(w, http.StatusOK, e.Bytes())
}

// EmailResults handles GET /email-results and answers with every cached
// result keyed by email.
func (h Handler) EmailResults(w http.ResponseWriter, r *http.Request) {
	res, err := h.verification.EmailResults(r.Context())
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
				raw(e, res[k].Body())
			})
		}
	})
	writeJSON(w, http.StatusOK, e.Bytes())
}

// EmailResult handles GET /email-results/{email} and answers with
// {"<email>": result}.
func (h Handler) EmailResult(w http.ResponseWriter, r *http.Request) {
	res, err := h.verification.EmailResult(r.Context(), r.PathValue("email"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field(res.Email, func(e *jx.Encoder) {
			raw(e, res.Body())
		})
	})
	writeJSON(w, http.StatusOK, e.Bytes())
}

// UpdateEmailResult handles PUT /email-results/{email}. The JSON body
// replaces the cached result, which must already exist.
func (h Handler) UpdateEmailResult(w http.ResponseWriter, r *http.Request) {
	email := verification.NormalizeEmail(r.PathValue("email"))

	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := h.verification.UpdateEmailResult(r.Context(), email, body); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeMessage(w, fmt.Sprintf("Email %s result updated successfully", email))
}

// DeleteEmailResult handles DELETE /email-results/{email}.
func (h Handler) DeleteEmailResult(w http.ResponseWriter, r *http.Request) {
	email := verification.NormalizeEmail(r.PathValue("email"))

	if err := h.verification.DeleteEmailResult(r.Context(), email); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeMessage(w, fmt.Sprintf("Email %s result deleted successfully", email))
}
