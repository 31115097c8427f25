package v1handler

import (
	"io"
	"net/http"
	"verifier/internal/verification"
	"verifier/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodyBytes caps the size of accepted request bodies.
const maxBodyBytes = 1 << 20

var errNotString = errors.New("must be a string")

// readBody reads the whole request body, up to maxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	return b, nil
}

// stringField returns the string value of field in the JSON object body.
// An empty body, an absent field and null all yield an empty string.
func stringField(body []byte, field string) (string, error) {
	if isBlank(body) {
		return "", nil
	}
	if !verification.IsJSONObject(body) {
		return "", serrors.With(serrors.ErrBadRequest, verification.MsgNotJSONObject)
	}

	value, err := decodeStringField(body, field)
	if errors.Is(err, errNotString) {
		return "", serrors.With(serrors.ErrBadRequest, "%s %s", field, errNotString)
	}
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, verification.MsgNotJSONObject)
	}

	return value, nil
}

func decodeStringField(body []byte, field string) (string, error) {
	var value string
	err := jx.DecodeBytes(body).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != field {
			return d.Skip()
		}

		switch d.Next() {
		case jx.String:
			v, err := d.Str()
			if err != nil {
				return errors.Wrapf(err, "decode %q", field)
			}
			value = v

			return nil
		case jx.Null:
			value = ""

			return d.Null()
		default:
			return errNotString
		}
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

func isBlank(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}

	return true
}
