package hunterio

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ParseTotal extracts the integer data.total field of an email-count answer.
func ParseTotal(body []byte) (int, error) {
	var (
		total int
		found bool
	)

	d := jx.DecodeBytes(body)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "data" {
			return d.Skip()
		}
		if d.Next() != jx.Object {
			return errors.New("data is not an object")
		}

		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) != "total" {
				return d.Skip()
			}
			v, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "decode data.total")
			}
			total, found = v, true

			return nil
		})
	}); err != nil {
		return 0, errors.Wrap(err, "decode response")
	}
	if !found {
		return 0, errors.New("data.total is missing")
	}

	return total, nil
}

// ErrorDetails joins the "details" of every entry in the errors array of a
// Hunter.io error answer. It returns an empty string when body has none.
func ErrorDetails(body []byte) string {
	var details []string

	d := jx.DecodeBytes(body)
	_ = d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "errors" || d.Next() != jx.Array {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			if d.Next() != jx.Object {
				return d.Skip()
			}

			return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				if string(key) != "details" || d.Next() != jx.String {
					return d.Skip()
				}
				s, err := d.Str()
				if err != nil {
					return err
				}
				details = append(details, s)

				return nil
			})
		})
	})

	return strings.Join(details, "; ")
}
