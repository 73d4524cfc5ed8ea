// Package model holds the Deck and Card records and the request payloads
// of every endpoint.
//
// Records carry two sets of tags: `db` names the column in the external
// schema (paquet, cartes), `json` names the field on the wire.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every payload; validator caches struct metadata.
var validate = newValidator()

// newValidator reports field errors under their JSON names ("imageURL",
// not "ImageURL").
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
