package rest

import (
	"github.com/dmitrijs2005/usermanager/internal/server/api"
	"github.com/gin-gonic/gin/binding"
)

// structValidator plugs the api validator into gin binding, so the custom
// tags on request structs are understood and errors read the same on both
// transports.
type structValidator struct{}

var _ binding.StructValidator = structValidator{}

func (structValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	return api.Validate(obj)
}

func (structValidator) Engine() any {
	return api.Engine()
}

func init() {
	binding.Validator = structValidator{}
}
