// Package params binds typed path parameters using the OpenAPI "simple" style.
package params

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// PathID binds the named path parameter as a positive integer id.
func PathID(c *gin.Context, name string) (uint, error) {
	var id uint
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return id, nil
}
