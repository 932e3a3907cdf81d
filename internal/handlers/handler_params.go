package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const dateParamLayout = "2006-01-02"

// parseDateQuery reads a YYYY-MM-DD query parameter. A missing parameter
// yields the zero time, which downstream filters treat as unbounded.
func parseDateQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateParamLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date, expected YYYY-MM-DD", name)
	}
	return t, nil
}
