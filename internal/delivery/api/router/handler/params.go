package handler

import (
	"strconv"
	"strings"
	"time"

	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// pathID parses a numeric path parameter. Ids that cannot exist are reported
// as missing resources.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrNotFound
	}

	return uint(id), nil
}

func parseDate(value *string, field string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	t, err := util.ParseFlexibleDate(*value)
	if err != nil {
		return nil, domainerrors.Validation("Invalid " + field + " format.")
	}

	return &t, nil
}

func queryDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domainerrors.Validation("Invalid " + name + ".")
	}

	return &d, nil
}

func queryBool(c echo.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.QueryParam(name))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
