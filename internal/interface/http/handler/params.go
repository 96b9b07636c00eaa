package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/payflow/storepos/pkg/errors"
	"github.com/payflow/storepos/pkg/response"
)

var errInvalidParam = errors.New("invalid path parameter")

// parseUintParam reads a numeric path parameter, rejecting zero.
func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, errInvalidParam
	}
	return uint(v), nil
}

// parseIDParam reads the :id path parameter, writing the error
// response itself on failure.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "invalid id")
		return 0, false
	}
	return id, true
}
