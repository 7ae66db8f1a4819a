package handlers

import (
	"errors"
	"net/http"

	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

// respondError translates domain errors into JSON responses with the
// appropriate HTTP status.
func respondError(c *gin.Context, err error) {
	var status int
	switch utils.CodeOf(err) {
	case utils.CodeInvalidArgument:
		status = http.StatusBadRequest
	case utils.CodeNotFound:
		status = http.StatusNotFound
	case utils.CodeInvalidTransition,
		utils.CodeInvalidOperation,
		utils.CodeRoomUnavailable,
		utils.CodeInvoiceClosed,
		utils.CodeConflict:
		status = http.StatusConflict
	case utils.CodeOverpaymentRejected:
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	var de *utils.DomainError
	if errors.As(err, &de) {
		c.JSON(status, utils.ErrorResponse{
			Code:    string(de.Code),
			Message: de.Message,
			Details: de.Details,
		})
		return
	}
	utils.JSONError(c, status, "internal server error", err.Error())
}
