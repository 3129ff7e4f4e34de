package handlers

import (
	"net/http"
	"strconv"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message" example:"something went wrong"`
	Errors  map[string]string `json:"errors,omitempty"`
}

var statusForKind = map[apperr.Kind]int{
	apperr.KindValidation:   http.StatusBadRequest,
	apperr.KindInvalidInput: http.StatusBadRequest,
	apperr.KindFileUpload:   http.StatusBadRequest,
	apperr.KindUnauthorized: http.StatusUnauthorized,
	apperr.KindNotFound:     http.StatusNotFound,
	apperr.KindInternal:     http.StatusInternalServerError,
}

// respondError maps a service error onto the fixed status for its
// taxonomy kind and the uniform envelope. Errors outside the taxonomy
// are logged and surfaced as a generic 500.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := statusForKind[kind]

	message := err.Error()
	if kind == apperr.KindInternal {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		message = "Internal server error"
	}

	c.JSON(status, ErrorResponse{
		Success: false,
		Message: message,
		Errors:  apperr.FieldsOf(err),
	})
}

// respondBindingError turns gin binding failures into the 400
// envelope, with a field map when the failure came from validation
// tags.
func respondBindingError(c *gin.Context, err error) {
	fields := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = "failed on " + fe.Tag() + " validation"
		}
	}
	if len(fields) == 0 {
		respondError(c, apperr.InvalidInput("%s", err.Error()))
		return
	}
	respondError(c, apperr.Validation(fields))
}

// pageParams reads ?page and ?size (zero-based page, size defaults
// to 10).
func pageParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		size = 10
	}
	return page, size
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, apperr.InvalidInput("invalid id"))
		return 0, false
	}
	return uint(id), true
}
