package handlers

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/pkg/utils"
)

// pathID parses a UUID path parameter
func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(name, c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest(err.Error())
	}
	return id, nil
}

// bindError turns a JSON binding failure into a readable 400
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return domainerrors.BadRequest(snakeCase(fe.Field()) + " is required")
		}
		return domainerrors.BadRequest(snakeCase(fe.Field()) + " is invalid")
	}
	return domainerrors.BadRequest("invalid request body")
}

// snakeCase maps a Go field name such as ContractOnChainID to contract_on_chain_id
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// notFoundAs gives a bare not-found error a resource specific message
func notFoundAs(err error, message string) error {
	var appErr *domainerrors.AppError
	if errors.Is(err, domainerrors.ErrNotFound) && !errors.As(err, &appErr) {
		return domainerrors.NotFound(message)
	}
	return err
}
