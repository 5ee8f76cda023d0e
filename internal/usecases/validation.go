package usecases

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/pkg/utils"
)

// requireText trims v and rejects an empty result
func requireText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", domainerrors.BadRequest(field + " is required")
	}
	return v, nil
}

// trimPresent trims an optional patch field; present fields may not be blank
func trimPresent(field string, v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil, domainerrors.BadRequest(field + " cannot be empty")
	}
	return &trimmed, nil
}

// Money columns: projects.budget is decimal(14,2), contracts.amount_locked decimal(20,8)
const (
	budgetScale       = 2
	amountLockedScale = 8
	maxMoney          = 1e12
)

func validateBudget(budget float64) error {
	if err := validateBound("budget", budget); err != nil {
		return err
	}
	return validateMoney("budget", budget, budgetScale)
}

func validateAmountLocked(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return domainerrors.BadRequest("amount_locked must be greater than 0")
	}
	return validateMoney("amount_locked", amount, amountLockedScale)
}

// validateBound checks a non-negative finite amount such as a list filter bound
func validateBound(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return domainerrors.BadRequest(field + " must be greater than or equal to 0")
	}
	return nil
}

// validateMoney rejects values the column would round or overflow
func validateMoney(field string, v float64, scale int) error {
	if v >= maxMoney {
		return domainerrors.BadRequest(field + " must be less than " + strconv.FormatFloat(maxMoney, 'f', -1, 64))
	}
	if decimalPlaces(v) > scale {
		return domainerrors.BadRequest(fmt.Sprintf("%s must have at most %d decimal places", field, scale))
	}
	return nil
}

func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(field, raw)
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest(err.Error())
	}
	return id, nil
}

// optionalRef parses a reference that may be left blank
func optionalRef(field, raw string) (null.String, error) {
	if strings.TrimSpace(raw) == "" {
		return null.String{}, nil
	}
	id, err := parseID(field, raw)
	if err != nil {
		return null.String{}, err
	}
	return null.StringFrom(id.String()), nil
}

func invalidEnum[T ~string](field string, allowed []T) error {
	parts := make([]string, len(allowed))
	for i, v := range allowed {
		parts[i] = string(v)
	}
	return domainerrors.BadRequest(fmt.Sprintf("%s must be one of %s", field, strings.Join(parts, ", ")))
}
