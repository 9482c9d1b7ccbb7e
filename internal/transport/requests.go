package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 64 << 10

var validate = validator.New()

type createPoolRequest struct {
	Name             string          `json:"name" validate:"required,max=120"`
	RecipientAddress string          `json:"recipientAddress" validate:"required,eth_addr"`
	Threshold        int             `json:"finalizationThreshold" validate:"required,gte=1,lte=1000"`
	CreatorAddress   string          `json:"creatorAddress" validate:"required,eth_addr"`
	SelfAmount       decimal.Decimal `json:"selfAmount"`
	GiftSuggestion   string          `json:"giftSuggestion" validate:"max=280"`
	PrivacyMode      string          `json:"privacyMode" validate:"omitempty,max=16"`
}

type joinPoolRequest struct {
	ContributorAddress string          `json:"contributorAddress" validate:"required,eth_addr"`
	Amount             decimal.Decimal `json:"amount"`
	GiftSuggestion     string          `json:"giftSuggestion" validate:"max=280"`
}

// creatorRequest carries the caller of creator-only operations.
type creatorRequest struct {
	RequesterAddress string `json:"requesterAddress" validate:"required,eth_addr"`
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type requestError struct {
	message string
	details []ValidationError
}

func (e *requestError) Error() string {
	return e.message
}

// decodeRequest reads a JSON body into dst and validates it.
func decodeRequest(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &requestError{message: "request body is empty"}
		}
		return &requestError{message: fmt.Sprintf("malformed request body: %v", err)}
	}
	if details := validateRequest(dst); len(details) > 0 {
		return &requestError{message: "invalid request data", details: details}
	}
	return nil
}

func validateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error(), Type: "invalid"}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "eth_addr":
		return "Must be a 0x-prefixed 20 byte hex address"
	case "max":
		return "Value is too long"
	case "gte":
		return "Value must be greater than or equal to " + fe.Param()
	case "lte":
		return "Value must be less than or equal to " + fe.Param()
	default:
		return "Invalid value"
	}
}
