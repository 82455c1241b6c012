package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Email":          "Email",
	"Password":       "Password",
	"Role":           "Role",
	"Name":           "Name",
	"Phone":          "Phone",
	"Address":        "Address",
	"Education":      "Education",
	"CompanyName":    "Company name",
	"CompanyWebsite": "Company website",
	"ContactInfo":    "Contact info",
	"Title":          "Title",
	"Description":    "Description",
	"Pay":            "Pay",
	"EmploymentType": "Employment type",
	"Location":       "Location",
	"Duration":       "Duration",
	"Contact":        "Contact",
	"SkillID":        "Skill",
	"CertificateURL": "Certificate URL",
	"JobID":          "Job",
}

// FormatValidationErrors converts validator.ValidationErrors to
// user-friendly per-field messages for the response envelope. Anything
// else (malformed JSON, type mismatches) gets a generic message so raw
// decoder errors never reach clients.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid request body"}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s is too long (max %s characters)", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number", label)
	case "http_url_opt":
		return fmt.Sprintf("%s must start with http:// or https://", label)
	case "dive":
		return fmt.Sprintf("%s contains an invalid entry", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
