// Package validation checks question authoring forms before anything is sent
// to the catalog API.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/go-playground/validator/v10"
)

// MinStatementLength is counted in characters after trimming.
const MinStatementLength = 20

const msgAlternativesDiffer = "alternatives must differ"

// Errors maps a JSON field name to its message. The alternatives distinctness
// rule reports under "alternatives".
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return "validation: " + strings.Join(parts, "; ")
}

type questionForm struct {
	Statement          string `json:"statement" validate:"required,min=20"`
	AlternativeA       string `json:"alternativeA" validate:"required"`
	AlternativeB       string `json:"alternativeB" validate:"required"`
	AlternativeC       string `json:"alternativeC" validate:"required"`
	AlternativeD       string `json:"alternativeD" validate:"required"`
	AlternativeE       string `json:"alternativeE" validate:"required"`
	CorrectAlternative string `json:"correctAlternative" validate:"required,oneof=A B C D E"`
	SubjectID          string `json:"subjectId" validate:"required"`
	SubtopicID         string `json:"subtopicId"`
	Difficulty         string `json:"difficulty" validate:"required,oneof=Fácil Média Difícil"`
	Status             string `json:"status" validate:"required,oneof=rascunho aprovado reprovado"`
}

// Validator wraps go-playground validator with the question rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(distinctAlternatives, questionForm{})
	return &Validator{validate: v}
}

// ValidateQuestion checks a create request after trimming it. It returns nil
// or Errors.
func (v *Validator) ValidateQuestion(req models.CreateQuestionRequest) error {
	req = Normalize(req)
	form := questionForm{
		Statement:          req.Statement,
		AlternativeA:       req.AlternativeA,
		AlternativeB:       req.AlternativeB,
		AlternativeC:       req.AlternativeC,
		AlternativeD:       req.AlternativeD,
		AlternativeE:       req.AlternativeE,
		CorrectAlternative: string(req.CorrectAlternative),
		SubjectID:          req.SubjectID,
		SubtopicID:         req.SubtopicID,
		Difficulty:         req.Difficulty,
		Status:             string(req.Status),
	}

	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = format(fe)
		}
	}
	return out
}

// ValidateUpdate merges a partial update over base and validates the result,
// so a patch can never leave a question in a state a create would refuse.
func (v *Validator) ValidateUpdate(base models.Question, req models.UpdateQuestionRequest) error {
	return v.ValidateQuestion(Merge(base, req))
}

func distinctAlternatives(sl validator.StructLevel) {
	form := sl.Current().Interface().(questionForm)
	alts := []string{form.AlternativeA, form.AlternativeB, form.AlternativeC, form.AlternativeD, form.AlternativeE}

	seen := make(map[string]struct{}, len(alts))
	for _, alt := range alts {
		key := strings.ToLower(strings.TrimSpace(alt))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			sl.ReportError(alt, "alternatives", "Alternatives", "distinct", "")
			return
		}
		seen[key] = struct{}{}
	}
}

func format(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "distinct":
		return msgAlternativesDiffer
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ValidateName checks a subject or subtopic name after trimming.
func (v *Validator) ValidateName(name string) error {
	if err := v.validate.Var(strings.TrimSpace(name), "required"); err != nil {
		return Errors{"name": "name is required"}
	}
	return nil
}
