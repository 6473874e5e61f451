package validation

import (
	"testing"

	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestion() models.CreateQuestionRequest {
	return models.CreateQuestionRequest{
		Statement:          "What is the capital city of France?",
		AlternativeA:       "Paris",
		AlternativeB:       "Lyon",
		AlternativeC:       "Marseille",
		AlternativeD:       "Nice",
		AlternativeE:       "Lille",
		CorrectAlternative: models.AlternativeA,
		SubjectID:          "s1",
		Difficulty:         models.DifficultyEasy,
		Status:             models.StatusDraft,
	}
}

func fieldErrors(t *testing.T, err error) Errors {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(Errors)
	require.True(t, ok, "want validation.Errors, got %T", err)
	return errs
}

func TestValidQuestionPasses(t *testing.T) {
	assert.NoError(t, New().ValidateQuestion(validQuestion()))
}

func TestAlternativesMustDiffer(t *testing.T) {
	q := validQuestion()
	q.AlternativeE = "  paris "

	errs := fieldErrors(t, New().ValidateQuestion(q))
	assert.Equal(t, Errors{"alternatives": "alternatives must differ"}, errs)
}

func TestStatementLength(t *testing.T) {
	q := validQuestion()
	q.Statement = "   short statement    "

	errs := fieldErrors(t, New().ValidateQuestion(q))
	assert.Equal(t, "statement must be at least 20 characters", errs["statement"])

	// Counted in characters, not bytes.
	q.Statement = "ééééééééééééééééééé"
	errs = fieldErrors(t, New().ValidateQuestion(q))
	assert.Contains(t, errs, "statement")
	q.Statement = "éééééééééééééééééééé"
	assert.NoError(t, New().ValidateQuestion(q))
}

func TestFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CreateQuestionRequest)
		field  string
		want   string
	}{
		{"missing alternative", func(q *models.CreateQuestionRequest) { q.AlternativeC = " " }, "alternativeC", "alternativeC is required"},
		{"missing subject", func(q *models.CreateQuestionRequest) { q.SubjectID = "" }, "subjectId", "subjectId is required"},
		{"missing difficulty", func(q *models.CreateQuestionRequest) { q.Difficulty = "" }, "difficulty", "difficulty is required"},
		{"unknown difficulty", func(q *models.CreateQuestionRequest) { q.Difficulty = "Extreme" }, "difficulty", "difficulty must be one of: Fácil, Média, Difícil"},
		{"unknown correct alternative", func(q *models.CreateQuestionRequest) { q.CorrectAlternative = "F" }, "correctAlternative", "correctAlternative must be one of: A, B, C, D, E"},
		{"unknown status", func(q *models.CreateQuestionRequest) { q.Status = "publicado" }, "status", "status must be one of: rascunho, aprovado, reprovado"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuestion()
			tc.mutate(&q)
			errs := fieldErrors(t, New().ValidateQuestion(q))
			assert.Equal(t, tc.want, errs[tc.field])
		})
	}
}

func TestSubtopicIsOptional(t *testing.T) {
	q := validQuestion()
	q.SubtopicID = ""
	assert.NoError(t, New().ValidateQuestion(q))
}

func TestNormalize(t *testing.T) {
	q := Normalize(models.CreateQuestionRequest{
		Statement:          "  padded  ",
		AlternativeA:       " a ",
		CorrectAlternative: " b ",
		Status:             " aprovado",
	})
	assert.Equal(t, "padded", q.Statement)
	assert.Equal(t, "a", q.AlternativeA)
	assert.Equal(t, models.AlternativeB, q.CorrectAlternative)
	assert.Equal(t, models.StatusApproved, q.Status)
}

func TestValidateUpdateMergesOverBase(t *testing.T) {
	req := validQuestion()
	base := models.Question{
		ID:                 "q1",
		Statement:          req.Statement,
		AlternativeA:       req.AlternativeA,
		AlternativeB:       req.AlternativeB,
		AlternativeC:       req.AlternativeC,
		AlternativeD:       req.AlternativeD,
		AlternativeE:       req.AlternativeE,
		CorrectAlternative: req.CorrectAlternative,
		SubjectID:          req.SubjectID,
		Difficulty:         req.Difficulty,
		Status:             req.Status,
	}
	v := New()

	status := models.StatusApproved
	assert.NoError(t, v.ValidateUpdate(base, models.UpdateQuestionRequest{ID: "q1", Status: &status}))

	dup := "LYON"
	errs := fieldErrors(t, v.ValidateUpdate(base, models.UpdateQuestionRequest{ID: "q1", AlternativeA: &dup}))
	assert.Equal(t, "alternatives must differ", errs["alternatives"])
}

func TestNormalizeUpdate(t *testing.T) {
	s := "  text  "
	a := models.Alternative(" c")
	got := NormalizeUpdate(models.UpdateQuestionRequest{Statement: &s, CorrectAlternative: &a})
	assert.Equal(t, "text", *got.Statement)
	assert.Equal(t, models.AlternativeC, *got.CorrectAlternative)
	assert.Nil(t, got.AlternativeA)
	assert.Equal(t, "  text  ", s)
}

func TestErrorsMessage(t *testing.T) {
	err := Errors{"status": "status is required", "alternatives": "alternatives must differ"}
	assert.Equal(t, "validation: alternatives: alternatives must differ; status: status is required", err.Error())
}

func TestValidateName(t *testing.T) {
	v := New()
	assert.NoError(t, v.ValidateName("Mathematics"))
	assert.Equal(t, Errors{"name": "name is required"}, fieldErrors(t, v.ValidateName("   ")))
}
