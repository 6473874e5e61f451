package validation

import (
	"strings"

	"github.com/andrewpaige1/questionbank-console/models"
)

// Normalize trims every text field of a create request.
func Normalize(req models.CreateQuestionRequest) models.CreateQuestionRequest {
	req.Statement = strings.TrimSpace(req.Statement)
	req.AlternativeA = strings.TrimSpace(req.AlternativeA)
	req.AlternativeB = strings.TrimSpace(req.AlternativeB)
	req.AlternativeC = strings.TrimSpace(req.AlternativeC)
	req.AlternativeD = strings.TrimSpace(req.AlternativeD)
	req.AlternativeE = strings.TrimSpace(req.AlternativeE)
	req.CorrectAlternative = models.Alternative(strings.ToUpper(strings.TrimSpace(string(req.CorrectAlternative))))
	req.SubjectID = strings.TrimSpace(req.SubjectID)
	req.SubtopicID = strings.TrimSpace(req.SubtopicID)
	req.Difficulty = strings.TrimSpace(req.Difficulty)
	req.Status = models.Status(strings.TrimSpace(string(req.Status)))
	return req
}

// NormalizeUpdate trims the fields present in a partial update.
func NormalizeUpdate(req models.UpdateQuestionRequest) models.UpdateQuestionRequest {
	for _, p := range []**string{
		&req.Statement, &req.AlternativeA, &req.AlternativeB, &req.AlternativeC,
		&req.AlternativeD, &req.AlternativeE, &req.SubjectID, &req.SubtopicID, &req.Difficulty,
	} {
		if *p != nil {
			s := strings.TrimSpace(**p)
			*p = &s
		}
	}
	if req.CorrectAlternative != nil {
		a := models.Alternative(strings.ToUpper(strings.TrimSpace(string(*req.CorrectAlternative))))
		req.CorrectAlternative = &a
	}
	if req.Status != nil {
		s := models.Status(strings.TrimSpace(string(*req.Status)))
		req.Status = &s
	}
	return req
}

// Merge applies a partial update over base, producing the full form it would
// leave behind.
func Merge(base models.Question, req models.UpdateQuestionRequest) models.CreateQuestionRequest {
	out := models.CreateQuestionRequest{
		Statement:          base.Statement,
		AlternativeA:       base.AlternativeA,
		AlternativeB:       base.AlternativeB,
		AlternativeC:       base.AlternativeC,
		AlternativeD:       base.AlternativeD,
		AlternativeE:       base.AlternativeE,
		CorrectAlternative: base.CorrectAlternative,
		SubjectID:          base.SubjectID,
		SubtopicID:         base.SubtopicID,
		Difficulty:         base.Difficulty,
		Status:             base.Status,
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&out.Statement, req.Statement)
	set(&out.AlternativeA, req.AlternativeA)
	set(&out.AlternativeB, req.AlternativeB)
	set(&out.AlternativeC, req.AlternativeC)
	set(&out.AlternativeD, req.AlternativeD)
	set(&out.AlternativeE, req.AlternativeE)
	set(&out.SubjectID, req.SubjectID)
	set(&out.SubtopicID, req.SubtopicID)
	set(&out.Difficulty, req.Difficulty)
	if req.CorrectAlternative != nil {
		out.CorrectAlternative = *req.CorrectAlternative
	}
	if req.Status != nil {
		out.Status = *req.Status
	}
	return Normalize(out)
}
