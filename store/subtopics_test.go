package store

import (
	"context"
	"testing"

	"github.com/andrewpaige1/questionbank-console/api"
	"github.com/andrewpaige1/questionbank-console/logger"
	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededSubtopics loads items and caches the given buckets.
func seededSubtopics(t *testing.T, svc *fakeSubtopics, items []models.Subtopic, buckets map[string][]models.Subtopic) *Subtopics {
	t.Helper()
	ctx := context.Background()
	st := NewSubtopics(svc, logger.Discard())

	svc.listFunc = func(ctx context.Context) ([]models.Subtopic, error) { return items, nil }
	_, err := st.List(ctx)
	require.NoError(t, err)

	for subjectID, bucket := range buckets {
		svc.listBySubjectFunc = func(ctx context.Context, id string) ([]models.Subtopic, error) {
			assert.Equal(t, subjectID, id)
			return bucket, nil
		}
		_, err := st.ListBySubject(ctx, subjectID)
		require.NoError(t, err)
	}

	svc.listFunc = nil
	svc.listBySubjectFunc = nil
	return st
}

func TestSubtopicsListBySubjectPopulatesCacheOnly(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc, []models.Subtopic{{ID: "all-1"}}, nil)

	svc.listBySubjectFunc = func(ctx context.Context, subjectID string) ([]models.Subtopic, error) {
		return []models.Subtopic{{ID: "st-1", SubjectID: subjectID}}, nil
	}
	_, err := st.ListBySubject(context.Background(), "subj-1")
	require.NoError(t, err)

	state := st.State()
	assert.Equal(t, []models.Subtopic{{ID: "all-1"}}, state.Items)
	assert.Equal(t, []models.Subtopic{{ID: "st-1", SubjectID: "subj-1"}}, state.BySubject["subj-1"])

	cached, ok := st.Cached("subj-1")
	assert.True(t, ok)
	assert.Len(t, cached, 1)

	_, ok = st.Cached("subj-2")
	assert.False(t, ok)
}

func TestSubtopicsListBySubjectEmptyBucketIsCached(t *testing.T) {
	svc := &fakeSubtopics{listBySubjectFunc: func(ctx context.Context, subjectID string) ([]models.Subtopic, error) {
		return nil, nil
	}}
	st := NewSubtopics(svc, logger.Discard())

	_, err := st.ListBySubject(context.Background(), "subj-1")
	require.NoError(t, err)

	bucket, ok := st.State().BySubject["subj-1"]
	assert.True(t, ok)
	assert.NotNil(t, bucket)
	assert.Empty(t, bucket)
}

func TestSubtopicsCreateAppendsToCachedBucketOnly(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc, nil, map[string][]models.Subtopic{
		"subj-1": {{ID: "st-1", SubjectID: "subj-1"}},
	})

	svc.createFunc = func(ctx context.Context, req models.CreateSubtopicRequest) (models.Subtopic, error) {
		return models.Subtopic{ID: "new-" + req.SubjectID, Name: req.Name, SubjectID: req.SubjectID}, nil
	}

	_, err := st.Create(context.Background(), models.CreateSubtopicRequest{Name: "A", SubjectID: "subj-1"})
	require.NoError(t, err)
	_, err = st.Create(context.Background(), models.CreateSubtopicRequest{Name: "B", SubjectID: "subj-2"})
	require.NoError(t, err)

	state := st.State()
	require.Len(t, state.Items, 2)
	assert.Equal(t, []string{"st-1", "new-subj-1"}, ids(state.BySubject["subj-1"]))
	_, cached := state.BySubject["subj-2"]
	assert.False(t, cached, "uncached buckets are not created eagerly")
}

func TestSubtopicsUpdateMirrorsIntoCurrentBucket(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc,
		[]models.Subtopic{{ID: "st-1", Name: "Old", SubjectID: "subj-1"}, {ID: "st-2", SubjectID: "subj-1"}},
		map[string][]models.Subtopic{"subj-1": {{ID: "st-1", Name: "Old", SubjectID: "subj-1"}, {ID: "st-2", SubjectID: "subj-1"}}},
	)
	st.Select(&models.Subtopic{ID: "st-1", Name: "Old", SubjectID: "subj-1"})

	svc.updateFunc = func(ctx context.Context, req models.UpdateSubtopicRequest) (models.Subtopic, error) {
		return models.Subtopic{ID: req.ID, Name: req.Name, SubjectID: req.SubjectID, ParentID: req.ParentID}, nil
	}
	_, err := st.Update(context.Background(), models.UpdateSubtopicRequest{ID: "st-1", Name: "New", SubjectID: "subj-1"})
	require.NoError(t, err)

	state := st.State()
	assert.Equal(t, "New", state.Items[0].Name)
	assert.Equal(t, "New", state.BySubject["subj-1"][0].Name)
	assert.Equal(t, "st-2", state.BySubject["subj-1"][1].ID)
	assert.Equal(t, "New", state.Selected.Name)
}

func TestSubtopicsUpdateDoesNotMigrateBuckets(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc,
		[]models.Subtopic{{ID: "st-1", Name: "Old", SubjectID: "subj-1"}},
		map[string][]models.Subtopic{
			"subj-1": {{ID: "st-1", Name: "Old", SubjectID: "subj-1"}},
			"subj-2": {},
		},
	)

	svc.updateFunc = func(ctx context.Context, req models.UpdateSubtopicRequest) (models.Subtopic, error) {
		return models.Subtopic{ID: req.ID, Name: req.Name, SubjectID: req.SubjectID}, nil
	}
	_, err := st.Update(context.Background(), models.UpdateSubtopicRequest{ID: "st-1", Name: "Moved", SubjectID: "subj-2"})
	require.NoError(t, err)

	state := st.State()
	assert.Equal(t, "subj-2", state.Items[0].SubjectID)
	assert.Equal(t, []models.Subtopic{{ID: "st-1", Name: "Old", SubjectID: "subj-1"}}, state.BySubject["subj-1"])
	assert.Empty(t, state.BySubject["subj-2"])
}

func TestSubtopicsDeleteFromItemsAndBuckets(t *testing.T) {
	s := models.Subtopic{ID: "S", SubjectID: "subj-1"}
	other := models.Subtopic{ID: "T", SubjectID: "subj-1"}
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc,
		[]models.Subtopic{s, other},
		map[string][]models.Subtopic{"subj-1": {s, other}, "subj-9": {{ID: "U"}}},
	)
	st.Select(&s)

	svc.deleteFunc = func(ctx context.Context, id string) error { return nil }
	require.NoError(t, st.Delete(context.Background(), "S"))

	state := st.State()
	assert.Equal(t, []string{"T"}, ids(state.Items))
	assert.Equal(t, []string{"T"}, ids(state.BySubject["subj-1"]))
	assert.Equal(t, []string{"U"}, ids(state.BySubject["subj-9"]))
	assert.Nil(t, state.Selected)
}

func TestSubtopicsDeleteFindsBucketWithoutItem(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc, nil, map[string][]models.Subtopic{
		"subj-1": {{ID: "S", SubjectID: "subj-1"}},
	})

	svc.deleteFunc = func(ctx context.Context, id string) error { return nil }
	require.NoError(t, st.Delete(context.Background(), "S"))

	assert.Empty(t, st.State().BySubject["subj-1"])
}

func TestSubtopicsFailureLeavesCacheUntouched(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc,
		[]models.Subtopic{{ID: "S", SubjectID: "subj-1"}},
		map[string][]models.Subtopic{"subj-1": {{ID: "S", SubjectID: "subj-1"}}},
	)
	before := st.State()

	svc.deleteFunc = func(ctx context.Context, id string) error {
		return &api.Error{Status: 409, Message: "subtopic has questions"}
	}
	err := st.Delete(context.Background(), "S")
	require.Error(t, err)

	svc.listBySubjectFunc = func(ctx context.Context, subjectID string) ([]models.Subtopic, error) {
		return nil, &api.Error{Status: 500}
	}
	_, err = st.ListBySubject(context.Background(), "subj-1")
	require.Error(t, err)

	after := st.State()
	assert.Equal(t, before.Items, after.Items)
	assert.Equal(t, before.BySubject, after.BySubject)
	assert.Equal(t, "Failed to fetch subtopics", after.Error)
}

func TestSubtopicsClearBySubject(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc, nil, map[string][]models.Subtopic{
		"subj-1": {{ID: "S"}},
		"subj-2": {{ID: "T"}},
	})

	st.ClearBySubject("subj-1")

	state := st.State()
	_, ok := state.BySubject["subj-1"]
	assert.False(t, ok)
	assert.Len(t, state.BySubject["subj-2"], 1)
}

func TestSubtopicsDropSubject(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc,
		[]models.Subtopic{{ID: "S", SubjectID: "subj-1"}, {ID: "T", SubjectID: "subj-2"}, {ID: "U", SubjectID: "subj-1"}},
		map[string][]models.Subtopic{
			"subj-1": {{ID: "S", SubjectID: "subj-1"}},
			"subj-2": {{ID: "T", SubjectID: "subj-2"}},
		})
	st.Select(&models.Subtopic{ID: "U", SubjectID: "subj-1"})

	st.DropSubject("subj-1")

	state := st.State()
	assert.Equal(t, []string{"T"}, ids(state.Items))
	assert.Nil(t, state.Selected)
	_, ok := state.BySubject["subj-1"]
	assert.False(t, ok)
	assert.Len(t, state.BySubject["subj-2"], 1)
}

func TestSubtopicsReset(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc, []models.Subtopic{{ID: "S", SubjectID: "subj-1"}},
		map[string][]models.Subtopic{"subj-1": {{ID: "S", SubjectID: "subj-1"}}})

	st.Reset()

	state := st.State()
	assert.Empty(t, state.Items)
	assert.Empty(t, state.BySubject)
	_, ok := st.Cached("subj-1")
	assert.False(t, ok)
}

func TestSubtopicsCacheIsACopy(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc, nil, map[string][]models.Subtopic{
		"subj-1": {{ID: "S", Subtopics: []models.Subtopic{{ID: "T", Name: "orig"}}}},
	})

	cached, ok := st.Cached("subj-1")
	require.True(t, ok)
	cached[0].Subtopics[0].Name = "mutated"
	st.State().BySubject["subj-1"][0].Subtopics[0].Name = "mutated"

	again, _ := st.Cached("subj-1")
	assert.Equal(t, "orig", again[0].Subtopics[0].Name)
}

func TestSubtopicsGetAndSelection(t *testing.T) {
	svc := &fakeSubtopics{getFunc: func(ctx context.Context, id string) (models.Subtopic, error) {
		return models.Subtopic{ID: id, SubjectID: "subj-1"}, nil
	}}
	st := NewSubtopics(svc, logger.Discard())

	_, err := st.Get(context.Background(), "st-7")
	require.NoError(t, err)
	assert.Equal(t, "st-7", st.State().Selected.ID)

	st.ClearSelection()
	assert.Nil(t, st.State().Selected)

	st.ClearError()
	assert.Empty(t, st.State().Error)
}

func TestSubtopicsStateCopiesBuckets(t *testing.T) {
	svc := &fakeSubtopics{}
	st := seededSubtopics(t, svc, nil, map[string][]models.Subtopic{"subj-1": {{ID: "S", Name: "A"}}})

	state := st.State()
	state.BySubject["subj-1"][0].Name = "changed"
	delete(state.BySubject, "subj-1")

	assert.Equal(t, "A", st.State().BySubject["subj-1"][0].Name)
}

func ids[T entity](items []T) []string {
	out := []string{}
	for _, v := range items {
		out = append(out, v.EntityID())
	}
	return out
}
