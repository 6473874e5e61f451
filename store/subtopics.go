package store

import (
	"context"
	"slices"

	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/sirupsen/logrus"
)

type SubtopicService interface {
	List(ctx context.Context) ([]models.Subtopic, error)
	ListBySubject(ctx context.Context, subjectID string) ([]models.Subtopic, error)
	Get(ctx context.Context, id string) (models.Subtopic, error)
	Create(ctx context.Context, req models.CreateSubtopicRequest) (models.Subtopic, error)
	Update(ctx context.Context, req models.UpdateSubtopicRequest) (models.Subtopic, error)
	Delete(ctx context.Context, id string) error
}

// SubtopicState adds the per-subject cache to the common slice state.
type SubtopicState struct {
	State[models.Subtopic]
	BySubject map[string][]models.Subtopic
}

// Subtopics is the subtopic slice. bySubject is populated lazily, one subject
// at a time, and only mutated for buckets that are already cached.
type Subtopics struct {
	svc       SubtopicService
	s         *slice[models.Subtopic]
	bySubject map[string][]models.Subtopic
}

func NewSubtopics(svc SubtopicService, log *logrus.Entry) *Subtopics {
	return &Subtopics{
		svc:       svc,
		s:         newSlice[models.Subtopic]("subtopics", log),
		bySubject: map[string][]models.Subtopic{},
	}
}

func (st *Subtopics) State() SubtopicState {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	by := make(map[string][]models.Subtopic, len(st.bySubject))
	for k, v := range st.bySubject {
		by[k] = cloneAll(v)
		if by[k] == nil {
			by[k] = []models.Subtopic{}
		}
	}
	return SubtopicState{State: st.s.copyState(), BySubject: by}
}

// Cached returns the cached subtopics of subjectID and whether the bucket
// has been populated.
func (st *Subtopics) Cached(subjectID string) ([]models.Subtopic, bool) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	bucket, ok := st.bySubject[subjectID]
	return cloneAll(bucket), ok
}

func (st *Subtopics) List(ctx context.Context) ([]models.Subtopic, error) {
	token := st.s.begin()
	subtopics, err := st.svc.List(ctx)
	err = st.s.settle(ctx, token, "fetchSubtopics", read, err, "Failed to fetch subtopics", func() {
		st.s.replaceItems(subtopics)
	})
	return subtopics, err
}

// ListBySubject populates the cache bucket of subjectID. Items is untouched.
func (st *Subtopics) ListBySubject(ctx context.Context, subjectID string) ([]models.Subtopic, error) {
	token := st.s.begin()
	subtopics, err := st.svc.ListBySubject(ctx, subjectID)
	err = st.s.settle(ctx, token, "fetchSubtopicsBySubjectId", read, err, "Failed to fetch subtopics", func() {
		bucket := cloneAll(subtopics)
		if bucket == nil {
			bucket = []models.Subtopic{}
		}
		st.bySubject[subjectID] = bucket
	})
	return subtopics, err
}

func (st *Subtopics) Get(ctx context.Context, id string) (models.Subtopic, error) {
	token := st.s.begin()
	subtopic, err := st.svc.Get(ctx, id)
	err = st.s.settle(ctx, token, "fetchSubtopicById", read, err, "Failed to fetch subtopic", func() {
		st.s.selectItem(subtopic)
	})
	return subtopic, err
}

func (st *Subtopics) Create(ctx context.Context, req models.CreateSubtopicRequest) (models.Subtopic, error) {
	token := st.s.begin()
	subtopic, err := st.svc.Create(ctx, req)
	err = st.s.settle(ctx, token, "createSubtopic", write, err, "Failed to create subtopic", func() {
		st.s.appendItem(subtopic)
		if bucket, ok := st.bySubject[subtopic.SubjectID]; ok && subtopic.SubjectID != "" {
			st.bySubject[subtopic.SubjectID] = append(bucket, subtopic.Clone())
		}
	})
	return subtopic, err
}

// Update replaces the subtopic in Items, Selected and the cache bucket of its
// current subject. A changed subject id does not move it between buckets.
func (st *Subtopics) Update(ctx context.Context, req models.UpdateSubtopicRequest) (models.Subtopic, error) {
	token := st.s.begin()
	subtopic, err := st.svc.Update(ctx, req)
	err = st.s.settle(ctx, token, "updateSubtopic", write, err, "Failed to update subtopic", func() {
		st.s.replaceItem(subtopic)
		bucket, ok := st.bySubject[subtopic.SubjectID]
		if !ok || subtopic.SubjectID == "" {
			return
		}
		if i := indexOf(bucket, subtopic.ID); i >= 0 {
			bucket = slices.Clone(bucket)
			bucket[i] = subtopic.Clone()
			st.bySubject[subtopic.SubjectID] = bucket
		}
	})
	return subtopic, err
}

// Delete removes the subtopic from Items and from every cache bucket that
// held it.
func (st *Subtopics) Delete(ctx context.Context, id string) error {
	token := st.s.begin()
	err := st.svc.Delete(ctx, id)
	return st.s.settle(ctx, token, "deleteSubtopic", write, err, "Failed to delete subtopic", func() {
		st.s.removeItem(id)
		for subjectID, bucket := range st.bySubject {
			if indexOf(bucket, id) >= 0 {
				st.bySubject[subjectID] = remove(bucket, id)
			}
		}
	})
}

func (st *Subtopics) Select(subtopic *models.Subtopic) { st.s.setSelected(subtopic) }

func (st *Subtopics) ClearSelection() { st.s.setSelected(nil) }

// ClearBySubject drops the cache bucket of subjectID.
func (st *Subtopics) ClearBySubject(subjectID string) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	delete(st.bySubject, subjectID)
}

func (st *Subtopics) ClearError() { st.s.clearError() }

// DropSubject forgets everything held for a deleted subject: its cache
// bucket, its subtopics in Items and the selection if it was one of them.
func (st *Subtopics) DropSubject(subjectID string) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	delete(st.bySubject, subjectID)

	kept := make([]models.Subtopic, 0, len(st.s.state.Items))
	for _, v := range st.s.state.Items {
		if v.SubjectID != subjectID {
			kept = append(kept, v)
		}
	}
	st.s.state.Items = kept
	if sel := st.s.state.Selected; sel != nil && sel.SubjectID == subjectID {
		st.s.state.Selected = nil
	}
}

// Reset returns the slice and its cache to the initial state. Reads still in
// flight resolve as superseded.
func (st *Subtopics) Reset() {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.reset()
	st.bySubject = map[string][]models.Subtopic{}
}
