package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearclaim/fnoltriage/internal/model"
)

func sampleDecision(workflow model.Workflow) model.Decision {
	policy := "ABC-12345"
	return model.Decision{
		Fields: model.ExtractedFields{
			PolicyNumber: &policy,
			IncidentType: model.IncidentCollision,
		},
		Flags:          []model.Flag{},
		Reasons:        []string{},
		Severity:       0.05,
		Workflow:       workflow,
		WorkflowReason: "Low severity and complete fields",
		Explanation:    []string{"Extraction: deterministic regex + keyword matching."},
	}
}

func testStoreRoundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	first, err := s.Save(ctx, "claim-001.txt", sampleDecision(model.WorkflowFastTrack))
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	second, err := s.Save(ctx, "claim-002.txt", sampleDecision(model.WorkflowManualReview))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID, "ULIDs must be monotonic")

	got, err := s.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "claim-001.txt", got.Source)
	assert.Equal(t, model.WorkflowFastTrack, got.Decision.Workflow)
	require.NotNil(t, got.Decision.Fields.PolicyNumber)
	assert.Equal(t, "ABC-12345", *got.Decision.Fields.PolicyNumber)

	_, err = s.Get(ctx, "01XXXXXXXXXXXXXXXXXXXXXXXX")
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID, "newest first")

	limited, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	defer s.Close()
	testStoreRoundTrip(t, s)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "decisions.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	testStoreRoundTrip(t, s)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "decisions.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	saved, err := s.Save(ctx, "claim-001.txt", sampleDecision(model.WorkflowManualReview))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, model.WorkflowManualReview, got.Decision.Workflow)
}
