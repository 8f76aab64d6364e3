package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qihang-dev/qihang/internal/assessment"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { fs.Close() })
	return fs
}

func testSession(key string) *assessment.Session {
	return &assessment.Session{
		SessionID:             key,
		Key:                   key,
		Provider:              "qwen",
		CurrentQuestionNumber: 1,
		CreatedAt:             time.Now().UTC(),
	}
}

func TestFileStoreSaveAndFind(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	session := testSession("123")
	session.Answers = []assessment.Answer{{QuestionID: "123-1", QuestionNumber: 1, AnswerContent: "在校学生"}}
	session.CurrentQuestionNumber = 2
	require.NoError(t, fs.Save(ctx, session))

	got, err := fs.FindByID(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "qwen", got.Provider)
	assert.Equal(t, 2, got.CurrentQuestionNumber)
	require.Len(t, got.Answers, 1)
	assert.Equal(t, "在校学生", got.Answers[0].AnswerContent)
}

func TestFileStoreNotFound(t *testing.T) {
	fs := newTestFileStore(t)

	_, err := fs.FindByID(context.Background(), "123")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = fs.FindByKey(context.Background(), "123")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreResultSurvivesSessionOverwrite(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	completed := testSession("456")
	completed.Completed = true
	completed.Result = &assessment.Result{
		TalentScores:    map[assessment.TalentDimension]int{assessment.DimensionCreativity: 90},
		PersonalityType: "星辰航海家",
	}
	require.NoError(t, fs.Save(ctx, completed))

	// A fresh in-progress session overwrites session.json but not result.json.
	require.NoError(t, fs.Save(ctx, testSession("456")))

	got, err := fs.FindByKey(ctx, "456")
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.Result)
	assert.Equal(t, "星辰航海家", got.Result.PersonalityType)
}

func TestFileStoreResultWithoutSessionFile(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	completed := testSession("123")
	completed.Completed = true
	completed.Result = &assessment.Result{PersonalityType: "思维建筑师"}
	require.NoError(t, fs.Save(ctx, completed))

	require.NoError(t, os.Remove(filepath.Join(fs.baseDir, "123", sessionFileName)))

	got, err := fs.FindByKey(ctx, "123")
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, "思维建筑师", got.Result.PersonalityType)
	assert.Equal(t, "123", got.SessionID)
}

func TestFileStoreRejectsPathTraversal(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	for _, bad := range []string{"", "..", "../etc", "a/b", `a\b`} {
		_, err := fs.FindByID(ctx, bad)
		require.Error(t, err, "id %q", bad)

		err = fs.Save(ctx, testSession(bad))
		require.Error(t, err, "key %q", bad)
	}
}

func TestFileStoreClosed(t *testing.T) {
	fs := newTestFileStore(t)
	require.NoError(t, fs.Close())

	require.Error(t, fs.Save(context.Background(), testSession("123")))
	_, err := fs.FindByID(context.Background(), "123")
	require.Error(t, err)
}
