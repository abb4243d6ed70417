package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRatingService(notes *fakeNoteRepo) (*RatingService, *fakeRatingRepo, *fakeEvents) {
	ratings := newFakeRatingRepo()
	events := &fakeEvents{}
	return &RatingService{RatingDAO: ratings, NoteDAO: notes, Events: events}, ratings, events
}

func TestRatingService_RateNote_UpdatesInsteadOfDuplicating(t *testing.T) {
	ctx := context.Background()
	svc, ratings, events := newRatingService(newFakeNoteRepo(newNote(1, nil, time.Now())))

	require.NoError(t, svc.RateNote(ctx, 1, 42, 3))
	require.NoError(t, svc.RateNote(ctx, 1, 42, 5))

	assert.Equal(t, 1, ratings.count())
	v, found, err := svc.GetUserRating(ctx, 1, 42)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 5, v)
	assert.Equal(t, []string{EventNoteRated, EventNoteRated}, events.types())
}

func TestRatingService_RateNote_AnonymousMakesNoStoreCall(t *testing.T) {
	svc, ratings, events := newRatingService(newFakeNoteRepo(newNote(1, nil, time.Now())))

	err := svc.RateNote(context.Background(), 1, 0, 4)
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Zero(t, ratings.calls)
	assert.Empty(t, events.types())
}

func TestRatingService_RateNote_OutOfRange(t *testing.T) {
	svc, ratings, _ := newRatingService(newFakeNoteRepo(newNote(1, nil, time.Now())))

	for _, v := range []int{0, 6, -1} {
		err := svc.RateNote(context.Background(), 1, 42, v)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "value=%d", v)
		assert.Equal(t, "rating", ve.Field)
	}
	assert.Zero(t, ratings.calls)
}

func TestRatingService_RateNote_NoteMissing(t *testing.T) {
	svc, ratings, _ := newRatingService(newFakeNoteRepo())

	err := svc.RateNote(context.Background(), 99, 42, 4)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.Zero(t, ratings.count())
}

func TestRatingService_RateNote_StoreErrorPropagates(t *testing.T) {
	svc, ratings, events := newRatingService(newFakeNoteRepo(newNote(1, nil, time.Now())))
	cause := errors.New("permission denied")
	ratings.upsertErr = cause

	err := svc.RateNote(context.Background(), 1, 42, 4)
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, events.types())
}

func TestRatingService_RateNote_PublishFailureIgnored(t *testing.T) {
	svc, _, events := newRatingService(newFakeNoteRepo(newNote(1, nil, time.Now())))
	events.err = errors.New("broker down")

	assert.NoError(t, svc.RateNote(context.Background(), 1, 42, 4))
}

func TestRatingService_GetUserRating(t *testing.T) {
	ctx := context.Background()
	svc, ratings, _ := newRatingService(newFakeNoteRepo(newNote(1, nil, time.Now())))

	// 匿名用户不访问存储
	_, found, err := svc.GetUserRating(ctx, 1, 0)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, ratings.calls)

	_, found, err = svc.GetUserRating(ctx, 1, 42)
	require.NoError(t, err)
	assert.False(t, found)

	ratings.getErr = errors.New("timeout")
	_, _, err = svc.GetUserRating(ctx, 1, 42)
	var se *StoreError
	assert.ErrorAs(t, err, &se)
}

func TestRatingService_NoteAggregate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newRatingService(newFakeNoteRepo(newNote(1, nil, time.Now())))

	agg, err := svc.NoteAggregate(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, agg.Average)
	assert.Zero(t, agg.Count)

	require.NoError(t, svc.RateNote(ctx, 1, 1, 4))
	require.NoError(t, svc.RateNote(ctx, 1, 2, 5))
	require.NoError(t, svc.RateNote(ctx, 1, 3, 3))

	agg, err = svc.NoteAggregate(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, agg.Average)
	assert.Equal(t, 4.0, *agg.Average)
	assert.Equal(t, 3, agg.Count)
}
