package services

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "swasthya-chatbot-backend/models"
)

func TestCacheSessionStoreMissReturnsFreshSession(t *testing.T) {
    store := NewCacheSessionStore(10*time.Minute, time.Minute)

    session, err := store.Get(context.Background(), "919876543210")
    require.NoError(t, err)
    assert.Equal(t, "919876543210", session.SenderID)
    assert.Equal(t, models.StateIdle, session.State)
    assert.Empty(t, session.Answers)
}

func TestCacheSessionStoreRoundTrip(t *testing.T) {
    store := NewCacheSessionStore(10*time.Minute, time.Minute)
    ctx := context.Background()

    session, err := store.Get(ctx, "sender-1")
    require.NoError(t, err)
    session.Language = models.LangTamil
    session.State = models.StateAwaitingDuration
    session.PendingSymptom = models.SymptomFever
    require.NoError(t, store.Put(ctx, session))

    loaded, err := store.Get(ctx, "sender-1")
    require.NoError(t, err)
    assert.Equal(t, models.LangTamil, loaded.Language)
    assert.Equal(t, models.StateAwaitingDuration, loaded.State)
    assert.Equal(t, models.SymptomFever, loaded.PendingSymptom)
}

func TestCacheSessionStoreGetReturnsIndependentCopy(t *testing.T) {
    store := NewCacheSessionStore(10*time.Minute, time.Minute)
    ctx := context.Background()

    session, _ := store.Get(ctx, "sender-copy")
    session.Language = models.LangHindi
    session.Record(models.QuestionDuration, "2 din se")
    require.NoError(t, store.Put(ctx, session))

    // mutating one caller's copy must not leak into the stored session
    first, err := store.Get(ctx, "sender-copy")
    require.NoError(t, err)
    first.Language = models.LangTamil
    first.State = models.StateAwaitingFever
    first.Answers[0].Answer = "overwritten"

    second, err := store.Get(ctx, "sender-copy")
    require.NoError(t, err)
    assert.Equal(t, models.LangHindi, second.Language)
    assert.Equal(t, models.StateIdle, second.State)
    assert.Equal(t, "2 din se", second.Answers[0].Answer)
}

func TestCacheSessionStoreExpiry(t *testing.T) {
    store := NewCacheSessionStore(50*time.Millisecond, time.Minute)
    ctx := context.Background()

    session, _ := store.Get(ctx, "sender-2")
    session.State = models.StateAwaitingFever
    require.NoError(t, store.Put(ctx, session))

    time.Sleep(80 * time.Millisecond)

    // after the inactivity window the caller gets an idle session back
    loaded, err := store.Get(ctx, "sender-2")
    require.NoError(t, err)
    assert.Equal(t, models.StateIdle, loaded.State)
}

func TestCacheSessionStoreIsolatesSenders(t *testing.T) {
    store := NewCacheSessionStore(10*time.Minute, time.Minute)
    ctx := context.Background()

    a, _ := store.Get(ctx, "sender-a")
    a.Language = models.LangBengali
    require.NoError(t, store.Put(ctx, a))

    b, err := store.Get(ctx, "sender-b")
    require.NoError(t, err)
    assert.NotEqual(t, models.LangBengali, b.Language)
    assert.Equal(t, 1, store.ActiveSessions())
}
