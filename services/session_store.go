package services

import (
    "context"
    "fmt"
    "sync"
    "time"

    gocache "github.com/patrickmn/go-cache"
    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "swasthya-chatbot-backend/models"
)

// SessionStore persists per-sender conversation state between turns.
// Get never fails on a missing or expired session; it hands back a
// fresh idle session so the caller always has something to work with.
type SessionStore interface {
    Get(ctx context.Context, senderID string) (*models.ConversationSession, error)
    Put(ctx context.Context, session *models.ConversationSession) error
}

// CacheSessionStore keeps sessions in process memory with an
// inactivity TTL. Every Put refreshes the TTL, so the cache expiry and
// the session timeout stay in lockstep.
type CacheSessionStore struct {
    cache   *gocache.Cache
    timeout time.Duration
    mu      sync.Mutex
}

func NewCacheSessionStore(timeout, cleanupInterval time.Duration) *CacheSessionStore {
    return &CacheSessionStore{
        cache:   gocache.New(timeout, cleanupInterval),
        timeout: timeout,
    }
}

// Get hands back a copy of the stored session. Callers mutate their
// copy freely and persist it with Put; the cached value is never
// aliased across goroutines.
func (s *CacheSessionStore) Get(_ context.Context, senderID string) (*models.ConversationSession, error) {
    s.mu.Lock()
    defer s.mu.Unlock()

    if value, found := s.cache.Get(senderID); found {
        session := value.(*models.ConversationSession)
        if !session.Expired(s.timeout, time.Now()) {
            return session.Clone(), nil
        }
        s.cache.Delete(senderID)
    }
    return models.NewSession(senderID), nil
}

func (s *CacheSessionStore) Put(_ context.Context, session *models.ConversationSession) error {
    s.mu.Lock()
    defer s.mu.Unlock()

    s.cache.Set(session.SenderID, session.Clone(), gocache.DefaultExpiration)
    return nil
}

// ActiveSessions returns how many sessions are currently cached.
func (s *CacheSessionStore) ActiveSessions() int {
    return s.cache.ItemCount()
}

// MongoSessionStore persists sessions to the sessions collection so
// conversations survive restarts. Expiry is enforced on read against
// the stored last activity time.
type MongoSessionStore struct {
    collection *mongo.Collection
    timeout    time.Duration
}

func NewMongoSessionStore(collection *mongo.Collection, timeout time.Duration) *MongoSessionStore {
    return &MongoSessionStore{collection: collection, timeout: timeout}
}

func (s *MongoSessionStore) Get(ctx context.Context, senderID string) (*models.ConversationSession, error) {
    var session models.ConversationSession
    err := s.collection.FindOne(ctx, bson.M{"sender_id": senderID}).Decode(&session)
    if err == mongo.ErrNoDocuments {
        return models.NewSession(senderID), nil
    }
    if err != nil {
        return nil, fmt.Errorf("failed to load session: %w", err)
    }

    if session.Expired(s.timeout, time.Now()) {
        return models.NewSession(senderID), nil
    }
    return &session, nil
}

func (s *MongoSessionStore) Put(ctx context.Context, session *models.ConversationSession) error {
    opts := options.Replace().SetUpsert(true)
    _, err := s.collection.ReplaceOne(ctx, bson.M{"sender_id": session.SenderID}, session, opts)
    if err != nil {
        return fmt.Errorf("failed to save session: %w", err)
    }
    return nil
}
