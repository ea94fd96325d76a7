package database

import (
    "context"
    "fmt"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "swasthya-chatbot-backend/models"
)

// MessageRepository stores conversation turns in the messages collection.
// It implements services.MessageLogger.
type MessageRepository struct {
    collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
    return &MessageRepository{
        collection: db.Collection("messages"),
    }
}

func (r *MessageRepository) LogMessage(ctx context.Context, msg *models.Message) error {
    if _, err := r.collection.InsertOne(ctx, msg); err != nil {
        return fmt.Errorf("failed to log message: %w", err)
    }
    return nil
}

// RecentMessages returns the latest turns for a sender, newest first.
func (r *MessageRepository) RecentMessages(ctx context.Context, senderID string, limit int64) ([]models.Message, error) {
    opts := options.Find().
        SetSort(bson.D{{Key: "timestamp", Value: -1}}).
        SetLimit(limit)

    cursor, err := r.collection.Find(ctx, bson.M{"sender_id": senderID}, opts)
    if err != nil {
        return nil, fmt.Errorf("failed to query messages: %w", err)
    }
    defer cursor.Close(ctx)

    var messages []models.Message
    if err := cursor.All(ctx, &messages); err != nil {
        return nil, fmt.Errorf("failed to decode messages: %w", err)
    }
    return messages, nil
}

// EmergencyCount returns how many emergency turns were logged, for the
// admin status endpoint.
func (r *MessageRepository) EmergencyCount(ctx context.Context) (int64, error) {
    count, err := r.collection.CountDocuments(ctx, bson.M{"is_emergency": true})
    if err != nil {
        return 0, fmt.Errorf("failed to count emergencies: %w", err)
    }
    return count, nil
}
