package database

import (
    "context"
    "encoding/json"
    "fmt"
    "log"
    "os"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo/options"

    "swasthya-chatbot-backend/models"
)

// LoadClinics returns the clinic directory in its canonical order. The
// bundled JSON file is the source of truth; when a database connection
// exists the directory is also seeded there so admin tooling can query
// it, but lookups always run against the in-memory list.
func LoadClinics(dataPath string) ([]models.ClinicRecord, error) {
    clinics, err := loadClinicsFromFile(dataPath)
    if err != nil {
        return nil, err
    }

    if Connected() {
        if err := seedClinics(clinics); err != nil {
            log.Printf("Failed to seed clinics collection: %v", err)
        }
    }

    return clinics, nil
}

func loadClinicsFromFile(dataPath string) ([]models.ClinicRecord, error) {
    data, err := os.ReadFile(dataPath)
    if err != nil {
        return nil, fmt.Errorf("failed to read clinic data: %w", err)
    }

    var clinics []models.ClinicRecord
    if err := json.Unmarshal(data, &clinics); err != nil {
        return nil, fmt.Errorf("failed to parse clinic data: %w", err)
    }

    if len(clinics) == 0 {
        return nil, fmt.Errorf("clinic data file %s is empty", dataPath)
    }
    return clinics, nil
}

func seedClinics(clinics []models.ClinicRecord) error {
    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()

    collection := GetMongoDB().Collection("clinics")
    for i, clinic := range clinics {
        filter := bson.M{"name": clinic.Name, "pincode": clinic.Pincode}
        update := bson.M{"$set": bson.M{
            "name":    clinic.Name,
            "address": clinic.Address,
            "area":    clinic.Area,
            "city":    clinic.City,
            "pincode": clinic.Pincode,
            "phone":   clinic.Phone,
            "timing":  clinic.Timing,
            "order":   i,
        }}
        if _, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
            return err
        }
    }

    log.Printf("Seeded %d clinics", len(clinics))
    return nil
}
