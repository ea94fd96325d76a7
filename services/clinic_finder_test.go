package services

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "swasthya-chatbot-backend/models"
)

func testClinics() []models.ClinicRecord {
    return []models.ClinicRecord{
        {Name: "City Care Clinic", Area: "Dadar", City: "Mumbai", Pincode: "400028"},
        {Name: "Andheri Health Centre", Area: "Andheri West", City: "Mumbai", Pincode: "400058"},
        {Name: "Sunrise Hospital", Area: "Bandra", City: "Mumbai", Pincode: "400050"},
        {Name: "Lotus Clinic", Area: "Koramangala", City: "Bengaluru", Pincode: "560034"},
        {Name: "Green Cross Clinic", Area: "Anna Nagar", City: "Chennai", Pincode: "600040"},
    }
}

func TestIsClinicRequest(t *testing.T) {
    cf := NewClinicFinder(testClinics())

    assert.True(t, cf.IsClinicRequest("Doctor chahiye Andheri"))
    assert.True(t, cf.IsClinicRequest("nearest hospital please"))
    assert.True(t, cf.IsClinicRequest("najdeeki clinic batao"))
    assert.True(t, cf.IsClinicRequest("क्लिनिक कहाँ है"))
    assert.False(t, cf.IsClinicRequest("mujhe bukhar hai"))
}

func TestExtractLocation(t *testing.T) {
    cf := NewClinicFinder(testClinics())

    assert.Equal(t, "400058", cf.ExtractLocation("400058"))
    assert.Equal(t, "Andheri", cf.ExtractLocation("Doctor chahiye Andheri"))
    assert.Equal(t, "Bandra", cf.ExtractLocation("clinic in Bandra please"))
    assert.Equal(t, "", cf.ExtractLocation("clinic chahiye"))
    assert.Equal(t, "", cf.ExtractLocation("   "))
}

func TestFindRanksAreaAboveCity(t *testing.T) {
    cf := NewClinicFinder(testClinics())

    results := cf.Find("Andheri", 3)
    require.NotEmpty(t, results)
    // the area match leads even though every Mumbai clinic matches by city
    assert.Equal(t, "Andheri Health Centre", results[0].Name)
}

func TestFindPartialAreaMatch(t *testing.T) {
    cf := NewClinicFinder(testClinics())

    // query shorter than the stored area
    results := cf.Find("andheri", 1)
    require.Len(t, results, 1)
    assert.Equal(t, "Andheri West", results[0].Area)

    // query longer than the stored area
    results = cf.Find("anna nagar east", 1)
    require.Len(t, results, 1)
    assert.Equal(t, "Green Cross Clinic", results[0].Name)
}

func TestFindByPincode(t *testing.T) {
    cf := NewClinicFinder(testClinics())

    results := cf.Find("560034", 3)
    require.Len(t, results, 1)
    assert.Equal(t, "Lotus Clinic", results[0].Name)
}

func TestFindKeepsDirectoryOrderWithinRank(t *testing.T) {
    cf := NewClinicFinder(testClinics())

    results := cf.Find("Mumbai", 3)
    require.Len(t, results, 3)
    assert.Equal(t, "City Care Clinic", results[0].Name)
    assert.Equal(t, "Andheri Health Centre", results[1].Name)
    assert.Equal(t, "Sunrise Hospital", results[2].Name)
}

func TestFindRespectsMaxResults(t *testing.T) {
    cf := NewClinicFinder(testClinics())

    results := cf.Find("Mumbai", 2)
    assert.Len(t, results, 2)
}

func TestFindNoMatch(t *testing.T) {
    cf := NewClinicFinder(testClinics())

    assert.Empty(t, cf.Find("Pune", 3))
    assert.Empty(t, cf.Find("", 3))
}
