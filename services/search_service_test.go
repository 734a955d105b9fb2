package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking-backend/models"
)

func TestHasAllAmenities(t *testing.T) {
	have := []string{"WiFi", "Pool", " Gym "}

	assert.True(t, hasAllAmenities(have, nil))
	assert.True(t, hasAllAmenities(have, []string{"wifi"}))
	assert.True(t, hasAllAmenities(have, []string{"POOL", "gym"}))
	assert.False(t, hasAllAmenities(have, []string{"wifi", "spa"}))
	assert.False(t, hasAllAmenities(nil, []string{"wifi"}))
}

func TestMinStayPrice(t *testing.T) {
	rooms := []models.Room{
		{RoomType: models.RoomType{Name: "Standard", BasePrice: 100, Capacity: 2}},
		{RoomType: models.RoomType{Name: "Standard", BasePrice: 100, Capacity: 2}},
		{RoomType: models.RoomType{Name: "Suite", BasePrice: 400, Capacity: 5}},
	}

	// Two-night stay prices the cheapest type at 2 * 100.
	assert.Equal(t, 200.0, minStayPrice(rooms, 2))
	// Without a date range the nightly rate stands in.
	assert.Equal(t, 100.0, minStayPrice(rooms, 0))
	assert.Equal(t, 0.0, minStayPrice(nil, 2))
}

func TestSummarizeRoomTypes(t *testing.T) {
	rooms := []models.Room{
		{RoomType: models.RoomType{Name: "Standard", BasePrice: 100, Capacity: 2}},
		{RoomType: models.RoomType{Name: "Standard", BasePrice: 100, Capacity: 2}},
		{RoomType: models.RoomType{Name: "Suite", BasePrice: 400, Capacity: 5}},
	}

	summary := summarizeRoomTypes(rooms)
	require.Len(t, summary, 2)
	assert.Equal(t, RoomTypeSummary{Count: 2, MinPrice: 100, Capacity: 2}, summary["Standard"])
	assert.Equal(t, RoomTypeSummary{Count: 1, MinPrice: 400, Capacity: 5}, summary["Suite"])
}

func TestSortSearchResults(t *testing.T) {
	three := 3
	five := 5

	results := []HotelSearchResult{
		{Name: "Mid", MinPrice: 250, StarRating: &three},
		{Name: "Cheap", MinPrice: 100, StarRating: nil},
		{Name: "Fancy", MinPrice: 500, StarRating: &five},
	}

	byPrice := append([]HotelSearchResult(nil), results...)
	sortSearchResults(byPrice, true)
	assert.Equal(t, []string{"Cheap", "Mid", "Fancy"}, resultNames(byPrice))

	byRating := append([]HotelSearchResult(nil), results...)
	sortSearchResults(byRating, false)
	// Unrated hotels sort as zero stars, last.
	assert.Equal(t, []string{"Fancy", "Mid", "Cheap"}, resultNames(byRating))
}

func resultNames(results []HotelSearchResult) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	return names
}
