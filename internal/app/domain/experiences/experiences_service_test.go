package experiences

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/domain/imagery"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/spots"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchSpots(ctx context.Context, city string) []spots.Element {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]spots.Element)
}

// fakeResolver returns a name-derived URL and tracks how many calls overlap.
type fakeResolver struct {
	delay   time.Duration
	mu      sync.Mutex
	queries []imagery.Query
	active  atomic.Int32
	peak    atomic.Int32
}

func (r *fakeResolver) Resolve(_ context.Context, q imagery.Query) string {
	n := r.active.Add(1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(r.delay)
	r.active.Add(-1)

	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.mu.Unlock()
	return "https://img.example/" + q.Name
}

func ptr(v float64) *float64 { return &v }

func TestBuildExperiences_MapsElements(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("FetchSpots", mock.Anything, "Rishikesh").Return([]spots.Element{
		{Type: "node", ID: 101, Lat: ptr(30.1), Lon: ptr(78.3), Tags: map[string]string{
			"name": "Parmarth Yoga", "leisure": "yoga_studio", "description": "Sunrise sessions",
		}},
		{Type: "way", ID: 202, Center: &spots.Center{Lat: 30.2, Lon: 78.4}, Tags: map[string]string{
			"amenity": "spa", "name:en": "River Spa",
		}},
		{Type: "relation", ID: 303},
	}).Once()

	resolver := &fakeResolver{}
	svc := NewService(fetcher, nil, resolver, nil, 1, zap.NewNop())

	got := svc.BuildExperiences(context.Background(), "Rishikesh")
	require.Len(t, got, 3)

	first := got[0]
	assert.Equal(t, "osm-node-101", first.ID)
	assert.Equal(t, "Parmarth Yoga", first.Name)
	assert.Equal(t, "yoga_studio", first.Type)
	assert.Equal(t, models.CategoryMeditation, first.Category)
	assert.Equal(t, "Sunrise sessions", first.Description)
	assert.Equal(t, "Stress reduction, mindfulness, cultural immersion", first.Benefits)
	assert.Equal(t, "30 mins", first.Duration)
	assert.Equal(t, "https://img.example/Parmarth Yoga", first.Image)
	assert.Equal(t, 30.1, *first.Lat)
	assert.Equal(t, "Rishikesh", first.Location)

	second := got[1]
	assert.Equal(t, "osm-way-202", second.ID)
	assert.Equal(t, "Wellness Spot", second.Name)
	assert.Equal(t, "spa", second.Type)
	assert.Equal(t, models.CategoryHerbalTherapy, second.Category)
	assert.Equal(t, "River Spa", second.Description)
	assert.Equal(t, "45 mins", second.Duration)
	require.NotNil(t, second.Lat)
	assert.Equal(t, 30.2, *second.Lat)
	assert.Equal(t, 78.4, *second.Lon)

	third := got[2]
	assert.Equal(t, "osm-relation-303", third.ID)
	assert.Equal(t, "Wellness", third.Type)
	assert.Equal(t, models.CategoryOther, third.Category)
	assert.Equal(t, "A local wellness spot", third.Description)
	assert.Equal(t, "1 hour", third.Duration)
	assert.Nil(t, third.Lat)
	assert.Nil(t, third.Lon)

	assert.Equal(t, imagery.Query{Name: "Parmarth Yoga", Category: models.CategoryMeditation, City: "Rishikesh"}, resolver.queries[0])
	fetcher.AssertExpectations(t)
}

func TestBuildExperiences_DurationRotation(t *testing.T) {
	elements := make([]spots.Element, 7)
	for i := range elements {
		elements[i] = spots.Element{Type: "node", ID: int64(i)}
	}
	fetcher := new(MockFetcher)
	fetcher.On("FetchSpots", mock.Anything, "Kochi").Return(elements)

	got := NewService(fetcher, nil, &fakeResolver{}, nil, 1, zap.NewNop()).BuildExperiences(context.Background(), "Kochi")

	want := []string{"30 mins", "45 mins", "1 hour", "90 mins", "2 hours", "30 mins", "45 mins"}
	for i, e := range got {
		assert.Equal(t, want[i], e.Duration, "element %d", i)
	}
}

func TestBuildExperiences_RawTypePrecedence(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("FetchSpots", mock.Anything, "Goa").Return([]spots.Element{
		{Type: "node", ID: 1, Tags: map[string]string{"amenity": "cooking_school", "leisure": "park"}},
		{Type: "node", ID: 2, Tags: map[string]string{"leisure": "park", "shop": "herbalist"}},
		{Type: "node", ID: 3, Tags: map[string]string{"shop": "herbalist"}},
	})

	got := NewService(fetcher, nil, &fakeResolver{}, nil, 1, zap.NewNop()).BuildExperiences(context.Background(), "Goa")

	assert.Equal(t, models.CategoryCooking, got[0].Category)
	assert.Equal(t, models.CategoryNature, got[1].Category)
	assert.Equal(t, models.CategoryHerbalTherapy, got[2].Category)
}

func TestBuildExperiences_CuratedFallback(t *testing.T) {
	for _, tc := range []struct {
		name     string
		elements []spots.Element
	}{
		{"nil", nil},
		{"empty", []spots.Element{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(MockFetcher)
			fetcher.On("FetchSpots", mock.Anything, "Nowhere").Return(tc.elements)
			resolver := &fakeResolver{}
			static := imagery.NewStaticProvider("http://localhost:8091")

			got := NewService(fetcher, nil, resolver, static, 1, zap.NewNop()).BuildExperiences(context.Background(), "Nowhere")

			require.Len(t, got, 2)
			assert.Equal(t, "cur-1", got[0].ID)
			assert.Equal(t, "Morning Yoga by the Ganges", got[0].Name)
			assert.Equal(t, models.CategoryMeditation, got[0].Category)
			assert.Equal(t, "http://localhost:8091/images/yoga.svg", got[0].Image)
			assert.Equal(t, "cur-2", got[1].ID)
			assert.Equal(t, "Ayurvedic Therapy", got[1].Name)
			assert.Equal(t, "90 mins", got[1].Duration)
			assert.Equal(t, "http://localhost:8091/images/herbal.svg", got[1].Image)
			for _, e := range got {
				assert.Equal(t, "Nowhere", e.Location)
				assert.Nil(t, e.Lat)
				assert.Nil(t, e.Lon)
			}
			assert.Empty(t, resolver.queries)
		})
	}
}

func TestBuildExperiences_BoundedConcurrencyKeepsOrder(t *testing.T) {
	elements := make([]spots.Element, 12)
	for i := range elements {
		elements[i] = spots.Element{Type: "node", ID: int64(i), Tags: map[string]string{"name": fmt.Sprintf("spot-%02d", i)}}
	}

	for _, limit := range []int{1, 3} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			fetcher := new(MockFetcher)
			fetcher.On("FetchSpots", mock.Anything, "Mysore").Return(elements)
			resolver := &fakeResolver{delay: 5 * time.Millisecond}

			got := NewService(fetcher, nil, resolver, nil, limit, zap.NewNop()).BuildExperiences(context.Background(), "Mysore")

			require.Len(t, got, len(elements))
			for i, e := range got {
				assert.Equal(t, fmt.Sprintf("osm-node-%d", i), e.ID)
				assert.Equal(t, fmt.Sprintf("https://img.example/spot-%02d", i), e.Image)
			}
			assert.LessOrEqual(t, int(resolver.peak.Load()), limit)
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	list := []models.Experience{
		{ID: "a", Category: models.CategoryMeditation},
		{ID: "b", Category: models.CategoryNature},
		{ID: "c", Category: models.CategoryMeditation},
	}

	assert.Len(t, FilterByCategory(list, "All"), 3)
	assert.Len(t, FilterByCategory(list, ""), 3)

	med := FilterByCategory(list, "Meditation")
	require.Len(t, med, 2)
	assert.Equal(t, "a", med[0].ID)
	assert.Equal(t, "c", med[1].ID)

	assert.Empty(t, FilterByCategory(list, "Cooking"))
}
