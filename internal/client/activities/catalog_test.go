package activities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportradar/sportradar-cli/internal/client/api"
)

func sample() []api.Activity {
	return []api.Activity{
		{ID: 1, Name: "Yoga du matin", Description: "Réveil en douceur", Category: "yoga", Location: "Paris", Date: "2025-07-02", Time: "08:00", Level: "débutant"},
		{ID: 2, Name: "Course à pied", Description: "Sortie longue", Category: "running", Location: "Lyon", Date: "2025-06-15", Time: "18:30", Level: "intermédiaire"},
		{ID: 3, Name: "Yoga du soir", Description: "Relaxation", Category: "yoga", Location: "Paris", Date: "2025-06-15", Time: "19:00", Level: "débutant"},
		{ID: 4, Name: "Natation", Description: "Crawl et dos", Category: "natation", Location: "Lille", Date: "2025-07-20", Time: "12:00", Level: "débutant"},
		{ID: 5, Name: "Yoga du matin", Description: "Deuxième session", Category: "yoga", Location: "Lyon", Date: "2025-08-01", Time: "08:00", Level: "débutant"},
	}
}

func ids(list []api.Activity) []int64 {
	out := make([]int64, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestFilter_SearchIsCaseInsensitiveOverNameAndDescription(t *testing.T) {
	got := Filter(sample(), Query{Search: "YOGA"})
	assert.Equal(t, []int64{3, 1, 5}, ids(got))

	got = Filter(sample(), Query{Search: "crawl"})
	assert.Equal(t, []int64{4}, ids(got))
}

func TestFilter_CombinesAxes(t *testing.T) {
	got := Filter(sample(), Query{Category: "yoga", Location: "Paris"})
	assert.Equal(t, []int64{3, 1}, ids(got))

	got = Filter(sample(), Query{Category: "yoga", Date: "2025-08-01"})
	assert.Equal(t, []int64{5}, ids(got))

	got = Filter(sample(), Query{Level: "intermédiaire"})
	assert.Equal(t, []int64{2}, ids(got))
}

func TestFilter_NoMatchYieldsEmpty(t *testing.T) {
	assert.Empty(t, Filter(sample(), Query{Category: "escalade"}))
}

func TestSortChronological_OrdersByDateThenTime(t *testing.T) {
	list := sample()
	SortChronological(list)
	assert.Equal(t, []int64{2, 3, 1, 4, 5}, ids(list))
}

func TestPaginate(t *testing.T) {
	list := Filter(sample(), Query{})

	assert.Equal(t, []int64{2, 3}, ids(Paginate(list, 1, 2)))
	assert.Equal(t, []int64{1, 4}, ids(Paginate(list, 2, 2)))
	assert.Equal(t, []int64{5}, ids(Paginate(list, 3, 2)))
	assert.Empty(t, Paginate(list, 4, 2))
	assert.Empty(t, Paginate(list, 0, 2))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 9))
	assert.Equal(t, 1, PageCount(9, 9))
	assert.Equal(t, 2, PageCount(10, 9))
	assert.Equal(t, 3, PageCount(5, 2))
}

func TestMonthlyCounts_SortedByMonth(t *testing.T) {
	got := MonthlyCounts(sample())
	require.Equal(t, []MonthCount{
		{Month: "2025-06", Count: 2},
		{Month: "2025-07", Count: 2},
		{Month: "2025-08", Count: 1},
	}, got)
}

func TestPodium_TopThreeWithinLevel(t *testing.T) {
	got := Podium(sample(), "débutant")
	require.Len(t, got, 3)
	assert.Equal(t, NameCount{Name: "Yoga du matin", Count: 2}, got[0])
	// ties break alphabetically
	assert.Equal(t, NameCount{Name: "Natation", Count: 1}, got[1])
	assert.Equal(t, NameCount{Name: "Yoga du soir", Count: 1}, got[2])
}

func TestDistinctValues(t *testing.T) {
	assert.Equal(t, []string{"natation", "running", "yoga"}, Categories(sample()))
	assert.Equal(t, []string{"Lille", "Lyon", "Paris"}, Locations(sample()))
	assert.Equal(t, []string{"débutant", "intermédiaire"}, Levels(sample()))
}
