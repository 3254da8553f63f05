package postgres

import (
	"context"
	"testing"

	"spaetimap/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmenitySetsFromRows_SeedsEveryRequestedID(t *testing.T) {
	sets := amenitySetsFromRows([]string{"s1", "s2"}, nil)

	require.Len(t, sets, 2)
	assert.NotNil(t, sets["s1"])
	assert.Empty(t, sets["s1"])
	assert.NotNil(t, sets["s2"])
	assert.Empty(t, sets["s2"])
}

func TestAmenitySetsFromRows_GroupsRowsBySpati(t *testing.T) {
	url := "https://example.com/beer.png"
	rows := []*spatiAmenityJoinRow{
		{SpatiID: "s1", AmenityID: "a1", Name: "Sitzplätze"},
		{SpatiID: "s1", AmenityID: "a2", Name: "Bottle opener", ImageURL: &url},
		{SpatiID: "s2", AmenityID: "a1", Name: "Sitzplätze"},
	}

	sets := amenitySetsFromRows([]string{"s1", "s2", "s3"}, rows)

	require.Len(t, sets["s1"], 2)
	assert.Equal(t, "a1", sets["s1"][0].ID)
	assert.Equal(t, "a2", sets["s1"][1].ID)
	assert.Equal(t, &url, sets["s1"][1].ImageURL)

	require.Len(t, sets["s2"], 1)
	assert.Equal(t, "Sitzplätze", sets["s2"][0].Name)

	// An untagged spati still gets an empty slice, never nil.
	require.Contains(t, sets, "s3")
	assert.NotNil(t, sets["s3"])
	assert.Empty(t, sets["s3"])
}

func TestLoadAmenitySets_EmptyIDSet(t *testing.T) {
	// An empty id set never reaches the database.
	repo := &spatiRepository{}

	sets, err := repo.loadAmenitySets(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, sets)
	assert.Empty(t, sets)
}

func TestDedupeIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "empty", ids: nil, want: []string{}},
		{name: "already unique", ids: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "repeats collapse keeping first position", ids: []string{"a", "b", "a", "c", "b"},
			want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedupeIDs(tt.ids))
		})
	}
}

func TestToSpatiDomain_NilAmenitiesBecomeEmptySlice(t *testing.T) {
	spati := toSpatiDomain(&model.SpatiModel{ID: "s1", StoreName: "Kotti Kiosk"}, nil)

	require.NotNil(t, spati)
	assert.Equal(t, "Kotti Kiosk", spati.Name)
	assert.NotNil(t, spati.Amenities)
	assert.Empty(t, spati.Amenities)
}

func TestToSpatiDomain_NilModel(t *testing.T) {
	assert.Nil(t, toSpatiDomain(nil, nil))
}
