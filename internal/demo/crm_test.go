package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{85000, "$85K"},
		{67200, "$67K"},
		{2_500_000, "$2.5M"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatMoney(tc.in), "input %d", tc.in)
	}
}

func TestPipelineSummary_ExcludesClosedWon(t *testing.T) {
	assert.Equal(t, "14 open deals worth $1.0M", PipelineSummary(Pipeline()))
}

func TestSearchContacts(t *testing.T) {
	all := Contacts()

	assert.Len(t, SearchContacts(all, ""), len(all))

	got := SearchContacts(all, "  CISO ")
	require.Len(t, got, 1)
	assert.Equal(t, "David Park", got[0].Name)

	got = SearchContacts(all, "acme")
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah Chen", got[0].Name)

	assert.Empty(t, SearchContacts(all, "nobody"))
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(Contacts())
	assert.Equal(t, 5, counts["Active"])
	assert.Equal(t, 3, counts["Lead"])
	assert.Equal(t, 2, counts["Inactive"])
}

func TestSearchCompanies_MatchesIndustry(t *testing.T) {
	got := SearchCompanies(Companies(), "biotech")
	require.Len(t, got, 1)
	assert.Equal(t, "Oscorp", got[0].Name)
}

func TestFilterFiles(t *testing.T) {
	files := Files()

	assert.Len(t, FilterFiles(files, "All", ""), len(files))
	assert.Len(t, FilterFiles(files, "bogus", ""), len(files))

	invoices := FilterFiles(files, "Invoices", "")
	require.Len(t, invoices, 5)
	for _, f := range invoices {
		assert.Equal(t, "Invoice", f.Type)
	}

	got := FilterFiles(files, "Contracts", "wayne")
	require.Len(t, got, 1)
	assert.Equal(t, 17, got[0].ID)
}

func TestTopReps(t *testing.T) {
	assert.Len(t, TopReps(5), 5)
	assert.Len(t, TopReps(50), len(Reps()))
	assert.Equal(t, "Sarah Chen", TopReps(1)[0].Name)
}
