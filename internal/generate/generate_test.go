package generate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luke31A/urlrequest/internal/domain"
)

func TestGenerate_CountAndOrder(t *testing.T) {
	cands, err := Generate("acme", 1, 3)
	require.NoError(t, err)
	require.Len(t, cands, 7)

	wantEnvs := []domain.Environment{
		domain.EnvProduction,
		domain.EnvSandbox,
		domain.EnvPreview,
		domain.EnvCustomerCentral,
		domain.Impl(1),
		domain.Impl(2),
		domain.Impl(3),
	}
	for i, c := range cands {
		require.Equal(t, wantEnvs[i], c.Environment, "position %d", i)
		require.Contains(t, c.URL, "acme")
		require.True(t, strings.HasPrefix(c.URL, "https://"))
	}
}

func TestGenerate_URLShapes(t *testing.T) {
	cands, err := Generate("acme", 1, 1)
	require.NoError(t, err)

	require.Contains(t, cands[0].URL, "/authgwy/acme/")
	require.Contains(t, cands[1].URL, "impl.workday.com")
	require.Contains(t, cands[2].URL, "/authgwy/acme_Preview/")
	require.Contains(t, cands[3].URL, "/authgwy/acme_cc/")
	require.Contains(t, cands[4].URL, "/authgwy/acme1/")
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate("acme", 0, 5)
	require.NoError(t, err)
	b, err := Generate("acme", 0, 5)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerate_InvalidInput(t *testing.T) {
	cases := []struct {
		name       string
		tenant     string
		start, end int
	}{
		{"empty tenant", "", 1, 3},
		{"blank tenant", "   ", 1, 3},
		{"start after end", "acme", 4, 2},
		{"negative start", "acme", -1, 3},
		{"negative end", "acme", 0, -3},
		{"range too wide", "acme", 1, 1 + MaxImplRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cands, err := Generate(c.tenant, c.start, c.end)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Nil(t, cands)
		})
	}
}

func TestGenerateCapped_EnforcesConfiguredLimit(t *testing.T) {
	_, err := GenerateCapped("acme", 1, 10, 5)
	require.ErrorIs(t, err, ErrInvalidInput)

	cands, err := GenerateCapped("acme", 1, 5, 5)
	require.NoError(t, err)
	require.Len(t, cands, 9)
}

func TestGenerateCapped_ZeroOrOversizedCapFallsBack(t *testing.T) {
	cands, err := GenerateCapped("acme", 1, MaxImplRange, 0)
	require.NoError(t, err)
	require.Len(t, cands, 4+MaxImplRange)

	_, err = GenerateCapped("acme", 1, MaxImplRange+1, MaxImplRange*10)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateFor_UsesDataCenterTemplates(t *testing.T) {
	dc, ok := DataCenterByName("Data Center 5")
	require.True(t, ok)

	cands, err := GenerateFor(dc, "acme", 1, 1)
	require.NoError(t, err)
	require.Contains(t, cands[0].URL, "wd5.myworkday.com")
	require.Contains(t, cands[1].URL, "wd5-impl.workday.com")
	for _, c := range cands {
		require.Equal(t, "Data Center 5", c.DataCenter)
	}
}

func TestProductionCandidates_OnePerDataCenter(t *testing.T) {
	cands, err := ProductionCandidates("acme")
	require.NoError(t, err)
	require.Len(t, cands, len(DataCenters))
	for i, c := range cands {
		require.Equal(t, domain.EnvProduction, c.Environment)
		require.Equal(t, DataCenters[i].Name, c.DataCenter)
		require.Contains(t, c.URL, "acme")
	}

	_, err = ProductionCandidates("")
	require.True(t, errors.Is(err, ErrInvalidInput))
}
