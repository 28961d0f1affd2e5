package species

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
)

func TestListFiltersByCategoryAndTemperament(t *testing.T) {
	svc := NewService()

	tetras := svc.List(ListInput{Category: "tetra"})
	require.NotEmpty(t, tetras)
	for _, sp := range tetras {
		assert.Equal(t, "tetra", sp.Category)
	}

	aggressive := svc.List(ListInput{Temperament: TemperamentAggressive})
	require.NotEmpty(t, aggressive)
	for _, sp := range aggressive {
		assert.Equal(t, TemperamentAggressive, sp.Temperament)
	}
}

func TestListSearchMatchesScientificName(t *testing.T) {
	svc := NewService()

	results := svc.List(ListInput{Search: "poecilia"})
	ids := make([]string, 0, len(results))
	for _, sp := range results {
		ids = append(ids, sp.ID)
	}
	assert.ElementsMatch(t, []string{"guppy", "molly", "endlers-livebearer"}, ids)
}

func TestCatalogCoversEveryCategory(t *testing.T) {
	svc := NewService()

	all := svc.List(ListInput{})
	require.Len(t, all, 64)

	byCategory := map[string]int{}
	seen := map[string]bool{}
	for _, sp := range all {
		require.False(t, seen[sp.ID], "duplicate species id %s", sp.ID)
		seen[sp.ID] = true
		byCategory[sp.Category]++
		assert.NotEmpty(t, sp.ArabicName, "%s is missing its arabic name", sp.ID)
		assert.NotEmpty(t, sp.Breeding.Notes, "%s is missing breeding notes", sp.ID)
		assert.Greater(t, sp.MinTankLiters, 0, "%s has no tank size", sp.ID)
	}

	for _, cat := range []string{"tetra", "cichlid", "livebearer", "catfish", "gourami", "invertebrate"} {
		assert.NotZero(t, byCategory[cat], "no species in category %s", cat)
	}

	// Spot-check species beyond the community staples.
	for _, id := range []string{"platy", "kuhli-loach", "scarlet-badis", "amano-shrimp", "rabbit-snail"} {
		assert.True(t, seen[id], "catalog is missing %s", id)
	}
}

func TestGetUnknownSpecies(t *testing.T) {
	svc := NewService()

	_, err := svc.Get("loch-ness-monster")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestTimelineLiveBearerSkipsHatchStage(t *testing.T) {
	svc := NewService()
	pairDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tl, err := svc.Timeline("guppy", pairDate)
	require.NoError(t, err)
	assert.Equal(t, MethodLiveBearer, tl.Method)

	names := make([]string, 0, len(tl.Stages))
	for _, stage := range tl.Stages {
		names = append(names, stage.Name)
	}
	assert.NotContains(t, names, StageHatch)
	assert.Contains(t, names, StageFreeSwimming)
}

func TestTimelineStagesAreContiguous(t *testing.T) {
	svc := NewService()
	pairDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tl, err := svc.Timeline("betta-splendens", pairDate)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tl.Stages), 4)

	assert.Equal(t, StageConditioning, tl.Stages[0].Name)
	assert.True(t, tl.Stages[0].Start.Equal(pairDate))
	for i := 1; i < len(tl.Stages)-1; i++ {
		assert.True(t, tl.Stages[i].Start.Equal(tl.Stages[i-1].End),
			"stage %s must start where %s ends", tl.Stages[i].Name, tl.Stages[i-1].Name)
	}
	last := tl.Stages[len(tl.Stages)-1]
	assert.Equal(t, StageAdulthood, last.Name)
	assert.True(t, last.End.After(last.Start))
}

func TestTimelineHarderSpeciesConditionLonger(t *testing.T) {
	svc := NewService()
	pairDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	easy, err := svc.Timeline("zebra-danio", pairDate)
	require.NoError(t, err)
	hard, err := svc.Timeline("neon-tetra", pairDate)
	require.NoError(t, err)

	easyConditioning := easy.Stages[0].End.Sub(easy.Stages[0].Start)
	hardConditioning := hard.Stages[0].End.Sub(hard.Stages[0].Start)
	assert.Less(t, easyConditioning, hardConditioning)
}

func TestRecommendSetupHonorsTankSizeAndTemperament(t *testing.T) {
	svc := NewService()

	rec, err := svc.RecommendSetup(60, TemperamentPeaceful)
	require.NoError(t, err)
	require.NotEmpty(t, rec.Suggestions)
	for _, suggestion := range rec.Suggestions {
		assert.LessOrEqual(t, suggestion.Species.MinTankLiters, 60)
		assert.Equal(t, TemperamentPeaceful, suggestion.Species.Temperament)
		assert.GreaterOrEqual(t, suggestion.SuggestedGroup, 1)
	}

	// A 60 liter peaceful tank cannot hold an angelfish or a betta.
	for _, suggestion := range rec.Suggestions {
		assert.NotEqual(t, "angelfish", suggestion.Species.ID)
		assert.NotEqual(t, "betta-splendens", suggestion.Species.ID)
	}
}

func TestRecommendSetupBeginnerSpeciesFirst(t *testing.T) {
	svc := NewService()

	rec, err := svc.RecommendSetup(250, TemperamentPeaceful)
	require.NoError(t, err)
	require.NotEmpty(t, rec.Suggestions)

	lastRank := -1
	for _, suggestion := range rec.Suggestions {
		rank := careRank(suggestion.Species.CareLevel)
		assert.GreaterOrEqual(t, rank, lastRank)
		lastRank = rank
	}
}

func TestRecommendSetupRejectsBadInput(t *testing.T) {
	svc := NewService()

	_, err := svc.RecommendSetup(0, TemperamentPeaceful)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	_, err = svc.RecommendSetup(100, "grumpy")
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
