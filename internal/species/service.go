package species

import (
	"sort"
	"strings"

	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
)

// Service serves the static freshwater reference data.
type Service struct {
	entries []Species
	byID    map[string]*Species
}

// NewService indexes the compiled-in catalog.
func NewService() *Service {
	s := &Service{
		entries: catalog,
		byID:    make(map[string]*Species, len(catalog)),
	}
	for i := range s.entries {
		s.byID[s.entries[i].ID] = &s.entries[i]
	}
	return s
}

// List returns species matching the given filters, in catalog order.
func (s *Service) List(input ListInput) []Species {
	search := strings.ToLower(strings.TrimSpace(input.Search))
	out := make([]Species, 0, len(s.entries))
	for _, sp := range s.entries {
		if input.Category != "" && sp.Category != input.Category {
			continue
		}
		if input.Temperament != "" && sp.Temperament != input.Temperament {
			continue
		}
		if input.CareLevel != "" && sp.CareLevel != input.CareLevel {
			continue
		}
		if search != "" && !matchesSearch(sp, search) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// Get returns one species by its catalog id.
func (s *Service) Get(id string) (*Species, error) {
	sp, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "fish species not found")
	}
	return sp, nil
}

// RecommendSetup suggests stocking for a tank of the given size. Peaceful
// keepers only get peaceful species; a semi-aggressive tank can also take
// peaceful schoolers kept in large enough groups.
func (s *Service) RecommendSetup(tankLiters int, temperament string) (*SetupRecommendation, error) {
	if tankLiters <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tank size must be positive")
	}
	switch temperament {
	case "", TemperamentPeaceful, TemperamentSemiAggressive, TemperamentAggressive:
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown temperament")
	}
	if temperament == "" {
		temperament = TemperamentPeaceful
	}

	rec := &SetupRecommendation{TankLiters: tankLiters, Temperament: temperament}
	for _, sp := range s.entries {
		if sp.MinTankLiters > tankLiters {
			continue
		}
		if !temperamentCompatible(temperament, sp.Temperament) {
			continue
		}
		group := sp.MinimumGroup
		if group < 1 {
			group = 1
		}
		rec.Suggestions = append(rec.Suggestions, SetupSuggestion{Species: sp, SuggestedGroup: group})
	}

	// Easiest species first so beginners see viable picks at the top.
	sort.SliceStable(rec.Suggestions, func(i, j int) bool {
		return careRank(rec.Suggestions[i].Species.CareLevel) < careRank(rec.Suggestions[j].Species.CareLevel)
	})
	return rec, nil
}

func matchesSearch(sp Species, search string) bool {
	for _, candidate := range []string{sp.CommonName, sp.ScientificName, sp.Family, sp.ArabicName} {
		if strings.Contains(strings.ToLower(candidate), search) {
			return true
		}
	}
	return false
}

func temperamentCompatible(tank, fish string) bool {
	switch tank {
	case TemperamentPeaceful:
		return fish == TemperamentPeaceful
	case TemperamentSemiAggressive:
		return fish != TemperamentAggressive
	default:
		return true
	}
}

func careRank(level string) int {
	switch level {
	case CareBeginner:
		return 0
	case CareIntermediate:
		return 1
	default:
		return 2
	}
}
