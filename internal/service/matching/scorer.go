package matching

import "sort"

// Scorer упорядочивает кандидатов лексикографически:
//  1. preferred-окно выше обычного;
//  2. рейтинг по убыванию;
//  3. меньше активных назначений на неделе смены;
//  4. id райдера по возрастанию — детерминированный tie-break.
//
// Никакой случайности: одинаковый вход всегда дает одинаковый порядок.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

func (s *Scorer) Rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Preferred != b.Preferred {
			return a.Preferred
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.WeekLoad != b.WeekLoad {
			return a.WeekLoad < b.WeekLoad
		}
		return a.RiderID < b.RiderID
	})

	return ranked
}
