package match

import (
	"slices"
	"sort"

	"symbol-mapper/internal/model"
)

// Kind is the entity kind of a candidate.
type Kind int

const (
	KindClass Kind = iota
	KindMethod
	KindField
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindMethod:
		return "method"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// Candidate is an entity whose name in Source matched a query.
type Candidate struct {
	Kind   Kind
	Class  *model.Class
	Method *model.Method // set for KindMethod
	Field  *model.Field  // set for KindField

	Source model.NameSource
	Match  MatchResult
	// Score is the similarity of the matched name to the search term.
	Score float64
	// Fuzzy is set when the candidate came from the similarity fallback
	// rather than a substring match.
	Fuzzy bool
}

// Names returns the names of the matched entity.
func (c *Candidate) Names() *model.Names {
	switch c.Kind {
	case KindMethod:
		return &c.Method.Names
	case KindField:
		return &c.Field.Names
	default:
		return &c.Class.Names
	}
}

// Key identifies the entity by intermediary names.
func (c *Candidate) Key() string {
	switch c.Kind {
	case KindMethod:
		return c.Class.Intermediary + "." + c.Method.Intermediary + c.Method.IntermediaryDesc
	case KindField:
		return c.Class.Intermediary + "." + c.Field.Intermediary
	default:
		return c.Class.Intermediary
	}
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Confidence thresholds.
const (
	// DefaultMinSimilarity is the lowest score kept by the similarity fallback.
	DefaultMinSimilarity = 0.5
	// DefaultMinScore is the minimum score for an unambiguous answer.
	DefaultMinScore = 0.7
	// DefaultMinGap is the minimum score gap between top candidates.
	DefaultMinGap = 0.15
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)

// AllSources lists every name slot, in the order ties are broken.
var AllSources = []model.NameSource{
	model.SourceMapped,
	model.SourceIntermediary,
	model.SourceObfMerged,
	model.SourceObfClient,
	model.SourceObfServer,
}

// SearchOptions configure Search.
type SearchOptions struct {
	// Kinds restricts the entity kinds searched. Empty means all.
	Kinds []Kind
	// Sources restricts the name slots searched. Empty means AllSources.
	Sources []model.NameSource
	// MinSimilarity filters the similarity fallback. Zero means
	// DefaultMinSimilarity.
	MinSimilarity float64
	// Loose also scores names after identifier normalization, with and
	// without accessor prefixes, keeping the best score.
	Loose bool
	// Limit caps the result. Zero means no limit.
	Limit int
}

func (o SearchOptions) wants(k Kind) bool {
	return len(o.Kinds) == 0 || slices.Contains(o.Kinds, k)
}

func (o SearchOptions) score(name, term string) float64 {
	score := Similarity(name, term)
	if o.Loose {
		name, term = OnlySimple(name), OnlySimple(term)
		score = max(score, NormalizedLevenshteinScore(name, term), AccessorLevenshteinScore(name, term))
	}

	return score
}

// Search looks term up in every name of c's classes and members. Members
// are matched as "<owner>/<member>" in the same name slot, so a qualified
// term can name the owner. Substring matches are ranked by similarity; when
// there are none, every name scoring at least MinSimilarity is returned
// instead. Each entity appears once, with its best scoring name.
func Search(c *model.Container, term string, opts SearchOptions) CandidateList {
	sources := opts.Sources
	if len(sources) == 0 {
		sources = AllSources
	}

	minSim := opts.MinSimilarity
	if minSim <= 0 {
		minSim = DefaultMinSimilarity
	}

	var hits, fuzzy CandidateList

	consider := func(base Candidate, names *model.Names, owner *model.Names) {
		var (
			hit, near Candidate
			hasHit    bool
			hasNear   bool
		)

		for _, src := range sources {
			name, ok := names.Get(src)
			if !ok {
				continue
			}

			if owner != nil {
				name = owner.Or(src) + string(Separator) + name
			}

			if m, ok := ContainsOrMatch(name, term); ok {
				score := opts.score(m.SelfTerm, term)
				if !hasHit || score > hit.Score {
					hit = base
					hit.Source, hit.Match, hit.Score = src, m, score
					hasHit = true
				}

				continue
			}

			if hasHit {
				continue
			}

			if score := opts.score(name, term); score >= minSim && (!hasNear || score > near.Score) {
				near = base
				near.Source, near.Score, near.Fuzzy = src, score, true
				near.Match = MatchResult{MatchStr: term, SelfTerm: OnlySimple(name)}
				hasNear = true
			}
		}

		switch {
		case hasHit:
			hits = append(hits, hit)
		case hasNear:
			fuzzy = append(fuzzy, near)
		}
	}

	for _, cls := range c.Classes() {
		if opts.wants(KindClass) {
			consider(Candidate{Kind: KindClass, Class: cls}, &cls.Names, nil)
		}

		if opts.wants(KindMethod) {
			for _, m := range cls.Methods {
				consider(Candidate{Kind: KindMethod, Class: cls, Method: m}, &m.Names, &cls.Names)
			}
		}

		if opts.wants(KindField) {
			for _, f := range cls.Fields {
				consider(Candidate{Kind: KindField, Class: cls, Field: f}, &f.Names, &cls.Names)
			}
		}
	}

	result := hits
	if len(result) == 0 {
		result = fuzzy
	}

	sort.Sort(result)

	if opts.Limit > 0 {
		result = result.Top(opts.Limit)
	}

	return result
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by kind and key for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	if c[i].Kind != c[j].Kind {
		return c[i].Kind < c[j].Kind
	}

	return c[i].Key() < c[j].Key()
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}
	diff := c[0].Score - c[1].Score
	return diff < threshold
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// HighConfidence returns the best candidate if it's significantly better than alternatives.
// Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if len(c) > 1 {
		gap := c[0].Score - c[1].Score
		if gap < minGap {
			return nil
		}
	}

	return best
}
