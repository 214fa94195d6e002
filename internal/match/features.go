// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

// Feature names in the order the classifier expects them. Classifier
// artifacts declare the list they were trained on; it must equal this one.
const (
	FeatureSimilarity     = "similarity"
	FeatureAuthorMatchAll = "author_match_all"
	FeatureScore          = "score"
	FeatureRank           = "rank"
	FeatureAuthorCount    = "author_count"
)

// FeatureNames is the feature schema, in vector order.
var FeatureNames = []string{
	FeatureSimilarity,
	FeatureAuthorMatchAll,
	FeatureScore,
	FeatureRank,
	FeatureAuthorCount,
}

// Features are the comparison features extracted for one candidate.
type Features struct {
	Similarity     int
	AuthorMatchAll int
	Score          float64
	Rank           int
	AuthorCount    int
}

// Vector returns the features as a float64 slice in FeatureNames order.
func (f Features) Vector() []float64 {
	byName := map[string]float64{
		FeatureSimilarity:     float64(f.Similarity),
		FeatureAuthorMatchAll: float64(f.AuthorMatchAll),
		FeatureScore:          f.Score,
		FeatureRank:           float64(f.Rank),
		FeatureAuthorCount:    float64(f.AuthorCount),
	}
	v := make([]float64, len(FeatureNames))
	for i, name := range FeatureNames {
		v[i] = byName[name]
	}
	return v
}

// SameSchema reports whether names lists exactly the features in
// FeatureNames, in the same order.
func SameSchema(names []string) bool {
	if len(names) != len(FeatureNames) {
		return false
	}
	for i := range names {
		if names[i] != FeatureNames[i] {
			return false
		}
	}
	return true
}
