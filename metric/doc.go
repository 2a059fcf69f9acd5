// Package metric provides the pluggable scoring strategy shared by all
// similarity-search backends. A Metric turns a pair of vectors into a score
// and declares whether higher scores mean closer; backends rank candidates
// with it instead of hard-coding a distance function.
package metric
