// Package rating holds the bank's master scales mapping obligor and
// facility ratings to credit-risk parameters. The tables are fixed,
// process-wide configuration data: they are populated once at init and
// never mutated, so any number of concurrent evaluations may read them
// without synchronization.
package rating

import "strconv"

// pdScale maps a PD rating (1 = strongest obligor, 13 = near-certain
// default) to an annual probability of default.
var pdScale = map[int]float64{
	1:  0.0010,
	2:  0.0025,
	3:  0.0050,
	4:  0.0100,
	5:  0.0200,
	6:  0.0400,
	7:  0.0800,
	8:  0.1500,
	9:  0.2500,
	10: 0.4000,
	11: 0.6000,
	12: 0.8000,
	13: 0.9500,
}

// lgdScale maps a facility grade (A = best collateral, H = effectively
// unsecured) to a loss-given-default fraction. Grades step evenly from
// 0.20 to 0.90; grade C sits at 0.40.
var lgdScale = map[string]float64{
	"A": 0.20,
	"B": 0.30,
	"C": 0.40,
	"D": 0.50,
	"E": 0.60,
	"F": 0.70,
	"G": 0.80,
	"H": 0.90,
}

// LookupPD returns the probability of default for a PD rating code.
func LookupPD(code int) (float64, error) {
	pd, ok := pdScale[code]
	if !ok {
		return 0, &InvalidRatingError{Kind: "PD", Code: strconv.Itoa(code)}
	}
	return pd, nil
}

// LookupLGD returns the loss-given-default fraction for a facility grade.
func LookupLGD(grade string) (float64, error) {
	lgd, ok := lgdScale[grade]
	if !ok {
		return 0, &InvalidRatingError{Kind: "LGD", Code: grade}
	}
	return lgd, nil
}

// PDCodes returns the valid PD rating codes in ascending order.
func PDCodes() []int {
	codes := make([]int, 0, len(pdScale))
	for c := 1; c <= len(pdScale); c++ {
		codes = append(codes, c)
	}
	return codes
}

// LGDGrades returns the valid LGD grades in ascending order.
func LGDGrades() []string {
	return []string{"A", "B", "C", "D", "E", "F", "G", "H"}
}

