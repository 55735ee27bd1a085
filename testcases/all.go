package testcases

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"circle":  circleCases,
	"polygon": polygonCases,
	"mixed":   mixedCases,
}
