// Package calc computes the standard ratio set from normalized financial
// figures. Pure arithmetic: no I/O, no retries, deterministic output.
package calc

// Figures maps the fixed metric vocabulary (revenue, net_income, ebitda,
// total_assets, total_liabilities, equity, debt, cash, working_capital) to
// normalized absolute values in the document's base currency unit.
type Figures map[string]float64

// Ratios maps ratio names to computed values. A key is present only when
// every input figure exists and the denominator guard holds; absence means
// insufficient data, never zero.
type Ratios map[string]float64

// ratioRule declares one ratio as data: numerator over denominator, times
// 100 when expressed as a percentage. The denominator must be strictly
// positive or the ratio is omitted.
type ratioRule struct {
	Name        string
	Numerator   string
	Denominator string
	Percent     bool
}

var ratioRules = []ratioRule{
	{"net_margin", "net_income", "revenue", true},
	{"ebitda_margin", "ebitda", "revenue", true},
	{"cash_to_debt", "cash", "debt", false},
	{"debt_to_equity", "debt", "equity", false},
	{"debt_to_assets", "debt", "total_assets", false},
	{"roe", "net_income", "equity", true},
	{"roa", "net_income", "total_assets", true},
	{"roce", "ebitda", "total_assets", true},
}

// RatioNames returns the ratio vocabulary in its fixed declaration order,
// for deterministic rendering.
func RatioNames() []string {
	names := make([]string, len(ratioRules))
	for i, r := range ratioRules {
		names[i] = r.Name
	}
	return names
}

// ComputeRatios evaluates every rule whose inputs are present and whose
// denominator is strictly positive.
func ComputeRatios(figures Figures) Ratios {
	ratios := make(Ratios)
	for _, r := range ratioRules {
		num, okNum := figures[r.Numerator]
		den, okDen := figures[r.Denominator]
		if !okNum || !okDen || den <= 0 {
			continue
		}
		v := num / den
		if r.Percent {
			v *= 100
		}
		ratios[r.Name] = v
	}
	return ratios
}
