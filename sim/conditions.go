package sim

// Conditions carries caller-supplied exogenous shocks for a single simulated
// year. A nil map means no shocks. Models only ever read from it and never
// retain a reference across steps.
type Conditions map[string]float64

// Recognized condition keys. Unknown keys are ignored.
const (
	// CondGlobalLaborDemand shifts overseas worker growth (services model).
	CondGlobalLaborDemand = "global_labor_demand"
	// CondDestinationShock scales remittance inflow after computation.
	CondDestinationShock = "destination_economy_shock"
	// CondGlobalTourismGrowth shifts tourist arrival growth.
	CondGlobalTourismGrowth = "global_tourism_growth"
	// CondGlobalOutsourcingDemand shifts BPO export growth.
	CondGlobalOutsourcingDemand = "global_outsourcing_demand"
	// CondGlobalFDIFlows shifts service FDI and investment FDI growth.
	CondGlobalFDIFlows = "global_fdi_flows"
	// CondGlobalEconomicGrowth shifts GDP growth.
	CondGlobalEconomicGrowth = "global_economic_growth"
	// CondMonetaryConditions shifts the domestic investment rate.
	CondMonetaryConditions = "monetary_conditions"
	// CondPolicyPressure shifts the investment policy index.
	CondPolicyPressure = "investment_policy_pressure"
)

// scaled returns value(key) * factor when key is present, otherwise 0.
// Conditional terms in the growth equations all reduce to this shape.
func (c Conditions) scaled(key string, factor float64) float64 {
	if c == nil {
		return 0
	}
	v, ok := c[key]
	if !ok {
		return 0
	}
	return v * factor
}
