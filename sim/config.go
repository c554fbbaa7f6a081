package sim

// Configuration for the three models. Every numeric parameter has a
// documented default applied by the normalize() methods; a zero value in a
// loaded scenario file means "use the default". Scenario files therefore
// cannot request a literal zero for these parameters, which matches how the
// models use them (all are strictly positive or strictly negative effects).

// SectorConfig seeds one export sector of the structural model.
type SectorConfig struct {
	Value              float64 `yaml:"value"`                // export value, billion USD (> 0)
	Complexity         float64 `yaml:"complexity"`           // product complexity score [0,1]
	ValueChainPosition float64 `yaml:"value_chain_position"` // upgrading score [0,1]
}

// StructuralConfig groups parameters for the StructuralTransformationModel.
type StructuralConfig struct {
	ExportSectors              map[string]SectorConfig `yaml:"export_sectors,omitempty"`
	InitialCapabilityIndex     float64                 `yaml:"initial_capability_index"`     // default 0.35
	InitialPolicyEffectiveness float64                 `yaml:"initial_policy_effectiveness"` // default 0.5
	ExportGrowthScale          float64                 `yaml:"export_growth_scale"`          // scales synthetic export growth, default 1

	// Optional historical data sources. Empty paths leave the model in
	// synthetic-only mode.
	TradeDataPath string `yaml:"trade_data_path,omitempty"` // product-level trade CSV for the sector mapper
	YearDataPath  string `yaml:"year_data_path,omitempty"`  // pre-aggregated year/sector/export_value CSV
	WorkbookPath  string `yaml:"workbook_path,omitempty"`   // Excel workbook with one sheet per year
}

// ServicesConfig groups parameters for the ServicesTradeModel.
type ServicesConfig struct {
	InitialRemittanceInflow    float64 `yaml:"initial_remittance_inflow"`    // billion USD, default 18.0
	InitialOverseasWorkers     float64 `yaml:"initial_overseas_workers"`     // million people, default 8.0
	InitialTourismEarnings     float64 `yaml:"initial_tourism_earnings"`     // billion USD, default 0.5
	InitialTouristArrivals     float64 `yaml:"initial_tourist_arrivals"`     // million people, default 0.8
	InitialBPOExports          float64 `yaml:"initial_bpo_exports"`          // billion USD, default 1.2
	InitialProfessionalExports float64 `yaml:"initial_professional_exports"` // billion USD, default 0.5
	InitialServiceFDI          float64 `yaml:"initial_service_fdi"`          // billion USD, default 1.0

	WorkerGrowthRate       float64 `yaml:"worker_growth_rate"`       // default 0.02
	WorkerSkillImprovement float64 `yaml:"worker_skill_improvement"` // per-worker remittance growth base, default 0.01

	TouristArrivalGrowth  float64 `yaml:"tourist_arrival_growth"`  // default 0.12
	TourismInfrastructure float64 `yaml:"tourism_infrastructure"`  // default 0.02
	TourismMarketing      float64 `yaml:"tourism_marketing"`       // default 0.04
	TouristSpendingGrowth float64 `yaml:"tourist_spending_growth"` // default 0.04

	BPOGrowthRate              float64 `yaml:"bpo_growth_rate"`              // default 0.18
	DigitalInfrastructureIndex float64 `yaml:"digital_infrastructure_index"` // default 0.15, enters growth at x0.2
	BPOSkillDevelopment        float64 `yaml:"bpo_skill_development"`        // default 0.02
	BPOCompetitivePosition     float64 `yaml:"bpo_competitive_position"`     // default 0.03

	ProfessionalGrowthRate float64 `yaml:"professional_growth_rate"` // default 0.17
	InstitutionalQuality   float64 `yaml:"institutional_quality"`    // default 0.01
	RegionalIntegration    float64 `yaml:"regional_integration"`     // default 0.02

	ServiceFDIGrowthRate  float64 `yaml:"service_fdi_growth_rate"` // default 0.07
	BusinessEnvironment   float64 `yaml:"business_environment"`    // default 0.01
	DomesticMarketGrowth  float64 `yaml:"domestic_market_growth"`  // default 0.03
	ServiceLiberalization float64 `yaml:"service_liberalization"`  // default 0.02
}

// InvestmentConfig groups parameters for the InvestmentModel.
type InvestmentConfig struct {
	InitialGDP    float64 `yaml:"initial_gdp"`     // billion USD, default 350
	GDPGrowthRate float64 `yaml:"gdp_growth_rate"` // default 0.06

	InitialFDIInflow        float64            `yaml:"initial_fdi_inflow"`                   // billion USD, default 3.5
	FDIBaseGrowth           float64            `yaml:"fdi_base_growth"`                      // default 0.09
	InfrastructureQuality   float64            `yaml:"infrastructure_quality"`               // default 0.4
	RegionalCompetitiveness float64            `yaml:"regional_competitiveness"`             // default -0.02
	FDISectors              map[string]float64 `yaml:"fdi_sectors,omitempty"`
	FDIPolicySectorEmphasis string             `yaml:"fdi_policy_sector_emphasis,omitempty"` // "manufacturing", "services", "energy", "infrastructure"

	InitialDomesticRate float64            `yaml:"initial_domestic_investment_rate"` // fraction of GDP, default 0.32
	DomesticRateChange  float64            `yaml:"domestic_investment_rate_change"`  // default 0.002
	InterestRate        float64            `yaml:"interest_rate"`                    // default 0.08
	BusinessConfidence  float64            `yaml:"business_confidence"`              // default 0.6
	DomesticSectors     map[string]float64 `yaml:"domestic_sectors,omitempty"`
	DevelopmentStage    string             `yaml:"development_stage,omitempty"`      // "early_industrial" (default), "industrial", "post_industrial"

	InitialActiveSEZs     int     `yaml:"initial_active_sezs"`           // default 8
	InitialSEZUtilization float64 `yaml:"initial_sez_utilization"`       // default 0.40
	NewSEZProbability     float64 `yaml:"annual_new_sez_probability"`    // default 0.4
	SEZUtilizationBase    float64 `yaml:"sez_utilization_improvement"`   // default 0.015
	ExportPerSEZ          float64 `yaml:"export_per_fully_utilized_sez"` // billion USD, default 0.3

	InitialPolicyIndex  float64 `yaml:"initial_investment_policy_index"`   // default 0.55
	InitialRestrictions float64 `yaml:"initial_repatriation_restrictions"` // default 0.40
	InitialIncentives   float64 `yaml:"initial_investment_incentives"`     // default 0.50
}

// Config is the full kernel configuration consumed by NewEngine.
type Config struct {
	Seed      int64 `yaml:"seed"`
	StartYear int   `yaml:"start_year"`
	EndYear   int   `yaml:"end_year"`

	Structural StructuralConfig `yaml:"structural"`
	Services   ServicesConfig   `yaml:"services"`
	Investment InvestmentConfig `yaml:"investment"`
}

// defaultExportSectors seeds the structural model when a scenario does not
// define its own sector table. Values approximate Bangladesh's export mix.
func defaultExportSectors() map[string]SectorConfig {
	return map[string]SectorConfig{
		"rmg":               {Value: 38.0, Complexity: 0.3, ValueChainPosition: 0.25},
		"leather":           {Value: 1.8, Complexity: 0.4, ValueChainPosition: 0.3},
		"jute":              {Value: 1.2, Complexity: 0.2, ValueChainPosition: 0.4},
		"frozen_food":       {Value: 0.7, Complexity: 0.3, ValueChainPosition: 0.35},
		"pharma":            {Value: 0.16, Complexity: 0.7, ValueChainPosition: 0.45},
		"it_services":       {Value: 1.3, Complexity: 0.8, ValueChainPosition: 0.6},
		"light_engineering": {Value: 0.5, Complexity: 0.5, ValueChainPosition: 0.4},
		"agro_processing":   {Value: 0.8, Complexity: 0.4, ValueChainPosition: 0.35},
		"home_textiles":     {Value: 1.0, Complexity: 0.35, ValueChainPosition: 0.3},
		"shipbuilding":      {Value: 0.3, Complexity: 0.6, ValueChainPosition: 0.5},
	}
}

func defaultFDISectors() map[string]float64 {
	return map[string]float64{
		"manufacturing":  0.45,
		"services":       0.30,
		"energy":         0.15,
		"infrastructure": 0.10,
	}
}

func defaultDomesticSectors() map[string]float64 {
	return map[string]float64{
		"manufacturing":  0.30,
		"services":       0.35,
		"agriculture":    0.15,
		"infrastructure": 0.20,
	}
}

// orZero returns def when v is zero.
func orZero(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func (c *StructuralConfig) normalize() {
	if len(c.ExportSectors) == 0 {
		c.ExportSectors = defaultExportSectors()
	}
	c.InitialCapabilityIndex = orZero(c.InitialCapabilityIndex, 0.35)
	c.InitialPolicyEffectiveness = orZero(c.InitialPolicyEffectiveness, 0.5)
	c.ExportGrowthScale = orZero(c.ExportGrowthScale, 1)
}

func (c *ServicesConfig) normalize() {
	c.InitialRemittanceInflow = orZero(c.InitialRemittanceInflow, 18.0)
	c.InitialOverseasWorkers = orZero(c.InitialOverseasWorkers, 8.0)
	c.InitialTourismEarnings = orZero(c.InitialTourismEarnings, 0.5)
	c.InitialTouristArrivals = orZero(c.InitialTouristArrivals, 0.8)
	c.InitialBPOExports = orZero(c.InitialBPOExports, 1.2)
	c.InitialProfessionalExports = orZero(c.InitialProfessionalExports, 0.5)
	c.InitialServiceFDI = orZero(c.InitialServiceFDI, 1.0)

	c.WorkerGrowthRate = orZero(c.WorkerGrowthRate, 0.02)
	c.WorkerSkillImprovement = orZero(c.WorkerSkillImprovement, 0.01)

	c.TouristArrivalGrowth = orZero(c.TouristArrivalGrowth, 0.12)
	c.TourismInfrastructure = orZero(c.TourismInfrastructure, 0.02)
	c.TourismMarketing = orZero(c.TourismMarketing, 0.04)
	c.TouristSpendingGrowth = orZero(c.TouristSpendingGrowth, 0.04)

	c.BPOGrowthRate = orZero(c.BPOGrowthRate, 0.18)
	c.DigitalInfrastructureIndex = orZero(c.DigitalInfrastructureIndex, 0.15)
	c.BPOSkillDevelopment = orZero(c.BPOSkillDevelopment, 0.02)
	c.BPOCompetitivePosition = orZero(c.BPOCompetitivePosition, 0.03)

	c.ProfessionalGrowthRate = orZero(c.ProfessionalGrowthRate, 0.17)
	c.InstitutionalQuality = orZero(c.InstitutionalQuality, 0.01)
	c.RegionalIntegration = orZero(c.RegionalIntegration, 0.02)

	c.ServiceFDIGrowthRate = orZero(c.ServiceFDIGrowthRate, 0.07)
	c.BusinessEnvironment = orZero(c.BusinessEnvironment, 0.01)
	c.DomesticMarketGrowth = orZero(c.DomesticMarketGrowth, 0.03)
	c.ServiceLiberalization = orZero(c.ServiceLiberalization, 0.02)
}

func (c *InvestmentConfig) normalize() {
	c.InitialGDP = orZero(c.InitialGDP, 350)
	c.GDPGrowthRate = orZero(c.GDPGrowthRate, 0.06)

	c.InitialFDIInflow = orZero(c.InitialFDIInflow, 3.5)
	c.FDIBaseGrowth = orZero(c.FDIBaseGrowth, 0.09)
	c.InfrastructureQuality = orZero(c.InfrastructureQuality, 0.4)
	c.RegionalCompetitiveness = orZero(c.RegionalCompetitiveness, -0.02)
	if len(c.FDISectors) == 0 {
		c.FDISectors = defaultFDISectors()
	}

	c.InitialDomesticRate = orZero(c.InitialDomesticRate, 0.32)
	c.DomesticRateChange = orZero(c.DomesticRateChange, 0.002)
	c.InterestRate = orZero(c.InterestRate, 0.08)
	c.BusinessConfidence = orZero(c.BusinessConfidence, 0.6)
	if len(c.DomesticSectors) == 0 {
		c.DomesticSectors = defaultDomesticSectors()
	}
	if c.DevelopmentStage == "" {
		c.DevelopmentStage = "early_industrial"
	}

	if c.InitialActiveSEZs == 0 {
		c.InitialActiveSEZs = 8
	}
	c.InitialSEZUtilization = orZero(c.InitialSEZUtilization, 0.40)
	c.NewSEZProbability = orZero(c.NewSEZProbability, 0.4)
	c.SEZUtilizationBase = orZero(c.SEZUtilizationBase, 0.015)
	c.ExportPerSEZ = orZero(c.ExportPerSEZ, 0.3)

	c.InitialPolicyIndex = orZero(c.InitialPolicyIndex, 0.55)
	c.InitialRestrictions = orZero(c.InitialRestrictions, 0.40)
	c.InitialIncentives = orZero(c.InitialIncentives, 0.50)
}

// Normalize fills every unset field of the configuration with its documented
// default. Idempotent.
func (c *Config) Normalize() {
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.StartYear == 0 {
		c.StartYear = 2025
	}
	if c.EndYear == 0 {
		c.EndYear = 2050
	}
	c.Structural.normalize()
	c.Services.normalize()
	c.Investment.normalize()
}

// DefaultConfig returns a fully-populated baseline configuration.
func DefaultConfig() Config {
	var c Config
	c.Normalize()
	return c
}
