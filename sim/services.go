package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Metric names tracked by the services model.
const (
	MetricRemittanceInflow    = "remittance_inflow"
	MetricOverseasWorkers     = "overseas_workers"
	MetricTourismEarnings     = "tourism_earnings"
	MetricTouristArrivals     = "tourist_arrivals"
	MetricBPOExports          = "business_process_exports"
	MetricProfessionalExports = "professional_services_exports"
	MetricServiceFDI          = "service_fdi_inflow"
)

// ServicesSnapshot is the per-year result of the services trade model.
type ServicesSnapshot struct {
	RemittanceInflow    float64 `json:"remittance_inflow"`
	OverseasWorkers     float64 `json:"overseas_workers"`
	TourismEarnings     float64 `json:"tourism_earnings"`
	TouristArrivals     float64 `json:"tourist_arrivals"`
	BPOExports          float64 `json:"business_process_exports"`
	ProfessionalExports float64 `json:"professional_services_exports"`
	ServiceFDI          float64 `json:"service_fdi_inflow"`
}

// ServicesTradeModel evolves four independent service-trade series
// (remittances, tourism, cross-border business services, service FDI) with
// multiplicative stochastic growth. Series are deliberately unclamped:
// long-horizon compounding is part of the model, and bounded inputs keep
// values finite and positive.
type ServicesTradeModel struct {
	cfg ServicesConfig
	rng *rand.Rand

	overseasWorkers     float64
	remittancePerWorker float64
	remittanceInflow    float64
	touristArrivals     float64
	spendPerTourist     float64
	tourismEarnings     float64
	bpoExports          float64
	professionalExports float64
	serviceFDI          float64

	metrics *MetricsLog
}

// NewServicesTradeModel seeds the series from cfg. The per-worker remittance
// and per-tourist spend are derived from the configured aggregates.
func NewServicesTradeModel(cfg ServicesConfig, rng *rand.Rand) *ServicesTradeModel {
	cfg.normalize()
	m := &ServicesTradeModel{
		cfg:                 cfg,
		rng:                 rng,
		overseasWorkers:     cfg.InitialOverseasWorkers,
		remittanceInflow:    cfg.InitialRemittanceInflow,
		touristArrivals:     cfg.InitialTouristArrivals,
		tourismEarnings:     cfg.InitialTourismEarnings,
		bpoExports:          cfg.InitialBPOExports,
		professionalExports: cfg.InitialProfessionalExports,
		serviceFDI:          cfg.InitialServiceFDI,
		metrics: NewMetricsLog(
			MetricRemittanceInflow,
			MetricOverseasWorkers,
			MetricTourismEarnings,
			MetricTouristArrivals,
			MetricBPOExports,
			MetricProfessionalExports,
			MetricServiceFDI,
		),
	}
	if m.overseasWorkers > 0 {
		m.remittancePerWorker = m.remittanceInflow / m.overseasWorkers
	}
	if m.touristArrivals > 0 {
		m.spendPerTourist = m.tourismEarnings / m.touristArrivals
	}
	return m
}

// Metrics exposes the model's metric histories.
func (m *ServicesTradeModel) Metrics() *MetricsLog { return m.metrics }

// SimulateStep advances every series by one year in a fixed order and
// appends the seven tracked quantities to the history.
func (m *ServicesTradeModel) SimulateStep(year int, conditions Conditions) ServicesSnapshot {
	m.simulateRemittances(conditions)
	m.simulateTourism(conditions)
	m.simulateBusinessProcess(conditions)
	m.simulateProfessional()
	m.simulateServiceFDI(conditions)

	snap := ServicesSnapshot{
		RemittanceInflow:    m.remittanceInflow,
		OverseasWorkers:     m.overseasWorkers,
		TourismEarnings:     m.tourismEarnings,
		TouristArrivals:     m.touristArrivals,
		BPOExports:          m.bpoExports,
		ProfessionalExports: m.professionalExports,
		ServiceFDI:          m.serviceFDI,
	}
	m.metrics.Append(MetricRemittanceInflow, snap.RemittanceInflow)
	m.metrics.Append(MetricOverseasWorkers, snap.OverseasWorkers)
	m.metrics.Append(MetricTourismEarnings, snap.TourismEarnings)
	m.metrics.Append(MetricTouristArrivals, snap.TouristArrivals)
	m.metrics.Append(MetricBPOExports, snap.BPOExports)
	m.metrics.Append(MetricProfessionalExports, snap.ProfessionalExports)
	m.metrics.Append(MetricServiceFDI, snap.ServiceFDI)

	logrus.Debugf("year %d services: remittances=%.2f tourism=%.2f bpo=%.2f professional=%.2f fdi=%.2f",
		year, snap.RemittanceInflow, snap.TourismEarnings, snap.BPOExports,
		snap.ProfessionalExports, snap.ServiceFDI)
	return snap
}

// simulateRemittances grows the overseas workforce and the average
// remittance per worker, then recomputes total inflow, scaled by any
// destination-economy shock for the year.
func (m *ServicesTradeModel) simulateRemittances(conditions Conditions) {
	workerGrowth := m.cfg.WorkerGrowthRate +
		conditions.scaled(CondGlobalLaborDemand, 0.1) +
		uniform(m.rng, -0.03, 0.03)
	m.overseasWorkers *= 1 + workerGrowth

	perWorkerGrowth := m.cfg.WorkerSkillImprovement + uniform(m.rng, -0.02, 0.02)
	m.remittancePerWorker *= 1 + perWorkerGrowth

	m.remittanceInflow = m.overseasWorkers * m.remittancePerWorker
	m.remittanceInflow *= 1 + conditions.scaled(CondDestinationShock, 1)
}

// simulateTourism grows arrivals and spend per tourist independently; the
// earnings series is their product.
func (m *ServicesTradeModel) simulateTourism(conditions Conditions) {
	arrivalGrowth := m.cfg.TouristArrivalGrowth +
		m.cfg.TourismInfrastructure +
		m.cfg.TourismMarketing +
		conditions.scaled(CondGlobalTourismGrowth, 0.15) +
		uniform(m.rng, -0.01, 0.02)
	m.touristArrivals *= 1 + arrivalGrowth

	spendGrowth := m.cfg.TouristSpendingGrowth + uniform(m.rng, -0.03, 0.04)
	m.spendPerTourist *= 1 + spendGrowth

	m.tourismEarnings = m.touristArrivals * m.spendPerTourist
}

func (m *ServicesTradeModel) simulateBusinessProcess(conditions Conditions) {
	growth := m.cfg.BPOGrowthRate +
		m.cfg.DigitalInfrastructureIndex*0.2 +
		m.cfg.BPOSkillDevelopment +
		conditions.scaled(CondGlobalOutsourcingDemand, 0.04) +
		m.cfg.BPOCompetitivePosition +
		uniform(m.rng, -0.02, 0.04)
	m.bpoExports *= 1 + growth
}

func (m *ServicesTradeModel) simulateProfessional() {
	growth := m.cfg.ProfessionalGrowthRate +
		m.cfg.InstitutionalQuality +
		m.cfg.RegionalIntegration +
		uniform(m.rng, -0.03, 0.01)
	m.professionalExports *= 1 + growth
}

func (m *ServicesTradeModel) simulateServiceFDI(conditions Conditions) {
	growth := m.cfg.ServiceFDIGrowthRate +
		m.cfg.BusinessEnvironment +
		m.cfg.DomesticMarketGrowth +
		m.cfg.ServiceLiberalization +
		conditions.scaled(CondGlobalFDIFlows, 0.2) +
		uniform(m.rng, -0.15, 0.25)
	m.serviceFDI *= 1 + growth
}

// TotalServiceExports sums cross-border services (BPO + professional) and
// remittances at the given history index. Negative indices address from the
// end (-1 = latest). ok is false when no step has been simulated yet or the
// index is out of range.
func (m *ServicesTradeModel) TotalServiceExports(idx int) (float64, bool) {
	bpo, ok := m.metrics.At(MetricBPOExports, idx)
	if !ok {
		return 0, false
	}
	professional, ok := m.metrics.At(MetricProfessionalExports, idx)
	if !ok {
		return 0, false
	}
	remittances, ok := m.metrics.At(MetricRemittanceInflow, idx)
	if !ok {
		return 0, false
	}
	return bpo + professional + remittances, true
}
