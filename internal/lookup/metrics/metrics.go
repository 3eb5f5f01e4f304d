package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"tms/internal/lookup"
)

// Metrics exposes the size of each lookup table so a deployment can be
// checked against the expected catalog revision.
type Metrics struct {
	Entries *prometheus.GaugeVec
}

// New registers the catalog metrics on reg and records the current sizes.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tms_lookup_entries",
			Help: "Number of entries in each lookup table",
		}, []string{"set"}),
	}
	if err := reg.Register(m.Entries); err != nil {
		return nil, err
	}
	m.Record(lookup.Catalog())
	return m, nil
}

// Record sets one gauge per table in c.
func (m *Metrics) Record(c lookup.CatalogView) {
	for set, n := range c.Sizes() {
		m.Entries.WithLabelValues(set).Set(float64(n))
	}
}
