package ports

// MetricsPort receives materialization events.
type MetricsPort interface {
	SchemaFetched(success bool)
	ResourceBuilt(namespace string, mock bool)
	EmbeddedFallback(relation string)
}

// NopMetrics discards every event.
type NopMetrics struct{}

func (NopMetrics) SchemaFetched(bool)         {}
func (NopMetrics) ResourceBuilt(string, bool) {}
func (NopMetrics) EmbeddedFallback(string)    {}

var _ MetricsPort = NopMetrics{}
