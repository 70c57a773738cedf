package metrics

import "strings"

// Adds batch of metrics, replacing any earlier value with the same namespace and name
func (registry *Registry) Add(metrics []Metric) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	for _, metric := range metrics {
		namespace := strings.Join(metric.Namespace, "/")

		// Ensure namespace map is initialized
		if registry.metrics[namespace] == nil {
			registry.metrics[namespace] = make(map[string]Metric)
		}

		registry.metrics[namespace][metric.Name] = metric
	}
}
