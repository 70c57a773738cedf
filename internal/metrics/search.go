package metrics

import (
	"sort"
	"strings"
)

// Supports exact match or prefix match. Empty query matches all.
func matchesNamespace(metricNS, queryNS []string) (matches bool) {
	if len(queryNS) == 0 {
		matches = true
		return
	}
	if len(metricNS) < len(queryNS) {
		return
	}
	for i := 0; i < len(queryNS); i++ {
		if metricNS[i] != queryNS[i] {
			return
		}
	}
	matches = true
	return
}

// Returns all metrics matching given name and namespace prefix, ordered by namespace then name.
// If name is empty, returns all names.
// If namespacePrefix is empty, returns all namespaces.
func (registry *Registry) Search(name string, namespacePrefix []string) (results []Metric) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	var namespaces []string
	for nsStr := range registry.metrics {
		if !matchesNamespace(strings.Split(nsStr, "/"), namespacePrefix) {
			continue
		}
		namespaces = append(namespaces, nsStr)
	}
	sort.Strings(namespaces)

	for _, nsStr := range namespaces {
		metricsMap := registry.metrics[nsStr]

		var names []string
		for metricName := range metricsMap {
			if name != "" && metricName != name {
				continue
			}
			names = append(names, metricName)
		}
		sort.Strings(names)

		for _, metricName := range names {
			results = append(results, metricsMap[metricName])
		}
	}
	return
}

// Sums all unsigned integer metrics with the given name under a namespace prefix
func (registry *Registry) Total(name string, namespacePrefix []string) (total uint64) {
	for _, metric := range registry.Search(name, namespacePrefix) {
		value, ok := metric.Value.Raw.(uint64)
		if !ok {
			continue
		}
		total += value
	}
	return
}
