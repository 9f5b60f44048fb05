package poller

import (
	"idm_exporter/internal/api"
)

// minStatDivisor is the smallest divisor that enables the statistics rotation.
const minStatDivisor = 3

type statistics struct {
	typ    api.StatisticsType
	prefix string
}

// statRotation is the order statistics pages are fetched in.
var statRotation = []statistics{
	{api.StatRuntime, "stat_runtime_"},
	{api.StatGeneratedHeat, "stat_genheat_"},
	{api.StatElectrical, "stat_elcons_"},
}

// statisticsFor selects the statistics page of a cycle. With a divisor d every
// page is fetched once per d cycles; cycles beyond the rotation fetch none.
func statisticsFor(counter, divisor uint64) (statistics, bool) {
	if divisor < minStatDivisor {
		return statistics{}, false
	}
	i := counter % divisor
	if i >= uint64(len(statRotation)) {
		return statistics{}, false
	}
	return statRotation[i], true
}
