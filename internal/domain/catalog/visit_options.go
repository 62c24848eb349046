package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cfp_agreements/internal/domain/entities"
)

const (
	encodingOneOff   = "ONE-OFF"
	encodingReactive = "N/A"
)

var orSeparator = regexp.MustCompile(`(?i)\s+or\s+`)

// ParseVisitOptions turns the schedule's visit encoding into a frequency
// policy. "ONE-OFF" and "N/A" map to one-off and reactive items; anything
// else must be a list of positive integers separated by commas or "OR",
// e.g. "1,2 OR 4".
func ParseVisitOptions(raw string) (entities.FrequencyPolicy, error) {
	s := strings.TrimSpace(raw)
	switch strings.ToUpper(s) {
	case encodingOneOff:
		return entities.FrequencyPolicy{Kind: entities.FrequencyOneOff}, nil
	case encodingReactive:
		return entities.FrequencyPolicy{Kind: entities.FrequencyReactive}, nil
	case "":
		return entities.FrequencyPolicy{}, fmt.Errorf("empty visit options")
	}

	parts := strings.Split(orSeparator.ReplaceAllString(s, ","), ",")
	visits := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil {
			return entities.FrequencyPolicy{}, fmt.Errorf("unknown visit options %q", raw)
		}
		if n <= 0 {
			return entities.FrequencyPolicy{}, fmt.Errorf("visit count must be positive in %q", raw)
		}
		if len(visits) > 0 && n <= visits[len(visits)-1] {
			return entities.FrequencyPolicy{}, fmt.Errorf("visit counts must be strictly ascending in %q", raw)
		}
		visits = append(visits, n)
	}
	return entities.FrequencyPolicy{Kind: entities.FrequencyPeriodic, Visits: visits}, nil
}
