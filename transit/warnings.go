package transit

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningUnknownRoute = "unknown_route"
	WarningUnknownTrip  = "unknown_trip"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects data-quality warnings during one query and
// outputs consolidated summaries instead of one log line per entity.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{warnings: make(map[string]*warningInfo)}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{examples: make([]string, 0, 3)}
	}
	info := w.warnings[warningType]
	info.count++
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(source string) {
	for warningType, info := range w.warnings {
		log.Printf("%s", w.formatWarningMessage(warningType, source, info))
	}
}

func (w *WarningAggregator) formatWarningMessage(warningType, source string, info *warningInfo) string {
	var description, action string
	switch warningType {
	case WarningUnknownRoute:
		description = "updates referencing routes absent from the static catalog"
		action = "Dropping these route groups from the response"
	case WarningUnknownTrip:
		description = "trips absent from the static catalog"
		action = "Building response with empty headsign"
	default:
		description = "unknown issue"
		action = "Building response with fallback behavior"
	}
	return fmt.Sprintf("Feed %s has %s (%d occurrences). %s. Examples: %s",
		source, description, info.count, action, strings.Join(info.examples, ", "))
}
