package domain

import "strings"

// WorkUnit pairs a pixel with its resolved primary ticket. A unit with an
// empty TicketKey never reaches the query engine.
type WorkUnit struct {
	Pixel     Pixel
	TicketKey string
}

// Resolved reports whether a primary ticket was found for the pixel.
func (w WorkUnit) Resolved() bool {
	return w.TicketKey != ""
}

// Parties are the people read from a measurement ticket. Empty means unknown.
type Parties struct {
	Reporter    string
	LeadAnalyst string
}

// ParentLink extends a work unit with the measurement ticket found through
// the parent relationship of the primary ticket.
type ParentLink struct {
	Unit              WorkUnit
	MeasurementTicket string
	Parties           Parties
}

// HasMeasurement reports whether a measurement ticket was found.
func (l ParentLink) HasMeasurement() bool {
	return l.MeasurementTicket != ""
}

// Addressing holds the fallbacks used when mentioning people on a ticket.
type Addressing struct {
	// TeamAlias is mentioned when neither a reporter nor an analyst is known.
	TeamAlias string
	// AnalystAliases maps a lead analyst display name to a fixed user alias.
	AnalystAliases map[string]string
}

// Attention returns the user names to mention for the given parties.
// The reporter comes first, then the lead analyst (through a fixed alias
// when one is configured), and the team alias only when both are unknown.
func (a Addressing) Attention(p Parties) []string {
	var names []string
	if p.Reporter != "" {
		names = append(names, userName(p.Reporter))
	}
	if p.LeadAnalyst != "" {
		if alias, ok := a.AnalystAliases[p.LeadAnalyst]; ok && alias != "" {
			names = append(names, alias)
		} else {
			names = append(names, userName(p.LeadAnalyst))
		}
	}
	if len(names) == 0 && a.TeamAlias != "" {
		names = append(names, a.TeamAlias)
	}
	return names
}

// userName converts a display name into the dotted user name form.
func userName(display string) string {
	return strings.ReplaceAll(strings.TrimSpace(display), " ", ".")
}
