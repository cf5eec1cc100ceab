package configs

// Jira configures the ticket tracker and how tickets are looked up and
// addressed.
type Jira struct {
	URL   string `env:"URL"`
	User  string `env:"USER"`
	Token string `env:"TOKEN"`

	// Project, Type and Status restrict the pixel ticket search. Status is
	// a JQL list, e.g. ("In Progress", "Live").
	Project string `env:"PROJECT" envDefault:"CAM"`
	Type    string `env:"TYPE" envDefault:"Pixel"`
	Status  string `env:"STATUS" envDefault:"(Open, \"In Progress\")"`

	// LeadAnalystField is the custom field holding the lead analyst on
	// measurement tickets.
	LeadAnalystField string `env:"LEAD_ANALYST_FIELD" envDefault:"customfield_12325"`

	// TeamAlias is mentioned when a ticket has no known reporter or analyst.
	TeamAlias string `env:"TEAM_ALIAS" envDefault:"campaignmanagement"`
	// AnalystAliases maps analyst display names to fixed user names,
	// e.g. "Debra Eskra:deb.eskra".
	AnalystAliases map[string]string `env:"ANALYST_ALIASES" envKeyValSeparator:":"`

	// MatchLabel is added to the pixel ticket after a successful report.
	// Empty disables labelling.
	MatchLabel string `env:"MATCH_LABEL"`
}
