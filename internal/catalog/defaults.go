package catalog

// Skill name constants for the PMDoS registration form. The roster loader
// and the completeness check reference these directly.
const (
	SkillProjectManagement   = "Project Management"
	SkillStrategicPlanning   = "Strategic Planning"
	SkillBusinessChange      = "Business Change Management"
	SkillBusinessAnalysis    = "Business Analysis"
	SkillPortfolioManagement = "Portfolio Management"
	SkillUserRequirements    = "Development of User Requirements"
	SkillTechnologyChange    = "Technology Change Management"
	SkillAgilePrinciples     = "Understanding of Agile Principles"
	SkillAgileProjects       = "Plan and Manage Agile Projects"
	SkillSoftwareSolutions   = "Planning & Management of the Implementation of New Software Solutions"
	SkillNonProfitWork       = "Volunteering for a Non-profit Organisation"
	SkillEventsManagement    = "Events Planning and Management"
	SkillSystemsIntegration  = "Systems Integration (Business and Technical)"
)

// Default returns the built-in PMDoS skill catalog. Keyword lists mirror
// the charity intake form vocabulary this matcher was tuned against.
func Default() *Catalog {
	return &Catalog{
		Version: "2025.1",
		Skills: []Skill{
			{
				Name:     SkillProjectManagement,
				Keywords: []string{"project plan", "project management", "timeline", "deliverable", "milestone", "scope", "budget"},
			},
			{
				Name:     SkillStrategicPlanning,
				Keywords: []string{"strategic", "strategy", "planning", "vision", "mission", "long-term", "roadmap", "alignment"},
			},
			{
				Name:     SkillBusinessChange,
				Keywords: []string{"change", "transformation", "transition", "migration", "implementation", "adoption"},
			},
			{
				Name:     SkillBusinessAnalysis,
				Keywords: []string{"analysis", "requirements", "process", "workflow", "business", "assessment"},
			},
			{
				Name:     SkillPortfolioManagement,
				Keywords: []string{"portfolio", "program", "multiple projects", "prioritisation", "resource allocation"},
			},
			{
				Name:     SkillUserRequirements,
				Keywords: []string{"requirements", "user needs", "stakeholder", "specification", "functional"},
			},
			{
				Name:     SkillTechnologyChange,
				Keywords: []string{"technology", "software", "system", "digital", "IT", "technical"},
			},
			{
				Name:     SkillAgilePrinciples,
				Keywords: []string{"agile", "iterative", "flexible", "adaptive", "sprint"},
			},
			{
				Name:     SkillAgileProjects,
				Keywords: []string{"agile project", "scrum", "kanban", "sprint planning"},
			},
			{
				Name:     SkillSoftwareSolutions,
				Keywords: []string{"software implementation", "system implementation", "ERP", "accounting software", "new software"},
			},
			{
				Name:     SkillNonProfitWork,
				Keywords: []string{"non-profit", "charity", "volunteer", "community", "foundation", "NGO"},
			},
			{
				Name:     SkillEventsManagement,
				Keywords: []string{"event", "anniversary", "fundraising", "celebration", "conference"},
			},
			{
				Name:     SkillSystemsIntegration,
				Keywords: []string{"integration", "system", "platform", "interface", "technical"},
			},
		},
		CoreSkills: []string{
			SkillProjectManagement,
			SkillStrategicPlanning,
			SkillBusinessChange,
			SkillBusinessAnalysis,
			SkillPortfolioManagement,
		},
		Priority: PriorityIndicators{
			High:   []string{"urgent", "critical", "50th anniversary", "strategic", "foundation"},
			Medium: []string{"important", "essential", "significant"},
		},
		Complexity: ComplexityIndicators{
			High:   []string{"comprehensive", "national", "multiple", "complex", "integration", "strategic"},
			Medium: []string{"implementation", "development", "planning", "management"},
			Low:    []string{"simple", "basic", "guidance", "advice", "template"},
		},
		Experience: []ExperienceLevel{
			{Contains: []string{"more than 8", "8+"}, Bonus: 10},
			{Contains: []string{"4 - 8", "4-8"}, Bonus: 8},
			{Contains: []string{"1 - 3", "1-3"}, Bonus: 5},
		},
		FallbackExperienceBonus: 2,
		Interest: InterestTerms{
			Primary:        []string{"non-profit", "volunteer"},
			PrimaryBonus:   3,
			Secondary:      []string{"strategic", "planning", "change", "events"},
			SecondaryBonus: 2,
		},
		Link: LinkRules{
			PlatformDomain: "linkedin",
			ProfilePath:    "linkedin.com/in/",
			PathMarker:     "/in/",
		},
	}
}
