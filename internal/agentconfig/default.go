package agentconfig

// DefaultPort is the port the agent listens on when hosted.
const DefaultPort = 5000

type param struct {
	name string
	spec ParamSpec
}

// builtin is never handed out directly; Default returns a copy.
var builtin = AgentConfig{
	Name:        "aptocom-proposal-agent",
	Description: "AI-powered proposal evaluation system for AptoCom DAO using LangChain and Google Gemini. Scores proposals on 8 criteria and calculates reserve prices.",
	ReadmePath:  "./README.md",
	Env:         "./.env",
	Params: mustParams(
		param{"title", ParamSpec{ParamString, "Proposal title", true}},
		param{"description", ParamSpec{ParamString, "Detailed proposal description", true}},
		param{"requested_amount", ParamSpec{ParamNumber, "Amount of ACT tokens requested", true}},
		param{"team_info", ParamSpec{ParamString, "Information about the team (experience, members, track record)", false}},
		param{"budget_breakdown", ParamSpec{ParamString, "Detailed breakdown of how funds will be used", false}},
		param{"milestones", ParamSpec{ParamString, "Project milestones and timeline", false}},
		param{"expected_roi", ParamSpec{ParamString, "Expected return on investment", false}},
		param{"risk_factors", ParamSpec{ParamString, "Identified risks and mitigation strategies", false}},
		param{"proposal_id", ParamSpec{ParamString, "Proposal ID for progress check requests", false}},
		param{"milestone_number", ParamSpec{ParamNumber, "Milestone number for progress check", false}},
	),
	Port: DefaultPort,
	Tags: []string{"LangChain", "AI", "DAO", "Proposal", "Gemini", "Aptos", "Governance", "TypeScript"},
}

// Default returns a copy of the built-in AptoCom proposal agent descriptor.
// Callers may modify the result freely.
func Default() AgentConfig {
	return builtin.Clone()
}

func mustParams(entries ...param) Params {
	var p Params
	for _, e := range entries {
		if err := p.Set(e.name, e.spec); err != nil {
			panic(err)
		}
	}
	return p
}
