package tui

type skill struct {
	name  string
	level float64
}

type role struct {
	period  string
	title   string
	summary string
}

type contact struct {
	label string
	value string
}

var (
	profileName  = "san kum"
	profileTitle = "platform & infrastructure engineer"
	about        = "I build the boring parts that keep systems up: clusters, pipelines, " +
		"observability and the tooling around them. Most of my week is Go, Terraform " +
		"and Kubernetes, with the occasional detour into simulations and terminal toys."

	skills = []skill{
		{"Go", 90},
		{"Kubernetes", 85},
		{"Terraform", 80},
		{"AWS", 75},
		{"Observability", 70},
		{"Linux", 85},
	}

	roles = []role{
		{"2023 - now", "Senior Platform Engineer", "multi-region EKS, golden paths, cost controls"},
		{"2021 - 2023", "Site Reliability Engineer", "SLOs, incident tooling, on-call automation"},
		{"2019 - 2021", "Backend Engineer", "event pipelines and internal APIs in Go"},
		{"2018 - 2019", "DevOps Intern", "CI migration and container builds"},
	}

	contacts = []contact{
		{"email", "hello@san-kum.dev"},
		{"github", "github.com/san-kum"},
		{"linkedin", "linkedin.com/in/san-kum"},
	}
)

// Section ids in page order. The nav strip lists them in the same order.
const (
	secHero       = "home"
	secAbout      = "about"
	secSkills     = "skills"
	secExperience = "experience"
	secContact    = "contact"
)

var sectionOrder = []string{secHero, secAbout, secSkills, secExperience, secContact}
