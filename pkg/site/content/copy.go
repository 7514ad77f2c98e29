package content

// Feature is one card of a feature grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
	Color       string
}

// Service is a product line shown on the services pages.
type Service struct {
	Slug     string
	Icon     string
	Title    string
	Tagline  string
	Summary  string
	Features []string
}

// Reason is one point of the "why choose us" panel.
type Reason struct {
	Icon   string
	Title  string
	Detail string
}

// Stat is a headline number.
type Stat struct {
	Value string
	Label string
}

// Hero is the banner copy of a page.
type Hero struct {
	Badge    string
	Title    string
	Accent   string
	Subtitle string
}

var LandingHero = Hero{
	Badge:    "NEW",
	Title:    "HR software that",
	Accent:   "works the way your people do",
	Subtitle: "Peoplewise brings records, payroll, documents and hiring into one platform, so HR teams spend less time on paperwork and more time on people.",
}

var ServicesHero = Hero{
	Badge:    "SERVICES",
	Title:    "One platform,",
	Accent:   "every HR workflow",
	Subtitle: "Pick the modules you need today and switch on the rest when you grow. Every module shares one employee record.",
}

var Highlights = []Feature{
	{"lucide--users", "Single Employee Record", "Every module reads and writes the same profile, so changes flow to payroll, attendance and documents at once.", "primary"},
	{"lucide--shield-check", "Compliance Built In", "Statutory rules for each country we serve are kept current by our in-house compliance team.", "secondary"},
	{"lucide--smartphone", "Self Service Everywhere", "Employees apply for leave, download payslips and update details from any device.", "accent"},
}

var Services = []Service{
	{
		Slug:    "hrms",
		Icon:    "lucide--users",
		Title:   "HRMS",
		Tagline: "Core HR",
		Summary: "Employee records, org charts, leave policies and self service in one place.",
		Features: []string{
			"Configurable employee profiles",
			"Leave and holiday policies per location",
			"Org chart and reporting lines",
		},
	},
	{
		Slug:    "payroll",
		Icon:    "lucide--wallet",
		Title:   "Payroll",
		Tagline: "Pay on time, every time",
		Summary: "Run compliant payroll with automatic tax, benefits and statutory filings.",
		Features: []string{
			"Country specific statutory deductions",
			"Bank file export and payslip delivery",
			"Full audit trail of every run",
		},
	},
	{
		Slug:    "file-manager",
		Icon:    "lucide--folder-lock",
		Title:   "File Manager",
		Tagline: "Documents without the filing cabinet",
		Summary: "Store contracts, IDs and letters with access rules that follow the employee.",
		Features: []string{
			"Role based access to sensitive files",
			"Expiry reminders for visas and certificates",
			"Letter templates with e-signature",
		},
	},
	{
		Slug:    "applicant-tracking",
		Icon:    "lucide--user-search",
		Title:   "Applicant Tracking",
		Tagline: "Hire with less back and forth",
		Summary: "Publish openings, screen candidates and schedule interviews from one pipeline.",
		Features: []string{
			"Careers page and job board posting",
			"Structured interview scorecards",
			"Offer letters generated from templates",
		},
	},
	{
		Slug:    "onboarding",
		Icon:    "lucide--clipboard-check",
		Title:   "Onboarding",
		Tagline: "Day one, ready",
		Summary: "Checklists and document collection that start the moment an offer is signed.",
		Features: []string{
			"Role based onboarding checklists",
			"Document collection before joining",
			"Equipment and access requests",
		},
	},
	{
		Slug:    "attendance",
		Icon:    "lucide--calendar-check",
		Title:   "Attendance",
		Tagline: "Time tracked, not chased",
		Summary: "Shifts, clock-ins and overtime flow straight into payroll.",
		Features: []string{
			"Geo-fenced mobile clock-in",
			"Shift rosters and swaps",
			"Overtime rules per contract",
		},
	},
}

// ServiceBySlug finds a service by its URL slug.
func ServiceBySlug(slug string) (Service, bool) {
	for _, s := range Services {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}

var Reasons = []Reason{
	{"lucide--rocket", "Live in weeks", "Our implementation team migrates your data and trains your admins, most customers go live within a month."},
	{"lucide--headset", "Local support", "Support teams in every country we operate in, in your time zone and language."},
	{"lucide--lock", "Secure by default", "Encryption at rest and in transit, single sign-on and audit logs on every plan."},
	{"lucide--plug", "Connects to your stack", "Integrations with accounting, identity and messaging tools you already use."},
}

var Stats = []Stat{
	{"1,200+", "companies"},
	{"350k", "employees paid monthly"},
	{"4", "countries"},
	{"98%", "renewal rate"},
}

// CompanySizes are the options of the demo form.
var CompanySizes = []string{"1-50", "51-200", "201-1000", "1000+"}

// Promo is the popup modal copy.
var Promo = struct {
	Title string
	Body  string
	CTA   string
}{
	Title: "Two months free",
	Body:  "Book a demo this quarter and get the first two months of any plan on us.",
	CTA:   "Book my demo",
}

// Page is the copy of a simple content page.
type Page struct {
	Title string
	Lead  string
	Body  []string
}

var Pages = map[string]Page{
	"about": {
		Title: "About Peoplewise",
		Lead:  "We build HR software for growing companies across India, the Gulf and the UK.",
		Body: []string{
			"Peoplewise started as a payroll bureau and grew into a platform when our customers asked for more than payslips.",
			"Today our teams in four countries build, implement and support every module we sell.",
		},
	},
	"pricing": {
		Title: "Pricing",
		Lead:  "Simple per employee pricing. Pay only for the modules you switch on.",
		Body: []string{
			"Core HR starts with every plan. Payroll, documents, hiring and attendance are add-ons billed per active employee.",
			"Annual plans include implementation and data migration at no extra cost.",
		},
	},
	"careers": {
		Title: "Careers",
		Lead:  "Help us make HR a little less painful for everyone.",
		Body: []string{
			"Senior roles: engineering leads, implementation managers and payroll compliance specialists.",
			"Junior roles: support associates and graduate engineers, with a structured first year programme.",
		},
	},
	"contact": {
		Title: "Contact",
		Lead:  "Talk to sales, support or our partnerships team.",
		Body: []string{
			"Sales: sales@peoplewise.example",
			"Support: support@peoplewise.example",
		},
	},
}
