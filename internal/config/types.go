package config

// Config is the content document describing a single-page marketing site.
//
// Section objects are pointers and their required fields are pointers so the
// difference between "absent" and "empty" survives decoding; required fields are
// checked lazily by the section renderer that consumes them.
type Config struct {
	ProjectName string   `json:"projectName" yaml:"projectName"`
	MetaData    MetaData `json:"metaData" yaml:"metaData"`

	HeroSection      *HeroSection      `json:"heroSection,omitempty" yaml:"heroSection,omitempty"`
	AboutSection     *AboutSection     `json:"aboutSection,omitempty" yaml:"aboutSection,omitempty"`
	BenefitsSection  *BenefitsSection  `json:"benefitsSection,omitempty" yaml:"benefitsSection,omitempty"`
	GuaranteeSection *GuaranteeSection `json:"guaranteeSection,omitempty" yaml:"guaranteeSection,omitempty"`
	FAQSection       *FAQSection       `json:"faqSection,omitempty" yaml:"faqSection,omitempty"`
	CTASection       *CTASection       `json:"ctaSection,omitempty" yaml:"ctaSection,omitempty"`
	CopyrightSection *CopyrightSection `json:"copyrightSection,omitempty" yaml:"copyrightSection,omitempty"`

	Toolchain Toolchain `json:"toolchain,omitzero" yaml:"toolchain,omitempty"`
}

// MetaData is injected verbatim into the generated page metadata.
type MetaData struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Robots      string `json:"robots" yaml:"robots"`
}

// HeroSection is the top banner of the page.
type HeroSection struct {
	Headline    *string `json:"headline,omitempty" yaml:"headline,omitempty"`
	Subheadline *string `json:"subheadline,omitempty" yaml:"subheadline,omitempty"`
	CTAText     *string `json:"ctaText,omitempty" yaml:"ctaText,omitempty"`
	UrgencyText *string `json:"urgencyText,omitempty" yaml:"urgencyText,omitempty"`
}

type AboutSection struct {
	Title       *string `json:"title,omitempty" yaml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// BenefitsSection lists selling points in order.
type BenefitsSection struct {
	Title *string  `json:"title,omitempty" yaml:"title,omitempty"`
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`
}

type GuaranteeSection struct {
	Title       *string `json:"title,omitempty" yaml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// FAQSection holds question/answer pairs rendered as an accordion.
type FAQSection struct {
	Title     *string    `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions,omitempty" yaml:"questions,omitempty"`
}

// Question is one FAQ entry. The JSON shape of the generated literal is
// {"question": ..., "answer": ...}.
type Question struct {
	Question *string `json:"question,omitempty" yaml:"question,omitempty"`
	Answer   *string `json:"answer,omitempty" yaml:"answer,omitempty"`
}

type CTASection struct {
	Headline    *string `json:"headline,omitempty" yaml:"headline,omitempty"`
	Subheadline *string `json:"subheadline,omitempty" yaml:"subheadline,omitempty"`
	CTAText     *string `json:"ctaText,omitempty" yaml:"ctaText,omitempty"`
}

type CopyrightSection struct {
	Text *string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Toolchain configures the external setup tools. Every field is optional;
// WithDefaults fills the values the generator has always used.
type Toolchain struct {
	PackageRunner   string   `json:"packageRunner,omitempty" yaml:"packageRunner,omitempty"`
	PackageManager  string   `json:"packageManager,omitempty" yaml:"packageManager,omitempty"`
	ScaffoldCommand string   `json:"scaffoldCommand,omitempty" yaml:"scaffoldCommand,omitempty"`
	ScaffoldFlags   []string `json:"scaffoldFlags,omitempty" yaml:"scaffoldFlags,omitempty"`
	UILibrary       string   `json:"uiLibrary,omitempty" yaml:"uiLibrary,omitempty"`
	BaseColor       string   `json:"baseColor,omitempty" yaml:"baseColor,omitempty"`
	Components      []string `json:"components,omitempty" yaml:"components,omitempty"`
	Dependencies    []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	DevScript       string   `json:"devScript,omitempty" yaml:"devScript,omitempty"`
}

// String returns a pointer to s; handy for building configs in code and tests.
func String(s string) *string { return &s }
