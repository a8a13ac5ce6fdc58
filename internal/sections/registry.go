package sections

import (
	"path"

	"git.home.luguber.info/inful/pagesmith/internal/assets"
	"git.home.luguber.info/inful/pagesmith/internal/config"
)

// Kind identifies one of the fixed page sections.
type Kind string

const (
	KindHero      Kind = "hero"
	KindAbout     Kind = "about"
	KindBenefits  Kind = "benefits"
	KindGuarantee Kind = "guarantee"
	KindFAQ       Kind = "faq"
	KindCTA       Kind = "cta"
	KindCopyright Kind = "copyright"
)

// Section describes how one section is configured and where it is emitted.
type Section struct {
	Kind      Kind
	Key       string // configuration key
	Component string // component and file name

	render func(*config.Config, assets.Manifest) (string, error)
}

// Path is the generated file path relative to the project root.
func (s Section) Path() string {
	return path.Join(ComponentsDir, s.Component+".tsx")
}

// registry is in canonical order: it drives both page composition and the
// order artifacts are emitted.
var registry = []Section{
	{KindHero, config.KeyHero, "HeroSection", func(c *config.Config, m assets.Manifest) (string, error) {
		return RenderHero(c.HeroSection, m)
	}},
	{KindAbout, config.KeyAbout, "AboutSection", func(c *config.Config, m assets.Manifest) (string, error) {
		return RenderAbout(c.AboutSection, m)
	}},
	{KindBenefits, config.KeyBenefits, "BenefitsSection", func(c *config.Config, m assets.Manifest) (string, error) {
		return RenderBenefits(c.BenefitsSection, m)
	}},
	{KindGuarantee, config.KeyGuarantee, "GuaranteeSection", func(c *config.Config, m assets.Manifest) (string, error) {
		return RenderGuarantee(c.GuaranteeSection, m)
	}},
	{KindFAQ, config.KeyFAQ, "FAQSection", func(c *config.Config, m assets.Manifest) (string, error) {
		return RenderFAQ(c.FAQSection, m)
	}},
	{KindCTA, config.KeyCTA, "CTASection", func(c *config.Config, m assets.Manifest) (string, error) {
		return RenderCTA(c.CTASection, m)
	}},
	{KindCopyright, config.KeyCopyright, "CopyrightSection", func(c *config.Config, m assets.Manifest) (string, error) {
		return RenderCopyright(c.CopyrightSection, m)
	}},
}

// Order returns the sections in canonical order.
func Order() []Section {
	out := make([]Section, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the section registered for kind.
func Lookup(kind Kind) (Section, bool) {
	for _, s := range registry {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// Render renders a single section from the full configuration.
func (s Section) Render(cfg *config.Config, manifest assets.Manifest) (string, error) {
	return s.render(cfg, manifest)
}
