package sections

import (
	"git.home.luguber.info/inful/pagesmith/internal/assets"
	"git.home.luguber.info/inful/pagesmith/internal/config"
)

type heroData struct {
	Headline, Subheadline, CTAText, UrgencyText string
	Banner                                      string
}

// RenderHero renders the hero banner. The first manifest image, if any, is
// used as the banner picture.
func RenderHero(s *config.HeroSection, manifest assets.Manifest) (string, error) {
	if err := s.Require(); err != nil {
		return "", err
	}
	data := heroData{
		Headline:    config.Value(s.Headline),
		Subheadline: config.Value(s.Subheadline),
		CTAText:     config.Value(s.CTAText),
		UrgencyText: config.Value(s.UrgencyText),
	}
	if images := manifest.Images(); len(images) > 0 {
		data.Banner = images[0]
	}
	return execute("hero.tsx.tmpl", data)
}

type textData struct {
	Title, Description string
}

func RenderAbout(s *config.AboutSection, _ assets.Manifest) (string, error) {
	if err := s.Require(); err != nil {
		return "", err
	}
	return execute("about.tsx.tmpl", textData{Title: config.Value(s.Title), Description: config.Value(s.Description)})
}

type benefitsData struct {
	Title  string
	Items  []string
	Images []string
}

// RenderBenefits renders the benefit list and, when assets were copied, a
// carousel of the images not already used by the hero banner (all of them when
// there is only one).
func RenderBenefits(s *config.BenefitsSection, manifest assets.Manifest) (string, error) {
	if err := s.Require(); err != nil {
		return "", err
	}
	images := manifest.Images()
	if len(images) > 1 {
		images = images[1:]
	}
	return execute("benefits.tsx.tmpl", benefitsData{
		Title:  config.Value(s.Title),
		Items:  s.Items,
		Images: images,
	})
}

func RenderGuarantee(s *config.GuaranteeSection, _ assets.Manifest) (string, error) {
	if err := s.Require(); err != nil {
		return "", err
	}
	return execute("guarantee.tsx.tmpl", textData{Title: config.Value(s.Title), Description: config.Value(s.Description)})
}

// FAQEntry is the shape of each element of the generated faqs literal.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type faqData struct {
	Title     string
	Questions []FAQEntry
}

func RenderFAQ(s *config.FAQSection, _ assets.Manifest) (string, error) {
	if err := s.Require(); err != nil {
		return "", err
	}
	entries := make([]FAQEntry, 0, len(s.Questions))
	for _, q := range s.Questions {
		entries = append(entries, FAQEntry{Question: config.Value(q.Question), Answer: config.Value(q.Answer)})
	}
	return execute("faq.tsx.tmpl", faqData{Title: config.Value(s.Title), Questions: entries})
}

type ctaData struct {
	Headline, Subheadline, CTAText string
}

func RenderCTA(s *config.CTASection, _ assets.Manifest) (string, error) {
	if err := s.Require(); err != nil {
		return "", err
	}
	return execute("cta.tsx.tmpl", ctaData{
		Headline:    config.Value(s.Headline),
		Subheadline: config.Value(s.Subheadline),
		CTAText:     config.Value(s.CTAText),
	})
}

type copyrightData struct {
	Text string
}

func RenderCopyright(s *config.CopyrightSection, _ assets.Manifest) (string, error) {
	if err := s.Require(); err != nil {
		return "", err
	}
	return execute("copyright.tsx.tmpl", copyrightData{Text: config.Value(s.Text)})
}
