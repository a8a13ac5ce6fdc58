package config

import (
	"errors"
	"fmt"
	"strings"
)

// Section keys as they appear in the configuration document.
const (
	KeyHero      = "heroSection"
	KeyAbout     = "aboutSection"
	KeyBenefits  = "benefitsSection"
	KeyGuarantee = "guaranteeSection"
	KeyFAQ       = "faqSection"
	KeyCTA       = "ctaSection"
	KeyCopyright = "copyrightSection"
)

// ErrInvalidProjectName is returned when projectName cannot be used as a directory name.
var ErrInvalidProjectName = errors.New("invalid project name")

// MissingFieldError reports a required field absent when a section is rendered.
// Field is empty when the whole section object is absent.
type MissingFieldError struct {
	Section string
	Field   string
}

func (e *MissingFieldError) Error() string {
	switch {
	case e.Section == "":
		return fmt.Sprintf("missing required field %q", e.Field)
	case e.Field == "":
		return fmt.Sprintf("missing required section %q", e.Section)
	default:
		return fmt.Sprintf("missing required field %q in %q", e.Field, e.Section)
	}
}

func missing(section, field string) error {
	return &MissingFieldError{Section: section, Field: field}
}

type field struct {
	name  string
	value *string
}

// requireFields reports the first absent field, in declaration order.
func requireFields(section string, fields ...field) error {
	for _, f := range fields {
		if f.value == nil {
			return missing(section, f.name)
		}
	}
	return nil
}

// RequireProjectName validates projectName, which doubles as the target directory
// name and as an argument to the scaffold command.
func (c *Config) RequireProjectName() error {
	name := c.ProjectName
	if strings.TrimSpace(name) == "" {
		return missing("", "projectName")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}
	return nil
}

func (s *HeroSection) Require() error {
	if s == nil {
		return missing(KeyHero, "")
	}
	return requireFields(KeyHero,
		field{"headline", s.Headline},
		field{"subheadline", s.Subheadline},
		field{"ctaText", s.CTAText},
		field{"urgencyText", s.UrgencyText})
}

func (s *AboutSection) Require() error {
	if s == nil {
		return missing(KeyAbout, "")
	}
	return requireFields(KeyAbout, field{"title", s.Title}, field{"description", s.Description})
}

func (s *BenefitsSection) Require() error {
	if s == nil {
		return missing(KeyBenefits, "")
	}
	if err := requireFields(KeyBenefits, field{"title", s.Title}); err != nil {
		return err
	}
	if s.Items == nil {
		return missing(KeyBenefits, "items")
	}
	return nil
}

func (s *GuaranteeSection) Require() error {
	if s == nil {
		return missing(KeyGuarantee, "")
	}
	return requireFields(KeyGuarantee, field{"title", s.Title}, field{"description", s.Description})
}

func (s *FAQSection) Require() error {
	if s == nil {
		return missing(KeyFAQ, "")
	}
	if err := requireFields(KeyFAQ, field{"title", s.Title}); err != nil {
		return err
	}
	if s.Questions == nil {
		return missing(KeyFAQ, "questions")
	}
	for i, q := range s.Questions {
		if q.Question == nil {
			return missing(KeyFAQ, fmt.Sprintf("questions[%d].question", i))
		}
		if q.Answer == nil {
			return missing(KeyFAQ, fmt.Sprintf("questions[%d].answer", i))
		}
	}
	return nil
}

func (s *CTASection) Require() error {
	if s == nil {
		return missing(KeyCTA, "")
	}
	return requireFields(KeyCTA, field{"headline", s.Headline}, field{"subheadline", s.Subheadline}, field{"ctaText", s.CTAText})
}

func (s *CopyrightSection) Require() error {
	if s == nil {
		return missing(KeyCopyright, "")
	}
	return requireFields(KeyCopyright, field{"text", s.Text})
}

// Value dereferences a required field that has already passed Require.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
