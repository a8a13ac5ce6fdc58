package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Example returns a complete configuration with every section populated.
func Example() *Config {
	return &Config{
		ProjectName: "landing-page",
		MetaData: MetaData{
			Title:       "Acme Rocket Boots",
			Description: "Fly to work in style.",
			Robots:      "index, follow",
		},
		HeroSection: &HeroSection{
			Headline:    String("Leave traffic behind"),
			Subheadline: String("Rocket boots certified for urban commuting."),
			CTAText:     String("Get yours today"),
			UrgencyText: String("Only 12 pairs left at launch price"),
		},
		AboutSection: &AboutSection{
			Title:       String("About Acme"),
			Description: String("We have been building questionable gadgets since 1949."),
		},
		BenefitsSection: &BenefitsSection{
			Title: String("Why rocket boots?"),
			Items: []string{
				"Zero traffic jams",
				"Lands softly on most rooftops",
				"Machine washable (boots only)",
			},
		},
		GuaranteeSection: &GuaranteeSection{
			Title:       String("30-day guarantee"),
			Description: String("If you do not fly, you do not pay."),
		},
		FAQSection: &FAQSection{
			Title: String("Frequently asked questions"),
			Questions: []Question{
				{Question: String("Is a license required?"), Answer: String("Check with your local aviation authority.")},
				{Question: String("How fast do they go?"), Answer: String("Fast enough.")},
			},
		},
		CTASection: &CTASection{
			Headline:    String("Ready for take-off?"),
			Subheadline: String("Free shipping this week only."),
			CTAText:     String("Order now"),
		},
		CopyrightSection: &CopyrightSection{
			Text: String("© Acme Corporation. All rights reserved."),
		},
	}
}

// Init writes the example configuration to path, refusing to overwrite an
// existing file unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	var data []byte
	var err error
	if formatFor(path) == FormatYAML {
		data, err = yaml.Marshal(Example())
	} else {
		data, err = json.MarshalIndent(Example(), "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." && strings.TrimSpace(dir) != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
