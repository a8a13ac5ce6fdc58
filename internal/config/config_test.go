package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{
  "projectName": "landing",
  "metaData": {"title": "T", "description": "D", "robots": "noindex"},
  "heroSection": {"headline": "H", "subheadline": "S", "ctaText": "C", "urgencyText": "U"},
  "benefitsSection": {"title": "B", "items": ["one", "two"]}
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "landing", cfg.ProjectName)
	assert.Equal(t, "noindex", cfg.MetaData.Robots)
	require.NotNil(t, cfg.HeroSection)
	assert.Equal(t, "H", Value(cfg.HeroSection.Headline))
	assert.Equal(t, []string{"one", "two"}, cfg.BenefitsSection.Items)
	assert.Nil(t, cfg.AboutSection, "absent sections stay nil")
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
projectName: landing
metaData:
  title: "Price: $5"
faqSection:
  title: FAQ
  questions:
    - question: Why?
      answer: Because.
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Price: $5", cfg.MetaData.Title, "content is never env-expanded")
	require.Len(t, cfg.FAQSection.Questions, 1)
	assert.Equal(t, "Because.", Value(cfg.FAQSection.Questions[0].Answer))
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"projectName": "landing",`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestLoad_MissingFieldsAreNotLoadErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"projectName": "landing", "benefitsSection": {"title": "B"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	err = cfg.BenefitsSection.Require()
	var mf *MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "benefitsSection", mf.Section)
	assert.Equal(t, "items", mf.Field)
}

func TestRequire(t *testing.T) {
	cfg := Example()
	for name, err := range map[string]error{
		"hero":      cfg.HeroSection.Require(),
		"about":     cfg.AboutSection.Require(),
		"benefits":  cfg.BenefitsSection.Require(),
		"guarantee": cfg.GuaranteeSection.Require(),
		"faq":       cfg.FAQSection.Require(),
		"cta":       cfg.CTASection.Require(),
		"copyright": cfg.CopyrightSection.Require(),
	} {
		assert.NoError(t, err, name)
	}

	t.Run("absent section", func(t *testing.T) {
		var hero *HeroSection
		var mf *MissingFieldError
		require.ErrorAs(t, hero.Require(), &mf)
		assert.Equal(t, &MissingFieldError{Section: KeyHero}, mf)
	})

	t.Run("first missing field in declaration order", func(t *testing.T) {
		cta := &CTASection{Headline: String("h")}
		var mf *MissingFieldError
		require.ErrorAs(t, cta.Require(), &mf)
		assert.Equal(t, "subheadline", mf.Field)
	})

	t.Run("empty list is present", func(t *testing.T) {
		b := &BenefitsSection{Title: String("t"), Items: []string{}}
		assert.NoError(t, b.Require())
	})

	t.Run("faq entry missing answer", func(t *testing.T) {
		faq := &FAQSection{Title: String("t"), Questions: []Question{{Question: String("q")}}}
		var mf *MissingFieldError
		require.ErrorAs(t, faq.Require(), &mf)
		assert.Equal(t, "questions[0].answer", mf.Field)
	})

	t.Run("empty string counts as present", func(t *testing.T) {
		c := &CopyrightSection{Text: String("")}
		assert.NoError(t, c.Require())
	})
}

func TestRequireProjectName(t *testing.T) {
	tests := []struct {
		name    string
		project string
		wantErr error
	}{
		{"valid", "landing-page", nil},
		{"empty", "", nil},
		{"dot", ".", ErrInvalidProjectName},
		{"traversal", "../escape", ErrInvalidProjectName},
		{"flag", "--help", ErrInvalidProjectName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Config{ProjectName: tt.project}).RequireProjectName()
			switch {
			case tt.project == "":
				var mf *MissingFieldError
				require.ErrorAs(t, err, &mf)
				assert.Equal(t, "projectName", mf.Field)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestToolchainDefaults(t *testing.T) {
	tc := Toolchain{PackageRunner: "bunx", Components: []string{}}.WithDefaults()

	assert.Equal(t, "bunx", tc.PackageRunner)
	assert.Equal(t, DefaultPackageManager, tc.PackageManager)
	assert.Empty(t, tc.Components, "explicit empty component list is kept")
	assert.Equal(t, DefaultDependencies, tc.Dependencies)
	assert.Equal(t, DefaultScaffoldFlags, tc.ScaffoldFlags)

	tc.ScaffoldFlags[0] = "--javascript"
	assert.Equal(t, "--typescript", DefaultScaffoldFlags[0], "defaults must not alias")
}

func TestToolchainEnvOverrides(t *testing.T) {
	t.Setenv(EnvPackageRunner, "pnpx")
	t.Setenv(EnvPackageManager, "")

	tc := Toolchain{PackageManager: "yarn"}.ApplyEnvOverrides()
	assert.Equal(t, "pnpx", tc.PackageRunner)
	assert.Equal(t, "yarn", tc.PackageManager)
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "PAGESMITH_TEST_ONLY_VAR=from-file\n")
	t.Setenv("PAGESMITH_TEST_ONLY_VAR", "")
	require.NoError(t, os.Unsetenv("PAGESMITH_TEST_ONLY_VAR"))

	loaded := LoadEnvFiles(dir)
	assert.Equal(t, []string{filepath.Join(dir, ".env")}, loaded)
	assert.Equal(t, "from-file", os.Getenv("PAGESMITH_TEST_ONLY_VAR"))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"config.json", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Init(path, false))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Example(), cfg)

			assert.Error(t, Init(path, false), "refuses to overwrite")
			assert.NoError(t, Init(path, true))
		})
	}
}
