// Package fs provides file-based export of recipes.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/pantry"
	"gopkg.in/yaml.v3"
)

// Slug converts a recipe name to a file name stem.
// Example: "Masala Omelette (Quick!)" → masala-omelette-quick
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "recipe"
	}
	return b.String()
}

type frontmatter struct {
	Name       string `yaml:"name"`
	Minutes    int    `yaml:"minutes"`
	Difficulty string `yaml:"difficulty"`
	Generated  string `yaml:"generated"`
}

// FormatRecipe formats a recipe card with YAML frontmatter.
func FormatRecipe(r *pantry.Recipe, generated time.Time) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Name:       r.Name,
		Minutes:    r.TimeMinutes,
		Difficulty: r.Difficulty,
		Generated:  generated.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(FormatRecipeBody(r))
	return b.String(), nil
}

// FormatRecipeBody formats a recipe as Markdown without frontmatter.
func FormatRecipeBody(r *pantry.Recipe) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(r.Name)
	b.WriteString("\n\n")
	if r.Description != "" {
		b.WriteString(r.Description)
		b.WriteString("\n\n")
	}

	writeList(&b, "From the pantry", r.UsedIngredients)
	writeList(&b, "To buy", r.MissingIngredients)

	if len(r.Steps) > 0 {
		b.WriteString("## Steps\n\n")
		for i, s := range r.Steps {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(". ")
			b.WriteString(s.Text)
			var meta []string
			if s.Heat != "" {
				meta = append(meta, "heat: "+s.Heat)
			}
			if s.Time != "" {
				meta = append(meta, "time: "+s.Time)
			}
			if len(meta) > 0 {
				b.WriteString(" (")
				b.WriteString(strings.Join(meta, ", "))
				b.WriteString(")")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("[Watch a tutorial](")
	b.WriteString(r.TutorialURL())
	b.WriteString(")\n")
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("## ")
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// Ensure RecipeWriter implements pantry.RecipeWriter at compile time.
var _ pantry.RecipeWriter = (*RecipeWriter)(nil)

// RecipeWriter writes recipes as markdown files to a directory.
type RecipeWriter struct {
	baseDir string

	// Now returns the generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewRecipeWriter creates a new RecipeWriter that writes to the given base directory.
func NewRecipeWriter(baseDir string) *RecipeWriter {
	return &RecipeWriter{baseDir: baseDir, Now: time.Now}
}

// WriteRecipe writes a recipe to disk and returns the file path.
func (w *RecipeWriter) WriteRecipe(ctx context.Context, recipe *pantry.Recipe) (string, error) {
	if recipe == nil || strings.TrimSpace(recipe.Name) == "" {
		return "", pantry.Errorf(pantry.EINVALID, "recipe name required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	fullPath, err := w.cardPath(recipe.Name)
	if err != nil {
		return "", err
	}
	content, err := FormatRecipe(recipe, now())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

// cardPath returns <slug>.md, or <slug>-N.md when that file holds a card for
// a differently named recipe. A card for the same name is overwritten.
func (w *RecipeWriter) cardPath(name string) (string, error) {
	slug := Slug(name)
	for n := 1; ; n++ {
		file := slug + ".md"
		if n > 1 {
			file = fmt.Sprintf("%s-%d.md", slug, n)
		}
		path := filepath.Join(w.baseDir, file)

		existing, err := cardName(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", err
		}
		if existing == name {
			return path, nil
		}
	}
}

// cardName reads the recipe name from a card's frontmatter. Files without
// readable frontmatter yield an empty name.
func cardName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	rest, ok := strings.CutPrefix(string(data), "---\n")
	if !ok {
		return "", nil
	}
	head, _, _ := strings.Cut(rest, "\n---\n")
	var meta frontmatter
	if err := yaml.Unmarshal([]byte(head), &meta); err != nil {
		return "", nil
	}
	return meta.Name, nil
}
