package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error

	validatorOnce sync.Once
	validateInst  *validator.Validate
	validateErr   error

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidationError lists the catalog fields that failed validation.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: invalid catalog fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the offending field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

type catalogDoc struct {
	Brand    brandDoc     `yaml:"brand" validate:"required"`
	NavLinks []linkDoc    `yaml:"nav_links" validate:"required,min=1,dive"`
	MegaMenu []groupDoc   `yaml:"mega_menu" validate:"required,min=1,unique=Group,dive"`
	Hero     heroDoc      `yaml:"hero" validate:"required"`
	Marquee  marqueeDoc   `yaml:"marquee" validate:"required"`
	Benefits []benefitDoc `yaml:"benefits" validate:"required,min=1,dive"`
	Programs []programDoc `yaml:"programs" validate:"required,min=1,unique=ID,dive"`
	Steps    []stepDoc    `yaml:"steps" validate:"required,min=1,unique=Number,dive"`
	Pricing  []planDoc    `yaml:"pricing" validate:"required,min=1,unique=Name,dive"`
	FAQ      []faqDoc     `yaml:"faq" validate:"required,min=1,dive"`
	Footer   footerDoc    `yaml:"footer" validate:"required"`
}

type brandDoc struct {
	Name     string `yaml:"name" validate:"required"`
	Mark     string `yaml:"mark" validate:"required"`
	HomeHref string `yaml:"home_href" validate:"required"`
}

type linkDoc struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

type groupDoc struct {
	Group string    `yaml:"group" validate:"required"`
	Items []itemDoc `yaml:"items" validate:"required,min=1,dive"`
}

type itemDoc struct {
	Label  string `yaml:"label" validate:"required"`
	Active bool   `yaml:"active"`
	Href   string `yaml:"href"`
}

type heroDoc struct {
	Eyebrow  string `yaml:"eyebrow" validate:"required"`
	Headline string `yaml:"headline" validate:"required"`
	Lede     string `yaml:"lede" validate:"required"`
	Image    string `yaml:"image" validate:"required,url"`
	ImageAlt string `yaml:"image_alt"`
}

type marqueeDoc struct {
	Message string `yaml:"message" validate:"required"`
	Repeat  int    `yaml:"repeat" validate:"gte=1"`
}

type benefitDoc struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title" validate:"required"`
	Text  string `yaml:"text" validate:"required"`
}

type programDoc struct {
	ID          string `yaml:"id" validate:"required,slug"`
	Title       string `yaml:"title" validate:"required"`
	Badge       string `yaml:"badge"`
	Description string `yaml:"description" validate:"required"`
	Image       string `yaml:"image" validate:"omitempty,url"`
}

type stepDoc struct {
	Number int    `yaml:"number" validate:"gte=1"`
	Title  string `yaml:"title" validate:"required"`
	Text   string `yaml:"text" validate:"required"`
}

type planDoc struct {
	Name     string   `yaml:"name" validate:"required"`
	Price    string   `yaml:"price" validate:"required"`
	Badge    string   `yaml:"badge"`
	Features []string `yaml:"features" validate:"required,min=1,dive,required"`
}

type faqDoc struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

type footerDoc struct {
	Headline         string          `yaml:"headline" validate:"required"`
	EmailPlaceholder string          `yaml:"email_placeholder"`
	SubmitLabel      string          `yaml:"submit_label" validate:"required"`
	Disclaimer       string          `yaml:"disclaimer"`
	Columns          []linkColumnDoc `yaml:"columns" validate:"dive"`
	Copyright        string          `yaml:"copyright" validate:"required"`
	Legal            []linkDoc       `yaml:"legal" validate:"dive"`
}

type linkColumnDoc struct {
	Title string    `yaml:"title" validate:"required"`
	Links []linkDoc `yaml:"links" validate:"required,min=1,dive"`
}

// Default returns the catalog embedded in the binary. It is parsed once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(embeddedCatalog)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for callers that cannot continue without the catalog.
func MustDefault() *Catalog {
	cat, err := Default()
	if err != nil {
		panic(err)
	}
	return cat
}

// LoadFile reads and validates a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Load(data)
}

// Load parses and validates a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc catalogDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("content: parse catalog: %w", err)
	}
	if err := validateDoc(&doc); err != nil {
		return nil, err
	}

	md := newMarkdownRenderer()
	lede, err := md.render(doc.Hero.Lede)
	if err != nil {
		return nil, fmt.Errorf("content: render hero lede: %w", err)
	}

	cat := &Catalog{
		brand: Brand{Name: doc.Brand.Name, Mark: doc.Brand.Mark, HomeHref: doc.Brand.HomeHref},
		hero: Hero{
			Eyebrow:  doc.Hero.Eyebrow,
			Headline: doc.Hero.Headline,
			Lede:     doc.Hero.Lede,
			LedeHTML: lede,
			Image:    doc.Hero.Image,
			ImageAlt: doc.Hero.ImageAlt,
		},
		marquee: Marquee{Message: doc.Marquee.Message, Repeat: doc.Marquee.Repeat},
	}
	for _, l := range doc.NavLinks {
		cat.navLinks = append(cat.navLinks, Link{Label: l.Label, Href: l.Href})
	}
	for _, grp := range doc.MegaMenu {
		group := ProgramGroup{Name: grp.Group}
		for _, it := range grp.Items {
			group.Items = append(group.Items, MenuItem{Label: it.Label, Active: it.Active, Href: it.Href})
		}
		cat.groups = append(cat.groups, group)
	}
	for _, b := range doc.Benefits {
		cat.benefits = append(cat.benefits, Benefit{Icon: b.Icon, Title: b.Title, Text: b.Text})
	}
	for _, p := range doc.Programs {
		cat.programs = append(cat.programs, Program{
			ID:          p.ID,
			Title:       p.Title,
			Badge:       p.Badge,
			Description: p.Description,
			Image:       p.Image,
		})
	}
	for _, s := range doc.Steps {
		cat.steps = append(cat.steps, Step{Number: s.Number, Title: s.Title, Text: s.Text})
	}
	for _, pl := range doc.Pricing {
		cat.plans = append(cat.plans, PricingPlan{
			Name:     pl.Name,
			Price:    pl.Price,
			Badge:    pl.Badge,
			Features: append([]string(nil), pl.Features...),
		})
	}
	for i, f := range doc.FAQ {
		answer, err := md.render(f.Answer)
		if err != nil {
			return nil, fmt.Errorf("content: render faq[%d] answer: %w", i, err)
		}
		cat.faq = append(cat.faq, FAQEntry{Question: f.Question, Answer: f.Answer, AnswerHTML: answer})
	}

	footer := Footer{
		Headline:         doc.Footer.Headline,
		EmailPlaceholder: doc.Footer.EmailPlaceholder,
		SubmitLabel:      doc.Footer.SubmitLabel,
		Disclaimer:       doc.Footer.Disclaimer,
		Copyright:        doc.Footer.Copyright,
	}
	for _, col := range doc.Footer.Columns {
		column := LinkColumn{Title: col.Title}
		for _, l := range col.Links {
			column.Links = append(column.Links, Link{Label: l.Label, Href: l.Href})
		}
		footer.Columns = append(footer.Columns, column)
	}
	for _, l := range doc.Footer.Legal {
		footer.Legal = append(footer.Legal, Link{Label: l.Label, Href: l.Href})
	}
	cat.footer = footer

	return cat, nil
}

func validatorInstance() (*validator.Validate, error) {
	validatorOnce.Do(func() {
		v := validator.New()
		if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		}); err != nil {
			validateErr = fmt.Errorf("content: register slug validation: %w", err)
			return
		}
		v.RegisterStructValidation(menuItemRule, itemDoc{})
		validateInst = v
	})
	return validateInst, validateErr
}

// menuItemRule enforces that a destination exists exactly when the item is active.
func menuItemRule(sl validator.StructLevel) {
	item := sl.Current().Interface().(itemDoc)
	href := strings.TrimSpace(item.Href)
	switch {
	case item.Active && href == "":
		sl.ReportError(item.Href, "Href", "Href", "required_if_active", "")
	case !item.Active && href != "":
		sl.ReportError(item.Href, "Href", "Href", "excluded_unless_active", "")
	}
}

func validateDoc(doc *catalogDoc) error {
	v, err := validatorInstance()
	if err != nil {
		return err
	}
	err = v.Struct(doc)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("content: validate catalog: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.TrimPrefix(fe.Namespace(), "catalogDoc.")+"("+fe.Tag()+")")
	}
	return &ValidationError{fields: fields}
}

type markdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newMarkdownRenderer() markdownRenderer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return markdownRenderer{md: goldmark.New(), policy: policy}
}

func (r markdownRenderer) render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String())), nil
}
