package content

// Brand is the wordmark shown in the navigation bar.
type Brand struct {
	Name     string
	Mark     string
	HomeHref string
}

// Link is a labelled anchor.
type Link struct {
	Label string
	Href  string
}

// LinkColumn is a titled list of links in the footer.
type LinkColumn struct {
	Title string
	Links []Link
}

// MenuItem is a mega-menu entry. Only active items carry a destination.
type MenuItem struct {
	Label  string
	Active bool
	Href   string
}

// Navigable reports whether the item may be rendered as a link.
func (m MenuItem) Navigable() bool {
	return m.Active && m.Href != ""
}

// ProgramGroup is one mega-menu column.
type ProgramGroup struct {
	Name  string
	Items []MenuItem
}

// Hero holds the copy above the fold.
type Hero struct {
	Eyebrow  string
	Headline string
	Lede     string
	LedeHTML string
	Image    string
	ImageAlt string
}

// Marquee is the scrolling strip under the hero.
type Marquee struct {
	Message string
	Repeat  int
}

// Benefit is a card in the benefits grid.
type Benefit struct {
	Icon  string
	Title string
	Text  string
}

// Program is a track offered on the page. IDs double as anchors.
type Program struct {
	ID          string
	Title       string
	Badge       string
	Description string
	Image       string
}

// Step is one stage of the application process.
type Step struct {
	Number int
	Title  string
	Text   string
}

// PricingPlan is a pricing card; Badge is optional.
type PricingPlan struct {
	Name     string
	Price    string
	Badge    string
	Features []string
}

// FAQEntry pairs a question with its answer. AnswerHTML is sanitised markup.
type FAQEntry struct {
	Question   string
	Answer     string
	AnswerHTML string
}

// Footer holds the newsletter copy and link columns.
type Footer struct {
	Headline         string
	EmailPlaceholder string
	SubmitLabel      string
	Disclaimer       string
	Columns          []LinkColumn
	Copyright        string
	Legal            []Link
}
