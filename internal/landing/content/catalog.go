package content

// Catalog is the read-only copy deck for the landing page. Accessors return
// copies so callers cannot mutate shared state.
type Catalog struct {
	brand    Brand
	navLinks []Link
	groups   []ProgramGroup
	hero     Hero
	marquee  Marquee
	benefits []Benefit
	programs []Program
	steps    []Step
	plans    []PricingPlan
	faq      []FAQEntry
	footer   Footer
}

// Brand returns the logo mark and name.
func (c *Catalog) Brand() Brand { return c.brand }

// Hero returns the above-the-fold copy.
func (c *Catalog) Hero() Hero { return c.hero }

// Marquee returns the scrolling strip message.
func (c *Catalog) Marquee() Marquee { return c.marquee }

// NavLinks returns the desktop navigation links.
func (c *Catalog) NavLinks() []Link { return append([]Link(nil), c.navLinks...) }

// Benefits returns the benefit cards.
func (c *Catalog) Benefits() []Benefit { return append([]Benefit(nil), c.benefits...) }

// Programs returns the program cards in display order.
func (c *Catalog) Programs() []Program { return append([]Program(nil), c.programs...) }

// Steps returns the application process steps.
func (c *Catalog) Steps() []Step { return append([]Step(nil), c.steps...) }

// FAQ returns the questions with their rendered answers.
func (c *Catalog) FAQ() []FAQEntry { return append([]FAQEntry(nil), c.faq...) }

// ProgramGroups returns the mega-menu catalog.
func (c *Catalog) ProgramGroups() []ProgramGroup {
	out := make([]ProgramGroup, len(c.groups))
	for i, g := range c.groups {
		out[i] = ProgramGroup{Name: g.Name, Items: append([]MenuItem(nil), g.Items...)}
	}
	return out
}

// PricingPlans returns the pricing cards in display order.
func (c *Catalog) PricingPlans() []PricingPlan {
	out := make([]PricingPlan, len(c.plans))
	for i, p := range c.plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// Footer returns the footer copy.
func (c *Catalog) Footer() Footer {
	f := c.footer
	f.Legal = append([]Link(nil), c.footer.Legal...)
	f.Columns = make([]LinkColumn, len(c.footer.Columns))
	for i, col := range c.footer.Columns {
		f.Columns[i] = LinkColumn{Title: col.Title, Links: append([]Link(nil), col.Links...)}
	}
	return f
}

// GroupCount is the number of mega-menu columns.
func (c *Catalog) GroupCount() int {
	return len(c.groups)
}

// ActiveItemCount counts navigable mega-menu items across all groups.
func (c *Catalog) ActiveItemCount() int {
	return c.countItems(true)
}

// ComingSoonItemCount counts placeholder mega-menu items across all groups.
// Both counts use Navigable, so they match what the mega menu renders.
func (c *Catalog) ComingSoonItemCount() int {
	return c.countItems(false)
}

func (c *Catalog) countItems(navigable bool) int {
	n := 0
	for _, g := range c.groups {
		for _, it := range g.Items {
			if it.Navigable() == navigable {
				n++
			}
		}
	}
	return n
}

// ProgramCount is the length of the program catalog.
func (c *Catalog) ProgramCount() int {
	return len(c.programs)
}

// ProgramIDs lists program ids in catalog order.
func (c *Catalog) ProgramIDs() []string {
	ids := make([]string, 0, len(c.programs))
	for _, p := range c.programs {
		ids = append(ids, p.ID)
	}
	return ids
}

// Program looks up a program by id.
func (c *Catalog) Program(id string) (Program, bool) {
	for _, p := range c.programs {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}
