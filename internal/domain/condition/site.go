package condition

// SiteFilter selects which contribution sites a check or aggregation covers.
// It is either AllSites or a single named site; the zero value is AllSites.
type SiteFilter struct {
	name string
}

// AllSites matches every site
func AllSites() SiteFilter {
	return SiteFilter{}
}

// Site matches exactly one named site. An empty name is AllSites.
func Site(name string) SiteFilter {
	return SiteFilter{name: name}
}

// IsAll reports whether the filter covers every site
func (f SiteFilter) IsAll() bool {
	return f.name == ""
}

// Name returns the site name, empty for AllSites
func (f SiteFilter) Name() string {
	return f.name
}

// Matches reports whether a site with the given name is covered
func (f SiteFilter) Matches(name string) bool {
	return f.IsAll() || f.name == name
}

func (f SiteFilter) String() string {
	if f.IsAll() {
		return "ALL"
	}
	return f.name
}
