package domain

// Scope identifies the company site every store query is bound to.
// Scoping is mandatory: no store operation runs without a valid scope.
type Scope struct {
	CompanyID int64
	SiteID    int64
}

// Valid checks if the Scope identifies a concrete company site.
func (s Scope) Valid() bool {
	return s.CompanyID > 0 && s.SiteID > 0
}
