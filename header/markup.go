package header

import (
	"fmt"

	"github.com/vcrobe/siteheader/vdom"
)

// NavItem is one entry of the built-in header.
type NavItem struct {
	Page  string // data-page value, see PageID
	Href  string
	Label string
}

// DefaultBrand is the logo text of the built-in header.
const DefaultBrand = "Ko H."

// DefaultNav is the navigation of the built-in header.
var DefaultNav = []NavItem{
	{Page: "index", Href: "index.html", Label: "Home"},
	{Page: "photo", Href: "photo.html", Label: "Gallery"},
	{Page: "about", Href: "about.html", Label: "About"},
	{Page: "contact", Href: "contact.html", Label: "Contact"},
}

// Tree builds the header markup as a virtual node tree. The result honours
// the markup contract New expects.
func Tree(brand string, items []NavItem) *vdom.VNode {
	lis := make([]*vdom.VNode, 0, len(items))
	for _, it := range items {
		lis = append(lis, vdom.Li(nil,
			vdom.Anchor(it.Href, it.Label, map[string]string{"class": LinkClass, PageAttr: it.Page}),
		))
	}

	return vdom.Header(map[string]string{"class": RootClass, "id": RootClass},
		vdom.Div(map[string]string{"class": "header-container"},
			vdom.Anchor("index.html", brand, map[string]string{"class": "logo"}),
			vdom.Nav(nil,
				vdom.Ul(map[string]string{"class": MenuID, "id": MenuID}, lis...),
			),
			vdom.Div(map[string]string{"class": ToggleID, "id": ToggleID},
				vdom.Span(nil), vdom.Span(nil), vdom.Span(nil),
			),
		),
	)
}

// Markup renders Tree to HTML.
func Markup(brand string, items []NavItem) (string, error) {
	s, err := vdom.RenderString(Tree(brand, items))
	if err != nil {
		return "", fmt.Errorf("render header markup: %w", err)
	}
	return s, nil
}
