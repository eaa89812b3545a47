//go:build !wasm

package htmldom

import (
	"strings"
	"testing"

	"github.com/vcrobe/siteheader/dom"
)

const page = `<!DOCTYPE html>
<html><body>
<header class="site-header" id="site-header">
  <ul id="nav-menu" class="nav-menu">
    <li><a id="home" class="nav-link" data-page="index" href="index.html">Home</a></li>
    <li><a id="about" class="nav-link  extra" data-page="about" href="about.html">About</a></li>
  </ul>
</header>
<main id="content"><p class="nav-linked">not a link</p></main>
</body></html>`

func mustParse(t *testing.T, markup string) *Document {
	t.Helper()
	doc, err := ParseString(markup)
	if err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}
	return doc
}

func TestDocument_Lookups(t *testing.T) {
	doc := mustParse(t, page)

	if el := doc.GetElementByID("nav-menu"); el == nil {
		t.Fatal("Expected to find #nav-menu")
	}
	if el := doc.GetElementByID("missing"); el != nil {
		t.Errorf("Expected nil for missing id, got %v", el)
	}
	if el := doc.GetElementByID(`it's "odd"`); el != nil {
		t.Errorf("Expected nil for unquotable id, got %v", el)
	}

	links := doc.ElementsByClass("nav-link")
	if len(links) != 2 {
		t.Fatalf("Expected 2 nav links (nav-linked must not match), got %d", len(links))
	}
	if page, _ := links[1].Attr("data-page"); page != "about" {
		t.Errorf("Expected second link data-page 'about', got '%s'", page)
	}
	if links[0].ID() != "home" {
		t.Errorf("Expected document order, first link id 'home', got '%s'", links[0].ID())
	}
}

func TestElement_ClassList(t *testing.T) {
	doc := mustParse(t, page)
	el := doc.GetElementByID("about")

	el.AddClass("active")
	el.AddClass("active")
	if !el.HasClass("active") || !el.HasClass("extra") {
		t.Error("Expected 'active' and 'extra' classes after AddClass")
	}
	if v, _ := el.Attr("class"); v != "nav-link extra active" {
		t.Errorf("Expected class attr 'nav-link extra active', got '%s'", v)
	}

	el.RemoveClass("active")
	el.RemoveClass("never-there")
	if el.HasClass("active") {
		t.Error("Expected 'active' removed")
	}
}

func TestElement_Closest(t *testing.T) {
	doc := mustParse(t, page)

	if root := doc.GetElementByID("home").Closest("site-header"); root == nil || root.ID() != "site-header" {
		t.Errorf("Expected #home to be inside .site-header, got %v", root)
	}
	if root := doc.GetElementByID("content").Closest("site-header"); root != nil {
		t.Errorf("Expected #content outside .site-header, got %v", root)
	}
	if self := doc.GetElementByID("site-header").Closest("site-header"); self == nil {
		t.Error("Expected Closest to match the element itself")
	}
}

func TestElement_SetInnerHTML(t *testing.T) {
	doc := mustParse(t, `<html><body><div id="slot"><span id="old">x</span></div></body></html>`)
	slot := doc.GetElementByID("slot")
	old := doc.GetElementByID("old")
	old.AddEventListener("click", func(dom.Event) {})

	if err := slot.SetInnerHTML(`<nav id="fresh"><a class="nav-link" data-page="index">Home</a></nav>`); err != nil {
		t.Fatalf("SetInnerHTML failed: %v", err)
	}

	if doc.GetElementByID("old") != nil {
		t.Error("Expected old children to be removed")
	}
	if doc.GetElementByID("fresh") == nil {
		t.Error("Expected injected #fresh to be findable")
	}
	if got := len(doc.ElementsByClass("nav-link")); got != 1 {
		t.Errorf("Expected 1 injected nav link, got %d", got)
	}
	if doc.ListenerCount() != 0 {
		t.Errorf("Expected listeners on removed nodes to be dropped, %d left", doc.ListenerCount())
	}

	inner := slot.(*Element).InnerHTML()
	if !strings.HasPrefix(inner, `<nav id="fresh">`) {
		t.Errorf("Unexpected inner HTML: %s", inner)
	}
}

// TestDocument_ClickBubbles verifies dispatch order: target, ancestors,
// then document, with the original target on every event.
func TestDocument_ClickBubbles(t *testing.T) {
	doc := mustParse(t, page)
	home := doc.GetElementByID("home")
	menu := doc.GetElementByID("nav-menu")

	var order []string
	home.AddEventListener("click", func(ev dom.Event) { order = append(order, "home:"+ev.Target.ID()) })
	menu.AddEventListener("click", func(ev dom.Event) { order = append(order, "menu:"+ev.Target.ID()) })
	remove := doc.AddEventListener("click", func(ev dom.Event) { order = append(order, "doc:"+ev.Target.ID()) })

	doc.Click(home)

	want := []string{"home:home", "menu:home", "doc:home"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, order)
	}

	remove()
	order = nil
	doc.Click(doc.GetElementByID("content"))
	if len(order) != 0 {
		t.Errorf("Expected no listeners for #content after removing document listener, got %v", order)
	}
}

func TestWindow_Resize(t *testing.T) {
	doc := mustParse(t, page)
	win := NewWindow(doc, "/about.html", 400)

	var widths []int
	remove := win.AddEventListener("resize", func(dom.Event) { widths = append(widths, win.InnerWidth()) })

	win.Resize(1024)
	remove()
	win.Resize(300)

	if len(widths) != 1 || widths[0] != 1024 {
		t.Errorf("Expected one resize at 1024, got %v", widths)
	}
	if win.InnerWidth() != 300 {
		t.Errorf("Expected width 300, got %d", win.InnerWidth())
	}
	if win.ListenerCount() != 0 {
		t.Errorf("Expected 0 window listeners, got %d", win.ListenerCount())
	}
}
