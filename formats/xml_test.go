package formats

import (
	"errors"
	"strings"
	"testing"

	"github.com/hoverset/formation-go/formats/xmldoc"
	"github.com/hoverset/formation-go/node"
)

const attrSampleXML = `
<tag1
    xmlns:attr="http://www.hoversetformationstudio.com/styles/"
    xmlns:layout="http://www.hoversetformationstudio.com/layouts/"
    attr:background="#ffffff"
    attr:font="Arial"
    layout:width="20"
    layout:height="40"
    name="tag1"
/>
`

func loadXML(t *testing.T, data string) *node.Node {
	t.Helper()
	f, err := NewXML(FromData(data))
	if err != nil {
		t.Fatal(err)
	}
	root, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestXMLNamespaceGrouping(t *testing.T) {
	n := loadXML(t, attrSampleXML)
	if got := n.Group("attr")["background"]; got != "#ffffff" {
		t.Errorf("attr:background = %v", got)
	}
	if got := n.Group("attr")["font"]; got != "Arial" {
		t.Errorf("attr:font = %v", got)
	}
	if got := n.Group("layout")["width"]; got != "20" {
		t.Errorf("layout:width = %v", got)
	}
	if got := n.Group("layout")["height"]; got != "40" {
		t.Errorf("layout:height = %v", got)
	}
	if got := n.Get("name"); got != "tag1" {
		t.Errorf("plain attribute name = %v", got)
	}
}

func TestXMLGroupingWithoutDeclarations(t *testing.T) {
	// design snippets routinely omit the xmlns declarations; bare
	// prefixes must still land in their groups
	n := loadXML(t, `<tkinter.Frame attr:background="#fff" layout:width="20"/>`)
	if got := n.Group("attr")["background"]; got != "#fff" {
		t.Errorf("attr:background = %v", got)
	}
	if got := n.Group("layout")["width"]; got != "20" {
		t.Errorf("layout:width = %v", got)
	}
}

func TestXMLChildOrder(t *testing.T) {
	n := loadXML(t, `
	<tag1>
	    <tag2/>
	    <tag3/>
	</tag1>
	`)
	if n.Len() != 2 {
		t.Fatalf("child count = %d", n.Len())
	}
	if n.Children[0].Type != "tag2" || n.Children[1].Type != "tag3" {
		t.Errorf("children out of document order: %s, %s",
			n.Children[0].Type, n.Children[1].Type)
	}
}

func TestXMLChildOrderInequality(t *testing.T) {
	n1 := loadXML(t, `<tag1><tag2/><tag3/></tag1>`)
	n2 := loadXML(t, `<tag1><tag3/><tag2/></tag1>`)
	if node.Equal(n1, n2) {
		t.Errorf("trees with swapped children compared equal")
	}
}

func TestXMLAttribEqualityAcrossOrder(t *testing.T) {
	n1 := loadXML(t, `<t><c attr:width="40" attr:height="50"/></t>`)
	n2 := loadXML(t, `<t><c attr:height="50" attr:width="40"/></t>`)
	n3 := loadXML(t, `<t><c attr:height="50"/><c attr:width="40"/></t>`)
	if !node.Equal(n1, n2) {
		t.Errorf("attribute order affected equality")
	}
	if node.Equal(n1, n3) {
		t.Errorf("differently distributed attributes compared equal")
	}
}

func TestXMLSourceLines(t *testing.T) {
	n := loadXML(t, "<tag1>\n    <tag2/>\n    <tag3\n        name=\"x\"/>\n</tag1>\n")
	if n.SourceLine != 1 {
		t.Errorf("root source line = %d, want 1", n.SourceLine)
	}
	if got := n.Children[0].SourceLine; got != 2 {
		t.Errorf("tag2 source line = %d, want 2", got)
	}
	if got := n.Children[1].SourceLine; got != 3 {
		t.Errorf("tag3 source line = %d, want 3", got)
	}
}

func TestXMLMinimalProcessorHasNoLines(t *testing.T) {
	f, err := NewXML(FromData("<tag1>\n  <tag2/>\n</tag1>"), WithProcessor(xmldoc.Minimal()))
	if err != nil {
		t.Fatal(err)
	}
	root, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if root.SourceLine != 0 || root.Children[0].SourceLine != 0 {
		t.Errorf("minimal processor recorded source lines")
	}
	if root.SourceLineInfo() != "" {
		t.Errorf("line info = %q, want empty", root.SourceLineInfo())
	}
}

func TestXMLRoundTrip(t *testing.T) {
	root := node.New(nil, "tkinter.Frame", map[string]any{
		"name":   "frame_1",
		"layout": map[string]any{"width": "200", "height": "100"},
		"attr":   map[string]any{"background": "#ffffff"},
	})
	btn := node.New(root, "tkinter.Button", map[string]any{
		"name": "btn_1",
		"menu": map[string]any{"label": "Click"},
	})
	node.New(btn, "tkinter.StringVar", map[string]any{"name": "var_1"})

	gen, err := NewXML(FromNode(root))
	if err != nil {
		t.Fatal(err)
	}
	text, err := gen.Generate()
	if err != nil {
		t.Fatal(err)
	}
	back := loadXML(t, text)
	if !node.Equal(root, back) {
		t.Errorf("round trip changed the tree:\n%s", text)
	}
}

func TestXMLRoundTripStringifies(t *testing.T) {
	root := node.New(nil, "tkinter.Frame", map[string]any{
		"layout": map[string]any{"width": 200},
	})
	gen, err := NewXML(FromNode(root))
	if err != nil {
		t.Fatal(err)
	}
	text, err := gen.Generate()
	if err != nil {
		t.Fatal(err)
	}
	back := loadXML(t, text)
	if got := back.Group("layout")["width"]; got != "200" {
		t.Errorf("width = %#v, want stringified \"200\"", got)
	}
	// stringified values still compare equal to the original ints
	if !node.Equal(root, back) {
		t.Errorf("stringified tree unequal to original")
	}
}

func TestXMLGenerateOptions(t *testing.T) {
	root := node.New(nil, "tag1", nil)
	node.New(root, "tag2", nil)

	f, err := NewXML(FromNode(root))
	if err != nil {
		t.Fatal(err)
	}

	out, err := f.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`) {
		t.Errorf("default output lacks xml declaration: %q", out)
	}
	if !strings.Contains(out, "\n") {
		t.Errorf("default output not pretty printed: %q", out)
	}

	out, err = f.Generate(PrettyPrint(false), XMLDeclaration(false))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "<tag1><tag2/></tag1>"; got != want {
		t.Errorf("flat output = %q, want %q", got, want)
	}
}

func TestXMLNamespaceCleanup(t *testing.T) {
	root := node.New(nil, "tag1", map[string]any{
		"layout": map[string]any{"width": "1"},
	})
	f, err := NewXML(FromNode(root))
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `xmlns:layout=`) {
		t.Errorf("used namespace not declared: %q", out)
	}
	if strings.Contains(out, `xmlns:attr=`) || strings.Contains(out, `xmlns:menu=`) {
		t.Errorf("unused namespaces declared: %q", out)
	}
}

func TestXMLUnknownGroupFailsGenerate(t *testing.T) {
	root := node.New(nil, "tag1", map[string]any{
		"custom": map[string]any{"x": "1"},
	})
	f, err := NewXML(FromNode(root))
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.Generate()
	if !errors.Is(err, ErrNoNamespace) {
		t.Errorf("error = %v, want ErrNoNamespace", err)
	}
	if err != nil && !strings.Contains(err.Error(), "custom") {
		t.Errorf("error %q does not name the group", err)
	}
}

func TestXMLMalformedInput(t *testing.T) {
	f, err := NewXML(FromData(`<tag1><tag2></tag1>`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Load(); err == nil {
		t.Errorf("malformed XML loaded without error")
	}
}

func TestXMLEscaping(t *testing.T) {
	root := node.New(nil, "tag1", map[string]any{
		"text": `a<b&"c"`,
	})
	f, err := NewXML(FromNode(root))
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Generate(PrettyPrint(false), XMLDeclaration(false))
	if err != nil {
		t.Fatal(err)
	}
	back := loadXML(t, out)
	if got := back.Get("text"); got != `a<b&"c"` {
		t.Errorf("escaped value round trip = %q", got)
	}
}
