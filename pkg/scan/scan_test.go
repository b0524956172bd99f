package scan_test

import (
	"strings"
	"testing"

	"github.com/JohnnyFun/svelte-language-server/pkg/scan"
)

const sampleComponent = "<script>\n  import Foo from './foo'\n</script>\n<Foo/>"

func TestExtractName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{
			name:   "cursor on markup tag name",
			text:   sampleComponent,
			cursor: strings.LastIndex(sampleComponent, "Foo") + 1,
			want:   "Foo",
		},
		{
			name:   "cursor on import name",
			text:   sampleComponent,
			cursor: strings.Index(sampleComponent, "Foo") + 1,
			want:   "Foo",
		},
		{
			name:   "cursor inside module path string",
			text:   sampleComponent,
			cursor: strings.Index(sampleComponent, "./foo") + 2,
			want:   "Foo",
		},
		{
			name:   "cursor at start of identifier",
			text:   "<Button/>",
			cursor: 1,
			want:   "Button",
		},
		{
			name:   "cursor on whitespace",
			text:   "a  b",
			cursor: 2,
			want:   "",
		},
		{
			name:   "empty text",
			text:   "",
			cursor: 0,
			want:   "",
		},
		{
			name:   "cursor past end clamps",
			text:   "Icon",
			cursor: 99,
			want:   "Icon",
		},
		{
			name:   "expansion stops at punctuation",
			text:   "<IconBtn name={x}/>",
			cursor: 5,
			want:   "IconBtn",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := scan.ExtractName(testCase.text, testCase.cursor)
			if got != testCase.want {
				t.Errorf("ExtractName(%q, %d) = %q, want %q",
					testCase.text, testCase.cursor, got, testCase.want)
			}
		})
	}
}

func TestImports(t *testing.T) {
	t.Parallel()

	text := "<script>\n" +
		"  import Button from '@c/Button'\n" +
		"  import Icon from \"./Icon.svelte\"\n" +
		"  const x = 1\n" +
		"</script>\n"

	imports := scan.Imports(text)
	if len(imports) != 2 {
		t.Fatalf("Imports() returned %d, want 2", len(imports))
	}

	if imports[0].Name != "Button" || imports[0].Specifier != "@c/Button" {
		t.Errorf("imports[0] = %+v", imports[0])
	}
	if imports[1].Name != "Icon" || imports[1].Specifier != "./Icon.svelte" {
		t.Errorf("imports[1] = %+v", imports[1])
	}

	// Offsets delimit the whole statement.
	if got := text[imports[0].Start:imports[0].End]; got != "import Button from '@c/Button'" {
		t.Errorf("statement slice = %q", got)
	}
}

func TestImportFor(t *testing.T) {
	t.Parallel()

	imp, ok := scan.ImportFor(sampleComponent, "Foo")
	if !ok {
		t.Fatal("ImportFor(Foo) not found")
	}
	if imp.Specifier != "./foo" {
		t.Errorf("Specifier = %q, want %q", imp.Specifier, "./foo")
	}

	if _, ok := scan.ImportFor(sampleComponent, "Bar"); ok {
		t.Error("ImportFor(Bar) should not be found")
	}
}

func TestComponentTags(t *testing.T) {
	t.Parallel()

	text := "<div>\n  <Button label=\"x\"/>\n  <Icon/>\n  <br/>\n  <Button/>\n</div>"

	tags := scan.ComponentTags(text)
	if len(tags) != 3 {
		t.Fatalf("ComponentTags() returned %d, want 3: %+v", len(tags), tags)
	}

	if tags[0].Name != "Button" || tags[1].Name != "Icon" || tags[2].Name != "Button" {
		t.Errorf("tags = %+v", tags)
	}

	for _, tag := range tags {
		if !strings.HasPrefix(text[tag.Offset:], tag.Name) {
			t.Errorf("offset %d does not point at %q", tag.Offset, tag.Name)
		}
	}
}

func TestTagOffsets(t *testing.T) {
	t.Parallel()

	text := "<Foo/> <Foobar/> <Foo >"

	offsets := scan.TagOffsets(text, "Foo")
	if len(offsets) != 2 {
		t.Fatalf("TagOffsets() returned %d, want 2: %v", len(offsets), offsets)
	}
}

func TestIdentifierRange(t *testing.T) {
	t.Parallel()

	text := "<Butt"
	start, end := scan.IdentifierRange(text, len(text))
	if text[start:end] != "Butt" {
		t.Errorf("IdentifierRange() = %q, want %q", text[start:end], "Butt")
	}

	start, end = scan.IdentifierRange("  ", 1)
	if start != end {
		t.Errorf("IdentifierRange on whitespace = (%d, %d), want empty", start, end)
	}
}
