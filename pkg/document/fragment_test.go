package document_test

import (
	"testing"

	"github.com/JohnnyFun/svelte-language-server/pkg/document"
)

func TestFragmentRoundTrip(t *testing.T) {
	t.Parallel()

	frag := document.Fragment{Kind: document.KindScript, Start: 8, End: 20}

	// relativeToParent(parentToRelative(p)) == p for any in-range position.
	for abs := frag.Start; abs <= frag.End; abs++ {
		rel := frag.ToRelative(abs)
		back := frag.ToParent(rel)
		if back != abs {
			t.Errorf("round trip %d -> %d -> %d", abs, rel, back)
		}
	}
}

func TestFragmentClamping(t *testing.T) {
	t.Parallel()

	frag := document.Fragment{Kind: document.KindStyle, Start: 5, End: 10}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{name: "relative before start clamps to 0", got: frag.ToRelative(2), want: 0},
		{name: "relative past end clamps to length", got: frag.ToRelative(15), want: 5},
		{name: "parent of negative clamps to start", got: frag.ToParent(-3), want: 5},
		{name: "parent past length clamps to end", got: frag.ToParent(9), want: 10},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if testCase.got != testCase.want {
				t.Errorf("got %d, want %d", testCase.got, testCase.want)
			}
		})
	}
}

func TestFragmentText(t *testing.T) {
	t.Parallel()

	content := "abc<b>def</b>"
	frag := document.Fragment{Kind: document.KindMarkup, Start: 6, End: 9}

	if got := frag.Text(content); got != "def" {
		t.Errorf("Text() = %q, want %q", got, "def")
	}

	// Out-of-bounds fragments degrade to the overlapping slice.
	wild := document.Fragment{Start: 10, End: 99}
	if got := wild.Text(content); got != "/b>" {
		t.Errorf("Text() = %q, want %q", got, "/b>")
	}
}

func TestFragmentAttr(t *testing.T) {
	t.Parallel()

	frag := document.Fragment{
		Kind:  document.KindScript,
		Attrs: map[string]string{"lang": "ts"},
	}

	if got := frag.Attr("lang"); got != "ts" {
		t.Errorf("Attr(lang) = %q, want %q", got, "ts")
	}
	if got := frag.Attr("type"); got != "" {
		t.Errorf("Attr(type) = %q, want empty", got)
	}

	bare := document.Fragment{Kind: document.KindMarkup}
	if got := bare.Attr("lang"); got != "" {
		t.Errorf("Attr on nil map = %q, want empty", got)
	}
}
