package preprocess

import "github.com/go-enry/go-enry/v2"

// Script dialect identifiers, matching the lang attribute values the
// external transformers expect.
const (
	DialectJavaScript = "js"
	DialectTypeScript = "ts"
)

// ScriptDialect returns the dialect for a script fragment whose tag carries
// no lang attribute. Classification falls back to JavaScript when enry is
// not confident; misclassifying TS as JS only costs exactness, the
// transformer still runs.
func ScriptDialect(code string) string {
	if len(code) == 0 {
		return DialectJavaScript
	}

	candidates := []string{"JavaScript", "TypeScript"}
	if lang, safe := enry.GetLanguageByClassifier([]byte(code), candidates); safe && lang == "TypeScript" {
		return DialectTypeScript
	}

	return DialectJavaScript
}

// FragmentDialect returns the dialect for a script fragment: the tag's lang
// attribute when present, detection otherwise.
func FragmentDialect(code string, attrs map[string]string) string {
	if attrs != nil {
		if lang, ok := attrs["lang"]; ok && lang != "" {
			return lang
		}
	}
	return ScriptDialect(code)
}
