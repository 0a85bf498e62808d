// Package clf composes class-name strings from variants.
//
// A resolver is built once from a base class string and a configuration,
// then called with the option values chosen at each call site:
//
//	button := clf.Make("inline-flex items-center rounded-md", clf.Config{
//		Variants: map[string]map[string]string{
//			"intent": {"primary": "bg-blue-600 text-white", "ghost": "bg-transparent"},
//			"size":   {"sm": "h-8 px-3 text-sm", "lg": "h-11 px-8 text-lg"},
//		},
//		DefaultVariants: clf.Defaults(map[string]any{"intent": "primary", "size": "sm"}),
//		Responsive:      map[string]string{"md": "px-4"},
//	})
//
//	button(clf.Props{"size": clf.String("lg")})
//	// inline-flex items-center rounded-md bg-blue-600 text-white h-11 px-8 text-lg md:px-4
//
// # Resolution
//
// For every variant the chosen value is used when it is truthy, otherwise
// the default. Booleans and zero are always truthy lookup keys ("true",
// "false", "0"); empty strings, null, NaN and missing values defer to the
// default. Values with no matching option contribute nothing.
//
// Responsive utilities are prefixed with their breakpoint label. The base,
// variant, responsive and ClassName/Class fragments are joined in that
// order and passed through a Merger, so later fragments win conflicts:
// call-site classes override variant classes.
//
// # Computed configuration
//
// A ConfigFunc receives the props of each call, which lets fragments
// depend on the same values used for variant lookup:
//
//	card := clf.Make("rounded-lg p-4", clf.ConfigFunc(func(p clf.Props) clf.Config {
//		return clf.Config{ClassName: p.Get("className").Str()}
//	}))
//
// # Merging
//
// TailwindMerger (the default) resolves conflicts by Tailwind naming
// conventions. DedupMerger only removes repeated tokens. Any Merger can be
// supplied with WithMerger.
//
// # CLI Tool
//
// The clf command resolves components declared in .clf.yaml and checks
// their definitions:
//
//	go install github.com/yacobolo/clf/cmd/clf@latest
package clf
