// Package inject resolves %tag:key% placeholders in a text template against
// pluggable value sources.
//
// # Placeholder Syntax
//
// A placeholder is %tag:key%, where the tag is one or more lowercase letters
// or digits and the key is any run of characters other than '%'. The tag
// selects the value source; the key is handed to that source's loader
// verbatim:
//
//	Hello %env:USER%, your instance is %awsec2metadata:instance-id%.
//
// Identical placeholders (same literal text, case-sensitive) are resolved
// once and replaced everywhere. There is no recursive expansion and no
// escaping of literal '%' characters.
//
// # Built-in Sources
//
// Built-in sources become available by importing their packages, usually via
// the aggregator:
//
//	import _ "github.com/randalmurphal/injectkit/loaders"
//
//   - env: environment variables
//   - awsec2metadata: EC2 instance metadata service
//   - awsec2tag: tags of the current EC2 instance
//   - awsssm: SSM Parameter Store
//
// # Example
//
//	in := inject.New("var 1: %env:X%, var 2: %env:Y%")
//	out, err := in.Process(ctx)
//
// # Custom Sources
//
// Register any loader.Loader under a tag of your choice before processing:
//
//	in := inject.New("Welcome to %language:go%!")
//	in.RegisterLoader("language", loader.Func(
//	    func(ctx context.Context, key string) (string, error) {
//	        return strings.ToUpper(key[:1]) + key[1:], nil
//	    }))
//	out, _ := in.Process(ctx) // "Welcome to Go!"
//
// A placeholder whose tag is neither built-in nor registered fails the whole
// run with loader.ErrUnsupportedSource; nothing is passed through literally.
package inject
