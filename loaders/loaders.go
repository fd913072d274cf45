// Package loaders registers all built-in value loaders.
// Import this package to make every built-in source available:
//
//	import _ "github.com/randalmurphal/injectkit/loaders"
package loaders

import (
	_ "github.com/randalmurphal/injectkit/ec2metadata"
	_ "github.com/randalmurphal/injectkit/ec2tag"
	_ "github.com/randalmurphal/injectkit/env"
	_ "github.com/randalmurphal/injectkit/ssm"
)
