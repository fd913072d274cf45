// Package injectkit injects values from pluggable external sources into
// %tag:key% placeholders embedded in a text template.
//
// injectkit is designed to be imported à la carte. Each subpackage can be
// used independently:
//
//   - inject: the substitution engine — scan a template, resolve every
//     placeholder, and rewrite the template with the loaded values
//   - loader: the Loader capability, source resolution, and the per-session
//     loader registry
//   - env: built-in loader for environment variables (%env:NAME%)
//   - ec2metadata: built-in loader for the EC2 instance metadata service
//   - ec2tag: built-in loader for EC2 instance tags
//   - ssm: built-in loader for SSM Parameter Store parameters
//   - vars: a ready-made custom loader over static values from YAML, TOML,
//     or JSON files
//   - loaders: blank-import aggregator that registers all built-in loaders
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/injectkit/inject"
//	    _ "github.com/randalmurphal/injectkit/loaders"
//	)
//
//	in := inject.New("Hello %env:USER%, region is %awsec2metadata:placement/region%")
//	out, err := in.Process(ctx)
//
// # Custom Sources
//
// Any type implementing loader.Loader can be registered under its own tag
// before processing:
//
//	in := inject.New("Hi %name:anything%")
//	in.RegisterLoader("name", myLoader)
//
// # Design Philosophy
//
//   - Each package usable independently
//   - Interfaces for extensibility, concrete types for simplicity
//   - Sensible defaults with full configurability
//   - Fail fast: the first unresolvable placeholder aborts the whole run
package injectkit
