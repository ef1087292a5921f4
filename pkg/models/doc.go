// Package models provides shared data models and enums for csja.
//
// # Bundlers
//
// A generated project is built by exactly one bundler:
//   - Webpack: webpack + webpack-dev-server
//   - Rollup: rollup with the serve/livereload plugins
//
// # Frameworks
//
// A project can optionally be generated for a UI framework. Only Svelte is
// supported; [FrameworkNone] produces a plain JavaScript project.
//
// Values coming from flags, config files or prompts are normalized with the
// Parse functions, which ignore letter case:
//
//	b, err := models.ParseBundler("rollup") // models.BundlerRollup
//	f, err := models.ParseFramework("")     // models.FrameworkNone
//
// # Package Managers
//
// [PackageManager] selects the tool used to initialize the manifest and to
// install dependencies (npm by default).
package models
