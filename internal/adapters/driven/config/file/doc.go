// Package file provides the TOML configuration store.
//
// Settings live in config.toml inside the praise config directory
// (~/.praise by default). Tables are flattened to dot-notation keys on
// load, so
//
//	[slides]
//	template_id = "1AbC..."
//
// is read as "slides.template_id", and written back as tables on save.
package file
