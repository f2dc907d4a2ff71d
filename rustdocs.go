// Package rustdocs resolves human-readable Rust documentation for a crate
// item path. Resolution tries, in order, a persistent documentation store,
// locally built `cargo doc` output, and docs.rs, converting rustdoc HTML to
// markdown only when needed. The package also dispatches asynchronous
// indexing of local build output into the store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, htmltomarkdown/) or their
// role (e.g., resolve/, task/, cargo/).
package rustdocs
