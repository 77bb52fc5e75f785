// Package html converts WordPress-rendered HTML bodies to Markdown.
//
// Links and images pointing at the migrated site are rewritten to
// root-relative paths before conversion so that they keep working once the
// content is served from its new host.
package html
